package as5100

import "github.com/shopspring/decimal"

// AS 5100.2:2017 Section 16 - Forces Resulting from Water Flow

// LegType identifies the foundation leg geometry class.
type LegType int

const (
	// Pier is a circular pier column; wetted area is depth times diameter.
	Pier LegType = iota
	// BoredPile is a triangular transmission-tower leg on bored piles;
	// wetted area is supplied per face and projected at 45 degrees.
	BoredPile
)

// LegTypeNames maps leg types to their display names.
var LegTypeNames = map[LegType]string{
	Pier:      "Pier Type",
	BoredPile: "Bored Pile",
}

// Default above-ground drag coefficients per leg type.
// Pier assumes a semi-circular nosing (Cd = 0.7).
var DefaultCd = map[LegType]float64{
	Pier:      0.7,
	BoredPile: 0.8,
}

// Default below-ground (pile) drag coefficients per leg type.
var DefaultCdPile = map[LegType]float64{
	Pier:      0.7,
	BoredPile: 0.7,
}

// FloodEvents lists the flood-event labels available for batch analysis,
// ordered from most frequent to the probable maximum flood.
var FloodEvents = []string{"10% AEP", "1% AEP", "0.5% AEP", "0.2% AEP", "0.05% AEP", "PMF"}

// Default design input parameters.
const (
	DefaultColumnDiameter   = 2.5    // m
	DefaultWaterDepth       = 8.0    // m
	DefaultWaterVelocity    = 3.0    // m/s
	DefaultScourDepth       = 1.0    // m
	DefaultMinDebrisDepth   = 1.2    // m
	DefaultMaxDebrisDepth   = 3.0    // m
	DefaultLogMass          = 2000.0 // kg
	DefaultStoppingDistance = 0.075  // m
	DefaultLoadFactor       = 1.3    // PMF peak flood
)

// DebrisSpan is the assumed width of the floating debris mat (m),
// per the code's urban catchment provision.
var DebrisSpan = decimal.RequireFromString("20.0")

// Sqrt2 carries enough digits to stay exact through the 28-digit
// working precision used by the calculator.
var Sqrt2 = decimal.RequireFromString("1.41421356237309504880168872420969807857")
