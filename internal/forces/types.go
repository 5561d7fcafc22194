package forces

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/TurnbullEngineering/water-flow-forces/internal/as5100"
)

// Every calculation runs on exact decimal arithmetic; 28 digits keeps
// non-terminating quotients (2/3 heights) well above display precision.
func init() {
	if decimal.DivisionPrecision < 28 {
		decimal.DivisionPrecision = 28
	}
}

var (
	// ErrInvalidParameter flags a negative or otherwise out-of-range design input.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrMissingParameter flags a required geometry-dependent input that was not supplied.
	ErrMissingParameter = errors.New("missing parameter")
	// ErrTypeMismatch flags a value that cannot carry the exact-decimal
	// representation every calculation input must share.
	ErrTypeMismatch = errors.New("type mismatch")
)

// LegGeometry describes the foundation leg exposed to flow. Exactly two
// implementations exist (Pier and BoredPile); the calculator matches on
// the concrete type.
type LegGeometry interface {
	Type() as5100.LegType
}

// Pier is a circular pier column.
type Pier struct {
	Diameter decimal.Decimal // m
}

// Type reports the leg type class.
func (Pier) Type() as5100.LegType { return as5100.Pier }

// BoredPile is a triangular transmission-tower leg on bored piles.
// Area is the area of a single face of the leg (m²).
type BoredPile struct {
	Area decimal.Decimal // m²
}

// Type reports the leg type class.
func (BoredPile) Type() as5100.LegType { return as5100.BoredPile }

// HydraulicState holds the flood-event hydraulics for one evaluation.
type HydraulicState struct {
	WaterDepth    decimal.Decimal // m, measured from ground level
	WaterVelocity decimal.Decimal // m/s
}

// LoadParameters holds the design inputs shared across evaluations.
type LoadParameters struct {
	CdPier           decimal.Decimal // drag coefficient, above-ground leg
	CdPile           decimal.Decimal // drag coefficient, scoured pile
	LogMass          decimal.Decimal // kg
	StoppingDistance decimal.Decimal // m
	LoadFactor       decimal.Decimal // dimensionless
	MinDebrisDepth   decimal.Decimal // m
	MaxDebrisDepth   decimal.Decimal // m
	PileDiameter     decimal.Decimal // m, 0 = adopt pier diameter (pier legs only)
	ScourDepth       decimal.Decimal // m, below ground level
}

// ForceResult holds the calculated forces (kN) and their application
// heights (m, from ground level; Ld2 is below ground and non-positive).
type ForceResult struct {
	F1  decimal.Decimal // water flow force on leg
	L1  decimal.Decimal
	F2  decimal.Decimal // debris mat force
	L2  decimal.Decimal
	F3  decimal.Decimal // log impact force
	L3  decimal.Decimal
	Fd2 decimal.Decimal // water flow force on scoured pile
	Ld2 decimal.Decimal
}

// FromFloat converts a binary float to the exact-decimal representation,
// rejecting values (NaN, ±Inf) that cannot carry it.
func FromFloat(f float64) (decimal.Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Decimal{}, fmt.Errorf("%w: %v is not an exact decimal value", ErrTypeMismatch, f)
	}
	return decimal.NewFromFloat(f), nil
}

// ParseDecimal converts numeric text to the exact-decimal representation.
func ParseDecimal(s string) (decimal.Decimal, error) {
	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q is not an exact decimal value", ErrTypeMismatch, s)
	}
	return v, nil
}
