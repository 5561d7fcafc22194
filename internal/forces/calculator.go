package forces

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/TurnbullEngineering/water-flow-forces/internal/as5100"
)

var (
	half     = decimal.RequireFromString("0.5")
	two      = decimal.RequireFromString("2")
	three    = decimal.RequireFromString("3")
	thousand = decimal.RequireFromString("1000")
)

// ClampDebrisDepth constrains the debris mat depth to the design bounds.
// For water depths below the minimum debris depth the minimum is adopted,
// per AS 5100.2.
func ClampDebrisDepth(waterDepth, minDepth, maxDepth decimal.Decimal) decimal.Decimal {
	return decimal.Min(maxDepth, decimal.Max(minDepth, waterDepth))
}

// Calculate computes the design forces on a foundation leg for one
// hydraulic state, per AS 5100.2 Section 16:
//
//	F1/L1  - water flow drag on the above-ground leg
//	F2/L2  - debris mat drag at the water surface
//	F3/L3  - floating log impact
//	Fd2/Ld2 - water flow drag on the pile over the scoured depth
//
// The debris mat depth is clamped to the parameter bounds before use.
func Calculate(leg LegGeometry, state HydraulicState, params LoadParameters) (*ForceResult, error) {
	if params.ScourDepth.IsNegative() || params.PileDiameter.IsNegative() {
		return nil, fmt.Errorf("%w: scour depth and pile diameter must be non-negative", ErrInvalidParameter)
	}
	if params.StoppingDistance.Sign() <= 0 {
		return nil, fmt.Errorf("%w: stopping distance must be positive", ErrInvalidParameter)
	}

	result := &ForceResult{}
	v2 := state.WaterVelocity.Mul(state.WaterVelocity)

	// Wetted area and drag centroid depend on the leg geometry.
	var wetted decimal.Decimal
	switch g := leg.(type) {
	case Pier:
		wetted = state.WaterDepth.Mul(g.Diameter)
		// Mid-height for a rectangular pressure profile
		result.L1 = state.WaterDepth.Div(two)
	case BoredPile:
		// Critical incidence is 45 degrees with two faces exposed, so the
		// projected wetted area normal to flow is area * sqrt(2).
		wetted = g.Area.Mul(as5100.Sqrt2)
		result.L1 = two.Mul(state.WaterDepth).Div(three)
	default:
		return nil, fmt.Errorf("%w: unsupported leg geometry %T", ErrTypeMismatch, leg)
	}

	// F1 = 0.5 * Cd * V² * Ad
	result.F1 = half.Mul(params.CdPier).Mul(v2).Mul(wetted).Mul(params.LoadFactor)

	// Debris mat drag over the assumed 20 m span. When the mat would sit
	// deeper than the water, the application height is floored at half the
	// mat depth rather than pushed below ground.
	debrisDepth := ClampDebrisDepth(state.WaterDepth, params.MinDebrisDepth, params.MaxDebrisDepth)
	debrisArea := debrisDepth.Mul(as5100.DebrisSpan)
	cdDebris := as5100.DragCoefficient(state.WaterVelocity, state.WaterDepth)
	result.F2 = half.Mul(cdDebris).Mul(v2).Mul(debrisArea).Mul(params.LoadFactor)
	halfMat := debrisDepth.Div(two)
	result.L2 = decimal.Max(state.WaterDepth.Sub(halfMat), halfMat)

	// Log impact: F = m*a with a = V²/2s, applied at the water surface.
	accel := v2.Div(two.Mul(params.StoppingDistance))
	result.F3 = params.LogMass.Mul(accel).Mul(params.LoadFactor).Div(thousand) // N -> kN
	result.L3 = state.WaterDepth

	pileDiameter, err := resolvePileDiameter(leg, params.PileDiameter)
	if err != nil {
		return nil, err
	}

	// Drag acts on the pile only over the scoured depth, centred on it.
	scoured := params.ScourDepth.Mul(pileDiameter)
	result.Fd2 = half.Mul(params.CdPile).Mul(v2).Mul(scoured).Mul(params.LoadFactor)
	result.Ld2 = params.ScourDepth.Neg().Div(two)

	return result, nil
}

// resolvePileDiameter substitutes the pier diameter when no explicit pile
// diameter is given. A bored-pile leg carries no diameter to fall back on,
// so it must be supplied.
func resolvePileDiameter(leg LegGeometry, pileDiameter decimal.Decimal) (decimal.Decimal, error) {
	if !pileDiameter.IsZero() {
		return pileDiameter, nil
	}
	if g, ok := leg.(Pier); ok {
		return g.Diameter, nil
	}
	return decimal.Decimal{}, fmt.Errorf("%w: pile diameter must be specified for bored pile legs", ErrMissingParameter)
}
