package as5100

import "github.com/shopspring/decimal"

// cdSegment is one piece of the pier-debris drag coefficient curve.
// Within a segment, Cd = intercept - slope*(x - origin) for x <= upper.
type cdSegment struct {
	upper     decimal.Decimal
	intercept decimal.Decimal
	slope     decimal.Decimal
	origin    decimal.Decimal
}

// Figure 16.6.4(A) "Pier Debris Cd", digitised as published. The slopes
// are the literal figures from the table, not re-derived from the
// endpoints, so tiny steps at segment boundaries are expected.
var cdTable = []cdSegment{
	{d("40"), d("3.4"), d("0"), d("0")},
	{d("60"), d("3.4"), d("0.03"), d("40")},
	{d("85"), d("2.8"), d("0.018"), d("60")},
	{d("100"), d("2.35"), d("0.01"), d("85")},
	{d("130"), d("2.2"), d("0.00833"), d("100")},
	{d("260"), d("1.95"), d("0.00423"), d("130")},
}

// cdFloor applies beyond the last breakpoint.
var cdFloor = decimal.RequireFromString("1.4")

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// DragCoefficient computes the pier-debris drag coefficient Cd from the
// approach-flow velocity V (m/s) and mean flow depth y (m), using the
// piecewise-linear curve of Figure 16.6.4(A) over x = V²y. Segment upper
// bounds are inclusive. Defined for all non-negative x.
func DragCoefficient(velocity, depth decimal.Decimal) decimal.Decimal {
	x := velocity.Mul(velocity).Mul(depth)

	for _, seg := range cdTable {
		if x.LessThanOrEqual(seg.upper) {
			return seg.intercept.Sub(seg.slope.Mul(x.Sub(seg.origin)))
		}
	}
	return cdFloor
}
