package as5100

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func cdAt(t *testing.T, velocity, depth string) decimal.Decimal {
	t.Helper()
	return DragCoefficient(decimal.RequireFromString(velocity), decimal.RequireFromString(depth))
}

func TestDragCoefficient_FlatRegions(t *testing.T) {
	// x <= 40 is constant at 3.4, x > 260 constant at 1.4
	assert.Equal(t, "3.4", cdAt(t, "0", "10").String())
	assert.Equal(t, "3.4", cdAt(t, "1", "5").String())
	assert.Equal(t, "3.4", cdAt(t, "2", "10").String()) // x = 40 exactly
	assert.Equal(t, "1.4", cdAt(t, "1", "300").String())
	assert.Equal(t, "1.4", cdAt(t, "10", "100").String())
}

func TestDragCoefficient_Segments(t *testing.T) {
	cases := []struct {
		x    string
		want string
	}{
		{"50", "3.1"},      // 3.4 - 0.03*10
		{"60", "2.8"},      // upper bound of second segment
		{"70", "2.62"},     // 2.8 - 0.018*10
		{"85", "2.35"},     // upper bound
		{"90", "2.3"},      // 2.35 - 0.01*5
		{"100", "2.2"},     // upper bound
		{"115", "2.07505"}, // 2.2 - 0.00833*15
		{"200", "1.6539"},  // 1.95 - 0.00423*70
	}
	for _, tc := range cases {
		// V = 1 makes the depth carry x directly
		got := cdAt(t, "1", tc.x)
		assert.True(t, got.Equal(decimal.RequireFromString(tc.want)),
			"Cd(x=%s) = %s, want %s", tc.x, got, tc.want)
	}
}

func TestDragCoefficient_BoundariesUseLiteralSlopes(t *testing.T) {
	// The published slopes do not join the segment endpoints exactly; the
	// small steps at x = 130 and x = 260 are part of the figure.
	assert.Equal(t, "1.9501", cdAt(t, "1", "130").String())
	assert.Equal(t, "1.4001", cdAt(t, "1", "260").String())
}
