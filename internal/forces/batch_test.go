package forces

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testMapping = FieldMapping{
	Depth:    "PMF Event Peak Flood Depth",
	Velocity: "PMF Event Peak Velocity",
	Scour:    "PMF Event Scour",
}

func batchParams() LoadParameters {
	return LoadParameters{
		CdPier:           dec("0.7"),
		CdPile:           dec("0.7"),
		LogMass:          dec("2000"),
		StoppingDistance: dec("0.075"),
		LoadFactor:       dec("1.3"),
		MinDebrisDepth:   dec("1.2"),
		MaxDebrisDepth:   dec("3.0"),
	}
}

func TestEvaluateRecords_AppendsResults(t *testing.T) {
	records := []Record{
		{
			"Tower":                      "T1",
			"PMF Event Peak Flood Depth": "8.0",
			"PMF Event Peak Velocity":    "3.0",
			"PMF Event Scour":            "1.0",
		},
	}

	out, err := EvaluateRecords(records, testMapping, Pier{Diameter: dec("2.5")}, batchParams())
	require.NoError(t, err)
	require.Len(t, out, 1)

	// Original fields are preserved
	assert.Equal(t, "T1", out[0]["Tower"])
	assert.Equal(t, "8.0", out[0]["PMF Event Peak Flood Depth"])

	// 0.5 * 0.7 * 9 * 20 * 1.3
	assert.Equal(t, "81.9", out[0]["F1"])
	assert.Equal(t, "4", out[0]["L1"])
	for _, col := range ResultColumns {
		assert.NotEqual(t, NotApplicable, out[0][col], "column %s", col)
	}
}

func TestEvaluateRecords_InvalidRowsDegradeToNotApplicable(t *testing.T) {
	records := []Record{
		{
			"Tower":                      "T1",
			"PMF Event Peak Flood Depth": "8.0",
			"PMF Event Peak Velocity":    "3.0",
			"PMF Event Scour":            "1.0",
		},
		{
			"Tower":                      "T2",
			"PMF Event Peak Flood Depth": "8.0",
			"PMF Event Peak Velocity":    "NaN",
			"PMF Event Scour":            "1.0",
		},
		{
			"Tower":                      "T3",
			"PMF Event Peak Flood Depth": "",
			"PMF Event Peak Velocity":    "2.0",
			"PMF Event Scour":            "1.0",
		},
		{
			"Tower":                   "T4",
			"PMF Event Peak Velocity": "2.0",
			"PMF Event Scour":         "1.0",
		},
	}

	out, err := EvaluateRecords(records, testMapping, Pier{Diameter: dec("2.5")}, batchParams())
	require.NoError(t, err)
	require.Len(t, out, 4)

	// Row order is preserved and no row is dropped
	assert.Equal(t, "T1", out[0]["Tower"])
	assert.Equal(t, "T2", out[1]["Tower"])
	assert.Equal(t, "T3", out[2]["Tower"])
	assert.Equal(t, "T4", out[3]["Tower"])

	assert.NotEqual(t, NotApplicable, out[0]["F1"])
	for _, row := range out[1:] {
		for _, col := range ResultColumns {
			assert.Equal(t, NotApplicable, row[col], "tower %s column %s", row["Tower"], col)
		}
		// Untouched fields survive on degraded rows too
		assert.Equal(t, "1.0", row["PMF Event Scour"])
	}
}

func TestEvaluateRecords_ScourFromRows(t *testing.T) {
	records := []Record{
		{
			"PMF Event Peak Flood Depth": "2.0",
			"PMF Event Peak Velocity":    "2.0",
			"PMF Event Scour":            "1.0",
		},
		{
			"PMF Event Peak Flood Depth": "2.0",
			"PMF Event Peak Velocity":    "2.0",
			"PMF Event Scour":            "2.0",
		},
	}

	params := batchParams()
	params.PileDiameter = dec("2.5")
	out, err := EvaluateRecords(records, testMapping, Pier{Diameter: dec("2.5")}, params)
	require.NoError(t, err)

	// Doubling the scoured depth doubles Fd2 and lowers the centroid
	assert.Equal(t, "4.55", out[0]["Fd2"])
	assert.Equal(t, "9.1", out[1]["Fd2"])
	assert.Equal(t, "-0.5", out[0]["Ld2"])
	assert.Equal(t, "-1", out[1]["Ld2"])
}

func TestEvaluateRecords_SharedScourWhenUnmapped(t *testing.T) {
	records := []Record{
		{
			"PMF Event Peak Flood Depth": "2.0",
			"PMF Event Peak Velocity":    "2.0",
		},
	}

	params := batchParams()
	params.ScourDepth = dec("1.0")
	mapping := testMapping
	mapping.Scour = ""

	out, err := EvaluateRecords(records, mapping, Pier{Diameter: dec("2.5")}, params)
	require.NoError(t, err)
	assert.Equal(t, "-0.5", out[0]["Ld2"])
}

func TestEvaluateRecords_ParameterViolationAbortsBatch(t *testing.T) {
	records := []Record{
		{
			"PMF Event Peak Flood Depth": "8.0",
			"PMF Event Peak Velocity":    "3.0",
			"PMF Event Scour":            "1.0",
		},
	}

	// Bored pile without a pile diameter is a misconfigured run, not bad
	// row data; nothing is evaluated.
	_, err := EvaluateRecords(records, testMapping, BoredPile{Area: dec("20")}, batchParams())
	require.ErrorIs(t, err, ErrMissingParameter)

	// Negative scour in the data likewise aborts
	bad := []Record{
		{
			"PMF Event Peak Flood Depth": "8.0",
			"PMF Event Peak Velocity":    "3.0",
			"PMF Event Scour":            "-1.0",
		},
	}
	params := batchParams()
	_, err = EvaluateRecords(bad, testMapping, Pier{Diameter: dec("2.5")}, params)
	require.ErrorIs(t, err, ErrInvalidParameter)
}

func TestEvaluateRecords_EmptyInput(t *testing.T) {
	out, err := EvaluateRecords(nil, testMapping, Pier{Diameter: dec("2.5")}, batchParams())
	require.NoError(t, err)
	assert.Empty(t, out)
}
