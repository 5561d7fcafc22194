package forces

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// Record is one spreadsheet row, raw cell text keyed by column name.
type Record map[string]string

// FieldMapping names the record fields carrying the per-row hydraulic
// inputs. Scour may be empty, in which case the batch-wide scour depth
// from the load parameters applies to every row.
type FieldMapping struct {
	Depth    string
	Velocity string
	Scour    string
}

// NotApplicable marks a result field that could not be computed for a row.
const NotApplicable = "N/A"

// ResultColumns lists the computed output fields in report order.
var ResultColumns = []string{"F1", "L1", "F2", "L2", "F3", "L3", "Fd2", "Ld2"}

// EvaluateRecords applies the force calculation to every record using the
// shared leg geometry and load parameters. Rows whose mapped fields are
// missing or non-numeric are kept, with every result field set to the
// not-applicable marker; no row is dropped and input order is preserved.
// A parameter-contract violation (negative scour in the data, missing pile
// diameter, and so on) aborts the whole batch, since it indicates a
// misconfigured run rather than bad row data.
func EvaluateRecords(records []Record, mapping FieldMapping, leg LegGeometry, params LoadParameters) ([]Record, error) {
	// Surface parameter problems before touching any row.
	if _, err := Calculate(leg, HydraulicState{WaterDepth: decimal.New(1, 0), WaterVelocity: decimal.Decimal{}}, params); err != nil {
		return nil, err
	}

	out := make([]Record, 0, len(records))
	for _, rec := range records {
		row := make(Record, len(rec)+len(ResultColumns))
		for k, v := range rec {
			row[k] = v
		}

		depth, okDepth := parseField(rec, mapping.Depth)
		velocity, okVelocity := parseField(rec, mapping.Velocity)
		scour, okScour := params.ScourDepth, true
		if mapping.Scour != "" {
			scour, okScour = parseField(rec, mapping.Scour)
		}

		if !okDepth || !okVelocity || !okScour {
			markNotApplicable(row)
			out = append(out, row)
			continue
		}

		rowParams := params
		rowParams.ScourDepth = scour

		result, err := Calculate(leg, HydraulicState{WaterDepth: depth, WaterVelocity: velocity}, rowParams)
		if err != nil {
			return nil, err
		}

		row["F1"] = displayValue(result.F1)
		row["L1"] = displayValue(result.L1)
		row["F2"] = displayValue(result.F2)
		row["L2"] = displayValue(result.L2)
		row["F3"] = displayValue(result.F3)
		row["L3"] = displayValue(result.L3)
		row["Fd2"] = displayValue(result.Fd2)
		row["Ld2"] = displayValue(result.Ld2)
		out = append(out, row)
	}

	return out, nil
}

// parseField reads a mapped cell as exact decimal. Absent, empty or
// non-numeric cells (including NaN text from upstream exports) report false.
func parseField(rec Record, name string) (decimal.Decimal, bool) {
	raw, ok := rec[name]
	if !ok {
		return decimal.Decimal{}, false
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return v, true
}

// displayValue converts a result to display precision, degrading anything
// that is no longer finite as a float to the not-applicable marker.
func displayValue(v decimal.Decimal) string {
	f, _ := v.Float64()
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return NotApplicable
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func markNotApplicable(row Record) {
	for _, col := range ResultColumns {
		row[col] = NotApplicable
	}
}
