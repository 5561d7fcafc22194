// Package dataset reads and writes the flood-event spreadsheets the force
// calculator is run against. It owns the tabular file format and the
// event-to-column-name resolution; the calculation core only ever sees
// records and a field mapping.
package dataset

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/TurnbullEngineering/water-flow-forces/internal/forces"
)

// Options configures spreadsheet reading.
type Options struct {
	SheetIndex int    // default 0
	SheetName  string // if set, overrides SheetIndex
}

// Table is a spreadsheet sheet as ordered headers plus string records.
type Table struct {
	Headers []string
	Records []forces.Record
}

// MappingFor resolves the column names carrying the hydraulics for a
// flood event, e.g. "PMF Event Peak Flood Depth".
func MappingFor(event string) forces.FieldMapping {
	return forces.FieldMapping{
		Depth:    fmt.Sprintf("%s Event Peak Flood Depth", event),
		Velocity: fmt.Sprintf("%s Event Peak Velocity", event),
		Scour:    fmt.Sprintf("%s Event Scour", event),
	}
}

// Read loads a sheet into a Table. Column names are normalised (embedded
// newlines become spaces, surrounding whitespace is trimmed) so that
// wrapped spreadsheet headers still match the event column names.
func Read(path string, opts Options) (*Table, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "dataset: open file")
	}

	sheet, err := getSheet(f, opts)
	if err != nil {
		return nil, err
	}
	if len(sheet.Rows) == 0 {
		return nil, eris.Errorf("dataset: sheet %q is empty", sheet.Name)
	}

	headers := make([]string, len(sheet.Rows[0].Cells))
	for i, cell := range sheet.Rows[0].Cells {
		headers[i] = NormalizeHeader(cell.String())
	}

	records := make([]forces.Record, 0, len(sheet.Rows)-1)
	for _, row := range sheet.Rows[1:] {
		rec := make(forces.Record, len(headers))
		for i, header := range headers {
			if i < len(row.Cells) {
				rec[header] = strings.TrimSpace(row.Cells[i].String())
			} else {
				rec[header] = ""
			}
		}
		records = append(records, rec)
	}

	return &Table{Headers: headers, Records: records}, nil
}

// RequireColumns verifies that every mapped column exists in the table.
func (t *Table) RequireColumns(mapping forces.FieldMapping) error {
	var missing []string
	for _, name := range []string{mapping.Velocity, mapping.Depth, mapping.Scour} {
		if name == "" {
			continue
		}
		if !t.hasHeader(name) {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return eris.Errorf("dataset: missing required columns: %s", strings.Join(missing, ", "))
	}
	return nil
}

// Write saves records to an xlsx file with the given column order.
// Numeric cell text is written as numbers; everything else, including the
// not-applicable marker, is written as text.
func Write(path string, headers []string, records []forces.Record) error {
	f := xlsx.NewFile()
	sheet, err := f.AddSheet("Results")
	if err != nil {
		return eris.Wrap(err, "dataset: add sheet")
	}

	headerRow := sheet.AddRow()
	for _, h := range headers {
		headerRow.AddCell().SetString(h)
	}

	for _, rec := range records {
		row := sheet.AddRow()
		for _, h := range headers {
			cell := row.AddCell()
			value := rec[h]
			if num, err := strconv.ParseFloat(value, 64); err == nil {
				cell.SetFloat(num)
			} else {
				cell.SetString(value)
			}
		}
	}

	if err := f.Save(path); err != nil {
		return eris.Wrap(err, "dataset: save file")
	}
	return nil
}

// NormalizeHeader collapses wrapped header text to a single line.
func NormalizeHeader(h string) string {
	return strings.TrimSpace(strings.ReplaceAll(h, "\n", " "))
}

func (t *Table) hasHeader(name string) bool {
	for _, h := range t.Headers {
		if h == name {
			return true
		}
	}
	return false
}

func getSheet(f *xlsx.File, opts Options) (*xlsx.Sheet, error) {
	if opts.SheetName != "" {
		sheet, ok := f.Sheet[opts.SheetName]
		if !ok {
			return nil, eris.Errorf("dataset: sheet %q not found", opts.SheetName)
		}
		return sheet, nil
	}
	if opts.SheetIndex >= len(f.Sheets) {
		return nil, eris.Errorf("dataset: sheet index %d out of range (file has %d sheets)", opts.SheetIndex, len(f.Sheets))
	}
	return f.Sheets[opts.SheetIndex], nil
}
