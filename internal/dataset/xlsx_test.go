package dataset

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"

	"github.com/TurnbullEngineering/water-flow-forces/internal/forces"
)

func createTestXLSX(t *testing.T, sheets map[string][][]string) string {
	t.Helper()
	f := xlsx.NewFile()
	for name, rows := range sheets {
		sheet, err := f.AddSheet(name)
		require.NoError(t, err)
		for _, rowData := range rows {
			row := sheet.AddRow()
			for _, cellData := range rowData {
				cell := row.AddCell()
				cell.SetString(cellData)
			}
		}
	}
	path := filepath.Join(t.TempDir(), "test.xlsx")
	err := f.Save(path)
	require.NoError(t, err)
	return path
}

func TestRead_NormalisesWrappedHeaders(t *testing.T) {
	path := createTestXLSX(t, map[string][][]string{
		"Sheet1": {
			{"Tower", "PMF Event\nPeak Flood Depth", "  PMF Event Peak Velocity ", "PMF Event Scour"},
			{"T1", "8.0", "3.0", "1.0"},
			{"T2", "6.5", "2.1", "0.5"},
		},
	})

	table, err := Read(path, Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"Tower", "PMF Event Peak Flood Depth", "PMF Event Peak Velocity", "PMF Event Scour"}, table.Headers)
	require.Len(t, table.Records, 2)
	assert.Equal(t, "8.0", table.Records[0]["PMF Event Peak Flood Depth"])
	assert.Equal(t, "3.0", table.Records[0]["PMF Event Peak Velocity"])
	assert.Equal(t, "T2", table.Records[1]["Tower"])
}

func TestRead_ShortRowsPadWithEmptyCells(t *testing.T) {
	path := createTestXLSX(t, map[string][][]string{
		"Sheet1": {
			{"Tower", "PMF Event Peak Flood Depth", "PMF Event Peak Velocity"},
			{"T1", "8.0"},
		},
	})

	table, err := Read(path, Options{})
	require.NoError(t, err)
	require.Len(t, table.Records, 1)
	assert.Equal(t, "", table.Records[0]["PMF Event Peak Velocity"])
}

func TestRead_SheetSelection(t *testing.T) {
	path := createTestXLSX(t, map[string][][]string{
		"Cover": {{"notes"}},
		"Data":  {{"Tower"}, {"T1"}},
	})

	table, err := Read(path, Options{SheetName: "Data"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Tower"}, table.Headers)

	_, err = Read(path, Options{SheetName: "Missing"})
	require.Error(t, err)

	_, err = Read(path, Options{SheetIndex: 5})
	require.Error(t, err)
}

func TestRequireColumns(t *testing.T) {
	table := &Table{Headers: []string{"Tower", "PMF Event Peak Flood Depth", "PMF Event Peak Velocity"}}

	mapping := MappingFor("PMF")
	err := table.RequireColumns(mapping)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PMF Event Scour")

	table.Headers = append(table.Headers, "PMF Event Scour")
	require.NoError(t, table.RequireColumns(mapping))
}

func TestMappingFor(t *testing.T) {
	m := MappingFor("1% AEP")
	assert.Equal(t, "1% AEP Event Peak Flood Depth", m.Depth)
	assert.Equal(t, "1% AEP Event Peak Velocity", m.Velocity)
	assert.Equal(t, "1% AEP Event Scour", m.Scour)
}

func TestWrite_RoundTrip(t *testing.T) {
	headers := []string{"Tower", "F1", "L1"}
	records := []forces.Record{
		{"Tower": "T1", "F1": "81.9", "L1": "4"},
		{"Tower": "T2", "F1": forces.NotApplicable, "L1": forces.NotApplicable},
	}

	path := filepath.Join(t.TempDir(), "out.xlsx")
	require.NoError(t, Write(path, headers, records))

	table, err := Read(path, Options{})
	require.NoError(t, err)
	assert.Equal(t, headers, table.Headers)
	require.Len(t, table.Records, 2)
	assert.Equal(t, "T1", table.Records[0]["Tower"])
	assert.Equal(t, "81.9", table.Records[0]["F1"])
	assert.Equal(t, forces.NotApplicable, table.Records[1]["F1"])
}
