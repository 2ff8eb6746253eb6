// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"errors"
	"testing"

	"github.com/seralab/beadqc/internal/reader"
	"github.com/seralab/beadqc/pkg/types"
)

func docFromRecords(records [][]string) *reader.Document {
	return &reader.Document{Name: "test", Records: records}
}

func TestParseTableTrimsToAnalyteRange(t *testing.T) {
	doc := docFromRecords([][]string{
		{"Well#", "Location", "Sample", "AMA1", "MSP1", "Total Events", "Notes"},
		{"1", "A1", "Standard1", "999", "50", "120", "ok"},
		{"2", "B1", "Sample 1", "500.5", "300", "118", ""},
	})

	table, err := ParseTable(doc, Range{Start: 0, End: 3})
	if err != nil {
		t.Fatalf("ParseTable: %v", err)
	}

	wantAnalytes := []string{"AMA1", "MSP1"}
	if len(table.Analytes) != len(wantAnalytes) {
		t.Fatalf("analytes = %v, want %v", table.Analytes, wantAnalytes)
	}
	for i := range wantAnalytes {
		if table.Analytes[i] != wantAnalytes[i] {
			t.Errorf("analyte %d = %q, want %q", i, table.Analytes[i], wantAnalytes[i])
		}
	}

	if len(table.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(table.Rows))
	}
	row := table.Rows[1]
	if row.Location != "B1" || row.Sample != "Sample 1" {
		t.Errorf("identity columns = (%q, %q), want (B1, Sample 1)", row.Location, row.Sample)
	}
	if !row.Values[0].IsNumeric() || row.Values[0].Value != 500.5 {
		t.Errorf("AMA1 cell = %+v, want numeric 500.5", row.Values[0])
	}
}

func TestParseTableMissingRequiredColumns(t *testing.T) {
	tests := []struct {
		name       string
		header     []string
		wantColumn string
	}{
		{"no Location", []string{"Sample", "AMA1", "Total Events"}, "Location"},
		{"no Total Events", []string{"Location", "Sample", "AMA1"}, "Total Events"},
		{"no Sample", []string{"Location", "AMA1", "Total Events"}, "Sample"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := docFromRecords([][]string{tt.header, {"A1", "1", "120"}})
			_, err := ParseTable(doc, Range{Start: 0, End: 2})

			var schemaErr *SchemaError
			if !errors.As(err, &schemaErr) {
				t.Fatalf("error = %v, want *SchemaError", err)
			}
			if schemaErr.Column != tt.wantColumn {
				t.Errorf("column = %q, want %q", schemaErr.Column, tt.wantColumn)
			}
		})
	}
}

func TestParseTableCellHandling(t *testing.T) {
	doc := docFromRecords([][]string{
		{"Location", "Sample", "AMA1", "MSP1", "Total Events"},
		{"A1", "Sample 1", "", "1,234", "120"},
	})

	table, err := ParseTable(doc, Range{Start: 0, End: 2})
	if err != nil {
		t.Fatalf("ParseTable: %v", err)
	}

	if table.Rows[0].Values[0].Kind != types.CellMissing {
		t.Errorf("empty cell = %+v, want missing", table.Rows[0].Values[0])
	}
	if got := table.Rows[0].Values[1]; !got.IsNumeric() || got.Value != 1234 {
		t.Errorf("thousands-separated cell = %+v, want numeric 1234", got)
	}
}

func TestParseTableNonNumericAnalyteCell(t *testing.T) {
	doc := docFromRecords([][]string{
		{"Location", "Sample", "AMA1", "Total Events"},
		{"A1", "Sample 1", "saturated", "120"},
	})

	_, err := ParseTable(doc, Range{Start: 0, End: 2})
	var schemaErr *SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("error = %v, want *SchemaError", err)
	}
	if schemaErr.Column != "AMA1" {
		t.Errorf("column = %q, want AMA1", schemaErr.Column)
	}
}

func TestParseTableNonFiniteAnalyteCell(t *testing.T) {
	// ParseFloat accepts these spellings, but a NaN count would compare
	// false against any bead threshold and slip through masking.
	for _, raw := range []string{"NaN", "Inf", "-Inf", "+Inf"} {
		t.Run(raw, func(t *testing.T) {
			doc := docFromRecords([][]string{
				{"Location", "Sample", "AMA1", "Total Events"},
				{"A1", "Sample 1", raw, "120"},
			})

			_, err := ParseTable(doc, Range{Start: 0, End: 2})
			var schemaErr *SchemaError
			if !errors.As(err, &schemaErr) {
				t.Fatalf("error = %v, want *SchemaError", err)
			}
			if schemaErr.Column != "AMA1" {
				t.Errorf("column = %q, want AMA1", schemaErr.Column)
			}
		})
	}
}

func TestParseTableDuplicateLocation(t *testing.T) {
	doc := docFromRecords([][]string{
		{"Location", "Sample", "AMA1", "Total Events"},
		{"A1", "Sample 1", "10", "120"},
		{"A1", "Sample 2", "20", "118"},
	})

	_, err := ParseTable(doc, Range{Start: 0, End: 3})
	var schemaErr *SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("error = %v, want *SchemaError for duplicate well", err)
	}
}

func TestParseTablePadsShortRows(t *testing.T) {
	doc := docFromRecords([][]string{
		{"Location", "Sample", "AMA1", "MSP1", "Total Events"},
		{"A1", "Sample 1", "10"},
	})

	table, err := ParseTable(doc, Range{Start: 0, End: 2})
	if err != nil {
		t.Fatalf("ParseTable: %v", err)
	}
	if table.Rows[0].Values[1].Kind != types.CellMissing {
		t.Errorf("padded cell = %+v, want missing", table.Rows[0].Values[1])
	}
}
