// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "testing"

func TestCellString(t *testing.T) {
	tests := []struct {
		name string
		cell Cell
		want string
	}{
		{"integer value", Numeric(400), "400"},
		{"fractional value", Numeric(500.5), "500.5"},
		{"negative value", Numeric(-12.25), "-12.25"},
		{"bead sentinel", FailedBead(), SentinelFailedBead},
		{"standards sentinel", FailedStandards(), SentinelFailedStandards},
		{"missing renders as bead sentinel", Missing(), SentinelFailedBead},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cell.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCellIsNumeric(t *testing.T) {
	if !Numeric(0).IsNumeric() {
		t.Error("Numeric(0) must be numeric")
	}
	for _, c := range []Cell{Missing(), FailedBead(), FailedStandards()} {
		if c.IsNumeric() {
			t.Errorf("%+v must not be numeric", c)
		}
	}
}

func TestWellTableAnalyteIndex(t *testing.T) {
	table := &WellTable{Analytes: []string{"AMA1", "MSP1", "BSA"}}

	if got := table.AnalyteIndex("MSP1"); got != 1 {
		t.Errorf("AnalyteIndex(MSP1) = %d, want 1", got)
	}
	if got := table.AnalyteIndex("CSP"); got != -1 {
		t.Errorf("AnalyteIndex(CSP) = %d, want -1", got)
	}
}

func TestWellTableLocations(t *testing.T) {
	table := &WellTable{
		Rows: []WellRow{{Location: "A1"}, {Location: "B1"}},
	}
	locs := table.Locations()
	if len(locs) != 2 || locs[0] != "A1" || locs[1] != "B1" {
		t.Errorf("Locations() = %v", locs)
	}
}
