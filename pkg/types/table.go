// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared data model for the bead-array QC
// pipeline: well tables with tagged cell values, QC records, and the
// per-stage configuration structs.
package types

import "strconv"

// CellKind tags the state of a single table cell. A cell starts Numeric
// and only ever moves toward a sentinel: bead masking produces Missing,
// the plate decision replaces Missing and (on a standards failure)
// Numeric with the exported sentinels.
type CellKind int

const (
	// CellNumeric is a valid measured value.
	CellNumeric CellKind = iota
	// CellMissing marks a value masked by bead QC but not yet finalized.
	CellMissing
	// CellFailedBead marks a value discarded for insufficient bead count.
	CellFailedBead
	// CellFailedStandards marks a value discarded because the plate's
	// standard curves failed QC.
	CellFailedStandards
)

// Exported sentinel strings, written verbatim into cleaned CSV output.
const (
	SentinelFailedBead      = "Failed QC (bead)"
	SentinelFailedStandards = "Failed QC (standards)"
)

// Cell is a tagged numeric-or-sentinel value.
type Cell struct {
	Kind  CellKind
	Value float64
}

// Numeric returns a cell holding a measured value.
func Numeric(v float64) Cell { return Cell{Kind: CellNumeric, Value: v} }

// Missing returns a masked cell.
func Missing() Cell { return Cell{Kind: CellMissing} }

// FailedBead returns the bead-failure sentinel cell.
func FailedBead() Cell { return Cell{Kind: CellFailedBead} }

// FailedStandards returns the standards-failure sentinel cell.
func FailedStandards() Cell { return Cell{Kind: CellFailedStandards} }

// IsNumeric reports whether the cell still holds a measured value.
func (c Cell) IsNumeric() bool { return c.Kind == CellNumeric }

// String renders the cell the way it appears in cleaned output. Missing
// cells render as the bead sentinel: by the time a table is serialized the
// plate decision has replaced every Missing cell, so a Missing cell here
// is a masked value that fell through, and bead masking is what created it.
func (c Cell) String() string {
	switch c.Kind {
	case CellNumeric:
		return strconv.FormatFloat(c.Value, 'g', -1, 64)
	case CellFailedStandards:
		return SentinelFailedStandards
	default:
		return SentinelFailedBead
	}
}

// WellRow is one plate well: its coordinate, sample label, and one value
// per analyte, indexed parallel to WellTable.Analytes.
type WellRow struct {
	Location string
	Sample   string
	Values   []Cell
}

// WellTable is an ordered well-by-analyte table. Two instances exist per
// plate, one for bead counts and one for median MFI. Invariants: Location
// values are unique, and every row has len(Values) == len(Analytes).
type WellTable struct {
	Analytes []string
	Rows     []WellRow
}

// AnalyteIndex returns the column index of name, or -1 if absent.
func (t *WellTable) AnalyteIndex(name string) int {
	for i, a := range t.Analytes {
		if a == name {
			return i
		}
	}
	return -1
}

// Locations returns the table's Location column in row order.
func (t *WellTable) Locations() []string {
	locs := make([]string, len(t.Rows))
	for i, r := range t.Rows {
		locs[i] = r.Location
	}
	return locs
}
