// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package qc

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seralab/beadqc/pkg/types"
)

func beadTable() *types.WellTable {
	return &types.WellTable{
		Analytes: []string{"AMA1", "MSP1"},
		Rows: []types.WellRow{
			{Location: "A1", Sample: "Standard1", Values: []types.Cell{types.Numeric(100), types.Numeric(100)}},
			{Location: "B1", Sample: "Sample 1", Values: []types.Cell{types.Numeric(49), types.Numeric(100)}},
			{Location: "C1", Sample: "Sample 2", Values: []types.Cell{types.Numeric(50), types.Numeric(51)}},
		},
	}
}

func TestMaskLowBeadsStrictThreshold(t *testing.T) {
	bead := beadTable()
	records := MaskLowBeads(bead, 50, "plateA_run1")

	// Only the count of 49 is strictly below 50; the cells at exactly 50
	// and above are untouched.
	require.Len(t, records, 1)
	assert.Equal(t, types.LowBeadRecord{
		Location: "B1",
		Sample:   "Sample 1",
		Antigen:  "AMA1",
		Plate:    "plateA_run1",
	}, records[0])

	assert.Equal(t, types.CellFailedBead, bead.Rows[1].Values[0].Kind)
	assert.True(t, bead.Rows[1].Values[1].IsNumeric())
	assert.True(t, bead.Rows[2].Values[0].IsNumeric(), "count at threshold must pass")
}

func TestMaskLowBeadsMultiplePairs(t *testing.T) {
	bead := beadTable()
	records := MaskLowBeads(bead, 60, "p")

	// B1/AMA1 (49), C1/AMA1 (50), C1/MSP1 (51) all fall below 60.
	require.Len(t, records, 3)
	assert.Equal(t, "B1", records[0].Location)
	assert.Equal(t, "C1", records[1].Location)
	assert.Equal(t, "AMA1", records[1].Antigen)
	assert.Equal(t, "MSP1", records[2].Antigen)
}

func TestMaskWellsIsWellGranular(t *testing.T) {
	mfi := &types.WellTable{
		Analytes: []string{"AMA1", "MSP1"},
		Rows: []types.WellRow{
			{Location: "A1", Sample: "Standard1", Values: []types.Cell{types.Numeric(999), types.Numeric(500)}},
			{Location: "B1", Sample: "Sample 1", Values: []types.Cell{types.Numeric(400), types.Numeric(300)}},
		},
	}
	records := []types.LowBeadRecord{
		{Location: "B1", Sample: "Sample 1", Antigen: "AMA1", Plate: "p"},
	}

	var buf bytes.Buffer
	MaskWells(mfi, records, &buf)

	// One failing analyte blanks the whole well, not just its own column.
	assert.Equal(t, types.CellMissing, mfi.Rows[1].Values[0].Kind)
	assert.Equal(t, types.CellMissing, mfi.Rows[1].Values[1].Kind)

	// Unrelated wells keep their values.
	assert.True(t, mfi.Rows[0].Values[0].IsNumeric())
	assert.Contains(t, buf.String(), "B1")
}

func TestMaskWellsNoRecordsIsSilent(t *testing.T) {
	mfi := &types.WellTable{
		Analytes: []string{"AMA1"},
		Rows: []types.WellRow{
			{Location: "A1", Sample: "Sample 1", Values: []types.Cell{types.Numeric(1)}},
		},
	}

	var buf bytes.Buffer
	MaskWells(mfi, nil, &buf)

	assert.True(t, mfi.Rows[0].Values[0].IsNumeric())
	assert.Zero(t, buf.Len())
}
