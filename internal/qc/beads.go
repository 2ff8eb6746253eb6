// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package qc applies the plate quality-control chain: bead-count masking,
// background subtraction, and the plate-level standards decision with
// sentinel substitution.
package qc

import (
	"fmt"
	"io"
	"strings"

	"github.com/seralab/beadqc/pkg/types"
)

// MaskLowBeads replaces every bead count strictly below threshold with the
// bead-failure sentinel and returns one record per failing (well, analyte)
// pair, tagged with the originating sample and plate. Counts at or above
// the threshold are left untouched.
func MaskLowBeads(bead *types.WellTable, threshold int, plate string) []types.LowBeadRecord {
	var records []types.LowBeadRecord
	for i := range bead.Rows {
		row := &bead.Rows[i]
		for c, cell := range row.Values {
			if cell.IsNumeric() && cell.Value < float64(threshold) {
				row.Values[c] = types.FailedBead()
				records = append(records, types.LowBeadRecord{
					Location: row.Location,
					Sample:   row.Sample,
					Antigen:  bead.Analytes[c],
					Plate:    plate,
				})
			}
		}
	}
	return records
}

// MaskWells blanks the MFI values of every well that appears in the
// low-bead record list. Masking is applied at well granularity: one
// failing analyte discards the whole well's MFI row, even though the
// failure list records individual (well, analyte) pairs.
func MaskWells(mfi *types.WellTable, records []types.LowBeadRecord, w io.Writer) {
	failed := make(map[string]bool)
	for _, rec := range records {
		failed[rec.Location] = true
	}
	if len(failed) == 0 {
		return
	}

	var masked []string
	for i := range mfi.Rows {
		row := &mfi.Rows[i]
		if !failed[row.Location] {
			continue
		}
		for c := range row.Values {
			row.Values[c] = types.Missing()
		}
		masked = append(masked, row.Location)
	}

	fmt.Fprintf(w, "masked %d well(s) for low bead counts: %s\n", len(masked), strings.Join(masked, ", "))
}
