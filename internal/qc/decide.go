// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package qc

import (
	"fmt"
	"io"

	"github.com/seralab/beadqc/pkg/types"
)

// Decide applies the plate-level standards policy and finalizes the MFI
// table's sentinels. A fit passes when its R² strictly exceeds the
// threshold; the plate passes when at least one fit passes.
//
// On a passing plate, cells masked by bead QC become the bead sentinel
// and numeric cells are kept. On a failing plate every cell, numeric or
// masked, becomes the standards sentinel: a standards failure invalidates
// the whole plate regardless of per-well bead quality.
func Decide(fits []types.AnalyteFit, rsqThreshold float64, mfi *types.WellTable, plate string, w io.Writer) types.PlateDecision {
	decision := types.PlateDecision{Plate: plate}
	for _, fit := range fits {
		fit.Passed = fit.RSquared > rsqThreshold
		if fit.Passed {
			decision.Passed = true
			decision.PassingAnalytes = append(decision.PassingAnalytes, fit.Analyte)
		}
		decision.Fits = append(decision.Fits, fit)
	}

	if decision.Passed {
		for i := range mfi.Rows {
			row := &mfi.Rows[i]
			for c := range row.Values {
				if row.Values[c].Kind == types.CellMissing {
					row.Values[c] = types.FailedBead()
				}
			}
		}
		fmt.Fprintf(w, "plate %s passed standards QC (%d/%d analytes)\n", plate, len(decision.PassingAnalytes), len(fits))
		return decision
	}

	for i := range mfi.Rows {
		row := &mfi.Rows[i]
		for c := range row.Values {
			row.Values[c] = types.FailedStandards()
		}
	}
	fmt.Fprintf(w, "plate %s FAILED standards QC: no analyte reached R² > %v; all values discarded\n", plate, rsqThreshold)
	return decision
}
