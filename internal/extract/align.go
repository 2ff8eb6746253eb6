// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"fmt"
	"io"

	"github.com/seralab/beadqc/pkg/types"
)

// ValidateAlignment checks that the bead-count and MFI tables describe the
// same plate: every well carries a Location and a Sample in both tables,
// the well ordering matches, and the analyte column sequences are
// identical. Checks run in that order and the first violation is returned.
// On success a confirmation line is written to w.
func ValidateAlignment(bead, mfi *types.WellTable, w io.Writer) error {
	for _, t := range []struct {
		name  string
		table *types.WellTable
	}{{"bead-count", bead}, {"MFI", mfi}} {
		for i, row := range t.table.Rows {
			if row.Location == "" {
				return &AlignmentError{Check: "location", Detail: fmt.Sprintf("%s table row %d has no Location", t.name, i+1)}
			}
		}
	}

	for _, t := range []struct {
		name  string
		table *types.WellTable
	}{{"bead-count", bead}, {"MFI", mfi}} {
		for _, row := range t.table.Rows {
			if row.Sample == "" {
				return &AlignmentError{Check: "sample", Detail: fmt.Sprintf("%s table well %s has no Sample", t.name, row.Location)}
			}
		}
	}

	if len(bead.Rows) != len(mfi.Rows) {
		return &AlignmentError{Check: "well order", Detail: fmt.Sprintf("bead-count table has %d wells, MFI table has %d", len(bead.Rows), len(mfi.Rows))}
	}
	for i := range bead.Rows {
		if bead.Rows[i].Location != mfi.Rows[i].Location {
			return &AlignmentError{Check: "well order", Detail: fmt.Sprintf("row %d: bead-count well %s vs MFI well %s", i+1, bead.Rows[i].Location, mfi.Rows[i].Location)}
		}
	}

	if len(bead.Analytes) != len(mfi.Analytes) {
		return &AlignmentError{Check: "analyte columns", Detail: fmt.Sprintf("bead-count table has %d analytes, MFI table has %d", len(bead.Analytes), len(mfi.Analytes))}
	}
	for i := range bead.Analytes {
		if bead.Analytes[i] != mfi.Analytes[i] {
			return &AlignmentError{Check: "analyte columns", Detail: fmt.Sprintf("column %d: bead-count %q vs MFI %q", i+1, bead.Analytes[i], mfi.Analytes[i])}
		}
	}

	fmt.Fprintf(w, "bead-count and MFI tables aligned: %d wells, %d analytes\n", len(mfi.Rows), len(mfi.Analytes))
	return nil
}
