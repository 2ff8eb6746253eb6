// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package qc

import (
	"github.com/seralab/beadqc/pkg/types"
)

// SubtractBackground subtracts the designated background analyte's value
// from every other analyte, well by well. The background column itself is
// left untouched. A masked cell stays masked: subtracting from or with a
// missing value yields missing, never zero.
func SubtractBackground(mfi *types.WellTable, background string) error {
	bg := mfi.AnalyteIndex(background)
	if bg < 0 {
		return &ConfigError{Setting: "background_analyte", Detail: "analyte " + background + " not present in MFI table"}
	}

	for i := range mfi.Rows {
		row := &mfi.Rows[i]
		bgCell := row.Values[bg]
		for c := range row.Values {
			if c == bg {
				continue
			}
			cell := row.Values[c]
			if !cell.IsNumeric() {
				continue
			}
			if !bgCell.IsNumeric() {
				row.Values[c] = types.Missing()
				continue
			}
			row.Values[c] = types.Numeric(cell.Value - bgCell.Value)
		}
	}
	return nil
}
