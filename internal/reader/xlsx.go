// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package reader

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// readWorkbook flattens the first worksheet of an xlsx export into the
// same record sequence the text reader produces.
func readWorkbook(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook %s has no sheets", path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q of %s: %w", sheets[0], path, err)
	}
	return rows, nil
}
