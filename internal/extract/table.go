// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"math"
	"strconv"
	"strings"

	"github.com/seralab/beadqc/internal/reader"
	"github.com/seralab/beadqc/pkg/types"
)

// Header column names that bound the extracted table.
const (
	columnLocation    = "Location"
	columnSample      = "Sample"
	columnTotalEvents = "Total Events"
)

// ParseTable parses the record range as a well table. The first record of
// the range is the header; columns are trimmed to the closed range from
// Location up to the column before Total Events, and the analyte columns
// are everything after Sample within that range. Identity columns pass
// through untouched; analyte cells must be numeric or empty.
func ParseTable(doc *reader.Document, rng Range) (*types.WellTable, error) {
	header := doc.Records[rng.Start]

	locIdx := headerIndex(header, columnLocation)
	if locIdx < 0 {
		return nil, &SchemaError{Column: columnLocation}
	}
	teIdx := headerIndex(header, columnTotalEvents)
	if teIdx < 0 {
		return nil, &SchemaError{Column: columnTotalEvents}
	}
	sampIdx := headerIndex(header, columnSample)
	if sampIdx < 0 || sampIdx <= locIdx || sampIdx >= teIdx {
		return nil, &SchemaError{Column: columnSample, Detail: "not between Location and Total Events"}
	}

	table := &types.WellTable{}
	for _, h := range header[sampIdx+1 : teIdx] {
		table.Analytes = append(table.Analytes, strings.TrimSpace(h))
	}

	seen := make(map[string]bool)
	for i := rng.Start + 1; i < rng.End; i++ {
		rec := pad(doc.Records[i], len(header))

		row := types.WellRow{
			Location: strings.TrimSpace(rec[locIdx]),
			Sample:   strings.TrimSpace(rec[sampIdx]),
		}
		if row.Location != "" && seen[row.Location] {
			return nil, &SchemaError{Column: columnLocation, Detail: "duplicate well " + row.Location}
		}
		seen[row.Location] = true

		for c := sampIdx + 1; c < teIdx; c++ {
			cell, err := parseCell(rec[c], strings.TrimSpace(header[c]))
			if err != nil {
				return nil, err
			}
			row.Values = append(row.Values, cell)
		}
		table.Rows = append(table.Rows, row)
	}

	return table, nil
}

// parseCell converts one analyte cell. Empty cells are missing values;
// everything else must parse as a finite number, allowing thousands
// separators some acquisition locales emit. ParseFloat accepts literal
// NaN and Inf spellings, but a non-finite count or MFI can never come
// from an instrument and would slip past every threshold comparison, so
// those are schema errors rather than values.
func parseCell(raw, column string) (types.Cell, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return types.Missing(), nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		v, err = strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	}
	if err != nil {
		return types.Cell{}, &SchemaError{Column: column, Detail: "non-numeric value " + strconv.Quote(raw)}
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return types.Cell{}, &SchemaError{Column: column, Detail: "non-finite value " + strconv.Quote(raw)}
	}
	return types.Numeric(v), nil
}

func headerIndex(header []string, name string) int {
	for i, h := range header {
		if strings.TrimSpace(h) == name {
			return i
		}
	}
	return -1
}

func pad(rec []string, width int) []string {
	if len(rec) >= width {
		return rec[:width]
	}
	padded := make([]string, width)
	copy(padded, rec)
	return padded
}
