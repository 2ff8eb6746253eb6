// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract carves the bead-count and median-MFI tables out of a
// raw instrument export and validates that the two describe the same
// plate. The export format is not machine-readable: blocks are located
// by keyword markers amid free-form header and footer noise.
package extract

import (
	"strings"

	"github.com/seralab/beadqc/internal/reader"
	"github.com/seralab/beadqc/pkg/types"
)

// Structural markers recognized in export files.
const (
	markerMedian   = "Median"
	markerDataType = "DataType"
	markerCount    = "Count"
	markerPerBead  = "Per Bead"
)

// Range is a half-open record range [Start, End) within a document. The
// first record of the range is the block's column header.
type Range struct {
	Start int
	End   int
}

// Terminator finds the end of a data block that starts at a given record.
// The two export variants differ in how a block ends: one writes a footer
// marker after the data, the other writes exactly one record per well.
// Each variant is one implementation.
type Terminator interface {
	Name() string
	End(doc *reader.Document, start int) (int, error)
}

type markerTerminator struct{}

func (markerTerminator) Name() string { return "marker" }

func (markerTerminator) End(doc *reader.Document, start int) (int, error) {
	for i := start + 1; i < len(doc.Records); i++ {
		if blankRecord(doc.Records[i]) || isTerminatorRecord(doc.Records[i]) {
			return i, nil
		}
	}
	return 0, &BlockNotFoundError{Marker: "terminator", Detail: "no terminator marker after block start"}
}

type fixedCountTerminator struct {
	wells int
}

func (fixedCountTerminator) Name() string { return "fixed" }

func (t fixedCountTerminator) End(doc *reader.Document, start int) (int, error) {
	// One header record plus one record per well.
	end := start + 1 + t.wells
	if end > len(doc.Records) {
		return 0, &BlockNotFoundError{Marker: "terminator", Detail: "document truncated before configured well count"}
	}
	return end, nil
}

// SelectTerminator returns the termination strategy for the block starting
// at start. In auto mode the document decides: a terminator marker (or
// blank record) after the start selects the marker strategy, otherwise the
// configured well count is used.
func SelectTerminator(cfg types.ExtractConfig, doc *reader.Document, start int) Terminator {
	switch cfg.Termination {
	case types.TerminationMarker:
		return markerTerminator{}
	case types.TerminationFixed:
		return fixedCountTerminator{wells: cfg.WellCount}
	}

	for i := start + 1; i < len(doc.Records); i++ {
		if blankRecord(doc.Records[i]) || isTerminatorRecord(doc.Records[i]) {
			return markerTerminator{}
		}
	}
	return fixedCountTerminator{wells: cfg.WellCount}
}

// LocateBlocks returns the record ranges of the median-MFI block and the
// bead-count block, in that order. The MFI block follows the first record
// carrying the Median marker; the bead-count block follows the last
// DataType/Count record, excluding any "Per Bead" variant.
func LocateBlocks(doc *reader.Document, cfg types.ExtractConfig) (mfi, bead Range, err error) {
	mfiMark := -1
	for i, rec := range doc.Records {
		if recordContains(rec, markerMedian) && !recordContains(rec, markerPerBead) {
			mfiMark = i
			break
		}
	}
	if mfiMark < 0 {
		return Range{}, Range{}, &BlockNotFoundError{Marker: markerMedian}
	}

	beadMark := -1
	for i, rec := range doc.Records {
		if isCountMarker(rec) {
			beadMark = i
		}
	}
	if beadMark < 0 {
		return Range{}, Range{}, &BlockNotFoundError{Marker: markerDataType + "/" + markerCount}
	}

	mfi, err = carve(doc, cfg, mfiMark+1)
	if err != nil {
		return Range{}, Range{}, err
	}
	bead, err = carve(doc, cfg, beadMark+1)
	if err != nil {
		return Range{}, Range{}, err
	}
	return mfi, bead, nil
}

func carve(doc *reader.Document, cfg types.ExtractConfig, start int) (Range, error) {
	if start >= len(doc.Records) {
		return Range{}, &BlockNotFoundError{Marker: "block", Detail: "marker at end of document"}
	}
	end, err := SelectTerminator(cfg, doc, start).End(doc, start)
	if err != nil {
		return Range{}, err
	}
	if end <= start+1 {
		return Range{}, &BlockNotFoundError{Marker: "block", Detail: "empty data block"}
	}
	return Range{Start: start, End: end}, nil
}

// isCountMarker reports whether rec is the bead-count section marker: it
// must mention both DataType and Count but not the per-bead count
// variant, which is a different statistic.
func isCountMarker(rec []string) bool {
	return recordContains(rec, markerDataType) &&
		recordContains(rec, markerCount) &&
		!recordContains(rec, markerPerBead)
}

// isTerminatorRecord matches the start of the next section. The
// recognized terminators ("Net MFI", "Avg Net MFI", "Total Events")
// always appear as DataType records; matching the DataType prefix rather
// than the section names avoids a false terminator on the next block's
// header row, which also carries "Total Events" as a column name.
func isTerminatorRecord(rec []string) bool {
	return recordContains(rec, markerDataType)
}

func recordContains(rec []string, sub string) bool {
	for _, f := range rec {
		if strings.Contains(f, sub) {
			return true
		}
	}
	return false
}

func blankRecord(rec []string) bool {
	for _, f := range rec {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
