// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import "fmt"

// BlockNotFoundError reports a structural marker that was missing or
// ambiguous, so a data block could not be carved out of the document.
// Fatal in single-plate mode; folder mode skips the file.
type BlockNotFoundError struct {
	Marker string
	Detail string
}

func (e *BlockNotFoundError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("block marker %q not found", e.Marker)
	}
	return fmt.Sprintf("block marker %q: %s", e.Marker, e.Detail)
}

// SchemaError reports a required column that was absent or unusable in a
// block's header or body.
type SchemaError struct {
	Column string
	Detail string
}

func (e *SchemaError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("required column %q not found", e.Column)
	}
	return fmt.Sprintf("column %q: %s", e.Column, e.Detail)
}

// AlignmentError reports a disagreement between the bead-count and MFI
// tables. Always fatal: the two tables must describe the same wells and
// analytes for any downstream QC decision to be meaningful.
type AlignmentError struct {
	Check  string
	Detail string
}

func (e *AlignmentError) Error() string {
	return fmt.Sprintf("bead-count/MFI alignment check %q failed: %s", e.Check, e.Detail)
}
