// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package reader loads an instrument-export file into an ordered record
// sequence. Delimited text exports are sniffed for their delimiter and
// split with a lenient CSV reader; xlsx exports are flattened from the
// first worksheet. Downstream block location treats both identically.
package reader

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Document is the raw content of one export file: the file's base name
// (extension stripped, used as the plate identifier) and every record in
// file order. It is read once and discarded after table extraction.
type Document struct {
	Name    string
	Records [][]string
}

// ReadFile loads path into a Document, dispatching on the file extension.
func ReadFile(path string) (*Document, error) {
	base := filepath.Base(path)
	name := strings.TrimSuffix(base, filepath.Ext(base))

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xls":
		records, err := readWorkbook(path)
		if err != nil {
			return nil, err
		}
		return &Document{Name: name, Records: records}, nil
	default:
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening export %s: %w", path, err)
		}
		defer f.Close()

		records, err := readDelimited(f)
		if err != nil {
			return nil, fmt.Errorf("reading export %s: %w", path, err)
		}
		return &Document{Name: name, Records: records}, nil
	}
}

// readDelimited splits a text export into records. The reader is lenient:
// export files carry free-form header and footer lines whose field counts
// vary row to row.
func readDelimited(r io.Reader) ([][]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	cr := csv.NewReader(bytes.NewReader(data))
	cr.Comma = DetermineDelimiter(bytes.NewReader(data))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	return cr.ReadAll()
}
