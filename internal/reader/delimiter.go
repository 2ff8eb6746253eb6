// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package reader

import (
	"io"

	"github.com/csimplestring/go-csv/detector"
)

// DetermineDelimiter returns the single most likely rune delimiting the
// values in the reader. Instrument exports arrive comma- or tab-delimited
// depending on the acquisition software's locale settings.
func DetermineDelimiter(r io.Reader) rune {
	d := detector.New()
	delimiters := d.DetectDelimiter(r, '"')

	if len(delimiters) > 0 {
		return rune(delimiters[0][0])
	}

	return ','
}
