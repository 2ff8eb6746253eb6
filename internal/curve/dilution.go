// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package curve fits per-analyte standard curves: a log-linear regression
// of transformed MFI against the dilution factor derived from standard
// sample labels.
package curve

import (
	"regexp"
	"strconv"
	"strings"
)

// standardLabel marks the serially diluted reference samples.
const standardLabel = "Standard"

var digitRun = regexp.MustCompile(`\d+`)

// IsStandard reports whether the sample label names a standard well.
func IsStandard(sample string) bool {
	return strings.Contains(sample, standardLabel)
}

// DilutionFactor derives the dilution factor from a standard sample
// label: the negation of the first run of digits, so "Standard3" maps to
// -3. A label without digits carries no dilution position and is
// reported as not ok.
func DilutionFactor(sample string) (int, bool) {
	m := digitRun.FindString(sample)
	if m == "" {
		return 0, false
	}
	idx, err := strconv.Atoi(m)
	if err != nil {
		return 0, false
	}
	return -idx, true
}
