// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package curve

import (
	"fmt"
	"io"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/seralab/beadqc/pkg/types"
)

// Points collects the standard-curve observations for one analyte from
// the MFI table: rows whose sample label marks a standard, paired as
// (dilution factor, log10(MFI + 1)). Masked, NaN, and non-finite values
// are discarded.
func Points(mfi *types.WellTable, analyte string) []types.StandardCurvePoint {
	col := mfi.AnalyteIndex(analyte)
	if col < 0 {
		return nil
	}

	var points []types.StandardCurvePoint
	for _, row := range mfi.Rows {
		if !IsStandard(row.Sample) {
			continue
		}
		df, ok := DilutionFactor(row.Sample)
		if !ok {
			continue
		}
		cell := row.Values[col]
		if !cell.IsNumeric() {
			continue
		}
		y := math.Log10(cell.Value + 1)
		if math.IsNaN(y) || math.IsInf(y, 0) {
			continue
		}
		points = append(points, types.StandardCurvePoint{
			Analyte:        analyte,
			DilutionFactor: df,
			Log10MFI:       y,
		})
	}
	return points
}

// FitStandards fits an ordinary least squares regression of log-MFI on
// dilution factor for each requested analyte. Analytes absent from the
// table, or with no valid standard points, are warned about and skipped.
// Duplicate fits for the same analyte collapse to the last one computed,
// with a warning so reruns are visible.
//
// The returned fits carry slope, intercept, and R²; the pass verdict is
// the plate decision's job.
func FitStandards(mfi *types.WellTable, analytes []string, w io.Writer) []types.AnalyteFit {
	index := make(map[string]int)
	var fits []types.AnalyteFit

	for _, analyte := range analytes {
		if mfi.AnalyteIndex(analyte) < 0 {
			fmt.Fprintf(w, "warning: standard analyte %s not present in MFI table, skipping\n", analyte)
			continue
		}

		points := Points(mfi, analyte)
		if len(points) == 0 {
			fmt.Fprintf(w, "warning: no valid standard points for analyte %s, skipping\n", analyte)
			continue
		}

		xs := make([]float64, len(points))
		ys := make([]float64, len(points))
		for i, p := range points {
			xs[i] = float64(p.DilutionFactor)
			ys[i] = p.Log10MFI
		}

		intercept, slope := stat.LinearRegression(xs, ys, nil, false)
		fit := types.AnalyteFit{
			Analyte:   analyte,
			Slope:     slope,
			Intercept: intercept,
			RSquared:  stat.RSquared(xs, ys, nil, intercept, slope),
		}

		if prev, ok := index[analyte]; ok {
			fmt.Fprintf(w, "warning: analyte %s fit more than once, keeping the last fit\n", analyte)
			fits[prev] = fit
			continue
		}
		index[analyte] = len(fits)
		fits = append(fits, fit)
	}

	return fits
}
