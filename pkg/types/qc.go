// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// LowBeadRecord identifies one (well, analyte) pair whose bead count fell
// below the configured threshold. One row per pair in the per-plate and
// project-level bead QC artifacts.
type LowBeadRecord struct {
	Location string `csv:"Location"`
	Sample   string `csv:"Sample"`
	Antigen  string `csv:"Antigen"`
	Plate    string `csv:"Plate"`
}

// StandardCurvePoint is one observation on an analyte's standard curve.
// DilutionFactor is the negation of the dilution index parsed from the
// sample label, so more dilute standards sit further left on the axis.
type StandardCurvePoint struct {
	Analyte        string
	DilutionFactor int
	Log10MFI       float64
}

// AnalyteFit is the standard-curve regression result for one analyte.
// Passed is set by the plate decision, not by the fitter.
type AnalyteFit struct {
	Analyte   string
	Slope     float64
	Intercept float64
	RSquared  float64
	Passed    bool
}

// PlateQCResult is one row of the project-level standards QC summary.
type PlateQCResult struct {
	Plate  string `csv:"Plate"`
	Passed bool   `csv:"Passed_QC"`
}

// PlateDecision is the outcome of plate-level standards QC: the per-fit
// verdicts and the analytes whose curves passed, in fit order.
type PlateDecision struct {
	Plate           string
	Passed          bool
	Fits            []AnalyteFit
	PassingAnalytes []string
}
