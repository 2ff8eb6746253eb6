// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// TerminationMode selects how a data block's end is found when the export
// variant is known; TerminationAuto detects it per document.
type TerminationMode string

const (
	TerminationAuto   TerminationMode = "auto"
	TerminationMarker TerminationMode = "marker"
	TerminationFixed  TerminationMode = "fixed"
)

// ExtractConfig holds settings for locating and parsing the data blocks of
// an instrument export.
type ExtractConfig struct {
	// Termination selects the block-termination strategy: auto, marker,
	// or fixed (default auto).
	Termination TerminationMode `json:"termination" yaml:"termination"`

	// WellCount is the number of wells per block, used by the fixed
	// termination strategy (default 96).
	WellCount int `json:"well_count" yaml:"well_count"`
}

// QCConfig holds the quality-control thresholds and analyte roles.
type QCConfig struct {
	// BeadThreshold is the minimum acceptable bead count per (well,
	// analyte); counts strictly below it are masked.
	BeadThreshold int `json:"bead_threshold" yaml:"bead_threshold"`

	// RSquaredThreshold is the minimum R² (exclusive) for a standard
	// curve to pass.
	RSquaredThreshold float64 `json:"rsquared_threshold" yaml:"rsquared_threshold"`

	// BackgroundAnalyte names the column subtracted from every other
	// analyte, well by well.
	BackgroundAnalyte string `json:"background_analyte" yaml:"background_analyte"`

	// StandardAnalytes lists the analytes whose standard curves are
	// evaluated for plate pass/fail.
	StandardAnalytes []string `json:"standard_analytes" yaml:"standard_analytes"`
}

// OutputConfig holds settings for artifact output.
type OutputConfig struct {
	// Dir is the directory cleaned tables and QC artifacts are written to.
	Dir string `json:"dir" yaml:"dir"`
}

// ProjectConfig holds settings for folder-aggregation mode.
type ProjectConfig struct {
	// Extensions filters the input directory listing (default
	// .csv, .txt, .xlsx).
	Extensions []string `json:"extensions" yaml:"extensions"`

	// Workers bounds the number of plates processed concurrently
	// (default 4).
	Workers int `json:"workers" yaml:"workers"`

	// Strict aborts the whole run on a per-file extraction failure
	// instead of skipping the file. Single-plate mode is always strict.
	Strict bool `json:"strict" yaml:"strict"`
}

// PipelineConfig groups all stage configurations for the pipeline.
type PipelineConfig struct {
	Extract ExtractConfig `json:"extract" yaml:"extract"`
	QC      QCConfig      `json:"qc" yaml:"qc"`
	Output  OutputConfig  `json:"output" yaml:"output"`
	Project ProjectConfig `json:"project" yaml:"project"`
}
