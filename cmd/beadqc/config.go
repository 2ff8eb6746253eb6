// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/seralab/beadqc/pkg/types"
)

// Built-in defaults, used when neither config file nor flags say
// otherwise.
const (
	defaultWellCount     = 96
	defaultBeadThreshold = 50
	defaultRSqThreshold  = 0.9
	defaultOutputDir     = "results"
	defaultWorkers       = 4
)

var defaultExtensions = []string{".csv", ".txt", ".xlsx"}

// registerPipelineFlags adds the flags shared by the plate and project
// commands. Flag values override config-file values.
func registerPipelineFlags(cmd *cobra.Command) {
	cmd.Flags().String("out", "", "output directory for QC artifacts (default results)")
	cmd.Flags().Int("bead-threshold", 0, "minimum acceptable bead count (default 50)")
	cmd.Flags().Float64("rsq-threshold", 0, "minimum standard-curve R², exclusive (default 0.9)")
	cmd.Flags().String("background", "", "background analyte subtracted from all others")
	cmd.Flags().StringSlice("standards", nil, "analytes whose standard curves decide plate QC")
	cmd.Flags().String("termination", "", "block termination strategy: auto, marker, or fixed (default auto)")
	cmd.Flags().Int("well-count", 0, "wells per block for fixed termination (default 96)")
}

// loadPipelineConfig assembles the pipeline configuration from the config
// file (via viper) and the command's flags, flags winning.
func loadPipelineConfig(cmd *cobra.Command) (types.PipelineConfig, error) {
	cfg := types.PipelineConfig{
		Extract: types.ExtractConfig{
			Termination: types.TerminationMode(stringSetting(cmd, "termination", "extract.termination", string(types.TerminationAuto))),
			WellCount:   intSetting(cmd, "well-count", "extract.well_count", defaultWellCount),
		},
		QC: types.QCConfig{
			BeadThreshold:     intSetting(cmd, "bead-threshold", "qc.bead_threshold", defaultBeadThreshold),
			RSquaredThreshold: floatSetting(cmd, "rsq-threshold", "qc.rsquared_threshold", defaultRSqThreshold),
			BackgroundAnalyte: stringSetting(cmd, "background", "qc.background_analyte", ""),
			StandardAnalytes:  sliceSetting(cmd, "standards", "qc.standard_analytes"),
		},
		Output: types.OutputConfig{
			Dir: stringSetting(cmd, "out", "output.dir", defaultOutputDir),
		},
	}

	switch cfg.Extract.Termination {
	case types.TerminationAuto, types.TerminationMarker, types.TerminationFixed:
	default:
		return cfg, fmt.Errorf("invalid termination strategy %q (want auto, marker, or fixed)", cfg.Extract.Termination)
	}
	if cfg.QC.BeadThreshold < 0 {
		return cfg, fmt.Errorf("bead threshold must be >= 0, got %d", cfg.QC.BeadThreshold)
	}
	if cfg.QC.RSquaredThreshold <= 0 || cfg.QC.RSquaredThreshold >= 1 {
		return cfg, fmt.Errorf("R² threshold must be in (0,1), got %v", cfg.QC.RSquaredThreshold)
	}
	if cfg.QC.BackgroundAnalyte == "" {
		return cfg, fmt.Errorf("no background analyte configured (set qc.background_analyte or --background)")
	}
	if len(cfg.QC.StandardAnalytes) == 0 {
		return cfg, fmt.Errorf("no standard analytes configured (set qc.standard_analytes or --standards)")
	}
	return cfg, nil
}

func stringSetting(cmd *cobra.Command, flag, key, fallback string) string {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetString(flag)
		return v
	}
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	return fallback
}

func intSetting(cmd *cobra.Command, flag, key string, fallback int) int {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetInt(flag)
		return v
	}
	if viper.IsSet(key) {
		return viper.GetInt(key)
	}
	return fallback
}

func floatSetting(cmd *cobra.Command, flag, key string, fallback float64) float64 {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetFloat64(flag)
		return v
	}
	if viper.IsSet(key) {
		return viper.GetFloat64(key)
	}
	return fallback
}

func sliceSetting(cmd *cobra.Command, flag, key string) []string {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetStringSlice(flag)
		return v
	}
	return viper.GetStringSlice(key)
}
