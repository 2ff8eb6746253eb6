// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/seralab/beadqc/internal/plate"
)

var plateCmd = &cobra.Command{
	Use:   "plate [export file]",
	Short: "Run extraction and QC for a single plate export",
	Long: `Plate extracts the bead-count and median-MFI tables from one export
file, runs the QC chain, and writes the cleaned table, the low-bead
failure list, and the fit report. Any extraction or alignment failure
aborts the run.`,
	Args: cobra.ExactArgs(1),
	RunE: runPlate,
}

func init() {
	registerPipelineFlags(plateCmd)
	rootCmd.AddCommand(plateCmd)
}

func runPlate(cmd *cobra.Command, args []string) error {
	cfg, err := loadPipelineConfig(cmd)
	if err != nil {
		return err
	}

	res, err := plate.Process(args[0], cfg, os.Stdout)
	if err != nil {
		return err
	}
	if err := plate.WriteArtifacts(res, cfg.Output.Dir); err != nil {
		return err
	}

	fmt.Printf("plate %s done: %d low-bead pair(s), passed=%t\n",
		res.PlateID, len(res.LowBeads), res.Decision.Passed)
	return nil
}
