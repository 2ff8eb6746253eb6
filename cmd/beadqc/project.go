// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/seralab/beadqc/internal/project"
)

var projectCmd = &cobra.Command{
	Use:   "project [export directory]",
	Short: "Run extraction and QC for every plate export in a folder",
	Long: `Project runs the plate pipeline over every matching export file in a
directory (non-recursive) and folds the results into two project-level
summaries: per-plate standards verdicts and the concatenated low-bead
failure list. Files whose data blocks cannot be extracted are skipped
unless --strict is set.`,
	Args: cobra.ExactArgs(1),
	RunE: runProject,
}

func init() {
	registerPipelineFlags(projectCmd)
	projectCmd.Flags().Int("workers", 0, "number of plates processed concurrently (default 4)")
	projectCmd.Flags().StringSlice("extensions", nil, "export file extensions to process (default .csv,.txt,.xlsx)")
	projectCmd.Flags().Bool("strict", false, "abort the whole run on a per-file extraction failure")
	rootCmd.AddCommand(projectCmd)
}

func runProject(cmd *cobra.Command, args []string) error {
	cfg, err := loadPipelineConfig(cmd)
	if err != nil {
		return err
	}

	cfg.Project.Workers = intSetting(cmd, "workers", "project.workers", defaultWorkers)
	cfg.Project.Extensions = sliceSetting(cmd, "extensions", "project.extensions")
	if len(cfg.Project.Extensions) == 0 {
		cfg.Project.Extensions = defaultExtensions
	}
	if cmd.Flags().Changed("strict") {
		cfg.Project.Strict, _ = cmd.Flags().GetBool("strict")
	} else {
		cfg.Project.Strict = viper.GetBool("project.strict")
	}

	summary, err := project.Run(args[0], cfg, os.Stdout)
	if err != nil {
		return err
	}

	fmt.Printf("project %s done: %d plate(s), %d skipped, %d low-bead pair(s)\n",
		summary.Project, summary.Processed, len(summary.Skipped), len(summary.LowBeads))
	return nil
}
