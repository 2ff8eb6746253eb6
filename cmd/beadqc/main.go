// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the beadqc CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the beadqc CLI.
var rootCmd = &cobra.Command{
	Use:   "beadqc",
	Short: "Extraction and QC pipeline for bead-array immunoassay exports",
	Long: `beadqc ingests the semi-structured text or xlsx exports written by a
bead-array immunoassay reader, extracts the bead-count and median-MFI
tables, and runs the plate QC chain: low-bead masking, background
subtraction, standard-curve fitting, and the plate pass/fail decision.

Process a single export with "plate", or a whole folder with "project",
which also folds the per-plate results into project-level summaries.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./beadqc.yaml or ~/.config/beadqc/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("beadqc")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "beadqc"))
		}
	}

	viper.SetEnvPrefix("BEADQC")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
