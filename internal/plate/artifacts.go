// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package plate

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gocarina/gocsv"
	"go.yaml.in/yaml/v3"

	"github.com/seralab/beadqc/pkg/types"
)

// Artifact file name suffixes.
const (
	lowBeadSuffix = "_beadqc_low_df.csv"
	cleanSuffix   = "_clean.csv"
	reportSuffix  = "_qc.yaml"
)

// WriteArtifacts writes the plate's three artifact files into dir: the
// low-bead failure list, the cleaned MFI table, and the fit report.
func WriteArtifacts(res *Result, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", dir, err)
	}

	if err := writeLowBeads(res, filepath.Join(dir, res.PlateID+lowBeadSuffix)); err != nil {
		return err
	}
	if err := writeCleanTable(res, filepath.Join(dir, res.PlateID+cleanSuffix)); err != nil {
		return err
	}
	return writeFitReport(res, filepath.Join(dir, res.PlateID+reportSuffix))
}

func writeLowBeads(res *Result, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	records := res.LowBeads
	if records == nil {
		records = []types.LowBeadRecord{}
	}
	if err := gocsv.MarshalFile(&records, f); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// writeCleanTable serializes the cleaned MFI table. The column set is
// dynamic (each plate has its own analyte panel), so this writer uses
// encoding/csv directly rather than a struct mapping. The Plate and
// Standard columns are appended to every row; Standard is the
// semicolon-joined passing analytes, empty when the plate failed.
func writeCleanTable(res *Result, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	standard := strings.Join(res.Decision.PassingAnalytes, ";")

	header := append([]string{"Location", "Sample"}, res.Cleaned.Analytes...)
	header = append(header, "Plate", "Standard")
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	for _, row := range res.Cleaned.Rows {
		rec := make([]string, 0, len(header))
		rec = append(rec, row.Location, row.Sample)
		for _, cell := range row.Values {
			rec = append(rec, cell.String())
		}
		rec = append(rec, res.PlateID, standard)
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// fitReport is the per-plate QC report written alongside the tables, for
// reviewers who want the fit parameters without re-running the pipeline.
type fitReport struct {
	Plate           string         `yaml:"plate"`
	PassedQC        bool           `yaml:"passed_qc"`
	PassingAnalytes []string       `yaml:"passing_analytes"`
	LowBeadPairs    int            `yaml:"low_bead_pairs"`
	Fits            []fitReportRow `yaml:"fits"`
}

type fitReportRow struct {
	Analyte   string  `yaml:"analyte"`
	Slope     float64 `yaml:"slope"`
	Intercept float64 `yaml:"intercept"`
	RSquared  float64 `yaml:"r_squared"`
	Passed    bool    `yaml:"passed"`
}

func writeFitReport(res *Result, path string) error {
	report := fitReport{
		Plate:           res.PlateID,
		PassedQC:        res.Decision.Passed,
		PassingAnalytes: res.Decision.PassingAnalytes,
		LowBeadPairs:    len(res.LowBeads),
	}
	for _, fit := range res.Decision.Fits {
		report.Fits = append(report.Fits, fitReportRow{
			Analyte:   fit.Analyte,
			Slope:     fit.Slope,
			Intercept: fit.Intercept,
			RSquared:  fit.RSquared,
			Passed:    fit.Passed,
		})
	}

	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshaling fit report for %s: %w", res.PlateID, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
