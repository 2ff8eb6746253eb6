// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/seralab/beadqc/pkg/types"
)

const (
	standardsSuffix = "_all_plates_standardsqc.csv"
	beadQCSuffix    = "_all_plates_beadqc.csv"
)

// writeSummaries writes the two project-level tables: the per-plate
// standards verdicts and the concatenated low-bead failure list.
func writeSummaries(s *Summary, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", dir, err)
	}

	qcResults := s.QCResults
	if qcResults == nil {
		qcResults = []types.PlateQCResult{}
	}
	if err := marshalCSV(&qcResults, filepath.Join(dir, s.Project+standardsSuffix)); err != nil {
		return err
	}

	lowBeads := s.LowBeads
	if lowBeads == nil {
		lowBeads = []types.LowBeadRecord{}
	}
	return marshalCSV(&lowBeads, filepath.Join(dir, s.Project+beadQCSuffix))
}

func marshalCSV(records interface{}, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := gocsv.MarshalFile(records, f); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
