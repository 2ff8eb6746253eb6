// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package plate runs the full extraction-and-QC pipeline for one export
// file: block location, table extraction, alignment validation, bead
// masking, background subtraction, standard-curve fitting, and the plate
// pass/fail decision, then writes the per-plate artifacts.
package plate

import (
	"errors"
	"fmt"
	"io"

	"github.com/seralab/beadqc/internal/curve"
	"github.com/seralab/beadqc/internal/extract"
	"github.com/seralab/beadqc/internal/qc"
	"github.com/seralab/beadqc/internal/reader"
	"github.com/seralab/beadqc/pkg/types"
)

// Result is the outcome of one plate's pipeline run: the cleaned MFI
// table (sentinels finalized), the low-bead failure list, and the
// standards decision.
type Result struct {
	PlateID  string
	Cleaned  *types.WellTable
	LowBeads []types.LowBeadRecord
	Decision types.PlateDecision
}

// QCResult returns the plate's row for the project-level standards
// summary.
func (r *Result) QCResult() types.PlateQCResult {
	return types.PlateQCResult{Plate: r.PlateID, Passed: r.Decision.Passed}
}

// Process runs the pipeline over the export file at path. The stages run
// strictly in order; each mutates the tables in place and the MFI table
// finally becomes the cleaned table. Progress and data-loss notices are
// written to w.
func Process(path string, cfg types.PipelineConfig, w io.Writer) (*Result, error) {
	doc, err := reader.ReadFile(path)
	if err != nil {
		return nil, err
	}

	mfiRange, beadRange, err := extract.LocateBlocks(doc, cfg.Extract)
	if err != nil {
		return nil, fmt.Errorf("locating data blocks in %s: %w", doc.Name, err)
	}

	mfi, err := extract.ParseTable(doc, mfiRange)
	if err != nil {
		return nil, fmt.Errorf("parsing MFI table of %s: %w", doc.Name, err)
	}
	bead, err := extract.ParseTable(doc, beadRange)
	if err != nil {
		return nil, fmt.Errorf("parsing bead-count table of %s: %w", doc.Name, err)
	}

	if err := extract.ValidateAlignment(bead, mfi, w); err != nil {
		return nil, fmt.Errorf("plate %s: %w", doc.Name, err)
	}

	lowBeads := qc.MaskLowBeads(bead, cfg.QC.BeadThreshold, doc.Name)
	qc.MaskWells(mfi, lowBeads, w)

	if err := qc.SubtractBackground(mfi, cfg.QC.BackgroundAnalyte); err != nil {
		return nil, fmt.Errorf("plate %s: %w", doc.Name, err)
	}

	fits := curve.FitStandards(mfi, cfg.QC.StandardAnalytes, w)
	decision := qc.Decide(fits, cfg.QC.RSquaredThreshold, mfi, doc.Name, w)

	return &Result{
		PlateID:  doc.Name,
		Cleaned:  mfi,
		LowBeads: lowBeads,
		Decision: decision,
	}, nil
}

// IsExtractionError reports whether err is a per-file parse failure that
// folder mode may skip, as opposed to an alignment or configuration
// error that aborts the whole run.
func IsExtractionError(err error) bool {
	var blockErr *extract.BlockNotFoundError
	var schemaErr *extract.SchemaError
	return errors.As(err, &blockErr) || errors.As(err, &schemaErr)
}
