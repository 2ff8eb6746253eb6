// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package project fans the plate pipeline out over a folder of export
// files and folds the per-plate QC artifacts into two project-level
// summary tables.
package project

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/seralab/beadqc/internal/plate"
	"github.com/seralab/beadqc/pkg/types"
)

// Summary holds the folded outcome of a project run.
type Summary struct {
	Project   string
	Processed int
	Skipped   []string
	QCResults []types.PlateQCResult
	LowBeads  []types.LowBeadRecord
}

// Run processes every matching export file in dir and writes the
// project-level summaries into the output directory. Files are
// independent, so plates run concurrently under a worker bound; each
// worker buffers its own progress log, and the fold into the shared
// summary and the shared writer happens on a single goroutine after all
// workers join, so the output is deterministic regardless of completion
// order. In non-strict mode a file whose blocks cannot be extracted is
// logged and skipped; alignment and configuration errors always abort.
func Run(dir string, cfg types.PipelineConfig, w io.Writer) (*Summary, error) {
	files, err := listExports(dir, cfg.Project.Extensions)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no export files with extensions %v in %s", cfg.Project.Extensions, dir)
	}

	summary := &Summary{}

	type outcome struct {
		file    string
		log     []byte
		res     *plate.Result
		skipErr error
	}
	ch := make(chan outcome, len(files))

	var g errgroup.Group
	workers := cfg.Project.Workers
	if workers <= 0 {
		workers = 4
	}
	g.SetLimit(workers)

	for _, file := range files {
		file := file
		g.Go(func() error {
			var log bytes.Buffer
			res, err := plate.Process(file, cfg, &log)
			if err != nil {
				if !cfg.Project.Strict && plate.IsExtractionError(err) {
					ch <- outcome{file: file, log: log.Bytes(), skipErr: err}
					return nil
				}
				return err
			}
			if err := plate.WriteArtifacts(res, cfg.Output.Dir); err != nil {
				return err
			}
			ch <- outcome{file: file, log: log.Bytes(), res: res}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	close(ch)

	outcomes := make([]outcome, 0, len(files))
	for out := range ch {
		outcomes = append(outcomes, out)
	}
	sort.Slice(outcomes, func(i, j int) bool { return outcomes[i].file < outcomes[j].file })

	for _, out := range outcomes {
		w.Write(out.log)
		if out.skipErr != nil {
			fmt.Fprintf(w, "skipping %s: %v\n", filepath.Base(out.file), out.skipErr)
			summary.Skipped = append(summary.Skipped, filepath.Base(out.file))
			continue
		}
		summary.Processed++
		summary.QCResults = append(summary.QCResults, out.res.QCResult())
		summary.LowBeads = append(summary.LowBeads, out.res.LowBeads...)
	}

	sortSummary(summary)

	// The project is named after the first plate that actually produced
	// data; a skipped file contributes nothing and must not name the
	// summaries. Only when every file was skipped does the first listed
	// file serve as a fallback for the empty artifacts.
	if len(summary.QCResults) > 0 {
		summary.Project = projectName(summary.QCResults[0].Plate)
	} else {
		summary.Project = projectName(files[0])
	}

	if err := writeSummaries(summary, cfg.Output.Dir); err != nil {
		return nil, err
	}

	fmt.Fprintf(w, "project %s: %d plate(s) processed, %d skipped\n", summary.Project, summary.Processed, len(summary.Skipped))
	return summary, nil
}

// listExports returns the matching files of dir, non-recursive, sorted by
// name.
func listExports(dir string, extensions []string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading input directory %s: %w", dir, err)
	}

	allowed := make(map[string]bool)
	for _, ext := range extensions {
		allowed[strings.ToLower(ext)] = true
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if allowed[strings.ToLower(filepath.Ext(entry.Name()))] {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

// projectName derives the output naming prefix from the first input
// file: its base name up to the first underscore. Naming only; never a
// correctness input.
func projectName(file string) string {
	base := filepath.Base(file)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if i := strings.Index(base, "_"); i > 0 {
		return base[:i]
	}
	return base
}

// sortSummary orders the folded collections by plate so output is
// deterministic regardless of worker completion order.
func sortSummary(s *Summary) {
	sort.Slice(s.QCResults, func(i, j int) bool {
		return s.QCResults[i].Plate < s.QCResults[j].Plate
	})
	sort.Slice(s.LowBeads, func(i, j int) bool {
		a, b := s.LowBeads[i], s.LowBeads[j]
		if a.Plate != b.Plate {
			return a.Plate < b.Plate
		}
		if a.Location != b.Location {
			return a.Location < b.Location
		}
		return a.Antigen < b.Antigen
	})
	sort.Strings(s.Skipped)
}
