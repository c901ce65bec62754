// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package summary runs extraction over a list of ranking files and routes
// each result to stdout or to a sibling ".summary" file.
package summary

import (
	"fmt"
	"io"
	"os"

	"github.com/pdiddy/babynames/internal/extract"
	"github.com/pdiddy/babynames/pkg/types"
)

// summarySuffix is appended to an input path to name its summary file.
const summarySuffix = ".summary"

// Result holds the outcome of a summarize run.
type Result struct {
	Printed int
	Written int
}

// Total returns the number of files fully processed.
func (r Result) Total() int {
	return r.Printed + r.Written
}

// SummaryPath returns the summary file path for an input path.
func SummaryPath(path string) string {
	return path + summarySuffix
}

// Run extracts each path in order. In console mode results are written to
// stdout; in summary-file mode each goes to SummaryPath(path) and a status
// line is written to log. The first error stops the run. Summary files
// written before the failure are left in place.
func Run(paths []string, cfg types.SummaryConfig, stdout, log io.Writer) (Result, error) {
	var result Result
	for _, path := range paths {
		res, err := extract.ExtractFile(path)
		if err != nil {
			return result, err
		}

		if cfg.SummaryFile {
			out := SummaryPath(path)
			if err := WriteSummary(out, res, cfg.Format); err != nil {
				return result, err
			}
			fmt.Fprintf(log, "wrote: %s\n", out)
			result.Written++
			continue
		}

		if err := Print(stdout, res, cfg.Format); err != nil {
			return result, err
		}
		result.Printed++
	}
	return result, nil
}

// Print writes res to w followed by a newline.
func Print(w io.Writer, res types.ExtractionResult, format types.OutputFormat) error {
	data, err := Render(res, format)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// WriteSummary renders res and writes it to path, replacing any existing file.
func WriteSummary(path string, res types.ExtractionResult, format types.OutputFormat) error {
	data, err := Render(res, format)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing summary %s: %w", path, err)
	}
	return nil
}
