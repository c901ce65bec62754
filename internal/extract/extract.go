// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract pulls the year and ranked names out of a babyYYYY.html
// popularity table. The document format is fixed, so extraction is two
// regular-expression scans rather than an HTML parse.
package extract

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"github.com/pdiddy/babynames/pkg/types"
)

var (
	// yearRe matches the heading "Popularity in 1990". The separators are
	// spelled out because RE2's \s does not include vertical tab.
	yearRe = regexp.MustCompile(`Popularity[\t\n\v\f\r ]in[\t\n\v\f\r ](\d\d\d\d)`)

	// recordRe matches one table row's cells: rank, male name, female name.
	// It is applied to the whole document, so any matching cell run outside
	// the ranking table is picked up too.
	recordRe = regexp.MustCompile(`<td>(\d+)</td><td>(\w+)</td><td>(\w+)</td>`)
)

// ErrYearNotFound is returned when a document has no "Popularity in YYYY" marker.
var ErrYearNotFound = errors.New("year not found")

// FormatError reports a document that does not have the expected layout.
type FormatError struct {
	// Path is the source file, empty when extracting from a string.
	Path string
	Err  error
}

func (e *FormatError) Error() string {
	if e.Path == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// Extract returns the year and the alphabetized, deduplicated name ranks
// found in content. A name keeps the rank of its first occurrence in
// document order.
func Extract(content string) (types.ExtractionResult, error) {
	m := yearRe.FindStringSubmatch(content)
	if m == nil {
		return types.ExtractionResult{}, &FormatError{Err: ErrYearNotFound}
	}

	reg := NewRegistry()
	for _, rec := range recordRe.FindAllStringSubmatch(content, -1) {
		rank, boy, girl := rec[1], rec[2], rec[3]
		reg.Observe(boy, rank)
		reg.Observe(girl, rank)
	}

	return types.ExtractionResult{
		Year:  m[1],
		Names: reg.Sorted(),
	}, nil
}

// ExtractFile reads the file at path and extracts its rankings.
func ExtractFile(path string) (types.ExtractionResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.ExtractionResult{}, fmt.Errorf("reading %s: %w", path, err)
	}

	result, err := Extract(string(data))
	if err != nil {
		var fe *FormatError
		if errors.As(err, &fe) {
			fe.Path = path
		}
		return types.ExtractionResult{}, err
	}
	return result, nil
}
