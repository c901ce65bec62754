// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "strings"

// RankedName pairs a name with the popularity rank it was first seen at.
type RankedName struct {
	// Name is a case-sensitive run of ASCII word characters.
	Name string `json:"name" yaml:"name"`

	// Rank holds the decimal digits exactly as they appear in the document.
	Rank string `json:"rank" yaml:"rank"`
}

// Line renders the name as "<name> <rank>".
func (r RankedName) Line() string {
	return r.Name + " " + r.Rank
}

// ExtractionResult holds the rankings pulled from a single yearly file.
type ExtractionResult struct {
	// Year is the four-digit year from the "Popularity in YYYY" marker.
	Year string `json:"year" yaml:"year"`

	// Names is sorted ascending by Name.
	Names []RankedName `json:"names" yaml:"names"`
}

// Lines returns the year followed by one "<name> <rank>" line per name.
func (r ExtractionResult) Lines() []string {
	lines := make([]string, 0, len(r.Names)+1)
	lines = append(lines, r.Year)
	for _, n := range r.Names {
		lines = append(lines, n.Line())
	}
	return lines
}

// Text joins Lines with newlines. There is no trailing newline.
func (r ExtractionResult) Text() string {
	return strings.Join(r.Lines(), "\n")
}
