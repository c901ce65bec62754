//go:build mage

// Package main contains Mage build targets for babynames developer tooling.
package main

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir  = "bin"
	binName = "babynames"
	cmdPkg  = "./cmd/babynames"

	// fixtureGlob selects the sample ranking files used by Summarize.
	fixtureGlob = "internal/extract/testdata/baby*.html"
)

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	if err := sh.RunV("go", "build", "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs the unit tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Summarize builds the CLI and writes a .summary file next to each fixture.
func Summarize() error {
	mg.Deps(Build)

	files, err := filepath.Glob(fixtureGlob)
	if err != nil {
		return fmt.Errorf("matching %s: %w", fixtureGlob, err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no fixtures match %s", fixtureGlob)
	}
	args := append([]string{"--summaryfile"}, files...)
	return sh.RunV(filepath.Join(binDir, binName), args...)
}

// Stats prints project metrics: Go production/test LOC and documentation word count.
func Stats() error {
	prodLines, err := countGoLines(".", false)
	if err != nil {
		return err
	}
	testLines, err := countGoLines(".", true)
	if err != nil {
		return err
	}
	docWords, err := countDocWords(".")
	if err != nil {
		return err
	}

	fmt.Printf("Lines of code (Go, production): %d\n", prodLines)
	fmt.Printf("Lines of code (Go, tests):      %d\n", testLines)
	fmt.Printf("Words (documentation):           %d\n", docWords)
	return nil
}

// countGoLines counts non-blank lines in Go files under root. With testOnly
// set it counts _test.go files, otherwise everything else.
func countGoLines(root string, testOnly bool) (int, error) {
	total := 0
	keep := func(path string) bool {
		return filepath.Ext(path) == ".go" && strings.HasSuffix(path, "_test.go") == testOnly
	}
	err := walkFiles(root, keep, func(data []byte) {
		for _, line := range bytes.Split(data, []byte("\n")) {
			if len(bytes.TrimSpace(line)) > 0 {
				total++
			}
		}
	})
	return total, err
}

// countDocWords counts words in Markdown and YAML files under root.
func countDocWords(root string) (int, error) {
	total := 0
	keep := func(path string) bool {
		ext := filepath.Ext(path)
		return ext == ".md" || ext == ".yaml" || ext == ".yml"
	}
	err := walkFiles(root, keep, func(data []byte) {
		total += len(bytes.Fields(data))
	})
	return total, err
}

// walkFiles calls fn with the contents of every file under root that keep
// accepts. Directories the go tool ignores (leading "." or "_") are skipped.
func walkFiles(root string, keep func(path string) bool, fn func(data []byte)) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && (strings.HasPrefix(d.Name(), ".") || strings.HasPrefix(d.Name(), "_")) {
				return filepath.SkipDir
			}
			return nil
		}
		if !keep(path) {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		fn(data)
		return nil
	})
}
