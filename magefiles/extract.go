//go:build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Pipeline groups the extraction targets.
type Pipeline mg.Namespace

const titlesFile = "files/titles.txt"

// Titles derives files/titles.txt from files/contents.txt.
func (Pipeline) Titles() error {
	ensureBuilt()
	return sh.RunV(binPath(), "titles", "files/contents.txt", "--output", titlesFile)
}

// Extract runs the extractor over every text file under text/ and writes
// one record file per volume under records/.
func (Pipeline) Extract() error {
	ensureBuilt()
	if _, err := os.Stat(titlesFile); err != nil {
		return fmt.Errorf("title list missing: run pipeline:titles first: %w", err)
	}
	texts, err := filepath.Glob(filepath.Join("text", "*.txt"))
	if err != nil {
		return err
	}
	for _, t := range texts {
		name := strings.TrimSuffix(filepath.Base(t), ".txt")
		out := filepath.Join("records", name+".yaml")
		if err := sh.RunV(binPath(), "extract", t, "--titles", titlesFile, "--output", out); err != nil {
			return fmt.Errorf("extracting %s: %w", t, err)
		}
	}
	return nil
}

// Store ingests every record file under records/ into the catalog.
func (Pipeline) Store() error {
	mg.SerialDeps(Pipeline.Extract)
	files, err := filepath.Glob(filepath.Join("records", "*.yaml"))
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return nil
	}
	args := append([]string{"catalog", "store", "--titles", titlesFile}, files...)
	return sh.RunV(binPath(), args...)
}
