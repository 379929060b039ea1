//go:build mage

package main

import (
	"fmt"
	"path/filepath"

	"github.com/magefile/mage/sh"
)

// Convert turns every PDF under files/ into plain text under text/.
func Convert() error {
	ensureBuilt()
	pdfs, err := filepath.Glob(filepath.Join("files", "*.pdf"))
	if err != nil {
		return err
	}
	if len(pdfs) == 0 {
		fmt.Println("[convert] no PDFs in files/")
		return nil
	}
	args := append([]string{"convert", "--output-dir", "text"}, pdfs...)
	return sh.RunV(binPath(), args...)
}
