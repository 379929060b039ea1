// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert turns proceedings PDFs into the plain-text dump the
// extractor reads, one output line per text line of the source.
package convert

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/proceedings-engine/pkg/types"
)

// Converter transforms a PDF file into plain text.
type Converter interface {
	// Convert reads the PDF at pdfPath and returns its text. A
	// *PartialError is returned together with the text of the pages that
	// could be read.
	Convert(pdfPath string) (string, error)
}

// PartialError reports pages whose text could not be extracted.
type PartialError struct {
	Pages []int
	Err   error
}

func (e *PartialError) Error() string {
	return fmt.Sprintf("%d page(s) unreadable (first: page %d): %v", len(e.Pages), e.Pages[0], e.Err)
}

func (e *PartialError) Unwrap() error {
	return e.Err
}

// BatchResult holds the outcome of a batch conversion run.
type BatchResult struct {
	Converted int
	Partial   int
	Skipped   int
	Failed    int
}

// Total returns the total number of files processed.
func (r BatchResult) Total() int {
	return r.Converted + r.Partial + r.Skipped + r.Failed
}

// HasFailures reports whether any file failed conversion.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// OutputPath returns the text file ConvertFile writes for pdfPath.
func OutputPath(pdfPath, outDir string) string {
	base := strings.TrimSuffix(filepath.Base(pdfPath), filepath.Ext(pdfPath))
	return filepath.Join(outDir, base+".txt")
}

// ConvertFile converts a single PDF to text in outDir. If the text output
// already exists, it skips conversion and returns ConversionNone.
func ConvertFile(c Converter, pdfPath, outDir string, w io.Writer) types.ConversionStatus {
	txtPath := OutputPath(pdfPath, outDir)
	name := filepath.Base(txtPath)

	if _, err := os.Stat(txtPath); err == nil {
		fmt.Fprintf(w, "skipped: %s (already exists)\n", name)
		return types.ConversionNone
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", name, err)
		return types.ConversionFailed
	}

	status := types.ConversionDone
	text, err := c.Convert(pdfPath)
	if err != nil {
		var partial *PartialError
		if !errors.As(err, &partial) {
			fmt.Fprintf(w, "failed:  %s (%v)\n", name, err)
			return types.ConversionFailed
		}
		fmt.Fprintf(w, "warning: %s: %v\n", name, err)
		status = types.ConversionPartial
	}

	if err := os.WriteFile(txtPath, []byte(text), 0o644); err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", name, err)
		return types.ConversionFailed
	}

	fmt.Fprintf(w, "%s: %s\n", status, name)
	return status
}

// ConvertBatch converts each PDF in pdfPaths, printing per-file status to w
// and returning a summary.
func ConvertBatch(c Converter, pdfPaths []string, outDir string, w io.Writer) BatchResult {
	var result BatchResult
	for _, p := range pdfPaths {
		switch ConvertFile(c, p, outDir, w) {
		case types.ConversionDone:
			result.Converted++
		case types.ConversionPartial:
			result.Partial++
		case types.ConversionNone:
			result.Skipped++
		case types.ConversionFailed:
			result.Failed++
		}
	}
	fmt.Fprintf(w, "\nBatch summary: %d converted, %d partial, %d skipped, %d failed (total: %d)\n",
		result.Converted, result.Partial, result.Skipped, result.Failed, result.Total())
	return result
}
