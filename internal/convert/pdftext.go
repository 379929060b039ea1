// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PDFText extracts the plain text of every page with ledongthuc/pdf. Pages
// are emitted in order, each ending with a newline, so page-number lines of
// the source stay on lines of their own.
type PDFText struct{}

// Convert implements Converter.
func (PDFText) Convert(pdfPath string) (string, error) {
	f, r, err := pdf.Open(pdfPath)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", pdfPath, err)
	}
	defer f.Close()

	var (
		b    strings.Builder
		bad  []int
		errs []error
	)
	for i := 1; i <= r.NumPage(); i++ {
		text, err := pageText(r, i)
		if err != nil {
			bad = append(bad, i)
			errs = append(errs, err)
			continue
		}
		b.WriteString(text)
		if text != "" && !strings.HasSuffix(text, "\n") {
			b.WriteByte('\n')
		}
	}

	if len(bad) == r.NumPage() && len(bad) > 0 {
		return "", fmt.Errorf("no readable pages in %s: %w", pdfPath, errors.Join(errs...))
	}
	if len(bad) > 0 {
		return b.String(), &PartialError{Pages: bad, Err: errors.Join(errs...)}
	}
	return b.String(), nil
}

// pageText returns the text of page n. Malformed content streams can make
// the reader panic; that is reported as an error for the page.
func pageText(r *pdf.Reader, n int) (text string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("page %d: %v", n, rec)
		}
	}()

	p := r.Page(n)
	if p.V.IsNull() {
		return "", fmt.Errorf("page %d: missing page object", n)
	}
	text, err = p.GetPlainText(nil)
	if err != nil {
		return "", fmt.Errorf("page %d: %w", n, err)
	}
	return text, nil
}
