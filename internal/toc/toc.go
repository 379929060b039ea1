// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package toc derives the ordered title list of a proceedings volume from
// the plain text of its table-of-contents pages.
package toc

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/cases"

	"github.com/pdiddy/proceedings-engine/internal/proceedings"
)

const (
	// leader separates a title from its page number, e.g.
	// "Intro To Widgets . . . . . . 12".
	leader = " . ."

	// stopMarker ends the contents listing.
	stopMarker = "author index"
)

// ParseTitles returns the titles listed on the contents pages in r, in
// order. Only lines carrying a dotted leader name a paper; section headings
// and wrapped author lines have none and are skipped. Reading stops at the
// author index.
func ParseTitles(r io.Reader) ([]string, error) {
	fold := cases.Fold()
	sc := bufio.NewScanner(r)

	var titles []string
	for sc.Scan() {
		line := sc.Text()
		if strings.Contains(fold.String(line), stopMarker) {
			break
		}
		i := strings.Index(line, leader)
		if i < 0 {
			continue
		}
		if t := proceedings.Trim(line[:i]); t != "" {
			titles = append(titles, t)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading contents: %w", err)
	}
	return titles, nil
}

// ParseTitlesFile reads the contents pages at path.
func ParseTitlesFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening contents: %w", err)
	}
	defer f.Close()
	return ParseTitles(f)
}

// WriteTitles writes one title per line, the format LoadRegistry reads.
func WriteTitles(w io.Writer, titles []string) error {
	bw := bufio.NewWriter(w)
	for _, t := range titles {
		if _, err := fmt.Fprintln(bw, t); err != nil {
			return fmt.Errorf("writing titles: %w", err)
		}
	}
	return bw.Flush()
}
