// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package proceedings

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// maxLineBytes bounds a single input line for the line scanners.
const maxLineBytes = 1 << 20

// TitleRegistry maps each known paper title to its 1-based position in the
// table of contents. It is read-only once built.
type TitleRegistry struct {
	positions map[string]int
	titles    []string
}

// NewRegistry builds a registry from titles in table-of-contents order.
// Titles are trimmed; blank entries are skipped and take no position. A
// repeated title keeps its last position.
func NewRegistry(titles []string) *TitleRegistry {
	r := &TitleRegistry{positions: make(map[string]int, len(titles))}
	for _, t := range titles {
		r.add(t)
	}
	return r
}

// LoadRegistry reads one title per line from rd.
func LoadRegistry(rd io.Reader) (*TitleRegistry, error) {
	r := &TitleRegistry{positions: make(map[string]int)}
	sc := newLineScanner(rd)
	for sc.Scan() {
		r.add(sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading title list: %w", err)
	}
	return r, nil
}

// LoadRegistryFile reads the title list at path.
func LoadRegistryFile(path string) (*TitleRegistry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening title list: %w", err)
	}
	defer f.Close()
	return LoadRegistry(f)
}

func (r *TitleRegistry) add(line string) {
	t := Trim(line)
	if t == "" {
		return
	}
	r.titles = append(r.titles, t)
	r.positions[t] = len(r.titles)
}

// Position returns the position of title. The second result is false when
// the title is not registered.
func (r *TitleRegistry) Position(title string) (int, bool) {
	pos, ok := r.positions[title]
	return pos, ok
}

// Len returns the number of registered positions.
func (r *TitleRegistry) Len() int {
	return len(r.titles)
}

// Titles returns the titles in position order.
func (r *TitleRegistry) Titles() []string {
	return append([]string(nil), r.titles...)
}

func newLineScanner(rd io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(rd)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	return sc
}
