// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package proceedings

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// maxPageLen is the longest line, in bytes, accepted as a page number.
const maxPageLen = 5

// PagePolicy controls which page numbers are accepted once a previous page
// number has been seen.
type PagePolicy int

const (
	// PolicyStrict accepts only the page following the last accepted page.
	PolicyStrict PagePolicy = iota

	// PolicyLenient also accepts any number smaller than the last accepted
	// page, for volumes whose numbering restarts.
	PolicyLenient
)

// ErrUnknownPagePolicy is returned by ParsePagePolicy for unrecognized names.
var ErrUnknownPagePolicy = errors.New("unknown page policy")

// ParsePagePolicy maps a configuration value to a PagePolicy. The empty
// string selects PolicyStrict.
func ParsePagePolicy(s string) (PagePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "strict":
		return PolicyStrict, nil
	case "lenient":
		return PolicyLenient, nil
	}
	return PolicyStrict, fmt.Errorf("%w %q: use strict or lenient", ErrUnknownPagePolicy, s)
}

func (p PagePolicy) String() string {
	if p == PolicyLenient {
		return "lenient"
	}
	return "strict"
}

// PageDetector recognizes page-number landmarks. It remembers the last
// accepted page so that numbers far ahead of it are treated as content.
type PageDetector struct {
	policy PagePolicy
	last   int
	seen   bool
}

// NewPageDetector returns a detector that has not yet accepted a page.
func NewPageDetector(policy PagePolicy) *PageDetector {
	return &PageDetector{policy: policy}
}

// IsPageNumber reports whether line is a page number. The line must start
// with an integer, be at most maxPageLen bytes long, and contain neither
// '%' nor '.', which mark percentages, decimals, and citation fragments.
// An accepted number becomes the new last page.
func (d *PageDetector) IsPageNumber(line string) bool {
	n, ok := leadingInt(line)
	if !ok {
		return false
	}
	if len(line) > maxPageLen || strings.ContainsAny(line, "%.") {
		return false
	}
	if d.seen && !d.follows(n) {
		return false
	}
	d.last = n
	d.seen = true
	return true
}

// Last returns the last accepted page number, if any.
func (d *PageDetector) Last() (int, bool) {
	return d.last, d.seen
}

func (d *PageDetector) follows(n int) bool {
	if n == d.last+1 {
		return true
	}
	return d.policy == PolicyLenient && n < d.last
}

// leadingInt parses the integer at the start of s, after any whitespace.
// Trailing text after the digits is ignored.
func leadingInt(s string) (int, bool) {
	i := 0
	for i < len(s) && strings.IndexByte(whitespace, s[i]) >= 0 {
		i++
	}
	start := i
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == digits {
		return 0, false
	}
	n, err := strconv.Atoi(s[start:i])
	if err != nil {
		return 0, false
	}
	return n, true
}
