// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package proceedings extracts paper summaries from the plain-text dump of a
// conference proceedings volume. A Machine walks the text line by line,
// using page numbers, the "Abstract" and "Keywords:" markers, and the
// "References" heading as landmarks, and commits one PaperSummary per paper
// into a RecordStore keyed by title. Paper boundaries are validated against
// a TitleRegistry built from the table of contents.
package proceedings

import "strings"

// whitespace is the set of bytes Trim strips from both ends of a line.
const whitespace = " \n\r\t\f\v"

// Trim removes leading and trailing whitespace from line. A line with no
// other content becomes the empty string.
func Trim(line string) string {
	return strings.Trim(line, whitespace)
}
