// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// PaperSummary holds the fields extracted for one paper of a proceedings
// volume. Title is the key under which the summary is committed.
type PaperSummary struct {
	// Title is the paper title exactly as it appears in the title list.
	Title string `json:"title" yaml:"title"`

	// Authors lists the raw author block lines in document order.
	Authors []string `json:"authors" yaml:"authors"`

	// Keywords is the keyword line, including its "Keywords:" marker.
	Keywords string `json:"keywords" yaml:"keywords"`

	// References lists the raw reference lines in document order.
	References []string `json:"references" yaml:"references"`

	// Abstract is the abstract body; each source line is followed by one space.
	Abstract string `json:"abstract" yaml:"abstract"`
}

// Clone returns a deep copy of s so the caller can keep reusing s.
func (s PaperSummary) Clone() PaperSummary {
	c := s
	if s.Authors != nil {
		c.Authors = append([]string(nil), s.Authors...)
	}
	if s.References != nil {
		c.References = append([]string(nil), s.References...)
	}
	return c
}

// IsZero reports whether no field of s has been collected yet.
func (s PaperSummary) IsZero() bool {
	return s.Title == "" && len(s.Authors) == 0 && s.Keywords == "" &&
		len(s.References) == 0 && s.Abstract == ""
}

// ConversionStatus indicates the state of PDF-to-text conversion for a
// proceedings volume.
type ConversionStatus string

const (
	ConversionNone    ConversionStatus = "none"
	ConversionDone    ConversionStatus = "converted"
	ConversionPartial ConversionStatus = "partial"
	ConversionFailed  ConversionStatus = "failed"
)
