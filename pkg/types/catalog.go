// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// CatalogEntry is a PaperSummary as persisted in the catalog, with the
// registry position it was extracted under and the volume it came from.
type CatalogEntry struct {
	PaperSummary `yaml:",inline"`

	// Position is the 1-based table-of-contents position, or 0 if unknown.
	Position int `json:"position" yaml:"position"`

	// Source names the proceedings volume the summary was extracted from.
	Source string `json:"source" yaml:"source"`

	// IngestedAt is when the summary was last written to the catalog.
	IngestedAt time.Time `json:"ingested_at" yaml:"ingested_at"`
}
