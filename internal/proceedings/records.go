// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package proceedings

import "github.com/pdiddy/proceedings-engine/pkg/types"

// RecordStore holds committed summaries keyed by title, in commit order.
type RecordStore struct {
	index      map[string]int
	records    []types.PaperSummary
	duplicates int
}

// NewRecordStore returns an empty store.
func NewRecordStore() *RecordStore {
	return &RecordStore{index: make(map[string]int)}
}

// Insert stores a copy of s. The first summary committed under a title
// wins; later ones are counted as duplicates and Insert returns false.
func (st *RecordStore) Insert(s types.PaperSummary) bool {
	if _, ok := st.index[s.Title]; ok {
		st.duplicates++
		return false
	}
	st.index[s.Title] = len(st.records)
	st.records = append(st.records, s.Clone())
	return true
}

// Get returns the summary committed under title.
func (st *RecordStore) Get(title string) (types.PaperSummary, bool) {
	i, ok := st.index[title]
	if !ok {
		return types.PaperSummary{}, false
	}
	return st.records[i].Clone(), true
}

// Len returns the number of committed summaries.
func (st *RecordStore) Len() int {
	return len(st.records)
}

// Duplicates returns how many inserts were refused for an existing title.
func (st *RecordStore) Duplicates() int {
	return st.duplicates
}

// All returns copies of every committed summary in commit order.
func (st *RecordStore) All() []types.PaperSummary {
	out := make([]types.PaperSummary, len(st.records))
	for i, s := range st.records {
		out[i] = s.Clone()
	}
	return out
}
