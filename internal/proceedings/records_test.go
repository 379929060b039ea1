// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package proceedings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/proceedings-engine/pkg/types"
)

func TestRecordStoreInsert(t *testing.T) {
	st := NewRecordStore()

	first := types.PaperSummary{Title: "Alpha", Authors: []string{"Ann"}}
	require.True(t, st.Insert(first))
	require.True(t, st.Insert(types.PaperSummary{Title: "Beta"}))
	assert.False(t, st.Insert(types.PaperSummary{Title: "Alpha", Authors: []string{"Other"}}))

	assert.Equal(t, 2, st.Len())
	assert.Equal(t, 1, st.Duplicates())

	got, ok := st.Get("Alpha")
	require.True(t, ok)
	assert.Equal(t, []string{"Ann"}, got.Authors, "first insert wins")

	_, ok = st.Get("Gamma")
	assert.False(t, ok)

	all := st.All()
	require.Len(t, all, 2)
	assert.Equal(t, "Alpha", all[0].Title)
	assert.Equal(t, "Beta", all[1].Title)
}

func TestRecordStoreDoesNotAlias(t *testing.T) {
	st := NewRecordStore()

	s := types.PaperSummary{Title: "Alpha", Authors: []string{"Ann"}, References: []string{"[1] X"}}
	st.Insert(s)
	s.Authors[0] = "mutated"
	s.References[0] = "mutated"

	got, _ := st.Get("Alpha")
	assert.Equal(t, []string{"Ann"}, got.Authors)
	assert.Equal(t, []string{"[1] X"}, got.References)

	got.Authors[0] = "mutated again"
	again, _ := st.Get("Alpha")
	assert.Equal(t, []string{"Ann"}, again.Authors)
}
