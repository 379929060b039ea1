// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package proceedings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsPageNumberShape(t *testing.T) {
	tests := []struct {
		line     string
		want     bool
		wantPage int
	}{
		{"1", true, 1},
		{"12345", true, 12345},
		{" 42", true, 42},
		{"7\r", true, 7},
		{"-3", true, -3},
		{"12ab", true, 12},
		{"123456", false, 0},
		{"3.14", false, 0},
		{"50%", false, 0},
		{"1.", false, 0},
		{"abc", false, 0},
		{"[1] Some Citation", false, 0},
		{"", false, 0},
		{"   ", false, 0},
		{"+", false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			d := NewPageDetector(PolicyStrict)
			assert.Equal(t, tt.want, d.IsPageNumber(tt.line))
			last, seen := d.Last()
			assert.Equal(t, tt.want, seen)
			assert.Equal(t, tt.wantPage, last)
		})
	}
}

func TestIsPageNumberStrictSequence(t *testing.T) {
	d := NewPageDetector(PolicyStrict)

	steps := []struct {
		line string
		want bool
		last int
	}{
		{"10", true, 10},
		{"11", true, 11},
		{"13", false, 11},
		{"5", false, 11},
		{"11", false, 11},
		{"12", true, 12},
	}
	for _, s := range steps {
		assert.Equal(t, s.want, d.IsPageNumber(s.line), "line %q", s.line)
		last, _ := d.Last()
		assert.Equal(t, s.last, last, "after %q", s.line)
	}
}

func TestIsPageNumberLenientSequence(t *testing.T) {
	d := NewPageDetector(PolicyLenient)

	assert.True(t, d.IsPageNumber("5"))
	assert.True(t, d.IsPageNumber("3"), "smaller numbers are accepted")
	assert.True(t, d.IsPageNumber("4"))
	assert.False(t, d.IsPageNumber("9"), "forward skips are rejected")
	assert.False(t, d.IsPageNumber("4"), "repeats are rejected")

	last, seen := d.Last()
	assert.True(t, seen)
	assert.Equal(t, 4, last)
}

func TestParsePagePolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    PagePolicy
		wantErr bool
	}{
		{"", PolicyStrict, false},
		{"strict", PolicyStrict, false},
		{" Lenient ", PolicyLenient, false},
		{"loose", PolicyStrict, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePagePolicy(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownPagePolicy)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, mustParse(t, got.String()))
		})
	}
}

func mustParse(t *testing.T, s string) PagePolicy {
	t.Helper()
	p, err := ParsePagePolicy(s)
	require.NoError(t, err)
	return p
}
