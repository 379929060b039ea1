// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package proceedings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrim(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no whitespace", "Abstract", "Abstract"},
		{"spaces both ends", "  Jane Doe  ", "Jane Doe"},
		{"carriage return", "References\r", "References"},
		{"mixed classes", "\t\f\v 12 \n", "12"},
		{"inner whitespace kept", " A  Survey\tOf ", "A  Survey\tOf"},
		{"only whitespace", " \t\r\n\f\v", ""},
		{"empty", "", ""},
		{"non-breaking space kept", "\u00a0x\u00a0", "\u00a0x\u00a0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Trim(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, Trim(got), "Trim must be idempotent")
		})
	}
}
