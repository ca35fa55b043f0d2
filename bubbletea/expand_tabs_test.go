package bubbletea_test

import (
	"testing"

	"github.com/fwojciec/lineview/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestExpandTabs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		startCol int
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			startCol: 0,
			expected: "",
		},
		{
			name:     "no tabs",
			input:    "hello world",
			startCol: 0,
			expected: "hello world",
		},
		{
			name:     "single tab at start expands to 8 spaces",
			input:    "\t",
			startCol: 0,
			expected: "        ",
		},
		{
			name:     "tab after one char expands to 7 spaces",
			input:    "a\t",
			startCol: 0,
			expected: "a       ",
		},
		{
			name:     "tab after eight chars expands to 8 spaces",
			input:    "12345678\t",
			startCol: 0,
			expected: "12345678        ",
		},
		{
			name:     "multiple tabs",
			input:    "\t\t",
			startCol: 0,
			expected: "                ",
		},
		{
			name:     "mixed content with tabs",
			input:    "abc\tdef",
			startCol: 0,
			expected: "abc     def",
		},
		{
			name:     "startCol affects first tab expansion",
			input:    "\t",
			startCol: 3,
			expected: "     ",
		},
		{
			name:     "unicode character before tab",
			input:    "日\t", // CJK character (width 2) + tab
			startCol: 0,
			expected: "日      ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result := bubbletea.ExpandTabs(tt.input, tt.startCol)
			assert.Equal(t, tt.expected, result)
		})
	}
}
