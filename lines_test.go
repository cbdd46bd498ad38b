package md2play

import (
	"reflect"
	"strings"
	"testing"
)

func TestScanLines(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "empty string yields one empty line",
			input:    "",
			expected: []string{""},
		},
		{
			name:     "single line without terminator",
			input:    "hello",
			expected: []string{"hello"},
		},
		{
			name:     "two lines",
			input:    "one\ntwo",
			expected: []string{"one", "two"},
		},
		{
			name:     "trailing newline yields trailing empty line",
			input:    "one\n",
			expected: []string{"one", ""},
		},
		{
			name:     "empty lines preserved as empty elements",
			input:    "one\n\ntwo",
			expected: []string{"one", "", "two"},
		},
		{
			name:     "only newlines",
			input:    "\n\n",
			expected: []string{"", "", ""},
		},
		{
			name:     "fence lines are opaque to the scanner",
			input:    "``` swift\nlet x = 1\n```",
			expected: []string{"``` swift", "let x = 1", "```"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scanner := newRegexpScanner(discardLogger)
			got := scanner.ScanLines(tt.input)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("ScanLines(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestScanLinesIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"single",
		"# Title\n\n``` swift\nlet x = 1\n```\ndone",
		"/*:\n# Title\n*/",
	}

	scanner := newRegexpScanner(discardLogger)
	for _, input := range inputs {
		first := scanner.ScanLines(input)
		second := scanner.ScanLines(strings.Join(first, "\n"))
		if !reflect.DeepEqual(first, second) {
			t.Errorf("ScanLines not idempotent for %q: first %q, second %q", input, first, second)
		}
	}
}

func TestScanLinesBehavesIdenticallyOnBothFormats(t *testing.T) {
	// The same scanner serves both directions; line counts must match the
	// number of newline-separated segments in either format.
	scanner := newRegexpScanner(discardLogger)

	markdown := "# Title\n``` swift\nlet x = 1\n```"
	playground := "/*:\n# Title\n*/\nlet x = 1"

	if got := len(scanner.ScanLines(markdown)); got != 4 {
		t.Errorf("markdown line count = %d, want 4", got)
	}
	if got := len(scanner.ScanLines(playground)); got != 4 {
		t.Errorf("playground line count = %d, want 4", got)
	}
}
