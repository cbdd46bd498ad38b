package md2play

import "strings"

// playgroundTransformer abstracts the Markdown to playground direction.
type playgroundTransformer interface {
	ToPlayground(lines []string) string
}

// fenceTransformer rewrites Markdown fence lines into playground prose
// markers. Lines inside a code region are copied verbatim so the
// playground output stays directly runnable; prose lines pass through
// unchanged inside the comment delimiters.
type fenceTransformer struct {
	log Logger
}

func newFenceTransformer(log Logger) *fenceTransformer {
	return &fenceTransformer{log: log}
}

// ToPlayground converts Markdown lines to playground markup. The output
// always opens with a prose-open marker and closes with a prose-close
// marker, even for empty input. Blank lines are collapsed.
func (t *fenceTransformer) ToPlayground(lines []string) string {
	out := make([]string, 0, len(lines)+2)
	out = append(out, markerProseOpen)

	m := modeProse
	for _, line := range lines {
		out = append(out, t.playgroundSegments(line, &m)...)
	}
	if m == modeCode {
		t.log("md2play: unterminated code fence at end of input")
	}

	out = append(out, markerProseClose)
	return strings.Join(out, "\n")
}

// playgroundSegments maps one Markdown line to zero or more playground
// lines, advancing the fence mode as a side channel. The fence lines
// themselves are consumed by the markers that replace them.
func (t *fenceTransformer) playgroundSegments(line string, m *mode) []string {
	switch {
	case strings.HasPrefix(line, fenceSwift):
		if *m == modeCode {
			t.log("md2play: code fence opened inside a code region")
		}
		*m = modeCode
		return []string{markerProseClose}
	case strings.HasPrefix(line, fenceGeneric):
		if *m == modeProse {
			t.log("md2play: closing fence without a matching open")
		}
		*m = modeProse
		return []string{markerProseOpen}
	case line == "":
		return nil
	default:
		return []string{line}
	}
}
