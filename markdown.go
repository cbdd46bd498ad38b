package md2play

import "strings"

// markdownTransformer abstracts the playground to Markdown direction.
type markdownTransformer interface {
	ToMarkdown(lines []string) string
}

// markerTransformer rewrites playground prose markers back into Markdown
// fence lines. It mirrors fenceTransformer: each prose marker reintroduces
// the fence it replaced, and the synthetic leading and trailing markers
// added by ToPlayground shed their fence artifacts in a final trim.
type markerTransformer struct {
	log Logger
}

func newMarkerTransformer(log Logger) *markerTransformer {
	return &markerTransformer{log: log}
}

// ToMarkdown converts playground lines to Markdown. For well-formed input
// it is the inverse of ToPlayground up to blank-line collapsing.
func (t *markerTransformer) ToMarkdown(lines []string) string {
	var out []string

	// Outside a prose region the playground lines are raw code, so the
	// document begins and ends in code mode.
	m := modeCode
	for _, line := range lines {
		out = append(out, t.markdownSegments(line, &m)...)
	}
	if m == modeProse {
		t.log("md2play: unterminated prose region at end of input")
	}

	// The first and last segments come from the synthetic markers that
	// frame every playground document; the fences they emit have no
	// counterpart in the original Markdown.
	if len(out) <= 2 {
		return ""
	}
	return strings.Join(out[1:len(out)-1], "\n")
}

// markdownSegments maps one playground line to zero or more Markdown
// lines. Marker stripping removes only the exact marker prefix; any text
// on the marker line, leading space included, is kept as-is. Empty
// remainders are dropped, matching the blank-line collapse rule.
func (t *markerTransformer) markdownSegments(line string, m *mode) []string {
	switch {
	case strings.HasPrefix(line, markerProseOpen):
		if *m == modeProse {
			t.log("md2play: prose-open marker inside a prose region")
		}
		*m = modeProse
		return appendNonEmpty(nil, strings.TrimPrefix(line, markerProseOpen), fenceGeneric)
	case strings.HasPrefix(line, markerProseLine):
		return appendNonEmpty(nil, strings.TrimPrefix(line, markerProseLine))
	case strings.HasPrefix(line, markerProseClose):
		if *m == modeCode {
			t.log("md2play: prose-close marker without a matching open")
		}
		*m = modeCode
		return appendNonEmpty(nil, strings.TrimPrefix(line, markerProseClose), fenceSwift)
	case line == "":
		return nil
	default:
		return []string{line}
	}
}

// appendNonEmpty appends segments to dst, skipping empty ones.
func appendNonEmpty(dst []string, segments ...string) []string {
	for _, seg := range segments {
		if seg != "" {
			dst = append(dst, seg)
		}
	}
	return dst
}
