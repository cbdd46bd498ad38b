package md2play

import (
	"bytes"
	"context"
	"fmt"

	"github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	highlighting "github.com/yuin/goldmark-highlighting/v2"
)

// previewTemplate wraps Goldmark's fragment output in a complete HTML5
// document.
const previewTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Round-trip preview</title>
</head>
<body>
%s
</body>
</html>`

// htmlPreviewer abstracts Markdown to HTML preview rendering.
type htmlPreviewer interface {
	Preview(ctx context.Context, content string) (string, error)
}

// goldmarkPreviewer renders Markdown to HTML using goldmark with
// chroma-backed syntax highlighting for the fenced code blocks.
type goldmarkPreviewer struct {
	md    goldmark.Markdown
	style string
}

// newGoldmarkPreviewer creates a previewer for the given chroma style.
func newGoldmarkPreviewer(style string) *goldmarkPreviewer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM, // Tables, strikethrough, autolinks, task lists
			highlighting.NewHighlighting(
				highlighting.WithStyle(style),
			),
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(), // Self-closing tags
		),
	)
	return &goldmarkPreviewer{md: md, style: style}
}

// Preview renders Markdown content to a standalone HTML5 document.
// Supports context cancellation via goroutine + select pattern since
// Goldmark doesn't natively support context.
func (p *goldmarkPreviewer) Preview(ctx context.Context, content string) (string, error) {
	if err := validatePreviewStyle(p.style); err != nil {
		return "", err
	}

	// Fast path: check context before starting
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := p.md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLPreview, err)}
			return
		}
		done <- result{html: fmt.Sprintf(previewTemplate, buf.String())}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}

// validatePreviewStyle checks that name is a registered chroma style.
// Chroma silently falls back to a default style for unknown names, which
// would hide typos in user config.
func validatePreviewStyle(name string) error {
	if _, ok := styles.Registry[name]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownPreviewStyle, name)
	}
	return nil
}
