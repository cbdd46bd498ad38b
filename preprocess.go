package md2play

import (
	"context"
	"regexp"
)

// Line ending normalization.
var crlfOrCR = regexp.MustCompile(`\r\n?`)

// textPreprocessor defines the contract for input normalization.
type textPreprocessor interface {
	Preprocess(ctx context.Context, content string) string
}

// lineEndingPreprocessor normalizes content before line splitting.
type lineEndingPreprocessor struct{}

// Preprocess converts \r\n and \r to \n so the line scanner sees a single
// line-terminator convention in both directions.
func (p *lineEndingPreprocessor) Preprocess(ctx context.Context, content string) string {
	// Check for cancellation before processing
	if ctx.Err() != nil {
		return content
	}
	return crlfOrCR.ReplaceAllString(content, "\n")
}
