package md2play

import "errors"

// Sentinel errors for library operations.
var (
	ErrHTMLPreview = errors.New("HTML preview rendering failed")

	// Preview style validation errors.
	ErrUnknownPreviewStyle = errors.New("unknown preview style")
)
