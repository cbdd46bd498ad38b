// Package assets bundles the sample documents shipped with the converter.
package assets

import (
	"embed"
	"fmt"
)

//go:embed samples/*
var samples embed.FS

// LoadSample loads a bundled sample Markdown document by name.
// The name should not include the .md extension.
func LoadSample(name string) (string, error) {
	content, err := samples.ReadFile("samples/" + name + ".md")
	if err != nil {
		return "", fmt.Errorf("sample %q not found: %w", name, err)
	}
	return string(content), nil
}

// DefaultSample returns the bundled demo document.
func DefaultSample() string {
	content, err := LoadSample("dictionaries")
	if err != nil {
		// The sample is compiled into the binary; a missing file is a
		// packaging bug, not a runtime condition.
		panic(err)
	}
	return content
}
