// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors for file utility operations.
var (
	ErrUnknownExtension = errors.New("unrecognized file extension")
	ErrReadFile         = errors.New("failed to read file")
	ErrWriteFile        = errors.New("failed to write file")
)

// Recognized extensions per document kind.
var (
	markdownExtensions   = []string{".md", ".markdown"}
	playgroundExtensions = []string{".playground", ".playgroundpage", ".txt"}
)

// IsMarkdownPath returns true if the path carries a Markdown extension.
func IsMarkdownPath(path string) bool {
	return hasExtension(path, markdownExtensions)
}

// IsPlaygroundPath returns true if the path carries a playground extension.
func IsPlaygroundPath(path string) bool {
	return hasExtension(path, playgroundExtensions)
}

// ValidateDocumentExtension checks that the path carries a recognized
// Markdown or playground extension.
func ValidateDocumentExtension(path string) error {
	if IsMarkdownPath(path) || IsPlaygroundPath(path) {
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownExtension, filepath.Ext(path))
}

func hasExtension(path string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// ReadTextFile reads a whole text file into a string.
func ReadTextFile(path string) (string, error) {
	content, err := os.ReadFile(path) // #nosec G304 -- path is user-provided CLI input
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReadFile, err)
	}
	return string(content), nil
}

// WriteTextFile writes content to path with owner read/write permissions.
func WriteTextFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFile, err)
	}
	return nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than
// a name. A string containing path separators (/, \) is treated as a path.
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}
