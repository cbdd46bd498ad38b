package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	md2play "github.com/alnah/go-md2play"
	"github.com/alnah/go-md2play/internal/assets"
	"github.com/alnah/go-md2play/internal/fileutil"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput = errors.New("no input file (pass <input.md> or use --demo)")
)

// Converter is the interface for the conversion service.
type Converter interface {
	ToPlayground(ctx context.Context, markdown string) (string, error)
	ToMarkdown(ctx context.Context, playground string) (string, error)
	RoundTrip(ctx context.Context, markdown string) (*md2play.RoundTripResult, error)
	PreviewHTML(ctx context.Context, markdown string) (string, error)
}

// run reads the input, delegates to the conversion service, and writes the
// results. stdout receives the converted documents; progress and errors go
// to the caller.
func run(ctx context.Context, flags *cliFlags, args []string, cfg *Config, service Converter, stdout io.Writer) error {
	if flags.demo {
		return runDemo(ctx, service, stdout)
	}

	if len(args) < 1 {
		return ErrNoInput
	}
	inputPath := resolveInputPath(cfg, args[0])

	if err := fileutil.ValidateDocumentExtension(inputPath); err != nil {
		return err
	}

	content, err := fileutil.ReadTextFile(inputPath)
	if err != nil {
		return err
	}

	// Direction: explicit flag wins, otherwise infer from the extension.
	toMarkdown := flags.toMarkdown || fileutil.IsPlaygroundPath(inputPath)

	// An output directory in the config turns the default stdout sink into
	// a derived file path; an explicit --output always wins.
	if flags.output == "" && cfg.Output.DefaultDir != "" {
		flags.output = resolveOutputPath(cfg, inputPath, toMarkdown)
	}

	switch {
	case toMarkdown:
		markdown, err := service.ToMarkdown(ctx, content)
		if err != nil {
			return err
		}
		return writeResult(flags, markdown, stdout)

	case flags.roundTrip:
		result, err := service.RoundTrip(ctx, content)
		if err != nil {
			return err
		}
		if err := writePreview(ctx, flags, service, result.Markdown); err != nil {
			return err
		}
		return writeResult(flags, result.Playground+"\n\n"+result.Markdown, stdout)

	default:
		playground, err := service.ToPlayground(ctx, content)
		if err != nil {
			return err
		}
		if flags.preview != "" {
			// The preview shows what a round trip recovers, so convert back.
			recovered, err := service.ToMarkdown(ctx, playground)
			if err != nil {
				return err
			}
			if err := writePreview(ctx, flags, service, recovered); err != nil {
				return err
			}
		}
		return writeResult(flags, playground, stdout)
	}
}

// runDemo converts the bundled sample document to playground form, prints
// it, converts the result back to Markdown, and prints that too.
func runDemo(ctx context.Context, service Converter, stdout io.Writer) error {
	result, err := service.RoundTrip(ctx, assets.DefaultSample())
	if err != nil {
		return err
	}

	fmt.Fprintln(stdout, result.Playground)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, result.Markdown)
	return nil
}

// writeResult writes content to the output file, or to stdout when no
// output path is set.
func writeResult(flags *cliFlags, content string, stdout io.Writer) error {
	if flags.output == "" {
		fmt.Fprintln(stdout, content)
		return nil
	}
	if err := fileutil.WriteTextFile(flags.output, content); err != nil {
		return err
	}
	if !flags.quiet {
		fmt.Fprintf(stdout, "Created %s\n", flags.output)
	}
	return nil
}

// writePreview renders markdown to HTML and writes it to the preview path,
// if one was requested.
func writePreview(ctx context.Context, flags *cliFlags, service Converter, markdown string) error {
	if flags.preview == "" {
		return nil
	}
	html, err := service.PreviewHTML(ctx, markdown)
	if err != nil {
		return err
	}
	return fileutil.WriteTextFile(flags.preview, html)
}

// resolveInputPath prepends the configured default directory to bare file
// names. Paths with separators are used as-is.
func resolveInputPath(cfg *Config, name string) string {
	if cfg.Input.DefaultDir == "" || fileutil.IsFilePath(name) {
		return name
	}
	return filepath.Join(cfg.Input.DefaultDir, name)
}

// resolveOutputPath derives the output path from the input path when the
// user did not pass one, swapping the extension for the target format.
func resolveOutputPath(cfg *Config, inputPath string, toMarkdown bool) string {
	ext := ".playground"
	if toMarkdown {
		ext = ".md"
	}
	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath)) + ext
	dir := cfg.Output.DefaultDir
	if dir == "" {
		dir = filepath.Dir(inputPath)
	}
	return filepath.Join(dir, base)
}
