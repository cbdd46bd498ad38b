package main

import (
	flag "github.com/spf13/pflag"
)

// cliFlags holds all flags for the md2play CLI.
type cliFlags struct {
	config     string
	output     string
	preview    string
	style      string
	toMarkdown bool
	roundTrip  bool
	demo       bool
	quiet      bool
	verbose    bool
	version    bool
}

// parseFlags parses command-line arguments.
// Returns the flags, the remaining positional arguments, and any parse error.
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("md2play", flag.ContinueOnError)
	f := &cliFlags{}

	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVarP(&f.output, "output", "o", "", "output file (default: stdout)")
	fs.StringVar(&f.preview, "preview", "", "write an HTML preview of the recovered Markdown to this path")
	fs.StringVar(&f.style, "style", "", "chroma style for the HTML preview")
	fs.BoolVar(&f.toMarkdown, "to-markdown", false, "convert playground markup back to Markdown")
	fs.BoolVar(&f.roundTrip, "round-trip", false, "print the playground form and the recovered Markdown")
	fs.BoolVar(&f.demo, "demo", false, "run the round-trip demo on the bundled sample document")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show pipeline diagnostics")
	fs.BoolVar(&f.version, "version", false, "show version information")

	if err := fs.Parse(args[1:]); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
