package md2play

import "regexp"

// linePattern matches any run of characters up to the next line boundary.
// A general scanning pass behaves identically on Markdown and playground
// text, unlike a fixed-delimiter split.
const linePattern = `(?m)^.*$`

// lineScanner abstracts splitting a text blob into ordered lines.
type lineScanner interface {
	ScanLines(text string) []string
}

// regexpScanner splits text by scanning for line-bounded runs. A failure
// to compile the pattern degrades to an empty document with a diagnostic
// rather than aborting the pipeline.
type regexpScanner struct {
	log Logger
}

func newRegexpScanner(log Logger) *regexpScanner {
	return &regexpScanner{log: log}
}

// ScanLines splits text into lines, preserving empty lines as empty
// elements. The empty string yields a single empty line; a trailing
// newline yields a trailing empty line.
func (s *regexpScanner) ScanLines(text string) []string {
	re, err := regexp.Compile(linePattern)
	if err != nil {
		s.log("md2play: compiling line pattern: %v", err)
		return nil
	}
	return re.FindAllString(text, -1)
}
