package md2play

import (
	"context"
	"errors"
	"testing"
)

// Mock implementations for testing.

type mockPreprocessor struct {
	called bool
	input  string
	output string
}

func (m *mockPreprocessor) Preprocess(ctx context.Context, content string) string {
	m.called = true
	m.input = content
	if m.output != "" {
		return m.output
	}
	return content
}

type mockScanner struct {
	called bool
	input  string
	output []string
}

func (m *mockScanner) ScanLines(text string) []string {
	m.called = true
	m.input = text
	if m.output != nil {
		return m.output
	}
	return []string{text}
}

type mockPlaygroundTransformer struct {
	called bool
	input  []string
	output string
}

func (m *mockPlaygroundTransformer) ToPlayground(lines []string) string {
	m.called = true
	m.input = lines
	return m.output
}

type mockMarkdownTransformer struct {
	called bool
	input  []string
	output string
}

func (m *mockMarkdownTransformer) ToMarkdown(lines []string) string {
	m.called = true
	m.input = lines
	return m.output
}

type mockPreviewer struct {
	called bool
	input  string
	output string
	err    error
}

func (m *mockPreviewer) Preview(ctx context.Context, content string) (string, error) {
	m.called = true
	m.input = content
	return m.output, m.err
}

// Test options for dependency injection (not exported).

func withPreprocessor(p textPreprocessor) Option {
	return func(s *Service) {
		s.preprocessor = p
	}
}

func withScanner(sc lineScanner) Option {
	return func(s *Service) {
		s.scanner = sc
	}
}

func withPlaygroundTransformer(t playgroundTransformer) Option {
	return func(s *Service) {
		s.toPlayground = t
	}
}

func withMarkdownTransformer(t markdownTransformer) Option {
	return func(s *Service) {
		s.toMarkdown = t
	}
}

func withPreviewer(p htmlPreviewer) Option {
	return func(s *Service) {
		s.htmlPreviewer = p
	}
}

func TestServiceToPlaygroundPipeline(t *testing.T) {
	pre := &mockPreprocessor{}
	scanner := &mockScanner{output: []string{"# Title"}}
	transformer := &mockPlaygroundTransformer{output: "/*:\n# Title\n*/"}

	svc := New(
		withPreprocessor(pre),
		withScanner(scanner),
		withPlaygroundTransformer(transformer),
		withMarkdownTransformer(&mockMarkdownTransformer{}),
		withPreviewer(&mockPreviewer{}),
	)

	got, err := svc.ToPlayground(context.Background(), "# Title")
	if err != nil {
		t.Fatalf("ToPlayground() error = %v", err)
	}
	if got != "/*:\n# Title\n*/" {
		t.Errorf("ToPlayground() = %q, want %q", got, "/*:\n# Title\n*/")
	}

	if !pre.called {
		t.Error("preprocessor not called")
	}
	if !scanner.called {
		t.Error("scanner not called")
	}
	if !transformer.called {
		t.Error("transformer not called")
	}
}

func TestServiceCancelledContext(t *testing.T) {
	svc := New()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := svc.ToPlayground(ctx, "x"); !errors.Is(err, context.Canceled) {
		t.Errorf("ToPlayground() error = %v, want context.Canceled", err)
	}
	if _, err := svc.ToMarkdown(ctx, "x"); !errors.Is(err, context.Canceled) {
		t.Errorf("ToMarkdown() error = %v, want context.Canceled", err)
	}
	if _, err := svc.RoundTrip(ctx, "x"); !errors.Is(err, context.Canceled) {
		t.Errorf("RoundTrip() error = %v, want context.Canceled", err)
	}
}

func TestServiceNormalizesLineEndings(t *testing.T) {
	svc := New()

	crlf, err := svc.ToPlayground(context.Background(), "a\r\nb\rc")
	if err != nil {
		t.Fatalf("ToPlayground() error = %v", err)
	}
	lf, err := svc.ToPlayground(context.Background(), "a\nb\nc")
	if err != nil {
		t.Fatalf("ToPlayground() error = %v", err)
	}
	if crlf != lf {
		t.Errorf("CRLF input produced %q, LF input produced %q", crlf, lf)
	}
}

func TestWithLoggerNilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("WithLogger(nil) did not panic")
		}
	}()
	WithLogger(nil)
}
