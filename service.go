package md2play

import "context"

// Service orchestrates the Markdown/playground conversion pipeline.
type Service struct {
	cfg           serviceConfig
	preprocessor  textPreprocessor
	scanner       lineScanner
	toPlayground  playgroundTransformer
	toMarkdown    markdownTransformer
	htmlPreviewer htmlPreviewer
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithLogger).
func New(opts ...Option) *Service {
	s := &Service{
		cfg: serviceConfig{
			log:          discardLogger,
			previewStyle: DefaultPreviewStyle,
		},
	}

	for _, opt := range opts {
		opt(s)
	}

	// Create pipeline stages if not injected (e.g., by tests)
	if s.preprocessor == nil {
		s.preprocessor = &lineEndingPreprocessor{}
	}
	if s.scanner == nil {
		s.scanner = newRegexpScanner(s.cfg.log)
	}
	if s.toPlayground == nil {
		s.toPlayground = newFenceTransformer(s.cfg.log)
	}
	if s.toMarkdown == nil {
		s.toMarkdown = newMarkerTransformer(s.cfg.log)
	}
	if s.htmlPreviewer == nil {
		s.htmlPreviewer = newGoldmarkPreviewer(s.cfg.previewStyle)
	}

	return s
}

// ToPlayground converts a Markdown document to playground markup.
// The context is used for cancellation.
func (s *Service) ToPlayground(ctx context.Context, markdown string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	content := s.preprocessor.Preprocess(ctx, markdown)
	lines := s.scanner.ScanLines(content)
	if err := ctx.Err(); err != nil {
		return "", err
	}

	return s.toPlayground.ToPlayground(lines), nil
}

// ToMarkdown converts a playground document back to Markdown.
// The context is used for cancellation.
func (s *Service) ToMarkdown(ctx context.Context, playground string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	content := s.preprocessor.Preprocess(ctx, playground)
	lines := s.scanner.ScanLines(content)
	if err := ctx.Err(); err != nil {
		return "", err
	}

	return s.toMarkdown.ToMarkdown(lines), nil
}

// RoundTrip converts Markdown to playground form and back, returning both
// results. For well-formed input the recovered Markdown reproduces the
// original's non-blank lines in order.
func (s *Service) RoundTrip(ctx context.Context, markdown string) (*RoundTripResult, error) {
	playground, err := s.ToPlayground(ctx, markdown)
	if err != nil {
		return nil, err
	}

	recovered, err := s.ToMarkdown(ctx, playground)
	if err != nil {
		return nil, err
	}

	return &RoundTripResult{Playground: playground, Markdown: recovered}, nil
}

// PreviewHTML renders a Markdown document to a standalone HTML page with
// highlighted code blocks. Intended for inspecting round-trip output; the
// rendered HTML never feeds back into conversion.
func (s *Service) PreviewHTML(ctx context.Context, markdown string) (string, error) {
	return s.htmlPreviewer.Preview(ctx, markdown)
}
