package md2play

// Logger receives diagnostics from the conversion pipeline. The library
// never writes to the console itself; wire this to a log sink to surface
// scanner failures and unbalanced markers.
type Logger func(format string, args ...any)

// discardLogger is the default Logger.
func discardLogger(string, ...any) {}

// RoundTripResult holds both outputs of a round-trip conversion.
type RoundTripResult struct {
	Playground string // the playground form of the input Markdown
	Markdown   string // the Markdown recovered from the playground form
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	log          Logger
	previewStyle string
}

// DefaultPreviewStyle is the chroma style used by PreviewHTML when no
// other style is configured.
const DefaultPreviewStyle = "github"

// WithLogger sets the diagnostic sink. Panics if log is nil (programmer
// error; pass nothing to keep the default no-op logger).
func WithLogger(log Logger) Option {
	if log == nil {
		panic("md2play: WithLogger logger must not be nil")
	}
	return func(s *Service) {
		s.cfg.log = log
	}
}

// WithPreviewStyle sets the chroma syntax-highlighting style used by
// PreviewHTML. The name is validated when the preview is rendered.
func WithPreviewStyle(name string) Option {
	return func(s *Service) {
		s.cfg.previewStyle = name
	}
}
