package driver

import "log/slog"

// Option configures Compile. Grounded on the teacher's
// runtime/parser/options.go functional-options pattern.
type Option func(*config)

type config struct {
	logger               *slog.Logger
	standaloneEntrypoint string
}

func newConfig() *config {
	return &config{logger: defaultLogger()}
}

// WithLogger overrides the default LLC_DEBUG-gated logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithStandaloneEntrypoint forwards to generator.WithStandaloneEntrypoint,
// appending the spec.md §6.4 `--stdin ENTRYPOINT` shim to the compiled
// output.
func WithStandaloneEntrypoint(name string) Option {
	return func(c *config) {
		c.standaloneEntrypoint = name
	}
}
