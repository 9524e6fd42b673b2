// Package driver sequences the four pure compiler phases — tokenize,
// parse, decorate, emit — into the single entry point the rest of the
// module exposes. Grounded on the teacher's cmd/devcmd/main.go pipeline
// shape (parser.Parse -> ... .ExpandVariables() -> generator.GenerateGo),
// minus the os.ReadFile/os.Exit/flag-parsing shell, since spec.md §1
// places the CLI out of scope. Matches spec.md §5's ordering requirement:
// the pipeline is strictly sequential and no phase observes another's
// partial state.
package driver

import (
	"log/slog"
	"os"

	"github.com/aledsdavies/llc/pkgs/decorate"
	"github.com/aledsdavies/llc/pkgs/generator"
	"github.com/aledsdavies/llc/pkgs/lexer"
	"github.com/aledsdavies/llc/pkgs/parser"
)

// Compile runs the full pipeline over source and returns the rendered
// JavaScript output.
func Compile(source string, opts ...Option) (string, error) {
	cfg := newConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	stream, err := lexer.TokenizeWithLogger(source, cfg.logger)
	if err != nil {
		return "", err
	}

	prog, err := parser.Parse(stream)
	if err != nil {
		return "", err
	}

	if err := decorate.Decorate(prog); err != nil {
		return "", err
	}

	var genOpts []generator.Option
	if cfg.standaloneEntrypoint != "" {
		genOpts = append(genOpts, generator.WithStandaloneEntrypoint(cfg.standaloneEntrypoint))
	}

	return generator.Generate(prog, genOpts...)
}

// defaultLogger mirrors the teacher's env-var-gated slog wiring
// (runtime/lexer/lexer.go, cli/internal/parser/parser.go): LLC_DEBUG set
// to any non-empty value raises the level from Info to Debug. Time/level
// keys are stripped from each record, whether or not LLC_DEBUG is set, for
// terse single-line output.
func defaultLogger() *slog.Logger {
	level := slog.LevelInfo
	if os.Getenv("LLC_DEBUG") != "" {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey || a.Key == slog.LevelKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}
