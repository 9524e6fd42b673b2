package generator

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/aledsdavies/llc/pkgs/ast"
)

// Generate walks a fully decorated program and renders the complete
// JavaScript output file: the embedded runtime skeleton with the
// generated parser methods, token table, and export block spliced in.
func Generate(prog *ast.StatementSequence, opts ...Option) (string, error) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	ctx := newContext()
	parsers, _, err := emit(prog, ctx, indentUnit)
	if err != nil {
		return "", err
	}

	if cfg.standaloneEntrypoint != "" && !lo.Contains(ctx.exports, cfg.standaloneEntrypoint) {
		return "", newEmitError("standalone entrypoint %q is not an exported rule", cfg.standaloneEntrypoint)
	}

	out, err := render(templateData{
		Parsers: parsers,
		Tokens:  renderTokenTable(ctx),
		Exports: renderExports(ctx),
	})
	if err != nil {
		return "", err
	}

	if cfg.standaloneEntrypoint != "" {
		shim, err := renderStandaloneShim(cfg.standaloneEntrypoint)
		if err != nil {
			return "", err
		}
		out += shim
	}

	return out, nil
}

func renderTokenTable(ctx *context) string {
	var lines []string
	for _, name := range ctx.sortedTokenNames() {
		lines = append(lines, fmt.Sprintf("            %q: %s,", name, ctx.tokens[name]))
	}
	return strings.Join(lines, "\n")
}

func renderExports(ctx *context) string {
	names := append([]string(nil), ctx.exports...)
	return strings.Join(lo.Map(names, func(name string, _ int) string {
		return fmt.Sprintf("exports.%s = (input) => new Parser(input).__consume_all(%q);", name, name)
	}), "\n")
}
