package generator

// Option configures Generate. Grounded on the teacher's
// runtime/parser/options.go functional-options pattern (ParserOpt func(*Config)),
// carried through to this package and to pkgs/driver.
type Option func(*config)

type config struct {
	standaloneEntrypoint string
}

// WithStandaloneEntrypoint appends a stdin-reading shim (spec.md §6.4's
// `--stdin ENTRYPOINT`) invoking the named export and printing its result.
// Supplemented from the prototype's `assemble(ast,
// standalone_parser_entrypoint=None)` parameter in
// _examples/original_source/langlang/assemblers/javascript.py, which is the
// only place in the source that actually wires up the "unexported
// standalone entry point" error spec.md §7's taxonomy names but whose call
// site spec.md's prose never shows.
func WithStandaloneEntrypoint(name string) Option {
	return func(c *config) {
		c.standaloneEntrypoint = name
	}
}
