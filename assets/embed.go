// Package assets holds the pre-written JavaScript runtime that
// pkgs/generator concatenates with generated parser code. Per spec.md
// §4.5's "Runtime coupling" design note, the runtime is an opaque text
// blob: this package only loads it, it never parses or analyzes it.
// Grounded on the teacher's go_template.go/templates.go convention of
// keeping template text out of Go source and the prototype's own
// runtimes/runtime.js + runtimes/standalone_runtime.js split in
// _examples/original_source/langlang/assemblers/runtimes/.
package assets

import _ "embed"

// RuntimeJS is the main runtime skeleton, with Go text/template
// placeholders ({{.Tokens}}, {{.Parsers}}, {{.Exports}}) for the generated
// parser body.
//
//go:embed runtime.js
var RuntimeJS string

// StandaloneRuntimeJS is appended to the rendered output when
// generator.WithStandaloneEntrypoint is used: a thin stdin-reading shim
// that invokes one export and prints its result (spec.md §6.4's
// `--stdin ENTRYPOINT`).
//
//go:embed standalone_runtime.js
var StandaloneRuntimeJS string
