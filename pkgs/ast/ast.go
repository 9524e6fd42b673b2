// Package ast defines the closed set of node variants the grammar parser
// builds, the semantic decorator annotates, and the emitter walks.
package ast

// Node is implemented by every AST variant. It carries no behavior of its
// own; dispatch happens via type switches in pkgs/decorate and
// pkgs/generator, matching the closed-variant design of spec.md §9 ("Replace
// class hierarchies with a tagged union... dispatched by a single visitor").
type Node interface {
	isNode()
}

// Decoration holds the fields semantic analysis fills in on every node:
// the static type and the storage method describing how the emitter
// disposes of the node's produced value. Parser and value expressions embed
// this directly rather than wrapping nodes in a separate decorated tree,
// since spec.md treats decoration as in-place annotation.
type Decoration struct {
	Type          Type
	StorageMethod StorageMethod
}

// ---- Parsers (consume input) ----

// LiteralParser matches a fixed string.
type LiteralParser struct {
	Decoration
	Lexeme string
}

// RegexParser matches a regular expression anchored at the current position.
type RegexParser struct {
	Decoration
	Pattern string
}

// Var references a previously defined name; it may denote a parser or a
// value, resolved at decoration.
type Var struct {
	Decoration
	Name string
}

// Sequence is a right-leaning binary tree of two parser expressions.
type Sequence struct {
	Decoration
	First  Node
	Second Node
}

// PeekCase is one arm of a Peek: Test is nil for the default/any arm, which
// must be last if present.
type PeekCase struct {
	Test Node // nil means "default"
	Body Node
}

// Peek is prioritized choice via one-token lookahead: cases are tried in
// order, first match wins.
type Peek struct {
	Decoration
	Cases []PeekCase
}

// Named parses Expr and binds its result to Name in the enclosing scope.
type Named struct {
	Decoration
	Expr Node
	Name string
}

// As runs Parser for side effect (input consumption), then evaluates Result
// as the overall result.
type As struct {
	Decoration
	Parser Node
	Result Node
}

// Error runs Parser; if it fails, raises a user-visible error with Message.
type Error struct {
	Decoration
	Parser  Node
	Message string
}

// Debug runs Expr and prints the JSON serialization of its result for
// diagnostics, then forwards the result unchanged. Not listed among §3's
// closed variants, but required by the grammar table (§4.3, atom and
// statement productions), the decorator rule (§4.4), and the emission rule
// (§4.5) — all of which spec.md states explicitly. Grounded directly on
// _examples/original_source/langlang/langlang_ast.py's Debug class and
// .../assemblers/javascript.py's Debug emission branch.
type Debug struct {
	Decoration
	Expr Node
}

// ---- Values (produce no input consumption) ----

// LitStr is a string literal value.
type LitStr struct {
	Decoration
	Value string
}

// StructField is one field of a Struct value expression: the field name and
// the name of the value expression (a scope-bound identifier) it reads from.
type StructField struct {
	Name  string
	Value string
}

// Struct constructs a structured value. If Name is non-empty, a reserved
// "_type" field carries it.
type Struct struct {
	Decoration
	Name   string // "" means anonymous
	Fields []StructField
}

// ---- Top level ----

// Def is a rule definition. Expr may reference earlier or later
// definitions; forward references are resolved by name.
type Def struct {
	Decoration
	Name     string
	Expr     Node
	Exported bool
}

// StatementSequence is the whole program: an ordered list of top-level
// statements. Spec.md §3 describes this as "a list of Def", but the grammar
// table (§4.3: statement = first_of(debug, def)) and the decorator rule
// (§4.4: "each Def visited with Ignore") both admit a bare top-level
// `debug(...)` alongside definitions — matched directly in
// original_source/langlang/parsing/ll_parser.py's parse_statement and
// syntax_tree_utilities.py's generic "for stmt in node.stmts" walk, neither
// of which assumes Def. Stmts is typed as Node, not Def, to carry both.
type StatementSequence struct {
	Decoration
	Stmts []Node
}

func (*LiteralParser) isNode()     {}
func (*RegexParser) isNode()       {}
func (*Var) isNode()               {}
func (*Sequence) isNode()          {}
func (*Peek) isNode()              {}
func (*Named) isNode()             {}
func (*As) isNode()                {}
func (*Error) isNode()             {}
func (*Debug) isNode()             {}
func (*LitStr) isNode()            {}
func (*Struct) isNode()            {}
func (*Def) isNode()               {}
func (*StatementSequence) isNode() {}
