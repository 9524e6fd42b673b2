package ast

// Constructor helpers in the teacher's pkgs/ast/builder.go style
// (ast.Var(...), ast.Str(...) returning ready-to-use node pointers), used by
// the parser and by hand-written test fixtures that build trees without
// going through Tokenize+Parse.

func NewLiteralParser(lexeme string) *LiteralParser {
	return &LiteralParser{Lexeme: lexeme}
}

func NewRegexParser(pattern string) *RegexParser {
	return &RegexParser{Pattern: pattern}
}

func NewVar(name string) *Var {
	return &Var{Name: name}
}

func NewSequence(first, second Node) *Sequence {
	return &Sequence{First: first, Second: second}
}

func NewPeek(cases ...PeekCase) *Peek {
	return &Peek{Cases: cases}
}

func NewNamed(expr Node, name string) *Named {
	return &Named{Expr: expr, Name: name}
}

func NewAs(parser, result Node) *As {
	return &As{Parser: parser, Result: result}
}

func NewError(parser Node, message string) *Error {
	return &Error{Parser: parser, Message: message}
}

func NewDebug(expr Node) *Debug {
	return &Debug{Expr: expr}
}

func NewLitStr(value string) *LitStr {
	return &LitStr{Value: value}
}

func NewStruct(name string, fields ...StructField) *Struct {
	return &Struct{Name: name, Fields: fields}
}

func NewDef(name string, expr Node, exported bool) *Def {
	return &Def{Name: name, Expr: expr, Exported: exported}
}

func NewStatementSequence(stmts ...Node) *StatementSequence {
	return &StatementSequence{Stmts: stmts}
}
