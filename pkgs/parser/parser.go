// Package parser turns a lexer.Stream into an ast.StatementSequence via
// hand-written recursive-descent parsing with backtracking, following the
// grammar table in spec.md §4.3. Grounded throughout on
// _examples/original_source/langlang/parsing/ll_parser.py, the final
// variant of the prototype's parser (as opposed to the earlier, unrelated
// langlang_parser.py draft at the repository root of original_source).
package parser

import (
	"strings"

	"github.com/aledsdavies/llc/pkgs/ast"
	"github.com/aledsdavies/llc/pkgs/lexer"
)

// Parse tokenizes nothing itself — callers run lexer.Tokenize first — and
// parses the resulting stream into a whole program.
func Parse(s *lexer.Stream) (*ast.StatementSequence, error) {
	return parseFile(s)
}

// ---- file / statement / def ----

func parseFile(s *lexer.Stream) (*ast.StatementSequence, error) {
	stmts, _ := listOf(s, parseStatement, 0, nil)

	if !s.Empty() {
		// The list terminated because the next statement failed; rerun it
		// standalone purely to obtain a meaningful error to report.
		if _, err := parseStatement(s); err != nil {
			return nil, NewParseError(err, s.Remaining())
		}
		return nil, NewParseError(&trailingTokens{tokens: s.Remaining()}, s.Remaining())
	}

	return &ast.StatementSequence{Stmts: stmts}, nil
}

func parseStatement(s *lexer.Stream) (ast.Node, error) {
	return firstOf[ast.Node](s, parseDebugNode, parseDefNode)
}

func parseDefNode(s *lexer.Stream) (ast.Node, error) {
	return parseDef(s)
}

func parseDebugNode(s *lexer.Stream) (ast.Node, error) {
	return parseDebug(s)
}

func parseDef(s *lexer.Stream) (*ast.Def, error) {
	idx := s.Index()

	exported := false
	if _, err := s.Need(lexer.KwExport); err == nil {
		exported = true
	} else {
		s.SetIndex(idx)
	}

	name, err := s.Need(lexer.Ident)
	if err != nil {
		s.SetIndex(idx)
		return nil, err
	}
	if _, err := s.Need(lexer.DoubleColon); err != nil {
		s.SetIndex(idx)
		return nil, err
	}
	expr, err := parseSuffix(s)
	if err != nil {
		s.SetIndex(idx)
		return nil, err
	}

	return ast.NewDef(name.Lexeme, expr, exported), nil
}

// ---- suffix / sequence / atom ----

// parseSuffix parses a sequence, then applies any number of `as VALUE` and
// `! STRING` suffix operators, in either order, until neither matches —
// spec.md §4.3's literal wording. This is more permissive than
// ll_parser.py's parse_suffix/parse_error, which each apply their operator
// at most once and in a fixed position (error binds inside the sequence
// loop, as binds outside it); spec.md is explicit and unambiguous here, so
// its broader loop is what's implemented. A `!` that directly follows an
// atom inside the sequence is already consumed by parseSequence, so this
// loop only sees a `!` that follows the whole sequence or an `as` operand.
func parseSuffix(s *lexer.Stream) (ast.Node, error) {
	expr, err := parseSequence(s)
	if err != nil {
		return nil, err
	}

	for {
		if result, ok := optional(s, parseAsOperand); ok {
			expr = ast.NewAs(expr, result)
			continue
		}
		if msg, ok := optional(s, parseBangOperand); ok {
			expr = ast.NewError(expr, msg)
			continue
		}
		break
	}

	return expr, nil
}

func parseAsOperand(s *lexer.Stream) (ast.Node, error) {
	if _, err := s.Need(lexer.KwAs); err != nil {
		return nil, err
	}
	return parseValue(s)
}

func parseBangOperand(s *lexer.Stream) (string, error) {
	if _, err := s.Need(lexer.Bang); err != nil {
		return "", err
	}
	lit, err := parseString(s)
	if err != nil {
		return "", err
	}
	return lit.Value, nil
}

// parseSequence parses one atom, wraps it in any `! STRING` operators that
// directly follow it, then parses an optional nested sequence, building a
// right-leaning binary tree: `a b c` becomes Sequence(a, Sequence(b, c)),
// and `a ! "x" b ! "y"` becomes Sequence(Error(a, "x"), Error(b, "y")).
func parseSequence(s *lexer.Stream) (ast.Node, error) {
	first, err := parseAtom(s)
	if err != nil {
		return nil, err
	}
	for {
		msg, ok := optional(s, parseBangOperand)
		if !ok {
			break
		}
		first = ast.NewError(first, msg)
	}
	if second, ok := optional(s, parseSequence); ok {
		return ast.NewSequence(first, second), nil
	}
	return first, nil
}

func parseAtom(s *lexer.Stream) (ast.Node, error) {
	return firstOf[ast.Node](s,
		parseLiteralParserNode,
		parseRegexParserNode,
		parseVarNode,
		parseNamedParserNode,
		parseDebugNode,
		parsePeekNode,
	)
}

func parseLiteralParserNode(s *lexer.Stream) (ast.Node, error) { return parseLiteralParser(s) }
func parseRegexParserNode(s *lexer.Stream) (ast.Node, error)   { return parseRegexParser(s) }
func parseVarNode(s *lexer.Stream) (ast.Node, error)           { return parseVar(s) }
func parseNamedParserNode(s *lexer.Stream) (ast.Node, error)   { return parseNamedParser(s) }
func parsePeekNode(s *lexer.Stream) (ast.Node, error)          { return parsePeek(s) }

// ---- leaf parser atoms ----

func parseLiteralParser(s *lexer.Stream) (*ast.LiteralParser, error) {
	tok, err := s.Need(lexer.LitParser)
	if err != nil {
		return nil, err
	}
	return ast.NewLiteralParser(unescapeDelimited(tok.Lexeme, 1, '`')), nil
}

func parseRegexParser(s *lexer.Stream) (*ast.RegexParser, error) {
	tok, err := s.Need(lexer.LitRegex)
	if err != nil {
		return nil, err
	}
	return ast.NewRegexParser(unescapeDelimited(tok.Lexeme, 2, '`')), nil
}

func parseVar(s *lexer.Stream) (*ast.Var, error) {
	idx := s.Index()
	tok, err := s.Need(lexer.Ident)
	if err != nil {
		return nil, err
	}
	if s.PeekKind(lexer.DoubleColon) {
		// Belongs to a later def, not a variable reference.
		s.SetIndex(idx)
		return nil, &notAVar{name: tok.Lexeme}
	}
	return ast.NewVar(tok.Lexeme), nil
}

func parseNamedParser(s *lexer.Stream) (*ast.Named, error) {
	idx := s.Index()
	if _, err := s.Need(lexer.OBracket); err != nil {
		return nil, err
	}
	expr, err := parseSuffix(s)
	if err != nil {
		s.SetIndex(idx)
		return nil, err
	}
	if _, err := s.Need(lexer.Colon); err != nil {
		s.SetIndex(idx)
		return nil, err
	}
	name, err := s.Need(lexer.Ident)
	if err != nil {
		s.SetIndex(idx)
		return nil, err
	}
	if _, err := s.Need(lexer.CBracket); err != nil {
		s.SetIndex(idx)
		return nil, err
	}
	return ast.NewNamed(expr, name.Lexeme), nil
}

func parseDebug(s *lexer.Stream) (*ast.Debug, error) {
	idx := s.Index()
	if _, err := s.Need(lexer.KwDebug); err != nil {
		return nil, err
	}
	if _, err := s.Need(lexer.OParen); err != nil {
		s.SetIndex(idx)
		return nil, err
	}
	expr, err := parseSuffix(s)
	if err != nil {
		s.SetIndex(idx)
		return nil, err
	}
	if _, err := s.Need(lexer.CParen); err != nil {
		s.SetIndex(idx)
		return nil, err
	}
	return ast.NewDebug(expr), nil
}

func parsePeek(s *lexer.Stream) (*ast.Peek, error) {
	idx := s.Index()
	if _, err := s.Need(lexer.KwPeek); err != nil {
		return nil, err
	}
	if _, err := s.Need(lexer.OBrace); err != nil {
		s.SetIndex(idx)
		return nil, err
	}
	cases, err := listOf(s, parsePeekCase, 1, nil)
	if err != nil {
		s.SetIndex(idx)
		return nil, err
	}
	if _, err := s.Need(lexer.CBrace); err != nil {
		s.SetIndex(idx)
		return nil, err
	}

	// spec.md §3: at most one default case (absent test), and it must be
	// last if present — a default anywhere else would run unconditionally
	// ahead of (or alongside) a later test, contradicting first-match-wins.
	for i, c := range cases {
		if c.Test == nil && i != len(cases)-1 {
			s.SetIndex(idx)
			return nil, &invalidDefaultCase{pos: i + 1}
		}
	}

	return ast.NewPeek(cases...), nil
}

func parsePeekCase(s *lexer.Stream) (ast.PeekCase, error) {
	idx := s.Index()
	if _, err := s.Need(lexer.KwCase); err != nil {
		return ast.PeekCase{}, err
	}

	test, err := parsePeekCaseTest(s)
	if err != nil {
		s.SetIndex(idx)
		return ast.PeekCase{}, err
	}

	if _, err := s.Need(lexer.Arrow); err != nil {
		s.SetIndex(idx)
		return ast.PeekCase{}, err
	}
	body, err := parseSuffix(s)
	if err != nil {
		s.SetIndex(idx)
		return ast.PeekCase{}, err
	}

	return ast.PeekCase{Test: test, Body: body}, nil
}

// parsePeekCaseTest parses `_` (returning a nil Test, meaning "default") or
// a full suffix expression used as the speculative lookahead test.
func parsePeekCaseTest(s *lexer.Stream) (ast.Node, error) {
	idx := s.Index()
	if _, err := s.Need(lexer.Under); err == nil {
		return nil, nil
	}
	s.SetIndex(idx)
	return parseSuffix(s)
}

// ---- value / struct / string ----

func parseValue(s *lexer.Stream) (ast.Node, error) {
	return firstOf[ast.Node](s, parseVarValueNode, parseStructNode, parseStringNode)
}

func parseVarValueNode(s *lexer.Stream) (ast.Node, error) { return parseVar(s) }
func parseStructNode(s *lexer.Stream) (ast.Node, error)   { return parseStruct(s) }
func parseStringNode(s *lexer.Stream) (ast.Node, error)   { return parseString(s) }

func parseStruct(s *lexer.Stream) (*ast.Struct, error) {
	idx := s.Index()
	if _, err := s.Need(lexer.KwStruct); err != nil {
		return nil, err
	}

	name := ""
	if tok, ok := optional(s, need(lexer.Ident)); ok {
		name = tok.Lexeme
	}

	if _, err := s.Need(lexer.OBrace); err != nil {
		s.SetIndex(idx)
		return nil, err
	}
	fields, err := listOf(s, parseStructField, 0, need(lexer.Comma))
	if err != nil {
		s.SetIndex(idx)
		return nil, err
	}
	// Trailing comma before the closing brace is permitted by sep's
	// backtracking in listOf; nothing further to consume here.
	if _, err := s.Need(lexer.CBrace); err != nil {
		s.SetIndex(idx)
		return nil, err
	}

	return ast.NewStruct(name, fields...), nil
}

func parseStructField(s *lexer.Stream) (ast.StructField, error) {
	idx := s.Index()
	fieldName, err := s.Need(lexer.Ident)
	if err != nil {
		return ast.StructField{}, err
	}
	if _, err := s.Need(lexer.Colon); err != nil {
		s.SetIndex(idx)
		return ast.StructField{}, err
	}
	valueName, err := s.Need(lexer.Ident)
	if err != nil {
		s.SetIndex(idx)
		return ast.StructField{}, err
	}
	return ast.StructField{Name: fieldName.Lexeme, Value: valueName.Lexeme}, nil
}

func parseString(s *lexer.Stream) (*ast.LitStr, error) {
	tok, err := s.Need(lexer.LitString)
	if err != nil {
		return nil, err
	}
	return ast.NewLitStr(unescapeDelimited(tok.Lexeme, 1, '"')), nil
}

// ---- lexeme decoding ----

// unescapeDelimited strips prefixLen leading delimiter byte(s) and one
// trailing delimiter byte, then un-escapes `\delim` to a bare delim.
// lit_parser and lit_regex share the back-tick escaping rule (regex differs
// only in its two-byte "r`" prefix); lit_string uses the same shape with
// `"`. Grounded on
// _examples/original_source/langlang/parsing/ll_parser.py's
// parse_literal_parser/parse_regex_parser, which do the equivalent
// slice-and-replace in Python.
func unescapeDelimited(lexeme string, prefixLen int, delim byte) string {
	inner := lexeme[prefixLen : len(lexeme)-1]
	return strings.ReplaceAll(inner, "\\"+string(delim), string(delim))
}

type notAVar struct {
	name string
}

func (e *notAVar) Error() string {
	return "identifier '" + e.name + "' begins a definition, not a variable reference"
}
