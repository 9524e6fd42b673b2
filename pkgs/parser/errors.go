package parser

import (
	"fmt"
	"strings"

	"github.com/aledsdavies/llc/pkgs/lexer"
)

// ParseError is the only error the package surfaces past Parse: every
// internal combinator failure is either recovered via backtracking or
// folded into one of these at the point a first_of exhausts its
// alternatives or a non-backtrackable need fails. Mirrors the teacher's
// pkgs/parser/errors.go convention of one exported error type per package
// carrying enough context to print a useful diagnostic.
type ParseError struct {
	Err       error
	Remaining []lexer.Token
}

func (e *ParseError) Error() string {
	if len(e.Remaining) == 0 {
		return fmt.Sprintf("parse error: %v (at end of input)", e.Err)
	}
	tok := e.Remaining[0]
	return fmt.Sprintf("parse error at line %d, column %d: %v (next token %s)", tok.Line, tok.Column, e.Err, tok)
}

func (e *ParseError) Unwrap() error { return e.Err }

// NewParseError wraps the last-seen error together with the unconsumed
// tokens, as spec.md §4.3's failure semantics require of a top-level
// failure.
func NewParseError(err error, remaining []lexer.Token) *ParseError {
	return &ParseError{Err: err, Remaining: remaining}
}

// invalidDefaultCase is returned by parsePeek when a default case
// (`case _`) is not the peek's last case — either because another case
// follows it, or because a second default appears later. spec.md §3: "at
// most one default case exists, and it must be last if present".
type invalidDefaultCase struct {
	pos int // 1-based position of the offending default case
}

func (e *invalidDefaultCase) Error() string {
	return fmt.Sprintf("peek: default case (case _) at position %d must be the last case", e.pos)
}

// trailingTokens is the message used when file successfully parses a
// prefix of statements but tokens remain: a retry of statement is forced
// purely to surface whatever one of those leftover tokens breaks on.
type trailingTokens struct {
	tokens []lexer.Token
}

func (e *trailingTokens) Error() string {
	var b strings.Builder
	b.WriteString("unexpected trailing input: ")
	for i, t := range e.tokens {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(t.String())
		if i >= 5 {
			b.WriteString(" ...")
			break
		}
	}
	return b.String()
}
