package lexer

import (
	"log/slog"
	"regexp"
	"unicode/utf8"
)

// noopLogger discards everything; used when callers don't supply one.
// Mirrors the teacher's env-var-gated slog wiring (runtime/lexer/lexer.go,
// cli/internal/parser/parser.go) without the env var itself, since that
// belongs to the driver, not this package.
var noopLogger = slog.New(slog.NewTextHandler(discardWriter{}, &slog.HandlerOptions{Level: slog.LevelError + 1}))

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }

// rule pairs a token kind with its anchored, first-match-wins pattern.
// Declaration order matters: it is the disambiguation mechanism (keywords
// before identifiers, doublecolon before colon, lit_regex's "r`" prefix
// before ident's bare "r").
type rule struct {
	kind    Kind
	pattern *regexp.Regexp
	skip    bool // true for whitespace: matched but not emitted
}

var rules = []rule{
	{skip: true, pattern: regexp.MustCompile(`^\s+`)},

	{kind: KwPeek, pattern: regexp.MustCompile(`^peek\b`)},
	{kind: KwCase, pattern: regexp.MustCompile(`^case\b`)},
	{kind: KwExport, pattern: regexp.MustCompile(`^export\b`)},
	{kind: KwDebug, pattern: regexp.MustCompile(`^debug\b`)},
	{kind: KwAs, pattern: regexp.MustCompile(`^as\b`)},
	{kind: KwStruct, pattern: regexp.MustCompile(`^struct\b`)},

	{kind: OParen, pattern: regexp.MustCompile(`^\(`)},
	{kind: CParen, pattern: regexp.MustCompile(`^\)`)},
	{kind: OBrace, pattern: regexp.MustCompile(`^\{`)},
	{kind: CBrace, pattern: regexp.MustCompile(`^\}`)},
	{kind: OBracket, pattern: regexp.MustCompile(`^\[`)},
	{kind: CBracket, pattern: regexp.MustCompile(`^\]`)},
	{kind: Arrow, pattern: regexp.MustCompile(`^=>`)},
	{kind: Comma, pattern: regexp.MustCompile(`^,`)},
	{kind: DoubleColon, pattern: regexp.MustCompile(`^::`)},
	{kind: Colon, pattern: regexp.MustCompile(`^:`)},
	{kind: Bang, pattern: regexp.MustCompile(`^!`)},
	{kind: Under, pattern: regexp.MustCompile(`^_\b`)},

	{kind: LitParser, pattern: regexp.MustCompile("^`(?:\\\\`|[^`])*`")},
	{kind: LitRegex, pattern: regexp.MustCompile("^r`(?:\\\\`|[^`])*`")},
	{kind: LitString, pattern: regexp.MustCompile(`^"(?:\\"|[^"])*"`)},

	{kind: Ident, pattern: regexp.MustCompile(`^\w+`)},
}

// Tokenize converts source into a Stream, or fails with a *LexError at the
// first byte matching no rule.
func Tokenize(source string) (*Stream, error) {
	return TokenizeWithLogger(source, noopLogger)
}

// TokenizeWithLogger is Tokenize with an explicit debug logger, following
// the teacher's pattern of accepting an optional *slog.Logger for tracing.
func TokenizeWithLogger(source string, logger *slog.Logger) (*Stream, error) {
	if logger == nil {
		logger = noopLogger
	}

	var tokens []Token
	pos := 0
	line, col := 1, 1

	for pos < len(source) {
		rest := source[pos:]
		matched := false

		for _, r := range rules {
			loc := r.pattern.FindStringIndex(rest)
			if loc == nil || loc[0] != 0 {
				continue
			}
			lexeme := rest[:loc[1]]

			if !r.skip {
				tokens = append(tokens, Token{Kind: r.kind, Lexeme: lexeme, Line: line, Column: col})
				logger.Debug("token", "kind", r.kind.String(), "lexeme", lexeme, "line", line, "column", col)
			}

			for _, ch := range lexeme {
				if ch == '\n' {
					line++
					col = 1
				} else {
					col++
				}
			}
			pos += loc[1]
			matched = true
			break
		}

		if !matched {
			ch, _ := utf8.DecodeRuneInString(rest)
			return nil, NewLexError(line, col, ch)
		}
	}

	return &Stream{tokens: tokens}, nil
}
