package lexer

// Stream is a cursor over an already-tokenized source. Index is the only
// mutable state; save/restore of Index is how the grammar parser backtracks.
type Stream struct {
	tokens []Token
	index  int
}

// NewStream wraps an already-lexed token slice. Exported for tests that
// want to build token streams by hand rather than through Tokenize.
func NewStream(tokens []Token) *Stream {
	return &Stream{tokens: tokens}
}

// Empty reports whether the cursor has consumed every token.
func (s *Stream) Empty() bool {
	return s.index >= len(s.tokens)
}

// Remaining returns the unconsumed token slice, used for error reporting
// when a top-level parse fails to consume the entire stream.
func (s *Stream) Remaining() []Token {
	return s.tokens[s.index:]
}

// Peek returns the current token without consuming it.
func (s *Stream) Peek() (Token, error) {
	if s.Empty() {
		return Token{}, &UnexpectedEOF{}
	}
	return s.tokens[s.index], nil
}

// PeekKind reports whether the current token has the given kind. It never
// fails: at EOF it simply returns false.
func (s *Stream) PeekKind(k Kind) bool {
	tok, err := s.Peek()
	if err != nil {
		return false
	}
	return tok.Kind == k
}

// Next advances the cursor and returns the token it was sitting on.
func (s *Stream) Next() (Token, error) {
	tok, err := s.Peek()
	if err != nil {
		return Token{}, err
	}
	s.index++
	return tok, nil
}

// Need advances past the current token if its kind matches, or fails
// without advancing.
func (s *Stream) Need(k Kind) (Token, error) {
	tok, err := s.Peek()
	if err != nil {
		return Token{}, err
	}
	if tok.Kind != k {
		return Token{}, NewUnexpectedToken(tok, k)
	}
	s.index++
	return tok, nil
}

// Index returns the current cursor position, for saving before a
// speculative parse.
func (s *Stream) Index() int {
	return s.index
}

// SetIndex restores the cursor to a previously saved position. Every
// combinator that surfaces a failure must call this with the index it
// captured at entry.
func (s *Stream) SetIndex(i int) {
	s.index = i
}
