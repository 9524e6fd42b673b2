package parser

import "github.com/aledsdavies/llc/pkgs/lexer"

// parseFunc is the shape every grammar-table production has: consume some
// prefix of the stream and produce a value, or fail leaving the cursor
// exactly where it found it. Combinators below are generic over this shape,
// following the original prototype's list_of/first_of/optional, ported from
// Python's dynamically-typed Callable to Go generics.
type parseFunc[T any] func(*lexer.Stream) (T, error)

// listOf repeatedly applies p, backing up on failure, and requires at least
// min successes. sep, if non-nil, must match between items; its absence
// after an item terminates the list without error.
func listOf[T any](s *lexer.Stream, p parseFunc[T], min int, sep parseFunc[lexer.Token]) ([]T, error) {
	var out []T
	for {
		idx := s.Index()
		v, err := p(s)
		if err != nil {
			s.SetIndex(idx)
			break
		}
		out = append(out, v)

		if sep != nil {
			sepIdx := s.Index()
			if _, err := sep(s); err != nil {
				s.SetIndex(sepIdx)
				break
			}
		}
	}
	if len(out) < min {
		return nil, &ParseError{Err: &notEnoughItems{got: len(out), want: min}, Remaining: s.Remaining()}
	}
	return out, nil
}

// firstOf tries each alternative in turn, restoring the cursor between
// attempts. On total failure it surfaces the LAST attempt's error, not the
// first — matching the final ll_parser.py variant rather than an earlier
// draft that reported a generic "no alternative matched" message.
func firstOf[T any](s *lexer.Stream, ps ...parseFunc[T]) (T, error) {
	idx := s.Index()
	var zero T
	var lastErr error
	for _, p := range ps {
		s.SetIndex(idx)
		v, err := p(s)
		if err == nil {
			return v, nil
		}
		lastErr = err
	}
	s.SetIndex(idx)
	return zero, lastErr
}

// optional tries p once; on failure it restores the cursor and reports ok =
// false rather than an error, since absence is not itself a parse failure.
func optional[T any](s *lexer.Stream, p parseFunc[T]) (T, bool) {
	idx := s.Index()
	v, err := p(s)
	if err != nil {
		s.SetIndex(idx)
		var zero T
		return zero, false
	}
	return v, true
}

// need wraps Stream.Need as a parseFunc so it composes with the combinators
// above.
func need(k lexer.Kind) parseFunc[lexer.Token] {
	return func(s *lexer.Stream) (lexer.Token, error) {
		return s.Need(k)
	}
}

type notEnoughItems struct {
	got, want int
}

func (e *notEnoughItems) Error() string {
	return "not enough items in list"
}
