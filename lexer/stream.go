package lexer

import "minicc.dev/minicc/token"

// Stream is the pull-based view over a scanned token sequence: the parser
// reads it with one-token lookahead via Peek/Next, never indexing directly,
// so the scanning strategy behind Lex stays an implementation detail.
type Stream struct {
	tokens []token.Token
	pos    int
}

// NewStream lexes source and wraps the result for on-demand consumption.
func NewStream(source string) (*Stream, error) {
	tokens, err := Lex(source)
	if err != nil {
		return nil, err
	}
	return &Stream{tokens: tokens}, nil
}

// Peek returns the next token without consuming it.
func (s *Stream) Peek() token.Token {
	return s.tokens[s.pos]
}

// Next consumes and returns the next token. Calling Next past EOF keeps
// returning EOF, matching "stops at end of input returning the empty tail".
func (s *Stream) Next() token.Token {
	t := s.tokens[s.pos]
	if s.pos < len(s.tokens)-1 {
		s.pos++
	}
	return t
}
