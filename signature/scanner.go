package signature

import "fmt"

const eof = 0

// scanner is a forward-only cursor over a signature string.
type scanner struct {
	input string
	pos   int
}

func newScanner(input string) *scanner {
	return &scanner{input: input}
}

func (s *scanner) atEnd() bool {
	return s.pos >= len(s.input)
}

// peek returns the byte at the cursor, or eof at the end of input.
func (s *scanner) peek() byte {
	if s.pos >= len(s.input) {
		return eof
	}
	return s.input[s.pos]
}

func (s *scanner) advance() byte {
	ch := s.peek()
	if s.pos < len(s.input) {
		s.pos++
	}
	return ch
}

func (s *scanner) consume(expected byte, production string) error {
	if s.atEnd() {
		return s.errorf(production, "expected %q, got end of input", expected)
	}
	if ch := s.peek(); ch != expected {
		return s.errorf(production, "expected %q, got %q", expected, ch)
	}
	s.pos++
	return nil
}

// consumeIdentifier consumes an unqualified name: one or more characters
// up to the next '.', ';', '[', '/', '<', '>' or ':'.
func (s *scanner) consumeIdentifier(production string) (string, error) {
	start := s.pos
	for !s.atEnd() && !isDelimiter(s.input[s.pos]) {
		s.pos++
	}
	if s.pos == start {
		if s.atEnd() {
			return "", s.errorf(production, "expected identifier, got end of input")
		}
		return "", s.errorf(production, "expected identifier, got %q", s.peek())
	}
	return s.input[start:s.pos], nil
}

func isDelimiter(ch byte) bool {
	switch ch {
	case '.', ';', '[', '/', '<', '>', ':':
		return true
	}
	return false
}

func (s *scanner) errorf(production, format string, args ...any) *GrammarError {
	return &GrammarError{
		Input:      s.input,
		Position:   s.pos,
		Production: production,
		Message:    fmt.Sprintf(format, args...),
	}
}

// unexpected reports the character at the cursor, or premature end of input.
func (s *scanner) unexpected(production string) *GrammarError {
	if s.atEnd() {
		return s.errorf(production, "unexpected end of input")
	}
	return s.errorf(production, "unexpected character %q", s.peek())
}
