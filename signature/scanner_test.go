package signature

import (
	"errors"
	"testing"
)

func TestScannerConsume(t *testing.T) {
	s := newScanner("<>")
	if err := s.consume('<', "Test"); err != nil {
		t.Fatalf("consume('<') = %v", err)
	}
	if s.pos != 1 {
		t.Errorf("pos = %d, want 1", s.pos)
	}

	err := s.consume(';', "Test")
	var gerr *GrammarError
	if !errors.As(err, &gerr) {
		t.Fatalf("consume(';') error = %v, want *GrammarError", err)
	}
	if gerr.Position != 1 || gerr.Production != "Test" {
		t.Errorf("error at %d in %s, want 1 in Test", gerr.Position, gerr.Production)
	}
	if s.pos != 1 {
		t.Errorf("failed consume moved cursor to %d", s.pos)
	}

	s.advance()
	if !s.atEnd() {
		t.Error("Expected atEnd() after consuming all input")
	}
	if s.peek() != eof {
		t.Errorf("peek() at end = %q, want eof", s.peek())
	}
	if err := s.consume('>', "Test"); err == nil {
		t.Error("Expected error consuming past end of input")
	}
}

func TestScannerIdentifier(t *testing.T) {
	tests := []struct {
		input string
		want  string
		pos   int
	}{
		{"java", "java", 4},
		{"java/lang", "java", 4},
		{"T;", "T", 1},
		{"K:Ljava/lang/Object;", "K", 1},
		{"Map.Entry", "Map", 3},
		{"List<TT;>", "List", 4},
		{"Outer$Inner;", "Outer$Inner", 11},
		{"ünïcödé;", "ünïcödé", len("ünïcödé")},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			s := newScanner(tt.input)
			got, err := s.consumeIdentifier("Identifier")
			if err != nil {
				t.Fatalf("consumeIdentifier() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("consumeIdentifier() = %q, want %q", got, tt.want)
			}
			if s.pos != tt.pos {
				t.Errorf("pos = %d, want %d", s.pos, tt.pos)
			}
		})
	}
}

func TestScannerEmptyIdentifier(t *testing.T) {
	for _, input := range []string{"", ";", ":", "<", ">", ".", "/", "["} {
		t.Run(input, func(t *testing.T) {
			s := newScanner(input)
			got, err := s.consumeIdentifier("Identifier")
			if err == nil {
				t.Fatalf("consumeIdentifier() = %q, want error", got)
			}
			if s.pos != 0 {
				t.Errorf("pos = %d after failure, want 0", s.pos)
			}
		})
	}
}
