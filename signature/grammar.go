package signature

import (
	"bytes"
	_ "embed"
	"fmt"

	"golang.org/x/exp/ebnf"
)

// GrammarStart is the start production of Grammar.
const GrammarStart = "Signature"

// Grammar is the signature grammar in EBNF. Identifiers are restricted to
// ASCII letters, digits, '_' and '$' here; the parser accepts any character
// other than the grammar's punctuation.
//
//go:embed grammar.ebnf
var Grammar []byte

// LoadGrammar parses Grammar and verifies that every production is defined
// and reachable from GrammarStart.
func LoadGrammar() (ebnf.Grammar, error) {
	g, err := ebnf.Parse("grammar.ebnf", bytes.NewReader(Grammar))
	if err != nil {
		return nil, fmt.Errorf("parse grammar: %w", err)
	}
	if err := ebnf.Verify(g, GrammarStart); err != nil {
		return nil, fmt.Errorf("verify grammar: %w", err)
	}
	return g, nil
}
