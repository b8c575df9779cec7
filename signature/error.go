package signature

import "fmt"

// GrammarError reports the first grammar violation found in a signature.
// Position is the byte offset of the offending character, or len(Input)
// when the input ended early.
type GrammarError struct {
	Input      string
	Position   int
	Production string
	Message    string
}

func (e *GrammarError) Error() string {
	return fmt.Sprintf("signature %q: %s at offset %d: %s", e.Input, e.Production, e.Position, e.Message)
}
