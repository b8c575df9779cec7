// Package format renders parsed signatures as Java source text, JSON,
// YAML or one line per signature.
package format

import (
	"encoding"
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/jsig/signature"
)

// Entry is a parsed signature together with the member it was read from.
// Owner is an internal class name and is empty for signatures given on
// the command line. Text is the signature as it was read; when empty,
// Signature.String() stands in for it.
type Entry struct {
	Owner      string
	Name       string
	Descriptor string
	Text       string
	Signature  signature.Signature
	References []string
}

func (e *Entry) text() string {
	if e.Text != "" {
		return e.Text
	}
	return e.Signature.String()
}

// Member returns "Owner.Name", "Owner" for class signatures, or "" when
// the entry has no owner.
func (e *Entry) Member() string {
	if e.Owner == "" || e.Signature.Kind() == signature.KindClass || e.Name == "" {
		return e.Owner
	}
	return e.Owner + "." + e.Name
}

type Encoder interface {
	encoding.TextMarshaler
	Encode(entry *Entry) error
}

// Formats lists the names accepted by NewEncoder.
var Formats = []string{"line", "json", "yaml", "java"}

func NewEncoder(format string, w io.Writer) (Encoder, error) {
	switch format {
	case "line":
		return NewLineEncoder(w), nil
	case "json":
		return NewJSONEncoder(w), nil
	case "yaml":
		return NewYAMLEncoder(w), nil
	case "java":
		return NewJavaEncoder(w), nil
	}
	return nil, fmt.Errorf("unknown format %q (want one of %s)", format, strings.Join(Formats, ", "))
}

// IsFormat reports whether name is one of Formats.
func IsFormat(name string) bool {
	for _, f := range Formats {
		if f == name {
			return true
		}
	}
	return false
}
