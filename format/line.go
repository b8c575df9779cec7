package format

import (
	"fmt"
	"io"
	"strings"
)

// LineEncoder writes "kind<TAB>member<TAB>java" per entry, with a fourth
// comma-separated column of referenced classes when References is set.
// Entries without an owner use "-" as the member.
type LineEncoder struct {
	w     io.Writer
	entry *Entry
}

func NewLineEncoder(w io.Writer) *LineEncoder {
	return &LineEncoder{w: w}
}

func (e *LineEncoder) Encode(entry *Entry) error {
	e.entry = entry
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *LineEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	entry := e.entry

	member := entry.Member()
	if member == "" {
		member = "-"
	}
	fmt.Fprintf(&sb, "%s\t%s\t%s", entry.Signature.Kind(), member, JavaSignature(entry.Signature))
	if entry.References != nil {
		sb.WriteByte('\t')
		sb.WriteString(strings.Join(entry.References, ","))
	}
	sb.WriteByte('\n')
	return []byte(sb.String()), nil
}
