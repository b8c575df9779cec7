package format

import (
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLEncoder writes each entry as its own YAML document.
type YAMLEncoder struct {
	w     io.Writer
	entry *Entry
	count int
}

func NewYAMLEncoder(w io.Writer) *YAMLEncoder {
	return &YAMLEncoder{w: w}
}

func (e *YAMLEncoder) Encode(entry *Entry) error {
	e.entry = entry
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	if e.count > 0 {
		if _, err := io.WriteString(e.w, "---\n"); err != nil {
			return err
		}
	}
	e.count++
	_, err = e.w.Write(text)
	return err
}

func (e *YAMLEncoder) MarshalText() ([]byte, error) {
	return yaml.Marshal(buildEntry(e.entry))
}
