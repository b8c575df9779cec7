package classfile

import (
	"fmt"

	"github.com/dhamidi/jsig/signature"
)

// SignatureEntry is one Signature attribute together with the member it
// belongs to and the form it must be parsed as.
type SignatureEntry struct {
	Kind       signature.Kind
	Owner      string
	Name       string
	Descriptor string
	Text       string
}

// Member returns "Owner" for class signatures and "Owner.Name" otherwise.
func (e SignatureEntry) Member() string {
	if e.Kind == signature.KindClass {
		return e.Owner
	}
	return e.Owner + "." + e.Name
}

func (e SignatureEntry) Parse() (signature.Signature, error) {
	return signature.Parse(e.Kind, e.Text)
}

// Signatures returns the Signature attributes of the class, its fields and
// its methods, in that order. Members without one are skipped.
func (cf *ClassFile) Signatures() ([]SignatureEntry, error) {
	owner := cf.ClassName()
	var entries []SignatureEntry

	text, err := cf.Signature()
	if err != nil {
		return nil, fmt.Errorf("class %s: %w", owner, err)
	}
	if text != "" {
		entries = append(entries, SignatureEntry{
			Kind:  signature.KindClass,
			Owner: owner,
			Text:  text,
		})
	}

	for i := range cf.Fields {
		f := &cf.Fields[i]
		text, err := f.Signature(cf.ConstantPool)
		if err != nil {
			return nil, fmt.Errorf("field %s.%s: %w", owner, f.Name(cf.ConstantPool), err)
		}
		if text == "" {
			continue
		}
		entries = append(entries, SignatureEntry{
			Kind:       signature.KindField,
			Owner:      owner,
			Name:       f.Name(cf.ConstantPool),
			Descriptor: f.Descriptor(cf.ConstantPool),
			Text:       text,
		})
	}

	for i := range cf.Methods {
		m := &cf.Methods[i]
		text, err := m.Signature(cf.ConstantPool)
		if err != nil {
			return nil, fmt.Errorf("method %s.%s: %w", owner, m.Name(cf.ConstantPool), err)
		}
		if text == "" {
			continue
		}
		entries = append(entries, SignatureEntry{
			Kind:       signature.KindMethod,
			Owner:      owner,
			Name:       m.Name(cf.ConstantPool),
			Descriptor: m.Descriptor(cf.ConstantPool),
			Text:       text,
		})
	}

	return entries, nil
}
