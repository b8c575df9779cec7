package classfile

import (
	"encoding/binary"
	"fmt"
)

type AttributeInfo struct {
	NameIndex uint16
	Info      []byte
}

type SignatureAttribute struct {
	SignatureIndex uint16
}

func (a *AttributeInfo) AsSignature() (*SignatureAttribute, error) {
	if len(a.Info) != 2 {
		return nil, fmt.Errorf("signature attribute has length %d, want 2", len(a.Info))
	}
	return &SignatureAttribute{
		SignatureIndex: binary.BigEndian.Uint16(a.Info),
	}, nil
}

func findAttribute(attrs []AttributeInfo, cp ConstantPool, name string) *AttributeInfo {
	for i := range attrs {
		if cp.GetUtf8(attrs[i].NameIndex) == name {
			return &attrs[i]
		}
	}
	return nil
}

// signatureText returns the string referenced by the Signature attribute
// in attrs, or "" when there is none.
func signatureText(attrs []AttributeInfo, cp ConstantPool) (string, error) {
	attr := findAttribute(attrs, cp, "Signature")
	if attr == nil {
		return "", nil
	}
	sig, err := attr.AsSignature()
	if err != nil {
		return "", err
	}
	text := cp.GetUtf8(sig.SignatureIndex)
	if text == "" {
		return "", fmt.Errorf("signature index %d is not a utf8 constant", sig.SignatureIndex)
	}
	return text, nil
}
