package format

import (
	"io"
	"strings"

	"github.com/dhamidi/jsig/classfile"
	"github.com/dhamidi/jsig/signature"
)

// JavaType renders t the way it would be written in Java source, e.g.
// "java.util.List<? extends T>".
func JavaType(t signature.TypeNode) string {
	var sb strings.Builder
	writeJavaType(&sb, t)
	return sb.String()
}

// JavaSignature renders sig as an anonymous Java declaration.
func JavaSignature(sig signature.Signature) string {
	return JavaDeclaration("", sig)
}

// JavaDeclaration renders sig as the declaration of name. Class names are
// given in internal form.
func JavaDeclaration(name string, sig signature.Signature) string {
	var sb strings.Builder
	switch s := sig.(type) {
	case *signature.ClassSignature:
		sb.WriteString("class")
		if name != "" {
			sb.WriteByte(' ')
			sb.WriteString(classfile.InternalToSourceName(name))
		} else if len(s.FormalParameters) > 0 {
			sb.WriteByte(' ')
		}
		writeJavaFormals(&sb, s.FormalParameters)
		if s.Superclass != nil && !isObject(s.Superclass) {
			sb.WriteString(" extends ")
			writeJavaType(&sb, s.Superclass)
		}
		for i, iface := range s.Superinterfaces {
			if i == 0 {
				sb.WriteString(" implements ")
			} else {
				sb.WriteString(", ")
			}
			writeJavaType(&sb, iface)
		}

	case *signature.MethodSignature:
		if len(s.FormalParameters) > 0 {
			writeJavaFormals(&sb, s.FormalParameters)
			sb.WriteByte(' ')
		}
		if s.ReturnType == nil {
			sb.WriteString("void")
		} else {
			writeJavaType(&sb, s.ReturnType)
		}
		if name != "" {
			sb.WriteByte(' ')
			sb.WriteString(name)
		}
		sb.WriteByte('(')
		for i, param := range s.ParameterTypes {
			if i > 0 {
				sb.WriteString(", ")
			}
			writeJavaType(&sb, param)
		}
		sb.WriteByte(')')
		for i, thrown := range s.ExceptionTypes {
			if i == 0 {
				sb.WriteString(" throws ")
			} else {
				sb.WriteString(", ")
			}
			writeJavaType(&sb, thrown)
		}

	case *signature.FieldSignature:
		writeJavaType(&sb, s.Type)
		if name != "" {
			sb.WriteByte(' ')
			sb.WriteString(name)
		}
	}
	return sb.String()
}

func writeJavaType(sb *strings.Builder, t signature.TypeNode) {
	switch n := t.(type) {
	case *signature.Primitive:
		sb.WriteString(n.Code.Name())
	case *signature.TypeVariable:
		sb.WriteString(n.Name)
	case *signature.Array:
		writeJavaType(sb, n.Element)
		sb.WriteString("[]")
	case *signature.ClassType:
		sb.WriteString(classfile.InternalToSourceName(n.Descriptor))
		if len(n.TypeArguments) == 0 {
			return
		}
		sb.WriteByte('<')
		for i, arg := range n.TypeArguments {
			if i > 0 {
				sb.WriteString(", ")
			}
			writeJavaArgument(sb, arg)
		}
		sb.WriteByte('>')
	case *signature.Void:
		sb.WriteString("void")
	}
}

func writeJavaArgument(sb *strings.Builder, arg signature.TypeArgument) {
	switch arg.Wildcard {
	case signature.WildcardUnbounded:
		sb.WriteByte('?')
		return
	case signature.WildcardExtends:
		sb.WriteString("? extends ")
	case signature.WildcardSuper:
		sb.WriteString("? super ")
	}
	writeJavaType(sb, arg.Type)
}

// writeJavaFormals leaves out a lone java.lang.Object bound, as source
// code does.
func writeJavaFormals(sb *strings.Builder, formals []signature.FormalTypeParameter) {
	if len(formals) == 0 {
		return
	}
	sb.WriteByte('<')
	for i, formal := range formals {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(formal.Name)
		bounds := formal.Bounds()
		if len(bounds) == 1 {
			if ct, ok := bounds[0].(*signature.ClassType); ok && isObject(ct) {
				continue
			}
		}
		for j, bound := range bounds {
			if j == 0 {
				sb.WriteString(" extends ")
			} else {
				sb.WriteString(" & ")
			}
			writeJavaType(sb, bound)
		}
	}
	sb.WriteByte('>')
}

func isObject(ct *signature.ClassType) bool {
	return ct.Descriptor == "java/lang/Object" && len(ct.TypeArguments) == 0
}

// JavaEncoder writes one declaration per line, preceded by a comment
// naming the owning class whenever it changes.
type JavaEncoder struct {
	w     io.Writer
	entry *Entry
	owner string
}

func NewJavaEncoder(w io.Writer) *JavaEncoder {
	return &JavaEncoder{w: w}
}

func (e *JavaEncoder) Encode(entry *Entry) error {
	e.entry = entry
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *JavaEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	entry := e.entry
	if entry.Owner != "" && entry.Owner != e.owner {
		e.owner = entry.Owner
		sb.WriteString("// ")
		sb.WriteString(classfile.InternalToSourceName(entry.Owner))
		sb.WriteByte('\n')
	}

	name := entry.Name
	if entry.Signature.Kind() == signature.KindClass {
		name = entry.Owner
	}
	sb.WriteString(JavaDeclaration(name, entry.Signature))
	if entry.Signature.Kind() != signature.KindClass {
		sb.WriteByte(';')
	}
	sb.WriteByte('\n')
	return []byte(sb.String()), nil
}
