package signature

import "strings"

func (p *Primitive) String() string    { return string(p.Code) }
func (v *TypeVariable) String() string { return "T" + v.Name + ";" }
func (a *Array) String() string        { return "[" + a.Element.String() }
func (*Void) String() string           { return "V" }

func (c *ClassType) String() string {
	var sb strings.Builder
	writeClassType(&sb, c)
	return sb.String()
}

func (a TypeArgument) String() string {
	switch a.Wildcard {
	case WildcardUnbounded:
		return "*"
	case WildcardExtends:
		return "+" + a.Type.String()
	case WildcardSuper:
		return "-" + a.Type.String()
	}
	return a.Type.String()
}

func (p FormalTypeParameter) String() string {
	var sb strings.Builder
	sb.WriteString(p.Name)
	sb.WriteByte(':')
	if p.ClassBound != nil {
		sb.WriteString(p.ClassBound.String())
	}
	for _, bound := range p.InterfaceBounds {
		sb.WriteByte(':')
		sb.WriteString(bound.String())
	}
	return sb.String()
}

func (c *ClassSignature) String() string {
	var sb strings.Builder
	writeFormals(&sb, c.FormalParameters)
	writeClassType(&sb, c.Superclass)
	for _, iface := range c.Superinterfaces {
		writeClassType(&sb, iface)
	}
	return sb.String()
}

func (m *MethodSignature) String() string {
	var sb strings.Builder
	writeFormals(&sb, m.FormalParameters)
	sb.WriteByte('(')
	for _, param := range m.ParameterTypes {
		sb.WriteString(param.String())
	}
	sb.WriteByte(')')
	if m.ReturnType == nil {
		sb.WriteByte('V')
	} else {
		sb.WriteString(m.ReturnType.String())
	}
	for _, thrown := range m.ExceptionTypes {
		sb.WriteByte('^')
		sb.WriteString(thrown.String())
	}
	return sb.String()
}

func (f *FieldSignature) String() string {
	return f.Type.String()
}

// writeClassType writes the folded descriptor followed by all collected
// type arguments, which reparses to an equal ClassType.
func writeClassType(sb *strings.Builder, c *ClassType) {
	sb.WriteByte('L')
	sb.WriteString(c.Descriptor)
	if len(c.TypeArguments) > 0 {
		sb.WriteByte('<')
		for _, arg := range c.TypeArguments {
			sb.WriteString(arg.String())
		}
		sb.WriteByte('>')
	}
	sb.WriteByte(';')
}

func writeFormals(sb *strings.Builder, formals []FormalTypeParameter) {
	if len(formals) == 0 {
		return
	}
	sb.WriteByte('<')
	for _, formal := range formals {
		sb.WriteString(formal.String())
	}
	sb.WriteByte('>')
}
