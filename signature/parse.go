// Package signature parses JVM generic signatures (JVMS 4.7.9.1) into a
// syntax tree.
//
// A signature is parsed by one of three entry points matching the
// attribute it came from:
//
//	cs, err := signature.ParseClassSignature("<T:Ljava/lang/Object;>Ljava/lang/Object;")
//	ms, err := signature.ParseMethodSignature("<T:Ljava/lang/Object;>(TT;)V")
//	fs, err := signature.ParseFieldSignature("Ljava/util/List<Ljava/lang/String;>;")
//
// or by Parse when the form is only known at run time. Every failure is a
// *GrammarError; no partial tree is ever returned.
package signature

const (
	prodClassSignature  = "ClassSignature"
	prodMethodSignature = "MethodSignature"
	prodFieldSignature  = "FieldSignature"
	prodTypeSignature   = "TypeSignature"
	prodReferenceType   = "ReferenceTypeSignature"
	prodClassType       = "ClassTypeSignature"
	prodTypeVariable    = "TypeVariableSignature"
	prodTypeArguments   = "TypeArguments"
	prodTypeParameters  = "TypeParameters"
	prodTypeParameter   = "TypeParameter"
	prodSuperclass      = "SuperclassSignature"
	prodSuperinterface  = "SuperinterfaceSignature"
	prodResult          = "Result"
	prodThrows          = "ThrowsSignature"
)

// Parse parses text as the top-level form selected by kind.
func Parse(kind Kind, text string) (Signature, error) {
	var (
		sig Signature
		err error
	)
	switch kind {
	case KindClass:
		sig, err = ParseClassSignature(text)
	case KindMethod:
		sig, err = ParseMethodSignature(text)
	case KindField:
		sig, err = ParseFieldSignature(text)
	default:
		return nil, &GrammarError{Input: text, Production: "Signature", Message: "unknown signature kind " + kind.String()}
	}
	if err != nil {
		return nil, err
	}
	return sig, nil
}

func ParseClassSignature(text string) (*ClassSignature, error) {
	s := newScanner(text)

	formals, err := s.parseFormalParameters()
	if err != nil {
		return nil, err
	}

	superclass, err := s.parseClassTypeAs(prodSuperclass)
	if err != nil {
		return nil, err
	}

	sig := &ClassSignature{
		FormalParameters: formals,
		Superclass:       superclass,
		Superinterfaces:  []*ClassType{},
	}
	for s.peek() == 'L' {
		iface, err := s.parseClassTypeAs(prodSuperinterface)
		if err != nil {
			return nil, err
		}
		sig.Superinterfaces = append(sig.Superinterfaces, iface)
	}

	if err := s.expectEnd(prodClassSignature); err != nil {
		return nil, err
	}
	return sig, nil
}

func ParseMethodSignature(text string) (*MethodSignature, error) {
	s := newScanner(text)

	formals, err := s.parseFormalParameters()
	if err != nil {
		return nil, err
	}

	if err := s.consume('(', prodMethodSignature); err != nil {
		return nil, err
	}
	sig := &MethodSignature{
		FormalParameters: formals,
		ParameterTypes:   []TypeNode{},
		ExceptionTypes:   []TypeNode{},
	}
	for s.peek() != ')' {
		if s.atEnd() {
			return nil, s.errorf(prodMethodSignature, "expected ')', got end of input")
		}
		param, err := s.parseTypeSignature()
		if err != nil {
			return nil, err
		}
		sig.ParameterTypes = append(sig.ParameterTypes, param)
	}
	s.advance()

	if s.peek() == 'V' {
		s.advance()
		sig.ReturnType = &Void{}
	} else {
		if s.atEnd() {
			return nil, s.errorf(prodResult, "expected return type, got end of input")
		}
		ret, err := s.parseTypeSignature()
		if err != nil {
			return nil, err
		}
		sig.ReturnType = ret
	}

	for s.peek() == '^' {
		s.advance()
		var thrown TypeNode
		switch s.peek() {
		case 'L':
			thrown, err = s.parseClassType()
		case 'T':
			thrown, err = s.parseTypeVariable()
		default:
			return nil, s.unexpected(prodThrows)
		}
		if err != nil {
			return nil, err
		}
		sig.ExceptionTypes = append(sig.ExceptionTypes, thrown)
	}

	if err := s.expectEnd(prodMethodSignature); err != nil {
		return nil, err
	}
	return sig, nil
}

func ParseFieldSignature(text string) (*FieldSignature, error) {
	s := newScanner(text)
	start := s.pos
	t, err := s.parseTypeSignature()
	if err != nil {
		return nil, err
	}
	if _, ok := t.(*Primitive); ok {
		s.pos = start
		return nil, s.errorf(prodFieldSignature, "field signature must be a reference type, got base type %q", text[start])
	}
	if err := s.expectEnd(prodFieldSignature); err != nil {
		return nil, err
	}
	return &FieldSignature{Type: t}, nil
}

// ParseTypeSignature parses a single TypeSignature, which may be a base
// type. The whole of text must be consumed.
func ParseTypeSignature(text string) (TypeNode, error) {
	s := newScanner(text)
	t, err := s.parseTypeSignature()
	if err != nil {
		return nil, err
	}
	if err := s.expectEnd(prodTypeSignature); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *scanner) expectEnd(production string) error {
	if !s.atEnd() {
		return s.errorf(production, "unexpected trailing %q", s.input[s.pos:])
	}
	return nil
}

// parseTypeSignature is the single recursion point of the grammar. Every
// branch consumes at least one character before recursing.
func (s *scanner) parseTypeSignature() (TypeNode, error) {
	ch := s.peek()
	if IsBaseType(ch) {
		s.advance()
		return &Primitive{Code: BaseType(ch)}, nil
	}
	return s.parseReferenceType(prodTypeSignature)
}

func (s *scanner) parseReferenceType(production string) (TypeNode, error) {
	switch s.peek() {
	case 'L':
		ct, err := s.parseClassType()
		if err != nil {
			return nil, err
		}
		return ct, nil
	case 'T':
		tv, err := s.parseTypeVariable()
		if err != nil {
			return nil, err
		}
		return tv, nil
	case '[':
		s.advance()
		elem, err := s.parseTypeSignature()
		if err != nil {
			return nil, err
		}
		return &Array{Element: elem}, nil
	}
	return nil, s.unexpected(production)
}

func (s *scanner) parseClassType() (*ClassType, error) {
	return s.parseClassTypeAs(prodClassType)
}

// parseClassTypeAs parses a ClassTypeSignature, reporting a missing 'L'
// against production.
func (s *scanner) parseClassTypeAs(production string) (*ClassType, error) {
	if s.peek() != 'L' {
		return nil, s.unexpected(production)
	}
	s.advance()

	start := s.pos
	if _, err := s.consumeIdentifier(prodClassType); err != nil {
		return nil, err
	}
	for s.peek() == '/' {
		s.advance()
		if _, err := s.consumeIdentifier(prodClassType); err != nil {
			return nil, err
		}
	}
	descriptor := s.input[start:s.pos]

	args := []TypeArgument{}
	for {
		if s.peek() == '<' {
			more, err := s.parseTypeArguments()
			if err != nil {
				return nil, err
			}
			args = append(args, more...)
		}
		if s.peek() != '.' {
			break
		}
		s.advance()
		inner, err := s.consumeIdentifier(prodClassType)
		if err != nil {
			return nil, err
		}
		descriptor += "." + inner
	}

	if err := s.consume(';', prodClassType); err != nil {
		return nil, err
	}
	return &ClassType{Descriptor: descriptor, TypeArguments: args}, nil
}

func (s *scanner) parseTypeArguments() ([]TypeArgument, error) {
	if err := s.consume('<', prodTypeArguments); err != nil {
		return nil, err
	}
	if s.peek() == '>' {
		return nil, s.errorf(prodTypeArguments, "empty type argument list")
	}

	var args []TypeArgument
	for s.peek() != '>' {
		var arg TypeArgument
		switch s.peek() {
		case '*':
			s.advance()
			arg = Unbounded()
		case '+', '-':
			indicator := s.advance()
			t, err := s.parseReferenceType(prodTypeArguments)
			if err != nil {
				return nil, err
			}
			if indicator == '+' {
				arg = Extends(t)
			} else {
				arg = Super(t)
			}
		default:
			t, err := s.parseReferenceType(prodTypeArguments)
			if err != nil {
				return nil, err
			}
			arg = Exact(t)
		}
		args = append(args, arg)
	}
	s.advance()
	return args, nil
}

func (s *scanner) parseTypeVariable() (*TypeVariable, error) {
	if err := s.consume('T', prodTypeVariable); err != nil {
		return nil, err
	}
	name, err := s.consumeIdentifier(prodTypeVariable)
	if err != nil {
		return nil, err
	}
	if err := s.consume(';', prodTypeVariable); err != nil {
		return nil, err
	}
	return &TypeVariable{Name: name}, nil
}

// parseFormalParameters returns an empty slice when no <...> block is
// present.
func (s *scanner) parseFormalParameters() ([]FormalTypeParameter, error) {
	formals := []FormalTypeParameter{}
	if s.peek() != '<' {
		return formals, nil
	}
	s.advance()
	if s.peek() == '>' {
		return nil, s.errorf(prodTypeParameters, "empty type parameter list")
	}

	for s.peek() != '>' {
		if s.atEnd() {
			return nil, s.errorf(prodTypeParameters, "expected '>', got end of input")
		}
		formal, err := s.parseFormalParameter()
		if err != nil {
			return nil, err
		}
		formals = append(formals, formal)
	}
	s.advance()
	return formals, nil
}

func (s *scanner) parseFormalParameter() (FormalTypeParameter, error) {
	name, err := s.consumeIdentifier(prodTypeParameter)
	if err != nil {
		return FormalTypeParameter{}, err
	}
	formal := FormalTypeParameter{Name: name, InterfaceBounds: []TypeNode{}}

	if err := s.consume(':', prodTypeParameter); err != nil {
		return FormalTypeParameter{}, err
	}
	// The class bound may be omitted only when an interface bound follows.
	if s.peek() != ':' {
		bound, err := s.parseReferenceType(prodTypeParameter)
		if err != nil {
			return FormalTypeParameter{}, err
		}
		formal.ClassBound = bound
	}

	for s.peek() == ':' {
		s.advance()
		bound, err := s.parseReferenceType(prodTypeParameter)
		if err != nil {
			return FormalTypeParameter{}, err
		}
		formal.InterfaceBounds = append(formal.InterfaceBounds, bound)
	}
	return formal, nil
}
