package signature

// TypeNode is a type appearing in a signature. The concrete types are
// *Primitive, *TypeVariable, *Array, *ClassType and *Void.
type TypeNode interface {
	// String returns the node in signature grammar form.
	String() string
	typeNode()
}

type BaseType byte

const (
	Boolean BaseType = 'Z'
	Char    BaseType = 'C'
	Byte    BaseType = 'B'
	Short   BaseType = 'S'
	Int     BaseType = 'I'
	Float   BaseType = 'F'
	Long    BaseType = 'J'
	Double  BaseType = 'D'
)

// IsBaseType reports whether c is one of the eight base type codes.
func IsBaseType(c byte) bool {
	switch BaseType(c) {
	case Boolean, Char, Byte, Short, Int, Float, Long, Double:
		return true
	}
	return false
}

// Name returns the Java keyword for the base type.
func (b BaseType) Name() string {
	switch b {
	case Boolean:
		return "boolean"
	case Char:
		return "char"
	case Byte:
		return "byte"
	case Short:
		return "short"
	case Int:
		return "int"
	case Float:
		return "float"
	case Long:
		return "long"
	case Double:
		return "double"
	}
	return ""
}

type Primitive struct {
	Code BaseType
}

type TypeVariable struct {
	Name string
}

type Array struct {
	Element TypeNode
}

// ClassType is a class or interface type. Inner class segments are folded
// into Descriptor with '.', e.g. "java/util/Map.Entry", and the type
// arguments of every segment are collected in TypeArguments in textual order.
type ClassType struct {
	Descriptor    string
	TypeArguments []TypeArgument
}

// Void is the return type of a method that returns nothing. It only
// appears as MethodSignature.ReturnType.
type Void struct{}

func (*Primitive) typeNode()    {}
func (*TypeVariable) typeNode() {}
func (*Array) typeNode()        {}
func (*ClassType) typeNode()    {}
func (*Void) typeNode()         {}

// Dimensions returns the number of array dimensions and the innermost
// element type.
func (a *Array) Dimensions() (int, TypeNode) {
	n := 1
	elem := a.Element
	for {
		inner, ok := elem.(*Array)
		if !ok {
			return n, elem
		}
		n++
		elem = inner.Element
	}
}

type Wildcard int

const (
	WildcardNone Wildcard = iota
	WildcardExtends
	WildcardSuper
	WildcardUnbounded
)

func (w Wildcard) String() string {
	switch w {
	case WildcardNone:
		return "exact"
	case WildcardExtends:
		return "extends"
	case WildcardSuper:
		return "super"
	case WildcardUnbounded:
		return "unbounded"
	}
	return "unknown"
}

// TypeArgument is one entry of a class type's <...> block. Type is nil
// exactly when Wildcard is WildcardUnbounded.
type TypeArgument struct {
	Wildcard Wildcard
	Type     TypeNode
}

func Exact(t TypeNode) TypeArgument   { return TypeArgument{Wildcard: WildcardNone, Type: t} }
func Extends(t TypeNode) TypeArgument { return TypeArgument{Wildcard: WildcardExtends, Type: t} }
func Super(t TypeNode) TypeArgument   { return TypeArgument{Wildcard: WildcardSuper, Type: t} }
func Unbounded() TypeArgument         { return TypeArgument{Wildcard: WildcardUnbounded} }

// FormalTypeParameter is a type variable declared by a class or method.
// ClassBound is nil when the declaration omits it, in which case
// InterfaceBounds is non-empty.
type FormalTypeParameter struct {
	Name            string
	ClassBound      TypeNode
	InterfaceBounds []TypeNode
}

// Bounds returns the class bound, if any, followed by the interface bounds.
func (p FormalTypeParameter) Bounds() []TypeNode {
	bounds := make([]TypeNode, 0, len(p.InterfaceBounds)+1)
	if p.ClassBound != nil {
		bounds = append(bounds, p.ClassBound)
	}
	return append(bounds, p.InterfaceBounds...)
}

// Kind selects one of the three top-level signature forms.
type Kind int

const (
	KindClass Kind = iota
	KindMethod
	KindField
)

func (k Kind) String() string {
	switch k {
	case KindClass:
		return "class"
	case KindMethod:
		return "method"
	case KindField:
		return "field"
	}
	return "unknown"
}

// ParseKind maps "class", "method" and "field" to a Kind.
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "class":
		return KindClass, true
	case "method":
		return KindMethod, true
	case "field":
		return KindField, true
	}
	return 0, false
}

// Signature is the root of a parsed tree: *ClassSignature,
// *MethodSignature or *FieldSignature.
type Signature interface {
	Kind() Kind
	String() string
}

type ClassSignature struct {
	FormalParameters []FormalTypeParameter
	Superclass       *ClassType
	Superinterfaces  []*ClassType
}

type MethodSignature struct {
	FormalParameters []FormalTypeParameter
	ParameterTypes   []TypeNode
	ReturnType       TypeNode
	ExceptionTypes   []TypeNode
}

// FieldSignature holds a *ClassType, *TypeVariable or *Array.
type FieldSignature struct {
	Type TypeNode
}

func (*ClassSignature) Kind() Kind  { return KindClass }
func (*MethodSignature) Kind() Kind { return KindMethod }
func (*FieldSignature) Kind() Kind  { return KindField }

// IsVoid reports whether the method returns nothing.
func (m *MethodSignature) IsVoid() bool {
	_, ok := m.ReturnType.(*Void)
	return ok
}
