package signature

import (
	"errors"
	"strings"
	"testing"
)

func class(desc string, args ...TypeArgument) *ClassType {
	if args == nil {
		args = []TypeArgument{}
	}
	return &ClassType{Descriptor: desc, TypeArguments: args}
}

func tvar(name string) *TypeVariable { return &TypeVariable{Name: name} }

func array(elem TypeNode) *Array { return &Array{Element: elem} }

func prim(code BaseType) *Primitive { return &Primitive{Code: code} }

var object = class("java/lang/Object")

func TestParsePrimitive(t *testing.T) {
	for _, code := range "ZCBSIFJD" {
		t.Run(string(code), func(t *testing.T) {
			s := newScanner(string(code) + "rest")
			got, err := s.parseTypeSignature()
			if err != nil {
				t.Fatalf("parseTypeSignature() error = %v", err)
			}
			want := prim(BaseType(code))
			if !EqualType(got, want) {
				t.Errorf("parseTypeSignature() = %v, want %v", got, want)
			}
			if s.pos != 1 {
				t.Errorf("consumed %d characters, want 1", s.pos)
			}
		})
	}
}

func TestParseTypeSignature(t *testing.T) {
	tests := []struct {
		input string
		want  TypeNode
	}{
		{"I", prim(Int)},
		{"TT;", tvar("T")},
		{"TELEMENT;", tvar("ELEMENT")},
		{"Ljava/lang/String;", class("java/lang/String")},
		{"LNoPackage;", class("NoPackage")},
		{"[I", array(prim(Int))},
		{"[[Ljava/lang/String;", array(array(class("java/lang/String")))},
		{"[TT;", array(tvar("T"))},
		{
			"Ljava/util/Map<Ljava/lang/String;Ljava/util/List<[J>;>;",
			class("java/util/Map",
				Exact(class("java/lang/String")),
				Exact(class("java/util/List", Exact(array(prim(Long)))))),
		},
		{
			"Ljava/util/Map$Entry<TK;TV;>;",
			class("java/util/Map$Entry", Exact(tvar("K")), Exact(tvar("V"))),
		},
		{
			"Ljava/util/Map<TK;TV;>.Entry<TK;TV;>;",
			class("java/util/Map.Entry", Exact(tvar("K")), Exact(tvar("V")), Exact(tvar("K")), Exact(tvar("V"))),
		},
		{
			"La/Outer.Middle.Inner;",
			class("a/Outer.Middle.Inner"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTypeSignature(tt.input)
			if err != nil {
				t.Fatalf("ParseTypeSignature() error = %v", err)
			}
			if !EqualType(got, tt.want) {
				t.Errorf("ParseTypeSignature() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseFieldSignature(t *testing.T) {
	tests := []struct {
		input string
		want  TypeNode
	}{
		{
			"Ljava/util/List<Ljava/lang/String;>;",
			class("java/util/List", Exact(class("java/lang/String"))),
		},
		{"[[I", array(array(prim(Int)))},
		{"TT;", tvar("T")},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFieldSignature(tt.input)
			if err != nil {
				t.Fatalf("ParseFieldSignature() error = %v", err)
			}
			if !EqualType(got.Type, tt.want) {
				t.Errorf("ParseFieldSignature() = %v, want %v", got.Type, tt.want)
			}
		})
	}
}

func TestParseWildcards(t *testing.T) {
	number := class("java/lang/Number")
	tests := []struct {
		arg  string
		want TypeArgument
	}{
		{"*", Unbounded()},
		{"+Ljava/lang/Number;", Extends(number)},
		{"-Ljava/lang/Number;", Super(number)},
		{"Ljava/lang/Number;", Exact(number)},
		{"+[TT;", Extends(array(tvar("T")))},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			sig, err := ParseFieldSignature("Ljava/util/List<" + tt.arg + ">;")
			if err != nil {
				t.Fatalf("ParseFieldSignature() error = %v", err)
			}
			ct := sig.Type.(*ClassType)
			if len(ct.TypeArguments) != 1 {
				t.Fatalf("Expected 1 type argument, got %d", len(ct.TypeArguments))
			}
			got := ct.TypeArguments[0]
			if !EqualArgument(got, tt.want) {
				t.Errorf("argument = %v (%v), want %v (%v)", got, got.Wildcard, tt.want, tt.want.Wildcard)
			}
			if got.Wildcard == WildcardUnbounded && got.Type != nil {
				t.Error("Unbounded wildcard carries a type")
			}
		})
	}
}

func TestParseClassSignature(t *testing.T) {
	sig, err := ParseClassSignature("<T:Ljava/lang/Object;>Ljava/lang/Object;Ljava/lang/Comparable<TT;>;")
	if err != nil {
		t.Fatalf("ParseClassSignature() error = %v", err)
	}

	t.Run("formal parameters", func(t *testing.T) {
		if len(sig.FormalParameters) != 1 {
			t.Fatalf("Expected 1 formal parameter, got %d", len(sig.FormalParameters))
		}
		formal := sig.FormalParameters[0]
		if formal.Name != "T" {
			t.Errorf("Name = %q, want %q", formal.Name, "T")
		}
		if !EqualType(formal.ClassBound, object) {
			t.Errorf("ClassBound = %v, want %v", formal.ClassBound, object)
		}
		if len(formal.InterfaceBounds) != 0 {
			t.Errorf("Expected no interface bounds, got %d", len(formal.InterfaceBounds))
		}
	})

	t.Run("superclass", func(t *testing.T) {
		if !EqualType(sig.Superclass, object) {
			t.Errorf("Superclass = %v, want %v", sig.Superclass, object)
		}
	})

	t.Run("superinterfaces", func(t *testing.T) {
		if len(sig.Superinterfaces) != 1 {
			t.Fatalf("Expected 1 superinterface, got %d", len(sig.Superinterfaces))
		}
		want := class("java/lang/Comparable", Exact(tvar("T")))
		if !EqualType(sig.Superinterfaces[0], want) {
			t.Errorf("Superinterfaces[0] = %v, want %v", sig.Superinterfaces[0], want)
		}
	})
}

func TestParseClassSignatureBounds(t *testing.T) {
	sig, err := ParseClassSignature("<K::Ljava/lang/Comparable<TK;>;:Ljava/io/Serializable;V:TK;>Ljava/util/AbstractMap<TK;TV;>;")
	if err != nil {
		t.Fatalf("ParseClassSignature() error = %v", err)
	}
	if len(sig.FormalParameters) != 2 {
		t.Fatalf("Expected 2 formal parameters, got %d", len(sig.FormalParameters))
	}

	k := sig.FormalParameters[0]
	if k.ClassBound != nil {
		t.Errorf("K ClassBound = %v, want none", k.ClassBound)
	}
	if len(k.InterfaceBounds) != 2 {
		t.Fatalf("Expected 2 interface bounds on K, got %d", len(k.InterfaceBounds))
	}
	if !EqualType(k.InterfaceBounds[1], class("java/io/Serializable")) {
		t.Errorf("K InterfaceBounds[1] = %v", k.InterfaceBounds[1])
	}
	if got := len(k.Bounds()); got != 2 {
		t.Errorf("len(K.Bounds()) = %d, want 2", got)
	}

	v := sig.FormalParameters[1]
	if v.Name != "V" || !EqualType(v.ClassBound, tvar("K")) {
		t.Errorf("V = %v, want V:TK;", v)
	}
	if sig.Superinterfaces == nil || len(sig.Superinterfaces) != 0 {
		t.Errorf("Superinterfaces = %#v, want empty non-nil slice", sig.Superinterfaces)
	}
}

func TestParseClassSignatureWithoutFormals(t *testing.T) {
	sig, err := ParseClassSignature("Ljava/util/ArrayList<Ljava/lang/String;>;Ljava/lang/Runnable;Ljava/io/Closeable;")
	if err != nil {
		t.Fatalf("ParseClassSignature() error = %v", err)
	}
	if sig.FormalParameters == nil || len(sig.FormalParameters) != 0 {
		t.Errorf("FormalParameters = %#v, want empty non-nil slice", sig.FormalParameters)
	}
	if len(sig.Superinterfaces) != 2 {
		t.Fatalf("Expected 2 superinterfaces, got %d", len(sig.Superinterfaces))
	}
	if sig.Superinterfaces[1].Descriptor != "java/io/Closeable" {
		t.Errorf("Superinterfaces[1] = %q, want %q", sig.Superinterfaces[1].Descriptor, "java/io/Closeable")
	}
}

func TestParseMethodSignature(t *testing.T) {
	t.Run("no parameters", func(t *testing.T) {
		sig, err := ParseMethodSignature("()V")
		if err != nil {
			t.Fatalf("ParseMethodSignature() error = %v", err)
		}
		if len(sig.ParameterTypes) != 0 || sig.ParameterTypes == nil {
			t.Errorf("ParameterTypes = %#v, want empty", sig.ParameterTypes)
		}
		if !sig.IsVoid() {
			t.Errorf("ReturnType = %v, want void", sig.ReturnType)
		}
		if len(sig.ExceptionTypes) != 0 || sig.ExceptionTypes == nil {
			t.Errorf("ExceptionTypes = %#v, want empty", sig.ExceptionTypes)
		}
		if len(sig.FormalParameters) != 0 {
			t.Errorf("FormalParameters = %#v, want empty", sig.FormalParameters)
		}
	})

	t.Run("generic method", func(t *testing.T) {
		sig, err := ParseMethodSignature("<T:Ljava/lang/Object;X:Ljava/lang/Exception;>(ILjava/util/List<+TT;>;[TT;)TT;^TX;^Ljava/io/IOException;")
		if err != nil {
			t.Fatalf("ParseMethodSignature() error = %v", err)
		}
		if len(sig.FormalParameters) != 2 {
			t.Fatalf("Expected 2 formal parameters, got %d", len(sig.FormalParameters))
		}
		params := []TypeNode{
			prim(Int),
			class("java/util/List", Extends(tvar("T"))),
			array(tvar("T")),
		}
		if !equalTypes(sig.ParameterTypes, params) {
			t.Errorf("ParameterTypes = %v, want %v", sig.ParameterTypes, params)
		}
		if !EqualType(sig.ReturnType, tvar("T")) {
			t.Errorf("ReturnType = %v, want TT;", sig.ReturnType)
		}
		if sig.IsVoid() {
			t.Error("Expected IsVoid() to be false")
		}
		exceptions := []TypeNode{tvar("X"), class("java/io/IOException")}
		if !equalTypes(sig.ExceptionTypes, exceptions) {
			t.Errorf("ExceptionTypes = %v, want %v", sig.ExceptionTypes, exceptions)
		}
	})

	t.Run("primitive return", func(t *testing.T) {
		sig, err := ParseMethodSignature("(Ljava/util/List<*>;)[Z")
		if err != nil {
			t.Fatalf("ParseMethodSignature() error = %v", err)
		}
		if !EqualType(sig.ReturnType, array(prim(Boolean))) {
			t.Errorf("ReturnType = %v, want [Z", sig.ReturnType)
		}
	})
}

func TestParseDispatch(t *testing.T) {
	tests := []struct {
		kind  Kind
		input string
	}{
		{KindClass, "Ljava/lang/Object;"},
		{KindMethod, "()V"},
		{KindField, "TT;"},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			sig, err := Parse(tt.kind, tt.input)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if sig.Kind() != tt.kind {
				t.Errorf("Kind() = %v, want %v", sig.Kind(), tt.kind)
			}
		})
	}

	if _, err := Parse(Kind(42), "TT;"); err == nil {
		t.Error("Expected error for unknown kind")
	}
}

var parseErrorCases = []struct {
	name       string
	kind       Kind
	input      string
	position   int
	production string
}{
	{"unterminated type arguments", KindField, "Ljava/util/List<", 16, "TypeArguments"},
	{"empty formal parameters", KindClass, "<>Ljava/lang/Object;", 1, "TypeParameters"},
	{"empty type arguments", KindField, "Ljava/util/List<>;", 16, "TypeArguments"},
	{"missing class terminator", KindField, "Ljava/lang/String", 17, "ClassTypeSignature"},
	{"missing variable terminator", KindField, "TT", 2, "TypeVariableSignature"},
	{"empty class name", KindField, "L;", 1, "ClassTypeSignature"},
	{"empty package segment", KindField, "Ljava//String;", 6, "ClassTypeSignature"},
	{"empty inner name", KindField, "LOuter.;", 7, "ClassTypeSignature"},
	{"primitive field", KindField, "I", 0, "FieldSignature"},
	{"empty field", KindField, "", 0, "TypeSignature"},
	{"unexpected character", KindField, "Q", 0, "TypeSignature"},
	{"trailing characters", KindField, "TT;TU;", 3, "FieldSignature"},
	{"primitive type argument", KindField, "Ljava/util/List<I>;", 16, "TypeArguments"},
	{"void field", KindField, "V", 0, "TypeSignature"},
	{"missing superclass", KindClass, "<T:Ljava/lang/Object;>", 22, "SuperclassSignature"},
	{"class signature trailing", KindClass, "Ljava/lang/Object;TT;", 18, "ClassSignature"},
	{"no bound", KindClass, "<T:>Ljava/lang/Object;", 3, "TypeParameter"},
	{"missing colon", KindClass, "<TLjava/lang/Object;>Ljava/lang/Object;", 7, "TypeParameter"},
	{"unterminated formals", KindMethod, "<T:Ljava/lang/Object;", 21, "TypeParameters"},
	{"missing open paren", KindMethod, "V", 0, "MethodSignature"},
	{"unterminated parameters", KindMethod, "(I", 2, "MethodSignature"},
	{"missing return", KindMethod, "()", 2, "Result"},
	{"void parameter", KindMethod, "(V)V", 1, "TypeSignature"},
	{"array throws", KindMethod, "()V^[Ljava/lang/Exception;", 4, "ThrowsSignature"},
	{"empty throws", KindMethod, "()V^", 4, "ThrowsSignature"},
	{"method trailing", KindMethod, "()VV", 3, "MethodSignature"},
}

func TestParseErrors(t *testing.T) {
	for _, tt := range parseErrorCases {
		t.Run(tt.name, func(t *testing.T) {
			sig, err := Parse(tt.kind, tt.input)
			if err == nil {
				t.Fatalf("Parse(%v, %q) = %v, want error", tt.kind, tt.input, sig)
			}
			if sig != nil {
				t.Errorf("Parse(%v, %q) returned a tree alongside the error", tt.kind, tt.input)
			}
			var gerr *GrammarError
			if !errors.As(err, &gerr) {
				t.Fatalf("error = %T, want *GrammarError", err)
			}
			if gerr.Position != tt.position {
				t.Errorf("Position = %d, want %d (%v)", gerr.Position, tt.position, gerr)
			}
			if gerr.Production != tt.production {
				t.Errorf("Production = %q, want %q (%v)", gerr.Production, tt.production, gerr)
			}
			if !strings.Contains(gerr.Error(), tt.production) {
				t.Errorf("Error() = %q, want mention of %s", gerr.Error(), tt.production)
			}
		})
	}
}

func TestParseDeepNesting(t *testing.T) {
	const depth = 1000
	input := strings.Repeat("Ljava/util/List<", depth) + "Ljava/lang/String;" + strings.Repeat(">;", depth)

	sig, err := ParseFieldSignature(input)
	if err != nil {
		t.Fatalf("ParseFieldSignature() error = %v", err)
	}

	n := 0
	for node := sig.Type; ; n++ {
		ct := node.(*ClassType)
		if len(ct.TypeArguments) == 0 {
			break
		}
		node = ct.TypeArguments[0].Type
	}
	if n != depth {
		t.Errorf("nesting depth = %d, want %d", n, depth)
	}
	if got := sig.String(); got != input {
		t.Error("String() does not reproduce the input")
	}
}
