package signature

// Walk calls fn for every TypeNode in sig in textual order: formal
// parameter bounds first, then the remaining types of the form. Children of
// a node are visited only when fn returns true for it.
func Walk(sig Signature, fn func(TypeNode) bool) {
	switch s := sig.(type) {
	case *ClassSignature:
		walkFormals(s.FormalParameters, fn)
		if s.Superclass != nil {
			WalkType(s.Superclass, fn)
		}
		for _, iface := range s.Superinterfaces {
			WalkType(iface, fn)
		}
	case *MethodSignature:
		walkFormals(s.FormalParameters, fn)
		for _, param := range s.ParameterTypes {
			WalkType(param, fn)
		}
		if s.ReturnType != nil {
			WalkType(s.ReturnType, fn)
		}
		for _, thrown := range s.ExceptionTypes {
			WalkType(thrown, fn)
		}
	case *FieldSignature:
		WalkType(s.Type, fn)
	}
}

// WalkType calls fn for t and, while fn returns true, its nested types.
func WalkType(t TypeNode, fn func(TypeNode) bool) {
	if !fn(t) {
		return
	}
	switch n := t.(type) {
	case *Array:
		WalkType(n.Element, fn)
	case *ClassType:
		for _, arg := range n.TypeArguments {
			if arg.Type != nil {
				WalkType(arg.Type, fn)
			}
		}
	}
}

func walkFormals(formals []FormalTypeParameter, fn func(TypeNode) bool) {
	for _, formal := range formals {
		for _, bound := range formal.Bounds() {
			WalkType(bound, fn)
		}
	}
}

// ReferencedClasses returns the distinct class descriptors mentioned in
// sig, in order of first appearance.
func ReferencedClasses(sig Signature) []string {
	seen := make(map[string]bool)
	var classes []string
	Walk(sig, func(t TypeNode) bool {
		if ct, ok := t.(*ClassType); ok && !seen[ct.Descriptor] {
			seen[ct.Descriptor] = true
			classes = append(classes, ct.Descriptor)
		}
		return true
	})
	return classes
}

// TypeVariables returns the distinct type variable names used in sig, in
// order of first appearance. Declared formal parameters are not included
// unless they are also used.
func TypeVariables(sig Signature) []string {
	seen := make(map[string]bool)
	var names []string
	Walk(sig, func(t TypeNode) bool {
		if tv, ok := t.(*TypeVariable); ok && !seen[tv.Name] {
			seen[tv.Name] = true
			names = append(names, tv.Name)
		}
		return true
	})
	return names
}
