package signature

// EqualType reports whether a and b are structurally equal. Nil and empty
// slices compare equal.
func EqualType(a, b TypeNode) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch x := a.(type) {
	case *Primitive:
		y, ok := b.(*Primitive)
		return ok && x.Code == y.Code
	case *TypeVariable:
		y, ok := b.(*TypeVariable)
		return ok && x.Name == y.Name
	case *Array:
		y, ok := b.(*Array)
		return ok && EqualType(x.Element, y.Element)
	case *ClassType:
		y, ok := b.(*ClassType)
		return ok && equalClassType(x, y)
	case *Void:
		_, ok := b.(*Void)
		return ok
	}
	return false
}

func EqualArgument(a, b TypeArgument) bool {
	return a.Wildcard == b.Wildcard && EqualType(a.Type, b.Type)
}

// EqualSignature reports whether two parsed signatures are structurally
// equal.
func EqualSignature(a, b Signature) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch x := a.(type) {
	case *ClassSignature:
		y, ok := b.(*ClassSignature)
		if !ok || !equalFormals(x.FormalParameters, y.FormalParameters) {
			return false
		}
		if !equalClassType(x.Superclass, y.Superclass) || len(x.Superinterfaces) != len(y.Superinterfaces) {
			return false
		}
		for i := range x.Superinterfaces {
			if !equalClassType(x.Superinterfaces[i], y.Superinterfaces[i]) {
				return false
			}
		}
		return true
	case *MethodSignature:
		y, ok := b.(*MethodSignature)
		return ok &&
			equalFormals(x.FormalParameters, y.FormalParameters) &&
			equalTypes(x.ParameterTypes, y.ParameterTypes) &&
			EqualType(x.ReturnType, y.ReturnType) &&
			equalTypes(x.ExceptionTypes, y.ExceptionTypes)
	case *FieldSignature:
		y, ok := b.(*FieldSignature)
		return ok && EqualType(x.Type, y.Type)
	}
	return false
}

func equalClassType(x, y *ClassType) bool {
	if x == nil || y == nil {
		return x == nil && y == nil
	}
	if x.Descriptor != y.Descriptor || len(x.TypeArguments) != len(y.TypeArguments) {
		return false
	}
	for i := range x.TypeArguments {
		if !EqualArgument(x.TypeArguments[i], y.TypeArguments[i]) {
			return false
		}
	}
	return true
}

func equalTypes(x, y []TypeNode) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if !EqualType(x[i], y[i]) {
			return false
		}
	}
	return true
}

func equalFormals(x, y []FormalTypeParameter) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if x[i].Name != y[i].Name ||
			!EqualType(x[i].ClassBound, y[i].ClassBound) ||
			!equalTypes(x[i].InterfaceBounds, y[i].InterfaceBounds) {
			return false
		}
	}
	return true
}
