package format

import "github.com/dhamidi/jsig/signature"

// The tree types mirror the signature AST for the JSON and YAML encoders.
// Every node carries a "kind" tag and sequences are never null.

type treeEntry struct {
	Member     string   `json:"member,omitempty" yaml:"member,omitempty"`
	Descriptor string   `json:"descriptor,omitempty" yaml:"descriptor,omitempty"`
	Text       string   `json:"text" yaml:"text"`
	Signature  any      `json:"signature" yaml:"signature"`
	References []string `json:"references,omitempty" yaml:"references,omitempty"`
}

type treeClassSignature struct {
	Kind            string              `json:"kind" yaml:"kind"`
	TypeParameters  []treeTypeParameter `json:"typeParameters" yaml:"typeParameters"`
	Superclass      any                 `json:"superclass" yaml:"superclass"`
	Superinterfaces []any               `json:"superinterfaces" yaml:"superinterfaces"`
}

type treeMethodSignature struct {
	Kind           string              `json:"kind" yaml:"kind"`
	TypeParameters []treeTypeParameter `json:"typeParameters" yaml:"typeParameters"`
	Parameters     []any               `json:"parameters" yaml:"parameters"`
	Result         any                 `json:"result" yaml:"result"`
	Throws         []any               `json:"throws" yaml:"throws"`
}

type treeFieldSignature struct {
	Kind string `json:"kind" yaml:"kind"`
	Type any    `json:"type" yaml:"type"`
}

type treeTypeParameter struct {
	Name            string `json:"name" yaml:"name"`
	ClassBound      any    `json:"classBound,omitempty" yaml:"classBound,omitempty"`
	InterfaceBounds []any  `json:"interfaceBounds" yaml:"interfaceBounds"`
}

type treePrimitive struct {
	Kind string `json:"kind" yaml:"kind"`
	Name string `json:"name" yaml:"name"`
}

type treeTypeVariable struct {
	Kind string `json:"kind" yaml:"kind"`
	Name string `json:"name" yaml:"name"`
}

type treeArray struct {
	Kind    string `json:"kind" yaml:"kind"`
	Element any    `json:"element" yaml:"element"`
}

type treeClassType struct {
	Kind       string         `json:"kind" yaml:"kind"`
	Descriptor string         `json:"descriptor" yaml:"descriptor"`
	Arguments  []treeArgument `json:"arguments" yaml:"arguments"`
}

type treeArgument struct {
	Wildcard string `json:"wildcard" yaml:"wildcard"`
	Type     any    `json:"type,omitempty" yaml:"type,omitempty"`
}

type treeVoid struct {
	Kind string `json:"kind" yaml:"kind"`
}

func buildEntry(e *Entry) treeEntry {
	return treeEntry{
		Member:     e.Member(),
		Descriptor: e.Descriptor,
		Text:       e.text(),
		Signature:  buildSignature(e.Signature),
		References: e.References,
	}
}

func buildSignature(sig signature.Signature) any {
	switch s := sig.(type) {
	case *signature.ClassSignature:
		out := treeClassSignature{
			Kind:            "class",
			TypeParameters:  buildFormals(s.FormalParameters),
			Superinterfaces: make([]any, 0, len(s.Superinterfaces)),
		}
		if s.Superclass != nil {
			out.Superclass = buildType(s.Superclass)
		}
		for _, iface := range s.Superinterfaces {
			out.Superinterfaces = append(out.Superinterfaces, buildType(iface))
		}
		return out
	case *signature.MethodSignature:
		out := treeMethodSignature{
			Kind:           "method",
			TypeParameters: buildFormals(s.FormalParameters),
			Parameters:     buildTypes(s.ParameterTypes),
			Throws:         buildTypes(s.ExceptionTypes),
		}
		if s.ReturnType == nil {
			out.Result = treeVoid{Kind: "void"}
		} else {
			out.Result = buildType(s.ReturnType)
		}
		return out
	case *signature.FieldSignature:
		return treeFieldSignature{Kind: "field", Type: buildType(s.Type)}
	}
	return nil
}

func buildFormals(formals []signature.FormalTypeParameter) []treeTypeParameter {
	out := make([]treeTypeParameter, 0, len(formals))
	for _, f := range formals {
		p := treeTypeParameter{
			Name:            f.Name,
			InterfaceBounds: buildTypes(f.InterfaceBounds),
		}
		if f.ClassBound != nil {
			p.ClassBound = buildType(f.ClassBound)
		}
		out = append(out, p)
	}
	return out
}

func buildTypes(types []signature.TypeNode) []any {
	out := make([]any, 0, len(types))
	for _, t := range types {
		out = append(out, buildType(t))
	}
	return out
}

func buildType(t signature.TypeNode) any {
	switch n := t.(type) {
	case *signature.Primitive:
		return treePrimitive{Kind: "primitive", Name: n.Code.Name()}
	case *signature.TypeVariable:
		return treeTypeVariable{Kind: "typeVariable", Name: n.Name}
	case *signature.Array:
		return treeArray{Kind: "array", Element: buildType(n.Element)}
	case *signature.ClassType:
		args := make([]treeArgument, 0, len(n.TypeArguments))
		for _, arg := range n.TypeArguments {
			a := treeArgument{Wildcard: arg.Wildcard.String()}
			if arg.Type != nil {
				a.Type = buildType(arg.Type)
			}
			args = append(args, a)
		}
		return treeClassType{Kind: "class", Descriptor: n.Descriptor, Arguments: args}
	case *signature.Void:
		return treeVoid{Kind: "void"}
	}
	return nil
}
