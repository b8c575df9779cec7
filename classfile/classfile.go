// Package classfile reads the parts of a JVM class file needed to recover
// generic signatures: the constant pool, the class header, and the
// attributes of the class, its fields and its methods.
package classfile

import "strings"

type ClassFile struct {
	MinorVersion uint16
	MajorVersion uint16
	ConstantPool ConstantPool
	AccessFlags  AccessFlags
	ThisClass    uint16
	SuperClass   uint16
	Interfaces   []uint16
	Fields       []FieldInfo
	Methods      []MethodInfo
	Attributes   []AttributeInfo
}

func (cf *ClassFile) ClassName() string {
	return cf.ConstantPool.GetClassName(cf.ThisClass)
}

// Signature returns the class's generic signature, or "" if it has none.
func (cf *ClassFile) Signature() (string, error) {
	return signatureText(cf.Attributes, cf.ConstantPool)
}

// InternalToSourceName turns "java/util/Map$Entry" into "java.util.Map$Entry".
func InternalToSourceName(name string) string {
	return strings.ReplaceAll(name, "/", ".")
}
