package annotations

import "slices"

// EnumType describes an enum declared elsewhere: its type reference
// and the identifiers of its constants, in declaration order.
type EnumType struct {
	TypeRef
	constants []string
}

// NewEnumType creates an enum description; qualified must be a valid name
func NewEnumType(qualified string, constants ...string) *EnumType {
	return &EnumType{
		TypeRef:   MustTypeRef(qualified),
		constants: slices.Clone(constants),
	}
}

// Constants returns the constant identifiers in declaration order
func (e *EnumType) Constants() []string {
	return slices.Clone(e.constants)
}

// Constant returns the constant with the given identifier
func (e *EnumType) Constant(name string) (EnumConstant, bool) {
	if !slices.Contains(e.constants, name) {
		return EnumConstant{}, false
	}
	return EnumConstant{Type: e, Name: name}, true
}

// MustConstant is Constant for identifiers known to exist
func (e *EnumType) MustConstant(name string) EnumConstant {
	c, ok := e.Constant(name)
	if !ok {
		panic("enum " + e.QualifiedName() + " has no constant " + name)
	}
	return c
}

// EnumConstant is one constant of an EnumType
type EnumConstant struct {
	Type *EnumType
	Name string
}

// Literal is the source text referring to the constant: Type.NAME
func (c EnumConstant) Literal() string {
	return c.Type.SimpleName() + "." + c.Name
}

func (c EnumConstant) String() string {
	return c.Literal()
}
