package source

import (
	"slices"

	"github.com/toyz/srcmodel/internal/annotations"
)

// Kind distinguishes class declarations from interfaces
type Kind int

const (
	KindClass Kind = iota
	KindInterface
)

func (k Kind) String() string {
	if k == KindInterface {
		return "interface"
	}
	return "class"
}

// ParseKind maps the declaration keyword to a Kind
func ParseKind(keyword string) (Kind, bool) {
	switch keyword {
	case "class":
		return KindClass, true
	case "interface":
		return KindInterface, true
	}
	return KindClass, false
}

// Member is a field or method of a class
type Member interface {
	MemberName() string
	Annotated() *annotations.Target
	render(indent string) string
}

// Class is a class or interface declaration
type Class struct {
	annotations.Target
	Modifiers  []string
	Kind       Kind
	Name       string
	TypeParams string // raw, including the angle brackets
	Extends    []string
	Implements []string

	members []Member
	file    *File
}

func (c *Class) bind(f *File) {
	if f != nil {
		c.Bind(f, f)
	}
}

// File returns the compilation unit declaring c, or nil
func (c *Class) File() *File {
	return c.file
}

// Annotated returns the annotation set of the class
func (c *Class) Annotated() *annotations.Target {
	return &c.Target
}

// Members returns fields and methods in declaration order
func (c *Class) Members() []Member {
	return slices.Clone(c.members)
}

// AddField appends a field declaration
func (c *Class) AddField(typ, name string) (*Field, error) {
	if err := validateIdentifier("field", name); err != nil {
		return nil, err
	}
	fd := &Field{Type: typ, Name: name}
	if c.file != nil {
		fd.Bind(c.file, c.file)
	}
	c.members = append(c.members, fd)
	return fd, nil
}

// AddMethod appends a method declaration. An empty return type makes it
// a constructor.
func (c *Class) AddMethod(returnType, name string) (*Method, error) {
	if err := validateIdentifier("method", name); err != nil {
		return nil, err
	}
	m := &Method{ReturnType: returnType, Name: name, file: c.file}
	if c.file != nil {
		m.Bind(c.file, c.file)
	}
	c.members = append(c.members, m)
	return m, nil
}

// Field returns the field named name
func (c *Class) Field(name string) (*Field, bool) {
	for _, m := range c.members {
		if fd, ok := m.(*Field); ok && fd.Name == name {
			return fd, true
		}
	}
	return nil, false
}

// Method returns the first method named name; overloads share a name.
func (c *Class) Method(name string) (*Method, bool) {
	for _, m := range c.members {
		if md, ok := m.(*Method); ok && md.Name == name {
			return md, true
		}
	}
	return nil, false
}

// Fields returns the fields in declaration order
func (c *Class) Fields() []*Field {
	var out []*Field
	for _, m := range c.members {
		if fd, ok := m.(*Field); ok {
			out = append(out, fd)
		}
	}
	return out
}

// Methods returns the methods in declaration order
func (c *Class) Methods() []*Method {
	var out []*Method
	for _, m := range c.members {
		if md, ok := m.(*Method); ok {
			out = append(out, md)
		}
	}
	return out
}

// Field is a field declaration. Initializer holds the expression after
// '=' exactly as written.
type Field struct {
	annotations.Target
	Modifiers   []string
	Type        string
	Name        string
	Initializer string
}

func (f *Field) MemberName() string             { return f.Name }
func (f *Field) Annotated() *annotations.Target { return &f.Target }

// Method is a method or constructor declaration. Body holds the block
// exactly as written, braces included; empty means the declaration ends
// with ';'.
type Method struct {
	annotations.Target
	Modifiers  []string
	TypeParams string
	ReturnType string
	Name       string
	Throws     []string
	Body       string

	params []*Parameter
	file   *File
}

func (m *Method) MemberName() string             { return m.Name }
func (m *Method) Annotated() *annotations.Target { return &m.Target }

// IsConstructor reports whether the method has no return type
func (m *Method) IsConstructor() bool {
	return m.ReturnType == ""
}

// AddParameter appends a formal parameter
func (m *Method) AddParameter(typ, name string) (*Parameter, error) {
	if err := validateIdentifier("parameter", name); err != nil {
		return nil, err
	}
	p := &Parameter{Type: typ, Name: name}
	if m.file != nil {
		p.Bind(m.file, m.file)
	}
	m.params = append(m.params, p)
	return p, nil
}

// Parameters returns the formal parameters in order
func (m *Method) Parameters() []*Parameter {
	return slices.Clone(m.params)
}

// Parameter returns the parameter named name
func (m *Method) Parameter(name string) (*Parameter, bool) {
	for _, p := range m.params {
		if p.Name == name {
			return p, true
		}
	}
	return nil, false
}

// Parameter is a formal parameter of a method
type Parameter struct {
	annotations.Target
	Final   bool
	Type    string
	Varargs bool
	Name    string
}

func (p *Parameter) Annotated() *annotations.Target { return &p.Target }
