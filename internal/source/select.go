package source

import (
	"strings"

	"github.com/toyz/srcmodel/internal/annotations"
	"github.com/toyz/srcmodel/internal/errors"
)

// Selection is one declaration addressed by a selector
type Selection struct {
	Selector string
	Kind     string
	Target   *annotations.Target
}

// Select finds a declaration by selector: "Class", "Class.member" or
// "Class.method.parameter". Overloaded methods resolve to the first one.
func (f *File) Select(selector string) (Selection, error) {
	parts := strings.Split(selector, ".")
	if selector == "" || len(parts) > 3 {
		return Selection{}, errors.SelectorError(selector, "expected Class, Class.member or Class.method.parameter")
	}

	c, ok := f.Class(parts[0])
	if !ok {
		return Selection{}, errors.SelectorError(selector, "no class named "+parts[0])
	}
	if len(parts) == 1 {
		return Selection{Selector: selector, Kind: c.Kind.String(), Target: &c.Target}, nil
	}

	if len(parts) == 2 {
		if fd, ok := c.Field(parts[1]); ok {
			return Selection{Selector: selector, Kind: "field", Target: &fd.Target}, nil
		}
	}
	m, ok := c.Method(parts[1])
	if !ok {
		return Selection{}, errors.SelectorError(selector, "no member named "+parts[1]+" in "+c.Name)
	}
	if len(parts) == 2 {
		return Selection{Selector: selector, Kind: methodKind(m), Target: &m.Target}, nil
	}

	p, ok := m.Parameter(parts[2])
	if !ok {
		return Selection{}, errors.SelectorError(selector, "no parameter named "+parts[2]+" in "+m.Name)
	}
	return Selection{Selector: selector, Kind: "parameter", Target: &p.Target}, nil
}

// Declarations lists every annotatable declaration in source order
func (f *File) Declarations() []Selection {
	var out []Selection
	for _, c := range f.classes {
		out = append(out, Selection{Selector: c.Name, Kind: c.Kind.String(), Target: &c.Target})
		for _, member := range c.members {
			sel := c.Name + "." + member.MemberName()
			switch m := member.(type) {
			case *Field:
				out = append(out, Selection{Selector: sel, Kind: "field", Target: &m.Target})
			case *Method:
				out = append(out, Selection{Selector: sel, Kind: methodKind(m), Target: &m.Target})
				for _, p := range m.params {
					out = append(out, Selection{Selector: sel + "." + p.Name, Kind: "parameter", Target: &p.Target})
				}
			}
		}
	}
	return out
}

func methodKind(m *Method) string {
	if m.IsConstructor() {
		return "constructor"
	}
	return "method"
}
