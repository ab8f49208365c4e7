package source

import (
	"strings"
)

const indentUnit = "    "

// String renders the compilation unit back to source text
func (f *File) String() string {
	var b strings.Builder
	if f.Package != "" {
		b.WriteString("package " + f.Package + ";\n\n")
	}
	if len(f.imports) > 0 {
		for _, imp := range f.imports {
			b.WriteString(imp.String() + "\n")
		}
		b.WriteString("\n")
	}
	for i, c := range f.classes {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(c.render(""))
	}
	return b.String()
}

func (c *Class) String() string {
	return c.render("")
}

func (c *Class) render(indent string) string {
	var b strings.Builder
	writeAnnotationLine(&b, indent, c.Render())

	b.WriteString(indent)
	writeModifiers(&b, c.Modifiers)
	b.WriteString(c.Kind.String() + " " + c.Name + c.TypeParams)
	if len(c.Extends) > 0 {
		b.WriteString(" extends " + strings.Join(c.Extends, ", "))
	}
	if len(c.Implements) > 0 {
		b.WriteString(" implements " + strings.Join(c.Implements, ", "))
	}
	b.WriteString(" {\n")
	for i, m := range c.members {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(m.render(indent + indentUnit))
	}
	b.WriteString(indent + "}\n")
	return b.String()
}

func (f *Field) String() string {
	return strings.TrimSuffix(f.render(""), "\n")
}

func (f *Field) render(indent string) string {
	var b strings.Builder
	writeAnnotationLine(&b, indent, f.Render())
	b.WriteString(indent)
	writeModifiers(&b, f.Modifiers)
	b.WriteString(f.Type + " " + f.Name)
	if f.Initializer != "" {
		b.WriteString(" = " + f.Initializer)
	}
	b.WriteString(";\n")
	return b.String()
}

func (m *Method) String() string {
	return strings.TrimSuffix(m.render(""), "\n")
}

func (m *Method) render(indent string) string {
	var b strings.Builder
	writeAnnotationLine(&b, indent, m.Render())
	b.WriteString(indent)
	writeModifiers(&b, m.Modifiers)
	if m.TypeParams != "" {
		b.WriteString(m.TypeParams + " ")
	}
	if m.ReturnType != "" {
		b.WriteString(m.ReturnType + " ")
	}
	b.WriteString(m.Name + "(")
	for i, p := range m.params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.String())
	}
	b.WriteString(")")
	if len(m.Throws) > 0 {
		b.WriteString(" throws " + strings.Join(m.Throws, ", "))
	}
	if m.Body == "" {
		b.WriteString(";\n")
	} else {
		b.WriteString(" " + m.Body + "\n")
	}
	return b.String()
}

// String renders the parameter with its annotations inline
func (p *Parameter) String() string {
	var b strings.Builder
	if ann := p.Render(); ann != "" {
		b.WriteString(ann + " ")
	}
	if p.Final {
		b.WriteString("final ")
	}
	b.WriteString(p.Type)
	if p.Varargs {
		b.WriteString("...")
	}
	b.WriteString(" " + p.Name)
	return b.String()
}

func writeAnnotationLine(b *strings.Builder, indent, annotations string) {
	if annotations == "" {
		return
	}
	b.WriteString(indent + annotations + "\n")
}

func writeModifiers(b *strings.Builder, modifiers []string) {
	for _, m := range modifiers {
		b.WriteString(m + " ")
	}
}
