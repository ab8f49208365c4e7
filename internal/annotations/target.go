package annotations

import (
	"strings"

	"github.com/toyz/srcmodel/internal/errors"
)

// TypeResolver maps a simple type name to its qualified name, typically
// from the imports of the file that owns a declaration. HasImport also
// sees on-demand (wildcard) imports, which cannot resolve a simple name
// on their own.
type TypeResolver interface {
	ResolveType(simpleName string) (string, bool)
	HasImport(qualified string) bool
}

// ImportRegistrar records that a type is referenced, typically by adding
// an import to the owning file.
type ImportRegistrar interface {
	AddImport(ref TypeRef)
}

// Target is the ordered set of annotations on one declaration. The zero
// value is ready to use; declarations embed it.
type Target struct {
	annotations []*Annotation
	resolver    TypeResolver
	registrar   ImportRegistrar
}

// Bind connects the target to the file that owns its declaration.
// Either argument may be nil.
func (t *Target) Bind(resolver TypeResolver, registrar ImportRegistrar) {
	t.resolver = resolver
	t.registrar = registrar
}

// AddAnnotation appends an unnamed annotation; call SetName on the result.
func (t *Target) AddAnnotation() *Annotation {
	a := &Annotation{owner: t}
	t.annotations = append(t.annotations, a)
	return a
}

// AddNamedAnnotation appends an annotation with the given simple or
// qualified name. An invalid name leaves the target unchanged.
func (t *Target) AddNamedAnnotation(name string) (*Annotation, error) {
	a := &Annotation{owner: t}
	if err := a.SetName(name); err != nil {
		return nil, err
	}
	t.annotations = append(t.annotations, a)
	return a, nil
}

// AddTypeAnnotation appends an annotation referring to ref. It is
// rendered by simple name and the type is passed to the import registrar.
func (t *Target) AddTypeAnnotation(ref TypeRef) (*Annotation, error) {
	if err := ref.validate(); err != nil {
		return nil, err
	}
	a := &Annotation{
		owner:     t,
		name:      ref.SimpleName(),
		qualified: ref.QualifiedName(),
	}
	if t.registrar != nil && ref.Package != "" {
		t.registrar.AddImport(ref)
	}
	t.annotations = append(t.annotations, a)
	return a, nil
}

// AddParsedAnnotation appends an annotation read from source text, with
// its values in the order they were written.
func (t *Target) AddParsedAnnotation(name string, values ...Value) (*Annotation, error) {
	a := &Annotation{owner: t}
	if err := a.SetName(name); err != nil {
		return nil, err
	}
	for _, v := range values {
		a.values.set(v.Name, v.Literal)
	}
	t.annotations = append(t.annotations, a)
	return a, nil
}

// Annotations returns the annotations in source order. The slice is a
// copy; the annotations are the live ones.
func (t *Target) Annotations() []*Annotation {
	out := make([]*Annotation, len(t.annotations))
	copy(out, t.annotations)
	return out
}

// Annotation returns the first annotation matching name, which may be a
// simple or a qualified name
func (t *Target) Annotation(name string) (*Annotation, bool) {
	for _, a := range t.annotations {
		if a.matches(name) {
			return a, true
		}
	}
	return nil, false
}

// HasAnnotation reports whether an annotation matching name is present
func (t *Target) HasAnnotation(name string) bool {
	_, ok := t.Annotation(name)
	return ok
}

// AnnotationByType returns the first annotation referring to ref
func (t *Target) AnnotationByType(ref TypeRef) (*Annotation, bool) {
	for _, a := range t.annotations {
		if a.matchesType(ref) {
			return a, true
		}
	}
	return nil, false
}

// HasAnnotationType reports whether an annotation referring to ref is present
func (t *Target) HasAnnotationType(ref TypeRef) bool {
	_, ok := t.AnnotationByType(ref)
	return ok
}

// RemoveAnnotation removes a by identity. Removing an annotation that is
// not on this target returns an *errors.LookupError and changes nothing.
func (t *Target) RemoveAnnotation(a *Annotation) error {
	for i, existing := range t.annotations {
		if existing == a {
			t.annotations = append(t.annotations[:i], t.annotations[i+1:]...)
			a.owner = nil
			return nil
		}
	}
	name := "<nil>"
	if a != nil {
		name = a.name
	}
	return errors.NewLookupError(name, "annotation @"+name+" is not present on this declaration")
}

// Render returns every annotation's text in order, separated by one space
func (t *Target) Render() string {
	parts := make([]string, len(t.annotations))
	for i, a := range t.annotations {
		parts[i] = a.Render()
	}
	return strings.Join(parts, " ")
}
