// Package annotations models annotation usages attached to declarations:
// their names, their literal values and the text they render to.
package annotations

import (
	"strings"

	"github.com/toyz/srcmodel/internal/errors"
	"github.com/toyz/srcmodel/internal/utils"
)

// Shape classifies an annotation by its values
type Shape int

const (
	// Marker has no values: @Name
	Marker Shape = iota
	// SingleValue has only the reserved "value" element: @Name(literal)
	SingleValue
	// Normal has named elements: @Name(a = x, b = y)
	Normal
)

// String returns the string representation of the shape
func (s Shape) String() string {
	switch s {
	case Marker:
		return "marker"
	case SingleValue:
		return "single-value"
	case Normal:
		return "normal"
	default:
		return "unknown"
	}
}

// Annotation is one annotation usage on a Target. It is only created
// through a Target's Add methods and belongs to that target.
type Annotation struct {
	name      string // as written: simple or qualified
	qualified string // known qualified name, if any
	values    valueList
	owner     *Target
}

// Name returns the annotation name as it is rendered
func (a *Annotation) Name() string {
	return a.name
}

// SimpleName returns the name without any package qualifier
func (a *Annotation) SimpleName() string {
	return utils.SimpleName(a.name)
}

// QualifiedName returns the fully qualified type name when it is known,
// either because the annotation was named with one or because the owning
// target can resolve the simple name. It returns "" otherwise.
func (a *Annotation) QualifiedName() string {
	if a.qualified != "" {
		return a.qualified
	}
	if a.owner != nil && a.owner.resolver != nil {
		if q, ok := a.owner.resolver.ResolveType(a.name); ok {
			return q
		}
	}
	return ""
}

// SetName renames the annotation. Invalid names are rejected with an
// *errors.InvalidNameError and the annotation is left unchanged.
func (a *Annotation) SetName(name string) error {
	if err := validateName(name); err != nil {
		return err
	}
	a.name = name
	a.qualified = ""
	if strings.Contains(name, ".") {
		a.qualified = name
	}
	return nil
}

// Shape derives the annotation's shape from its current values
func (a *Annotation) Shape() Shape {
	switch a.values.len() {
	case 0:
		return Marker
	case 1:
		if a.values.entries[0].Name == DefaultValueName {
			return SingleValue
		}
	}
	return Normal
}

// IsMarker reports whether the annotation has no values
func (a *Annotation) IsMarker() bool {
	return a.Shape() == Marker
}

// IsSingleValue reports whether the annotation holds only the reserved value
func (a *Annotation) IsSingleValue() bool {
	return a.Shape() == SingleValue
}

// IsNormal reports whether the annotation holds named values
func (a *Annotation) IsNormal() bool {
	return a.Shape() == Normal
}

// Render serializes the annotation to source text.
//
//	Marker       @Name
//	SingleValue  @Name(literal)
//	Normal       @Name(a = x, b = y)
func (a *Annotation) Render() string {
	var b strings.Builder
	b.WriteString("@")
	b.WriteString(a.name)

	switch a.Shape() {
	case SingleValue:
		b.WriteString("(")
		b.WriteString(a.values.entries[0].Literal)
		b.WriteString(")")
	case Normal:
		b.WriteString("(")
		for i, v := range a.values.entries {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(v.Name)
			b.WriteString(" = ")
			b.WriteString(v.Literal)
		}
		b.WriteString(")")
	}
	return b.String()
}

func (a *Annotation) String() string {
	return a.Render()
}

// matches reports whether query names this annotation by simple name,
// name as written, or qualified name. An unresolved simple name matches a
// qualified query the owning file imports on demand.
func (a *Annotation) matches(query string) bool {
	if query == "" {
		return false
	}
	if a.name == query || a.SimpleName() == query {
		return true
	}
	if q := a.QualifiedName(); q != "" {
		return q == query
	}
	return a.SimpleName() == utils.SimpleName(query) &&
		a.owner != nil && a.owner.resolver != nil &&
		a.owner.resolver.HasImport(query)
}

// matchesType reports whether the annotation refers to ref. When the
// qualified name is unknown only the simple names are compared.
func (a *Annotation) matchesType(ref TypeRef) bool {
	if q := a.QualifiedName(); q != "" && ref.Package != "" {
		return q == ref.QualifiedName()
	}
	return a.SimpleName() == ref.SimpleName()
}

func validateName(name string) error {
	if err := utils.ValidateAnnotationName(name); err != nil {
		return errors.NewInvalidNameError(name, reasonOf(err))
	}
	return nil
}
