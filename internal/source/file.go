// Package source holds the declaration model that annotations attach to:
// a compilation unit with its imports, classes, fields, methods and
// parameters. Every declaration embeds an annotations.Target.
package source

import (
	"slices"
	"strings"

	"github.com/toyz/srcmodel/internal/annotations"
	"github.com/toyz/srcmodel/internal/errors"
	"github.com/toyz/srcmodel/internal/utils"
)

// Import is one import declaration
type Import struct {
	Name     string // qualified name, or package name for wildcard imports
	Static   bool
	Wildcard bool
}

func (i Import) String() string {
	var b strings.Builder
	b.WriteString("import ")
	if i.Static {
		b.WriteString("static ")
	}
	b.WriteString(i.Name)
	if i.Wildcard {
		b.WriteString(".*")
	}
	b.WriteString(";")
	return b.String()
}

// File is one compilation unit
type File struct {
	Path    string // where it was read from, if anywhere
	Package string
	imports []Import
	classes []*Class
}

// NewFile creates an empty compilation unit in pkg
func NewFile(pkg string) *File {
	return &File{Package: pkg}
}

// Imports returns the imports in order
func (f *File) Imports() []Import {
	return slices.Clone(f.imports)
}

// AddImportDecl appends an import unless an identical one exists
func (f *File) AddImportDecl(imp Import) {
	if slices.Contains(f.imports, imp) {
		return
	}
	f.imports = append(f.imports, imp)
}

// AddImport imports ref unless it is already visible: same package,
// java.lang, an existing single-type or wildcard import. An import of a
// different type with the same simple name is left alone.
func (f *File) AddImport(ref annotations.TypeRef) {
	if ref.Package == "" || ref.Package == f.Package || ref.Package == "java.lang" {
		return
	}
	if f.HasImport(ref.QualifiedName()) {
		return
	}
	if q, ok := f.ResolveType(ref.SimpleName()); ok && q != ref.QualifiedName() {
		return
	}
	f.imports = append(f.imports, Import{Name: ref.QualifiedName()})
}

// HasImport reports whether qualified is imported, directly or by wildcard
func (f *File) HasImport(qualified string) bool {
	pkg := utils.PackageOf(qualified)
	for _, imp := range f.imports {
		if imp.Static {
			continue
		}
		if (!imp.Wildcard && imp.Name == qualified) || (imp.Wildcard && imp.Name == pkg) {
			return true
		}
	}
	return false
}

// ResolveType maps a simple type name to the qualified name given by a
// single-type import or a class declared in this file
func (f *File) ResolveType(simpleName string) (string, bool) {
	for _, imp := range f.imports {
		if !imp.Static && !imp.Wildcard && utils.SimpleName(imp.Name) == simpleName {
			return imp.Name, true
		}
	}
	for _, c := range f.classes {
		if c.Name == simpleName {
			if f.Package == "" {
				return c.Name, true
			}
			return f.Package + "." + c.Name, true
		}
	}
	return "", false
}

// Classes returns the top-level classes in order
func (f *File) Classes() []*Class {
	return slices.Clone(f.classes)
}

// AddClass appends a top-level class or interface
func (f *File) AddClass(kind Kind, name string) (*Class, error) {
	if err := validateIdentifier("class", name); err != nil {
		return nil, err
	}
	c := &Class{Kind: kind, Name: name, file: f}
	c.bind(f)
	f.classes = append(f.classes, c)
	return c, nil
}

// Class returns the top-level class named name
func (f *File) Class(name string) (*Class, bool) {
	for _, c := range f.classes {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}

func validateIdentifier(kind, name string) error {
	if err := utils.NewValidatorChain(utils.NotEmpty(kind), utils.ValidIdentifier(kind)).Validate(name); err != nil {
		reason := err.Error()
		if v, ok := err.(utils.ValidationError); ok {
			reason = v.Message
		}
		return errors.NewInvalidIdentifierError(kind, name, reason)
	}
	return nil
}
