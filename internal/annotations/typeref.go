package annotations

import (
	"github.com/toyz/srcmodel/internal/errors"
	"github.com/toyz/srcmodel/internal/utils"
)

// TypeRef names a declared type, for example org.junit.Test.
type TypeRef struct {
	Package string // dot-separated package, empty for the default package
	Name    string // simple name
}

// NewTypeRef parses and validates a simple or qualified type name
func NewTypeRef(qualified string) (TypeRef, error) {
	if err := utils.ValidateAnnotationName(qualified); err != nil {
		return TypeRef{}, errors.NewInvalidNameError(qualified, reasonOf(err))
	}
	return TypeRef{Package: utils.PackageOf(qualified), Name: utils.SimpleName(qualified)}, nil
}

// MustTypeRef is NewTypeRef for names known to be valid
func MustTypeRef(qualified string) TypeRef {
	ref, err := NewTypeRef(qualified)
	if err != nil {
		panic(err)
	}
	return ref
}

// SimpleName returns the name without its package
func (t TypeRef) SimpleName() string {
	return t.Name
}

// QualifiedName returns package + "." + name, or just the name
func (t TypeRef) QualifiedName() string {
	if t.Package == "" {
		return t.Name
	}
	return t.Package + "." + t.Name
}

// IsZero reports whether the reference is unset
func (t TypeRef) IsZero() bool {
	return t.Name == "" && t.Package == ""
}

func (t TypeRef) String() string {
	return t.QualifiedName()
}

func (t TypeRef) validate() error {
	name := t.QualifiedName()
	if err := utils.ValidateAnnotationName(name); err != nil {
		return errors.NewInvalidNameError(name, reasonOf(err))
	}
	return nil
}

func reasonOf(err error) string {
	if v, ok := err.(utils.ValidationError); ok {
		return v.Message
	}
	return err.Error()
}
