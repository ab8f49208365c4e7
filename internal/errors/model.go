package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// InvalidNameError is returned when a declaration or annotation name is not a valid
// identifier. It is raised before any state is changed.
type InvalidNameError struct {
	*BaseError
	Kind   string // what was being named
	Name   string // the rejected name
	Reason string // which rule it broke
}

// NewInvalidNameError creates an invalid annotation name error
func NewInvalidNameError(name, reason string) *InvalidNameError {
	return NewInvalidIdentifierError("annotation", name, reason)
}

// NewInvalidIdentifierError creates an invalid name error for any kind of
// declaration (annotation, class, field, method, parameter)
func NewInvalidIdentifierError(kind, name, reason string) *InvalidNameError {
	err := &InvalidNameError{
		BaseError: New(InvalidNameErrorCode, fmt.Sprintf("invalid %s name %q: %s", kind, name, reason)),
		Kind:      kind,
		Name:      name,
		Reason:    reason,
	}
	err.WithContext("kind", kind)
	err.WithContext("name", name)
	err.WithSuggestion(nameSuggestion(name))
	return err
}

// WithLocation adds location information to the error
func (e *InvalidNameError) WithLocation(loc SourceLocation) *InvalidNameError {
	e.BaseError.WithLocation(loc)
	return e
}

func nameSuggestion(name string) string {
	switch {
	case strings.TrimSpace(name) == "":
		return "Names cannot be empty. Example: Deprecated or javax.persistence.Entity"
	case strings.HasPrefix(name, "@"):
		return "Leave off the leading '@'; it is added when the annotation is rendered"
	case strings.ContainsAny(name, " \t\r\n"):
		return "Names cannot contain whitespace"
	default:
		return "Use letters, digits, '_' or '$', not starting with a digit; separate packages with '.'"
	}
}

// LookupError is returned when a value cannot be found or decoded
type LookupError struct {
	*BaseError
	Key     string // value name or annotation name that was looked up
	Literal string // stored literal text, if any
}

// NewLookupError creates a lookup error
func NewLookupError(key, message string) *LookupError {
	err := &LookupError{
		BaseError: New(LookupErrorCode, message),
		Key:       key,
	}
	err.WithContext("key", key)
	return err
}

// NewMissingValueError reports that no value is stored under key
func NewMissingValueError(annotation, key string) *LookupError {
	err := NewLookupError(key, fmt.Sprintf("annotation @%s has no value %q", annotation, key))
	err.WithContext("annotation", annotation)
	err.WithSuggestion(fmt.Sprintf("Set it first, e.g. %s = <literal>", key))
	return err
}

// NewEnumLookupError reports that literal does not name a constant of enumType
func NewEnumLookupError(key, literal, enumType, reason string) *LookupError {
	err := NewLookupError(key, fmt.Sprintf("value %q (%s) is not a constant of %s: %s", key, literal, enumType, reason))
	err.Literal = literal
	err.WithContext("enum_type", enumType)
	err.WithContext("literal", literal)
	return err
}

// WithSuggestion adds a helpful suggestion for fixing the error
func (e *LookupError) WithSuggestion(suggestion string) *LookupError {
	e.BaseError.WithSuggestion(suggestion)
	return e
}

// IsInvalidName reports whether err is or wraps an *InvalidNameError
func IsInvalidName(err error) bool {
	var target *InvalidNameError
	return stderrors.As(err, &target)
}

// IsLookup reports whether err is or wraps a *LookupError
func IsLookup(err error) bool {
	var target *LookupError
	return stderrors.As(err, &target)
}
