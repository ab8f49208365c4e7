package utils

import (
	"fmt"
	"strings"
	"unicode"
)

// ValidationError describes why a value was rejected. Value is the
// rejected input.
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Validator checks one rule
type Validator[T any] func(T) error

// ValidatorChain applies validators in order, stopping at the first failure
type ValidatorChain[T any] struct {
	validators []Validator[T]
}

func NewValidatorChain[T any](validators ...Validator[T]) *ValidatorChain[T] {
	return &ValidatorChain[T]{validators: validators}
}

func (vc *ValidatorChain[T]) Validate(value T) error {
	for _, validator := range vc.validators {
		if err := validator(value); err != nil {
			return err
		}
	}
	return nil
}

// NotEmpty validates that a string is not empty
func NotEmpty(field string) Validator[string] {
	return func(value string) error {
		if value == "" {
			return ValidationError{
				Field:   field,
				Value:   value,
				Message: "cannot be empty",
			}
		}
		return nil
	}
}

// ValidIdentifier validates a single identifier segment
func ValidIdentifier(field string) Validator[string] {
	return func(value string) error {
		for i, r := range value {
			if !isIdentifierRune(r, i == 0) {
				return ValidationError{
					Field:   field,
					Value:   value,
					Message: describeBadRune(r, i == 0),
				}
			}
		}
		return nil
	}
}

// ValidQualifiedName validates a dot-separated sequence of identifiers
func ValidQualifiedName(field string) Validator[string] {
	segment := ValidIdentifier(field)
	return func(value string) error {
		for _, part := range strings.Split(value, ".") {
			if part == "" {
				return ValidationError{
					Field:   field,
					Value:   value,
					Message: "empty name segment between '.' separators",
				}
			}
			if err := segment(part); err != nil {
				return err
			}
		}
		return nil
	}
}

// ValidateAnnotationName is the rule applied to every annotation name
func ValidateAnnotationName(name string) error {
	return NewValidatorChain(
		NotEmpty("name"),
		ValidQualifiedName("name"),
	).Validate(name)
}

// IsIdentifier reports whether s is a single valid identifier
func IsIdentifier(s string) bool {
	return s != "" && ValidIdentifier("")(s) == nil
}

// IsQualifiedName reports whether s is one or more identifiers joined by '.'
func IsQualifiedName(s string) bool {
	return s != "" && ValidQualifiedName("")(s) == nil
}

// SimpleName returns the part of a qualified name after the last '.'
func SimpleName(qualified string) string {
	if i := strings.LastIndex(qualified, "."); i >= 0 {
		return qualified[i+1:]
	}
	return qualified
}

// PackageOf returns the part of a qualified name before the last '.'
func PackageOf(qualified string) string {
	if i := strings.LastIndex(qualified, "."); i >= 0 {
		return qualified[:i]
	}
	return ""
}

func isIdentifierRune(r rune, first bool) bool {
	if r == '_' || r == '$' || unicode.Is(unicode.Sc, r) || unicode.IsLetter(r) {
		return true
	}
	return !first && unicode.IsDigit(r)
}

func describeBadRune(r rune, first bool) string {
	switch {
	case unicode.IsSpace(r):
		return "whitespace is not allowed"
	case first && unicode.IsDigit(r):
		return "must not start with a digit"
	default:
		return fmt.Sprintf("illegal character %q", r)
	}
}
