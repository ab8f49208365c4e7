package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// SyntaxError represents a failure to parse source text
type SyntaxError struct {
	*BaseError
	Token string // offending token, when known
}

// NewSyntaxError creates a new syntax error
func NewSyntaxError(message string) *SyntaxError {
	return &SyntaxError{
		BaseError: New(SyntaxErrorCode, message),
	}
}

// NewSyntaxErrorAt creates a syntax error with a location
func NewSyntaxErrorAt(message string, loc SourceLocation) *SyntaxError {
	err := NewSyntaxError(message)
	err.WithLocation(loc)
	err.WithSuggestion(syntaxSuggestion(message))
	return err
}

// WithToken records the offending token
func (e *SyntaxError) WithToken(token string) *SyntaxError {
	e.Token = token
	e.WithContext("token", token)
	return e
}

// WithLocation adds location information to the error
func (e *SyntaxError) WithLocation(loc SourceLocation) *SyntaxError {
	e.BaseError.WithLocation(loc)
	return e
}

func syntaxSuggestion(message string) string {
	switch {
	case strings.Contains(message, `"}"`):
		return "Check that every '{' has a matching '}'"
	case strings.Contains(message, `")"`):
		return "Check that annotation arguments and parameter lists are closed with ')'"
	case strings.Contains(message, `";"`):
		return "Field declarations and imports must end with ';'"
	default:
		return "Only package, import, class/interface, field, method and annotation syntax is understood"
	}
}

// WrapParseError wraps an error with a "failed to parse" message
func WrapParseError(item string, cause error) *SyntaxError {
	return &SyntaxError{
		BaseError: Wrap(SyntaxErrorCode, fmt.Sprintf("failed to parse %s", item), cause),
	}
}

// IsSyntax reports whether err is or wraps a *SyntaxError
func IsSyntax(err error) bool {
	var target *SyntaxError
	return stderrors.As(err, &target)
}
