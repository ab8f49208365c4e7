// Package errors defines the error types returned by srcmodel. Every
// error carries a code, an optional source location, context for
// verbose output and suggestions for the user.
package errors

import (
	stderrors "errors"
	"fmt"
)

// SrcError is implemented by every error this package creates
type SrcError interface {
	error
	ErrorCode() ErrorCode
	Location() SourceLocation
	Context() map[string]interface{}
	Suggestions() []string
	Unwrap() error
}

// ErrorCode classifies an error
type ErrorCode int

const (
	UnknownErrorCode ErrorCode = iota
	SyntaxErrorCode
	InvalidNameErrorCode
	LookupErrorCode
	ConfigurationErrorCode
	FileSystemErrorCode
)

// String returns the title shown to users in front of the message
func (c ErrorCode) String() string {
	switch c {
	case SyntaxErrorCode:
		return "syntax error"
	case InvalidNameErrorCode:
		return "invalid name"
	case LookupErrorCode:
		return "not found"
	case ConfigurationErrorCode:
		return "configuration error"
	case FileSystemErrorCode:
		return "file error"
	}
	return "error"
}

// CodeOf returns the code of the first SrcError in err's chain, or
// UnknownErrorCode for foreign errors.
func CodeOf(err error) ErrorCode {
	var srcErr SrcError
	if stderrors.As(err, &srcErr) {
		return srcErr.ErrorCode()
	}
	return UnknownErrorCode
}

// IsFileSystem reports whether err is a file system failure
func IsFileSystem(err error) bool {
	return CodeOf(err) == FileSystemErrorCode
}

// SourceLocation is a position in a source file. Line and Column are
// 1-based; zero means unknown.
type SourceLocation struct {
	File   string
	Line   int
	Column int
}

func (s SourceLocation) String() string {
	if s.IsEmpty() {
		return "unknown location"
	}
	file := s.File
	if file == "" {
		file = "<input>"
	}
	switch {
	case s.Line == 0:
		return file
	case s.Column == 0:
		return fmt.Sprintf("%s:%d", file, s.Line)
	}
	return fmt.Sprintf("%s:%d:%d", file, s.Line, s.Column)
}

// IsEmpty reports whether neither a file nor a line is known
func (s SourceLocation) IsEmpty() bool {
	return s.File == "" && s.Line == 0
}

// BaseError is the common SrcError implementation; the typed errors of
// this package embed it.
type BaseError struct {
	Code    ErrorCode
	Message string
	Loc     SourceLocation
	Cause   error
	details map[string]interface{}
	hints   []string
}

// Error formats as "location: message: cause", leaving out what is unknown
func (e *BaseError) Error() string {
	msg := e.Message
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	if e.Loc.IsEmpty() {
		return msg
	}
	return e.Loc.String() + ": " + msg
}

func (e *BaseError) ErrorCode() ErrorCode {
	return e.Code
}

func (e *BaseError) Location() SourceLocation {
	return e.Loc
}

// Context returns the details added with WithContext, never nil
func (e *BaseError) Context() map[string]interface{} {
	if e.details == nil {
		return map[string]interface{}{}
	}
	return e.details
}

func (e *BaseError) Suggestions() []string {
	return e.hints
}

func (e *BaseError) Unwrap() error {
	return e.Cause
}

// WithLocation sets where the error occurred
func (e *BaseError) WithLocation(loc SourceLocation) *BaseError {
	e.Loc = loc
	return e
}

// WithContext records a detail shown in verbose output
func (e *BaseError) WithContext(key string, value interface{}) *BaseError {
	if e.details == nil {
		e.details = make(map[string]interface{})
	}
	e.details[key] = value
	return e
}

// WithSuggestion appends a hint telling the user how to fix the problem
func (e *BaseError) WithSuggestion(suggestion string) *BaseError {
	e.hints = append(e.hints, suggestion)
	return e
}

// New creates an error with the given code
func New(code ErrorCode, message string) *BaseError {
	return &BaseError{Code: code, Message: message}
}

// Newf is New with a format string
func Newf(code ErrorCode, format string, args ...interface{}) *BaseError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap creates an error with the given code caused by cause
func Wrap(code ErrorCode, message string, cause error) *BaseError {
	return &BaseError{Code: code, Message: message, Cause: cause}
}
