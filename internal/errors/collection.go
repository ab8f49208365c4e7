package errors

import (
	"fmt"
	"strings"
)

// MultipleErrors collects failures that are reported together, such as
// every bad entry of a configuration file.
type MultipleErrors struct {
	Errors []SrcError
}

func (e *MultipleErrors) Error() string {
	switch len(e.Errors) {
	case 0:
		return "no errors"
	case 1:
		return e.Errors[0].Error()
	}
	lines := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		lines[i] = fmt.Sprintf("  %d. %s", i+1, err)
	}
	return fmt.Sprintf("multiple errors (%d total):\n%s", len(e.Errors), strings.Join(lines, "\n"))
}

// Unwrap exposes every collected error to errors.Is and errors.As
func (e *MultipleErrors) Unwrap() []error {
	errs := make([]error, len(e.Errors))
	for i, err := range e.Errors {
		errs[i] = err
	}
	return errs
}

func (e *MultipleErrors) Add(err SrcError) {
	e.Errors = append(e.Errors, err)
}

func (e *MultipleErrors) Count() int {
	return len(e.Errors)
}

// HasCode reports whether any collected error has code
func (e *MultipleErrors) HasCode(code ErrorCode) bool {
	return len(e.ByCode(code)) > 0
}

// ByCode returns the collected errors with code, in order
func (e *MultipleErrors) ByCode(code ErrorCode) []SrcError {
	var out []SrcError
	for _, err := range e.Errors {
		if err.ErrorCode() == code {
			out = append(out, err)
		}
	}
	return out
}

// ErrOrNil returns nil when nothing was collected, so a nil
// *MultipleErrors never ends up inside a non-nil error interface.
func (e *MultipleErrors) ErrOrNil() error {
	if e == nil || len(e.Errors) == 0 {
		return nil
	}
	return e
}

// AddToMultiple adds err to *multiple, allocating the collection on
// first use
func AddToMultiple(multiple **MultipleErrors, err SrcError) {
	if *multiple == nil {
		*multiple = &MultipleErrors{}
	}
	(*multiple).Add(err)
}
