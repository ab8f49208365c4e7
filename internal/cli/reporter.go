package cli

import (
	stderrors "errors"
	"sort"
	"strings"

	"github.com/toyz/srcmodel/internal/errors"
	"github.com/toyz/srcmodel/internal/utils"
)

// ErrorReporter turns errors into user-facing diagnostics
type ErrorReporter struct {
	diagnostics *utils.DiagnosticSystem
	verbose     bool
}

// NewErrorReporter creates a new error reporter
func NewErrorReporter(diagnostics *utils.DiagnosticSystem, verbose bool) *ErrorReporter {
	return &ErrorReporter{
		diagnostics: diagnostics,
		verbose:     verbose,
	}
}

// Report prints err with its location and suggestions. Collected errors
// are reported one by one.
func (r *ErrorReporter) Report(err error) {
	var multiple *errors.MultipleErrors
	if stderrors.As(err, &multiple) && multiple.Count() > 1 {
		r.diagnostics.Error("%d problems found", multiple.Count())
		r.diagnostics.Indent()
		for _, e := range multiple.Errors {
			r.reportOne(e)
		}
		r.diagnostics.Unindent()
		return
	}
	r.reportOne(err)
}

func (r *ErrorReporter) reportOne(err error) {
	var srcErr errors.SrcError
	if !stderrors.As(err, &srcErr) {
		r.diagnostics.Error("%v", err)
		return
	}

	r.diagnostics.Error("%s: %v", srcErr.ErrorCode(), err)

	// In verbose mode, show the context and underlying cause
	if r.verbose {
		r.printContext(srcErr.Context())
		if cause := srcErr.Unwrap(); cause != nil {
			r.diagnostics.Verbose("caused by: %v", cause)
		}
	}
	r.diagnostics.Suggestions(srcErr.Suggestions())
}

func (r *ErrorReporter) printContext(context map[string]interface{}) {
	keys := make([]string, 0, len(context))
	for key := range context {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		r.diagnostics.Verbose("%s: %v", formatContextKey(key), context[key])
	}
}

// formatContextKey converts snake_case keys to Title Case
func formatContextKey(key string) string {
	parts := strings.Split(key, "_")
	for i, part := range parts {
		parts[i] = utils.Capitalize(part)
	}
	return strings.Join(parts, " ")
}
