package utils

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"
)

// DiagnosticLevel selects which messages a DiagnosticSystem prints
type DiagnosticLevel int

const (
	DiagnosticSilent DiagnosticLevel = iota
	DiagnosticError
	DiagnosticInfo
	DiagnosticVerbose
)

// DiagnosticSystem writes leveled, optionally colored messages for the
// CLI. Messages go to stderr so command results on stdout can be piped.
type DiagnosticSystem struct {
	level     DiagnosticLevel
	useColors bool
	errorOut  io.Writer
	indent    int
}

// NewDiagnosticSystem creates a system writing to stderr
func NewDiagnosticSystem(level DiagnosticLevel) *DiagnosticSystem {
	return &DiagnosticSystem{
		level:     level,
		useColors: shouldUseColors(),
		errorOut:  os.Stderr,
	}
}

// NewQuietDiagnostics only shows errors
func NewQuietDiagnostics() *DiagnosticSystem {
	return NewDiagnosticSystem(DiagnosticError)
}

// WithWriter redirects the messages
func (d *DiagnosticSystem) WithWriter(w io.Writer) *DiagnosticSystem {
	d.errorOut = w
	return d
}

// WithColors forces colored output on or off
func (d *DiagnosticSystem) WithColors(enabled bool) *DiagnosticSystem {
	d.useColors = enabled
	return d
}

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	successColor = color.New(color.FgGreen)
	verboseColor = color.New(color.FgHiBlack)
	hintColor    = color.New(color.FgYellow)
)

// Error is shown unless the system is silent
func (d *DiagnosticSystem) Error(format string, args ...interface{}) {
	if d.level >= DiagnosticError {
		d.writeMessage("ERROR", errorColor, format, args...)
	}
}

// Success reports a completed change, such as a rewritten file
func (d *DiagnosticSystem) Success(format string, args ...interface{}) {
	if d.level >= DiagnosticInfo {
		d.writeMessage("OK", successColor, format, args...)
	}
}

// Verbose is shown with --verbose only
func (d *DiagnosticSystem) Verbose(format string, args ...interface{}) {
	if d.level >= DiagnosticVerbose {
		d.writeMessage("VERBOSE", verboseColor, format, args...)
	}
}

// Suggestions lists fix hints under the previous error
func (d *DiagnosticSystem) Suggestions(hints []string) {
	if d.level < DiagnosticError {
		return
	}
	for _, hint := range hints {
		fmt.Fprintf(d.errorOut, "%s  %s %s\n", d.prefix(), d.paint(hintColor, "hint:"), hint)
	}
}

// Indent nests the following messages one level deeper
func (d *DiagnosticSystem) Indent() {
	d.indent++
}

func (d *DiagnosticSystem) Unindent() {
	if d.indent > 0 {
		d.indent--
	}
}

// Summary prints statistics in verbose mode, keys sorted
func (d *DiagnosticSystem) Summary(title string, stats map[string]interface{}) {
	if d.level < DiagnosticVerbose {
		return
	}
	keys := make([]string, 0, len(stats))
	for key := range stats {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	fmt.Fprintf(d.errorOut, "%s%s\n", d.prefix(), title)
	for _, key := range keys {
		fmt.Fprintf(d.errorOut, "%s   %s: %v\n", d.prefix(), key, stats[key])
	}
}

func (d *DiagnosticSystem) writeMessage(level string, c *color.Color, format string, args ...interface{}) {
	fmt.Fprintf(d.errorOut, "%s%s %s\n", d.prefix(), d.paint(c, "["+level+"]"), fmt.Sprintf(format, args...))
}

func (d *DiagnosticSystem) paint(c *color.Color, s string) string {
	if !d.useColors {
		return s
	}
	// fatih/color disables itself when stdout is not a terminal; a forced
	// setting has to be applied per call.
	painted := *c
	painted.EnableColor()
	return painted.Sprint(s)
}

func (d *DiagnosticSystem) prefix() string {
	return strings.Repeat("  ", d.indent)
}

// shouldUseColors honors NO_COLOR and FORCE_COLOR before terminal detection
func shouldUseColors() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	return !color.NoColor
}
