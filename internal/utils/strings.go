package utils

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var quotedPattern = regexp.MustCompile(`"(.*)"`)

// Capitalize upper-cases the first character and lower-cases the rest:
// "input" -> "Input", "hELLO" -> "Hello". Empty input is returned as is.
func Capitalize(input string) string {
	if input == "" {
		return input
	}
	_, size := utf8.DecodeRuneInString(input)
	return strings.ToUpper(input[:size]) + strings.ToLower(input[size:])
}

// Unquote strips one layer of double quotes. The match is greedy, so
// `"a" + "b"` becomes `a" + "b`; escaped interior quotes are not
// understood.
func Unquote(value string) string {
	return quotedPattern.ReplaceAllString(value, "$1")
}

// Enquote wraps value in double quotes without escaping.
func Enquote(value string) string {
	return `"` + value + `"`
}

// UnquoteOK is Unquote for optional values: absent in, absent out.
func UnquoteOK(value string, ok bool) (string, bool) {
	if !ok {
		return "", false
	}
	return Unquote(value), true
}
