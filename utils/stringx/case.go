// File: case.go
// Title: Separator Based Case Conversion
// Description: Converts between separator-delimited identifiers (snake_case,
//              kebab-case, dot.case) and camelCase.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation of Camelize and Uncamelize

package stringx

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultSeparator is used by Camelize and Uncamelize when the separator
// argument is empty.
const DefaultSeparator = "_"

// Camelize converts a separator-delimited string to camelCase. Each segment
// gets an upper-case first letter, the separators are dropped and the first
// letter of the result is lower-cased. Segments are otherwise left alone, so
// "some_HTTP_thing" becomes "someHTTPThing".
//
// Example: Camelize("do-something-else", "-") -> "doSomethingElse"
func Camelize(input, separator string) string {
	if separator == "" {
		separator = DefaultSeparator
	}

	var result strings.Builder
	result.Grow(len(input))

	for _, segment := range strings.Split(input, separator) {
		result.WriteString(upperFirst(segment))
	}

	return lowerFirst(result.String())
}

// Uncamelize inserts separator before every ASCII upper-case letter except
// one in first position, then lower-cases the whole string.
//
// Example: Uncamelize("doSomethingElse", "-") -> "do-something-else"
//
// Consecutive capitals are split letter by letter ("HTTPServer" becomes
// "h_t_t_p_server"), so Uncamelize only inverts Camelize for input that
// Camelize produced with the same separator.
func Uncamelize(input, separator string) string {
	if separator == "" {
		separator = DefaultSeparator
	}

	var result strings.Builder
	result.Grow(len(input) + len(input)/2)

	for i := 0; i < len(input); i++ {
		c := input[i]
		if i > 0 && c >= 'A' && c <= 'Z' {
			result.WriteString(separator)
		}
		result.WriteByte(c)
	}

	return strings.ToLower(result.String())
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r == utf8.RuneError {
		return s
	}
	upper := unicode.ToUpper(r)
	if upper == r {
		return s
	}
	return string(upper) + s[size:]
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r == utf8.RuneError {
		return s
	}
	lower := unicode.ToLower(r)
	if lower == r {
		return s
	}
	return string(lower) + s[size:]
}
