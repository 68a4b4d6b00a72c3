// File: stringx.go
// Title: Prefix, Suffix and Delimiter Helpers
// Description: Byte-exact prefix and suffix predicates and extraction of the
//              first or last delimiter separated segment of a string.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package stringx

import (
	"strings"
)

// StartsWith reports whether the first len(needle) bytes of haystack equal
// needle. An empty needle always matches.
func StartsWith(haystack, needle string) bool {
	return len(haystack) >= len(needle) && haystack[:len(needle)] == needle
}

// EndsWith reports whether the last len(needle) bytes of haystack equal
// needle. An empty needle always matches.
func EndsWith(haystack, needle string) bool {
	if len(needle) == 0 {
		return true
	}
	return len(haystack) >= len(needle) && haystack[len(haystack)-len(needle):] == needle
}

// Start returns the part of value before the first occurrence of delimiter,
// or value itself when the delimiter does not occur or is empty.
//
// Example: Start("template.html.twig", ".") -> "template"
func Start(value, delimiter string) string {
	if delimiter == "" {
		return value
	}
	if i := strings.Index(value, delimiter); i >= 0 {
		return value[:i]
	}
	return value
}

// End returns the part of value after the last occurrence of delimiter, or
// value itself when the delimiter does not occur or is empty.
//
// Example: End("template.html.twig", ".") -> "twig"
func End(value, delimiter string) string {
	if delimiter == "" {
		return value
	}
	if i := strings.LastIndex(value, delimiter); i >= 0 {
		return value[i+len(delimiter):]
	}
	return value
}
