// Package error provides the structured error type shared by the utility
// packages.
//
// Package: error
// Title: Structured Error Handling
// Description: Errors carry a machine-readable Code, a Severity derived from
//              that code, free-form details and the stack at creation. The
//              stringx helpers report their two validation failures through
//              it, and the strutil command uses the code and severity to
//              decide how a failure is logged.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation
//
// Usage:
//
//	import coreerror "github.com/murtho/utility/core/error"
//
//	err := coreerror.New("character map is incomplete").
//		WithCode(coreerror.CodeIncompleteMap).
//		WithOperation("stringx.BooleanToString").
//		WithDetail("missing_keys", []int{0})
//
//	if coreerror.HasCode(err, coreerror.CodeIncompleteMap) {
//		// caller supplied a bad map
//	}
//
// The package name shadows the builtin error identifier, so importers alias
// it (coreerror throughout this module).
package error
