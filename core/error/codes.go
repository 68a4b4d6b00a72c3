// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used to classify failures across the
//              utility packages and the strutil command line tool.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial code set for stringx, config and CLI

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Marker map conversion (stringx)
	CodeIncompleteMap    Code = "INCOMPLETE_MAP"
	CodeInvalidCharacter Code = "INVALID_CHARACTER"

	// Randomness
	CodeEntropyUnavailable Code = "ENTROPY_UNAVAILABLE"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeInvalidFormat    Code = "INVALID_FORMAT"
	CodeValueOutOfRange  Code = "VALUE_OUT_OF_RANGE"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValidation reports whether the code describes bad caller input rather
// than an environmental failure.
func (c Code) IsValidation() bool {
	switch c {
	case CodeInvalidInput, CodeIncompleteMap, CodeInvalidCharacter,
		CodeValidationFailed, CodeInvalidFormat, CodeValueOutOfRange:
		return true
	default:
		return false
	}
}
