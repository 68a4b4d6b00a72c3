// File: error_test.go
// Title: Error Module Tests
// Description: Tests for error creation, wrapping, code lookup through
//              chains and serialization.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial test implementation

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	msg := "test error message"
	err := New(msg)

	if err == nil {
		t.Fatal("New() returned nil")
	}

	if err.Error() != msg {
		t.Errorf("Error() = %q, want %q", err.Error(), msg)
	}

	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}

	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}

	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should not be zero")
	}

	trace := err.StackTrace()
	if len(trace) == 0 {
		t.Fatal("StackTrace() should not be empty")
	}
	if !strings.HasSuffix(trace[0].Function, "TestNew") {
		t.Errorf("first frame = %q, want the caller of New", trace[0].Function)
	}
}

func TestNewf(t *testing.T) {
	err := Newf("missing key %d", 1)
	if err.Error() != "missing key 1" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		message  string
		wantNil  bool
		wantMsg  string
		wantCode Code
	}{
		{
			name:    "wrap nil error",
			err:     nil,
			message: "wrapper message",
			wantNil: true,
		},
		{
			name:     "wrap standard error",
			err:      errors.New("original error"),
			message:  "wrapper message",
			wantMsg:  "wrapper message: original error",
			wantCode: CodeUnknown,
		},
		{
			name:     "wrap structured error",
			err:      New("map lacks key 0").WithCode(CodeIncompleteMap),
			message:  "wrapper message",
			wantMsg:  "wrapper message: map lacks key 0",
			wantCode: CodeIncompleteMap,
		},
		{
			name:     "wrap structured error behind fmt wrapping",
			err:      fmt.Errorf("outer: %w", New("bad").WithCode(CodeInvalidCharacter)),
			message:  "wrapper message",
			wantMsg:  "wrapper message: outer: bad",
			wantCode: CodeInvalidCharacter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := Wrap(tt.err, tt.message)

			if tt.wantNil {
				if wrapped != nil {
					t.Errorf("Wrap() = %v, want nil", wrapped)
				}
				return
			}

			if wrapped == nil {
				t.Fatal("Wrap() returned nil")
			}

			if wrapped.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", wrapped.Error(), tt.wantMsg)
			}

			if wrapped.Code() != tt.wantCode {
				t.Errorf("Code() = %v, want %v", wrapped.Code(), tt.wantCode)
			}

			if !errors.Is(wrapped, tt.err) {
				t.Error("wrapped error should match its cause with errors.Is")
			}
		})
	}
}

func TestWrapKeepsDetails(t *testing.T) {
	inner := New("inner").WithCode(CodeInvalidCharacter).WithDetail("value", "X")
	outer := Wrap(inner, "outer").WithDetail("command", "string-to-bool")

	details := outer.Details()
	if details["value"] != "X" {
		t.Errorf("details[value] = %v, want X", details["value"])
	}
	if details["command"] != "string-to-bool" {
		t.Errorf("details[command] = %v, want string-to-bool", details["command"])
	}

	if _, ok := inner.Detail("command"); ok {
		t.Error("wrapping must not modify the inner error's details")
	}
}

func TestWithCodeSetsSeverity(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{CodeIncompleteMap, SeverityLow},
		{CodeInvalidCharacter, SeverityLow},
		{CodeConfigError, SeverityHigh},
		{CodeEntropyUnavailable, SeverityHigh},
		{CodeInternal, SeverityCritical},
		{CodeNotFound, SeverityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			err := New("x").WithCode(tt.code)
			if err.Severity() != tt.want {
				t.Errorf("Severity() = %v, want %v", err.Severity(), tt.want)
			}
		})
	}

	explicit := New("x").WithSeverity(SeverityCritical).WithCode(CodeInvalidInput)
	if explicit.Severity() != SeverityCritical {
		t.Errorf("explicit severity overridden: got %v", explicit.Severity())
	}
}

func TestHasCode(t *testing.T) {
	base := New("incomplete").WithCode(CodeIncompleteMap)
	chain := fmt.Errorf("cli: %w", Wrap(base, "bool-to-string failed").WithCode(CodeInvalidInput))

	if !HasCode(chain, CodeIncompleteMap) {
		t.Error("HasCode should find the inner code")
	}
	if !HasCode(chain, CodeInvalidInput) {
		t.Error("HasCode should find the wrapper code")
	}
	if HasCode(chain, CodeConfigError) {
		t.Error("HasCode found a code that is not in the chain")
	}
	if HasCode(nil, CodeUnknown) {
		t.Error("HasCode(nil) should be false")
	}
	if HasCode(errors.New("plain"), CodeUnknown) {
		t.Error("HasCode on a plain error should be false")
	}
}

func TestGetCodeAndSeverity(t *testing.T) {
	if GetCode(errors.New("plain")) != CodeUnknown {
		t.Error("GetCode(plain) should be CodeUnknown")
	}
	if GetSeverity(errors.New("plain")) != SeverityMedium {
		t.Error("GetSeverity(plain) should be SeverityMedium")
	}

	err := fmt.Errorf("ctx: %w", New("x").WithCode(CodeConfigError))
	if GetCode(err) != CodeConfigError {
		t.Errorf("GetCode() = %v, want %v", GetCode(err), CodeConfigError)
	}
	if GetSeverity(err) != SeverityHigh {
		t.Errorf("GetSeverity() = %v, want %v", GetSeverity(err), SeverityHigh)
	}
}

func TestIsMatchesByCode(t *testing.T) {
	err := fmt.Errorf("ctx: %w", New("invalid char provided").WithCode(CodeInvalidCharacter))

	if !errors.Is(err, New("").WithCode(CodeInvalidCharacter)) {
		t.Error("errors.Is should match on code")
	}
	if errors.Is(err, New("").WithCode(CodeIncompleteMap)) {
		t.Error("errors.Is matched a different code")
	}
	if errors.Is(err, New("")) {
		t.Error("an uncoded target must not match")
	}
}

func TestRootCause(t *testing.T) {
	root := errors.New("root cause")
	top := Wrap(Wrap(root, "middle"), "top")

	if top.RootCause() != root {
		t.Errorf("RootCause() = %v, want %v", top.RootCause(), root)
	}

	alone := New("alone")
	if alone.RootCause() != alone {
		t.Error("RootCause() of an unwrapped error should be itself")
	}
}

func TestString(t *testing.T) {
	err := New("character map is incomplete").
		WithCode(CodeIncompleteMap).
		WithOperation("stringx.BooleanToString").
		WithDetail("b", 2).
		WithDetail("a", 1)

	s := err.String()
	for _, want := range []string{
		"Error: character map is incomplete",
		"Code: INCOMPLETE_MAP",
		"Severity: low",
		"Operation: stringx.BooleanToString",
		"Details: {a=1, b=2}",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q in:\n%s", want, s)
		}
	}
}

func TestMarshalJSON(t *testing.T) {
	err := Wrap(errors.New("boom"), "config load failed").
		WithCode(CodeConfigError).
		WithOperation("config.Load").
		WithDetail("filePath", "strutil.toml")

	data, jerr := json.Marshal(err)
	if jerr != nil {
		t.Fatalf("json.Marshal() error = %v", jerr)
	}

	var decoded map[string]interface{}
	if jerr := json.Unmarshal(data, &decoded); jerr != nil {
		t.Fatalf("json.Unmarshal() error = %v", jerr)
	}

	if decoded["code"] != "CONFIG_ERROR" {
		t.Errorf("code = %v", decoded["code"])
	}
	if decoded["severity"] != "high" {
		t.Errorf("severity = %v", decoded["severity"])
	}
	if decoded["operation"] != "config.Load" {
		t.Errorf("operation = %v", decoded["operation"])
	}
	if decoded["cause"] != "boom" {
		t.Errorf("cause = %v", decoded["cause"])
	}
	if _, ok := decoded["stack_trace"]; !ok {
		t.Error("stack_trace missing")
	}
}

func TestCodeIsValidation(t *testing.T) {
	if !CodeIncompleteMap.IsValidation() || !CodeInvalidCharacter.IsValidation() {
		t.Error("marker map codes should be validation codes")
	}
	if CodeConfigError.IsValidation() || CodeEntropyUnavailable.IsValidation() {
		t.Error("environmental codes should not be validation codes")
	}
}

func TestSeverityString(t *testing.T) {
	tests := map[Severity]string{
		SeverityLow:      "low",
		SeverityMedium:   "medium",
		SeverityHigh:     "high",
		SeverityCritical: "critical",
		Severity(42):     "unknown",
	}
	for s, want := range tests {
		if s.String() != want {
			t.Errorf("Severity(%d).String() = %q, want %q", int(s), s.String(), want)
		}
	}

	if SeverityMedium.ShouldAlert() || !SeverityHigh.ShouldAlert() {
		t.Error("ShouldAlert threshold should be SeverityHigh")
	}
}
