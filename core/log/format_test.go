package log

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	coreerror "github.com/murtho/utility/core/error"
)

func fixedEntry() *Entry {
	entry := NewEntry(LevelWarn, "secure random source unavailable")
	entry.Timestamp = time.Date(2026, 10, 19, 8, 30, 0, 0, time.UTC)
	entry.Logger = "stringx"
	entry.WithField("length", 16).WithField("block", 0)
	return entry
}

func TestTextFormatter(t *testing.T) {
	f := NewTextFormatter()
	out, err := f.Format(fixedEntry())
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := "08:30:00 [WRN] {stringx} secure random source unavailable [block=0 length=16]\n"
	if string(out) != want {
		t.Errorf("Format() = %q, want %q", out, want)
	}
}

func TestTextFormatterWithoutTimestamp(t *testing.T) {
	f := &TextFormatter{DisableTimestamp: true}
	entry := NewEntry(LevelError, "failed")
	entry.Error = errors.New("boom")
	entry.WithCaller("run", "main.go", 12)

	out, err := f.Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := "[ERR] failed error=\"boom\" caller=main.go:12\n"
	if string(out) != want {
		t.Errorf("Format() = %q, want %q", out, want)
	}
}

func TestJSONFormatter(t *testing.T) {
	f := NewJSONFormatter()
	entry := fixedEntry()
	entry.Error = coreerror.New("invalid char provided").WithCode(coreerror.CodeInvalidCharacter)

	out, err := f.Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.HasSuffix(string(out), "\n") {
		t.Error("JSON output should end with a newline")
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}

	checks := map[string]interface{}{
		"level":     "warn",
		"message":   "secure random source unavailable",
		"logger":    "stringx",
		"timestamp": "2026-10-19T08:30:00Z",
		"length":    float64(16),
		"error":     "invalid char provided",
	}
	for k, want := range checks {
		if decoded[k] != want {
			t.Errorf("%s = %v, want %v", k, decoded[k], want)
		}
	}

	details, ok := decoded["error_details"].(map[string]interface{})
	if !ok {
		t.Fatalf("error_details missing: %v", decoded)
	}
	if details["code"] != "INVALID_CHARACTER" {
		t.Errorf("error_details.code = %v", details["code"])
	}
	if _, ok := details["stack_trace"]; ok {
		t.Error("stack traces should not be copied into log lines")
	}
}

func TestJSONFormatterReservedKeysWin(t *testing.T) {
	entry := fixedEntry()
	entry.WithField("level", "spoofed")

	out, err := NewJSONFormatter().Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if decoded["level"] != "warn" {
		t.Errorf("level = %v, want warn", decoded["level"])
	}
}

func TestGetFormatter(t *testing.T) {
	if _, ok := GetFormatter(FormatJSON).(*JSONFormatter); !ok {
		t.Error("GetFormatter(FormatJSON) should return *JSONFormatter")
	}
	if _, ok := GetFormatter(FormatText).(*TextFormatter); !ok {
		t.Error("GetFormatter(FormatText) should return *TextFormatter")
	}
	if _, ok := GetFormatter(Format(42)).(*TextFormatter); !ok {
		t.Error("unknown formats should fall back to text")
	}
}
