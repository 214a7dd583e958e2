package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"":        Info,
		"debug":   Debug,
		" WARN ":  Warn,
		"warning": Warn,
		"error":   Error,
		"bogus":   Info,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q)=%v want %v", in, got, want)
		}
	}
}

func TestJSONLogger_FieldsAndLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Info, Format: FormatJSON, App: "cats-form", Out: &buf})

	l.Debug("hidden", nil)
	l.With(map[string]any{"view": "v1", " ": "dropped"}).Warn("create failed", map[string]any{
		"error": errors.New("boom"),
		"count": 2,
	})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d: %q", len(lines), buf.String())
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("invalid json line: %v", err)
	}
	if entry["level"] != "warn" || entry["message"] != "create failed" {
		t.Fatalf("unexpected entry %v", entry)
	}
	if entry["app"] != "cats-form" || entry["view"] != "v1" || entry["error"] != "boom" {
		t.Fatalf("missing fields in %v", entry)
	}
	if _, ok := entry[" "]; ok {
		t.Fatalf("blank key should be dropped: %v", entry)
	}
}

func TestTextLogger(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Debug, Format: FormatText, Out: &buf})
	l.Info("starting server", map[string]any{"addr": "127.0.0.1:8080"})

	out := buf.String()
	if !strings.Contains(out, "starting server") || !strings.Contains(out, "addr=127.0.0.1:8080") {
		t.Fatalf("unexpected text output %q", out)
	}
}
