// File: format_test.go
// Title: Formatter and Level Tests
// Description: Tests formatter output shapes and level/format parsing.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19

package log

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func testEntry() *Entry {
	e := NewEntry(LevelWarn, "command failed")
	e.Timestamp = time.Date(2026, 10, 19, 14, 30, 5, 0, time.UTC)
	e.Logger = "console"
	e.Fields["command"] = "add"
	e.Fields["arg"] = 2
	e.Error = errors.New("boom")
	return e
}

func TestTextFormatter(t *testing.T) {
	data, err := NewTextFormatter().Format(testEntry())
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := "14:30:05 [WRN] {console} command failed [arg=2 command=add] error=\"boom\"\n"
	if string(data) != want {
		t.Errorf("Format() = %q, want %q", data, want)
	}
}

func TestConsoleFormatter(t *testing.T) {
	f := NewConsoleFormatter()
	data, _ := f.Format(testEntry())
	if !strings.HasPrefix(string(data), LevelWarn.Color()) || !strings.HasSuffix(string(data), "\033[0m\n") {
		t.Errorf("Format() = %q, want colored line", data)
	}

	f.DisableColors = true
	data, _ = f.Format(testEntry())
	if strings.Contains(string(data), "\033[") {
		t.Errorf("Format() with colors disabled = %q", data)
	}
}

func TestJSONFormatter(t *testing.T) {
	data, err := NewJSONFormatter().Format(testEntry())
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	s := string(data)
	for _, want := range []string{`"level":"warn"`, `"logger":"console"`, `"command":"add"`, `"error":"boom"`, `"timestamp":"2026-10-19T14:30:05Z"`} {
		if !strings.Contains(s, want) {
			t.Errorf("Format() = %s, missing %s", s, want)
		}
	}
	if !strings.HasSuffix(s, "\n") {
		t.Error("JSON line should end with a newline")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"trace", LevelTrace, false},
		{"DEBUG", LevelDebug, false},
		{" info ", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"err", LevelError, false},
		{"loud", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	for _, name := range []string{"json", "text", "console"} {
		f, err := ParseFormat(name)
		if err != nil || f.String() != name {
			t.Errorf("ParseFormat(%q) = %v, %v", name, f, err)
		}
	}
	if _, err := ParseFormat("xml"); err == nil || err.Error() != "invalid format: xml" {
		t.Errorf("ParseFormat(xml) error = %v", err)
	}
}

func TestLevel_Strings(t *testing.T) {
	if LevelDebug.shortString() != "DBG" || LevelError.String() != "error" {
		t.Error("unexpected level names")
	}
	if Level(99).String() != "unknown" || Level(99).shortString() != "???" {
		t.Error("unknown level names")
	}
}

func TestFields(t *testing.T) {
	merged := Field("a", 1).Merge(Fields{"b": 2, "a": 3})
	if merged["a"] != 3 || merged["b"] != 2 {
		t.Errorf("Merge() = %v", merged)
	}
	keys := merged.Keys()
	if len(keys) != 2 || keys[0] != "a" || keys[1] != "b" {
		t.Errorf("Keys() = %v", keys)
	}
	if Err(errors.New("x"))["error"] == nil {
		t.Error("Err() field missing")
	}
}
