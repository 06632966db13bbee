// File: logger_test.go
// Title: Logger Tests
// Description: Tests logger configuration, context fields, level filtering,
//              coded error logging and the line sink.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"

	mdwerror "github.com/msto63/devconsole/foundation/core/error"
)

func newBufferLogger(buf *bytes.Buffer) *Logger {
	return NewWithConfig(Config{Level: LevelTrace, Format: FormatJSON, Output: buf})
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()

	var out []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]interface{}
		if err := json.Unmarshal([]byte(line), &m); err != nil {
			t.Fatalf("invalid JSON line %q: %v", line, err)
		}
		out = append(out, m)
	}
	return out
}

func TestNew(t *testing.T) {
	logger := New()

	if logger.GetLevel() != DefaultLevel() {
		t.Errorf("New() level = %v, want %v", logger.GetLevel(), DefaultLevel())
	}
	if logger.contextFields == nil {
		t.Error("New() should initialize context fields")
	}
}

func TestNewWithConfig(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{
		Level:  LevelError,
		Format: FormatText,
		Output: &buf,
		Name:   "test-logger",
	})

	if logger.GetLevel() != LevelError {
		t.Errorf("level = %v, want %v", logger.GetLevel(), LevelError)
	}
	if logger.name != "test-logger" {
		t.Errorf("name = %v, want test-logger", logger.name)
	}

	logger.Info("dropped")
	logger.Error("kept")
	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Error("info message logged below error level")
	}
	if !strings.Contains(out, "[ERR] {test-logger} kept") {
		t.Errorf("output = %q", out)
	}
}

func TestLogger_WithFieldIsCopyOnWrite(t *testing.T) {
	var buf bytes.Buffer
	base := newBufferLogger(&buf)
	child := base.WithField("component", "console-registry")

	base.Info("from base")
	child.Info("from child", Fields{"command": "help"})

	lines := decodeLines(t, &buf)
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if _, ok := lines[0]["component"]; ok {
		t.Error("base logger picked up child field")
	}
	if lines[1]["component"] != "console-registry" || lines[1]["command"] != "help" {
		t.Errorf("child line = %v", lines[1])
	}
	if lines[1]["level"] != "info" || lines[1]["message"] != "from child" {
		t.Errorf("child line = %v", lines[1])
	}
}

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	logger := newBufferLogger(&buf).WithLevel(LevelWarn)

	logger.Trace("t")
	logger.Debug("d")
	logger.Info("i")
	logger.Warn("w")
	logger.Error("e")

	lines := decodeLines(t, &buf)
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if !logger.IsLevelEnabled(LevelError) || logger.IsLevelEnabled(LevelInfo) {
		t.Error("IsLevelEnabled() inconsistent with level")
	}
}

func TestLogger_WarnWithErr(t *testing.T) {
	var buf bytes.Buffer
	logger := newBufferLogger(&buf)

	logger.WarnWithErr("command failed", errors.New("boom"), Field("command", "add"))

	lines := decodeLines(t, &buf)
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	if lines[0]["error"] != "boom" || lines[0]["command"] != "add" {
		t.Errorf("line = %v", lines[0])
	}
}

func TestLogger_LogError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantLevel string
	}{
		{"low severity", mdwerror.New("bad input").WithCode(mdwerror.CodeInvalidInput), "info"},
		{"medium severity", mdwerror.New("no file").WithCode(mdwerror.CodeConfigError), "warn"},
		{"high severity", mdwerror.New("bad schema").WithCode(mdwerror.CodeSchemaInvalid), "error"},
		{"plain error", errors.New("plain"), "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			newBufferLogger(&buf).LogError(tt.err)

			lines := decodeLines(t, &buf)
			if len(lines) != 1 {
				t.Fatalf("got %d lines, want 1", len(lines))
			}
			if lines[0]["level"] != tt.wantLevel {
				t.Errorf("level = %v, want %v", lines[0]["level"], tt.wantLevel)
			}
		})
	}

	var buf bytes.Buffer
	newBufferLogger(&buf).LogError(nil)
	if buf.Len() != 0 {
		t.Error("LogError(nil) wrote output")
	}
}

func TestLogger_LogErrorDetails(t *testing.T) {
	var buf bytes.Buffer
	err := mdwerror.New("duplicate").
		WithCode(mdwerror.CodeDuplicateCommand).
		WithOperation("registry.Register").
		WithDetail("command", "log")

	newBufferLogger(&buf).LogError(err)

	lines := decodeLines(t, &buf)
	line := lines[0]
	if line["error_code"] != "DUPLICATE_COMMAND" || line["error_category"] != "command" ||
		line["error_operation"] != "registry.Register" || line["error_command"] != "log" {
		t.Errorf("line = %v", line)
	}
	if _, ok := line["error_details"]; !ok {
		t.Error("coded error should carry error_details")
	}
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	logger.Error("nothing")
	if logger.IsLevelEnabled(LevelError) {
		t.Error("Discard() logger has error level enabled")
	}
}

func TestDefaultLogger(t *testing.T) {
	original := GetDefault()
	defer SetDefault(original)

	var buf bytes.Buffer
	SetDefault(newBufferLogger(&buf))
	Info("via default")

	if !strings.Contains(buf.String(), "via default") {
		t.Errorf("default logger output = %q", buf.String())
	}
}

func TestLineWriter(t *testing.T) {
	var (
		mu    sync.Mutex
		lines []string
	)
	w := NewLineWriter(func(line string) {
		mu.Lock()
		lines = append(lines, line)
		mu.Unlock()
	})

	w.Write([]byte("first\nsec"))
	w.Write([]byte("ond\r\nthi"))
	if len(lines) != 2 || lines[0] != "first" || lines[1] != "second" {
		t.Fatalf("lines = %q", lines)
	}

	w.Flush()
	if len(lines) != 3 || lines[2] != "thi" {
		t.Errorf("after Flush lines = %q", lines)
	}
	w.Flush()
	if len(lines) != 3 {
		t.Error("second Flush emitted an empty line")
	}
}

func TestLineWriter_AsLoggerOutput(t *testing.T) {
	var lines []string
	sink := NewLineWriter(func(line string) { lines = append(lines, line) })

	logger := NewWithConfig(Config{Level: LevelInfo, Format: FormatText, Output: sink})
	logger.formatter = &TextFormatter{DisableTimestamp: true}
	logger.Info("registered", Fields{"command": "help"})

	if len(lines) != 1 || lines[0] != "[INF] registered [command=help]" {
		t.Errorf("lines = %q", lines)
	}
}
