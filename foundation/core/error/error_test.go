// File: error_test.go
// Title: Error Module Tests
// Description: Tests error creation, wrapping, codes, severity and details.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19

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

	if err.Error() != msg {
		t.Errorf("Error() = %q, want %q", err.Error(), msg)
	}
	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}
	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}
	if got := Newf("bad %d", 3).Error(); got != "bad 3" {
		t.Errorf("Newf() = %q", got)
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
			name:     "wrap coded error",
			err:      New("bad schema").WithCode(CodeSchemaInvalid),
			message:  "register failed",
			wantMsg:  "register failed: bad schema",
			wantCode: CodeSchemaInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.err, tt.message)
			if tt.wantNil {
				if got != nil {
					t.Errorf("Wrap() = %v, want nil", got)
				}
				return
			}
			if got.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got.Error(), tt.wantMsg)
			}
			if got.Code() != tt.wantCode {
				t.Errorf("Code() = %v, want %v", got.Code(), tt.wantCode)
			}
			if !errors.Is(got, tt.err) {
				t.Error("wrapped error does not unwrap to its cause")
			}
		})
	}
}

func TestWithCode_Severity(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{CodeSchemaInvalid, SeverityHigh},
		{CodeDuplicateCommand, SeverityHigh},
		{CodeInvalidInput, SeverityLow},
		{CodeConfigError, SeverityMedium},
		{CodeInternal, SeverityCritical},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			err := New("x").WithCode(tt.code)
			if err.Severity() != tt.want {
				t.Errorf("Severity() = %v, want %v", err.Severity(), tt.want)
			}
		})
	}

	// Explicit severity wins
	err := New("x").WithSeverity(SeverityLow).WithCode(CodeSchemaInvalid)
	if err.Severity() != SeverityLow {
		t.Errorf("Severity() = %v, want low", err.Severity())
	}
}

func TestDetailsAndOperation(t *testing.T) {
	err := New("duplicate").
		WithCode(CodeDuplicateCommand).
		WithOperation("registry.Register").
		WithDetail("command", "log")

	if err.Operation() != "registry.Register" {
		t.Errorf("Operation() = %q", err.Operation())
	}
	details := err.Details()
	if details["command"] != "log" {
		t.Errorf("Details() = %v", details)
	}

	// Details returns a copy
	details["command"] = "changed"
	if err.Details()["command"] != "log" {
		t.Error("Details() exposed internal map")
	}

	s := err.String()
	for _, want := range []string{"Error: duplicate", "Code: DUPLICATE_COMMAND", "Operation: registry.Register", "Details: {command=log}"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() = %q, missing %q", s, want)
		}
	}
}

func TestHasCode(t *testing.T) {
	base := New("bad").WithCode(CodeSchemaInvalid)
	wrapped := fmt.Errorf("startup: %w", base)

	if !HasCode(base, CodeSchemaInvalid) {
		t.Error("HasCode(base) = false")
	}
	if !HasCode(wrapped, CodeSchemaInvalid) {
		t.Error("HasCode(wrapped) = false")
	}
	if HasCode(errors.New("plain"), CodeSchemaInvalid) {
		t.Error("HasCode(plain) = true")
	}
	if GetCode(wrapped) != CodeSchemaInvalid {
		t.Errorf("GetCode(wrapped) = %v", GetCode(wrapped))
	}
	if GetCode(errors.New("plain")) != CodeUnknown {
		t.Error("GetCode(plain) should be unknown")
	}
}

func TestMarshalJSON(t *testing.T) {
	err := Wrap(errors.New("eof"), "load config").WithCode(CodeConfigError).WithOperation("config.Load")

	data, mErr := json.Marshal(err)
	if mErr != nil {
		t.Fatalf("Marshal() error = %v", mErr)
	}

	var decoded map[string]interface{}
	if uErr := json.Unmarshal(data, &decoded); uErr != nil {
		t.Fatalf("Unmarshal() error = %v", uErr)
	}
	if decoded["code"] != "CONFIG_ERROR" || decoded["operation"] != "config.Load" || decoded["cause"] != "eof" {
		t.Errorf("decoded = %v", decoded)
	}
}

func TestCode_Category(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{CodeSchemaInvalid, "command"},
		{CodeInvalidConfig, "configuration"},
		{CodeNotFound, "generic"},
	}

	for _, tt := range tests {
		if got := tt.code.Category(); got != tt.want {
			t.Errorf("%s.Category() = %q, want %q", tt.code, got, tt.want)
		}
	}
	if Code("BOGUS").IsValid() {
		t.Error("IsValid(BOGUS) = true")
	}
	if !CodeCommandFailed.IsValid() {
		t.Error("IsValid(COMMAND_FAILED) = false")
	}
}
