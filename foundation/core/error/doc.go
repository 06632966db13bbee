// Package error provides coded errors for the console foundation.
//
// Package: error
// Title: Console Error Handling
// Description: Structured errors with codes, severity, operation and details.
//              Used where failures are programmer or configuration mistakes
//              (invalid command schemas, duplicate registrations, unreadable
//              config files) rather than user input problems, which the
//              parser and decoder report with their own value types.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Usage:
//
//	err := error.New("optional argument must be trailing").
//		WithCode(error.CodeSchemaInvalid).
//		WithOperation("command.Define").
//		WithDetail("command", "log")
//
//	if error.HasCode(err, error.CodeSchemaInvalid) {
//		// refuse to start
//	}
package error
