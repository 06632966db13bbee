// Package log provides structured logging for the console foundation.
//
// Package: log
// Title: Structured Logging
// Description: Leveled, field-based logging with JSON, text and colored
//              console output. Loggers are immutable: every With* call
//              returns a configured copy. A LineWriter turns formatted
//              output into single lines so a console host can mirror its
//              own log output into the scrollback.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Usage:
//
//	logger := log.New().
//		WithLevel(log.LevelDebug).
//		WithFormat(log.FormatText).
//		WithName("console-dispatch")
//
//	logger.Info("Command registered", log.Fields{"command": "help"})
//	logger.WarnWithErr("Command failed", err, log.Field("command", "add"))
//
//	// Mirror log output into a console
//	sink := log.NewLineWriter(func(line string) { console.Print(line) })
//	logger = logger.WithOutput(sink)
package log
