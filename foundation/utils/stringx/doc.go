// Package stringx provides string helpers for console text layout.
//
// Package: stringx
// Title: String Utilities
// Description: Unicode-aware helpers used by help rendering, completion and
//              input validation. All functions are pure and safe for
//              concurrent use.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
package stringx
