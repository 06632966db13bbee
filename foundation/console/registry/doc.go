// File: doc.go
// Title: Console Command Registry Package Documentation
// Description: Holds the registered console commands and answers lookups,
//              fuzzy "did you mean" suggestions and tab completions.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial registry implementation

/*
Package registry maps command names to executable commands.

A registry is filled once at startup and read many times afterwards. It
provides:

  • Registration with duplicate detection
  • Alias resolution
  • Sorted name and help listings
  • Fuzzy suggestions for unknown command names
  • Completion of command names and argument values

All methods are safe for concurrent use.
*/
package registry
