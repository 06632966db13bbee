// File: stringx.go
// Title: Core String Utility Functions
// Description: String helpers used by the console for help layout, input
//              checks and completion: blank checks, rune-aware padding and
//              truncation, and common-prefix computation.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Helpers for console text layout

package stringx

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsBlank returns true if the string is empty or contains only whitespace.
func IsBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsNotBlank returns true if the string contains non-whitespace characters.
func IsNotBlank(s string) bool {
	return !IsBlank(s)
}

// Truncate truncates a string to maxLen runes, ending in ellipsis if it was
// cut. Multi-byte characters are never split.
func Truncate(s string, maxLen int, ellipsis string) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}

	ellipsisLen := utf8.RuneCountInString(ellipsis)
	if ellipsisLen >= maxLen {
		return string([]rune(s)[:maxLen])
	}
	return string([]rune(s)[:maxLen-ellipsisLen]) + ellipsis
}

// PadRight pads s with pad to width runes. Longer strings are returned as is.
func PadRight(s string, width int, pad rune) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}

	var builder strings.Builder
	builder.Grow(len(s) + (width-n)*utf8.RuneLen(pad))
	builder.WriteString(s)
	for i := n; i < width; i++ {
		builder.WriteRune(pad)
	}
	return builder.String()
}

// MaxWidth returns the largest rune count among strs
func MaxWidth(strs ...string) int {
	max := 0
	for _, s := range strs {
		if n := utf8.RuneCountInString(s); n > max {
			max = n
		}
	}
	return max
}

// CommonPrefix returns the longest byte prefix shared by all strs
func CommonPrefix(strs ...string) string {
	if len(strs) == 0 {
		return ""
	}

	prefix := strs[0]
	for _, s := range strs[1:] {
		for !strings.HasPrefix(s, prefix) {
			prefix = prefix[:len(prefix)-1]
		}
		if prefix == "" {
			break
		}
	}

	// Never end inside a multi-byte character
	for len(prefix) > 0 && !utf8.ValidString(prefix) {
		prefix = prefix[:len(prefix)-1]
	}
	return prefix
}

// SplitLines splits a string into lines, handling \n, \r\n and \r endings.
func SplitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.Split(s, "\n")
}

// FirstNonBlank returns the first non-blank string from the provided strings.
func FirstNonBlank(strs ...string) string {
	for _, s := range strs {
		if IsNotBlank(s) {
			return s
		}
	}
	return ""
}
