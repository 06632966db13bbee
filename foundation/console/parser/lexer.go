// File: lexer.go
// Title: Console Value Lexer
// Description: Turns argument text into classified literals. Tokens are
//              separated by spaces or tabs and are tried in a fixed order:
//              quoted string, float, integer, boolean, bare word. The first
//              grammar matching a prefix decides the token. Every literal
//              keeps the byte span of its source spelling.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial lexer implementation
// - 2026-10-19 v0.1.0: Prefix matching for numbers and booleans, float overflow to +Inf

package parser

import (
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/msto63/devconsole/foundation/console/literal"
)

// Lexer scans one argument text into literals
type Lexer struct {
	input    string // Input string
	position int    // Current position in input (points to current char)
	readPos  int    // Current reading position (after current char)
	ch       byte   // Current char under examination
}

// NewLexer creates a new lexer for the given input
func NewLexer(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

// newLexerAt creates a lexer that starts scanning at offset. Spans and
// error offsets stay relative to the full input.
func newLexerAt(input string, offset int) *Lexer {
	l := &Lexer{input: input, readPos: offset}
	l.readChar()
	return l
}

// Next returns the next literal. ok is false once only whitespace remains.
func (l *Lexer) Next() (lit literal.View, ok bool, err error) {
	l.skipBlanks()
	if l.atEOF() {
		return literal.View{}, false, nil
	}

	start := l.position
	if l.ch == '"' || l.ch == '\'' {
		lit, err = l.readQuoted()
		if err != nil {
			return literal.View{}, false, err
		}
		if !l.atBoundary() {
			return literal.View{}, false, newParseError(l.input, l.position, "unexpected character %q after quoted string", l.currentRune())
		}
		return lit, true, nil
	}

	for !l.atBoundary() {
		l.readChar()
	}
	lit, err = classify(l.input, start, l.position)
	if err != nil {
		return literal.View{}, false, err
	}
	return lit, true, nil
}

// Tokenize returns all literals of the input
func (l *Lexer) Tokenize() ([]literal.View, error) {
	var lits []literal.View

	for {
		lit, ok, err := l.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return lits, nil
		}
		lits = append(lits, lit)
	}
}

// readChar reads the next character and advances position
func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPos]
	}
	l.position = l.readPos
	l.readPos++
}

// atEOF reports whether the whole input has been consumed. A literal NUL
// byte inside the input is not EOF.
func (l *Lexer) atEOF() bool {
	return l.position >= len(l.input)
}

// atBoundary reports whether the current position ends a token
func (l *Lexer) atBoundary() bool {
	return l.atEOF() || isBlank(l.ch)
}

func (l *Lexer) skipBlanks() {
	for !l.atEOF() && isBlank(l.ch) {
		l.readChar()
	}
}

func (l *Lexer) currentRune() rune {
	r, _ := utf8.DecodeRuneInString(l.input[l.position:])
	return r
}

// readQuoted reads a '"' or '\'' delimited string and decodes its escapes
func (l *Lexer) readQuoted() (literal.View, error) {
	start := l.position
	delim := l.ch
	var sb strings.Builder

	l.readChar() // opening delimiter
	for {
		if l.atEOF() {
			return literal.View{}, newParseError(l.input, start, "unterminated string")
		}

		switch l.ch {
		case delim:
			l.readChar() // closing delimiter
			return literal.View{
				Kind: literal.KindString,
				Str:  sb.String(),
				Raw:  literal.Span{Start: start, End: l.position},
			}, nil
		case '\\':
			if err := l.readEscape(&sb); err != nil {
				return literal.View{}, err
			}
		default:
			runStart := l.position
			for !l.atEOF() && l.ch != delim && l.ch != '\\' {
				l.readChar()
			}
			sb.WriteString(l.input[runStart:l.position])
		}
	}
}

// readEscape decodes one backslash escape; the lexer sits on the backslash
func (l *Lexer) readEscape(sb *strings.Builder) error {
	escStart := l.position
	l.readChar() // '\\'
	if l.atEOF() {
		return newParseError(l.input, escStart, "unterminated escape sequence")
	}

	switch l.ch {
	case 'n':
		sb.WriteByte('\n')
	case 'r':
		sb.WriteByte('\r')
	case 't':
		sb.WriteByte('\t')
	case 'b':
		sb.WriteByte('\b')
	case 'f':
		sb.WriteByte('\f')
	case '\\', '/', '"', '\'':
		sb.WriteByte(l.ch)
	case 'u':
		r, err := l.readUnicodeEscape(escStart)
		if err != nil {
			return err
		}
		sb.WriteRune(r)
		return nil
	case ' ', '\t', '\n', '\r':
		// Escaped whitespace is dropped together with the backslash
		for !l.atEOF() && isSpace(l.ch) {
			l.readChar()
		}
		return nil
	default:
		return newParseError(l.input, escStart, "invalid escape sequence '\\%c'", l.currentRune())
	}

	l.readChar()
	return nil
}

// readUnicodeEscape reads the {H..H} part of a \u escape; the lexer sits on 'u'
func (l *Lexer) readUnicodeEscape(escStart int) (rune, error) {
	l.readChar() // 'u'
	if l.ch != '{' || l.atEOF() {
		return 0, newParseError(l.input, escStart, "malformed unicode escape, expected '\\u{...}'")
	}
	l.readChar() // '{'

	hexStart := l.position
	for !l.atEOF() && isHexDigit(l.ch) {
		l.readChar()
	}
	digits := l.input[hexStart:l.position]
	if len(digits) == 0 || len(digits) > 6 || l.ch != '}' || l.atEOF() {
		return 0, newParseError(l.input, escStart, "malformed unicode escape, expected 1 to 6 hex digits in braces")
	}
	l.readChar() // '}'

	code, err := strconv.ParseUint(digits, 16, 32)
	if err != nil || !utf8.ValidRune(rune(code)) {
		return 0, newParseError(l.input, escStart, "invalid unicode scalar value U+%s", strings.ToUpper(digits))
	}
	return rune(code), nil
}

// classify assigns a kind to the unquoted token input[start:end]. The
// float, integer and boolean grammars match a prefix of the token; a prefix
// match that does not cover the whole token fails instead of falling back
// to a bare word.
func classify(input string, start, end int) (literal.View, error) {
	tok := input[start:end]
	span := literal.Span{Start: start, End: end}

	if n := floatPrefix(tok); n > 0 {
		if n < len(tok) {
			return literal.View{}, trailingError(input, start, n, literal.KindFloat)
		}
		// Overflow parses to +Inf and reports ErrRange
		f, err := strconv.ParseFloat(stripUnderscores(tok), 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return literal.View{}, newParseError(input, start, "invalid float literal %q", tok)
		}
		return literal.View{Kind: literal.KindFloat, Float: f, Raw: span}, nil
	}

	if n := scanDigits(tok, 0); n > 0 {
		if n < len(tok) {
			return literal.View{}, trailingError(input, start, n, literal.KindInt)
		}
		v, err := strconv.ParseInt(stripUnderscores(tok), 10, 64)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return literal.View{}, newParseError(input, start, "integer literal %q out of range", tok)
			}
			return literal.View{}, newParseError(input, start, "invalid integer literal %q", tok)
		}
		return literal.View{Kind: literal.KindInt, Int: v, Raw: span}, nil
	}

	if n, b := boolPrefix(tok); n > 0 {
		if n < len(tok) {
			return literal.View{}, trailingError(input, start, n, literal.KindBool)
		}
		return literal.View{Kind: literal.KindBool, Bool: b, Raw: span}, nil
	}

	for i := 0; i < len(tok); i++ {
		if !isWordChar(tok[i]) {
			r, _ := utf8.DecodeRuneInString(tok[i:])
			return literal.View{}, newParseError(input, start+i, "unexpected character %q in %q", r, tok)
		}
	}
	return literal.View{Kind: literal.KindString, Str: tok, Raw: span}, nil
}

// trailingError reports the first character after a literal of kind that
// matched only the first n bytes of the token at start
func trailingError(input string, start, n int, kind literal.Kind) error {
	r, _ := utf8.DecodeRuneInString(input[start+n:])
	return newParseError(input, start+n, "unexpected character %q after %s literal %q", r, kind, input[start:start+n])
}

var boolWords = []struct {
	word  string
	value bool
}{
	{"true", true},
	{"TRUE", true},
	{"false", false},
	{"FALSE", false},
}

// boolPrefix returns the length and value of the boolean word s starts
// with, or 0
func boolPrefix(s string) (int, bool) {
	for _, b := range boolWords {
		if strings.HasPrefix(s, b.word) {
			return len(b.word), b.value
		}
	}
	return 0, false
}

// scanDigits matches digit (digit | '_')* at s[i:] and returns the end
// index, or -1 when s[i] is not a digit
func scanDigits(s string, i int) int {
	if i >= len(s) || !isDigit(s[i]) {
		return -1
	}
	for i < len(s) && (isDigit(s[i]) || s[i] == '_') {
		i++
	}
	return i
}

// scanExponent matches (e|E) [+|-] DIGITS at s[i:]
func scanExponent(s string, i int) int {
	if i >= len(s) || (s[i] != 'e' && s[i] != 'E') {
		return -1
	}
	i++
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	return scanDigits(s, i)
}

// floatPrefix returns the length of the float literal at the start of s,
// or -1. The shapes are tried in order and the first match wins:
//
//	.DIGITS[EXP]   DIGITS[.DIGITS]EXP   DIGITS.[DIGITS]
func floatPrefix(s string) int {
	if strings.HasPrefix(s, ".") {
		i := scanDigits(s, 1)
		if i < 0 {
			return -1
		}
		if e := scanExponent(s, i); e > 0 {
			return e
		}
		return i
	}

	i := scanDigits(s, 0)
	if i < 0 {
		return -1
	}

	// DIGITS[.DIGITS]EXP
	j := i
	if j < len(s) && s[j] == '.' {
		if k := scanDigits(s, j+1); k > 0 {
			j = k
		}
	}
	if e := scanExponent(s, j); e > 0 {
		return e
	}

	// DIGITS.[DIGITS]
	if i == len(s) || s[i] != '.' {
		return -1
	}
	if k := scanDigits(s, i+1); k > 0 {
		return k
	}
	return i + 1
}

func stripUnderscores(s string) string {
	if !strings.Contains(s, "_") {
		return s
	}
	return strings.ReplaceAll(s, "_", "")
}

// Utility functions

func isBlank(ch byte) bool {
	return ch == ' ' || ch == '\t'
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z'
}

func isHexDigit(ch byte) bool {
	return isDigit(ch) || 'a' <= ch && ch <= 'f' || 'A' <= ch && ch <= 'F'
}

// isWordChar reports membership in the bare word alphabet [0-9a-zA-Z_-]
func isWordChar(ch byte) bool {
	return isLetter(ch) || isDigit(ch) || ch == '_' || ch == '-'
}

// isIdentStart and isIdentChar define the command name grammar
func isIdentStart(ch byte) bool {
	return isLetter(ch) || ch == '_'
}

func isIdentChar(ch byte) bool {
	return isLetter(ch) || isDigit(ch) || ch == '_'
}
