// File: doc.go
// Title: Console Literal Package Documentation
// Description: Documents the literal model shared by the console parser,
//              decoder and dispatcher.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19

/*
Package literal defines the classified argument values of a console command line.

Three representations exist:

  • View   - produced by the lexer; raw text is a Span into the parsed input
  • Owned  - a View copied out of its input (View.Own), safe to queue or retain
  • Value  - an erased value holding only the semantic content

Conversion only runs one way: View -> Owned -> Value. For every non-string
literal the raw text is exactly the input substring that produced it, so a
number requested as a string keeps its spelling ("007" stays "007").
*/
package literal
