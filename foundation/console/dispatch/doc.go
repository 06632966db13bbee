// File: doc.go
// Title: Console Dispatch Package Documentation
// Description: Turns entered console lines into command invocations and
//              renders every failure as console output.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial dispatcher implementation

/*
Package dispatch connects the command-line parser to the command registry.

For every submitted line the dispatcher

 1. splits it into a command name and owned argument literals,
 2. publishes the resulting Entered event to raw listeners,
 3. looks the command up and decodes the arguments against its schema,
 4. runs the handler with a reply bound to the caller's output.

Failures never escape as Go errors to the host. They are printed as
"[error] ..." lines (followed by the command's help text for decode
failures) and reported in the returned Result.
*/
package dispatch
