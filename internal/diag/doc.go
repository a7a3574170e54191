// Package diag defines the error and diagnostic model shared by all
// compiler phases.
//
// # Errors
//
// Every phase stops at its first problem and returns a *Error. An Error
// carries a Code (see codes.go), the offending 1-based source line, an
// optional column, a message, and optional Notes pointing at related lines
// (for example the tail of a function whose name disagrees with its head).
//
// Codes are grouped by phase:
//
//   - LEX1xxx – lexical errors (no token matches, unexpected end of input)
//   - SYN2xxx – syntax errors (expected token kind absent)
//   - SEM3xxx – semantic errors (weeders, scopes, types)
//   - IO4xxx  – file and cache failures in the driver
//   - FMT9xxx – class-file format invariants; these indicate a compiler bug
//
// Use errors.Is with ErrLexical, ErrSyntax, ErrSemantic or
// ErrFormatInvariant to classify an error without inspecting its code.
//
// # Aggregation
//
// The driver turns returned errors into Diagnostics (FromError) and collects
// them per compilation unit in a Bag, which renders deterministically via
// internal/diagfmt.
package diag
