// Package weeder rejects programs that parse but are structurally wrong:
// a function whose closing name differs from its head, and a function with
// a result type whose body can fall off the end.
package weeder
