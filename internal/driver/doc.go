// Package driver runs the die pipeline over source files.
//
// One compilation unit is one file: lex, parse, name weeding, return
// weeding, symbol gathering, type checking, then class emission. Each stage
// needs the previous one to succeed. The first error of a unit becomes a
// diagnostic in the unit's Bag; CompileAll runs independent units in
// parallel and keeps results in input order.
package driver
