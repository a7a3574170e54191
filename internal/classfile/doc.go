// Package classfile models and serializes JVM class files.
//
// The constant pool is the center of the format: every name, descriptor and
// literal a class refers to lives in it and is addressed by a 1-based u2
// index. Pool constructors are idempotent, so asking twice for the same
// constant returns the same index. Entries may only refer to entries
// inserted before them.
//
// Violations of pool indexing rules are emitter bugs, not user errors. They
// panic with a *diag.Error of the FMT category; callers at a package
// boundary recover them with Catch.
package classfile
