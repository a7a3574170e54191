// Package emit lowers a checked die program to JVM class files.
//
// The main class carries one public static field per global variable and
// one public static native method per function; nested functions are
// flattened as outer$inner. Every record type becomes a nested class
// Main$name with one public field per record field. Method bodies carry no
// Code attribute.
package emit
