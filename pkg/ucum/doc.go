// Package ucum is the Conversion Engine: the public entry point that
// composes the atom table, the parser and the suggestion index into
// the four operations a caller actually wants — validate an
// expression, convert a value between two expressions, expand an
// expression into base units, and look up synonyms for a term.
//
// An Engine is built once (New or Default) and is safe for concurrent
// use from multiple goroutines thereafter: everything it touches
// (pkg/atomtable.Table, the lazily-built pkg/suggest.Index) is
// read-only after construction, per the single-threaded-cooperative,
// reentrant-for-reads model described in the package's design notes.
package ucum
