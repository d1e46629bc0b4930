// Package specialfunc is the process-wide registry of named
// non-linear unit conversion functions (Celsius, Fahrenheit, pH,
// decibel variants, …). Entries self-register from init(), the same
// shape the teacher codebase uses to wire up its function tables.
package specialfunc
