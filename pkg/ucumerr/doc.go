// Package ucumerr defines the error taxonomy shared by the parser,
// unit algebra, and conversion engine: a small set of stable Kinds
// plus an Error type that carries a human-facing message and, where
// known, a byte offset into the expression text being processed.
package ucumerr
