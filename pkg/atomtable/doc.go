// Package atomtable is the in-memory catalog of UCUM prefixes and
// unit atoms (component B): exact case-sensitive and case-insensitive
// lookup, lookup by display name, synonym search, and lookup by
// dimension (used to reconstruct coherent-unit names). The catalog is
// immutable once built; loading the official UCUM data source is out
// of scope (spec.md §1) — Default seeds a small embedded catalog
// sufficient to exercise the parser and conversion engine.
package atomtable
