// Package ucumparse is the expression parser (component E): it lexes
// a UCUM string via pkg/ucumlex, resolves each atom token against an
// pkg/atomtable.Table (with prefix splitting and optional
// case-insensitive fallback), and folds the token stream into a
// pkg/unit.Unit via pkg/unit's algebra. Parsing never fails silently:
// every non-fatal repair or fallback is recorded as an advisory
// message alongside the result, and a genuine failure carries the
// pkg/ucumerr.Kind that caused it plus, for an unresolved atom, a
// handful of suggestions from pkg/suggest.
package ucumparse
