// Package ucumlex turns a raw UCUM expression string into a clean
// token stream for pkg/ucumparse: annotation extraction, bracket and
// parenthesis balance checking, the sibling-number repair
// (`4(mmol/L)` -> `4.(mmol/L)`), and splitting on `.`/`/` into
// atom-or-number tokens with their optional trailing signed exponent.
// Nothing here resolves an atom against the catalog; that is
// pkg/ucumparse's job once it has a clean token stream.
package ucumlex
