// Package suggest is the suggestion index (component G): given an
// unrecognised token, return up to a handful of catalog atoms whose
// code, name, or synonyms are a plausible match. The index is built
// lazily from the Atom Table on first use and cached thereafter,
// mirroring the write-once cache shape the teacher codebase uses for
// its compiled-expression cache, simplified here since entries are
// never evicted (the catalog is immutable for the process lifetime).
package suggest
