package ucumparse

import (
	"fmt"

	"github.com/ucum-go/ucum/pkg/atomtable"
	"github.com/ucum-go/ucum/pkg/suggest"
	"github.com/ucum-go/ucum/pkg/ucumerr"
	"github.com/ucum-go/ucum/pkg/ucumlex"
	"github.com/ucum-go/ucum/pkg/unit"
)

// prefixLens are the catalog's prefix lengths, tried longest first so
// that e.g. "da" (deka) is preferred over a spurious 1-letter split.
var prefixLens = []int{2, 1}

// tryPrefixedAtom attempts to split code into a known prefix and a
// bare metric atom, e.g. "km" -> prefix "k" + atom "m". The remainder
// must resolve as a direct catalog atom, not itself a prefix+atom
// split: this is exactly what keeps a double-prefixed token like
// "mcg" (m + cg, where cg is not a cataloged atom) from resolving.
func tryPrefixedAtom(code string, tbl *atomtable.Table, ci bool) (unit.Unit, bool) {
	for _, plen := range prefixLens {
		if len(code) <= plen {
			continue
		}
		prefix, ok := tbl.PrefixByCaseSensitive(code[:plen])
		if !ok {
			continue
		}
		rest := code[plen:]
		var atom *atomtable.Atom
		if ci {
			atom, ok = tbl.AtomByCaseInsensitive(rest)
		} else {
			atom, ok = tbl.AtomByCaseSensitive(rest)
		}
		if !ok || !atom.IsMetric {
			continue
		}
		u := unit.FromAtom(atom)
		u.Magnitude = u.Magnitude.Mul(prefix.Value)
		u.CSCode = prefix.Code + atom.CSCode
		u.CICode = prefix.Code + atom.CICode
		u.Name = prefix.Code + atom.Name
		return u, true
	}
	return unit.Unit{}, false
}

// resolveAtom resolves one atom-component token into a Unit, trying
// (in order): exact case-sensitive atom, exact case-sensitive
// prefix+atom, then, if opts allows it, the same two lookups with the
// atom matched case-insensitively (the prefix is still matched
// case-sensitively). An empty token (the placeholder left by a leading
// operator, e.g. "/g") resolves to the dimensionless identity.
func resolveAtom(tok ucumlex.Token, tbl *atomtable.Table, opts Options, warnings *[]string) (unit.Unit, error) {
	code := tok.Raw
	if code == "" {
		return unit.Dimensionless(), nil
	}

	if a, ok := tbl.AtomByCaseSensitive(code); ok {
		return unit.FromAtom(a), nil
	}
	if u, ok := tryPrefixedAtom(code, tbl, false); ok {
		return u, nil
	}

	if opts.CaseInsensitive {
		if a, ok := tbl.AtomByCaseInsensitive(code); ok {
			*warnings = append(*warnings, fmt.Sprintf("%q matched %s only case-insensitively", code, a.CSCode))
			return unit.FromAtom(a), nil
		}
		if u, ok := tryPrefixedAtom(code, tbl, true); ok {
			*warnings = append(*warnings, fmt.Sprintf("%q matched a prefixed unit only case-insensitively", code))
			return u, nil
		}
	}

	var suggestions []suggest.Candidate
	if opts.Suggest != nil {
		suggestions = opts.Suggest.Lookup(code, opts.MaxSuggestions)
	}
	base := ucumerr.New(ucumerr.UnknownAtom, tok.Pos, "%s is not a valid UCUM code", code)
	return unit.Unit{}, &UnknownAtomError{Err: base, Code: code, Suggestions: suggestions}
}
