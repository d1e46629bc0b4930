package suggest

import (
	"sort"
	"strings"
	"sync"

	"github.com/ucum-go/ucum/pkg/atomtable"
)

// Candidate is one suggested atom: its catalog code, display name,
// and any usage guidance, matching the (code, name, guidance) tuple
// spec.md's SuggestionBlock carries per unit.
type Candidate struct {
	Code     string
	Name     string
	Guidance string
}

// Index answers "what did you mean?" queries against an Atom Table.
// The zero value is not usable; build one with NewIndex. The first
// Lookup call builds the inverted token index and every call
// thereafter reuses it without rebuilding.
type Index struct {
	tbl   *atomtable.Table
	once  sync.Once
	byTok map[string][]*atomtable.Atom
}

// NewIndex returns a suggestion index over tbl. Building the inverted
// index is deferred to the first Lookup call.
func NewIndex(tbl *atomtable.Table) *Index {
	return &Index{tbl: tbl}
}

func (idx *Index) build() {
	idx.byTok = make(map[string][]*atomtable.Atom)
	add := func(tok string, a *atomtable.Atom) {
		tok = strings.ToLower(tok)
		if tok == "" {
			return
		}
		idx.byTok[tok] = append(idx.byTok[tok], a)
	}
	for _, a := range idx.tbl.Atoms() {
		add(a.CSCode, a)
		add(a.CICode, a)
		add(a.Name, a)
		for _, syn := range a.Synonyms {
			add(syn, a)
		}
	}
}

// defaultMax is the ceiling spec.md places on a SuggestionBlock's
// units list.
const defaultMax = 3

// minTokenLen is the shortest indexed token considered for the
// partial-overlap fallback. Below this, a token like a single-letter
// code ("m", "s") turns up as an incidental substring of almost any
// query and drowns out real matches; a query that short still finds
// its unit via the exact-token branch.
const minTokenLen = 2

// scored is a candidate atom together with the overlap score that
// ranked it, kept only long enough to sort before truncation.
type scored struct {
	atom  *atomtable.Atom
	score float64
}

// tokenOverlap scores how much of the longer of a and b is covered by
// the shorter: 1.0 for an exact match, shrinking as the contained
// token accounts for less of the full term. a and b must already be
// known to be substrings of one another (checked by the caller).
func tokenOverlap(a, b string) float64 {
	shorter, longer := len(a), len(b)
	if shorter > longer {
		shorter, longer = longer, shorter
	}
	return float64(shorter) / float64(longer)
}

// Lookup returns up to max (capped at 3, and defaulted to 3 when
// max <= 0) candidate atoms for an unresolved term, ranked by a
// token-overlap score: an exact code/name/synonym match scores 1.0;
// a partial (substring) match scores by how much of the longer
// string the shorter one covers. Ties break on catalog code so the
// result is deterministic across runs.
func (idx *Index) Lookup(term string, max int) []Candidate {
	idx.once.Do(idx.build)
	if max <= 0 || max > defaultMax {
		max = defaultMax
	}
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return nil
	}

	bestByCode := make(map[string]scored)
	consider := func(atoms []*atomtable.Atom, score float64) {
		for _, a := range atoms {
			if cur, ok := bestByCode[a.CSCode]; ok && cur.score >= score {
				continue
			}
			bestByCode[a.CSCode] = scored{atom: a, score: score}
		}
	}

	if atoms, ok := idx.byTok[term]; ok {
		consider(atoms, 1.0)
	}
	for tok, atoms := range idx.byTok {
		if tok == term || len(tok) < minTokenLen || len(term) < minTokenLen {
			continue
		}
		if !strings.Contains(tok, term) && !strings.Contains(term, tok) {
			continue
		}
		consider(atoms, tokenOverlap(tok, term))
	}

	ranked := make([]scored, 0, len(bestByCode))
	for _, s := range bestByCode {
		ranked = append(ranked, s)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].atom.CSCode < ranked[j].atom.CSCode
	})
	if len(ranked) > max {
		ranked = ranked[:max]
	}

	out := make([]Candidate, 0, len(ranked))
	for _, s := range ranked {
		out = append(out, Candidate{Code: s.atom.CSCode, Name: s.atom.Name, Guidance: s.atom.Guidance})
	}
	return out
}
