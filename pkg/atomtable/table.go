package atomtable

import (
	"strings"

	"github.com/ucum-go/ucum/pkg/dimension"
)

// Table is the immutable, read-only-after-build atom/prefix catalog.
// A Table is safe for concurrent reads from multiple goroutines once
// construction (Load/Default) has returned (spec §5).
type Table struct {
	all          []*Atom
	byCS         map[string]*Atom
	byCIGroups   map[string][]*Atom // grouped; CI lookup succeeds only for singleton groups
	byName       map[string]*Atom
	bySynToken   map[string][]*Atom
	prefixesByCS map[string]*Prefix
}

func newTable() *Table {
	return &Table{
		byCS:         make(map[string]*Atom),
		byCIGroups:   make(map[string][]*Atom),
		byName:       make(map[string]*Atom),
		bySynToken:   make(map[string][]*Atom),
		prefixesByCS: make(map[string]*Prefix),
	}
}

func (t *Table) addAtom(a *Atom) {
	t.all = append(t.all, a)
	t.byCS[a.CSCode] = a
	key := strings.ToUpper(a.CICode)
	t.byCIGroups[key] = append(t.byCIGroups[key], a)
	if a.Name != "" {
		t.byName[a.Name] = a
	}
	for _, syn := range a.Synonyms {
		token := strings.ToLower(syn)
		t.bySynToken[token] = append(t.bySynToken[token], a)
	}
}

func (t *Table) addPrefix(p *Prefix) {
	t.prefixesByCS[p.Code] = p
}

// AtomByCaseSensitive looks up an atom by its exact catalog code.
func (t *Table) AtomByCaseSensitive(code string) (*Atom, bool) {
	a, ok := t.byCS[code]
	return a, ok
}

// AtomByCaseInsensitive looks up an atom whose case-insensitive code
// uniquely matches code. If two atoms share a case-insensitive code
// the lookup fails, since neither is the single correct answer.
func (t *Table) AtomByCaseInsensitive(code string) (*Atom, bool) {
	group := t.byCIGroups[strings.ToUpper(code)]
	if len(group) != 1 {
		return nil, false
	}
	return group[0], true
}

// AtomByName looks up an atom by its exact display name.
func (t *Table) AtomByName(name string) (*Atom, bool) {
	a, ok := t.byName[name]
	return a, ok
}

// PrefixByCaseSensitive looks up a prefix by its exact code.
func (t *Table) PrefixByCaseSensitive(code string) (*Prefix, bool) {
	p, ok := t.prefixesByCS[code]
	return p, ok
}

// AtomsBySynonym returns atoms whose synonym list contains term
// (case-insensitive, whole-token match).
func (t *Table) AtomsBySynonym(term string) []*Atom {
	return t.bySynToken[strings.ToLower(term)]
}

// AtomsByDimension returns every non-special, non-arbitrary atom whose
// dimension vector equals d, used to name coherent (base) forms.
func (t *Table) AtomsByDimension(d dimension.Vector) []*Atom {
	var out []*Atom
	for _, a := range t.all {
		if a.IsSpecial() || a.IsArbitrary {
			continue
		}
		if a.Dim.Equal(d) {
			out = append(out, a)
		}
	}
	return out
}

// Atoms returns every atom in the catalog, in load order. Used by
// pkg/suggest to build its inverted index.
func (t *Table) Atoms() []*Atom {
	return t.all
}
