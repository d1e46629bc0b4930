package atomtable

import (
	"github.com/shopspring/decimal"

	"github.com/ucum-go/ucum/pkg/dimension"
)

// Atom is one catalog entry: a base or derived UCUM unit, possibly
// bracketed (e.g. "[degF]"). Atoms are immutable once loaded.
type Atom struct {
	CSCode       string // case-sensitive code, the catalog's unique key
	CICode       string // case-insensitive code
	Name         string
	PrintSymbol  string
	Property     string // e.g. "length", "mass", "substance amount"
	MagnitudeStr string // exact decimal string as catalogued
	Magnitude    decimal.Decimal
	Dim          dimension.Vector
	Special      string          // name of a specialfunc.Pair, "" if ratio-scale
	ConvPrefix   decimal.Decimal // inner scale applied inside the special function
	IsBase       bool
	IsMetric     bool // whether a metric prefix may attach to this atom
	IsArbitrary  bool
	DefError     bool
	Synonyms     []string
	Guidance     string
}

// IsSpecial reports whether the atom is on a non-ratio scale.
func (a *Atom) IsSpecial() bool {
	return a.Special != ""
}

// Prefix is a named scalar multiplier attachable to metric atoms.
type Prefix struct {
	Code     string
	Value    decimal.Decimal
	IsMetric bool
}
