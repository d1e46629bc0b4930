package ucumerr

import (
	"errors"
	"fmt"

	"github.com/ucum-go/ucum/pkg/common"
)

// Kind identifies which failure mode an Error represents. Kinds are
// stable; callers are expected to switch on them or use errors.Is
// against the matching sentinel below rather than parsing messages.
type Kind int

const (
	// EmptyInput means no expression string was given at all.
	EmptyInput Kind = iota
	// UnknownAtom means an atom token could not be resolved, even
	// after trying prefix splits and (if enabled) case-insensitive
	// lookup.
	UnknownAtom
	// UnbalancedParentheses means '(' and ')' do not nest correctly.
	UnbalancedParentheses
	// UnbalancedBrackets means '[' and ']' do not nest correctly.
	UnbalancedBrackets
	// NonIntegerExponent means an exponent token did not reduce to
	// an integer dimension scale.
	NonIntegerExponent
	// DoublePrefix means a prefix was applied to a token that itself
	// resolves only as prefix+atom, never as a bare atom.
	DoublePrefix
	// IncommensurableUnits means two units' dimension vectors differ.
	IncommensurableUnits
	// NonRatioMultiplication means both operands of '.' are on a
	// non-ratio (special) scale, or a non-ratio operand was combined
	// with a dimensioned ratio unit.
	NonRatioMultiplication
	// NonRatioDivision means either operand of '/' is non-ratio.
	NonRatioDivision
	// NonRatioPower means power() was applied to a non-ratio unit.
	NonRatioPower
	// NonRatioInvert means invert() was applied to a non-ratio unit.
	NonRatioInvert
	// ArbitraryUnitNotConvertible means a conversion touched an
	// isArbitrary unit as source, target, or a factor of either.
	ArbitraryUnitNotConvertible
	// MolecularWeightRequired means a mass/substance concentration
	// conversion was requested without a molecular weight.
	MolecularWeightRequired
	// UnknownSpecialFunction means an atom named a special function
	// not present in the registry. This is a data/catalog bug, not a
	// user input error.
	UnknownSpecialFunction
)

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Unknown"
}

var kindNames = map[Kind]string{
	EmptyInput:                  "EmptyInput",
	UnknownAtom:                 "UnknownAtom",
	UnbalancedParentheses:       "UnbalancedParentheses",
	UnbalancedBrackets:          "UnbalancedBrackets",
	NonIntegerExponent:          "NonIntegerExponent",
	DoublePrefix:                "DoublePrefix",
	IncommensurableUnits:        "IncommensurableUnits",
	NonRatioMultiplication:      "NonRatioMultiplication",
	NonRatioDivision:            "NonRatioDivision",
	NonRatioPower:               "NonRatioPower",
	NonRatioInvert:              "NonRatioInvert",
	ArbitraryUnitNotConvertible: "ArbitraryUnitNotConvertible",
	MolecularWeightRequired:     "MolecularWeightRequired",
	UnknownSpecialFunction:      "UnknownSpecialFunction",
}

// sentinels lets callers do errors.Is(err, ucumerr.Sentinel(Kind)) or,
// more conveniently, ucumerr.Is(err, Kind).
var sentinels = func() map[Kind]error {
	m := make(map[Kind]error, len(kindNames))
	for k, name := range kindNames {
		m[k] = errors.New(name)
	}
	return m
}()

// Error is the concrete error type produced by the parser, the unit
// algebra, and the conversion engine. Pos is a byte offset into the
// text the raising stage was working on (after annotation extraction,
// and relative to the enclosing parentheses for a token inside a
// group), so it can differ from an offset into the original
// expression; it is -1 when no single position applies (e.g.
// EmptyInput, or an engine-level incommensurability between two whole
// expressions).
type Error struct {
	Kind Kind
	Pos  int
	path *common.PathError
}

// New builds an Error of the given Kind with a formatted message.
func New(kind Kind, pos int, format string, args ...any) *Error {
	loc := ""
	if pos >= 0 {
		loc = fmt.Sprintf("offset %d", pos)
	}
	return &Error{Kind: kind, Pos: pos, path: common.WrapPathf(loc, format, args...)}
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.path.Error()
}

// Unwrap exposes the Kind's sentinel so errors.Is(err, ucumerr.Sentinel(Kind))
// works, and the formatted message via the wrapped common.PathError.
func (e *Error) Unwrap() []error {
	return []error{sentinels[e.Kind], e.path}
}

// Sentinel returns the stable sentinel error for a Kind, suitable for
// errors.Is comparisons.
func Sentinel(kind Kind) error {
	return sentinels[kind]
}

// Is reports whether err is (or wraps) an Error of the given Kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return errors.Is(err, Sentinel(kind))
}
