package unit

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ucum-go/ucum/pkg/atomtable"
	"github.com/ucum-go/ucum/pkg/dimension"
	"github.com/ucum-go/ucum/pkg/specialfunc"
	"github.com/ucum-go/ucum/pkg/ucumerr"
)

// Unit is the working value the parser builds and the conversion
// engine operates on: a magnitude relative to coherent base units,
// a dimension vector, and (for non-ratio atoms) the name of the
// specialfunc.Pair that maps to and from the coherent scale.
//
// CSCode/CICode/Name are cosmetic: they track the algebraic history of
// the value for display (canonical code, case-insensitive code, human
// name) and are never consulted when computing a conversion.
type Unit struct {
	Name   string
	CSCode string
	CICode string

	Magnitude decimal.Decimal
	Dim       dimension.Vector

	Cnv    string          // specialfunc registry name, "" if ratio-scale
	CnvPfx decimal.Decimal // inner scale applied before/after Cnv

	IsBase      bool
	IsMetric    bool
	IsArbitrary bool

	// Property carries forward an atom's catalog property tag (e.g.
	// "mass", "volume") through algebra far enough to recognize a
	// mass-concentration/substance-concentration pair, since the
	// 7-component dimension vector cannot distinguish "per mole" from
	// plain dimensionlessness.
	Property string
}

// FromAtom builds a Unit carrying the atom's own magnitude, dimension
// and scale, unscaled by any prefix.
func FromAtom(a *atomtable.Atom) Unit {
	return Unit{
		Name:        a.Name,
		CSCode:      a.CSCode,
		CICode:      a.CICode,
		Magnitude:   a.Magnitude,
		Dim:         a.Dim.Clone(),
		Cnv:         a.Special,
		CnvPfx:      a.ConvPrefix,
		IsBase:      a.IsBase,
		IsMetric:    a.IsMetric,
		IsArbitrary: a.IsArbitrary,
		Property:    a.Property,
	}
}

// Dimensionless returns the multiplicative identity: magnitude 1, the
// zero (not null) dimension vector, ratio scale.
func Dimensionless() Unit {
	return Unit{
		Magnitude: decimal.NewFromInt(1),
		Dim:       dimension.Zero(),
		CnvPfx:    decimal.NewFromInt(1),
	}
}

// FromInteger builds the dimensionless unit representing a bare
// integer literal appearing in an expression, e.g. the "4" in "4.mg".
func FromInteger(n int64) Unit {
	u := Dimensionless()
	s := strconv.FormatInt(n, 10)
	u.Magnitude = decimal.NewFromInt(n)
	u.CSCode, u.CICode, u.Name = s, s, s
	return u
}

// IsSpecial reports whether u is on a non-ratio (e.g. Celsius, pH)
// scale rather than a linear multiple of its coherent base unit.
func (u Unit) IsSpecial() bool {
	return u.Cnv != ""
}

// Clone returns an independent copy of u. decimal.Decimal and
// dimension.Vector are immutable value types, so a plain copy already
// shares no mutable state; Clone exists for call-site clarity.
func (u Unit) Clone() Unit {
	return u
}

// Equals reports whether u and other denote the same physical
// quantity scale: same dimension, same non-ratio function (if any),
// same magnitude and inner scale. Display fields (Name, CSCode,
// CICode) are not compared, since two units built through different
// algebraic paths can be numerically identical but differently named.
func (u Unit) Equals(other Unit) bool {
	return u.Cnv == other.Cnv &&
		u.Magnitude.Equal(other.Magnitude) &&
		u.CnvPfx.Equal(other.CnvPfx) &&
		u.Dim.Equal(other.Dim)
}

func dimensionless(d dimension.Vector) bool {
	return d.IsNull() || d.IsZero()
}

// combineProperty derives the Property of a product or quotient from
// its operands, recognizing the one combination the conversion engine
// cares about: mass (or substance amount) divided by volume yields a
// concentration.
func combineProperty(a, b Unit, isDivide bool) string {
	if isDivide {
		switch {
		case a.Property == "mass" && b.Property == "volume":
			return "mass concentration"
		case a.Property == "substance amount" && b.Property == "volume":
			return "substance concentration"
		case a.Property != "" && b.Property == "":
			return a.Property
		}
		return ""
	}
	switch {
	case a.Property != "" && b.Property == "":
		return a.Property
	case b.Property != "" && a.Property == "":
		return b.Property
	}
	return ""
}

// MultiplyThese returns the product of u and other. At most one side
// may be non-ratio, and then only when the other side is dimensionless
// with no scale of its own (a bare number or prefix), matching the
// rule that a non-linear unit cannot itself be combined algebraically
// except by a plain numeric factor.
func (u Unit) MultiplyThese(other Unit) (Unit, error) {
	switch {
	case u.IsSpecial() && other.IsSpecial():
		return Unit{}, ucumerr.New(ucumerr.NonRatioMultiplication, -1,
			"%s and %s are both non-ratio units and cannot be multiplied", u.CSCode, other.CSCode)
	case u.IsSpecial():
		if !dimensionless(other.Dim) {
			return Unit{}, ucumerr.New(ucumerr.NonRatioMultiplication, -1,
				"%s is a non-ratio unit and cannot be multiplied by dimensioned %s", u.CSCode, other.CSCode)
		}
		out := u.Clone()
		out.CnvPfx = out.CnvPfx.Mul(other.Magnitude)
		out.IsArbitrary = u.IsArbitrary || other.IsArbitrary
		out.CSCode = combineCodes(u.CSCode, other.CSCode, ".")
		out.CICode = combineCodes(u.CICode, other.CICode, ".")
		out.Name = combineNames(u.Name, other.Name, "*")
		return out, nil
	case other.IsSpecial():
		result, err := other.MultiplyThese(u)
		if err != nil {
			return Unit{}, err
		}
		result.CSCode = combineCodes(u.CSCode, other.CSCode, ".")
		result.CICode = combineCodes(u.CICode, other.CICode, ".")
		result.Name = combineNames(u.Name, other.Name, "*")
		return result, nil
	default:
		out := Unit{}
		out.Magnitude = u.Magnitude.Mul(other.Magnitude)
		out.Dim = u.Dim.Add(other.Dim)
		out.CnvPfx = decimal.NewFromInt(1)
		out.CSCode = combineCodes(u.CSCode, other.CSCode, ".")
		out.CICode = combineCodes(u.CICode, other.CICode, ".")
		out.Name = combineNames(u.Name, other.Name, "*")
		out.Property = combineProperty(u, other, false)
		out.IsArbitrary = u.IsArbitrary || other.IsArbitrary
		return out, nil
	}
}

// Divide returns u/other. Neither side may be non-ratio: UCUM only
// ever divides by a special unit's own inverse function, never folds
// division through one algebraically.
func (u Unit) Divide(other Unit) (Unit, error) {
	if u.IsSpecial() || other.IsSpecial() {
		return Unit{}, ucumerr.New(ucumerr.NonRatioDivision, -1,
			"cannot divide using non-ratio unit %s or %s", u.CSCode, other.CSCode)
	}
	if other.Magnitude.IsZero() {
		return Unit{}, ucumerr.New(ucumerr.NonRatioDivision, -1,
			"division by zero-magnitude unit %s", other.CSCode)
	}
	out := Unit{}
	out.Magnitude = u.Magnitude.Div(other.Magnitude)
	out.Dim = u.Dim.Sub(other.Dim)
	out.CnvPfx = decimal.NewFromInt(1)
	out.CSCode = combineCodes(u.CSCode, other.CSCode, "/")
	out.CICode = combineCodes(u.CICode, other.CICode, "/")
	if u.Name == "" {
		out.Name = invertName(other.Name)
	} else {
		out.Name = combineNames(u.Name, other.Name, "/")
	}
	out.Property = combineProperty(u, other, true)
	out.IsArbitrary = u.IsArbitrary || other.IsArbitrary
	return out, nil
}

// Invert replaces u in place with its reciprocal.
func (u *Unit) Invert() error {
	if u.IsSpecial() {
		return ucumerr.New(ucumerr.NonRatioInvert, -1, "cannot invert non-ratio unit %s", u.CSCode)
	}
	if u.Magnitude.IsZero() {
		return ucumerr.New(ucumerr.NonRatioInvert, -1, "cannot invert zero-magnitude unit %s", u.CSCode)
	}
	u.Magnitude = decimal.NewFromInt(1).Div(u.Magnitude)
	u.Dim = u.Dim.Minus()
	u.CSCode = invertString(u.CSCode)
	u.CICode = invertString(u.CICode)
	return nil
}

// Power raises u to the integer power p in place.
func (u *Unit) Power(p int32) error {
	if u.IsSpecial() {
		return ucumerr.New(ucumerr.NonRatioPower, -1, "cannot raise non-ratio unit %s to a power", u.CSCode)
	}
	mag := decimal.NewFromInt(1)
	n := p
	if n < 0 {
		n = -n
	}
	for i := int32(0); i < n; i++ {
		mag = mag.Mul(u.Magnitude)
	}
	if p < 0 {
		mag = decimal.NewFromInt(1).Div(mag)
	}
	u.Magnitude = mag
	u.Dim = u.Dim.Mul(p)
	u.CSCode = powerString(u.CSCode, p)
	u.CICode = powerString(u.CICode, p)
	return nil
}

func dimsCommensurable(a, b dimension.Vector) bool {
	if a.IsNull() || b.IsNull() {
		return true
	}
	return a.Equal(b)
}

// ConvertFrom returns num (expressed in the from unit) converted into
// u. It follows the three-step procedure: move from-space to the
// coherent base via from's own scale (inverting its special function
// if it has one), then move from the coherent base into u's space via
// u's scale (applying u's special function forward if it has one).
func (u Unit) ConvertFrom(num float64, from Unit) (float64, error) {
	if !dimsCommensurable(u.Dim, from.Dim) {
		return 0, ucumerr.New(ucumerr.IncommensurableUnits, -1,
			"%s cannot be converted to %s", from.CSCode, u.CSCode)
	}
	if u.IsArbitrary || from.IsArbitrary {
		return 0, ucumerr.New(ucumerr.ArbitraryUnitNotConvertible, -1,
			"%s cannot be converted to %s because one of them is an arbitrary unit", from.CSCode, u.CSCode)
	}

	if from.Cnv == u.Cnv {
		fm, _ := from.Magnitude.Float64()
		tm, _ := u.Magnitude.Float64()
		return num * fm / tm, nil
	}

	var coherent float64
	if from.IsSpecial() {
		pair, ok := specialfunc.ForName(from.Cnv)
		if !ok {
			return 0, ucumerr.New(ucumerr.UnknownSpecialFunction, -1, "unknown special function %q", from.Cnv)
		}
		cnvPfx, _ := from.CnvPfx.Float64()
		fm, _ := from.Magnitude.Float64()
		coherent = pair.From(num*cnvPfx) * fm
	} else {
		fm, _ := from.Magnitude.Float64()
		coherent = num * fm
	}

	if u.IsSpecial() {
		pair, ok := specialfunc.ForName(u.Cnv)
		if !ok {
			return 0, ucumerr.New(ucumerr.UnknownSpecialFunction, -1, "unknown special function %q", u.Cnv)
		}
		tm, _ := u.Magnitude.Float64()
		cnvPfx, _ := u.CnvPfx.Float64()
		return pair.To(coherent/tm) / cnvPfx, nil
	}
	tm, _ := u.Magnitude.Float64()
	return coherent / tm, nil
}

// ConvertCoherent returns num (expressed in u) converted into u's
// coherent base unit, without mutating u.
func (u Unit) ConvertCoherent(num float64) (float64, error) {
	if u.IsSpecial() {
		pair, ok := specialfunc.ForName(u.Cnv)
		if !ok {
			return 0, ucumerr.New(ucumerr.UnknownSpecialFunction, -1, "unknown special function %q", u.Cnv)
		}
		cnvPfx, _ := u.CnvPfx.Float64()
		mag, _ := u.Magnitude.Float64()
		return pair.From(num*cnvPfx) * mag, nil
	}
	mag, _ := u.Magnitude.Float64()
	return num * mag, nil
}

// MutateCoherent rewrites u in place into its own coherent base form
// (magnitude 1, ratio-scale, a canonical name built from its dimension
// vector) and returns num converted into that form.
func (u *Unit) MutateCoherent(num float64, table *atomtable.Table) (float64, error) {
	converted, err := u.ConvertCoherent(num)
	if err != nil {
		return 0, err
	}
	u.Magnitude = decimal.NewFromInt(1)
	u.Cnv = ""
	u.CnvPfx = decimal.NewFromInt(1)
	u.IsArbitrary = false
	code := CanonicalCodeFromDimension(u.Dim, table)
	u.CSCode, u.CICode, u.Name = code, code, code
	return converted, nil
}

// MutateRatio promotes a non-ratio unit to its coherent ratio form in
// place; a unit that is already ratio-scale is returned unchanged.
func (u *Unit) MutateRatio(num float64, table *atomtable.Table) (float64, error) {
	if !u.IsSpecial() {
		return num, nil
	}
	return u.MutateCoherent(num, table)
}

var baseOrder = [dimension.Size]string{
	dimension.Mass:              "g",
	dimension.Length:            "m",
	dimension.Time:              "s",
	dimension.PlaneAngle:        "rad",
	dimension.Temperature:       "K",
	dimension.Charge:            "C",
	dimension.LuminousIntensity: "cd",
}

// CanonicalCodeFromDimension renders the coherent code string for a
// dimension vector, e.g. {length:2, time:-3} -> "m2/s3". table is
// consulted for the base atom of each dimension slot (falling back to
// the fixed m/s/g/rad/K/C/cd letters if the catalog lacks one), so a
// catalog that names its base atoms differently still reconstructs
// correctly.
func CanonicalCodeFromDimension(d dimension.Vector, table *atomtable.Table) string {
	var num, den []string
	for idx := dimension.Index(0); idx < dimension.Size; idx++ {
		e := d.At(idx)
		if e == 0 {
			continue
		}
		code := baseCodeFor(idx, table)
		abs := e
		if abs < 0 {
			abs = -abs
		}
		tok := code
		if abs != 1 {
			tok = fmt.Sprintf("%s%d", code, abs)
		}
		if e > 0 {
			num = append(num, tok)
		} else {
			den = append(den, tok)
		}
	}
	if len(num) == 0 && len(den) == 0 {
		return "1"
	}
	numStr := strings.Join(num, ".")
	if len(den) == 0 {
		return numStr
	}
	if numStr == "" {
		numStr = "1"
	}
	return numStr + "/" + strings.Join(den, ".")
}

// baseCodeFor finds the catalog's preferred base atom code for a
// single dimension slot, preferring an IsBase atom over any other
// atom sharing that dimension, falling back to the fixed
// m/s/g/rad/K/C/cd letters if the catalog has none at all.
func baseCodeFor(idx dimension.Index, table *atomtable.Table) string {
	var exp [dimension.Size]int32
	exp[idx] = 1
	atoms := table.AtomsByDimension(dimension.New(exp))
	for _, a := range atoms {
		if a.IsBase {
			return a.CSCode
		}
	}
	if len(atoms) > 0 {
		return atoms[0].CSCode
	}
	return baseOrder[idx]
}

// DimensionExponents returns the signed integer exponent of each
// nonzero slot in d, keyed by the catalog's base atom code for that
// slot, e.g. {length:2, time:-3} -> {"m":2, "s":-3}.
func DimensionExponents(d dimension.Vector, table *atomtable.Table) map[string]int32 {
	out := make(map[string]int32)
	for idx := dimension.Index(0); idx < dimension.Size; idx++ {
		e := d.At(idx)
		if e == 0 {
			continue
		}
		out[baseCodeFor(idx, table)] = e
	}
	return out
}
