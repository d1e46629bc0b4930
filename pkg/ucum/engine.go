package ucum

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ucum-go/ucum/pkg/atomtable"
	"github.com/ucum-go/ucum/pkg/suggest"
	"github.com/ucum-go/ucum/pkg/ucumerr"
	"github.com/ucum-go/ucum/pkg/ucumparse"
	"github.com/ucum-go/ucum/pkg/unit"
)

// Engine is a configured Conversion Engine: an atom table, a
// suggestion index, and the options that shape how lookups and
// messages behave. The zero Engine is not usable; build one with New
// or Default.
type Engine struct {
	table   *atomtable.Table
	suggest *suggest.Index
	opts    Options
}

// New builds an Engine over table, applying opts over DefaultOptions.
func New(table *atomtable.Table, opts ...Option) *Engine {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Engine{table: table, suggest: suggest.NewIndex(table), opts: o}
}

// Default builds an Engine over the process-wide default atom table
// (pkg/atomtable.MustDefault), the convenience entry point for
// callers that don't need a custom catalog.
func Default(opts ...Option) *Engine {
	return New(atomtable.MustDefault(), opts...)
}

func (e *Engine) parseOptions() ucumparse.Options {
	opts := ucumparse.Options{
		CaseInsensitive: e.opts.CaseInsensitive,
		MaxSuggestions:  e.opts.MaxSuggestions,
	}
	if e.opts.Suggestions {
		opts.Suggest = e.suggest
	}
	return opts
}

// Validate parses str and reports whether it is a well-formed UCUM
// expression. suggestMode additionally populates Suggestions.From when
// the expression cannot be resolved at all.
func (e *Engine) Validate(str string, suggestMode bool) Response {
	if str == "" {
		return Response{Status: StatusError, Msg: []string{"No unit string specified."}}
	}

	res := ucumparse.Parse(str, e.table, e.parseOptions())
	if res.Err != nil {
		resp := Response{
			Status: StatusInvalid,
			Msg:    append(append([]string(nil), res.Warnings...), invalidMessage(str, res.Err)),
		}
		if suggestMode {
			if ua, ok := asUnknownAtom(res.Err); ok {
				resp.Suggestions = &Suggestions{From: []SuggestionBlock{candidateBlock(str, ua.Suggestions)}}
			}
		}
		return resp
	}

	return Response{
		Status:   StatusValid,
		Msg:      append([]string(nil), res.Warnings...),
		UCUMCode: res.Unit.CSCode,
		Unit:     unitInfo(res.Unit, e.table),
	}
}

// ConvertUnitTo converts value, expressed in fromStr, into toStr.
// When the two sides disagree in dimension but form a mass
// concentration / substance concentration pair, molecularWeight
// (falling back to the Engine's configured default, if any) bridges
// them; otherwise a dimension mismatch fails with an advisory.
func (e *Engine) ConvertUnitTo(fromStr string, value float64, toStr string, suggestMode bool, molecularWeight *float64) Response {
	fromRes := ucumparse.Parse(fromStr, e.table, e.parseOptions())
	toRes := ucumparse.Parse(toStr, e.table, e.parseOptions())

	msgs := append(append([]string(nil), fromRes.Warnings...), toRes.Warnings...)

	if fromRes.Err != nil || toRes.Err != nil {
		if fromRes.Err != nil {
			msgs = append(msgs, fmt.Sprintf("Unable to find a unit for %s, so no conversion could be performed.", fromStr))
		}
		if toRes.Err != nil {
			msgs = append(msgs, fmt.Sprintf("Unable to find a unit for %s, so no conversion could be performed.", toStr))
		}
		resp := Response{Status: StatusFailed, Msg: msgs}
		if suggestMode {
			resp.Suggestions = &Suggestions{}
			if ua, ok := asUnknownAtom(fromRes.Err); ok {
				resp.Suggestions.From = []SuggestionBlock{candidateBlock(fromStr, ua.Suggestions)}
			}
			if ua, ok := asUnknownAtom(toRes.Err); ok {
				resp.Suggestions.To = []SuggestionBlock{candidateBlock(toStr, ua.Suggestions)}
			}
		}
		return resp
	}

	from, to := fromRes.Unit, toRes.Unit
	if from.IsArbitrary || to.IsArbitrary {
		msgs = append(msgs, fmt.Sprintf("Sorry. %s cannot be converted to %s.", fromStr, toStr))
		return Response{Status: StatusFailed, Msg: msgs, FromUnit: from.CSCode, ToUnit: to.CSCode}
	}

	toVal, err := to.ConvertFrom(value, from)
	if err == nil {
		return Response{Status: StatusSucceeded, Msg: msgs, ToVal: toVal, FromUnit: from.CSCode, ToUnit: to.CSCode}
	}
	if !ucumerr.Is(err, ucumerr.IncommensurableUnits) {
		msgs = append(msgs, err.Error())
		return Response{Status: StatusFailed, Msg: msgs, FromUnit: from.CSCode, ToUnit: to.CSCode}
	}

	mw := molecularWeight
	if mw == nil {
		mw = e.opts.MolecularWeight
	}
	if mw != nil {
		if bridged, handled, berr := bridgeMolecularWeight(from, to, value, *mw); handled {
			if berr != nil {
				msgs = append(msgs, fmt.Sprintf("Sorry. %s cannot be converted to %s.", fromStr, toStr))
				return Response{Status: StatusFailed, Msg: msgs, FromUnit: from.CSCode, ToUnit: to.CSCode}
			}
			return Response{Status: StatusSucceeded, Msg: msgs, ToVal: bridged, FromUnit: from.CSCode, ToUnit: to.CSCode}
		}
	}
	if isMolarBridgePair(from, to) {
		msgs = append(msgs, needMoleWeightMsg(fromStr, toStr))
	} else {
		msgs = append(msgs, fmt.Sprintf("Sorry. %s cannot be converted to %s.", fromStr, toStr))
	}
	return Response{Status: StatusFailed, Msg: msgs, FromUnit: from.CSCode, ToUnit: to.CSCode}
}

// ConvertToBaseUnits parses str and expands it into its coherent base
// form, returning value's magnitude in those base units along with
// the signed exponent of each contributing base atom.
func (e *Engine) ConvertToBaseUnits(str string, value float64) BaseUnitsResponse {
	res := ucumparse.Parse(str, e.table, e.parseOptions())
	if res.Err != nil {
		return BaseUnitsResponse{Status: StatusError, Msg: append(append([]string(nil), res.Warnings...), invalidMessage(str, res.Err))}
	}

	u := res.Unit
	if u.IsArbitrary {
		return BaseUnitsResponse{Status: StatusError, Msg: []string{
			fmt.Sprintf("%s is an arbitrary unit and has no base-unit expansion.", str),
		}}
	}

	special := u.IsSpecial()
	magnitude, err := u.MutateCoherent(value, e.table)
	if err != nil {
		return BaseUnitsResponse{Status: StatusError, Msg: []string{err.Error()}}
	}

	return BaseUnitsResponse{
		Status:            StatusSucceeded,
		Magnitude:         magnitude,
		FromUnitIsSpecial: special,
		UnitToExp:         unit.DimensionExponents(res.Unit.Dim, e.table),
		Msg:               append([]string(nil), res.Warnings...),
	}
}

// CheckSynonyms looks term up against the atom table's own synonym
// list first (an exact, whole-token match); only on a miss does it
// fall back to the suggestion index's scored, partial-token lookup.
func (e *Engine) CheckSynonyms(term string) SynonymsResponse {
	if atoms := e.table.AtomsBySynonym(term); len(atoms) > 0 {
		units := make([][3]string, 0, len(atoms))
		for _, a := range atoms {
			units = append(units, [3]string{a.CSCode, a.Name, a.Guidance})
		}
		return SynonymsResponse{Status: StatusValid, Units: units}
	}

	if !e.opts.Suggestions {
		return SynonymsResponse{Status: StatusInvalid, Msg: []string{fmt.Sprintf("No unit matches the term %q.", term)}}
	}
	candidates := e.suggest.Lookup(term, e.opts.MaxSuggestions)
	if len(candidates) == 0 {
		return SynonymsResponse{Status: StatusInvalid, Msg: []string{fmt.Sprintf("No unit matches the term %q.", term)}}
	}
	units := make([][3]string, 0, len(candidates))
	for _, c := range candidates {
		units = append(units, [3]string{c.Code, c.Name, c.Guidance})
	}
	return SynonymsResponse{Status: StatusValid, Units: units}
}

// bridgeMolecularWeight converts value across a mass-concentration /
// substance-concentration pair using mw (g/mol): the source side is
// reduced to its coherent numeric value, rescaled by (or by the
// reciprocal of) mw, then re-expressed against a synthetic unit that
// borrows the target's dimension so the ordinary ConvertFrom path can
// finish the job. handled is false when from/to aren't such a pair.
func bridgeMolecularWeight(from, to unit.Unit, value, mw float64) (result float64, handled bool, err error) {
	switch {
	case from.Property == "substance concentration" && to.Property == "mass concentration":
		coherent, err := from.ConvertCoherent(value)
		if err != nil {
			return 0, true, err
		}
		synth := unit.Unit{Dim: to.Dim, Magnitude: decimal.NewFromInt(1), Property: "mass concentration"}
		v, err := to.ConvertFrom(coherent*mw, synth)
		return v, true, err
	case from.Property == "mass concentration" && to.Property == "substance concentration":
		coherent, err := from.ConvertCoherent(value)
		if err != nil {
			return 0, true, err
		}
		synth := unit.Unit{Dim: to.Dim, Magnitude: decimal.NewFromInt(1), Property: "substance concentration"}
		v, err := to.ConvertFrom(coherent/mw, synth)
		return v, true, err
	default:
		return 0, false, nil
	}
}

// isMolarBridgePair reports whether from/to are the kind of mismatch
// a molecular weight could resolve, used to pick between the
// molecular-weight advisory and the plain incommensurability message.
func isMolarBridgePair(from, to unit.Unit) bool {
	return (from.Property == "mass concentration" && to.Property == "substance concentration") ||
		(from.Property == "substance concentration" && to.Property == "mass concentration")
}

func needMoleWeightMsg(fromStr, toStr string) string {
	return fmt.Sprintf(
		"%s and %s are a mass concentration and a substance concentration; supply a molecular weight (g/mol) to convert between them.",
		fromStr, toStr)
}

// invalidMessage renders err using the stable wording spec §6
// requires, falling back to naming the whole input string for any
// atom-resolution failure (unknown atom, rejected double prefix).
func invalidMessage(str string, err error) string {
	var e *ucumerr.Error
	if errors.As(err, &e) {
		switch e.Kind {
		case ucumerr.UnbalancedParentheses:
			return fmt.Sprintf("Missing close parenthesis for open parenthesis at %d.", e.Pos)
		case ucumerr.UnbalancedBrackets:
			return fmt.Sprintf("Missing close bracket for open bracket at %d.", e.Pos)
		}
	}
	return fmt.Sprintf("%s is not a valid UCUM code.", str)
}

func asUnknownAtom(err error) (*ucumparse.UnknownAtomError, bool) {
	var ua *ucumparse.UnknownAtomError
	ok := errors.As(err, &ua)
	return ua, ok
}

func candidateBlock(invalid string, candidates []suggest.Candidate) SuggestionBlock {
	units := make([][3]string, 0, len(candidates))
	for _, c := range candidates {
		units = append(units, [3]string{c.Code, c.Name, c.Guidance})
	}
	msg := fmt.Sprintf("%s is not a valid UCUM code. Did you mean one of these?", invalid)
	if len(units) == 0 {
		msg = fmt.Sprintf("%s is not a valid UCUM code.", invalid)
	}
	return SuggestionBlock{Msg: msg, InvalidUnit: invalid, Units: units}
}

func unitInfo(u unit.Unit, table *atomtable.Table) *UnitInfo {
	info := &UnitInfo{Code: u.CSCode, Name: u.Name}
	if a, ok := table.AtomByCaseSensitive(u.CSCode); ok {
		info.Name = a.Name
		info.Guidance = a.Guidance
	}
	return info
}
