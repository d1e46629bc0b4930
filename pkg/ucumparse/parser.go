package ucumparse

import (
	"fmt"
	"strconv"

	"github.com/ucum-go/ucum/pkg/atomtable"
	"github.com/ucum-go/ucum/pkg/ucumerr"
	"github.com/ucum-go/ucum/pkg/ucumlex"
	"github.com/ucum-go/ucum/pkg/unit"
)

// Result is the outcome of parsing one expression.
type Result struct {
	Unit     unit.Unit
	Warnings []string // non-fatal advisories; present even on success
	Err      error    // nil on success
}

// Parse lexes and parses s into a Unit against tbl. A failure always
// carries a *ucumerr.Error (or, for an unresolved atom, an
// *UnknownAtomError wrapping one); callers that need a Kind should use
// errors.As/ucumerr.Is rather than string-matching Err.Error().
func Parse(s string, tbl *atomtable.Table, opts Options) Result {
	if s == "" {
		return Result{Err: ucumerr.New(ucumerr.EmptyInput, -1, "no unit string specified")}
	}

	rewritten, annotations, err := ucumlex.ExtractAnnotations(s)
	if err != nil {
		return Result{Err: err}
	}
	if err := ucumlex.CheckBalance(rewritten); err != nil {
		return Result{Err: err}
	}
	repaired, siblingWarnings := ucumlex.RepairSiblingNumbers(rewritten)

	warnings := append([]string(nil), siblingWarnings...)

	tokens, err := ucumlex.Lex(repaired)
	if err != nil {
		return Result{Err: err}
	}
	if len(tokens) == 1 && tokens[0].Kind == ucumlex.ComponentAnnotation {
		text := annotations[tokens[0].AnnotationIndex]
		warnings = append(warnings, annotationOnlyAdvisory(s, text, tbl))
	}

	u, err := parseTokens(tokens, tbl, opts, &warnings)
	if err != nil {
		return Result{Warnings: warnings, Err: err}
	}
	return Result{Unit: u, Warnings: warnings}
}

// annotationOnlyAdvisory explains a bare `{…}` input. If the
// annotation text happens to spell a bracketed atom's inner code
// (e.g. "degF" for "[degF]"), the advisory names that atom by way of
// the classic "did you mean" message; otherwise it simply notes that
// the input denotes the dimensionless unit 1.
func annotationOnlyAdvisory(original, text string, tbl *atomtable.Table) string {
	if a, ok := tbl.AtomByCaseSensitive("[" + text + "]"); ok {
		return fmt.Sprintf("%q is a valid unit expression, but did you mean %s (%s)?", original, a.CSCode, a.Name)
	}
	return fmt.Sprintf("%q is a bare annotation and denotes the dimensionless unit 1", original)
}

// parseTokens folds a flat token stream (Expression := Term (('.'|'/') Term)*)
// left-to-right into a single Unit, recursing into pkg/ucumlex's
// already-extracted group text for a parenthesised Term.
func parseTokens(tokens []ucumlex.Token, tbl *atomtable.Table, opts Options, warnings *[]string) (unit.Unit, error) {
	if len(tokens) == 0 {
		return unit.Dimensionless(), nil
	}

	var result unit.Unit
	for i, tok := range tokens {
		operand, err := resolveComponent(tok, tbl, opts, warnings)
		if err != nil {
			return unit.Unit{}, err
		}
		if tok.HasExponent {
			if err := operand.Power(tok.Exponent); err != nil {
				return unit.Unit{}, err
			}
		}

		if i == 0 {
			result = operand
			continue
		}
		switch tok.Op {
		case '.':
			result, err = result.MultiplyThese(operand)
		case '/':
			result, err = result.Divide(operand)
		default:
			return unit.Unit{}, ucumerr.New(ucumerr.UnknownAtom, tok.Pos, "expected '.' or '/' before %q", tok.Raw)
		}
		if err != nil {
			return unit.Unit{}, err
		}
	}
	return result, nil
}

// resolveComponent resolves a single Term (minus its exponent, applied
// by the caller) into a Unit.
func resolveComponent(tok ucumlex.Token, tbl *atomtable.Table, opts Options, warnings *[]string) (unit.Unit, error) {
	switch tok.Kind {
	case ucumlex.ComponentNumber:
		n, err := strconv.ParseInt(tok.Raw, 10, 64)
		if err != nil {
			return unit.Unit{}, ucumerr.New(ucumerr.UnknownAtom, tok.Pos, "%q is not a valid number", tok.Raw)
		}
		return unit.FromInteger(n), nil
	case ucumlex.ComponentAnnotation:
		// Annotation text carries no semantics (spec §4.5 step 1).
		return unit.Dimensionless(), nil
	case ucumlex.ComponentGroup:
		inner, err := ucumlex.Lex(tok.Raw)
		if err != nil {
			return unit.Unit{}, err
		}
		return parseTokens(inner, tbl, opts, warnings)
	default:
		return resolveAtom(tok, tbl, opts, warnings)
	}
}
