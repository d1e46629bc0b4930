package ucumparse

import (
	"errors"
	"math"
	"testing"

	"github.com/ucum-go/ucum/pkg/atomtable"
	"github.com/ucum-go/ucum/pkg/dimension"
	"github.com/ucum-go/ucum/pkg/suggest"
	"github.com/ucum-go/ucum/pkg/ucumerr"
)

func TestParseEmptyInput(t *testing.T) {
	res := Parse("", atomtable.MustDefault(), Options{})
	if res.Err == nil || !ucumerr.Is(res.Err, ucumerr.EmptyInput) {
		t.Fatalf("expected EmptyInput, got %v", res.Err)
	}
}

func TestParseDoublePrefixRejected(t *testing.T) {
	res := Parse("mcg", atomtable.MustDefault(), Options{})
	if res.Err == nil {
		t.Fatal("expected mcg to be rejected as a double prefix")
	}
	var unknown *UnknownAtomError
	if !errors.As(res.Err, &unknown) {
		t.Fatalf("expected *UnknownAtomError, got %T: %v", res.Err, res.Err)
	}
}

func TestParseLoneAnnotationIsValidWithAdvisory(t *testing.T) {
	res := Parse("{g}", atomtable.MustDefault(), Options{})
	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	if !res.Unit.Dim.IsZero() {
		t.Fatalf("expected dimensionless unit, got %+v", res.Unit.Dim)
	}
	if len(res.Warnings) == 0 {
		t.Fatal("expected at least one advisory message")
	}
}

func TestParseAnnotationMatchingBracketedAtomAdvises(t *testing.T) {
	res := Parse("{degF}", atomtable.MustDefault(), Options{})
	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	if len(res.Warnings) == 0 {
		t.Fatalf("expected a did-you-mean advisory")
	}
}

func TestParseAnnotationNeutrality(t *testing.T) {
	tbl := atomtable.MustDefault()
	plain := Parse("g", tbl, Options{})
	annotated := Parse("g{total}", tbl, Options{})
	if plain.Err != nil || annotated.Err != nil {
		t.Fatalf("unexpected errors: %v, %v", plain.Err, annotated.Err)
	}
	if !plain.Unit.Equals(annotated.Unit) {
		t.Fatalf("annotated atom should equal the bare atom: %+v vs %+v", annotated.Unit, plain.Unit)
	}
}

func TestParseQuotientWithExponents(t *testing.T) {
	tbl := atomtable.MustDefault()
	res := Parse("cm2/ms3", tbl, Options{})
	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	mag, _ := res.Unit.Magnitude.Float64()
	if math.Abs(mag-100000) > 1e-6 {
		t.Fatalf("expected magnitude 100000, got %v", mag)
	}
	if res.Unit.Dim.At(dimension.Length) != 2 || res.Unit.Dim.At(dimension.Time) != -3 {
		t.Fatalf("unexpected dimension: %+v", res.Unit.Dim)
	}
}

func TestParseLeadingSlash(t *testing.T) {
	tbl := atomtable.MustDefault()
	res := Parse("/g", tbl, Options{})
	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	if res.Unit.Dim.At(dimension.Mass) != -1 {
		t.Fatalf("expected mass exponent -1, got %+v", res.Unit.Dim)
	}
}

func TestParseMolecularConcentrationProperty(t *testing.T) {
	tbl := atomtable.MustDefault()
	res := Parse("mmol/L", tbl, Options{})
	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	if res.Unit.Property != "substance concentration" {
		t.Fatalf("expected substance concentration property, got %q", res.Unit.Property)
	}
}

func TestParseSiblingNumberRepairAdvisory(t *testing.T) {
	tbl := atomtable.MustDefault()
	res := Parse("78.4(mmol/L)/s", tbl, Options{})
	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	if len(res.Warnings) == 0 {
		t.Fatal("expected a sibling-number repair advisory")
	}
}

func TestParseUnbalancedParentheses(t *testing.T) {
	res := Parse("(kg.m", atomtable.MustDefault(), Options{})
	if res.Err == nil || !ucumerr.Is(res.Err, ucumerr.UnbalancedParentheses) {
		t.Fatalf("expected UnbalancedParentheses, got %v", res.Err)
	}
}

func TestParseUnknownAtomOffersSuggestions(t *testing.T) {
	tbl := atomtable.MustDefault()
	idx := suggest.NewIndex(tbl)
	res := Parse("gramx", tbl, Options{Suggest: idx, MaxSuggestions: 3})
	var unknown *UnknownAtomError
	if !errors.As(res.Err, &unknown) {
		t.Fatalf("expected *UnknownAtomError, got %T: %v", res.Err, res.Err)
	}
	if len(unknown.Suggestions) == 0 {
		t.Fatal("expected at least one suggestion")
	}
}

func TestParseCaseInsensitiveFallback(t *testing.T) {
	tbl := atomtable.MustDefault()
	res := Parse("MOL", tbl, Options{CaseInsensitive: true})
	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	if len(res.Warnings) == 0 {
		t.Fatal("expected a case-insensitive fallback warning")
	}
}

func TestParseCaseSensitiveRejectsWrongCase(t *testing.T) {
	res := Parse("MOL", atomtable.MustDefault(), Options{})
	if res.Err == nil {
		t.Fatal("expected MOL to be rejected without case-insensitive mode")
	}
}
