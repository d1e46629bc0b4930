package ucum

import (
	"math"
	"testing"
)

func approx(a, b, tol float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= tol
}

func TestValidateEmptyInputIsError(t *testing.T) {
	res := Default().Validate("", false)
	if res.Status != StatusError {
		t.Fatalf("status = %v, want error", res.Status)
	}
	if len(res.Msg) != 1 || res.Msg[0] != "No unit string specified." {
		t.Fatalf("msg = %v", res.Msg)
	}
}

func TestValidateDoublePrefixIsInvalid(t *testing.T) {
	res := Default().Validate("mcg", false)
	if res.Status != StatusInvalid {
		t.Fatalf("status = %v, want invalid", res.Status)
	}
}

func TestValidateBareAnnotationIsValidWithAdvisory(t *testing.T) {
	res := Default().Validate("{g}", false)
	if res.Status != StatusValid {
		t.Fatalf("status = %v, want valid", res.Status)
	}
	if len(res.Msg) == 0 {
		t.Fatal("expected at least one advisory message")
	}
}

func TestConvertCaratFromGrams(t *testing.T) {
	res := Default().ConvertUnitTo("g", 56, "[car_m]", false, nil)
	if res.Status != StatusSucceeded {
		t.Fatalf("status = %v, msg = %v", res.Status, res.Msg)
	}
	if !approx(res.ToVal, 280, 1e-9) {
		t.Fatalf("toVal = %v, want 280", res.ToVal)
	}
}

func TestConvertFahrenheitToCelsius(t *testing.T) {
	res := Default().ConvertUnitTo("[degF]", 0, "Cel", false, nil)
	if res.Status != StatusSucceeded {
		t.Fatalf("status = %v, msg = %v", res.Status, res.Msg)
	}
	if got := math.Round(res.ToVal * 100); got != -1778 {
		t.Fatalf("round(toVal*100) = %v, want -1778", got)
	}
}

func TestConvertMolarToMassConcentrationWithMolecularWeight(t *testing.T) {
	mw := 180.156
	res := Default().ConvertUnitTo("mmol/L", 5.33, "mg/dL", false, &mw)
	if res.Status != StatusSucceeded {
		t.Fatalf("status = %v, msg = %v", res.Status, res.Msg)
	}
	sigFigs := math.Round(res.ToVal)
	if sigFigs != 96 {
		t.Fatalf("toVal rounded = %v, want 96 (from %v)", sigFigs, res.ToVal)
	}
}

func TestConvertToBaseUnitsCompoundExpression(t *testing.T) {
	res := Default().ConvertToBaseUnits("cm2/ms3", 1)
	if res.Status != StatusSucceeded {
		t.Fatalf("status = %v, msg = %v", res.Status, res.Msg)
	}
	if !approx(res.Magnitude, 100000, 1e-6) {
		t.Fatalf("magnitude = %v, want 100000", res.Magnitude)
	}
	if res.FromUnitIsSpecial {
		t.Fatal("expected fromUnitIsSpecial = false")
	}
	if res.UnitToExp["m"] != 2 || res.UnitToExp["s"] != -3 {
		t.Fatalf("unitToExp = %v", res.UnitToExp)
	}
}

func TestConvertToBaseUnitsSpecialFunction(t *testing.T) {
	res := Default().ConvertToBaseUnits("[degF]", 32)
	if res.Status != StatusSucceeded {
		t.Fatalf("status = %v, msg = %v", res.Status, res.Msg)
	}
	if !approx(res.Magnitude, 273.15, 1e-6) {
		t.Fatalf("magnitude = %v, want 273.15", res.Magnitude)
	}
	if !res.FromUnitIsSpecial {
		t.Fatal("expected fromUnitIsSpecial = true")
	}
	if res.UnitToExp["K"] != 1 {
		t.Fatalf("unitToExp = %v", res.UnitToExp)
	}
}

func TestConvertArbitraryUnitIsRejected(t *testing.T) {
	res := Default().ConvertUnitTo("[iU]", 1, "g", false, nil)
	if res.Status != StatusFailed {
		t.Fatalf("status = %v, want failed", res.Status)
	}
	want := "Sorry. [iU] cannot be converted to g."
	if len(res.Msg) == 0 || res.Msg[len(res.Msg)-1] != want {
		t.Fatalf("msg = %v, want last entry %q", res.Msg, want)
	}

	res = Default().ConvertUnitTo("[arb'U]", 1, "[iU]", false, nil)
	if res.Status != StatusFailed {
		t.Fatalf("status = %v, want failed", res.Status)
	}
}

func TestConvertIncommensurableReciprocalFails(t *testing.T) {
	res := Default().ConvertUnitTo("g", 1, "/g", false, nil)
	if res.Status != StatusFailed {
		t.Fatalf("status = %v, want failed", res.Status)
	}
	want := "Sorry. g cannot be converted to /g."
	if len(res.Msg) == 0 || res.Msg[len(res.Msg)-1] != want {
		t.Fatalf("msg = %v, want last entry %q", res.Msg, want)
	}
}

func TestConvertSiblingNumberAdvisoryPrecedesIncommensurableMessage(t *testing.T) {
	res := Default().ConvertUnitTo("mol", 1, "78.4(mmol/L)/s", false, nil)
	if res.Status != StatusFailed {
		t.Fatalf("status = %v, want failed", res.Status)
	}
	if len(res.Msg) < 2 {
		t.Fatalf("expected at least two messages, got %v", res.Msg)
	}
	if res.Msg[len(res.Msg)-1] == "" {
		t.Fatal("expected a final incommensurability message")
	}
	first := res.Msg[0]
	if first == res.Msg[len(res.Msg)-1] {
		t.Fatal("expected the sibling-number advisory to precede the incommensurability message")
	}
}

func TestCheckSynonymsFindsKnownTerm(t *testing.T) {
	res := Default().CheckSynonyms("mole")
	if res.Status != StatusValid {
		t.Fatalf("status = %v, msg = %v", res.Status, res.Msg)
	}
	if len(res.Units) == 0 {
		t.Fatal("expected at least one synonym match")
	}
}

func TestCheckSynonymsNoMatch(t *testing.T) {
	res := Default().CheckSynonyms("xyzzy-not-a-unit")
	if res.Status != StatusInvalid {
		t.Fatalf("status = %v, want invalid", res.Status)
	}
}

func TestConvertUnknownUnitOffersSuggestions(t *testing.T) {
	res := Default().ConvertUnitTo("gramx", 1, "g", true, nil)
	if res.Status != StatusFailed {
		t.Fatalf("status = %v, want failed", res.Status)
	}
	if res.Suggestions == nil || len(res.Suggestions.From) == 0 {
		t.Fatal("expected a From suggestion block")
	}
}
