package ucumerr

import (
	"errors"
	"testing"
)

func TestNewAndIs(t *testing.T) {
	err := New(UnknownAtom, 3, "unrecognized atom %q", "xyz")

	if !Is(err, UnknownAtom) {
		t.Fatal("Is(err, UnknownAtom) = false")
	}
	if Is(err, DoublePrefix) {
		t.Fatal("Is(err, DoublePrefix) = true, want false")
	}
	if got := err.Error(); got == "" {
		t.Fatal("Error() returned empty string")
	}
}

func TestErrorsIsSentinel(t *testing.T) {
	err := New(IncommensurableUnits, -1, "g cannot be converted to /g")
	if !errors.Is(err, Sentinel(IncommensurableUnits)) {
		t.Fatal("errors.Is against sentinel failed")
	}
}

func TestKindString(t *testing.T) {
	if Kind(999).String() != "Unknown" {
		t.Fatal("unknown kind should stringify as Unknown")
	}
	if EmptyInput.String() != "EmptyInput" {
		t.Fatalf("EmptyInput.String() = %q", EmptyInput.String())
	}
}

func TestNoPositionOmitsOffset(t *testing.T) {
	err := New(EmptyInput, -1, "no unit string specified")
	if got := err.Error(); got != "no unit string specified" {
		t.Fatalf("Error() = %q, want no offset prefix", got)
	}
}
