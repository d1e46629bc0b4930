package dimension

import "testing"

func TestNullPropagation(t *testing.T) {
	var null Vector
	length := New([7]int32{1, 0, 0, 0, 0, 0, 0})

	if got := null.Add(length); !got.Equal(length) {
		t.Fatalf("Add onto null = %v, want %v", got, length)
	}
	if got := null.Sub(length); !got.Equal(length.Minus()) {
		t.Fatalf("Sub onto null = %v, want %v", got, length.Minus())
	}
	if !null.IsNull() {
		t.Fatal("zero-value Vector should be null")
	}
	if null.IsZero() {
		t.Fatal("null vector must not report IsZero")
	}
}

func TestZeroIsDimensionless(t *testing.T) {
	z := Zero()
	if z.IsNull() {
		t.Fatal("Zero() must not be null")
	}
	if !z.IsZero() {
		t.Fatal("Zero() must be all-zero")
	}
}

func TestAddSubMulMinus(t *testing.T) {
	mass := New([7]int32{0, 0, 1, 0, 0, 0, 0})
	time := New([7]int32{0, 1, 0, 0, 0, 0, 0})

	sum := mass.Add(time)
	if sum.At(Mass) != 1 || sum.At(Time) != 1 {
		t.Fatalf("Add = %v", sum)
	}

	diff := mass.Sub(time)
	if diff.At(Mass) != 1 || diff.At(Time) != -1 {
		t.Fatalf("Sub = %v", diff)
	}

	squared := mass.Mul(2)
	if squared.At(Mass) != 2 {
		t.Fatalf("Mul = %v", squared)
	}

	neg := mass.Minus()
	if neg.At(Mass) != -1 {
		t.Fatalf("Minus = %v", neg)
	}
}

func TestEqual(t *testing.T) {
	a := New([7]int32{1, 2, 3, 0, 0, 0, 0})
	b := New([7]int32{1, 2, 3, 0, 0, 0, 0})
	c := New([7]int32{1, 2, 4, 0, 0, 0, 0})

	if !a.Equal(b) {
		t.Fatal("equal vectors compared unequal")
	}
	if a.Equal(c) {
		t.Fatal("unequal vectors compared equal")
	}
	var null Vector
	if a.Equal(null) || null.Equal(a) {
		t.Fatal("null vector must never equal a present one")
	}
}

func TestDimensionPreservation(t *testing.T) {
	a := New([7]int32{1, 0, 0, 0, 0, 0, 0})
	b := New([7]int32{0, 1, 0, 0, 0, 0, 0})

	if got := a.Add(b); got.At(Length) != 1 || got.At(Time) != 1 {
		t.Fatalf("dim(A.B) != dim(A)+dim(B): %v", got)
	}
	if got := a.Sub(b); got.At(Length) != 1 || got.At(Time) != -1 {
		t.Fatalf("dim(A/B) != dim(A)-dim(B): %v", got)
	}
	if got := a.Mul(3); got.At(Length) != 3 {
		t.Fatalf("dim(A^p) != p*dim(A): %v", got)
	}
}
