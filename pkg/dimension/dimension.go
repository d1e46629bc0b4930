package dimension

// Size is the number of UCUM base dimensions tracked by a Vector:
// length, time, mass, plane-angle, temperature, electric charge, and
// luminous intensity, in that order.
const Size = 7

// Index names the slot of each base dimension within a Vector.
const (
	Length Index = iota
	Time
	Mass
	PlaneAngle
	Temperature
	Charge
	LuminousIntensity
)

// Index selects one component of a Vector.
type Index int

// Vector is a fixed-length signed-integer exponent vector. The zero
// Vector is the absent (null) vector, not the dimensionless vector;
// use Zero to build an explicit all-zero (dimensionless) Vector.
type Vector struct {
	present bool
	exp     [Size]int32
}

// Zero returns the dimensionless vector: present, every component 0.
func Zero() Vector {
	return Vector{present: true}
}

// IsNull reports whether the vector is absent rather than zero.
// A null vector arises only before any dimensioned quantity has been
// combined into a Unit; algebra on a null vector adopts the other
// operand's vector rather than failing (spec §4.1).
func (v Vector) IsNull() bool {
	return !v.present
}

// IsZero reports whether every component is 0, i.e. the unit carrying
// this vector is dimensionless. A null vector is not zero.
func (v Vector) IsZero() bool {
	if !v.present {
		return false
	}
	for _, c := range v.exp {
		if c != 0 {
			return false
		}
	}
	return true
}

// At returns the exponent at idx.
func (v Vector) At(idx Index) int32 {
	return v.exp[idx]
}

// New builds a present Vector from the given exponents, in Index order.
func New(exp [Size]int32) Vector {
	return Vector{present: true, exp: exp}
}

// Clone returns a copy of v. Vector is a value type, so this is
// provided for symmetry with Atom/Unit.Clone and for callers holding
// a pointer.
func (v Vector) Clone() Vector {
	return v
}

// Add returns the component-wise sum of v and other. If v is null the
// result is other; if other is null the result is v.
func (v Vector) Add(other Vector) Vector {
	if !v.present {
		return other
	}
	if !other.present {
		return v
	}
	var out Vector
	out.present = true
	for i := range out.exp {
		out.exp[i] = v.exp[i] + other.exp[i]
	}
	return out
}

// Sub returns the component-wise difference v - other. If v is null
// the result is other negated; if other is null the result is v.
func (v Vector) Sub(other Vector) Vector {
	if !v.present {
		return other.Minus()
	}
	if !other.present {
		return v
	}
	var out Vector
	out.present = true
	for i := range out.exp {
		out.exp[i] = v.exp[i] - other.exp[i]
	}
	return out
}

// Mul scales every component by p (used by Unit.power).
func (v Vector) Mul(p int32) Vector {
	if !v.present {
		return v
	}
	var out Vector
	out.present = true
	for i := range out.exp {
		out.exp[i] = v.exp[i] * p
	}
	return out
}

// Minus negates every component.
func (v Vector) Minus() Vector {
	if !v.present {
		return v
	}
	var out Vector
	out.present = true
	for i := range out.exp {
		out.exp[i] = -v.exp[i]
	}
	return out
}

// Equal reports component-wise equality. Two null vectors are equal;
// a null vector is never equal to a present one, even an all-zero one.
func (v Vector) Equal(other Vector) bool {
	if v.present != other.present {
		return false
	}
	if !v.present {
		return true
	}
	return v.exp == other.exp
}
