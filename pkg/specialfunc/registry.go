package specialfunc

import "math"

// Pair is a forward/inverse conversion function pair. From converts a
// value on the special scale to the unit's ratio-scale base (e.g.
// Celsius degrees to Kelvin); To is its inverse. Both are pure and
// stateless.
type Pair struct {
	From func(x float64) float64
	To   func(x float64) float64
}

var registry = map[string]Pair{}

// Register adds a named function pair to the registry. Intended to be
// called from init() only; a name registered twice overwrites the
// earlier entry, matching the teacher's function-registry idiom which
// has the same last-write-wins behavior.
func Register(name string, pair Pair) {
	registry[name] = pair
}

// ForName looks up a special function pair by name. The second return
// value is false when name is not registered, which callers should
// treat as UnknownSpecialFunction — a catalog/data bug, not a user
// error, since atoms are only ever seeded with names that exist here.
func ForName(name string) (Pair, bool) {
	p, ok := registry[name]
	return p, ok
}

func init() {
	Register("Cel", Pair{
		From: func(x float64) float64 { return x + 273.15 },
		To:   func(x float64) float64 { return x - 273.15 },
	})

	Register("degF", Pair{
		From: func(f float64) float64 { return (f + 459.67) * 5.0 / 9.0 },
		To:   func(k float64) float64 { return k*9.0/5.0 - 459.67 },
	})

	Register("pH", Pair{
		From: func(x float64) float64 { return math.Pow(10, -x) },
		To:   func(x float64) float64 { return -math.Log10(x) },
	})

	Register("ln", Pair{
		From: func(x float64) float64 { return math.Exp(x) },
		To:   func(x float64) float64 { return math.Log(x) },
	})

	Register("lg", Pair{
		From: func(x float64) float64 { return math.Pow(10, x) },
		To:   func(x float64) float64 { return math.Log10(x) },
	})

	Register("2lg", Pair{
		From: func(x float64) float64 { return math.Pow(10, x/2) },
		To:   func(x float64) float64 { return 2 * math.Log10(x) },
	})

	Register("tan", Pair{
		From: func(x float64) float64 { return math.Tan(x) },
		To:   func(x float64) float64 { return math.Atan(x) },
	})
}
