package unit

import "strconv"

// combineCodes joins two code fragments with op ("." or "/"), treating
// an empty fragment (the dimensionless identity) as absent rather than
// literal text.
func combineCodes(a, b, op string) string {
	switch {
	case a == "" && b == "":
		return ""
	case a == "":
		if op == "/" {
			return "/" + b
		}
		return b
	case b == "":
		return a
	default:
		return a + op + b
	}
}

// combineNames joins two display names with an infix operator glyph,
// treating an empty name as absent.
func combineNames(a, b, op string) string {
	switch {
	case a == "" && b == "":
		return ""
	case a == "":
		return b
	case b == "":
		return a
	default:
		return a + op + b
	}
}

// invertName renders the reciprocal of a display name, used when the
// numerator of a division carries no name of its own (e.g. dividing a
// bare number by a named unit).
func invertName(name string) string {
	if name == "" {
		return name
	}
	return "1/" + name
}

// invertString renders the reciprocal of a code string. A leading '/'
// marks reciprocal form, so a string that already starts with one is
// un-inverted by stripping it. Otherwise the first '.' or '/'
// separator found (there is at most one kind of interest: whichever
// appears first) is swapped with the other, and '/' is prepended.
// Three cases fully determine the rule: "m/s" -> "/m.s" (the '/'
// becomes '.'), "m.s" -> "/m.s" (no '/' to swap into, so the '.' is
// left alone), "/m.s" -> "m.s" (strip the leading marker).
func invertString(s string) string {
	if len(s) > 0 && s[0] == '/' {
		return s[1:]
	}
	dot := indexByte(s, '.')
	slash := indexByte(s, '/')
	switch {
	case dot == -1 && slash == -1:
		return "/" + s
	case dot == -1:
		b := []byte(s)
		b[slash] = '.'
		return "/" + string(b)
	case slash == -1:
		return "/" + s
	default:
		b := []byte(s)
		if dot < slash {
			b[dot], b[slash] = '/', '.'
		} else {
			b[slash], b[dot] = '.', '/'
		}
		return "/" + string(b)
	}
}

func indexByte(s string, c byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == c {
			return i
		}
	}
	return -1
}

// powerString rewrites every atom/integer token in a code string under
// exponentiation by p: a pure-integer token is raised to p, an atom
// token has its trailing signed exponent (if any) multiplied by p, or
// p appended as a fresh exponent when it had none.
func powerString(s string, p int32) string {
	if s == "" {
		return s
	}
	tokens := tokenizeRuns(s)
	for i, tok := range tokens {
		if tok == "." || tok == "/" {
			continue
		}
		if n, err := strconv.Atoi(tok); err == nil {
			tokens[i] = strconv.Itoa(ipow(n, p))
			continue
		}
		atom, exp, hasExp := splitTrailingExponent(tok)
		var newExp int32
		if hasExp {
			newExp = exp * p
		} else {
			newExp = p
		}
		if newExp == 1 {
			tokens[i] = atom
		} else {
			tokens[i] = atom + strconv.Itoa(int(newExp))
		}
	}
	out := ""
	for _, t := range tokens {
		out += t
	}
	return out
}

func ipow(base int, exp int32) int {
	result := 1
	neg := exp < 0
	if neg {
		exp = -exp
	}
	for i := int32(0); i < exp; i++ {
		result *= base
	}
	if neg {
		if result == 0 {
			return 0
		}
		return 1 / result
	}
	return result
}

// tokenizeRuns splits a code string into atom runs and single-character
// operator tokens ('.' and '/'), preserving order.
func tokenizeRuns(s string) []string {
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '.' || s[i] == '/' {
			if i > start {
				out = append(out, s[start:i])
			}
			out = append(out, string(s[i]))
			start = i + 1
		}
	}
	if start < len(s) {
		out = append(out, s[start:])
	}
	return out
}

// splitTrailingExponent separates a token like "m2" or "s-2" into its
// atom part and signed integer exponent. A token that is all digits
// (with at most a leading sign) is not an atom+exponent pair and is
// reported as having no exponent.
func splitTrailingExponent(tok string) (atom string, exp int32, hasExp bool) {
	i := len(tok)
	for i > 0 && tok[i-1] >= '0' && tok[i-1] <= '9' {
		i--
	}
	if i == len(tok) {
		return tok, 0, false
	}
	j := i
	sign := int32(1)
	if j > 0 && (tok[j-1] == '-' || tok[j-1] == '+') {
		if tok[j-1] == '-' {
			sign = -1
		}
		j--
	}
	if j == 0 {
		return tok, 0, false
	}
	n, err := strconv.Atoi(tok[i:])
	if err != nil {
		return tok, 0, false
	}
	return tok[:j], sign * int32(n), true
}
