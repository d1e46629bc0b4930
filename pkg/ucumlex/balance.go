package ucumlex

import "github.com/ucum-go/ucum/pkg/ucumerr"

// CheckBalance verifies that every '(' closes with ')' and every '['
// closes with ']' in s, reporting the byte offset of the first
// mismatch. s is expected to already have had its annotations
// extracted, since '{'/'}' play no role here.
func CheckBalance(s string) error {
	var parens, brackets []int
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			parens = append(parens, i)
		case ')':
			if len(parens) == 0 {
				return ucumerr.New(ucumerr.UnbalancedParentheses, i,
					"unexpected close parenthesis at %d", i)
			}
			parens = parens[:len(parens)-1]
		case '[':
			brackets = append(brackets, i)
		case ']':
			if len(brackets) == 0 {
				return ucumerr.New(ucumerr.UnbalancedBrackets, i,
					"unexpected close bracket at %d", i)
			}
			brackets = brackets[:len(brackets)-1]
		}
	}
	if len(parens) > 0 {
		pos := parens[len(parens)-1]
		return ucumerr.New(ucumerr.UnbalancedParentheses, pos,
			"missing close parenthesis for open parenthesis at %d", pos)
	}
	if len(brackets) > 0 {
		pos := brackets[len(brackets)-1]
		return ucumerr.New(ucumerr.UnbalancedBrackets, pos,
			"missing close bracket for open bracket at %d", pos)
	}
	return nil
}

// RepairSiblingNumbers rewrites an integer literal that sits directly
// against an opening parenthesis with no explicit operator between
// them (e.g. "4(mmol/L)") into explicit multiplication ("4.(mmol/L)"),
// and returns a non-fatal advisory describing each rewrite performed.
func RepairSiblingNumbers(s string) (string, []string) {
	var out []byte
	var warnings []string
	i := 0
	for i < len(s) {
		start := i
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
		digits := s[start:i]
		if digits != "" {
			out = append(out, digits...)
			if i < len(s) && s[i] == '(' {
				priorOK := start == 0 || s[start-1] == '.' || s[start-1] == '/' || s[start-1] == '('
				if priorOK {
					warnings = append(warnings, "'"+digits+"(' has no operator between the number and the parenthesis; treating it as '"+digits+".('")
					out = append(out, '.')
				}
			}
			continue
		}
		out = append(out, s[i])
		i++
	}
	return string(out), warnings
}
