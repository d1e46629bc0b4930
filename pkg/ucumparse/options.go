package ucumparse

import "github.com/ucum-go/ucum/pkg/suggest"

// Options configures a single Parse call. The zero Options is usable:
// no case-insensitive fallback, no suggestions.
type Options struct {
	// CaseInsensitive enables the case-insensitive atom lookup fallback
	// (spec §4.5 step 5(iii)); a prefix in front of the atom is still
	// matched case-sensitively. Every use of the fallback adds
	// a warning to the result even on overall success.
	CaseInsensitive bool
	// Suggest, if non-nil, is consulted for candidate atoms when a
	// token cannot be resolved at all.
	Suggest *suggest.Index
	// MaxSuggestions caps how many candidates Suggest.Lookup returns;
	// 0 defers to suggest's own default.
	MaxSuggestions int
}
