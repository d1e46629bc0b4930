package ucum

import (
	"context"
)

// Options configures an Engine.
type Options struct {
	// Ctx is reserved for future cancellation; every Engine operation
	// is finite and bounded by input length, so nothing currently
	// consults it (spec §5).
	Ctx context.Context

	// CaseInsensitive enables the parser's case-insensitive atom
	// fallback; every use still emits a warning message.
	CaseInsensitive bool

	// Suggestions toggles whether an unresolved atom, or a CheckSynonyms
	// miss, is offered candidates from the suggestion index at all. The
	// Engine always builds the index (it's cheap and immutable per
	// table); this only gates whether callers see it.
	Suggestions bool

	// MaxSuggestions caps how many candidates a failed lookup offers.
	MaxSuggestions int

	// MolecularWeight is the default molecular weight (g/mol) applied
	// to a ConvertUnitTo call that needs one and was not given a
	// per-call weight. Nil means no default.
	MolecularWeight *float64
}

// DefaultOptions returns the options an Engine uses when no Option is
// supplied: case-sensitive matching, suggestions on, up to three
// candidates, no default molecular weight.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		Suggestions:    true,
		MaxSuggestions: 3,
	}
}

// Option is a functional option for configuring an Engine.
type Option func(*Options)

// WithContext sets the context carried by the Engine.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		o.Ctx = ctx
	}
}

// WithCaseInsensitive toggles the parser's case-insensitive fallback.
func WithCaseInsensitive(enabled bool) Option {
	return func(o *Options) {
		o.CaseInsensitive = enabled
	}
}

// WithMaxSuggestions caps how many suggestion candidates are offered.
func WithMaxSuggestions(n int) Option {
	return func(o *Options) {
		o.MaxSuggestions = n
	}
}

// WithMolecularWeight sets the default molecular weight (g/mol) used
// to bridge a mass-concentration/substance-concentration conversion
// when a ConvertUnitTo call does not supply its own.
func WithMolecularWeight(gramsPerMole float64) Option {
	return func(o *Options) {
		o.MolecularWeight = &gramsPerMole
	}
}

// WithSuggestions toggles whether unresolved atoms and CheckSynonyms
// misses are offered candidates from the suggestion index.
func WithSuggestions(enabled bool) Option {
	return func(o *Options) {
		o.Suggestions = enabled
	}
}
