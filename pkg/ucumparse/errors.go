package ucumparse

import "github.com/ucum-go/ucum/pkg/suggest"

// UnknownAtomError wraps the ucumerr.Error raised when a token cannot
// be resolved against the catalog, carrying along whatever
// suggestions the suggestion index offered so the caller (pkg/ucum)
// can surface them without re-running the lookup.
type UnknownAtomError struct {
	Err         error
	Code        string
	Suggestions []suggest.Candidate
}

func (e *UnknownAtomError) Error() string {
	return e.Err.Error()
}

func (e *UnknownAtomError) Unwrap() error {
	return e.Err
}
