package ucum

// Status is the outcome of one Engine operation. Every operation uses
// the subset of these values its own contract names (spec §4.6/§6).
type Status string

const (
	StatusValid     Status = "valid"
	StatusInvalid   Status = "invalid"
	StatusError     Status = "error"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// UnitInfo names a resolved unit for display.
type UnitInfo struct {
	Code     string
	Name     string
	Guidance string
}

// SuggestionBlock bundles an advisory message with up to three
// candidate units for one invalid input string.
type SuggestionBlock struct {
	Msg         string
	InvalidUnit string
	Units       [][3]string // [code, name, guidance]
}

// Suggestions holds the suggestion blocks for a two-sided conversion:
// From for the source expression, To for the target.
type Suggestions struct {
	From []SuggestionBlock
	To   []SuggestionBlock
}

// Response is the shape returned by Validate and ConvertUnitTo.
type Response struct {
	Status Status
	Msg    []string // user-facing messages, warnings first

	Unit     *UnitInfo // set on Validate success
	UCUMCode string    // canonical cs-code, set on Validate success

	ToVal    float64 // set on ConvertUnitTo success
	FromUnit string  // canonical cs-code of the source, set once parsed
	ToUnit   string  // canonical cs-code of the target, set once parsed

	Suggestions *Suggestions
}

// BaseUnitsResponse is the shape returned by ConvertToBaseUnits.
type BaseUnitsResponse struct {
	Status            Status
	Magnitude         float64
	FromUnitIsSpecial bool
	UnitToExp         map[string]int32
	Msg               []string
}

// SynonymsResponse is the shape returned by CheckSynonyms.
type SynonymsResponse struct {
	Status Status
	Units  [][3]string // [code, name, guidance]
	Msg    []string
}
