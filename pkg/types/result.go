package types

// Mode selects the output shape of a DispatchResult
type Mode string

const (
	// ModeAmbiguous shows one representative variant per interpretation
	ModeAmbiguous Mode = "ambiguous"
	// ModeFocused shows every variant of a single interpretation
	ModeFocused Mode = "focused"
)

// DispatchResult is what the dispatcher hands to the presentation layer
type DispatchResult struct {
	Input           string           `json:"input" yaml:"input"`
	Mode            Mode             `json:"mode" yaml:"mode"`
	Interpretations []Interpretation `json:"interpretations" yaml:"interpretations"`
}

// Ambiguous builds a Mode 1 result
func Ambiguous(input string, interpretations []Interpretation) DispatchResult {
	return DispatchResult{Input: input, Mode: ModeAmbiguous, Interpretations: interpretations}
}

// Focused builds a Mode 2 result
func Focused(input string, interpretation Interpretation) DispatchResult {
	return DispatchResult{Input: input, Mode: ModeFocused, Interpretations: []Interpretation{interpretation}}
}

// Domains returns the domain of each interpretation, in order
func (r DispatchResult) Domains() []Domain {
	out := make([]Domain, len(r.Interpretations))
	for i, in := range r.Interpretations {
		out[i] = in.Domain
	}
	return out
}
