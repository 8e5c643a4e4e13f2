// Package report holds the presentation-neutral shapes shared by the
// renderers: error reports and input suggestions.
package report

import (
	"github.com/arthur-debert/guess/pkg/errors"
	"github.com/arthur-debert/guess/pkg/interpreters"
)

// Suggestion is an example invocation offered after a failed conversion
type Suggestion struct {
	Command     string `json:"command" yaml:"command"`
	Description string `json:"description" yaml:"description"`
}

// Error is the structured form of a failure
type Error struct {
	Error       string       `json:"error" yaml:"error"`
	Code        string       `json:"code,omitempty" yaml:"code,omitempty"`
	Input       *string      `json:"input,omitempty" yaml:"input,omitempty"`
	Suggestions []Suggestion `json:"suggestions,omitempty" yaml:"suggestions,omitempty"`
}

// Suggestions returns one example command per domain
func Suggestions() []Suggestion {
	var out []Suggestion
	for _, ex := range interpreters.Examples() {
		out = append(out, Suggestion{
			Command:     "guess " + ex.Input,
			Description: ex.Description,
		})
	}
	return out
}

// Unrecognized reports whether err is an unrecognized-input failure and
// returns the offending input.
func Unrecognized(err error) (string, bool) {
	if !errors.IsErrorCode(err, errors.ErrUnrecognizedInput) {
		return "", false
	}
	return errors.Input(err)
}

// UnrecognizedMessage is the headline shown for input nothing could read
func UnrecognizedMessage(raw string) string {
	return "Unable to interpret '" + raw + "'"
}

// FromError builds the structured report for err
func FromError(err error) Error {
	r := Error{Error: err.Error()}
	if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
		r.Code = string(code)
	}
	if raw, ok := Unrecognized(err); ok {
		r.Error = UnrecognizedMessage(raw)
		r.Input = &raw
		r.Suggestions = Suggestions()
	}
	return r
}
