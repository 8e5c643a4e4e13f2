// Package interpreters turns recognized input into typed interpretations,
// one interpreter per domain. The interpreters are plain values collected in
// an ordered table; the dispatcher walks that table instead of relying on
// dynamic registration.
package interpreters

import (
	"time"

	"github.com/arthur-debert/guess/pkg/errors"
	"github.com/arthur-debert/guess/pkg/recognizer"
	"github.com/arthur-debert/guess/pkg/types"
)

// Interpreter is one row of the capability table
type Interpreter struct {
	Domain types.Domain

	// CanInterpret is a cheap yes/no check on the input
	CanInterpret func(raw string, h recognizer.Hints) bool

	// Interpret produces the interpretations. It returns a PARSE error when
	// CanInterpret would have rejected the input.
	Interpret func(raw string, h recognizer.Hints) ([]types.Interpretation, error)

	// Prefer lists variant labels in order of preference for the
	// representative shown in ambiguous results.
	Prefer []string
}

// Env carries the ambient values interpreters must not read themselves
type Env struct {
	Now      time.Time
	Location *time.Location
}


func (e Env) location() *time.Location {
	if e.Location == nil {
		return time.UTC
	}
	return e.Location
}

// Settings are the tunable thresholds used by the interpreters and by the
// dispatcher's plausibility filters.
type Settings struct {
	HumanMin float64
	HumanMax float64
	// HumanThousands allows the "thousand" magnitude word
	HumanThousands bool
	ScientificMin  float64
	MinYear        int
	MaxYear        int
	MinByteCount   uint64
}

// DefaultSettings returns the built-in thresholds
func DefaultSettings() Settings {
	return Settings{
		HumanMin:      100000,
		HumanMax:      1e15,
		ScientificMin: 1000000,
		MinYear:       1970,
		MaxYear:       2100,
		MinByteCount:  1024,
	}
}

// Table returns the interpreters in dispatch order
func Table(env Env, s Settings) []Interpreter {
	return []Interpreter{
		Number(s),
		Timestamp(env),
		Duration(),
		ByteSize(),
		Color(),
		Permission(),
	}
}

// Find returns the table row for d
func Find(table []Interpreter, d types.Domain) (Interpreter, bool) {
	for _, in := range table {
		if in.Domain == d {
			return in, true
		}
	}
	return Interpreter{}, false
}

// single wraps a one-result parse into the Interpret signature
func single(domain types.Domain, build func(raw string, h recognizer.Hints) (types.Interpretation, bool)) func(string, recognizer.Hints) ([]types.Interpretation, error) {
	return func(raw string, h recognizer.Hints) ([]types.Interpretation, error) {
		in, ok := build(raw, h)
		if !ok {
			return nil, errors.Parse(domain.String(), raw)
		}
		return []types.Interpretation{in}, nil
	}
}

// variants accumulates labeled values, skipping values already present
type variants []types.Variant

func (v *variants) add(label, value string) {
	for _, existing := range *v {
		if existing.Value == value {
			return
		}
	}
	*v = append(*v, types.Variant{Label: label, Value: value})
}
