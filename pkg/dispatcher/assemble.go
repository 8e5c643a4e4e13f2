package dispatcher

import (
	"github.com/arthur-debert/guess/pkg/errors"
	"github.com/arthur-debert/guess/pkg/logging"
	"github.com/arthur-debert/guess/pkg/types"
)

// candidate is an interpretation that passed filtering, with the variant
// labels its interpreter prefers as a representative.
type candidate struct {
	interpretation types.Interpretation
	prefer         []string
}

// assemble picks the result mode from the surviving candidates
func assemble(raw string, survivors []candidate) (types.DispatchResult, error) {
	logger := logging.GetLogger("dispatcher")

	switch len(survivors) {
	case 0:
		logger.Debug().Str("input", raw).Msg("No interpretation survived")
		return types.DispatchResult{}, errors.Unrecognized(raw)
	case 1:
		logger.Debug().Str("domain", survivors[0].interpretation.Domain.String()).Msg("Single interpretation, focused result")
		return types.Focused(raw, survivors[0].interpretation), nil
	default:
		result := ambiguous(raw, survivors)
		logger.Debug().Interface("domains", result.Domains()).Msg("Several interpretations, ambiguous result")
		return result, nil
	}
}

// ambiguous keeps one representative variant per interpretation
func ambiguous(raw string, candidates []candidate) types.DispatchResult {
	out := make([]types.Interpretation, len(candidates))
	for i, c := range candidates {
		out[i] = c.interpretation.Truncate(c.interpretation.Representative(c.prefer))
	}
	return types.Ambiguous(raw, out)
}
