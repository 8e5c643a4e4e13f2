package dispatcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/guess/pkg/errors"
	"github.com/arthur-debert/guess/pkg/types"
)

func TestAssemble(t *testing.T) {
	number := candidate{
		interpretation: types.Interpretation{
			Domain: types.DomainNumber,
			Variants: []types.Variant{
				{Label: "decimal", Value: "1,000,000"},
				{Label: "human", Value: "1 million"},
			},
		},
		prefer: []string{"human", "decimal"},
	}
	duration := candidate{
		interpretation: types.Interpretation{
			Domain: types.DomainDuration,
			Variants: []types.Variant{
				{Label: "human", Value: "11 days, 13 hours, 46 minutes, 40 seconds"},
				{Label: "compact", Value: "11d13h46m40s"},
			},
		},
	}

	t.Run("none is unrecognized", func(t *testing.T) {
		_, err := assemble("zzz", nil)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrUnrecognizedInput))
		raw, ok := errors.Input(err)
		assert.True(t, ok)
		assert.Equal(t, "zzz", raw)
	})

	t.Run("one is focused with every variant", func(t *testing.T) {
		result, err := assemble("1000000", []candidate{number})
		require.NoError(t, err)
		assert.Equal(t, types.ModeFocused, result.Mode)
		require.Len(t, result.Interpretations, 1)
		assert.Len(t, result.Interpretations[0].Variants, 2)
	})

	t.Run("several are truncated to representatives", func(t *testing.T) {
		result, err := assemble("1000000", []candidate{number, duration})
		require.NoError(t, err)
		assert.Equal(t, types.ModeAmbiguous, result.Mode)
		require.Len(t, result.Interpretations, 2)
		assert.Equal(t, []types.Variant{{Label: "human", Value: "1 million"}}, result.Interpretations[0].Variants)
		// No preference falls back to the first variant
		assert.Equal(t, "human", result.Interpretations[1].Variants[0].Label)
	})
}
