package dispatcher

import (
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/guess/pkg/errors"
	"github.com/arthur-debert/guess/pkg/interpreters"
	"github.com/arthur-debert/guess/pkg/types"
)

var fixedNow = time.Date(2025, 10, 2, 20, 0, 0, 0, time.UTC)

func newTestDispatcher() *Dispatcher {
	return New(Options{
		Now:      func() time.Time { return fixedNow },
		Location: time.FixedZone("CEST", 2*60*60),
	})
}

func variantValues(in types.Interpretation) map[string]string {
	m := map[string]string{}
	for _, v := range in.Variants {
		m[v.Label] = v.Value
	}
	return m
}

func TestDispatchEpochIsAmbiguous(t *testing.T) {
	result, err := newTestDispatcher().Dispatch("1722628800", types.DomainNone)
	require.NoError(t, err)

	assert.Equal(t, types.ModeAmbiguous, result.Mode)
	assert.Equal(t, []types.Domain{
		types.DomainNumber,
		types.DomainTimestamp,
		types.DomainDuration,
		types.DomainByteSize,
	}, result.Domains())

	for _, in := range result.Interpretations {
		assert.Len(t, in.Variants, 1, in.Domain.String())
	}
	assert.Equal(t, "1.72 billion", result.Interpretations[0].Variants[0].Value)
	assert.Equal(t, types.Variant{Label: "local", Value: "2024-08-02 22:00:00 CEST (+02:00)"}, result.Interpretations[1].Variants[0])
}

func TestDispatchForcedTimeIsFocused(t *testing.T) {
	result, err := newTestDispatcher().Dispatch("1722628800", types.DomainTimestamp)
	require.NoError(t, err)

	assert.Equal(t, types.ModeFocused, result.Mode)
	require.Len(t, result.Interpretations, 1)
	assert.Equal(t, types.DomainTimestamp, result.Interpretations[0].Domain)
	assert.GreaterOrEqual(t, len(result.Interpretations[0].Variants), 4)
}

func TestDispatchHugeInteger(t *testing.T) {
	var result types.DispatchResult
	var err error
	require.NotPanics(t, func() {
		result, err = newTestDispatcher().Dispatch("999999999999999999", types.DomainNone)
	})
	require.NoError(t, err)

	assert.Contains(t, result.Domains(), types.DomainNumber)
	assert.NotContains(t, result.Domains(), types.DomainTimestamp)
	assert.NotContains(t, result.Domains(), types.DomainPermission)
}

func TestDispatchScenarios(t *testing.T) {
	d := newTestDispatcher()

	t.Run("small integer", func(t *testing.T) {
		result, err := d.Dispatch("255", types.DomainNone)
		require.NoError(t, err)
		assert.Equal(t, types.ModeAmbiguous, result.Mode)
		assert.Contains(t, result.Domains(), types.DomainNumber)
		assert.Contains(t, result.Domains(), types.DomainPermission)
		assert.NotContains(t, result.Domains(), types.DomainByteSize)
	})

	t.Run("hex prefix", func(t *testing.T) {
		result, err := d.Dispatch("0xFF", types.DomainNone)
		require.NoError(t, err)
		assert.Equal(t, types.ModeFocused, result.Mode)
		assert.Equal(t, []types.Domain{types.DomainNumber}, result.Domains())

		m := variantValues(result.Interpretations[0])
		assert.Equal(t, "255", m["decimal"])
		assert.Equal(t, "0xFF", m["hex"])
		assert.Equal(t, "0b11111111", m["binary"])
		assert.Equal(t, "0o377", m["octal"])
	})

	t.Run("duration units", func(t *testing.T) {
		result, err := d.Dispatch("1h30m", types.DomainNone)
		require.NoError(t, err)
		assert.Equal(t, types.ModeFocused, result.Mode)

		in := result.Interpretations[0]
		assert.Equal(t, types.DomainDuration, in.Domain)
		assert.Equal(t, int64(5400000), in.Value)
		m := variantValues(in)
		assert.Equal(t, "1h30m", m["compact"])
		assert.Equal(t, "1 hour, 30 minutes", m["human"])
	})

	t.Run("hex color", func(t *testing.T) {
		result, err := d.Dispatch("#FF0000", types.DomainNone)
		require.NoError(t, err)
		assert.Equal(t, types.ModeFocused, result.Mode)

		in := result.Interpretations[0]
		assert.Equal(t, interpreters.RGB{R: 255, G: 0, B: 0}, in.Value)
		m := variantValues(in)
		assert.Equal(t, "#ff0000", m["hex"])
		assert.Equal(t, "rgb(255, 0, 0)", m["rgb"])
		assert.Equal(t, "hsl(0, 100%, 50%)", m["hsl"])
		assert.Equal(t, "red", m["name"])
	})

	t.Run("symbolic permission", func(t *testing.T) {
		result, err := d.Dispatch("rwxr-xr-x", types.DomainNone)
		require.NoError(t, err)
		assert.Equal(t, types.ModeFocused, result.Mode)

		in := result.Interpretations[0]
		assert.Equal(t, interpreters.Mode(493), in.Value)
		m := variantValues(in)
		assert.Equal(t, "0o755", m["octal"])
		assert.Equal(t, "493", m["decimal"])
	})

	t.Run("leading zero is shared", func(t *testing.T) {
		result, err := d.Dispatch("0755", types.DomainNone)
		require.NoError(t, err)
		assert.Equal(t, types.ModeAmbiguous, result.Mode)
		assert.Contains(t, result.Domains(), types.DomainNumber)
		assert.Contains(t, result.Domains(), types.DomainPermission)
	})

	t.Run("byte unit", func(t *testing.T) {
		result, err := d.Dispatch("1.5 GiB", types.DomainNone)
		require.NoError(t, err)
		assert.Equal(t, types.ModeFocused, result.Mode)
		assert.Equal(t, types.DomainByteSize, result.Interpretations[0].Domain)
	})
}

func TestDispatchUnrecognized(t *testing.T) {
	d := newTestDispatcher()

	for _, raw := range []string{"", "   ", "hello world", "0xZZ"} {
		t.Run(raw, func(t *testing.T) {
			_, err := d.Dispatch(raw, types.DomainNone)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrUnrecognizedInput))

			input, ok := errors.Input(err)
			assert.True(t, ok)
			assert.Equal(t, raw, input)
		})
	}
}

func TestDispatchForcedRejection(t *testing.T) {
	_, err := newTestDispatcher().Dispatch("#ff0000", types.DomainDuration)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnrecognizedInput))
}

func TestDispatchForcedTriple(t *testing.T) {
	d := newTestDispatcher()

	_, err := d.Dispatch("255 0 0", types.DomainNone)
	assert.Error(t, err)

	result, err := d.Dispatch("255 0 0", types.DomainColor)
	require.NoError(t, err)
	assert.Equal(t, "#ff0000", result.Interpretations[0].Canonical)
}

func TestDispatchYearFilterOnlyWhenUnforced(t *testing.T) {
	d := newTestDispatcher()

	// 1969-12-31: outside the plausible years, inside the hard window
	result, err := d.Dispatch("-86400", types.DomainNone)
	require.NoError(t, err)
	assert.NotContains(t, result.Domains(), types.DomainTimestamp)

	result, err = d.Dispatch("-86400", types.DomainTimestamp)
	require.NoError(t, err)
	assert.Equal(t, types.ModeFocused, result.Mode)
}

func TestDispatchSettings(t *testing.T) {
	s := interpreters.DefaultSettings()
	s.MinByteCount = 100

	d := New(Options{Settings: s, Now: func() time.Time { return fixedNow }, Location: time.UTC})
	result, err := d.Dispatch("255", types.DomainNone)
	require.NoError(t, err)
	assert.Contains(t, result.Domains(), types.DomainByteSize)
}

func TestDispatchIdempotent(t *testing.T) {
	d := newTestDispatcher()
	for _, raw := range []string{"1722628800", "0xFF", "255", "2024-08-02T20:00:00Z", "tomato"} {
		first, err := d.Dispatch(raw, types.DomainNone)
		require.NoError(t, err)
		second, err := d.Dispatch(raw, types.DomainNone)
		require.NoError(t, err)
		assert.Equal(t, first, second, raw)
	}
}

func TestInterpreterFailedKeepsCode(t *testing.T) {
	parseErr := errors.Parse("Number", "abc")
	err := interpreterFailed(parseErr, types.DomainNumber)
	assert.Same(t, parseErr, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrParse))

	err = interpreterFailed(stderrors.New("boom"), types.DomainColor)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInternal))
	assert.Contains(t, err.Error(), "Color interpreter failed")
}

func TestDispatchNoThousandWordByDefault(t *testing.T) {
	result, err := newTestDispatcher().Dispatch("250000", types.DomainNone)
	require.NoError(t, err)
	require.Equal(t, types.DomainNumber, result.Interpretations[0].Domain)
	assert.Equal(t, types.Variant{Label: "decimal", Value: "250,000"}, result.Interpretations[0].Variants[0])

	result, err = newTestDispatcher().Dispatch("250000", types.DomainNumber)
	require.NoError(t, err)
	assert.NotContains(t, variantValues(result.Interpretations[0]), "human")
}

func TestDispatchGroupedDecimal(t *testing.T) {
	result, err := newTestDispatcher().Dispatch("-1,234.5678", types.DomainNone)
	require.NoError(t, err)
	assert.Equal(t, types.ModeFocused, result.Mode)
	assert.Equal(t, "-1234.5678", result.Interpretations[0].Canonical)
}
