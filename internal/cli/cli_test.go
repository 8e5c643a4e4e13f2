package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/guess/pkg/errors"
)

// execute runs the root command with args and returns stdout, stderr and the error
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestGuessFocusedText(t *testing.T) {
	stdout, _, err := execute(t, "--format", "text", "1h30m")
	require.NoError(t, err)
	assert.Equal(t, "Duration (from units):\n  1 hour, 30 minutes\n  1h30m\n  5,400 seconds\n", stdout)
}

func TestGuessJoinsArguments(t *testing.T) {
	stdout, _, err := execute(t, "-f", "json", "size", "1.5", "GiB")
	require.NoError(t, err)

	var got struct {
		Input           string `json:"input"`
		Mode            string `json:"mode"`
		Interpretations []struct {
			Domain    string `json:"domain"`
			Canonical string `json:"canonical"`
		} `json:"interpretations"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	assert.Equal(t, "1.5 GiB", got.Input)
	assert.Equal(t, "focused", got.Mode)
	require.Len(t, got.Interpretations, 1)
	assert.Equal(t, "Byte Size", got.Interpretations[0].Domain)
	assert.Equal(t, "1610612736", got.Interpretations[0].Canonical)
}

func TestGuessAmbiguous(t *testing.T) {
	stdout, _, err := execute(t, "-f", "text", "1722628800")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Number (from decimal):\n  1.72 billion\n")
	assert.Contains(t, stdout, "Timestamp (from unix seconds):")
	assert.Contains(t, stdout, "Duration (from seconds):")
	assert.Contains(t, stdout, "Byte Size (from byte count):")
}

func TestGuessDomainAliases(t *testing.T) {
	tests := []struct {
		args   []string
		domain string
	}{
		{[]string{"colour", "#ff0000"}, "Color"},
		{[]string{"color", "#ff0000"}, "Color"},
		{[]string{"time", "1722628800"}, "Timestamp"},
		{[]string{"timestamp", "1722628800"}, "Timestamp"},
		{[]string{"bytes", "2048"}, "Byte Size"},
		{[]string{"num", "42"}, "Number"},
		{[]string{"perm", "755"}, "Permission"},
		{[]string{"mode", "rwxr-xr-x"}, "Permission"},
		{[]string{"duration", "90"}, "Duration"},
	}

	for _, tt := range tests {
		t.Run(tt.args[0], func(t *testing.T) {
			stdout, _, err := execute(t, append([]string{"-f", "json"}, tt.args...)...)
			require.NoError(t, err)

			var got struct {
				Mode            string `json:"mode"`
				Interpretations []struct {
					Domain string `json:"domain"`
				} `json:"interpretations"`
			}
			require.NoError(t, json.Unmarshal([]byte(stdout), &got))
			assert.Equal(t, "focused", got.Mode)
			require.Len(t, got.Interpretations, 1)
			assert.Equal(t, tt.domain, got.Interpretations[0].Domain)
		})
	}
}

func TestGuessUnrecognized(t *testing.T) {
	stdout, stderr, err := execute(t, "-f", "text", "xyz")
	require.Error(t, err)
	assert.True(t, IsReported(err))
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnrecognizedInput))
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Unable to interpret 'xyz'")
	assert.Contains(t, stderr, "Try one of:")
	assert.Contains(t, stderr, "guess 1722628800")
}

func TestGuessForcedRejection(t *testing.T) {
	_, stderr, err := execute(t, "-f", "text", "color", "hello")
	require.Error(t, err)
	assert.True(t, IsReported(err))
	assert.Contains(t, stderr, "Unable to interpret 'hello'")
}

func TestGuessAsFlag(t *testing.T) {
	stdout, _, err := execute(t, "-f", "text", "--as", "bytes", "1722628800")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "Byte Size"), stdout)

	_, _, err = execute(t, "--as", "weight", "42")
	require.Error(t, err)
	assert.False(t, IsReported(err))
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownDomain))
}

func TestGuessNoInput(t *testing.T) {
	_, _, err := execute(t)
	require.Error(t, err)
	assert.False(t, IsReported(err))
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestGuessInvalidFormat(t *testing.T) {
	_, _, err := execute(t, "--format", "html", "42")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestGuessFormatFromEnvironment(t *testing.T) {
	t.Setenv("GUESS_OUTPUT_FORMAT", "json")

	stdout, _, err := execute(t, "1h30m")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(stdout)), "expected JSON, got %q", stdout)

	// The flag still wins over the environment
	stdout, _, err = execute(t, "-f", "text", "1h30m")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Duration (from units):")
}

func TestGuessThresholdFromEnvironment(t *testing.T) {
	t.Setenv("GUESS_TIMESTAMP_MIN_YEAR", "2030")

	stdout, _, err := execute(t, "-f", "text", "1722628800")
	require.NoError(t, err)
	assert.NotContains(t, stdout, "Timestamp")
}

func TestExamplesCmd(t *testing.T) {
	stdout, _, err := execute(t, "-f", "text", "examples")
	require.NoError(t, err)
	assert.Contains(t, stdout, "# guess examples")
	assert.Contains(t, stdout, "`guess 0xFF`")
	assert.Contains(t, stdout, "`guess time 1722628800`")
}

func TestVersionCmd(t *testing.T) {
	stdout, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "guess version dev")
	assert.Contains(t, stdout, "commit: unknown")
}

func TestCompletionCmd(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			stdout, _, err := execute(t, "completion", shell)
			require.NoError(t, err)
			assert.Contains(t, stdout, "guess")
		})
	}

	_, _, err := execute(t, "completion", "tcsh")
	assert.Error(t, err)
}

func TestHelpListsDomainCommands(t *testing.T) {
	stdout, _, err := execute(t, "--help")
	require.NoError(t, err)
	for _, name := range []string{"time", "duration", "size", "number", "color", "permission", "examples"} {
		assert.Contains(t, stdout, name)
	}
	assert.Contains(t, stdout, "DOMAINS:")
}
