package classify

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/sizerating/internal/cli"
	"github.com/thenoetrevino/sizerating/internal/testutil"
)

func TestClassifyCommand_Quiet(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"single value", []string{"999"}, "XS\n"},
		{"boundaries", []string{"1000", "99999", "500000"}, "S\nM\nXL\n"},
		{"separators and suffixes", []string{"12,000", "250k"}, "M\nL\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := testutil.ExecuteCommand(t, testutil.DefaultCLI(), ClassifyCmd(), append(tt.args, "--quiet")...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestClassifyCommand_JSON(t *testing.T) {
	out, _, err := testutil.ExecuteCommand(t, testutil.DefaultCLI(), ClassifyCmd(), "42", "1,234,567", "--json")
	require.NoError(t, err)

	var result struct {
		Success bool     `json:"success"`
		Results []Result `json:"results"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))

	assert.True(t, result.Success)
	require.Len(t, result.Results, 2)
	assert.Equal(t, "XS", result.Results[0].Class.String())
	assert.Equal(t, 1234567.0, result.Results[1].Value)
	assert.Equal(t, "XL", result.Results[1].Class.String())
	assert.Equal(t, "1,234,567", result.Results[1].Input)
}

func TestClassifyCommand_Human(t *testing.T) {
	out, _, err := testutil.ExecuteCommand(t, testutil.DefaultCLI(), ClassifyCmd(), "12345")
	require.NoError(t, err)

	assert.Contains(t, out, "12,345 lines →")
	arrow := strings.Index(out, "→")
	require.GreaterOrEqual(t, arrow, 0)
	assert.Contains(t, out[arrow:], "M")
}

func TestClassifyCommand_TrailingText(t *testing.T) {
	for _, input := range []string{"2m", "12abc", "12 lines", "10kb"} {
		t.Run(input, func(t *testing.T) {
			out, errOut, err := testutil.ExecuteCommand(t, testutil.DefaultCLI(), ClassifyCmd(), input, "--quiet")
			require.Error(t, err)
			assert.Equal(t, cli.ExitValidation, cli.ExitCodeFor(err))
			assert.ErrorIs(t, err, cli.ErrInvalidValue)
			assert.Empty(t, out)
			assert.Contains(t, errOut, input)
		})
	}
}

func TestClassifyCommand_NegativeValue(t *testing.T) {
	// "--" keeps cobra from reading -5 as a flag
	out, errOut, err := testutil.ExecuteCommand(t, testutil.DefaultCLI(), ClassifyCmd(), "--", "-5")
	require.Error(t, err)

	assert.Equal(t, cli.ExitValidation, cli.ExitCodeFor(err))
	assert.Empty(t, out)
	assert.Contains(t, errOut, "negative")
	assert.Contains(t, errOut, "Suggestion:")
}

func TestClassifyCommand_InvalidValueJSON(t *testing.T) {
	out, _, err := testutil.ExecuteCommand(t, testutil.DefaultCLI(), ClassifyCmd(), "--json", "lots")
	require.Error(t, err)
	assert.Equal(t, cli.ExitValidation, cli.ExitCodeFor(err))

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, false, result["success"])
	assert.Equal(t, "INVALID_VALUE", result["error"].(map[string]interface{})["code"])
}

func TestClassifyCommand_NaN(t *testing.T) {
	_, _, err := testutil.ExecuteCommand(t, testutil.DefaultCLI(), ClassifyCmd(), "NaN")
	require.Error(t, err)
	assert.Equal(t, cli.ExitValidation, cli.ExitCodeFor(err))
}

func TestClassifyCommand_RequiresValue(t *testing.T) {
	_, _, err := testutil.ExecuteCommand(t, testutil.DefaultCLI(), ClassifyCmd())
	assert.Error(t, err)
}

func TestClassesCommand(t *testing.T) {
	out, _, err := testutil.ExecuteCommand(t, testutil.DefaultCLI(), ClassesCmd(), "--quiet")
	require.NoError(t, err)
	assert.Equal(t, "XS\nS\nM\nL\nXL\n", out)

	out, _, err = testutil.ExecuteCommand(t, testutil.DefaultCLI(), ClassesCmd())
	require.NoError(t, err)
	assert.Contains(t, out, "XS < S < M < L < XL")
	assert.Contains(t, out, "[0, 1,000)")
	assert.Contains(t, out, "500,000 and above")
	assert.Equal(t, 6, strings.Count(out, "\n"))
}

func TestClassesCommand_JSON(t *testing.T) {
	out, _, err := testutil.ExecuteCommand(t, testutil.DefaultCLI(), ClassesCmd(), "--json")
	require.NoError(t, err)

	var result struct {
		Classes []BandInfo `json:"classes"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.Len(t, result.Classes, 5)

	assert.Equal(t, 0.0, result.Classes[0].Lower)
	require.NotNil(t, result.Classes[0].Upper)
	assert.Equal(t, 1000.0, *result.Classes[0].Upper)
	assert.Nil(t, result.Classes[4].Upper)
}
