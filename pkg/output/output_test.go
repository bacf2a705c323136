package output

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/vertti/maccheck/pkg/check"
)

func withoutColors(t *testing.T) {
	t.Helper()
	oldGreen, oldRed, oldDim, oldReset := green, red, dim, reset
	t.Cleanup(func() { green, red, dim, reset = oldGreen, oldRed, oldDim, oldReset })
	green, red, dim, reset = "", "", "", ""
}

func TestFormatLabel(t *testing.T) {
	withoutColors(t)

	tests := []struct {
		input string
		want  string
	}{
		{"os: 14.4.1", "os: 14.4.1"},
		{"model: MacBookPro16,1", "model: MacBookPro16,1"},
		{"no colon here", "no colon here"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatLabel(tt.input))
	}
}

func TestFormatLabelWithColors(t *testing.T) {
	withoutColors(t)
	dim, reset = "[DIM]", "[RESET]"

	tests := []struct {
		input string
		want  string
	}{
		{"os: 14.4.1", "[DIM]os:[RESET] 14.4.1"},
		{"model: MacBookPro16,1", "[DIM]model:[RESET] MacBookPro16,1"},
		{"no colon here", "no colon here"},
		{"macOS version is not supported: macOS 14.4.1 is at or above 14.4", "macOS version is not supported: macOS 14.4.1 is at or above 14.4"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatLabel(tt.input))
	}
}

func TestPrintResult(t *testing.T) {
	withoutColors(t)

	t.Run("ok", func(t *testing.T) {
		var buf bytes.Buffer
		PrintResult(&buf, check.Result{Name: "mac", Status: check.StatusOK, Details: []string{"os: 13.0.0", "model: MacBookPro14,1"}})
		assert.Equal(t, "[OK] mac\n      os: 13.0.0\n      model: MacBookPro14,1\n", buf.String())
	})

	t.Run("fail", func(t *testing.T) {
		var buf bytes.Buffer
		PrintResult(&buf, check.Result{Name: "mac", Status: check.StatusFail, Details: []string{"hardware model is not supported: MacBookPro16,1"}})
		assert.Equal(t, "[FAIL] mac\n      hardware model is not supported: MacBookPro16,1\n", buf.String())
	})
}

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer
	r := check.Result{
		Name:    "mac",
		Status:  check.StatusFail,
		Details: []string{"os: 14.4.0"},
		Err:     errors.New("macOS version is not supported"),
	}

	require.NoError(t, PrintJSON(&buf, r, "os_version"))

	out := buf.Bytes()
	require.True(t, gjson.ValidBytes(out))
	assert.Equal(t, "mac", gjson.GetBytes(out, "name").String())
	assert.Equal(t, "FAIL", gjson.GetBytes(out, "status").String())
	assert.Equal(t, "os_version", gjson.GetBytes(out, "kind").String())
	assert.Equal(t, "os: 14.4.0", gjson.GetBytes(out, "details.0").String())
	assert.Equal(t, "macOS version is not supported", gjson.GetBytes(out, "error").String())
}

func TestPrintJSON_OK(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, PrintJSON(&buf, check.Result{Name: "mac", Status: check.StatusOK}, "ok"))

	out := buf.Bytes()
	assert.True(t, gjson.GetBytes(out, "details").IsArray())
	assert.False(t, gjson.GetBytes(out, "error").Exists())
}
