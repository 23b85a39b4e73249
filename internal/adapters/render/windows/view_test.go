package windows

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/bnema/desktop-switcher/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleWindows() []domain.WindowRecord {
	return []domain.WindowRecord{
		{ID: "0x03a00007", Desktop: 0, PID: 1234, Class: "Navigator.Firefox", Hostname: "host", Title: "Mozilla Firefox"},
		{ID: "0x04c00003", Desktop: 2, PID: 5678, Class: "kitty.kitty", Hostname: "host", Title: "~ shell"},
	}
}

func TestWindowsTable(t *testing.T) {
	output, err := Windows(sampleWindows(), FormatTable)

	require.NoError(t, err)
	assert.Contains(t, output, "windows: 2")
	assert.Contains(t, output, "CLASS")
	assert.Contains(t, output, "0x03a00007")
	assert.Contains(t, output, "Navigator.Firefox")
	assert.Contains(t, output, "~ shell")
	assert.Contains(t, output, "5678")
}

func TestWindowsTableEmpty(t *testing.T) {
	output, err := Windows(nil, FormatTable)

	require.NoError(t, err)
	assert.Contains(t, output, "windows: 0")
	assert.Contains(t, output, "No windows reported")
}

func TestWindowsJSON(t *testing.T) {
	output, err := Windows(sampleWindows(), FormatJSON)
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal([]byte(output), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "0x04c00003", decoded[1]["id"])
	assert.EqualValues(t, 2, decoded[1]["desktop"])
	assert.Equal(t, "~ shell", decoded[1]["title"])
}

func TestProfilesYAMLReportsEffectiveTimeout(t *testing.T) {
	output, err := Profiles([]domain.DesktopProfile{
		{Name: "web", Command: "firefox --new-window", Class: "Navigator.Firefox", Desktop: 1, Fullscreen: true, Timeout: domain.DefaultTimeout},
		{Name: "quick", Command: "xterm", Class: "XTerm", Desktop: 0},
	}, FormatYAML)
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(output), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "web", decoded[0]["name"])
	assert.Equal(t, true, decoded[0]["fullscreen"])
	assert.EqualValues(t, 1, decoded[0]["timeout"])
	assert.Equal(t, "quick", decoded[1]["name"])
	assert.EqualValues(t, 0.5, decoded[1]["timeout"])
}

func TestProfilesTableShowsQuotedCommandAndFlags(t *testing.T) {
	output, err := Profiles([]domain.DesktopProfile{
		{Name: "term", Command: "kitty --title work", Class: "kitty.kitty", Desktop: 2, Activate: true, Timeout: 3 * time.Second},
	}, FormatTable)

	require.NoError(t, err)
	assert.Contains(t, output, "profiles: 1")
	assert.Contains(t, output, "term")
	assert.Contains(t, output, "kitty --title work")
	assert.Contains(t, output, "activate")
	assert.Contains(t, output, "3s")
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{in: "", want: FormatTable},
		{in: "table", want: FormatTable},
		{in: "JSON", want: FormatJSON},
		{in: " yaml ", want: FormatYAML},
		{in: "yml", want: FormatYAML},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseFormat("xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
	assert.Contains(t, err.Error(), "table, json, yaml")
}
