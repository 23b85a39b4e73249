package wmctrl

import (
	"strings"
	"testing"

	"github.com/bnema/desktop-switcher/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseListingReadsEveryValidLine(t *testing.T) {
	t.Parallel()

	output := strings.Join([]string{
		"0x01a00003  0 1234   xterm.XTerm           box shell: ~/src",
		"0x02c00007  2 5678   Navigator.firefox     box Mozilla Firefox",
		"0x00e00003 -1 900    xfce4-panel.Xfce4-panel box xfce4-panel",
		"0x03000001  1 42     mpv.mpv               box",
		"",
	}, "\n")

	windows := ParseListing(output)
	require.Len(t, windows, 4)

	assert.Equal(t, domain.WindowRecord{
		ID: "0x01a00003", Desktop: 0, PID: 1234, Class: "xterm.XTerm", Hostname: "box", Title: "shell: ~/src",
	}, windows[0])
	assert.Equal(t, "Mozilla Firefox", windows[1].Title)
	assert.Equal(t, -1, windows[2].Desktop)
	assert.Equal(t, "", windows[3].Title)
}

func TestParseListingSkipsMalformedLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
	}{
		{name: "empty", line: ""},
		{name: "too few fields", line: "0x01 0 1234 xterm.XTerm"},
		{name: "non numeric desktop", line: "0x01 x 1234 xterm.XTerm box title"},
		{name: "non numeric pid", line: "0x01 0 pid xterm.XTerm box title"},
		{name: "garbage", line: "wmctrl: cannot open display"},
	}

	valid := "0x02 2 77 Test.Test box ok"
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := parseLine(tt.line)
			assert.False(t, ok)

			windows := ParseListing(tt.line + "\n" + valid)
			require.Len(t, windows, 1)
			assert.Equal(t, "0x02", windows[0].ID)
		})
	}
}

func TestParseListingCollapsesTitleWhitespace(t *testing.T) {
	t.Parallel()

	windows := ParseListing("0x05 3 10 a.A host  two   spaced\twords  ")
	require.Len(t, windows, 1)
	assert.Equal(t, "two spaced words", windows[0].Title)
}
