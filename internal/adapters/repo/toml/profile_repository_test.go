package toml

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/bnema/desktop-switcher/internal/domain"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T, contents string) *ProfileRepository {
	t.Helper()

	profilesPath := filepath.Join(t.TempDir(), "switcher.conf")
	if contents != "" {
		require.NoError(t, os.WriteFile(profilesPath, []byte(contents), 0o600))
	}

	config := viper.New()
	config.Set(ProfilesPathKey, profilesPath)

	repo, err := NewProfileRepository(config)
	require.NoError(t, err)
	return repo
}

func TestProfileRepositoryGetByNameAppliesDefaults(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, strings.Join([]string{
		"[A]",
		`command = "echo test"`,
		`class = "Test"`,
		"desktop = 2",
	}, "\n"))

	profile, err := repo.GetByName(context.Background(), "A")
	require.NoError(t, err)
	assert.Equal(t, domain.DesktopProfile{
		Name:    "A",
		Command: "echo test",
		Class:   "Test",
		Desktop: 2,
		Timeout: time.Second,
	}, profile)
}

func TestProfileRepositoryGetByNameReadsOptionalKeys(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, strings.Join([]string{
		"[web]",
		`command = "firefox --new-window"`,
		`class = "Navigator.firefox"`,
		"desktop = 1",
		"fullscreen = true",
		`activate = "yes"`,
		"timeout = 2.5",
		"",
		"[mail]",
		`command = "thunderbird"`,
		`class = "Mail.thunderbird"`,
		`desktop = "3"`,
		"timeout = 2",
	}, "\n"))

	web, err := repo.GetByName(context.Background(), "web")
	require.NoError(t, err)
	assert.True(t, web.Fullscreen)
	assert.True(t, web.Activate)
	assert.Equal(t, 2500*time.Millisecond, web.Timeout)

	mail, err := repo.GetByName(context.Background(), "mail")
	require.NoError(t, err)
	assert.Equal(t, 3, mail.Desktop)
	assert.Equal(t, 2*time.Second, mail.Timeout)
	assert.False(t, mail.Fullscreen)
}

func TestProfileRepositoryUnknownProfileListsSupportedNames(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, strings.Join([]string{
		"[b-profile]", `command = "x"`, `class = "X"`, "desktop = 0",
		"[a-profile]", `command = "y"`, `class = "Y"`, "desktop = 1",
	}, "\n"))

	_, err := repo.GetByName(context.Background(), "B")
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindUnknownProfile))
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
	assert.ErrorContains(t, err, "'a-profile', 'b-profile'")
}

func TestProfileRepositoryMissingFile(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, "")

	_, err := repo.GetByName(context.Background(), "A")
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindConfigMissing))
	assert.ErrorContains(t, err, repo.Path())

	_, err = repo.List(context.Background())
	assert.True(t, domain.IsKind(err, domain.KindConfigMissing))
}

func TestProfileRepositoryInvalidProfiles(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		contents string
		wantErr  string
	}{
		{
			name:     "missing required keys",
			contents: "[A]\ncommand = \"echo test\"\n",
			wantErr:  "missing required key(s) class, desktop",
		},
		{
			name:     "non numeric desktop",
			contents: "[A]\ncommand = \"echo\"\nclass = \"Test\"\ndesktop = \"two\"\n",
			wantErr:  `key "desktop"`,
		},
		{
			name:     "fractional desktop",
			contents: "[A]\ncommand = \"echo\"\nclass = \"Test\"\ndesktop = 1.5\n",
			wantErr:  "not a whole number",
		},
		{
			name:     "bad boolean",
			contents: "[A]\ncommand = \"echo\"\nclass = \"Test\"\ndesktop = 1\nfullscreen = \"maybe\"\n",
			wantErr:  `key "fullscreen"`,
		},
		{
			name:     "bad timeout",
			contents: "[A]\ncommand = \"echo\"\nclass = \"Test\"\ndesktop = 1\ntimeout = \"soon\"\n",
			wantErr:  `key "timeout"`,
		},
		{
			name:     "empty command",
			contents: "[A]\ncommand = \"\"\nclass = \"Test\"\ndesktop = 1\n",
			wantErr:  "command is required",
		},
		{
			name:     "negative desktop",
			contents: "[A]\ncommand = \"echo\"\nclass = \"Test\"\ndesktop = -1\n",
			wantErr:  "desktop must not be negative",
		},
		{
			name:     "not toml",
			contents: "[A\ncommand = echo test\n",
			wantErr:  "decode config file",
		},
		{
			name:     "unquoted values",
			contents: "[A]\ncommand = echo test\nclass = Test\ndesktop = 2\nfullscreen = yes\n",
			wantErr:  `quote strings, e.g. command = "echo test"`,
		},
		{
			name:     "top level key",
			contents: "command = \"echo\"\n",
			wantErr:  "not a profile section",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newTestRepository(t, tt.contents)

			_, err := repo.GetByName(context.Background(), "A")
			require.Error(t, err)
			assert.True(t, domain.IsKind(err, domain.KindConfigInvalid), err.Error())
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestProfileRepositoryListSortsByName(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, strings.Join([]string{
		"[zeta]", `command = "z"`, `class = "Z"`, "desktop = 3",
		"[alpha]", `command = "a"`, `class = "A"`, "desktop = 0",
	}, "\n"))

	profiles, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, profiles, 2)
	assert.Equal(t, "alpha", profiles[0].Name)
	assert.Equal(t, "zeta", profiles[1].Name)
}

func TestNewProfileRepositoryDefaultsUnderHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	repo, err := NewProfileRepository(nil)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config", "switcher.conf"), repo.Path())
}

func TestNewProfileRepositoryExpandsTilde(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	config := viper.New()
	config.Set(ProfilesPathKey, "~/desktops.conf")

	repo, err := NewProfileRepository(config)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "desktops.conf"), repo.Path())
}
