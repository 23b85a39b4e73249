package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bnema/desktop-switcher/internal/domain"
	"github.com/bnema/desktop-switcher/internal/ports"
	"github.com/function61/gokit/os/osutil"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	ProfilesPathKey    = "profiles.path"
	profilesConfigDir  = ".config"
	profilesConfigFile = "switcher.conf"
)

type ProfileRepository struct {
	profilesPath string
}

var _ ports.ProfileRepository = (*ProfileRepository)(nil)

// NewProfileRepository resolves the profiles file from cfg, defaulting to
// ~/.config/switcher.conf. The file itself is read lazily.
func NewProfileRepository(cfg *viper.Viper) (*ProfileRepository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}
	cfg.SetDefault(ProfilesPathKey, filepath.Join(homeDir, profilesConfigDir, profilesConfigFile))

	profilesPath := cfg.GetString(ProfilesPathKey)
	if profilesPath == "" {
		return nil, errors.New("profiles path is empty")
	}
	profilesPath, err = normalizeProfilesPath(profilesPath, homeDir)
	if err != nil {
		return nil, err
	}

	return &ProfileRepository{profilesPath: profilesPath}, nil
}

func (r *ProfileRepository) Path() string {
	return r.profilesPath
}

func (r *ProfileRepository) GetByName(ctx context.Context, name string) (domain.DesktopProfile, error) {
	if err := ctx.Err(); err != nil {
		return domain.DesktopProfile{}, err
	}

	file, err := r.readSchema()
	if err != nil {
		return domain.DesktopProfile{}, err
	}

	section, ok := file[name]
	if !ok {
		return domain.DesktopProfile{}, domain.NewError(domain.KindUnknownProfile,
			fmt.Sprintf("unsupported desktop %q given, supported values are: %s", name, quoteNames(sectionNames(file))),
			domain.ErrProfileNotFound)
	}

	profile, err := fromSchema(name, section)
	if err != nil {
		return domain.DesktopProfile{}, domain.NewError(domain.KindConfigInvalid, fmt.Sprintf("profile %q in %s", name, r.profilesPath), err)
	}

	return profile, nil
}

// List returns every profile sorted by name. One invalid profile fails the
// whole listing.
func (r *ProfileRepository) List(ctx context.Context) ([]domain.DesktopProfile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := r.readSchema()
	if err != nil {
		return nil, err
	}

	names := sectionNames(file)
	profiles := make([]domain.DesktopProfile, 0, len(names))
	for _, name := range names {
		profile, err := fromSchema(name, file[name])
		if err != nil {
			return nil, domain.NewError(domain.KindConfigInvalid, fmt.Sprintf("profile %q in %s", name, r.profilesPath), err)
		}
		profiles = append(profiles, profile)
	}

	return profiles, nil
}

func (r *ProfileRepository) readSchema() (profilesSchema, error) {
	exists, err := osutil.Exists(r.profilesPath)
	if err != nil {
		return nil, domain.NewError(domain.KindConfigMissing, fmt.Sprintf("check config file %s", r.profilesPath), err)
	}
	if !exists {
		return nil, domain.Errorf(domain.KindConfigMissing, "config file %s not found", r.profilesPath)
	}

	data, err := os.ReadFile(r.profilesPath)
	if err != nil {
		return nil, domain.NewError(domain.KindConfigMissing, fmt.Sprintf("read config file %s", r.profilesPath), err)
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, domain.NewError(domain.KindConfigInvalid, fmt.Sprintf("decode config file %s (profiles are TOML tables: quote strings, e.g. command = \"echo test\")", r.profilesPath), err)
	}

	file := make(profilesSchema, len(raw))
	for name, value := range raw {
		section, ok := value.(map[string]any)
		if !ok {
			return nil, domain.Errorf(domain.KindConfigInvalid, "config file %s: top-level key %q is not a profile section", r.profilesPath, name)
		}
		file[name] = section
	}

	return file, nil
}

func normalizeProfilesPath(path string, homeDir string) (string, error) {
	if path == "~" {
		path = homeDir
	} else if strings.HasPrefix(path, "~/") {
		path = filepath.Join(homeDir, path[2:])
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve profiles path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func sectionNames(file profilesSchema) []string {
	names := make([]string, 0, len(file))
	for name := range file {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

func quoteNames(names []string) string {
	if len(names) == 0 {
		return "none"
	}

	return "'" + strings.Join(names, "', '") + "'"
}
