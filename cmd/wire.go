package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	processlauncher "github.com/bnema/desktop-switcher/internal/adapters/launcher/process"
	chainsink "github.com/bnema/desktop-switcher/internal/adapters/logsink/chain"
	windowsrender "github.com/bnema/desktop-switcher/internal/adapters/render/windows"
	tomlrepo "github.com/bnema/desktop-switcher/internal/adapters/repo/toml"
	"github.com/bnema/desktop-switcher/internal/adapters/wm/wmctrl"
	"github.com/bnema/desktop-switcher/internal/application"
	"github.com/bnema/desktop-switcher/internal/domain"
	"github.com/bnema/desktop-switcher/internal/logger"
	"github.com/bnema/desktop-switcher/internal/ports"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	envPrefix     = "SWITCHER"
	wmctrlPathKey = "wmctrl.path"
	debugKey      = "debug"

	logIdentifier = "switcher"
	logFileName   = "switcher.log"
)

// dependencies are the outside-world adapters, swapped out in tests.
type dependencies struct {
	windowManager func(binary string) ports.WindowManager
	launcher      func(log *logger.Logger) ports.Launcher
	logSink       func() (ports.LogSink, error)
	clock         ports.Clock
}

func defaultDependencies() dependencies {
	return dependencies{
		windowManager: func(binary string) ports.WindowManager {
			return wmctrl.NewClient(binary)
		},
		launcher: func(log *logger.Logger) ports.Launcher {
			return processlauncher.NewLauncher(log)
		},
		logSink: defaultLogSink,
		clock:   ports.SystemClock{},
	}
}

type app struct {
	service        *application.Service
	log            *logger.Logger
	renderWindows  func([]domain.WindowRecord, windowsrender.Format) (string, error)
	renderProfiles func([]domain.DesktopProfile, windowsrender.Format) (string, error)
}

type cli struct {
	deps     dependencies
	settings *viper.Viper
	app      *app
}

func newCLI(deps dependencies) *cli {
	return &cli{deps: deps, settings: newSettings()}
}

func newSettings() *viper.Viper {
	settings := viper.New()
	settings.SetEnvPrefix(envPrefix)
	settings.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	settings.AutomaticEnv()
	settings.SetDefault(wmctrlPathKey, wmctrl.DefaultBinary)
	settings.SetDefault(debugKey, false)
	return settings
}

func (c *cli) bindFlags(root *cobra.Command) {
	_ = c.settings.BindPFlag(tomlrepo.ProfilesPathKey, root.PersistentFlags().Lookup("config"))
	_ = c.settings.BindPFlag(debugKey, root.PersistentFlags().Lookup("debug"))
}

func (c *cli) wire(stderr io.Writer) error {
	if c.app != nil {
		return nil
	}

	level := zerolog.InfoLevel
	if c.settings.GetBool(debugKey) {
		level = zerolog.DebugLevel
	}
	log, err := logger.New(logger.WithConsole(stderr), logger.WithLevel(level))
	if err != nil {
		return fmt.Errorf("wire logger: %w", err)
	}

	repo, err := tomlrepo.NewProfileRepository(c.settings)
	if err != nil {
		return fmt.Errorf("wire profile repository: %w", err)
	}
	log.Debug("Profiles file resolved", "path", repo.Path())

	wm := c.deps.windowManager(c.settings.GetString(wmctrlPathKey))
	switcher := application.NewSwitcher(wm, c.deps.launcher(log), c.deps.clock, log)

	c.app = &app{
		service:        application.NewService(repo, switcher, application.NewInventory(wm)),
		log:            log,
		renderWindows:  windowsrender.Windows,
		renderProfiles: windowsrender.Profiles,
	}
	return nil
}

func defaultLogSink() (ports.LogSink, error) {
	stateDir := os.Getenv("XDG_STATE_HOME")
	if stateDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		stateDir = filepath.Join(homeDir, ".local", "state")
	}

	sink, err := chainsink.NewJournalFirstWithFileFallback(logIdentifier, filepath.Join(stateDir, logIdentifier, logFileName))
	if err != nil {
		return nil, fmt.Errorf("wire log sink chain: %w", err)
	}

	return sink, nil
}
