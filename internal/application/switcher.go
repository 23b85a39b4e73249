package application

import (
	"context"
	"fmt"

	"github.com/bnema/desktop-switcher/internal/domain"
	"github.com/bnema/desktop-switcher/internal/logger"
	"github.com/bnema/desktop-switcher/internal/ports"
)

type SwitchState string

const (
	StateSwitchingDesktop   SwitchState = "switching_desktop"
	StateCheckingRunning    SwitchState = "checking_running"
	StateLaunchingProgram   SwitchState = "launching_program"
	StateResolvingWindow    SwitchState = "resolving_window"
	StateApplyingFullscreen SwitchState = "applying_fullscreen"
	StateApplyingActivation SwitchState = "applying_activation"
	StateDone               SwitchState = "done"
)

// FullscreenStates are added to a freshly launched window when its profile
// asks for fullscreen. "below" keeps it from stealing focus.
var FullscreenStates = []string{"fullscreen", "below"}

type CloseFailure struct {
	WindowID string
	Err      error
}

// SwitchResult reports what a switch did.
type SwitchResult struct {
	Profile       string
	Desktop       int
	WindowID      string
	Launched      bool
	PID           int
	Closed        []string
	CloseFailures []CloseFailure
	Fullscreened  bool
	Activated     bool
	States        []SwitchState
}

type Switcher struct {
	wm        ports.WindowManager
	launcher  ports.Launcher
	inventory *Inventory
	locator   *Locator
	log       *logger.Logger
}

func NewSwitcher(wm ports.WindowManager, launcher ports.Launcher, clock ports.Clock, log *logger.Logger) *Switcher {
	if log == nil {
		log = logger.Nop()
	}

	inventory := NewInventory(wm)
	return &Switcher{
		wm:        wm,
		launcher:  launcher,
		inventory: inventory,
		locator:   NewLocator(inventory, clock, log),
		log:       log,
	}
}

// Switch moves to the profile's desktop and makes sure its program has a
// window there. Only the launch path can fullscreen a window.
func (s *Switcher) Switch(ctx context.Context, profile domain.DesktopProfile) (SwitchResult, error) {
	result := SwitchResult{Profile: profile.Name, Desktop: profile.Desktop}
	enter := func(state SwitchState) {
		result.States = append(result.States, state)
		s.log.Debug("Switch state", "profile", profile.Name, "state", string(state))
	}

	enter(StateSwitchingDesktop)
	if err := s.wm.SwitchDesktop(ctx, profile.Desktop); err != nil {
		return result, fmt.Errorf("switch to desktop %d: %w", profile.Desktop, err)
	}

	enter(StateCheckingRunning)
	windows, err := s.inventory.WindowsOnDesktop(ctx, profile.Desktop)
	if err != nil {
		return result, fmt.Errorf("inspect desktop %d: %w", profile.Desktop, err)
	}

	if running, ok := domain.FirstWithClass(windows, profile.Class); ok {
		s.log.Debug("Program already running", "window_id", running.ID, "class", profile.Class)
		result.WindowID = running.ID
	} else {
		s.closeWindows(ctx, windows, &result)

		enter(StateLaunchingProgram)
		pid, err := s.launcher.Launch(ctx, profile.Argv())
		if err != nil {
			return result, err
		}
		result.Launched = true
		result.PID = pid

		enter(StateResolvingWindow)
		windowID, err := s.locator.Locate(ctx, LocateQuery{
			Desktop: profile.Desktop,
			PID:     pid,
			Class:   profile.Class,
			Timeout: profile.EffectiveTimeout(),
		})
		if err != nil {
			if domain.IsKind(err, domain.KindLocatorTimeout) {
				s.log.Warn("Program started but no window appeared", err, "pid", pid, "class", profile.Class)
			}
			return result, err
		}
		result.WindowID = windowID

		if profile.Fullscreen {
			enter(StateApplyingFullscreen)
			if err := s.wm.AddWindowState(ctx, windowID, FullscreenStates...); err != nil {
				return result, fmt.Errorf("fullscreen window %s: %w", windowID, err)
			}
			result.Fullscreened = true
		}
	}

	if profile.Activate {
		enter(StateApplyingActivation)
		if err := s.wm.ActivateWindow(ctx, result.WindowID); err != nil {
			return result, fmt.Errorf("activate window %s: %w", result.WindowID, err)
		}
		result.Activated = true
	}

	enter(StateDone)
	return result, nil
}

// closeWindows closes every window independently; failures are recorded and
// do not stop the remaining closes.
func (s *Switcher) closeWindows(ctx context.Context, windows []domain.WindowRecord, result *SwitchResult) {
	for _, window := range windows {
		if err := s.wm.CloseWindow(ctx, window.ID); err != nil {
			s.log.Warn("Close window failed", err, "window_id", window.ID, "class", window.Class)
			result.CloseFailures = append(result.CloseFailures, CloseFailure{WindowID: window.ID, Err: err})
			continue
		}
		result.Closed = append(result.Closed, window.ID)
	}
}
