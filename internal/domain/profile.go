package domain

import (
	"fmt"
	"strings"
	"time"
)

const (
	DefaultTimeout = time.Second
	MinTimeout     = 500 * time.Millisecond
	MaxTimeout     = 60 * time.Second
)

// DesktopProfile describes what should run on one virtual desktop.
type DesktopProfile struct {
	Name       string
	Command    string
	Class      string
	Desktop    int
	Fullscreen bool
	Activate   bool
	Timeout    time.Duration
}

func (p DesktopProfile) Validate() error {
	if strings.TrimSpace(p.Command) == "" {
		return fmt.Errorf("command is required")
	}
	if strings.TrimSpace(p.Class) == "" {
		return fmt.Errorf("class is required")
	}
	if p.Desktop < 0 {
		return fmt.Errorf("desktop must not be negative, got %d", p.Desktop)
	}

	return nil
}

// Argv splits the command on whitespace. Quoting is not interpreted.
func (p DesktopProfile) Argv() []string {
	return strings.Fields(p.Command)
}

func (p DesktopProfile) EffectiveTimeout() time.Duration {
	return ClampTimeout(p.Timeout)
}

// ClampTimeout bounds a polling timeout to [MinTimeout, MaxTimeout].
func ClampTimeout(timeout time.Duration) time.Duration {
	if timeout < MinTimeout {
		return MinTimeout
	}
	if timeout > MaxTimeout {
		return MaxTimeout
	}

	return timeout
}
