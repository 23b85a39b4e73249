package toml

import (
	"fmt"
	"strings"
	"time"

	"github.com/bnema/desktop-switcher/internal/domain"
	"github.com/spf13/cast"
)

const (
	keyCommand    = "command"
	keyClass      = "class"
	keyDesktop    = "desktop"
	keyFullscreen = "fullscreen"
	keyActivate   = "activate"
	keyTimeout    = "timeout"
)

// profilesSchema maps a section name to its raw key/values. Values are
// coerced by hand so that quoted numbers and booleans are accepted too.
type profilesSchema map[string]map[string]any

func fromSchema(name string, section map[string]any) (domain.DesktopProfile, error) {
	profile := domain.DesktopProfile{
		Name:    name,
		Timeout: domain.DefaultTimeout,
	}

	var missing []string
	command, ok, err := stringValue(section, keyCommand)
	if err != nil {
		return domain.DesktopProfile{}, err
	}
	if !ok {
		missing = append(missing, keyCommand)
	}
	profile.Command = command

	class, ok, err := stringValue(section, keyClass)
	if err != nil {
		return domain.DesktopProfile{}, err
	}
	if !ok {
		missing = append(missing, keyClass)
	}
	profile.Class = class

	raw, ok := section[keyDesktop]
	if !ok {
		missing = append(missing, keyDesktop)
	} else {
		desktop, err := integerValue(raw)
		if err != nil {
			return domain.DesktopProfile{}, invalidValue(keyDesktop, raw, err)
		}
		profile.Desktop = desktop
	}

	if len(missing) > 0 {
		return domain.DesktopProfile{}, fmt.Errorf("missing required key(s) %s", strings.Join(missing, ", "))
	}

	if raw, ok := section[keyFullscreen]; ok {
		fullscreen, err := boolValue(raw)
		if err != nil {
			return domain.DesktopProfile{}, invalidValue(keyFullscreen, raw, err)
		}
		profile.Fullscreen = fullscreen
	}

	if raw, ok := section[keyActivate]; ok {
		activate, err := boolValue(raw)
		if err != nil {
			return domain.DesktopProfile{}, invalidValue(keyActivate, raw, err)
		}
		profile.Activate = activate
	}

	if raw, ok := section[keyTimeout]; ok {
		seconds, err := cast.ToFloat64E(raw)
		if err != nil {
			return domain.DesktopProfile{}, invalidValue(keyTimeout, raw, err)
		}
		profile.Timeout = time.Duration(seconds * float64(time.Second))
	}

	if err := profile.Validate(); err != nil {
		return domain.DesktopProfile{}, err
	}

	return profile, nil
}

func stringValue(section map[string]any, key string) (string, bool, error) {
	raw, ok := section[key]
	if !ok {
		return "", false, nil
	}

	value, err := cast.ToStringE(raw)
	if err != nil {
		return "", true, invalidValue(key, raw, err)
	}

	return value, true, nil
}

func integerValue(raw any) (int, error) {
	if f, ok := raw.(float64); ok && f != float64(int(f)) {
		return 0, fmt.Errorf("%v is not a whole number", f)
	}

	return cast.ToIntE(raw)
}

// boolValue also accepts the yes/no and on/off spellings.
func boolValue(raw any) (bool, error) {
	if s, ok := raw.(string); ok {
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "yes", "on":
			return true, nil
		case "no", "off":
			return false, nil
		}
	}

	return cast.ToBoolE(raw)
}

func invalidValue(key string, raw any, err error) error {
	return fmt.Errorf("invalid value %v for key %q: %w", raw, key, err)
}
