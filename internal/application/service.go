package application

import (
	"context"
	"fmt"

	"github.com/bnema/desktop-switcher/internal/domain"
	"github.com/bnema/desktop-switcher/internal/ports"
)

// Service is what the command line talks to: profile lookup on top of the
// switcher and the window inventory.
type Service struct {
	profiles  ports.ProfileRepository
	switcher  *Switcher
	inventory *Inventory
}

func NewService(profiles ports.ProfileRepository, switcher *Switcher, inventory *Inventory) *Service {
	return &Service{
		profiles:  profiles,
		switcher:  switcher,
		inventory: inventory,
	}
}

// SwitchTo loads the named profile and runs the switch. No window manager
// call is made when the profile cannot be loaded.
func (s *Service) SwitchTo(ctx context.Context, name string) (SwitchResult, error) {
	profile, err := s.profiles.GetByName(ctx, name)
	if err != nil {
		return SwitchResult{Profile: name}, fmt.Errorf("load profile %q: %w", name, err)
	}

	return s.switcher.Switch(ctx, profile)
}

func (s *Service) Profiles(ctx context.Context) ([]domain.DesktopProfile, error) {
	profiles, err := s.profiles.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}

	return profiles, nil
}

// Windows lists the window inventory, optionally restricted to one desktop.
func (s *Service) Windows(ctx context.Context, desktop *int) ([]domain.WindowRecord, error) {
	if desktop == nil {
		return s.inventory.Windows(ctx)
	}

	return s.inventory.WindowsOnDesktop(ctx, *desktop)
}
