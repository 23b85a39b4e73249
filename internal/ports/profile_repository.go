package ports

import (
	"context"

	"github.com/bnema/desktop-switcher/internal/domain"
)

type ProfileRepository interface {
	GetByName(ctx context.Context, name string) (domain.DesktopProfile, error)
	List(ctx context.Context) ([]domain.DesktopProfile, error)
}
