package ports

import (
	"context"

	"github.com/bnema/desktop-switcher/internal/domain"
)

type WindowManager interface {
	ListWindows(ctx context.Context) ([]domain.WindowRecord, error)
	SwitchDesktop(ctx context.Context, desktop int) error
	CloseWindow(ctx context.Context, windowID string) error
	AddWindowState(ctx context.Context, windowID string, states ...string) error
	ActivateWindow(ctx context.Context, windowID string) error
}
