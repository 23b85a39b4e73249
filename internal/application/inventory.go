package application

import (
	"context"
	"fmt"

	"github.com/bnema/desktop-switcher/internal/domain"
	"github.com/bnema/desktop-switcher/internal/ports"
)

// Inventory answers questions about the windows of one desktop. Every call
// queries the window manager again.
type Inventory struct {
	wm ports.WindowManager
}

func NewInventory(wm ports.WindowManager) *Inventory {
	return &Inventory{wm: wm}
}

func (i *Inventory) Windows(ctx context.Context) ([]domain.WindowRecord, error) {
	windows, err := i.wm.ListWindows(ctx)
	if err != nil {
		return nil, fmt.Errorf("list windows: %w", err)
	}

	return windows, nil
}

func (i *Inventory) WindowsOnDesktop(ctx context.Context, desktop int) ([]domain.WindowRecord, error) {
	windows, err := i.Windows(ctx)
	if err != nil {
		return nil, err
	}

	return domain.WindowsOnDesktop(windows, desktop), nil
}

func (i *Inventory) Index(ctx context.Context, desktop int) (domain.WindowIndex, error) {
	windows, err := i.WindowsOnDesktop(ctx, desktop)
	if err != nil {
		return domain.WindowIndex{}, err
	}

	return domain.BuildIndex(windows), nil
}
