package application

import (
	"context"
	"testing"

	"github.com/bnema/desktop-switcher/internal/domain"
	"github.com/bnema/desktop-switcher/internal/logger"
	"github.com/bnema/desktop-switcher/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (*Service, *mocks.MockProfileRepository, *mocks.MockWindowManager, *mocks.MockLauncher) {
	t.Helper()

	repo := mocks.NewMockProfileRepository(t)
	wm := mocks.NewMockWindowManager(t)
	launcher := mocks.NewMockLauncher(t)
	switcher := NewSwitcher(wm, launcher, newFakeClock(), logger.Nop())

	return NewService(repo, switcher, NewInventory(wm)), repo, wm, launcher
}

func TestServiceSwitchToUnknownProfileMakesNoWindowManagerCalls(t *testing.T) {
	service, repo, _, _ := newTestService(t)

	repo.EXPECT().GetByName(mockAnyContext(), "B").
		Return(domain.DesktopProfile{}, domain.NewError(domain.KindUnknownProfile, `unsupported desktop "B" given`, domain.ErrProfileNotFound)).Once()

	_, err := service.SwitchTo(context.Background(), "B")
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindUnknownProfile))
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}

func TestServiceSwitchToRunsSwitcherWithLoadedProfile(t *testing.T) {
	service, repo, wm, _ := newTestService(t)

	repo.EXPECT().GetByName(mockAnyContext(), "A").Return(testProfile(), nil).Once()
	wm.EXPECT().SwitchDesktop(mockAnyContext(), 2).Return(nil).Once()
	wm.EXPECT().ListWindows(mockAnyContext()).Return([]domain.WindowRecord{
		{ID: "0x06", Desktop: 2, PID: 60, Class: "Test"},
	}, nil).Once()

	result, err := service.SwitchTo(context.Background(), "A")
	require.NoError(t, err)
	assert.Equal(t, "A", result.Profile)
	assert.Equal(t, "0x06", result.WindowID)
}

func TestServiceWindowsFiltersByDesktopWhenAsked(t *testing.T) {
	service, _, wm, _ := newTestService(t)

	listing := []domain.WindowRecord{
		{ID: "0x01", Desktop: 0, Class: "a.A"},
		{ID: "0x02", Desktop: 1, Class: "b.B"},
	}
	wm.EXPECT().ListWindows(mockAnyContext()).Return(listing, nil).Twice()

	all, err := service.Windows(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, listing, all)

	desktop := 1
	filtered, err := service.Windows(context.Background(), &desktop)
	require.NoError(t, err)
	assert.Equal(t, []domain.WindowRecord{listing[1]}, filtered)
}

func TestServiceProfilesDelegatesToRepository(t *testing.T) {
	service, repo, _, _ := newTestService(t)

	repo.EXPECT().List(mockAnyContext()).Return([]domain.DesktopProfile{testProfile()}, nil).Once()

	profiles, err := service.Profiles(context.Background())
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, "A", profiles[0].Name)
}
