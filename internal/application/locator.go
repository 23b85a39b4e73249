package application

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/desktop-switcher/internal/domain"
	"github.com/bnema/desktop-switcher/internal/logger"
	"github.com/bnema/desktop-switcher/internal/ports"
)

const PollInterval = 10 * time.Millisecond

type LocateQuery struct {
	Desktop int
	// PID of the launched program; zero when unknown.
	PID     int
	Class   string
	Timeout time.Duration
}

// Locator polls the window inventory until a window owned by a PID, or
// failing that of a class, shows up on a desktop.
type Locator struct {
	inventory *Inventory
	clock     ports.Clock
	log       *logger.Logger
}

func NewLocator(inventory *Inventory, clock ports.Clock, log *logger.Logger) *Locator {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if log == nil {
		log = logger.Nop()
	}

	return &Locator{inventory: inventory, clock: clock, log: log}
}

// Iterations is the number of inventory queries made for timeout.
func Iterations(timeout time.Duration) int {
	return int(domain.ClampTimeout(timeout)/PollInterval) + 1
}

func (l *Locator) Locate(ctx context.Context, query LocateQuery) (string, error) {
	if query.PID <= 0 && query.Class == "" {
		return "", domain.Errorf(domain.KindLocatorBadArguments, "locate window: neither a process id nor a window class was given")
	}

	timeout := domain.ClampTimeout(query.Timeout)
	iterations := Iterations(timeout)
	start := l.clock.Now()

	for i := 0; i < iterations; i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		index, err := l.inventory.Index(ctx, query.Desktop)
		if err != nil {
			l.log.Debug("Window listing failed while polling", "attempt", i+1, "error", err.Error())
		} else if id, ok := index.Lookup(query.PID, query.Class); ok {
			l.log.Debug("Window located",
				"window_id", id,
				"attempt", i+1,
				"elapsed", l.clock.Now().Sub(start).String())
			return id, nil
		}

		l.clock.Sleep(PollInterval)
	}

	return "", domain.NewError(domain.KindLocatorTimeout,
		describeTimeout(query, timeout),
		domain.ErrWindowNotFound)
}

func describeTimeout(query LocateQuery, timeout time.Duration) string {
	var target string
	switch {
	case query.PID > 0 && query.Class != "":
		target = fmt.Sprintf("pid %d or class %q", query.PID, query.Class)
	case query.PID > 0:
		target = fmt.Sprintf("pid %d", query.PID)
	default:
		target = fmt.Sprintf("class %q", query.Class)
	}

	return fmt.Sprintf("no window for %s appeared on desktop %d within %s", target, query.Desktop, timeout)
}
