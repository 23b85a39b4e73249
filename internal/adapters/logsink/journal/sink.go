package journal

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/desktop-switcher/internal/ports"
	sdjournal "github.com/coreos/go-systemd/v22/journal"
)

var ErrUnavailable = errors.New("systemd journal unavailable")

type sendFunc func(message string, priority sdjournal.Priority, vars map[string]string) error

type Sink struct {
	identifier string
	enabled    func() bool
	send       sendFunc
}

var _ ports.LogSink = (*Sink)(nil)

// NewSink writes to the systemd journal under SYSLOG_IDENTIFIER=identifier.
func NewSink(identifier string) *Sink {
	return &Sink{identifier: identifier, enabled: sdjournal.Enabled, send: sdjournal.Send}
}

func (s *Sink) Send(ctx context.Context, message string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !s.enabled() {
		return ErrUnavailable
	}

	if err := s.send(message, sdjournal.PriErr, map[string]string{"SYSLOG_IDENTIFIER": s.identifier}); err != nil {
		return fmt.Errorf("journal send: %w", err)
	}

	return nil
}
