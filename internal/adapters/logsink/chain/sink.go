package chain

import (
	"context"
	"errors"
	"fmt"

	filesink "github.com/bnema/desktop-switcher/internal/adapters/logsink/file"
	journalsink "github.com/bnema/desktop-switcher/internal/adapters/logsink/journal"
	"github.com/bnema/desktop-switcher/internal/ports"
)

type Sink struct {
	primary  ports.LogSink
	fallback ports.LogSink
}

var _ ports.LogSink = (*Sink)(nil)

var (
	errNilPrimarySink  = errors.New("primary log sink is nil")
	errNilFallbackSink = errors.New("fallback log sink is nil")
)

func NewSink(primary ports.LogSink, fallback ports.LogSink) (*Sink, error) {
	if primary == nil {
		return nil, errNilPrimarySink
	}
	if fallback == nil {
		return nil, errNilFallbackSink
	}

	return &Sink{primary: primary, fallback: fallback}, nil
}

// NewJournalFirstWithFileFallback logs to the journal, or to logPath when
// the journal is not reachable.
func NewJournalFirstWithFileFallback(identifier string, logPath string) (*Sink, error) {
	return NewSink(journalsink.NewSink(identifier), filesink.NewSink(logPath))
}

func (s *Sink) Send(ctx context.Context, message string) error {
	err := s.primary.Send(ctx, message)
	if err == nil {
		return nil
	}
	if shouldSkipFallback(err) {
		return err
	}

	fallbackErr := s.fallback.Send(ctx, message)
	if fallbackErr == nil {
		return nil
	}

	return fmt.Errorf("primary log sink failed: %w; fallback log sink failed: %w", err, fallbackErr)
}

func shouldSkipFallback(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
