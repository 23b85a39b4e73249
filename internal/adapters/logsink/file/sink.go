package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/bnema/desktop-switcher/internal/logger"
	"github.com/bnema/desktop-switcher/internal/ports"
)

const (
	logDirMode  = 0o700
	logFileMode = 0o600
)

// Sink appends one JSON line per message to a log file.
type Sink struct {
	path string
	mu   sync.Mutex
}

var _ ports.LogSink = (*Sink)(nil)

func NewSink(path string) *Sink {
	return &Sink{path: filepath.Clean(path)}
}

func (s *Sink) Send(ctx context.Context, message string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), logDirMode); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, logFileMode)
	if err != nil {
		return fmt.Errorf("open log file %q: %w", s.path, err)
	}

	log, err := logger.New(logger.WithWriter(f))
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("create file logger: %w", err)
	}
	log.Error(message, nil)

	if err := f.Close(); err != nil {
		return fmt.Errorf("close log file %q: %w", s.path, err)
	}

	return nil
}
