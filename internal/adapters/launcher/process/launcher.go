package process

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"syscall"

	"al.essio.dev/pkg/shellescape"
	"github.com/bnema/desktop-switcher/internal/domain"
	"github.com/bnema/desktop-switcher/internal/logger"
	"github.com/bnema/desktop-switcher/internal/ports"
)

var errEmptyCommand = errors.New("command is empty")

type startFunc func(argv []string) (pid int, err error)

// Launcher starts programs in their own session and never waits for them.
// The child is handed over to the OS process table once started.
type Launcher struct {
	start startFunc
	log   *logger.Logger
}

var _ ports.Launcher = (*Launcher)(nil)

func NewLauncher(log *logger.Logger) *Launcher {
	if log == nil {
		log = logger.Nop()
	}

	return &Launcher{start: startDetached, log: log}
}

func (l *Launcher) Launch(ctx context.Context, argv []string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if len(argv) == 0 {
		return 0, domain.NewError(domain.KindLaunchFailure, "launch program", errEmptyCommand)
	}

	commandLine := shellescape.QuoteCommand(argv)
	l.log.Debug("Launching program", "command", commandLine)

	pid, err := l.start(argv)
	if err != nil {
		return 0, domain.NewError(domain.KindLaunchFailure, fmt.Sprintf("launch %s", commandLine), err)
	}

	l.log.Debug("Program started", "command", commandLine, "pid", pid)
	return pid, nil
}

func startDetached(argv []string) (int, error) {
	path, err := exec.LookPath(argv[0])
	if err != nil {
		return 0, fmt.Errorf("locate %q: %w", argv[0], err)
	}

	// Not tied to the caller's context: the program outlives this run.
	cmd := exec.Command(path, argv[1:]...)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}

	if err := cmd.Start(); err != nil {
		return 0, fmt.Errorf("start %q: %w", argv[0], err)
	}

	pid := cmd.Process.Pid
	if err := cmd.Process.Release(); err != nil {
		return 0, fmt.Errorf("release %q: %w", argv[0], err)
	}

	return pid, nil
}
