package wmctrl

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/bnema/desktop-switcher/internal/domain"
	"github.com/bnema/desktop-switcher/internal/ports"
)

const DefaultBinary = "wmctrl"

var ErrUnavailable = errors.New("wmctrl command unavailable")

type runFunc func(ctx context.Context, args ...string) (stdout string, stderr string, err error)

type Client struct {
	run runFunc
}

var _ ports.WindowManager = (*Client)(nil)

// NewClient drives the wmctrl binary found at binary (a name looked up in
// PATH or a path).
func NewClient(binary string) *Client {
	if strings.TrimSpace(binary) == "" {
		binary = DefaultBinary
	}

	return &Client{run: commandRunner(binary)}
}

func (c *Client) ListWindows(ctx context.Context) ([]domain.WindowRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	stdout, stderr, err := c.run(ctx, "-l", "-x", "-p")
	if err != nil {
		return nil, formatError("list windows", err, stderr)
	}

	return ParseListing(stdout), nil
}

func (c *Client) SwitchDesktop(ctx context.Context, desktop int) error {
	return c.exec(ctx, "switch desktop", "-s", strconv.Itoa(desktop))
}

func (c *Client) CloseWindow(ctx context.Context, windowID string) error {
	return c.exec(ctx, "close window "+windowID, "-i", "-c", windowID)
}

// AddWindowState adds _NET_WM_STATE properties such as fullscreen or below.
func (c *Client) AddWindowState(ctx context.Context, windowID string, states ...string) error {
	if len(states) == 0 {
		return nil
	}

	return c.exec(ctx, "add window state "+windowID, "-i", "-r", windowID, "-b", "add,"+strings.Join(states, ","))
}

func (c *Client) ActivateWindow(ctx context.Context, windowID string) error {
	return c.exec(ctx, "activate window "+windowID, "-i", "-a", windowID)
}

func (c *Client) exec(ctx context.Context, op string, args ...string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, stderr, err := c.run(ctx, args...)
	if err != nil {
		return formatError(op, err, stderr)
	}

	return nil
}

func commandRunner(binary string) runFunc {
	return func(ctx context.Context, args ...string) (string, string, error) {
		path, err := exec.LookPath(binary)
		if err != nil {
			if errors.Is(err, exec.ErrNotFound) {
				return "", "", ErrUnavailable
			}
			return "", "", fmt.Errorf("locate %s command: %w", binary, err)
		}

		cmd := exec.CommandContext(ctx, path, args...)

		var stdout bytes.Buffer
		var stderr bytes.Buffer
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr

		err = cmd.Run()
		return stdout.String(), strings.TrimSpace(stderr.String()), err
	}
}

func formatError(op string, err error, stderr string) error {
	message := "wmctrl " + op
	if stderr != "" {
		message += " (" + stderr + ")"
	}

	return domain.NewError(domain.KindExternalToolFailure, message, err)
}
