package ports

import "context"

// Launcher starts a program without waiting for it and returns its PID.
type Launcher interface {
	Launch(ctx context.Context, argv []string) (int, error)
}
