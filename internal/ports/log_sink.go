package ports

import "context"

type LogSink interface {
	Send(ctx context.Context, message string) error
}
