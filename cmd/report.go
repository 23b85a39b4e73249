package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/bnema/desktop-switcher/internal/domain"
	"github.com/bnema/desktop-switcher/internal/logger"
)

const logTag = "switcher: "

// formatFailure renders err as "<Kind>: <message>", or "Error: <message>"
// when nothing in the chain is classified.
func formatFailure(err error) string {
	var classified *domain.Error
	if errors.As(err, &classified) {
		return classified.Error()
	}

	return "Error: " + err.Error()
}

func (c *cli) report(ctx context.Context, stderr io.Writer, err error) {
	message := formatFailure(err)
	_, _ = fmt.Fprintln(stderr, message)

	log := logger.Nop()
	if c.app != nil {
		log = c.app.log
	}

	sink, sinkErr := c.deps.logSink()
	if sinkErr != nil {
		log.Warn("Log sink unavailable", sinkErr)
		return
	}
	if sendErr := sink.Send(ctx, logTag+message); sendErr != nil {
		log.Warn("Failed to record error in log sink", sendErr)
	}
}
