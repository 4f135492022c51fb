package notify

import (
	"context"

	"go.uber.org/multierr"
)

// Notifier is one best-effort alert channel.
type Notifier interface {
	Send(ctx context.Context, title, text string) error
}

// Multi fans a message out to every channel. A failing channel never stops
// the others; the combined error is returned for logging only.
type Multi []Notifier

func (m Multi) Send(ctx context.Context, title, text string) error {
	var errs error
	for _, n := range m {
		if n == nil {
			continue
		}
		errs = multierr.Append(errs, n.Send(ctx, title, text))
	}
	return errs
}
