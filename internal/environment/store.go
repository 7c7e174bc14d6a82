package environment

import "context"

// ModeStore is the environment state collaborator. It owns persistence of
// the current mode and notifies subscribers when it changes. Consumers must
// re-read the mode per operation rather than caching it.
type ModeStore interface {
	// Current returns the mode the application is currently pointed at.
	Current(ctx context.Context) (Mode, error)

	// Set persists a new mode and publishes a change notification.
	Set(ctx context.Context, mode Mode) error

	// Subscribe returns a channel that receives the new mode on every
	// change. The channel is closed when ctx is cancelled.
	Subscribe(ctx context.Context) (<-chan Mode, error)
}
