package clipboard

import "context"

// noopBackend keeps the application functional on headless machines: history
// browsing still works, capturing and copy-back do not.
type noopBackend struct{}

// NewNoopBackend returns the headless stub backend.
func NewNoopBackend() Backend {
	return &noopBackend{}
}

func (b *noopBackend) Name() string { return "noop (headless)" }

func (b *noopBackend) Read(ctx context.Context) (*Item, error) {
	return nil, nil
}

func (b *noopBackend) Write(ctx context.Context, item *Item) error {
	return ErrUnavailable
}

func (b *noopBackend) Close() error { return nil }
