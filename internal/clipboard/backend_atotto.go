package clipboard

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/MKhiriev/clip-keeper/models"
)

// atottoBackend is the text-only fallback built on github.com/atotto/clipboard.
// On Linux it shells out to xclip/xsel, so it may work where the primary
// backend cannot initialize.
type atottoBackend struct{}

// NewAtottoBackend returns the text-only backend, or an error when the
// platform has no clipboard utilities at all.
func NewAtottoBackend() (Backend, error) {
	if clipboard.Unsupported {
		return nil, ErrUnavailable
	}

	return &atottoBackend{}, nil
}

func (b *atottoBackend) Name() string { return "github.com/atotto/clipboard" }

func (b *atottoBackend) Read(ctx context.Context) (*Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	text, err := clipboard.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error reading clipboard: %w", err)
	}
	if text == "" {
		return nil, nil
	}

	return &Item{
		Type: models.TypeText,
		Text: text,
	}, nil
}

func (b *atottoBackend) Write(ctx context.Context, item *Item) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if item.Type != models.TypeText {
		return ErrUnsupportedContent
	}

	if err := clipboard.WriteAll(item.Text); err != nil {
		return fmt.Errorf("error writing clipboard: %w", err)
	}

	return nil
}

func (b *atottoBackend) Close() error { return nil }
