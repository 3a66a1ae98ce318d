package clipboard

import (
	"context"

	design "golang.design/x/clipboard"

	"github.com/MKhiriev/clip-keeper/models"
)

// designBackend reads and writes the clipboard via golang.design/x/clipboard.
// It carries both text and PNG images and is the preferred implementation.
type designBackend struct{}

// NewDesignBackend initializes the golang.design clipboard. Init fails on
// machines without a display environment; callers fall back to a simpler
// backend then.
func NewDesignBackend() (Backend, error) {
	if err := design.Init(); err != nil {
		return nil, err
	}

	return &designBackend{}, nil
}

func (b *designBackend) Name() string { return "golang.design/x/clipboard" }

// Read prefers the image representation: when a copied image also carries a
// text form (a path, a URL), the image is what the user copied.
func (b *designBackend) Read(ctx context.Context) (*Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if img := design.Read(design.FmtImage); len(img) > 0 {
		width, height := pngDimensions(img)
		return &Item{
			Type:   models.TypeImage,
			Image:  img,
			Width:  width,
			Height: height,
		}, nil
	}

	if text := design.Read(design.FmtText); len(text) > 0 {
		return &Item{
			Type: models.TypeText,
			Text: string(text),
		}, nil
	}

	return nil, nil
}

func (b *designBackend) Write(ctx context.Context, item *Item) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	switch item.Type {
	case models.TypeText:
		design.Write(design.FmtText, []byte(item.Text))
	case models.TypeImage:
		design.Write(design.FmtImage, item.Image)
	default:
		return ErrUnsupportedContent
	}

	return nil
}

func (b *designBackend) Close() error { return nil }
