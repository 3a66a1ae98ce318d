// Package clipboard provides access to the system clipboard behind a small
// Backend interface. Two real implementations and a fallback exist:
//
//	backend_design.go — golang.design/x/clipboard, text and PNG images
//	backend_atotto.go — github.com/atotto/clipboard, text only
//	backend_noop.go   — headless stub so the rest of the app still runs
//
// Detect probes them in that order and returns the first one that
// initializes on the current machine.
package clipboard

import (
	"bytes"
	"context"
	"errors"
	"image"

	// PNG decoder registration for image.DecodeConfig.
	_ "image/png"

	"github.com/MKhiriev/clip-keeper/internal/logger"
	"github.com/MKhiriev/clip-keeper/models"
)

var (
	// ErrUnavailable is returned when no clipboard is reachable at all,
	// e.g. a headless machine without a display server.
	ErrUnavailable = errors.New("clipboard is unavailable")

	// ErrUnsupportedContent is returned by Write when the active backend
	// cannot carry the item's content type (images on a text-only backend).
	ErrUnsupportedContent = errors.New("content type is not supported by the clipboard backend")
)

// Item is one clipboard value in the form the services work with. Exactly one
// of Text or Image is populated, depending on Type.
type Item struct {
	Type   models.ContentType
	Text   string
	Image  []byte // raw PNG bytes
	Width  int
	Height int
}

// Backend is the interface all clipboard implementations satisfy.
type Backend interface {
	// Name identifies the backend in logs.
	Name() string

	// Read returns the current clipboard contents.
	// Returns nil, nil when the clipboard is empty or holds an unsupported
	// format.
	Read(ctx context.Context) (*Item, error)

	// Write sets the clipboard contents to the given item.
	Write(ctx context.Context, item *Item) error

	// Close releases any resources held by the backend.
	Close() error
}

//go:generate mockgen -source=clipboard.go -destination=../mock/clipboard_mock.go -package=mock

// Detect returns the first clipboard backend that initializes on this
// machine: golang.design (text+image), then atotto (text only), then the
// no-op stub.
func Detect(log *logger.Logger) Backend {
	design, err := NewDesignBackend()
	if err == nil {
		log.Info().Str("backend", design.Name()).Msg("clipboard backend selected")
		return design
	}
	log.Warn().Err(err).Msg("primary clipboard backend unavailable, falling back to text-only")

	atotto, err := NewAtottoBackend()
	if err == nil {
		log.Info().Str("backend", atotto.Name()).Msg("clipboard backend selected")
		return atotto
	}
	log.Warn().Err(err).Msg("text-only clipboard backend unavailable, running headless")

	return NewNoopBackend()
}

// pngDimensions decodes width and height from the PNG header without
// decoding the full image.
func pngDimensions(data []byte) (width, height int) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0
	}

	return cfg.Width, cfg.Height
}
