package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/MKhiriev/clip-keeper/internal/clipboard"
	"github.com/MKhiriev/clip-keeper/internal/config"
	"github.com/MKhiriev/clip-keeper/internal/logger"
	"github.com/MKhiriev/clip-keeper/internal/store"
	"github.com/MKhiriev/clip-keeper/models"
)

// truncatedSuffix is appended to text payloads cut down to the configured
// size limit so the user can tell the entry is incomplete.
const truncatedSuffix = "\n... (содержимое обрезано из-за размера)"

// historyService is the concrete implementation of HistoryService.
//
// It turns raw clipboard samples into persisted entries (applying the text
// size limit, image base64 encoding, and last-entry dedupe), serves the
// browse/search/restore views, and copies entries back onto the system
// clipboard without the monitor recapturing them.
type historyService struct {
	// entryRepository is the data-access layer for clipboard entries.
	entryRepository store.EntryRepository

	// backend is the system clipboard used by CopyToClipboard.
	backend clipboard.Backend

	// guard pauses capture around copy-back writes. Nil until the monitor
	// is wired in via SetCaptureGuard.
	guard CaptureGuard

	// maxTextSize is the byte limit above which text payloads are cut.
	maxTextSize int

	// previewLength is the rune limit of one-line entry summaries.
	previewLength int

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewHistoryService constructs a new HistoryService wired to the given
// repository and clipboard backend, taking the text size limit and preview
// length from configuration.
func NewHistoryService(entryRepository store.EntryRepository, backend clipboard.Backend, appCfg config.App, monitorCfg config.Monitor, logger *logger.Logger) HistoryService {
	return &historyService{
		entryRepository: entryRepository,
		backend:         backend,
		maxTextSize:     int(monitorCfg.MaxTextSize),
		previewLength:   appCfg.PreviewLength,
		logger:          logger,
	}
}

// SetCaptureGuard wires the monitor's pause/resume hooks used by
// CopyToClipboard. Called once during composition, before anything runs.
func (h *historyService) SetCaptureGuard(guard CaptureGuard) {
	h.guard = guard
}

// Save persists one clipboard sample under the given session.
//
// Text larger than the configured limit is cut at a rune boundary and
// suffixed with a truncation marker; images are stored as base64-encoded
// PNG bytes together with their pixel dimensions. A sample equal to the
// session's last live entry is skipped and reported with saved == false.
//
// Returns ErrNothingToSave for a nil or empty sample.
func (h *historyService) Save(ctx context.Context, sessionID int64, item *clipboard.Item) (models.ClipboardEntry, bool, error) {
	log := logger.FromContext(ctx)

	entry, err := h.buildEntry(sessionID, item)
	if err != nil {
		return models.ClipboardEntry{}, false, err
	}

	lastEntry, err := h.entryRepository.GetLastEntry(ctx, sessionID)
	switch {
	case err == nil:
		if lastEntry.ContentType == entry.ContentType && lastEntry.Content == entry.Content {
			return lastEntry, false, nil
		}
	case !errors.Is(err, store.ErrEntryNotFound):
		// dedupe is best effort: a rare duplicate beats a lost capture
		log.Warn().Err(err).Int64("session_id", sessionID).Msg("last entry lookup failed, saving without dedupe")
	}

	createdEntry, err := h.entryRepository.CreateEntry(ctx, entry)
	if err != nil {
		log.Err(err).Int64("session_id", sessionID).Msg("entry creation ended with error")
		return models.ClipboardEntry{}, false, fmt.Errorf("entry creation ended with error: %w", err)
	}

	return createdEntry, true, nil
}

// List returns the session's live entries, newest first.
func (h *historyService) List(ctx context.Context, sessionID int64) ([]models.ClipboardEntry, error) {
	log := logger.FromContext(ctx)

	entries, err := h.entryRepository.GetEntries(ctx, sessionID)
	if err != nil {
		log.Err(err).Int64("session_id", sessionID).Msg("listing entries failed")
		return nil, fmt.Errorf("listing entries failed: %w", err)
	}

	return entries, nil
}

// Search filters the session's live entries by a case-insensitive content
// substring and/or a content type. Blank arguments are not applied, so an
// all-blank search behaves like List.
func (h *historyService) Search(ctx context.Context, sessionID int64, query string, contentType models.ContentType) ([]models.ClipboardEntry, error) {
	log := logger.FromContext(ctx)

	entries, err := h.entryRepository.SearchEntries(ctx, store.EntryFilter{
		SessionID:   sessionID,
		Query:       query,
		ContentType: contentType,
	})
	if err != nil {
		log.Err(err).Int64("session_id", sessionID).Msg("searching entries failed")
		return nil, fmt.Errorf("searching entries failed: %w", err)
	}

	return entries, nil
}

// Delete soft-deletes one entry.
func (h *historyService) Delete(ctx context.Context, entryID int64) error {
	log := logger.FromContext(ctx)

	if err := h.entryRepository.DeleteEntry(ctx, entryID); err != nil {
		log.Err(err).Int64("entry_id", entryID).Msg("entry deletion ended with error")
		return fmt.Errorf("entry deletion ended with error: %w", err)
	}

	return nil
}

// Restore brings a soft-deleted entry back into the live history.
func (h *historyService) Restore(ctx context.Context, entryID int64) error {
	log := logger.FromContext(ctx)

	if err := h.entryRepository.RestoreEntry(ctx, entryID); err != nil {
		log.Err(err).Int64("entry_id", entryID).Msg("entry restore ended with error")
		return fmt.Errorf("entry restore ended with error: %w", err)
	}

	return nil
}

// Deleted lists the session's soft-deleted entries, newest first.
func (h *historyService) Deleted(ctx context.Context, sessionID int64) ([]models.ClipboardEntry, error) {
	log := logger.FromContext(ctx)

	entries, err := h.entryRepository.GetDeletedEntries(ctx, sessionID)
	if err != nil {
		log.Err(err).Int64("session_id", sessionID).Msg("listing deleted entries failed")
		return nil, fmt.Errorf("listing deleted entries failed: %w", err)
	}

	return entries, nil
}

// Clear soft-deletes every live entry of the session.
func (h *historyService) Clear(ctx context.Context, sessionID int64) error {
	log := logger.FromContext(ctx)

	if err := h.entryRepository.ClearEntries(ctx, sessionID); err != nil {
		log.Err(err).Int64("session_id", sessionID).Msg("clearing entries failed")
		return fmt.Errorf("clearing entries failed: %w", err)
	}

	return nil
}

// CopyToClipboard puts the entry's content back onto the system clipboard.
//
// Capture is paused for the duration of the write and the written value is
// registered as the monitor's last-seen sample, so copying an old entry
// does not immediately append it to the history again.
func (h *historyService) CopyToClipboard(ctx context.Context, entryID int64) error {
	log := logger.FromContext(ctx)

	entry, err := h.entryRepository.GetEntry(ctx, entryID)
	if err != nil {
		log.Err(err).Int64("entry_id", entryID).Msg("loading entry for copy failed")
		return fmt.Errorf("loading entry for copy failed: %w", err)
	}

	item, err := itemFromEntry(entry)
	if err != nil {
		log.Err(err).Int64("entry_id", entryID).Msg("decoding entry content failed")
		return fmt.Errorf("decoding entry content failed: %w", err)
	}

	if h.guard != nil {
		h.guard.Pause()
		defer h.guard.Resume()
	}

	if err = h.backend.Write(ctx, item); err != nil {
		log.Err(err).Int64("entry_id", entryID).Str("backend", h.backend.Name()).Msg("clipboard write failed")
		return fmt.Errorf("clipboard write failed: %w", err)
	}

	if h.guard != nil {
		h.guard.MarkSeen(item)
	}

	return nil
}

// Preview returns the single-line summary of an entry shown in lists.
func (h *historyService) Preview(entry models.ClipboardEntry) string {
	return entry.Preview(h.previewLength)
}

// buildEntry converts a raw clipboard sample into a persistable entry.
func (h *historyService) buildEntry(sessionID int64, item *clipboard.Item) (models.ClipboardEntry, error) {
	if item == nil {
		return models.ClipboardEntry{}, ErrNothingToSave
	}

	entry := models.ClipboardEntry{
		SessionID:   sessionID,
		ContentType: item.Type,
		CapturedAt:  time.Now().UTC(),
	}

	switch item.Type {
	case models.TypeText:
		if item.Text == "" {
			return models.ClipboardEntry{}, ErrNothingToSave
		}
		entry.Content = h.limitText(item.Text)

	case models.TypeImage:
		if len(item.Image) == 0 {
			return models.ClipboardEntry{}, ErrNothingToSave
		}
		entry.Content = base64.StdEncoding.EncodeToString(item.Image)
		entry.Width = item.Width
		entry.Height = item.Height

	default:
		return models.ClipboardEntry{}, fmt.Errorf("%w: unknown content type %q", ErrNothingToSave, item.Type)
	}

	return entry, nil
}

// limitText cuts text exceeding the configured byte limit at a rune
// boundary and appends the truncation marker.
func (h *historyService) limitText(text string) string {
	if h.maxTextSize <= 0 || len(text) <= h.maxTextSize {
		return text
	}

	cut := h.maxTextSize
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}

	return text[:cut] + truncatedSuffix
}

// itemFromEntry reverses the storage encoding of an entry back into a
// clipboard item ready to be written to the system clipboard.
func itemFromEntry(entry models.ClipboardEntry) (*clipboard.Item, error) {
	switch entry.ContentType {
	case models.TypeImage:
		imageBytes, err := base64.StdEncoding.DecodeString(entry.Content)
		if err != nil {
			return nil, fmt.Errorf("decoding stored image failed: %w", err)
		}

		return &clipboard.Item{
			Type:   models.TypeImage,
			Image:  imageBytes,
			Width:  entry.Width,
			Height: entry.Height,
		}, nil

	default:
		return &clipboard.Item{Type: models.TypeText, Text: entry.Content}, nil
	}
}
