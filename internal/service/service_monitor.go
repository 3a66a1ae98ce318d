package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/clip-keeper/internal/clipboard"
	"github.com/MKhiriev/clip-keeper/internal/config"
	"github.com/MKhiriev/clip-keeper/internal/logger"
	"github.com/MKhiriev/clip-keeper/internal/utils"
	"github.com/MKhiriev/clip-keeper/models"
)

// monitorEventsBuffer sizes the events channel. Events beyond the buffer
// are dropped rather than blocking the poll loop.
const monitorEventsBuffer = 16

// clipboardMonitorJob polls the system clipboard on a ticker and hands every
// new sample to the history service for persistence under the active
// session.
//
// Samples are compared via SHA-256 fingerprints so megabyte-sized images are
// not retained between ticks. The paused flag and the last-seen fingerprint
// together keep copy-back writes from being captured again.
type clipboardMonitorJob struct {
	backend  clipboard.Backend
	history  HistoryService
	interval time.Duration
	logger   *logger.Logger

	// paused suspends capture while the history service writes to the
	// clipboard. Checked at every tick.
	paused atomic.Bool

	// sessionID is the session new captures are stored under.
	// Zero means no session is selected yet and ticks are skipped.
	sessionID atomic.Int64

	// lastSeen is the fingerprint of the last handled sample.
	lastMu   sync.Mutex
	lastSeen string

	events chan MonitorEvent

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewMonitorJob creates a clipboard monitor that polls backend every
// cfg.PollInterval and persists changed samples through history. The job is
// idle until Start is called and a session is set via SetSession.
func NewMonitorJob(backend clipboard.Backend, history HistoryService, cfg config.Monitor, logger *logger.Logger) MonitorJob {
	interval := cfg.PollInterval
	if interval <= 0 {
		interval = time.Second
	}

	return &clipboardMonitorJob{
		backend:  backend,
		history:  history,
		interval: interval,
		logger:   logger,
		events:   make(chan MonitorEvent, monitorEventsBuffer),
	}
}

// Name implements MonitorJob.
func (j *clipboardMonitorJob) Name() string {
	return "clipboard-monitor"
}

// Start implements MonitorJob. It launches the background polling goroutine,
// which exits when ctx is cancelled or Stop is called.
// Returns ErrMonitorAlreadyStarted when the job is already running.
func (j *clipboardMonitorJob) Start(ctx context.Context) error {
	j.mu.Lock()
	if j.cancel != nil {
		j.mu.Unlock()
		return ErrMonitorAlreadyStarted
	}

	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	j.logger.Info().Str("backend", j.backend.Name()).Dur("interval", j.interval).Msg("clipboard monitor started")

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.poll(jobCtx)
			}
		}
	}()

	return nil
}

// Stop implements MonitorJob. It cancels the background goroutine's context
// and blocks until the goroutine has fully exited. Safe to call when the job
// is not running (no-op in that case).
func (j *clipboardMonitorJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

// Pause implements CaptureGuard. The next ticks skip reading the clipboard
// until Resume is called.
func (j *clipboardMonitorJob) Pause() {
	j.paused.Store(true)
}

// Resume implements CaptureGuard.
func (j *clipboardMonitorJob) Resume() {
	j.paused.Store(false)
}

// MarkSeen implements CaptureGuard. It registers the item as the last
// handled sample so the next poll tick does not capture it again.
func (j *clipboardMonitorJob) MarkSeen(item *clipboard.Item) {
	if item == nil {
		return
	}

	fingerprint := fingerprintItem(item)

	j.lastMu.Lock()
	j.lastSeen = fingerprint
	j.lastMu.Unlock()
}

// SetSession implements MonitorJob. Takes effect on the next tick.
func (j *clipboardMonitorJob) SetSession(sessionID int64) {
	j.sessionID.Store(sessionID)
}

// Events implements MonitorJob.
func (j *clipboardMonitorJob) Events() <-chan MonitorEvent {
	return j.events
}

// poll samples the clipboard once: read, dedupe against the last-seen
// fingerprint, persist, publish. Read errors skip the tick; storage errors
// are published so the UI can show them.
func (j *clipboardMonitorJob) poll(ctx context.Context) {
	if j.paused.Load() {
		return
	}

	sessionID := j.sessionID.Load()
	if sessionID == 0 {
		return
	}

	item, err := j.backend.Read(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		j.logger.Warn().Err(err).Str("backend", j.backend.Name()).Msg("clipboard read failed, skipping tick")
		return
	}
	if item == nil {
		// empty clipboard never persists an empty entry
		return
	}

	fingerprint := fingerprintItem(item)

	j.lastMu.Lock()
	seen := j.lastSeen == fingerprint
	if !seen {
		j.lastSeen = fingerprint
	}
	j.lastMu.Unlock()

	if seen {
		return
	}

	entry, saved, err := j.history.Save(ctx, sessionID, item)
	if err != nil {
		if errors.Is(err, ErrNothingToSave) {
			return
		}
		j.logger.Err(err).Int64("session_id", sessionID).Msg("persisting captured clipboard item failed")
		j.publish(MonitorEvent{Err: err})
		return
	}
	if !saved {
		// already the tail of the stored history (e.g. after a restart)
		return
	}

	j.publish(MonitorEvent{Entry: entry})
}

// publish delivers the event without ever blocking the poll loop.
func (j *clipboardMonitorJob) publish(event MonitorEvent) {
	select {
	case j.events <- event:
	default:
		j.logger.Warn().Msg("monitor event dropped, consumer is not keeping up")
	}
}

// fingerprintItem computes the dedupe key of one clipboard sample. The
// content type prefix keeps a text sample from ever matching an image
// sample with identical bytes.
func fingerprintItem(item *clipboard.Item) string {
	if item.Type == models.TypeImage {
		return string(models.TypeImage) + ":" + utils.Fingerprint(item.Image)
	}

	return string(models.TypeText) + ":" + utils.FingerprintString(item.Text)
}
