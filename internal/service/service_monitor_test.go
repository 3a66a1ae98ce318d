// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/clip-keeper/internal/clipboard"
	"github.com/MKhiriev/clip-keeper/internal/config"
	"github.com/MKhiriev/clip-keeper/internal/logger"
	"github.com/MKhiriev/clip-keeper/models"
)

// spyBackend отдаёт заранее заданный образец и считает чтения.
type spyBackend struct {
	mu    sync.Mutex
	item  *clipboard.Item
	err   error
	reads atomic.Int64
}

func (b *spyBackend) Name() string { return "spy" }

func (b *spyBackend) Read(context.Context) (*clipboard.Item, error) {
	b.reads.Add(1)

	b.mu.Lock()
	defer b.mu.Unlock()
	return b.item, b.err
}

func (b *spyBackend) Write(context.Context, *clipboard.Item) error { return nil }

func (b *spyBackend) Close() error { return nil }

func (b *spyBackend) set(item *clipboard.Item, err error) {
	b.mu.Lock()
	b.item = item
	b.err = err
	b.mu.Unlock()
}

// spyHistory реализует только Save — монитору больше ничего не нужно.
type spyHistory struct {
	HistoryService

	mu    sync.Mutex
	saves []savedSample
	entry models.ClipboardEntry
	saved bool
	err   error
}

type savedSample struct {
	sessionID int64
	item      *clipboard.Item
}

func (s *spyHistory) Save(_ context.Context, sessionID int64, item *clipboard.Item) (models.ClipboardEntry, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.saves = append(s.saves, savedSample{sessionID: sessionID, item: item})
	return s.entry, s.saved, s.err
}

func (s *spyHistory) saveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.saves)
}

func (s *spyHistory) lastSave() savedSample {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves[len(s.saves)-1]
}

// newTestMonitor — хелпер: монитор с интервалом 5ms
func newTestMonitor(backend clipboard.Backend, history HistoryService) MonitorJob {
	return NewMonitorJob(backend, history, config.Monitor{PollInterval: 5 * time.Millisecond}, logger.Nop())
}

// waitEvent ждёт событие монитора не дольше двух секунд.
func waitEvent(t *testing.T, monitor MonitorJob) MonitorEvent {
	t.Helper()

	select {
	case ev := <-monitor.Events():
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("таймаут ожидания события монитора")
		return MonitorEvent{}
	}
}

// ── Захват ───────────────────────────────────────────────────────────────────

func TestMonitorJob_CapturesChangedSample(t *testing.T) {
	backend := &spyBackend{}
	backend.set(&clipboard.Item{Type: models.TypeText, Text: "привет"}, nil)
	history := &spyHistory{entry: models.ClipboardEntry{ID: 1, SessionID: 5}, saved: true}

	monitor := newTestMonitor(backend, history)
	monitor.SetSession(5)
	require.NoError(t, monitor.Start(context.Background()))
	defer monitor.Stop()

	ev := waitEvent(t, monitor)
	require.NoError(t, ev.Err)
	assert.Equal(t, int64(1), ev.Entry.ID)

	got := history.lastSave()
	assert.Equal(t, int64(5), got.sessionID)
	assert.Equal(t, "привет", got.item.Text)
}

func TestMonitorJob_DedupesIdenticalSamples(t *testing.T) {
	backend := &spyBackend{}
	backend.set(&clipboard.Item{Type: models.TypeText, Text: "привет"}, nil)
	history := &spyHistory{saved: true}

	monitor := newTestMonitor(backend, history)
	monitor.SetSession(5)
	require.NoError(t, monitor.Start(context.Background()))

	// ~12 тиков с одним и тем же содержимым
	time.Sleep(60 * time.Millisecond)
	monitor.Stop()

	assert.Equal(t, 1, history.saveCount(), "одинаковое содержимое сохраняется один раз")
}

func TestMonitorJob_CapturesEachChange(t *testing.T) {
	backend := &spyBackend{}
	backend.set(&clipboard.Item{Type: models.TypeText, Text: "первый"}, nil)
	history := &spyHistory{saved: true}

	monitor := newTestMonitor(backend, history)
	monitor.SetSession(5)
	require.NoError(t, monitor.Start(context.Background()))
	defer monitor.Stop()

	waitEvent(t, monitor)

	backend.set(&clipboard.Item{Type: models.TypeText, Text: "второй"}, nil)
	waitEvent(t, monitor)

	require.Equal(t, 2, history.saveCount())
	assert.Equal(t, "второй", history.lastSave().item.Text)
}

func TestMonitorJob_SkipsWithoutSession(t *testing.T) {
	backend := &spyBackend{}
	backend.set(&clipboard.Item{Type: models.TypeText, Text: "привет"}, nil)
	history := &spyHistory{saved: true}

	// сессия не выбрана — буфер даже не читается
	monitor := newTestMonitor(backend, history)
	require.NoError(t, monitor.Start(context.Background()))

	time.Sleep(40 * time.Millisecond)
	monitor.Stop()

	assert.Equal(t, int64(0), backend.reads.Load())
	assert.Equal(t, 0, history.saveCount())
}

func TestMonitorJob_EmptyClipboardIgnored(t *testing.T) {
	backend := &spyBackend{}
	history := &spyHistory{saved: true}

	monitor := newTestMonitor(backend, history)
	monitor.SetSession(5)
	require.NoError(t, monitor.Start(context.Background()))

	time.Sleep(40 * time.Millisecond)
	monitor.Stop()

	assert.Greater(t, backend.reads.Load(), int64(0), "буфер опрашивается")
	assert.Equal(t, 0, history.saveCount(), "пустой буфер не порождает записей")
}

// ── Pause / Resume / MarkSeen ────────────────────────────────────────────────

func TestMonitorJob_PauseSuppressesCapture(t *testing.T) {
	backend := &spyBackend{}
	backend.set(&clipboard.Item{Type: models.TypeText, Text: "привет"}, nil)
	history := &spyHistory{entry: models.ClipboardEntry{ID: 1}, saved: true}

	monitor := newTestMonitor(backend, history)
	monitor.SetSession(5)
	monitor.Pause()
	require.NoError(t, monitor.Start(context.Background()))
	defer monitor.Stop()

	time.Sleep(40 * time.Millisecond)
	assert.Equal(t, int64(0), backend.reads.Load(), "на паузе буфер не читается")

	monitor.Resume()
	ev := waitEvent(t, monitor)
	assert.Equal(t, int64(1), ev.Entry.ID, "после Resume захват продолжается")
}

func TestMonitorJob_MarkSeenPreventsRecapture(t *testing.T) {
	item := &clipboard.Item{Type: models.TypeText, Text: "скопировано из истории"}

	backend := &spyBackend{}
	backend.set(item, nil)
	history := &spyHistory{saved: true}

	monitor := newTestMonitor(backend, history)
	monitor.SetSession(5)
	monitor.MarkSeen(item)
	require.NoError(t, monitor.Start(context.Background()))

	time.Sleep(40 * time.Millisecond)
	monitor.Stop()

	assert.Equal(t, 0, history.saveCount(), "помеченный образец не захватывается повторно")
}

func TestMonitorJob_MarkSeenNil_NoPanic(t *testing.T) {
	monitor := newTestMonitor(&spyBackend{}, &spyHistory{})

	assert.NotPanics(t, func() { monitor.MarkSeen(nil) })
}

// ── Ошибки ───────────────────────────────────────────────────────────────────

func TestMonitorJob_ReadErrorSkipsTickAndRecovers(t *testing.T) {
	backend := &spyBackend{}
	backend.set(nil, errors.New("x11 недоступен"))
	history := &spyHistory{entry: models.ClipboardEntry{ID: 1}, saved: true}

	monitor := newTestMonitor(backend, history)
	monitor.SetSession(5)
	require.NoError(t, monitor.Start(context.Background()))
	defer monitor.Stop()

	time.Sleep(40 * time.Millisecond)
	assert.Equal(t, 0, history.saveCount(), "ошибка чтения пропускает тик")
	assert.Greater(t, backend.reads.Load(), int64(1), "опрос продолжается несмотря на ошибки")

	// буфер ожил — захват возобновляется
	backend.set(&clipboard.Item{Type: models.TypeText, Text: "привет"}, nil)
	ev := waitEvent(t, monitor)
	assert.Equal(t, int64(1), ev.Entry.ID)
}

func TestMonitorJob_SaveErrorPublishedToUI(t *testing.T) {
	backend := &spyBackend{}
	backend.set(&clipboard.Item{Type: models.TypeText, Text: "привет"}, nil)
	history := &spyHistory{err: errors.New("database is locked")}

	monitor := newTestMonitor(backend, history)
	monitor.SetSession(5)
	require.NoError(t, monitor.Start(context.Background()))
	defer monitor.Stop()

	ev := waitEvent(t, monitor)
	require.Error(t, ev.Err)
	assert.Contains(t, ev.Err.Error(), "database is locked")
}

func TestMonitorJob_StoreDuplicateNotPublished(t *testing.T) {
	backend := &spyBackend{}
	backend.set(&clipboard.Item{Type: models.TypeText, Text: "привет"}, nil)
	// saved == false: запись уже является хвостом истории
	history := &spyHistory{entry: models.ClipboardEntry{ID: 9}, saved: false}

	monitor := newTestMonitor(backend, history)
	monitor.SetSession(5)
	require.NoError(t, monitor.Start(context.Background()))

	select {
	case ev := <-monitor.Events():
		t.Fatalf("неожиданное событие: %+v", ev)
	case <-time.After(50 * time.Millisecond):
	}
	monitor.Stop()

	assert.Equal(t, 1, history.saveCount())
}

// ── Переключение сессии ──────────────────────────────────────────────────────

func TestMonitorJob_SetSessionSwitchesTarget(t *testing.T) {
	backend := &spyBackend{}
	backend.set(&clipboard.Item{Type: models.TypeText, Text: "первый"}, nil)
	history := &spyHistory{saved: true}

	monitor := newTestMonitor(backend, history)
	monitor.SetSession(5)
	require.NoError(t, monitor.Start(context.Background()))
	defer monitor.Stop()

	waitEvent(t, monitor)
	assert.Equal(t, int64(5), history.lastSave().sessionID)

	// сначала переключаем сессию, потом меняем содержимое
	monitor.SetSession(7)
	backend.set(&clipboard.Item{Type: models.TypeText, Text: "второй"}, nil)
	waitEvent(t, monitor)

	assert.Equal(t, int64(7), history.lastSave().sessionID)
}

// ── Жизненный цикл ───────────────────────────────────────────────────────────

func TestMonitorJob_Name(t *testing.T) {
	monitor := newTestMonitor(&spyBackend{}, &spyHistory{})

	assert.Equal(t, "clipboard-monitor", monitor.Name())
}

func TestMonitorJob_StartTwice(t *testing.T) {
	monitor := newTestMonitor(&spyBackend{}, &spyHistory{})

	require.NoError(t, monitor.Start(context.Background()))
	defer monitor.Stop()

	err := monitor.Start(context.Background())
	assert.ErrorIs(t, err, ErrMonitorAlreadyStarted)
}

func TestMonitorJob_RestartAfterStop(t *testing.T) {
	monitor := newTestMonitor(&spyBackend{}, &spyHistory{})

	require.NoError(t, monitor.Start(context.Background()))
	monitor.Stop()

	require.NoError(t, monitor.Start(context.Background()), "после Stop монитор можно запустить заново")
	monitor.Stop()
}

func TestMonitorJob_StopBeforeStart_NoPanic(t *testing.T) {
	monitor := newTestMonitor(&spyBackend{}, &spyHistory{})

	assert.NotPanics(t, func() { monitor.Stop() })
}

func TestMonitorJob_DoubleStop_NoPanic(t *testing.T) {
	monitor := newTestMonitor(&spyBackend{}, &spyHistory{})

	require.NoError(t, monitor.Start(context.Background()))
	monitor.Stop()

	assert.NotPanics(t, func() { monitor.Stop() })
}

func TestMonitorJob_ContextCancelStopsJob(t *testing.T) {
	backend := &spyBackend{}
	history := &spyHistory{}

	monitor := newTestMonitor(backend, history)
	monitor.SetSession(5)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, monitor.Start(ctx))

	time.Sleep(20 * time.Millisecond)
	cancel()

	// Stop должен вернуться без зависания
	done := make(chan struct{})
	go func() {
		monitor.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(1 * time.Second):
		t.Fatal("Stop завис после отмены контекста")
	}
}
