package service

import (
	"github.com/MKhiriev/clip-keeper/internal/clipboard"
	"github.com/MKhiriev/clip-keeper/internal/config"
	"github.com/MKhiriev/clip-keeper/internal/logger"
	"github.com/MKhiriev/clip-keeper/internal/store"
)

// ClientServices groups every service the presentation layer talks to.
type ClientServices struct {
	AuthService    AuthService
	SessionService SessionService
	HistoryService HistoryService
	Monitor        MonitorJob
}

// NewClientServices wires the full service layer: auth, sessions, history,
// and the clipboard monitor, with the monitor installed as the history
// service's capture guard so copy-back writes are not recaptured.
func NewClientServices(storages *store.ClientStorages, backend clipboard.Backend, cfg config.StructuredConfig, logger *logger.Logger) *ClientServices {
	authSvc := NewAuthService(storages.UserRepository, storages.StateStore, cfg.App, logger)
	sessionSvc := NewSessionService(storages.SessionRepository, storages.StateStore, cfg.App, logger)
	historySvc := NewHistoryService(storages.EntryRepository, backend, cfg.App, cfg.Monitor, logger)
	monitor := NewMonitorJob(backend, historySvc, cfg.Monitor, logger)

	historySvc.SetCaptureGuard(monitor)

	return &ClientServices{
		AuthService:    authSvc,
		SessionService: sessionSvc,
		HistoryService: historySvc,
		Monitor:        monitor,
	}
}
