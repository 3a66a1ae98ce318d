package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/clip-keeper/internal/logger"
	"github.com/MKhiriev/clip-keeper/internal/utils"
	"github.com/MKhiriev/clip-keeper/models"
)

// fileStateStore is the JSON-file implementation of [StateStore]. The state
// lives in a single small document next to the database file; it is read once
// on startup and rewritten atomically on every change, guarded by its own
// mutex since the auth flow and the main loop both touch it.
type fileStateStore struct {
	logger *logger.Logger
	uuid   *utils.UUIDGenerator

	mu   sync.Mutex
	path string
}

// NewFileStateStore constructs a [StateStore] persisting to the given path.
// The file is created lazily on the first Load or Save.
func NewFileStateStore(path string, logger *logger.Logger) StateStore {
	logger.Debug().Str("path", path).Msg("creating client state store")
	return &fileStateStore{
		logger: logger,
		uuid:   utils.NewUUIDGenerator(),
		path:   path,
	}
}

// Load reads the persisted client state. On first launch — when the file does
// not exist yet — it mints an install ID, persists the fresh state and
// returns it, so callers always observe a non-empty InstallID.
func (f *fileStateStore) Load(ctx context.Context) (models.ClientState, error) {
	log := logger.FromContext(ctx)

	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		state := models.ClientState{InstallID: f.uuid.Generate()}
		if err := f.persist(state); err != nil {
			log.Err(err).
				Str("func", "fileStateStore.Load").
				Str("path", f.path).
				Msg("failed to persist initial client state")
			return models.ClientState{}, err
		}

		log.Debug().
			Str("func", "fileStateStore.Load").
			Str("install_id", state.InstallID).
			Msg("initialized client state on first launch")
		return state, nil
	}
	if err != nil {
		log.Err(err).
			Str("func", "fileStateStore.Load").
			Str("path", f.path).
			Msg("failed to read client state file")
		return models.ClientState{}, fmt.Errorf("error reading client state file: %w", err)
	}

	var state models.ClientState
	if err := json.Unmarshal(data, &state); err != nil {
		log.Err(err).
			Str("func", "fileStateStore.Load").
			Str("path", f.path).
			Msg("failed to decode client state file")
		return models.ClientState{}, fmt.Errorf("error decoding client state file: %w", err)
	}

	// state written by an older build may predate the install ID
	if state.InstallID == "" {
		state.InstallID = f.uuid.Generate()
		if err := f.persist(state); err != nil {
			return models.ClientState{}, err
		}
	}

	return state, nil
}

// Save rewrites the client state file with the given state.
func (f *fileStateStore) Save(ctx context.Context, state models.ClientState) error {
	log := logger.FromContext(ctx)

	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.persist(state); err != nil {
		log.Err(err).
			Str("func", "fileStateStore.Save").
			Str("path", f.path).
			Msg("failed to persist client state")
		return err
	}

	return nil
}

// persist serializes the state and replaces the file in one rename, with
// owner-only permissions — the file carries the remember-me token. Callers
// must hold f.mu.
func (f *fileStateStore) persist(state models.ClientState) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding client state: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("error creating client state directory: %w", err)
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("error writing client state file: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("error replacing client state file: %w", err)
	}

	return nil
}
