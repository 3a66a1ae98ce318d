package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/clip-keeper/internal/logger"
	"github.com/MKhiriev/clip-keeper/models"
)

// userRepository is the SQLite-backed implementation of [UserRepository].
// It handles account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured tracing of database interactions, and take the shared DB mutex
// for the duration of each statement.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with database-assigned fields (ID, CreatedAt).
//
// Error handling:
//   - unique violation on username → [ErrUserAlreadyExists];
//   - any other driver-level error → wrapped [ErrExecutingQuery];
//   - scan failure → wrapped [ErrScanningRow].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	var created models.User
	row := r.db.QueryRowContext(ctx, createUser, user.UserName, user.PasswordHash)

	if err := row.Scan(&created.ID, &created.UserName, &created.PasswordHash, &created.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return models.User{}, ErrUserAlreadyExists
		}

		log.Err(err).
			Str("func", "userRepository.CreateUser").
			Str("username", user.UserName).
			Msg("failed to insert user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

// GetUserByName retrieves the user record whose username matches exactly.
//
// Returns [ErrUserNotFound] when no such account exists.
func (r *userRepository) GetUserByName(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	var found models.User
	row := r.db.QueryRowContext(ctx, getUserByName, username)

	if err := row.Scan(&found.ID, &found.UserName, &found.PasswordHash, &found.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}

		log.Err(err).
			Str("func", "userRepository.GetUserByName").
			Str("username", username).
			Msg("failed to scan user row")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}

// GetUserByID retrieves the user record by primary key. It backs the
// remember-me flow, where the stored token carries only the user ID.
//
// Returns [ErrUserNotFound] when no such account exists.
func (r *userRepository) GetUserByID(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	var found models.User
	row := r.db.QueryRowContext(ctx, getUserByID, userID)

	if err := row.Scan(&found.ID, &found.UserName, &found.PasswordHash, &found.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}

		log.Err(err).
			Str("func", "userRepository.GetUserByID").
			Int64("user_id", userID).
			Msg("failed to scan user row")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}
