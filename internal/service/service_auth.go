package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/clip-keeper/internal/config"
	"github.com/MKhiriev/clip-keeper/internal/logger"
	"github.com/MKhiriev/clip-keeper/internal/store"
	"github.com/MKhiriev/clip-keeper/internal/utils"
	"github.com/MKhiriev/clip-keeper/internal/validators"
	"github.com/MKhiriev/clip-keeper/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and the
// remember-me token lifecycle using a UserRepository for persistence,
// bcrypt for password hashing, and the client state file for token storage.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// stateStore persists the remember-me token between launches.
	stateStore store.StateStore

	// validator enforces the credential rules at registration time.
	validator validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify remember-me tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued token remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given repositories
// and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, stateStore store.StateStore, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		stateStore:     stateStore,
		validator:      validators.NewClipDataValidator(),
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Register creates a new user account.
//
// It validates the credentials (username length and spaces, password
// length), hashes the password with bcrypt, and delegates persistence to
// the UserRepository. The plaintext password never leaves this method.
//
// Returns the persisted user (with a store-assigned ID) or:
//   - ErrInvalidDataProvided wrapping the concrete validation error;
//   - store.ErrUserAlreadyExists (wrapped) when the username is taken.
func (a *authService) Register(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, creds); err != nil {
		log.Error().Err(err).Str("username", creds.UserName).Msg("invalid registration data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Err(err).Str("username", creds.UserName).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		UserName:     creds.UserName,
		PasswordHash: string(passwordHash),
	})
	if err != nil {
		log.Err(err).Str("username", creds.UserName).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// It looks up the account by username and compares the stored bcrypt hash
// with the supplied password. An unknown username and a wrong password are
// indistinguishable to the caller: both return ErrInvalidCredentials.
//
// When creds.Remember is set, a signed remember-me token is written into
// the client state file; without the flag any previously stored token is
// discarded so a later launch does not resume a different account.
func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if creds.UserName == "" || creds.Password == "" {
		log.Error().Str("username", creds.UserName).Msg("empty credentials provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.GetUserByName(ctx, creds.UserName)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Warn().Str("username", creds.UserName).Msg("login with unknown username")
			return models.User{}, ErrInvalidCredentials
		}

		log.Err(err).Str("username", creds.UserName).Msg("user search by name failed")
		return models.User{}, fmt.Errorf("user search by name failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(creds.Password)); err != nil {
		log.Warn().
			Int64("id", foundUser.ID).
			Str("username", foundUser.UserName).
			Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	if err = a.storeRememberToken(ctx, foundUser, creds.Remember); err != nil {
		// the account is authenticated either way, remember-me is best effort
		log.Err(err).Int64("id", foundUser.ID).Msg("storing remember-me token failed")
	}

	return foundUser, nil
}

// RestoreSession resumes the account from the remember-me token stored in
// the client state file.
//
// Returns:
//   - ErrNoStoredToken when the state file carries no token;
//   - ErrTokenIsExpiredOrInvalid when the token fails validation or its
//     owner no longer exists — the stale token is discarded so the next
//     launch goes straight to the login screen.
func (a *authService) RestoreSession(ctx context.Context) (models.User, error) {
	log := logger.FromContext(ctx)

	state, err := a.stateStore.Load(ctx)
	if err != nil {
		log.Err(err).Msg("loading client state failed")
		return models.User{}, fmt.Errorf("loading client state failed: %w", err)
	}

	if state.Token == "" {
		return models.User{}, ErrNoStoredToken
	}

	token, err := utils.ValidateAndParseJWTToken(state.Token, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		log.Warn().Err(err).Msg("stored remember-me token rejected")
		a.clearStoredToken(ctx)
		return models.User{}, ErrTokenIsExpiredOrInvalid
	}

	user, err := a.userRepository.GetUserByID(ctx, token.UserID)
	if err != nil {
		log.Warn().Err(err).Int64("id", token.UserID).Msg("remember-me token owner not found")
		a.clearStoredToken(ctx)
		return models.User{}, ErrTokenIsExpiredOrInvalid
	}

	return user, nil
}

// Logout discards the stored remember-me token so the next launch starts
// at the login screen.
func (a *authService) Logout(ctx context.Context) error {
	log := logger.FromContext(ctx)

	state, err := a.stateStore.Load(ctx)
	if err != nil {
		log.Err(err).Msg("loading client state failed")
		return fmt.Errorf("loading client state failed: %w", err)
	}

	if state.Token == "" {
		return nil
	}

	state.Token = ""
	if err = a.stateStore.Save(ctx, state); err != nil {
		log.Err(err).Msg("saving client state failed")
		return fmt.Errorf("saving client state failed: %w", err)
	}

	return nil
}

// storeRememberToken writes a freshly issued token into the client state
// file when remember is set, and clears any previously stored token when it
// is not.
func (a *authService) storeRememberToken(ctx context.Context, user models.User, remember bool) error {
	state, err := a.stateStore.Load(ctx)
	if err != nil {
		return fmt.Errorf("loading client state failed: %w", err)
	}

	if !remember {
		if state.Token == "" {
			return nil
		}
		state.Token = ""

		return a.stateStore.Save(ctx, state)
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	state.Token = token.String()

	return a.stateStore.Save(ctx, state)
}

// clearStoredToken drops a rejected token from the state file, best effort.
func (a *authService) clearStoredToken(ctx context.Context) {
	log := logger.FromContext(ctx)

	state, err := a.stateStore.Load(ctx)
	if err != nil {
		log.Err(err).Msg("loading client state failed")
		return
	}

	state.Token = ""
	if err = a.stateStore.Save(ctx, state); err != nil {
		log.Err(err).Msg("dropping stale remember-me token failed")
	}
}
