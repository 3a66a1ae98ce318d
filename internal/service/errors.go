package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password so the login screen cannot be used to probe which
	// usernames exist.
	ErrInvalidCredentials = errors.New("invalid username or password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrNoStoredToken is returned by RestoreSession when the state file
	// carries no remember-me token at all.
	ErrNoStoredToken = errors.New("no stored token")

	// ErrNothingToSave is returned by Save for empty clipboard samples.
	ErrNothingToSave = errors.New("nothing to save")

	ErrMonitorAlreadyStarted = errors.New("monitor is already started")
)
