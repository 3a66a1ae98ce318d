package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID      = errors.New("invalid user ID")
	ErrInvalidSessionID   = errors.New("invalid session ID")
	ErrUserNameTooShort   = errors.New("username must be at least 3 characters long")
	ErrUserNameHasSpaces  = errors.New("username must not contain spaces")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters long")
	ErrEmptySessionName   = errors.New("session name is required")
	ErrEmptyContent       = errors.New("content is required")
	ErrInvalidContentType = errors.New("invalid content type")
)
