// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/clip-keeper/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate or internal validation methods
// to restrict validation to a subset of fields (field-level scoping).
const (
	// FieldUserName targets the login identifier entered on the
	// registration and login screens.
	FieldUserName = "username"

	// FieldPassword targets the plaintext password entered by the user.
	FieldPassword = "password"

	// FieldUserID targets the owner identifier of a session.
	FieldUserID = "user_id"

	// FieldSessionID targets the owning session of a clipboard entry.
	FieldSessionID = "session_id"

	// FieldSessionName targets the user-visible session name.
	FieldSessionName = "session_name"

	// FieldContent targets the payload of a clipboard entry.
	FieldContent = "content"

	// FieldContentType targets the payload kind (text or image).
	FieldContentType = "content_type"
)

// Minimum credential lengths enforced at registration.
const (
	minUserNameLen = 3
	minPasswordLen = 6
)

// ClipDataValidator implements the Validator interface for all
// clipboard-keeper domain models: Credentials, Session and ClipboardEntry.
//
// It supports both value and pointer receivers for every model type
// and allows optional field-level scoping via variadic field name arguments.
type ClipDataValidator struct {
}

// NewClipDataValidator constructs a new ClipDataValidator
// and returns it as the Validator interface.
func NewClipDataValidator() Validator {
	return &ClipDataValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Both value and pointer forms of each
// supported model are accepted.
//
// Supported types:
//   - models.Credentials / *models.Credentials
//   - models.Session / *models.Session
//   - models.ClipboardEntry / *models.ClipboardEntry
//
// Returns ErrUnsupportedType if obj does not match any known model.
// Optional fields restrict validation to the named subset; when omitted,
// a sensible default set of fields is validated.
func (v *ClipDataValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		return v.validateCredentials(ctx, *value, fields...)

	case models.Session:
		return v.validateSession(ctx, value, fields...)
	case *models.Session:
		return v.validateSession(ctx, *value, fields...)

	case models.ClipboardEntry:
		return v.validateEntry(ctx, value, fields...)
	case *models.ClipboardEntry:
		return v.validateEntry(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateCredentials validates the login/registration form values.
//
// Default validated fields (when none specified): UserName, Password.
//
// Returns the first encountered validation error or nil.
func (v *ClipDataValidator) validateCredentials(ctx context.Context, creds models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserName, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUserName:
			name := strings.TrimSpace(creds.UserName)
			if utf8.RuneCountInString(name) < minUserNameLen {
				return ErrUserNameTooShort
			}
			if strings.ContainsAny(name, " \t") {
				return ErrUserNameHasSpaces
			}
		case FieldPassword:
			if utf8.RuneCountInString(creds.Password) < minPasswordLen {
				return ErrPasswordTooShort
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateSession validates a Session model.
//
// Default validated fields: Name. FieldUserID is opt-in because the owner
// is usually not known yet when the create form is validated.
func (v *ClipDataValidator) validateSession(ctx context.Context, session models.Session, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSessionName}
	}

	for _, f := range fields {
		switch f {
		case FieldSessionName:
			if strings.TrimSpace(session.Name) == "" {
				return ErrEmptySessionName
			}
		case FieldUserID:
			if session.UserID <= 0 {
				return ErrInvalidUserID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateEntry validates a ClipboardEntry before it is persisted.
//
// Default validated fields: SessionID, ContentType, Content.
func (v *ClipDataValidator) validateEntry(ctx context.Context, entry models.ClipboardEntry, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSessionID, FieldContentType, FieldContent}
	}

	for _, f := range fields {
		switch f {
		case FieldSessionID:
			if entry.SessionID <= 0 {
				return ErrInvalidSessionID
			}
		case FieldContentType:
			if !entry.ContentType.Valid() {
				return ErrInvalidContentType
			}
		case FieldContent:
			if entry.Content == "" {
				return ErrEmptyContent
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
