// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/clip-keeper/models"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validCredentials() models.Credentials {
	return models.Credentials{
		UserName: "alice",
		Password: "s3cret-password",
	}
}

func validSession() models.Session {
	return models.Session{
		UserID: 1,
		Name:   "Работа",
	}
}

func validEntry() models.ClipboardEntry {
	return models.ClipboardEntry{
		SessionID:   1,
		Content:     "copied text",
		ContentType: models.TypeText,
	}
}

// ---------------------------------------------------------------------------
// TestNewClipDataValidator
// ---------------------------------------------------------------------------

func TestNewClipDataValidator(t *testing.T) {
	v := NewClipDataValidator()
	require.NotNil(t, v)
}

// ---------------------------------------------------------------------------
// TestValidate_Dispatch
// ---------------------------------------------------------------------------

func TestValidate_Dispatch(t *testing.T) {
	v := NewClipDataValidator()
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		err := v.Validate(ctx, 42)
		require.ErrorIs(t, err, ErrUnsupportedType)
	})

	t.Run("Credentials value", func(t *testing.T) {
		c := validCredentials()
		require.NoError(t, v.Validate(ctx, c))
	})

	t.Run("Credentials pointer", func(t *testing.T) {
		c := validCredentials()
		require.NoError(t, v.Validate(ctx, &c))
	})

	t.Run("Session value", func(t *testing.T) {
		s := validSession()
		require.NoError(t, v.Validate(ctx, s))
	})

	t.Run("Session pointer", func(t *testing.T) {
		s := validSession()
		require.NoError(t, v.Validate(ctx, &s))
	})

	t.Run("ClipboardEntry value", func(t *testing.T) {
		e := validEntry()
		require.NoError(t, v.Validate(ctx, e))
	})

	t.Run("ClipboardEntry pointer", func(t *testing.T) {
		e := validEntry()
		require.NoError(t, v.Validate(ctx, &e))
	})
}

// ---------------------------------------------------------------------------
// TestValidateCredentials
// ---------------------------------------------------------------------------

func TestValidateCredentials(t *testing.T) {
	v := NewClipDataValidator()
	ctx := context.Background()

	t.Run("valid with defaults", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, validCredentials()))
	})

	t.Run("username too short", func(t *testing.T) {
		c := validCredentials()
		c.UserName = "ab"
		require.ErrorIs(t, v.Validate(ctx, c, FieldUserName), ErrUserNameTooShort)
	})

	t.Run("username of spaces only", func(t *testing.T) {
		c := validCredentials()
		c.UserName = "      "
		require.ErrorIs(t, v.Validate(ctx, c, FieldUserName), ErrUserNameTooShort)
	})

	t.Run("username with inner space", func(t *testing.T) {
		c := validCredentials()
		c.UserName = "bad name"
		require.ErrorIs(t, v.Validate(ctx, c, FieldUserName), ErrUserNameHasSpaces)
	})

	t.Run("cyrillic username counts runes", func(t *testing.T) {
		c := validCredentials()
		c.UserName = "мир"
		require.NoError(t, v.Validate(ctx, c, FieldUserName))
	})

	t.Run("password too short", func(t *testing.T) {
		c := validCredentials()
		c.Password = "12345"
		require.ErrorIs(t, v.Validate(ctx, c, FieldPassword), ErrPasswordTooShort)
	})

	t.Run("field scoping skips password", func(t *testing.T) {
		c := validCredentials()
		c.Password = ""
		require.NoError(t, v.Validate(ctx, c, FieldUserName))
	})

	t.Run("unknown field", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, validCredentials(), "nonsense"), ErrUnknownField)
	})
}

// ---------------------------------------------------------------------------
// TestValidateSession
// ---------------------------------------------------------------------------

func TestValidateSession(t *testing.T) {
	v := NewClipDataValidator()
	ctx := context.Background()

	t.Run("valid with defaults", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, validSession()))
	})

	t.Run("empty name", func(t *testing.T) {
		s := validSession()
		s.Name = "   "
		require.ErrorIs(t, v.Validate(ctx, s), ErrEmptySessionName)
	})

	t.Run("zero user_id is skipped by default", func(t *testing.T) {
		s := validSession()
		s.UserID = 0
		require.NoError(t, v.Validate(ctx, s))
	})

	t.Run("zero user_id fails when requested", func(t *testing.T) {
		s := validSession()
		s.UserID = 0
		require.ErrorIs(t, v.Validate(ctx, s, FieldUserID), ErrInvalidUserID)
	})

	t.Run("unknown field", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, validSession(), "nonsense"), ErrUnknownField)
	})
}

// ---------------------------------------------------------------------------
// TestValidateEntry
// ---------------------------------------------------------------------------

func TestValidateEntry(t *testing.T) {
	v := NewClipDataValidator()
	ctx := context.Background()

	t.Run("valid with defaults", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, validEntry()))
	})

	t.Run("zero session_id", func(t *testing.T) {
		e := validEntry()
		e.SessionID = 0
		require.ErrorIs(t, v.Validate(ctx, e), ErrInvalidSessionID)
	})

	t.Run("empty content", func(t *testing.T) {
		e := validEntry()
		e.Content = ""
		require.ErrorIs(t, v.Validate(ctx, e, FieldContent), ErrEmptyContent)
	})

	t.Run("bad content type", func(t *testing.T) {
		e := validEntry()
		e.ContentType = "video"
		require.ErrorIs(t, v.Validate(ctx, e, FieldContentType), ErrInvalidContentType)
	})

	t.Run("image entry is valid", func(t *testing.T) {
		e := validEntry()
		e.ContentType = models.TypeImage
		e.Content = "aGVsbG8="
		e.Width, e.Height = 640, 480
		require.NoError(t, v.Validate(ctx, e))
	})
}
