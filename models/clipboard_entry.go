// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// ContentType describes what kind of payload a [ClipboardEntry] holds and
// how its Content field must be interpreted.
type ContentType string

const (
	// TypeText marks an entry whose Content is plain UTF-8 text.
	TypeText ContentType = "text"

	// TypeImage marks an entry whose Content is a base64-encoded PNG.
	// Width and Height carry the decoded image dimensions.
	TypeImage ContentType = "image"
)

// Valid reports whether the content type is one of the known values.
func (c ContentType) Valid() bool {
	return c == TypeText || c == TypeImage
}

// ClipboardEntry is a single captured clipboard item.
//
// Text payloads are stored verbatim in Content; image payloads are stored as
// base64-encoded PNG bytes so the entire history lives in one text column.
// Entries are soft-deleted: the row is retained with Deleted set and all
// history queries skip it until the entry is restored.
type ClipboardEntry struct {
	// ID is the internal unique identifier of the entry.
	ID int64 `json:"-"`

	// SessionID is the identifier of the owning session.
	SessionID int64 `json:"-"`

	// Content is the payload: plain text, or base64-encoded PNG
	// when ContentType is [TypeImage].
	Content string `json:"content"`

	// ContentType tells how Content must be interpreted.
	ContentType ContentType `json:"content_type"`

	// Width and Height are the image dimensions in pixels.
	// Both are zero for text entries.
	Width  int `json:"width,omitempty"`
	Height int `json:"height,omitempty"`

	// CapturedAt is the moment the item was seen on the clipboard.
	CapturedAt time.Time `json:"captured_at"`

	// Deleted marks the entry as soft-deleted.
	Deleted bool `json:"-"`
}

// TableName returns the name of the database table
// associated with the ClipboardEntry model.
func (e ClipboardEntry) TableName() string {
	return "clipboard_entries"
}

// Preview returns a single-line human-readable summary of the entry,
// at most limit runes long.
//
// Text entries are flattened (newlines and tabs become spaces) and cut with
// a trailing ellipsis when longer than limit. Image entries render as their
// pixel dimensions, e.g. "[изображение 640x480]".
func (e ClipboardEntry) Preview(limit int) string {
	if e.ContentType == TypeImage {
		return fmt.Sprintf("[изображение %dx%d]", e.Width, e.Height)
	}

	flat := strings.Join(strings.Fields(e.Content), " ")
	if limit <= 0 || utf8.RuneCountInString(flat) <= limit {
		return flat
	}

	runes := []rune(flat)

	return string(runes[:limit]) + "…"
}
