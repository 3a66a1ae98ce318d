// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Session is a named bucket of clipboard entries owned by exactly one user.
//
// Every captured clipboard item belongs to the session that was active at
// capture time. A user always has at least one live session; at most one of
// them carries the default flag. Sessions are soft-deleted: the row stays in
// the database with Deleted set, and all list queries skip it.
type Session struct {
	// ID is the internal unique identifier of the session.
	ID int64 `json:"-"`

	// UserID is the identifier of the owning user.
	UserID int64 `json:"-"`

	// Name is the user-visible session name, unique per user.
	Name string `json:"name"`

	// CreatedAt is the timestamp when the session was created.
	CreatedAt time.Time `json:"created_at"`

	// Default marks the session pre-selected after login.
	// At most one session per user has it set.
	Default bool `json:"default"`

	// Deleted marks the session as soft-deleted.
	Deleted bool `json:"-"`
}

// TableName returns the name of the database table
// associated with the Session model.
func (s Session) TableName() string {
	return "sessions"
}
