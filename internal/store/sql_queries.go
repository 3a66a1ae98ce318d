// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	createUser = `
		INSERT INTO users (username, password_hash)
		VALUES ($1, $2)
		RETURNING id, username, password_hash, created_at;`

	getUserByName = `
		SELECT
			id,
			username,
			password_hash,
			created_at
		FROM users
		WHERE username = $1;`

	getUserByID = `
		SELECT
			id,
			username,
			password_hash,
			created_at
		FROM users
		WHERE id = $1;`

	createSession = `
		INSERT INTO sessions (user_id, name, is_default)
		VALUES ($1, $2, $3)
		RETURNING id, user_id, name, created_at, is_default, is_deleted;`

	getSessions = `
		SELECT
			id,
			user_id,
			name,
			created_at,
			is_default,
			is_deleted
		FROM sessions
		WHERE user_id = $1 AND is_deleted = 0
		ORDER BY is_default DESC, name;`

	getSessionByID = `
		SELECT
			id,
			user_id,
			name,
			created_at,
			is_default,
			is_deleted
		FROM sessions
		WHERE id = $1 AND is_deleted = 0;`

	getSessionByName = `
		SELECT
			id,
			user_id,
			name,
			created_at,
			is_default,
			is_deleted
		FROM sessions
		WHERE user_id = $1 AND name = $2 AND is_deleted = 0;`

	renameSession = `
		UPDATE sessions
		SET name = $1
		WHERE id = $2 AND is_deleted = 0;`

	softDeleteSession = `
		UPDATE sessions
		SET is_deleted = 1,
		    is_default = 0
		WHERE id = $1;`

	softDeleteSessionEntries = `
		UPDATE clipboard_entries
		SET is_deleted = 1
		WHERE session_id = $1;`

	clearDefaultSessions = `
		UPDATE sessions
		SET is_default = 0
		WHERE user_id = $1;`

	markDefaultSession = `
		UPDATE sessions
		SET is_default = 1
		WHERE id = $1 AND user_id = $2 AND is_deleted = 0;`

	countSessions = `
		SELECT COUNT(*)
		FROM sessions
		WHERE user_id = $1 AND is_deleted = 0;`

	createEntry = `
		INSERT INTO clipboard_entries (session_id, content, content_type, width, height, captured_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, session_id, content, content_type, width, height, captured_at, is_deleted;`

	getEntries = `
		SELECT
			id,
			session_id,
			content,
			content_type,
			width,
			height,
			captured_at,
			is_deleted
		FROM clipboard_entries
		WHERE session_id = $1 AND is_deleted = 0
		ORDER BY captured_at DESC, id DESC;`

	getEntryByID = `
		SELECT
			id,
			session_id,
			content,
			content_type,
			width,
			height,
			captured_at,
			is_deleted
		FROM clipboard_entries
		WHERE id = $1;`

	getLastEntry = `
		SELECT
			id,
			session_id,
			content,
			content_type,
			width,
			height,
			captured_at,
			is_deleted
		FROM clipboard_entries
		WHERE session_id = $1 AND is_deleted = 0
		ORDER BY captured_at DESC, id DESC
		LIMIT 1;`

	getDeletedEntries = `
		SELECT
			id,
			session_id,
			content,
			content_type,
			width,
			height,
			captured_at,
			is_deleted
		FROM clipboard_entries
		WHERE session_id = $1 AND is_deleted = 1
		ORDER BY captured_at DESC, id DESC;`

	softDeleteEntry = `
		UPDATE clipboard_entries
		SET is_deleted = 1
		WHERE id = $1;`

	restoreEntry = `
		UPDATE clipboard_entries
		SET is_deleted = 0
		WHERE id = $1;`

	clearEntries = `
		UPDATE clipboard_entries
		SET is_deleted = 1
		WHERE session_id = $1 AND is_deleted = 0;`
)
