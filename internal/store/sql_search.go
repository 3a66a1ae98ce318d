// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/MKhiriev/clip-keeper/models"
)

// EntryFilter describes the optional constraints of a history search.
// Zero-value fields are not added to the query.
type EntryFilter struct {
	// SessionID scopes the search to one session. Required.
	SessionID int64

	// Query is a case-insensitive substring matched against entry content.
	Query string

	// ContentType restricts results to text or image entries.
	ContentType models.ContentType

	// Limit caps the number of returned rows; zero means no limit.
	Limit uint64
}

// entryColumns is the canonical column list of the clipboard_entries table,
// in scan order of scanEntry.
var entryColumns = []string{
	"id",
	"session_id",
	"content",
	"content_type",
	"width",
	"height",
	"captured_at",
	"is_deleted",
}

// buildSearchEntriesQuery assembles the dynamic history-search SELECT for the
// given filter. Soft-deleted entries are always excluded; ordering matches
// the plain history listing (newest first).
func buildSearchEntriesQuery(filter EntryFilter) (string, []any, error) {
	builder := squirrel.
		Select(entryColumns...).
		From(models.ClipboardEntry{}.TableName()).
		Where(squirrel.Eq{"session_id": filter.SessionID}).
		Where(squirrel.Eq{"is_deleted": 0}).
		OrderBy("captured_at DESC", "id DESC").
		PlaceholderFormat(squirrel.Dollar)

	if query := strings.TrimSpace(filter.Query); query != "" {
		builder = builder.Where(squirrel.Like{"content": "%" + query + "%"})
	}

	if filter.ContentType != "" {
		builder = builder.Where(squirrel.Eq{"content_type": filter.ContentType})
	}

	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
