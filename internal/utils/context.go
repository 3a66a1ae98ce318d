// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for scoping contexts to the authenticated user,
// content fingerprinting, JWT token generation and validation,
// and other common operations.
package utils

import (
	"context"

	"github.com/MKhiriev/clip-keeper/internal/logger"
)

// WithUserScope returns a derived context whose logger is tagged with the
// identifier of the authenticated user.
//
// Services and repositories pick the logger back up via logger.FromContext,
// so every operation performed on behalf of the user carries the user_id
// field without threading the identifier through call signatures.
//
// Example usage:
//
//	ctx = utils.WithUserScope(ctx, log, user.ID)
func WithUserScope(ctx context.Context, log *logger.Logger, userID int64) context.Context {
	scoped := log.With().Int64("user_id", userID).Logger()
	return scoped.WithContext(ctx)
}
