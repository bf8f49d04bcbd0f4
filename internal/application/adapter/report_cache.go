// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
)

// ReportCache defines a best-effort cache for computed report payloads.
// Implementations may lose or expire entries at any time; callers must
// treat every operation as advisory and fall back to direct computation.
type ReportCache interface {
	// Get retrieves a cached payload for the user under the given key.
	// Returns false when no entry exists.
	Get(ctx context.Context, userID uuid.UUID, key string, dest any) (bool, error)

	// Set stores a payload for the user under the given key.
	Set(ctx context.Context, userID uuid.UUID, key string, value any) error

	// Invalidate drops all cached reports for the user.
	Invalidate(ctx context.Context, userID uuid.UUID) error
}
