package ports

import (
	"context"

	"elevator-sequence-service/internal/domain"
)

// Contract for caching computed schedule results by request fingerprint.
// A failed cache operation is treated by callers as a miss, never as a
// fatal error.
type ScheduleCache interface {
	// Return the cached result for the key, with ok=false on a miss.
	Get(ctx context.Context, key string) (result *domain.ScheduleResult, ok bool, err error)
	// Store the result under the key.
	Put(ctx context.Context, key string, result *domain.ScheduleResult) error
}
