package obs

import (
	"context"
	"time"

	"elevator-sequence-service/internal/platform/logger"
)

type ctxKey string

const RequestIDKey ctxKey = "req_id"

// Time returns a deferred hook that logs the duration of an operation,
// tagged with the request id carried in the context.
//
// Usage: defer obs.Time(ctx, "services.OptimizeSchedule")(&err)
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()

	reqID, _ := ctx.Value(RequestIDKey).(string)

	return func(errp *error) {
		dur := time.Since(start)
		l := logger.Get()

		if errp != nil && *errp != nil {
			l.Error().
				Str("req_id", reqID).
				Str("op", name).
				Int64("dur_ms", dur.Milliseconds()).
				Err(*errp).
				Msg("operation failed")
			return
		}

		l.Debug().
			Str("req_id", reqID).
			Str("op", name).
			Int64("dur_ms", dur.Milliseconds()).
			Msg("operation done")
	}
}
