// Package obs emits key=value timing lines for long-running CLI operations.
package obs

import (
	"context"
	"log"
	"time"
)

type ctxKey string

// RunIDKey carries the evaluation run identifier in a context.
const RunIDKey ctxKey = "run_id"

// WithRunID returns a copy of ctx tagged with id.
func WithRunID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RunIDKey, id)
}

// Time starts a timer for op name. Call the returned func with a pointer to the
// operation's error (or nil) when it finishes:
//
//	defer obs.Time(ctx, "fixture.evaluate")(&err)
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()

	runID, _ := ctx.Value(RunIDKey).(string)

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			log.Printf("run_id=%s op=%s dur=%dms err=%v", runID, name, dur.Milliseconds(), *errp)
			return
		}
		log.Printf("run_id=%s op=%s dur=%dms", runID, name, dur.Milliseconds())
	}
}
