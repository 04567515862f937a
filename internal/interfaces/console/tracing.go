package console

import (
	"context"
	"time"

	"agro-portal/internal/application/usage"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// trace runs one menu operation under a fresh trace ID, logging entry and exit
// and recording the outcome in the usage counters.
func (m *Menu) trace(ctx context.Context, op string, fn func(context.Context) error) error {
	traceID := uuid.New().String()
	logger := log.With().Str("trace_id", traceID).Str("operation", op).Logger()

	start := time.Now()
	logger.Info().Msg("Entering operation")
	err := fn(logger.WithContext(ctx))
	elapsed := time.Since(start)

	ev := logger.Info()
	if err != nil {
		ev = logger.Warn().Err(err)
	}
	ev.Int64("ms", elapsed.Milliseconds()).Msg("Exiting operation")

	if m.Recorder != nil {
		m.Recorder.Record(ctx, usage.Event{
			TraceID:   traceID,
			Operation: op,
			Duration:  elapsed,
			Failed:    err != nil,
			At:        start,
		})
	}
	return err
}
