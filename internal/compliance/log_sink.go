package compliance

import (
	"context"

	"github.com/rs/zerolog"
)

// LogSink writes events as structured log lines.
type LogSink struct {
	Logger zerolog.Logger
}

func (LogSink) Name() string {
	return "log"
}

func (s LogSink) Write(_ context.Context, e Event) error {
	entry := s.Logger.Info().
		Str("event", e.ID.String()).
		Str("kind", string(e.Kind)).
		Time("timestamp", e.Timestamp)

	if a := e.Adjustment; a != nil {
		entry = entry.
			Str("budget", a.BudgetID.String()).
			Str("oldAmount", a.OldAmount.String()).
			Str("newAmount", a.NewAmount.String()).
			Str("reason", a.Reason)
	}

	if f := e.Failure; f != nil {
		entry = entry.Str("operation", f.Operation).Str("error", f.Error)
	}

	if sum, err := e.Checksum(); err == nil {
		entry = entry.Str("checksum", sum)
	}

	entry.Msg("compliance")
	return nil
}
