// Package submissionlog keeps the operational trail of onboarding attempts.
// Writes are best effort: a failing sink is logged and never reaches the
// submission response.
package submissionlog

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/nurpe/vendor-onboarding/internal/model"
)

type Sink interface {
	Name() string
	Write(ctx context.Context, record model.SubmissionRecord) error
}

type Logger struct {
	sinks []Sink
	now   func() time.Time
	log   zerolog.Logger
}

func New(log zerolog.Logger, sinks ...Sink) *Logger {
	return &Logger{sinks: sinks, now: time.Now, log: log}
}

// Log stamps record and hands it to every sink. Errors and panics stay here.
func (l *Logger) Log(ctx context.Context, record model.SubmissionRecord) {
	if record.LoggedAt.IsZero() {
		record.LoggedAt = l.now().UTC()
	}
	for _, sink := range l.sinks {
		if err := safeWrite(ctx, sink, record); err != nil {
			l.log.Warn().Err(err).
				Str("sink", sink.Name()).
				Str("submission_id", record.SubmissionID.String()).
				Msg("submission log write failed")
		}
	}
}

func safeWrite(ctx context.Context, sink Sink, record model.SubmissionRecord) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("sink panicked: %v", r)
		}
	}()
	return sink.Write(ctx, record)
}
