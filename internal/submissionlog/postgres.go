package submissionlog

import (
	"context"

	"github.com/nurpe/vendor-onboarding/internal/model"
)

type Appender interface {
	Append(ctx context.Context, record model.SubmissionRecord) error
}

// DatabaseSink mirrors the trail into the vendor_submission_log table.
type DatabaseSink struct {
	repo Appender
}

func NewDatabaseSink(repo Appender) *DatabaseSink {
	return &DatabaseSink{repo: repo}
}

func (s *DatabaseSink) Name() string {
	return "postgres"
}

func (s *DatabaseSink) Write(ctx context.Context, record model.SubmissionRecord) error {
	return s.repo.Append(ctx, record)
}
