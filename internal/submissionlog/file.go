package submissionlog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/nurpe/vendor-onboarding/internal/model"
)

const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// FileSink appends one "[timestamp] {json}" block per record, separated by a
// blank line. Each record is a single write on an O_APPEND descriptor.
type FileSink struct {
	mu   sync.Mutex
	path string
}

func NewFileSink(path string) *FileSink {
	return &FileSink{path: path}
}

func (s *FileSink) Name() string {
	return "file"
}

func (s *FileSink) Write(_ context.Context, record model.SubmissionRecord) error {
	body, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	entry := fmt.Sprintf("[%s] %s\n\n", record.LoggedAt.UTC().Format(timestampLayout), body)

	s.mu.Lock()
	defer s.mu.Unlock()

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create log dir: %w", err)
		}
	}
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	if _, err := f.Write([]byte(entry)); err != nil {
		_ = f.Close()
		return fmt.Errorf("append log entry: %w", err)
	}
	return f.Close()
}

var _ Sink = (*FileSink)(nil)
