package submissionlog

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nurpe/vendor-onboarding/internal/model"
)

func sampleRecord() model.SubmissionRecord {
	item := "item-a"
	return model.SubmissionRecord{
		SubmissionID:        uuid.New(),
		VendorName:          "AgroCo",
		VendorEmail:         "ops@agroco.test",
		VendorContactNumber: "+91 98765 43210",
		ServiceOffering:     "Seeds",
		VendorCountry:       "India",
		RequestSysID:        "req-1",
		RequestNumber:       "REQ0010001",
		ReqItemSysID:        &item,
		AttachmentUploaded:  true,
	}
}

func TestFileSinkFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "submission_log.txt")
	logger := New(zerolog.Nop(), NewFileSink(path))
	logger.now = func() time.Time { return time.Date(2030, 3, 10, 8, 30, 0, 0, time.UTC) }

	logger.Log(context.Background(), sampleRecord())

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	content := string(data)
	if !strings.HasPrefix(content, "[2030-03-10T08:30:00.000Z] {\n") {
		t.Errorf("unexpected prefix: %q", content[:40])
	}
	if !strings.HasSuffix(content, "}\n\n") {
		t.Errorf("expected record to end with a blank line, got %q", content[len(content)-10:])
	}

	body := strings.TrimPrefix(strings.TrimSpace(content), "[2030-03-10T08:30:00.000Z] ")
	var decoded map[string]any
	if err := json.Unmarshal([]byte(body), &decoded); err != nil {
		t.Fatalf("record is not JSON: %v", err)
	}
	if decoded["vendor_name"] != "AgroCo" || decoded["attachmentUploaded"] != true || decoded["requestNumber"] != "REQ0010001" {
		t.Errorf("unexpected record %v", decoded)
	}
}

func TestFileSinkConcurrentAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "submission_log.txt")
	logger := New(zerolog.Nop(), NewFileSink(path))

	const writers = 20
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			logger.Log(context.Background(), sampleRecord())
		}()
	}
	wg.Wait()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	blocks := strings.Split(strings.TrimSpace(string(data)), "\n\n")
	if len(blocks) != writers {
		t.Fatalf("expected %d blocks, got %d", writers, len(blocks))
	}
	for _, block := range blocks {
		idx := strings.Index(block, "] ")
		if !strings.HasPrefix(block, "[") || idx < 0 {
			t.Fatalf("malformed block %q", block)
		}
		var decoded map[string]any
		if err := json.Unmarshal([]byte(block[idx+2:]), &decoded); err != nil {
			t.Errorf("interleaved or corrupt block: %v", err)
		}
	}
}

type failingSink struct{ panics bool }

func (f failingSink) Name() string { return "failing" }

func (f failingSink) Write(context.Context, model.SubmissionRecord) error {
	if f.panics {
		panic("disk on fire")
	}
	return errors.New("write refused")
}

type fakeAppender struct {
	records []model.SubmissionRecord
}

func (f *fakeAppender) Append(_ context.Context, record model.SubmissionRecord) error {
	f.records = append(f.records, record)
	return nil
}

func TestLoggerSwallowsSinkFailures(t *testing.T) {
	appender := &fakeAppender{}
	logger := New(zerolog.Nop(),
		failingSink{},
		failingSink{panics: true},
		NewDatabaseSink(appender),
	)

	logger.Log(context.Background(), sampleRecord())

	if len(appender.records) != 1 {
		t.Fatalf("expected later sinks to still receive the record, got %d", len(appender.records))
	}
	if appender.records[0].LoggedAt.IsZero() {
		t.Error("expected LoggedAt to be stamped")
	}
}

func TestFileSinkUnwritablePath(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "not-a-dir")
	if err := os.WriteFile(blocker, nil, 0o600); err != nil {
		t.Fatalf("write blocker: %v", err)
	}
	sink := NewFileSink(filepath.Join(blocker, "submission_log.txt"))
	if err := sink.Write(context.Background(), sampleRecord()); err == nil {
		t.Error("expected error when the log directory is a file")
	}
}
