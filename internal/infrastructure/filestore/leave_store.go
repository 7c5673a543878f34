package filestore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gaasbot/internal/domain/entities"
	"gaasbot/internal/ports/output"
)

// DefaultDir is where leave files live unless configured otherwise.
const DefaultDir = "data/gaas/leave"

const fileNameTemplate = "GaaS-leave-%s.db"

var _ output.LeaveStore = (*LeaveStore)(nil)

// LeaveStore appends leave records to one flat text file per event date.
type LeaveStore struct {
	dir string
	mu  sync.Mutex
}

func NewLeaveStore(dir string) *LeaveStore {
	if dir == "" {
		dir = DefaultDir
	}
	return &LeaveStore{dir: dir}
}

// Path returns the file that holds the records of the given date (YYYY-MM-DD).
func (s *LeaveStore) Path(date string) string {
	return filepath.Join(s.dir, fmt.Sprintf(fileNameTemplate, date))
}

// Append writes record as one line, creating the directory and file if absent.
func (s *LeaveStore) Append(_ context.Context, record *entities.LeaveRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create leave directory %s: %w", s.dir, err)
	}
	path := s.Path(record.Date)
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open leave file %s: %w", path, err)
	}
	if _, err := f.WriteString(record.Line()); err != nil {
		_ = f.Close()
		return fmt.Errorf("write leave file %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close leave file %s: %w", path, err)
	}
	return nil
}
