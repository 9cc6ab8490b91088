package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/maelc/cinebooking/internal/domain"
)

// ScheduleStore persists the per-date screening plan, full rewrite per
// mutation like the ledger.
type ScheduleStore interface {
	Load(ctx context.Context) ([]domain.ScheduleDay, error)
	Replace(ctx context.Context, days []domain.ScheduleDay) error
}

type scheduleFile struct {
	Schedule []domain.ScheduleDay `json:"schedule"`
}

type FileScheduleStore struct {
	path string
}

func NewFileScheduleStore(path string) *FileScheduleStore {
	return &FileScheduleStore{path: path}
}

func (s *FileScheduleStore) Load(ctx context.Context) ([]domain.ScheduleDay, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []domain.ScheduleDay{}, nil
		}
		return nil, fmt.Errorf("read schedule: %w", err)
	}
	var doc scheduleFile
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode schedule: %w", err)
	}
	if doc.Schedule == nil {
		doc.Schedule = []domain.ScheduleDay{}
	}
	return doc.Schedule, nil
}

func (s *FileScheduleStore) Replace(ctx context.Context, days []domain.ScheduleDay) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create schedule dir: %w", err)
	}
	data, err := json.MarshalIndent(scheduleFile{Schedule: days}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode schedule: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write schedule: %w", err)
	}
	return nil
}

var _ ScheduleStore = (*FileScheduleStore)(nil)
