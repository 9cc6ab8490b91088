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

type ledgerFile struct {
	Bookings []domain.LedgerEntry `json:"bookings"`
}

// FileLedgerStore keeps the ledger in a single json document, rewritten
// in full after every mutation.
type FileLedgerStore struct {
	path string
}

func NewFileLedgerStore(path string) *FileLedgerStore {
	return &FileLedgerStore{path: path}
}

// Load returns an empty ledger when the file does not exist yet; the
// first successful booking creates it.
func (s *FileLedgerStore) Load(ctx context.Context) ([]domain.LedgerEntry, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []domain.LedgerEntry{}, nil
		}
		return nil, fmt.Errorf("read ledger file: %w", err)
	}

	var doc ledgerFile
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode ledger file: %w", err)
	}
	if doc.Bookings == nil {
		doc.Bookings = []domain.LedgerEntry{}
	}
	return doc.Bookings, nil
}

func (s *FileLedgerStore) Replace(ctx context.Context, entries []domain.LedgerEntry) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create ledger dir: %w", err)
	}
	data, err := json.MarshalIndent(ledgerFile{Bookings: entries}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode ledger: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write ledger file: %w", err)
	}
	return nil
}

var _ LedgerStore = (*FileLedgerStore)(nil)
