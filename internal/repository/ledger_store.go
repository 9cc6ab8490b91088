package repository

import (
	"context"

	"github.com/maelc/cinebooking/internal/domain"
)

// LedgerStore persists the booking ledger as one full snapshot per
// write. There are no partial-update semantics: Replace rewrites the
// whole collection, matching the last-writer-wins model the ledger's
// single lock serializes.
type LedgerStore interface {
	Load(ctx context.Context) ([]domain.LedgerEntry, error)
	Replace(ctx context.Context, entries []domain.LedgerEntry) error
}
