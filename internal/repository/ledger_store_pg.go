package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/maelc/cinebooking/internal/domain"
)

// PGLedgerStore stores one row per user with the date entries as jsonb.
// Replace rewrites the whole table inside one transaction, keeping the
// full-snapshot semantics of the other backends. The position column
// preserves ledger insertion order across reloads.
//
// Schema:
//
//	CREATE TABLE booking_ledger (
//	    userid   text PRIMARY KEY,
//	    dates    jsonb NOT NULL,
//	    position int NOT NULL
//	);
type PGLedgerStore struct {
	db *pgxpool.Pool
}

func NewPGLedgerStore(db *pgxpool.Pool) *PGLedgerStore {
	return &PGLedgerStore{db: db}
}

func (s *PGLedgerStore) Load(ctx context.Context) ([]domain.LedgerEntry, error) {
	rows, err := s.db.Query(ctx, `SELECT userid, dates FROM booking_ledger ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query ledger: %w", err)
	}
	defer rows.Close()

	entries := []domain.LedgerEntry{}
	for rows.Next() {
		var (
			e   domain.LedgerEntry
			raw []byte
		)
		if err := rows.Scan(&e.UserID, &raw); err != nil {
			return nil, fmt.Errorf("scan ledger row: %w", err)
		}
		if err := json.Unmarshal(raw, &e.Dates); err != nil {
			return nil, fmt.Errorf("decode dates for %s: %w", e.UserID, err)
		}
		if e.Dates == nil {
			e.Dates = []domain.DateEntry{}
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *PGLedgerStore) Replace(ctx context.Context, entries []domain.LedgerEntry) error {
	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin ledger tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `TRUNCATE booking_ledger`); err != nil {
		return fmt.Errorf("truncate ledger: %w", err)
	}
	for i, e := range entries {
		dates, err := json.Marshal(e.Dates)
		if err != nil {
			return fmt.Errorf("encode dates for %s: %w", e.UserID, err)
		}
		if _, err := tx.Exec(ctx,
			`INSERT INTO booking_ledger (userid, dates, position) VALUES ($1, $2, $3)`,
			e.UserID, dates, i); err != nil {
			return fmt.Errorf("insert ledger row: %w", err)
		}
	}
	return tx.Commit(ctx)
}

var _ LedgerStore = (*PGLedgerStore)(nil)
