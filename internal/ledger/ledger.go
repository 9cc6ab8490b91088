package ledger

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/maelc/cinebooking/internal/domain"
	"github.com/maelc/cinebooking/internal/repository"
)

var (
	ErrNoBookingsForUser = errors.New("user has no bookings")
	ErrNoBookingsForDate = errors.New("no bookings for this date")
	ErrMovieNotBooked    = errors.New("movie not booked on this date")
)

// PersistError reports that the durable store rejected the snapshot
// write. The in-memory mutation has already been rolled back when this
// is returned.
type PersistError struct {
	Err error
}

func (e *PersistError) Error() string { return fmt.Sprintf("persist ledger: %v", e.Err) }
func (e *PersistError) Unwrap() error { return e.Err }

// Ledger owns the per-user booking records. It is loaded from the store
// once at startup and holds all entries in memory; every mutation runs
// under one lock covering the read-modify-persist sequence, because the
// store rewrites the full snapshot and concurrent writers would clobber
// each other.
type Ledger struct {
	mu      sync.Mutex
	entries []domain.LedgerEntry
	store   repository.LedgerStore
}

func New(store repository.LedgerStore) *Ledger {
	return &Ledger{store: store, entries: []domain.LedgerEntry{}}
}

// Load replaces the in-memory state with the stored snapshot.
func (l *Ledger) Load(ctx context.Context) error {
	entries, err := l.store.Load(ctx)
	if err != nil {
		return err
	}
	l.mu.Lock()
	l.entries = entries
	l.mu.Unlock()
	return nil
}

// Add unions the movie ids into the user's date entry, creating the
// user entry and the date entry on first use, then persists the full
// snapshot. Re-adding an already-booked id is a no-op. On a store
// failure the in-memory state is restored to the pre-mutation snapshot
// and a *PersistError is returned. The finalized movie set for the date
// is returned on success.
func (l *Ledger) Add(ctx context.Context, userID, date string, movies []string) ([]string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	snapshot := domain.CloneLedger(l.entries)

	entry := l.getOrCreateEntry(userID)
	dentry := getOrCreateDate(entry, date)
	for _, id := range movies {
		if !contains(dentry.Movies, id) {
			dentry.Movies = append(dentry.Movies, id)
		}
	}

	if err := l.store.Replace(ctx, l.entries); err != nil {
		l.entries = snapshot
		return nil, &PersistError{Err: err}
	}
	return append([]string(nil), dentry.Movies...), nil
}

// Remove deletes one movie id from the user's date entry and prunes the
// date entry when its movie set becomes empty. Same persistence and
// rollback semantics as Add.
func (l *Ledger) Remove(ctx context.Context, userID, date, movieID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry := l.findEntry(userID)
	if entry == nil {
		return ErrNoBookingsForUser
	}
	dentry := findDate(entry, date)
	if dentry == nil {
		return ErrNoBookingsForDate
	}
	idx := index(dentry.Movies, movieID)
	if idx < 0 {
		return ErrMovieNotBooked
	}

	snapshot := domain.CloneLedger(l.entries)

	dentry.Movies = append(dentry.Movies[:idx], dentry.Movies[idx+1:]...)
	if len(dentry.Movies) == 0 {
		kept := entry.Dates[:0]
		for _, d := range entry.Dates {
			if len(d.Movies) > 0 {
				kept = append(kept, d)
			}
		}
		entry.Dates = kept
	}

	if err := l.store.Replace(ctx, l.entries); err != nil {
		l.entries = snapshot
		return &PersistError{Err: err}
	}
	return nil
}

// Bookings returns the user's entry, or an entry with empty dates when
// the user has never booked; an unknown user is not an error on the
// read path.
func (l *Ledger) Bookings(userID string) domain.LedgerEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	if e := l.findEntry(userID); e != nil {
		return e.Clone()
	}
	return domain.LedgerEntry{UserID: userID, Dates: []domain.DateEntry{}}
}

// All returns a deep copy of every entry.
func (l *Ledger) All() []domain.LedgerEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return domain.CloneLedger(l.entries)
}

// CountMoviesForDate tallies, across all users, how many bookings each
// movie id has on the given date.
func (l *Ledger) CountMoviesForDate(date string) map[string]int {
	l.mu.Lock()
	defer l.mu.Unlock()

	counts := map[string]int{}
	for _, e := range l.entries {
		for _, d := range e.Dates {
			if d.Date != date {
				continue
			}
			for _, id := range d.Movies {
				counts[id]++
			}
		}
	}
	return counts
}

func (l *Ledger) findEntry(userID string) *domain.LedgerEntry {
	for i := range l.entries {
		if l.entries[i].UserID == userID {
			return &l.entries[i]
		}
	}
	return nil
}

func (l *Ledger) getOrCreateEntry(userID string) *domain.LedgerEntry {
	if e := l.findEntry(userID); e != nil {
		return e
	}
	l.entries = append(l.entries, domain.LedgerEntry{UserID: userID, Dates: []domain.DateEntry{}})
	return &l.entries[len(l.entries)-1]
}

func findDate(e *domain.LedgerEntry, date string) *domain.DateEntry {
	for i := range e.Dates {
		if e.Dates[i].Date == date {
			return &e.Dates[i]
		}
	}
	return nil
}

func getOrCreateDate(e *domain.LedgerEntry, date string) *domain.DateEntry {
	if d := findDate(e, date); d != nil {
		return d
	}
	e.Dates = append(e.Dates, domain.DateEntry{Date: date, Movies: []string{}})
	return &e.Dates[len(e.Dates)-1]
}

func contains(ids []string, id string) bool {
	return index(ids, id) >= 0
}

func index(ids []string, id string) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}
