package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/maelc/cinebooking/internal/domain"
)

func TestFileLedgerStore_MissingFile(t *testing.T) {
	store := NewFileLedgerStore(filepath.Join(t.TempDir(), "bookings.json"))

	entries, err := store.Load(context.Background())

	assert.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFileLedgerStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookings.json")
	store := NewFileLedgerStore(path)
	ctx := context.Background()

	entries := []domain.LedgerEntry{
		{UserID: "u1", Dates: []domain.DateEntry{{Date: "20250615", Movies: []string{"m1", "m2"}}}},
		{UserID: "u2", Dates: []domain.DateEntry{{Date: "20250620", Movies: []string{"m3"}}}},
	}

	assert.NoError(t, store.Replace(ctx, entries))

	loaded, err := store.Load(ctx)
	assert.NoError(t, err)
	assert.Equal(t, entries, loaded)
}

func TestFileLedgerStore_MalformedDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookings.json")
	assert.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewFileLedgerStore(path).Load(context.Background())
	assert.Error(t, err)
}

func TestFileScheduleStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schedule.json")
	store := NewFileScheduleStore(path)
	ctx := context.Background()

	days := []domain.ScheduleDay{
		{Date: "20250615", Movies: []string{"m1", "m2"}},
	}

	assert.NoError(t, store.Replace(ctx, days))

	loaded, err := store.Load(ctx)
	assert.NoError(t, err)
	assert.Equal(t, days, loaded)
}

func TestFileUserStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	store := NewFileUserStore(path)
	ctx := context.Background()

	users := []domain.User{
		{ID: "jane_doe", Name: "Jane Doe", LastActive: 1750000000, IsAdmin: true},
	}

	assert.NoError(t, store.Replace(ctx, users))

	loaded, err := store.Load(ctx)
	assert.NoError(t, err)
	assert.Equal(t, users, loaded)
}

func TestFileMovieStore_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	store := NewFileMovieStore(dir)
	ctx := context.Background()

	movies := []domain.Movie{{ID: "m1", Title: "Heat", Director: "Michael Mann", Rating: 8.3}}

	assert.NoError(t, store.Replace(ctx, movies))

	loaded, err := store.Load(ctx)
	assert.NoError(t, err)
	assert.Equal(t, movies, loaded)

	// Actors are optional; a missing file is an empty list.
	actors, err := store.LoadActors(ctx)
	assert.NoError(t, err)
	assert.Empty(t, actors)
}
