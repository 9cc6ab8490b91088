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

// MovieStore is the movie service's catalog storage. Actors are read
// only; no endpoint mutates them.
type MovieStore interface {
	Load(ctx context.Context) ([]domain.Movie, error)
	Replace(ctx context.Context, movies []domain.Movie) error
	LoadActors(ctx context.Context) ([]domain.Actor, error)
}

type movieFile struct {
	Movies []domain.Movie `json:"movies"`
}

type actorFile struct {
	Actors []domain.Actor `json:"actors"`
}

// FileMovieStore reads movies.json and actors.json from a data
// directory, the layout the catalog ships with.
type FileMovieStore struct {
	dir string
}

func NewFileMovieStore(dir string) *FileMovieStore {
	return &FileMovieStore{dir: dir}
}

func (s *FileMovieStore) Load(ctx context.Context) ([]domain.Movie, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, "movies.json"))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []domain.Movie{}, nil
		}
		return nil, fmt.Errorf("read movies: %w", err)
	}
	var doc movieFile
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode movies: %w", err)
	}
	return doc.Movies, nil
}

func (s *FileMovieStore) Replace(ctx context.Context, movies []domain.Movie) error {
	data, err := json.MarshalIndent(movieFile{Movies: movies}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode movies: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, "movies.json"), data, 0o644); err != nil {
		return fmt.Errorf("write movies: %w", err)
	}
	return nil
}

func (s *FileMovieStore) LoadActors(ctx context.Context) ([]domain.Actor, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, "actors.json"))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []domain.Actor{}, nil
		}
		return nil, fmt.Errorf("read actors: %w", err)
	}
	var doc actorFile
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode actors: %w", err)
	}
	return doc.Actors, nil
}

var _ MovieStore = (*FileMovieStore)(nil)
