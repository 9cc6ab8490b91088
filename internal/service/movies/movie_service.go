package movies

import (
	"context"
	"errors"
	"sync"

	"github.com/maelc/cinebooking/internal/domain"
	"github.com/maelc/cinebooking/internal/repository"
)

var (
	ErrNotFound      = errors.New("movie not found")
	ErrAlreadyExists = errors.New("movie already exists")
	ErrNotAdmin      = errors.New("access denied: only admin users can modify the catalog")
)

// AdminChecker verifies the caller against the user service. Lookup
// failures (unknown user, unreachable service) propagate as-is so the
// handler can report them distinctly from a plain denial.
type AdminChecker interface {
	IsAdmin(ctx context.Context, userID string) (bool, error)
}

// Service owns the movie catalog and its read-only actor list.
type Service struct {
	mu     sync.Mutex
	movies []domain.Movie
	actors []domain.Actor
	store  repository.MovieStore
	users  AdminChecker
}

func New(store repository.MovieStore, users AdminChecker) *Service {
	return &Service{store: store, users: users}
}

func (s *Service) Load(ctx context.Context) error {
	movies, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	actors, err := s.store.LoadActors(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.movies = movies
	s.actors = actors
	s.mu.Unlock()
	return nil
}

func (s *Service) All() []domain.Movie {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Movie(nil), s.movies...)
}

func (s *Service) ByID(id string) (domain.Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, m := range s.movies {
		if m.ID == id {
			return m, nil
		}
	}
	return domain.Movie{}, ErrNotFound
}

// ActorsFor lists the actors whose film list includes the movie id.
func (s *Service) ActorsFor(movieID string) []domain.Actor {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []domain.Actor{}
	for _, a := range s.actors {
		for _, f := range a.Films {
			if f == movieID {
				out = append(out, a)
				break
			}
		}
	}
	return out
}

func (s *Service) Add(ctx context.Context, movie domain.Movie, callerID string) (domain.Movie, error) {
	if err := s.requireAdmin(ctx, callerID); err != nil {
		return domain.Movie{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, m := range s.movies {
		if m.ID == movie.ID {
			return domain.Movie{}, ErrAlreadyExists
		}
	}
	s.movies = append(s.movies, movie)
	if err := s.store.Replace(ctx, s.movies); err != nil {
		s.movies = s.movies[:len(s.movies)-1]
		return domain.Movie{}, err
	}
	return movie, nil
}

func (s *Service) UpdateRating(ctx context.Context, id string, rating float64, callerID string) (domain.Movie, error) {
	if err := s.requireAdmin(ctx, callerID); err != nil {
		return domain.Movie{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.movies {
		if s.movies[i].ID != id {
			continue
		}
		previous := s.movies[i].Rating
		s.movies[i].Rating = rating
		if err := s.store.Replace(ctx, s.movies); err != nil {
			s.movies[i].Rating = previous
			return domain.Movie{}, err
		}
		return s.movies[i], nil
	}
	return domain.Movie{}, ErrNotFound
}

func (s *Service) Delete(ctx context.Context, id, callerID string) error {
	if err := s.requireAdmin(ctx, callerID); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, m := range s.movies {
		if m.ID != id {
			continue
		}
		remaining := append(append([]domain.Movie(nil), s.movies[:i]...), s.movies[i+1:]...)
		if err := s.store.Replace(ctx, remaining); err != nil {
			return err
		}
		s.movies = remaining
		return nil
	}
	return ErrNotFound
}

func (s *Service) requireAdmin(ctx context.Context, callerID string) error {
	ok, err := s.users.IsAdmin(ctx, callerID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotAdmin
	}
	return nil
}
