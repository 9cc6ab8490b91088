package schedule

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/maelc/cinebooking/internal/clients"
	"github.com/maelc/cinebooking/internal/domain"
	"github.com/maelc/cinebooking/internal/repository"
)

var (
	ErrInvalidDate   = errors.New("invalid date format, expected YYYYMMDD")
	ErrNotFound      = errors.New("schedule not found for date")
	ErrAlreadyExists = errors.New("schedule already exists for date")
	ErrEmptyMovies   = errors.New("movies must be a non-empty array")
	ErrBlankMovie    = errors.New("all movie entries must be non-empty strings")
)

// Catalog resolves movie details for the best-rated lookup. A lookup
// that cannot confirm a movie is skipped, never fatal.
type Catalog interface {
	Fetch(ctx context.Context, id string) clients.MovieResult
}

// Service owns the per-date screening plan. Mutations rewrite the
// store's full document, mirroring the ledger's persistence model.
type Service struct {
	mu      sync.Mutex
	days    []domain.ScheduleDay
	store   repository.ScheduleStore
	catalog Catalog
}

func New(store repository.ScheduleStore, catalog Catalog) *Service {
	return &Service{store: store, catalog: catalog, days: []domain.ScheduleDay{}}
}

func (s *Service) Load(ctx context.Context) error {
	days, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.days = days
	s.mu.Unlock()
	return nil
}

func (s *Service) All() []domain.ScheduleDay {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.ScheduleDay, len(s.days))
	for i, d := range s.days {
		out[i] = domain.ScheduleDay{Date: d.Date, Movies: append([]string(nil), d.Movies...)}
	}
	return out
}

func (s *Service) ByDate(date string) (domain.ScheduleDay, error) {
	if !domain.ValidDate(date) {
		return domain.ScheduleDay{}, ErrInvalidDate
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, d := range s.days {
		if d.Date == date {
			return domain.ScheduleDay{Date: d.Date, Movies: append([]string(nil), d.Movies...)}, nil
		}
	}
	return domain.ScheduleDay{}, ErrNotFound
}

func (s *Service) Add(ctx context.Context, date string, movies []string) (domain.ScheduleDay, error) {
	if !domain.ValidDate(date) {
		return domain.ScheduleDay{}, ErrInvalidDate
	}
	if err := checkMovies(movies); err != nil {
		return domain.ScheduleDay{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, d := range s.days {
		if d.Date == date {
			return domain.ScheduleDay{}, ErrAlreadyExists
		}
	}

	day := domain.ScheduleDay{Date: date, Movies: append([]string(nil), movies...)}
	s.days = append(s.days, day)
	if err := s.store.Replace(ctx, s.days); err != nil {
		s.days = s.days[:len(s.days)-1]
		return domain.ScheduleDay{}, err
	}
	return day, nil
}

func (s *Service) Update(ctx context.Context, date string, movies []string) (domain.ScheduleDay, error) {
	if !domain.ValidDate(date) {
		return domain.ScheduleDay{}, ErrInvalidDate
	}
	if err := checkMovies(movies); err != nil {
		return domain.ScheduleDay{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.days {
		if s.days[i].Date != date {
			continue
		}
		previous := s.days[i].Movies
		s.days[i].Movies = append([]string(nil), movies...)
		if err := s.store.Replace(ctx, s.days); err != nil {
			s.days[i].Movies = previous
			return domain.ScheduleDay{}, err
		}
		return domain.ScheduleDay{Date: date, Movies: append([]string(nil), movies...)}, nil
	}
	return domain.ScheduleDay{}, ErrNotFound
}

func (s *Service) Delete(ctx context.Context, date string) (domain.ScheduleDay, error) {
	if !domain.ValidDate(date) {
		return domain.ScheduleDay{}, ErrInvalidDate
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, d := range s.days {
		if d.Date != date {
			continue
		}
		remaining := append(append([]domain.ScheduleDay(nil), s.days[:i]...), s.days[i+1:]...)
		if err := s.store.Replace(ctx, remaining); err != nil {
			return domain.ScheduleDay{}, err
		}
		s.days = remaining
		return d, nil
	}
	return domain.ScheduleDay{}, ErrNotFound
}

// BestRated is the outcome of the best-rated-scheduled-movie query. A
// day with no resolvable rated movie yields HasMovie=false with an
// explanatory message rather than an error.
type BestRated struct {
	Date     string
	HasMovie bool
	Message  string
	Movie    *domain.Movie
	Rating   float64
}

func (s *Service) BestRatedScheduledMovie(ctx context.Context, date string) (BestRated, error) {
	day, err := s.ByDate(date)
	if err != nil {
		return BestRated{}, err
	}

	if len(day.Movies) == 0 {
		return BestRated{Date: date, Message: "no movies scheduled for this date"}, nil
	}

	var best *domain.Movie
	bestRating := -1.0
	for _, id := range day.Movies {
		res := s.catalog.Fetch(ctx, id)
		if res.Status != clients.LookupFound {
			continue
		}
		if res.Movie.Rating > bestRating {
			bestRating = res.Movie.Rating
			m := *res.Movie
			best = &m
		}
	}

	if best == nil {
		return BestRated{Date: date, Message: "no valid rated movies for this date"}, nil
	}
	return BestRated{Date: date, HasMovie: true, Movie: best, Rating: bestRating}, nil
}

func checkMovies(movies []string) error {
	if len(movies) == 0 {
		return ErrEmptyMovies
	}
	for _, m := range movies {
		if strings.TrimSpace(m) == "" {
			return ErrBlankMovie
		}
	}
	return nil
}
