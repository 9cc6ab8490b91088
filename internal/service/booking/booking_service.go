package booking

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/maelc/cinebooking/internal/clients"
	"github.com/maelc/cinebooking/internal/domain"
	"github.com/maelc/cinebooking/internal/kafka"
	"github.com/maelc/cinebooking/internal/ledger"
	"github.com/maelc/cinebooking/internal/metrics"
)

type BookingUseCase interface {
	AddBooking(ctx context.Context, userID, date string, movieIDs []string) (*BookingResult, error)
	DeleteBooking(ctx context.Context, userID, date, movieID string) (*BookingResult, error)
	Bookings(userID string) domain.LedgerEntry
	DetailedBookings(ctx context.Context, userID string) DetailedEntry
	AllBookings() []domain.LedgerEntry
	StatsForDate(ctx context.Context, date string) (*DateStats, error)
}

// Schedule confirms that a set of movie ids is legally screened on a
// date. Its error, when non-nil, is a *clients.ScheduleError.
type Schedule interface {
	Check(ctx context.Context, date string, movieIDs []string) error
}

type Catalog interface {
	Fetch(ctx context.Context, id string) clients.MovieResult
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

// BookingResult confirms a committed mutation.
type BookingResult struct {
	Message string   `json:"message"`
	UserID  string   `json:"userid"`
	Date    string   `json:"date"`
	Movies  []string `json:"movies,omitempty"`
	Movie   string   `json:"movie,omitempty"`
}

// Service orchestrates booking mutations: every validation step runs
// before the ledger is touched, so a rejected request can never leave a
// partial mutation behind.
type Service struct {
	ledger             *ledger.Ledger
	schedule           Schedule
	catalog            Catalog
	producer           Producer
	bookingTopic       string
	notificationsTopic string
}

type ServiceOption func(*Service)

func WithNotificationsTopic(topic string) ServiceOption {
	return func(s *Service) {
		s.notificationsTopic = topic
	}
}

func NewService(l *ledger.Ledger, schedule Schedule, catalog Catalog, producer Producer, bookingTopic string, opts ...ServiceOption) *Service {
	s := &Service{
		ledger:       l,
		schedule:     schedule,
		catalog:      catalog,
		producer:     producer,
		bookingTopic: bookingTopic,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddBooking validates the request against the schedule and the
// catalog, then unions the movie ids into the user's date entry and
// persists. Strict short-circuit order: date shape, input shape,
// schedule legality, movie existence, and only then the ledger critical
// section. Re-adding an already-booked id is a no-op.
func (s *Service) AddBooking(ctx context.Context, userID, date string, movieIDs []string) (*BookingResult, error) {
	if strings.TrimSpace(userID) == "" {
		metrics.BookingsRejected.WithLabelValues("invalid_input").Inc()
		return nil, ErrInvalidInput
	}
	if !domain.ValidDate(date) {
		metrics.BookingsRejected.WithLabelValues("invalid_date").Inc()
		return nil, ErrInvalidDate
	}

	toAdd := dedupe(movieIDs)
	if len(toAdd) == 0 {
		metrics.BookingsRejected.WithLabelValues("invalid_input").Inc()
		return nil, ErrInvalidInput
	}

	if err := s.schedule.Check(ctx, date, toAdd); err != nil {
		metrics.BookingsRejected.WithLabelValues("schedule_rejected").Inc()
		return nil, err
	}

	// Catalog lookups are independent and read-only, so they fan out in
	// parallel; all must resolve before the ledger lock is taken.
	results := make([]clients.MovieResult, len(toAdd))
	var wg sync.WaitGroup
	for i, id := range toAdd {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			results[i] = s.catalog.Fetch(ctx, id)
		}(i, id)
	}
	wg.Wait()
	for i, id := range toAdd {
		if results[i].Status != clients.LookupFound {
			metrics.BookingsRejected.WithLabelValues("unknown_movie").Inc()
			return nil, &UnknownMovieError{ID: id}
		}
	}

	final, err := s.ledger.Add(ctx, userID, date, toAdd)
	if err != nil {
		metrics.BookingsRejected.WithLabelValues("persistence").Inc()
		return nil, err
	}

	metrics.BookingsAdded.Inc()
	s.publish(ctx, kafka.BookingEvent{
		ID:     uuid.NewString(),
		Type:   kafka.EventBookingAdded,
		UserID: userID,
		Date:   date,
		Movies: toAdd,
		At:     time.Now(),
	})

	return &BookingResult{Message: "booking added", UserID: userID, Date: date, Movies: final}, nil
}

// DeleteBooking removes one movie id from the user's date entry. The
// ledger prunes the date entry when its movie set empties and reports
// the delete-path failure kinds as sentinels.
func (s *Service) DeleteBooking(ctx context.Context, userID, date, movieID string) (*BookingResult, error) {
	if err := s.ledger.Remove(ctx, userID, date, movieID); err != nil {
		metrics.BookingsRejected.WithLabelValues(deleteReason(err)).Inc()
		return nil, err
	}

	metrics.BookingsDeleted.Inc()
	s.publish(ctx, kafka.BookingEvent{
		ID:     uuid.NewString(),
		Type:   kafka.EventBookingDeleted,
		UserID: userID,
		Date:   date,
		Movie:  movieID,
		At:     time.Now(),
	})

	return &BookingResult{Message: "booking deleted", UserID: userID, Date: date, Movie: movieID}, nil
}

func (s *Service) Bookings(userID string) domain.LedgerEntry {
	return s.ledger.Bookings(userID)
}

func (s *Service) AllBookings() []domain.LedgerEntry {
	return s.ledger.All()
}

// publish is best-effort: the booking is already durable, a lost event
// must not fail the request.
func (s *Service) publish(ctx context.Context, event kafka.BookingEvent) {
	if s.producer == nil || s.bookingTopic == "" {
		return
	}
	if err := s.producer.Publish(ctx, s.bookingTopic, event.UserID, event); err != nil {
		log.Printf("publish %s event for %s: %v", event.Type, event.UserID, err)
		return
	}
	if s.notificationsTopic != "" {
		if err := s.producer.Publish(ctx, s.notificationsTopic, event.UserID, event); err != nil {
			log.Printf("publish notification for %s: %v", event.UserID, err)
		}
	}
}

func deleteReason(err error) string {
	switch err {
	case ErrNoBookingsForUser, ErrNoBookingsForDate, ErrMovieNotBooked:
		return "not_booked"
	default:
		return "persistence"
	}
}

// dedupe trims the requested ids and drops blanks and duplicates,
// keeping first-seen order.
func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

var _ BookingUseCase = (*Service)(nil)
