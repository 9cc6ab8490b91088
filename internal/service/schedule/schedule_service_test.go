package schedule

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/maelc/cinebooking/internal/clients"
	"github.com/maelc/cinebooking/internal/domain"
)

type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) Fetch(ctx context.Context, id string) clients.MovieResult {
	args := m.Called(ctx, id)
	return args.Get(0).(clients.MovieResult)
}

type memScheduleStore struct {
	days     []domain.ScheduleDay
	failNext bool
}

func (s *memScheduleStore) Load(ctx context.Context) ([]domain.ScheduleDay, error) {
	return append([]domain.ScheduleDay(nil), s.days...), nil
}

func (s *memScheduleStore) Replace(ctx context.Context, days []domain.ScheduleDay) error {
	if s.failNext {
		s.failNext = false
		return errors.New("write failed")
	}
	s.days = append([]domain.ScheduleDay(nil), days...)
	return nil
}

func rated(id string, rating float64) clients.MovieResult {
	return clients.MovieResult{Status: clients.LookupFound, Movie: &domain.Movie{ID: id, Title: id, Rating: rating}}
}

func TestService_AddAndByDate(t *testing.T) {
	service := New(&memScheduleStore{}, &MockCatalog{})
	ctx := context.Background()

	day, err := service.Add(ctx, "20250615", []string{"m1", "m2"})
	assert.NoError(t, err)
	assert.Equal(t, "20250615", day.Date)

	got, err := service.ByDate("20250615")
	assert.NoError(t, err)
	assert.Equal(t, []string{"m1", "m2"}, got.Movies)
}

func TestService_Add_Validation(t *testing.T) {
	service := New(&memScheduleStore{}, &MockCatalog{})
	ctx := context.Background()

	_, err := service.Add(ctx, "2025-06-15", []string{"m1"})
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = service.Add(ctx, "20250615", nil)
	assert.ErrorIs(t, err, ErrEmptyMovies)

	_, err = service.Add(ctx, "20250615", []string{"m1", " "})
	assert.ErrorIs(t, err, ErrBlankMovie)
}

func TestService_Add_Duplicate(t *testing.T) {
	service := New(&memScheduleStore{}, &MockCatalog{})
	ctx := context.Background()

	_, err := service.Add(ctx, "20250615", []string{"m1"})
	assert.NoError(t, err)

	_, err = service.Add(ctx, "20250615", []string{"m2"})
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestService_Add_RollbackOnPersistFailure(t *testing.T) {
	store := &memScheduleStore{failNext: true}
	service := New(store, &MockCatalog{})
	ctx := context.Background()

	_, err := service.Add(ctx, "20250615", []string{"m1"})
	assert.Error(t, err)

	_, err = service.ByDate("20250615")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Update(t *testing.T) {
	service := New(&memScheduleStore{}, &MockCatalog{})
	ctx := context.Background()

	_, err := service.Add(ctx, "20250615", []string{"m1"})
	assert.NoError(t, err)

	day, err := service.Update(ctx, "20250615", []string{"m2", "m3"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"m2", "m3"}, day.Movies)

	_, err = service.Update(ctx, "20250620", []string{"m1"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Delete(t *testing.T) {
	service := New(&memScheduleStore{}, &MockCatalog{})
	ctx := context.Background()

	_, err := service.Add(ctx, "20250615", []string{"m1"})
	assert.NoError(t, err)

	deleted, err := service.Delete(ctx, "20250615")
	assert.NoError(t, err)
	assert.Equal(t, "20250615", deleted.Date)

	_, err = service.ByDate("20250615")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = service.Delete(ctx, "20250615")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBestRatedScheduledMovie(t *testing.T) {
	mockCatalog := &MockCatalog{}
	service := New(&memScheduleStore{}, mockCatalog)
	ctx := context.Background()

	_, err := service.Add(ctx, "20250615", []string{"m1", "m2", "m3"})
	assert.NoError(t, err)

	mockCatalog.On("Fetch", mock.Anything, "m1").Return(rated("m1", 7.1)).Once()
	mockCatalog.On("Fetch", mock.Anything, "m2").Return(rated("m2", 9.0)).Once()
	mockCatalog.On("Fetch", mock.Anything, "m3").Return(rated("m3", 8.2)).Once()

	best, err := service.BestRatedScheduledMovie(ctx, "20250615")

	assert.NoError(t, err)
	assert.True(t, best.HasMovie)
	assert.Equal(t, "m2", best.Movie.ID)
	assert.Equal(t, 9.0, best.Rating)
	mockCatalog.AssertExpectations(t)
}

func TestBestRatedScheduledMovie_SkipsUnresolvable(t *testing.T) {
	mockCatalog := &MockCatalog{}
	service := New(&memScheduleStore{}, mockCatalog)
	ctx := context.Background()

	_, err := service.Add(ctx, "20250615", []string{"m1", "m2"})
	assert.NoError(t, err)

	mockCatalog.On("Fetch", mock.Anything, "m1").Return(clients.MovieResult{Status: clients.LookupUnreachable}).Once()
	mockCatalog.On("Fetch", mock.Anything, "m2").Return(rated("m2", 4.5)).Once()

	best, err := service.BestRatedScheduledMovie(ctx, "20250615")

	assert.NoError(t, err)
	assert.True(t, best.HasMovie)
	assert.Equal(t, "m2", best.Movie.ID)
}

func TestBestRatedScheduledMovie_NoneResolvable(t *testing.T) {
	mockCatalog := &MockCatalog{}
	service := New(&memScheduleStore{}, mockCatalog)
	ctx := context.Background()

	_, err := service.Add(ctx, "20250615", []string{"m1"})
	assert.NoError(t, err)

	mockCatalog.On("Fetch", mock.Anything, "m1").Return(clients.MovieResult{Status: clients.LookupNotFound}).Once()

	best, err := service.BestRatedScheduledMovie(ctx, "20250615")

	assert.NoError(t, err)
	assert.False(t, best.HasMovie)
	assert.Equal(t, "no valid rated movies for this date", best.Message)
}

func TestBestRatedScheduledMovie_Errors(t *testing.T) {
	service := New(&memScheduleStore{}, &MockCatalog{})
	ctx := context.Background()

	_, err := service.BestRatedScheduledMovie(ctx, "bad-date")
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = service.BestRatedScheduledMovie(ctx, "20250615")
	assert.ErrorIs(t, err, ErrNotFound)
}
