package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/maelc/cinebooking/internal/clients"
	"github.com/maelc/cinebooking/internal/domain"
	"github.com/maelc/cinebooking/internal/service/booking"
)

// MockBookingUseCase is a mock implementation of booking.BookingUseCase
type MockBookingUseCase struct {
	mock.Mock
}

func (m *MockBookingUseCase) AddBooking(ctx context.Context, userID, date string, movieIDs []string) (*booking.BookingResult, error) {
	args := m.Called(ctx, userID, date, movieIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.BookingResult), args.Error(1)
}

func (m *MockBookingUseCase) DeleteBooking(ctx context.Context, userID, date, movieID string) (*booking.BookingResult, error) {
	args := m.Called(ctx, userID, date, movieID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.BookingResult), args.Error(1)
}

func (m *MockBookingUseCase) Bookings(userID string) domain.LedgerEntry {
	args := m.Called(userID)
	return args.Get(0).(domain.LedgerEntry)
}

func (m *MockBookingUseCase) DetailedBookings(ctx context.Context, userID string) booking.DetailedEntry {
	args := m.Called(ctx, userID)
	return args.Get(0).(booking.DetailedEntry)
}

func (m *MockBookingUseCase) AllBookings() []domain.LedgerEntry {
	args := m.Called()
	return args.Get(0).([]domain.LedgerEntry)
}

func (m *MockBookingUseCase) StatsForDate(ctx context.Context, date string) (*booking.DateStats, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.DateStats), args.Error(1)
}

type MockUserDirectory struct {
	mock.Mock
}

func (m *MockUserDirectory) IsAdmin(ctx context.Context, userID string) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func newBookingTestContext(t *testing.T) (*MockBookingUseCase, *MockUserDirectory, *BookingHandler, *httptest.ResponseRecorder, *gin.Context) {
	t.Helper()
	mockService := &MockBookingUseCase{}
	mockUsers := &MockUserDirectory{}
	handler := NewBookingHandler(mockService, booking.NewAdminGate(mockUsers))

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	return mockService, mockUsers, handler, w, c
}

func TestBookingHandler_add(t *testing.T) {
	mockService, _, handler, w, c := newBookingTestContext(t)

	body, _ := json.Marshal(addBookingRequest{UserID: "u1", Date: "20250615", Movies: []string{"m1", "m2"}})
	c.Request = httptest.NewRequest("POST", "/bookings", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	result := &booking.BookingResult{Message: "booking added", UserID: "u1", Date: "20250615", Movies: []string{"m1", "m2"}}
	mockService.On("AddBooking", c.Request.Context(), "u1", "20250615", []string{"m1", "m2"}).Return(result, nil)

	handler.add(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response booking.BookingResult
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "booking added", response.Message)
	assert.Equal(t, []string{"m1", "m2"}, response.Movies)

	mockService.AssertExpectations(t)
}

func TestBookingHandler_add_StatusMapping(t *testing.T) {
	testCases := []struct {
		name         string
		err          error
		expectedCode int
	}{
		{name: "invalid input", err: booking.ErrInvalidInput, expectedCode: http.StatusBadRequest},
		{name: "invalid date", err: booking.ErrInvalidDate, expectedCode: http.StatusBadRequest},
		{name: "unknown movie", err: &booking.UnknownMovieError{ID: "m9"}, expectedCode: http.StatusBadRequest},
		{name: "movies not scheduled", err: &clients.ScheduleError{Kind: clients.ScheduleMoviesNotScheduled, Detail: []string{"m9"}}, expectedCode: http.StatusBadRequest},
		{name: "date not in schedule", err: &clients.ScheduleError{Kind: clients.ScheduleDateNotFound}, expectedCode: http.StatusBadRequest},
		{name: "schedule unavailable", err: &clients.ScheduleError{Kind: clients.ScheduleUnavailable}, expectedCode: http.StatusBadGateway},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockService, _, handler, w, c := newBookingTestContext(t)

			body, _ := json.Marshal(addBookingRequest{UserID: "u1", Date: "20250615", Movies: []string{"m9"}})
			c.Request = httptest.NewRequest("POST", "/bookings", bytes.NewReader(body))
			c.Request.Header.Set("Content-Type", "application/json")

			mockService.On("AddBooking", c.Request.Context(), "u1", "20250615", []string{"m9"}).Return(nil, tc.err)

			handler.add(c)

			assert.Equal(t, tc.expectedCode, w.Code)
			var response map[string]string
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.NotEmpty(t, response["error"])
		})
	}
}

func TestBookingHandler_add_MalformedBody(t *testing.T) {
	_, _, handler, w, c := newBookingTestContext(t)

	c.Request = httptest.NewRequest("POST", "/bookings", bytes.NewReader([]byte("{not json")))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.add(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBookingHandler_remove(t *testing.T) {
	mockService, _, handler, w, c := newBookingTestContext(t)

	body, _ := json.Marshal(deleteBookingRequest{UserID: "u1", Date: "20250615", Movie: "m1"})
	c.Request = httptest.NewRequest("DELETE", "/bookings", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	result := &booking.BookingResult{Message: "booking deleted", UserID: "u1", Date: "20250615", Movie: "m1"}
	mockService.On("DeleteBooking", c.Request.Context(), "u1", "20250615", "m1").Return(result, nil)

	handler.remove(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestBookingHandler_remove_NotBooked(t *testing.T) {
	mockService, _, handler, w, c := newBookingTestContext(t)

	body, _ := json.Marshal(deleteBookingRequest{UserID: "ghost", Date: "20250615", Movie: "m1"})
	c.Request = httptest.NewRequest("DELETE", "/bookings", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	mockService.On("DeleteBooking", c.Request.Context(), "ghost", "20250615", "m1").Return(nil, booking.ErrNoBookingsForUser)

	handler.remove(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBookingHandler_byUser(t *testing.T) {
	mockService, _, handler, w, c := newBookingTestContext(t)

	c.Params = gin.Params{{Key: "userid", Value: "u1"}}
	c.Request = httptest.NewRequest("GET", "/bookings/u1", nil)

	entry := domain.LedgerEntry{
		UserID: "u1",
		Dates:  []domain.DateEntry{{Date: "20250615", Movies: []string{"m1"}}},
	}
	mockService.On("Bookings", "u1").Return(entry)

	handler.byUser(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response domain.LedgerEntry
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, entry, response)
}

func TestBookingHandler_all_AdminHeader(t *testing.T) {
	mockService, mockUsers, handler, w, c := newBookingTestContext(t)

	c.Request = httptest.NewRequest("GET", "/bookings", nil)
	c.Request.Header.Set("X-Admin", "true")

	mockService.On("AllBookings").Return([]domain.LedgerEntry{})

	handler.all(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUsers.AssertNotCalled(t, "IsAdmin")
}

func TestBookingHandler_all_AdminUser(t *testing.T) {
	mockService, mockUsers, handler, w, c := newBookingTestContext(t)

	c.Request = httptest.NewRequest("GET", "/bookings", nil)
	c.Request.Header.Set("X-User-Id", "alice")

	mockUsers.On("IsAdmin", c.Request.Context(), "alice").Return(true, nil)
	mockService.On("AllBookings").Return([]domain.LedgerEntry{})

	handler.all(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUsers.AssertExpectations(t)
}

func TestBookingHandler_all_Forbidden(t *testing.T) {
	mockService, mockUsers, handler, w, c := newBookingTestContext(t)

	c.Request = httptest.NewRequest("GET", "/bookings", nil)
	c.Request.Header.Set("X-User-Id", "bob")

	mockUsers.On("IsAdmin", c.Request.Context(), "bob").Return(false, nil)

	handler.all(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
	mockService.AssertNotCalled(t, "AllBookings")
}

func TestBookingHandler_all_Unauthenticated(t *testing.T) {
	mockService, _, handler, w, c := newBookingTestContext(t)

	c.Request = httptest.NewRequest("GET", "/bookings", nil)

	handler.all(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockService.AssertNotCalled(t, "AllBookings")
}

func TestBookingHandler_all_UserServiceDown(t *testing.T) {
	_, mockUsers, handler, w, c := newBookingTestContext(t)

	c.Request = httptest.NewRequest("GET", "/bookings", nil)
	c.Request.Header.Set("X-User-Id", "alice")

	mockUsers.On("IsAdmin", c.Request.Context(), "alice").Return(false, clients.ErrUserServiceUnavailable)

	handler.all(c)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestBookingHandler_stats(t *testing.T) {
	mockService, _, handler, w, c := newBookingTestContext(t)

	c.Params = gin.Params{{Key: "date", Value: "20250615"}}
	c.Request = httptest.NewRequest("GET", "/stats/date/20250615/movies", nil)
	c.Request.Header.Set("X-Admin", "true")

	stats := &booking.DateStats{
		Date: "20250615",
		Movies: []booking.MovieCount{
			{Movie: booking.MovieDetail{ID: "m1", Title: "Heat"}, Count: 2},
		},
	}
	mockService.On("StatsForDate", c.Request.Context(), "20250615").Return(stats, nil)

	handler.stats(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response booking.DateStats
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, 2, response.Movies[0].Count)
}

func TestBookingHandler_stats_InvalidDate(t *testing.T) {
	mockService, _, handler, w, c := newBookingTestContext(t)

	c.Params = gin.Params{{Key: "date", Value: "bad-date"}}
	c.Request = httptest.NewRequest("GET", "/stats/date/bad-date/movies", nil)
	c.Request.Header.Set("X-Admin", "true")

	mockService.On("StatsForDate", c.Request.Context(), "bad-date").Return(nil, booking.ErrInvalidDate)

	handler.stats(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
