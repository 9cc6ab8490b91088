package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/maelc/cinebooking/internal/clients"
	"github.com/maelc/cinebooking/internal/ledger"
	"github.com/maelc/cinebooking/internal/service/booking"
)

type BookingHandler struct {
	service booking.BookingUseCase
	admin   *booking.AdminGate
}

type addBookingRequest struct {
	UserID string   `json:"userid"`
	Date   string   `json:"date"`
	Movies []string `json:"movies"`
}

type deleteBookingRequest struct {
	UserID string `json:"userid"`
	Date   string `json:"date"`
	Movie  string `json:"movie"`
}

func NewBookingHandler(service booking.BookingUseCase, admin *booking.AdminGate) *BookingHandler {
	return &BookingHandler{service: service, admin: admin}
}

func (h *BookingHandler) Register(router *gin.Engine) {
	router.POST("/bookings", h.add)
	router.DELETE("/bookings", h.remove)
	router.GET("/bookings", h.all)
	router.GET("/bookings/:userid", h.byUser)
	router.GET("/bookings/:userid/detailed", h.detailed)
	router.GET("/stats/date/:date/movies", h.stats)
}

func (h *BookingHandler) add(c *gin.Context) {
	var req addBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.service.AddBooking(c.Request.Context(), req.UserID, req.Date, req.Movies)
	if err != nil {
		c.JSON(bookingStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *BookingHandler) remove(c *gin.Context) {
	var req deleteBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.service.DeleteBooking(c.Request.Context(), req.UserID, req.Date, req.Movie)
	if err != nil {
		c.JSON(bookingStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *BookingHandler) all(c *gin.Context) {
	if !h.requireAdmin(c) {
		return
	}
	c.JSON(http.StatusOK, h.service.AllBookings())
}

func (h *BookingHandler) byUser(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Bookings(c.Param("userid")))
}

func (h *BookingHandler) detailed(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.DetailedBookings(c.Request.Context(), c.Param("userid")))
}

func (h *BookingHandler) stats(c *gin.Context) {
	if !h.requireAdmin(c) {
		return
	}

	stats, err := h.service.StatsForDate(c.Request.Context(), c.Param("date"))
	if err != nil {
		c.JSON(bookingStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *BookingHandler) requireAdmin(c *gin.Context) bool {
	caller := booking.Caller{
		AdminHeader: strings.EqualFold(c.GetHeader("X-Admin"), "true"),
		UserID:      c.GetHeader("X-User-Id"),
	}
	err := h.admin.RequireAdmin(c.Request.Context(), caller)
	if err == nil {
		return true
	}

	switch {
	case errors.Is(err, booking.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, booking.ErrNotAdmin):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	}
	return false
}

// bookingStatus maps the orchestrator's failure kinds to HTTP codes. A
// down schedule collaborator must stay distinguishable from a rejected
// request, so it alone maps into the 5xx range alongside persistence
// failures.
func bookingStatus(err error) int {
	var schedErr *clients.ScheduleError
	if errors.As(err, &schedErr) {
		if schedErr.Kind == clients.ScheduleUnavailable {
			return http.StatusBadGateway
		}
		return http.StatusBadRequest
	}

	var unknown *booking.UnknownMovieError
	var persist *ledger.PersistError
	switch {
	case errors.Is(err, booking.ErrInvalidInput), errors.Is(err, booking.ErrInvalidDate):
		return http.StatusBadRequest
	case errors.As(err, &unknown):
		return http.StatusBadRequest
	case errors.Is(err, booking.ErrNoBookingsForUser),
		errors.Is(err, booking.ErrNoBookingsForDate),
		errors.Is(err, booking.ErrMovieNotBooked):
		return http.StatusNotFound
	case errors.As(err, &persist):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
