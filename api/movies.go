package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maelc/cinebooking/internal/clients"
	"github.com/maelc/cinebooking/internal/domain"
	"github.com/maelc/cinebooking/internal/service/movies"
)

type MovieHandler struct {
	service *movies.Service
}

type addMovieRequest struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Director string  `json:"director"`
	Rating   float64 `json:"rating"`
}

type updateRatingRequest struct {
	Rating float64 `json:"rating"`
}

func NewMovieHandler(service *movies.Service) *MovieHandler {
	return &MovieHandler{service: service}
}

func (h *MovieHandler) Register(router *gin.Engine) {
	router.GET("/movies", h.list)
	router.GET("/movies/:id", h.get)
	router.GET("/movies/:id/actors", h.actors)
	router.POST("/movies", h.add)
	router.PUT("/movies/:id/rating", h.updateRating)
	router.DELETE("/movies/:id", h.remove)
}

func (h *MovieHandler) list(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.All())
}

func (h *MovieHandler) get(c *gin.Context) {
	movie, err := h.service.ByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, movie)
}

func (h *MovieHandler) actors(c *gin.Context) {
	if _, err := h.service.ByID(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.service.ActorsFor(c.Param("id")))
}

func (h *MovieHandler) add(c *gin.Context) {
	var req addMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	movie, err := h.service.Add(c.Request.Context(), domain.Movie{
		ID:       req.ID,
		Title:    req.Title,
		Director: req.Director,
		Rating:   req.Rating,
	}, c.GetHeader("X-User-Id"))
	if err != nil {
		c.JSON(movieStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, movie)
}

func (h *MovieHandler) updateRating(c *gin.Context) {
	var req updateRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	movie, err := h.service.UpdateRating(c.Request.Context(), c.Param("id"), req.Rating, c.GetHeader("X-User-Id"))
	if err != nil {
		c.JSON(movieStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, movie)
}

func (h *MovieHandler) remove(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id"), c.GetHeader("X-User-Id")); err != nil {
		c.JSON(movieStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "movie deleted"})
}

func movieStatus(err error) int {
	switch {
	case errors.Is(err, movies.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, movies.ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, movies.ErrNotAdmin), errors.Is(err, clients.ErrUserNotFound):
		return http.StatusForbidden
	case errors.Is(err, clients.ErrUserServiceUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
