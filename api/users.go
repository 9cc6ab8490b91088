package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maelc/cinebooking/internal/service/users"
)

type UserHandler struct {
	service *users.Service
}

type addUserRequest struct {
	Name string `json:"name"`
}

type updateUserRequest struct {
	Name string `json:"name"`
}

func NewUserHandler(service *users.Service) *UserHandler {
	return &UserHandler{service: service}
}

func (h *UserHandler) Register(router *gin.Engine) {
	router.POST("/users", h.add)
	router.GET("/users", h.list)
	router.GET("/users/:userid", h.get)
	router.GET("/users/:userid/admin", h.isAdmin)
	router.PUT("/users/:userid", h.update)
	router.DELETE("/users/:userid", h.remove)
}

func (h *UserHandler) add(c *gin.Context) {
	var req addUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.service.Add(c.Request.Context(), req.Name)
	if err != nil {
		c.JSON(userStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "user added", "user": user})
}

// list is restricted to admins, identified by the X-User-Id header.
func (h *UserHandler) list(c *gin.Context) {
	callerID := c.GetHeader("X-User-Id")
	if callerID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing X-User-Id header"})
		return
	}
	if !h.service.IsAdmin(callerID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "admin only"})
		return
	}
	c.JSON(http.StatusOK, h.service.All())
}

func (h *UserHandler) get(c *gin.Context) {
	user, err := h.service.ByID(c.Param("userid"))
	if err != nil {
		c.JSON(userStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, user)
}

// isAdmin lets the other services verify a caller's admin flag.
func (h *UserHandler) isAdmin(c *gin.Context) {
	if _, err := h.service.ByID(c.Param("userid")); err != nil {
		c.JSON(userStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"is_admin": h.service.IsAdmin(c.Param("userid"))})
}

func (h *UserHandler) update(c *gin.Context) {
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.service.Update(c.Request.Context(), c.Param("userid"), req.Name)
	if err != nil {
		c.JSON(userStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) remove(c *gin.Context) {
	user, err := h.service.Delete(c.Request.Context(), c.Param("userid"))
	if err != nil {
		c.JSON(userStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, user)
}

func userStatus(err error) int {
	switch {
	case errors.Is(err, users.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, users.ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, users.ErrMissingName):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
