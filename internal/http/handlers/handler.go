package handlers

import (
	"errors"
	"net/http"

	"taskboard/internal/domain"
	"taskboard/internal/http/middleware"
	"taskboard/internal/logger"
	"taskboard/internal/service"

	"github.com/gin-gonic/gin"
)

// Handler bundles the services the HTTP layer dispatches into.
type Handler struct {
	Auth     *service.AuthService
	Projects *service.ProjectService
	Tasks    *service.TaskService
}

func NewHandler(auth *service.AuthService, projects *service.ProjectService, tasks *service.TaskService) *Handler {
	return &Handler{
		Auth:     auth,
		Projects: projects,
		Tasks:    tasks,
	}
}

// userID returns the caller id stored by the auth middleware.
func userID(c *gin.Context) string {
	return c.GetString(middleware.UserIDKey)
}

// writeError maps service errors onto HTTP statuses. NotFound and
// Forbidden stay distinct on the wire, matching the service layer.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "access denied"})
	case errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
	default:
		logger.Error("request failed", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
