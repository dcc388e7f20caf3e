package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Profile returns the authenticated user's own record.
func (h *Handler) Profile(c *gin.Context) {
	user, err := h.Auth.Profile(c.Request.Context(), userID(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":        user.ID,
		"email":     user.Email,
		"createdAt": user.CreatedAt,
		"updatedAt": user.UpdatedAt,
	})
}
