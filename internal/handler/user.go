package handler

import (
	"FileHub/internal/dto"
	"FileHub/internal/service"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// PostUsers registers a new account.
func (h *Handler) PostUsers(c *gin.Context) {
	var req dto.RegisterRequest
	// Bind errors fall through: an unreadable body is the same as a
	// body with missing fields.
	_ = c.ShouldBindJSON(&req)

	user, err := h.Users.Create(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"id":    user.ID,
		"email": user.Email,
	})
}

// GetMe returns the authenticated user. A token whose account has
// since vanished is treated like any other dead token.
func (h *Handler) GetMe(c *gin.Context) {
	user, err := h.Users.GetByID(c.Request.Context(), currentUserID(c))
	if errors.Is(err, service.ErrNotFound) {
		unauthorized(c)
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":    user.ID,
		"email": user.Email,
	})
}
