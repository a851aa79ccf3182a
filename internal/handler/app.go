package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetStatus reports liveness of the two backing stores.
func (h *Handler) GetStatus(c *gin.Context) {
	ctx := c.Request.Context()
	c.JSON(http.StatusOK, gin.H{
		"sessionStore":  h.Sessions.Alive(ctx),
		"metadataStore": h.Files.Alive(ctx),
	})
}

// GetStats returns user and file counts.
func (h *Handler) GetStats(c *gin.Context) {
	ctx := c.Request.Context()
	users, err := h.Users.Count(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	files, err := h.Files.Count(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"users": users,
		"files": files,
	})
}
