package handler

import (
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

func unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
}

// GetConnect signs a user in via Basic credentials and issues a token.
func (h *Handler) GetConnect(c *gin.Context) {
	const authType = "Basic "
	authHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, authType) {
		unauthorized(c)
		return
	}
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(authHeader, authType))
	if err != nil {
		unauthorized(c)
		return
	}
	email, password, ok := strings.Cut(string(decoded), ":")
	if !ok || email == "" || password == "" {
		unauthorized(c)
		return
	}

	ctx := c.Request.Context()
	user, ok := h.Users.Authenticate(ctx, email, password)
	if !ok {
		unauthorized(c)
		return
	}

	token, err := h.Sessions.Create(ctx, user.ID, h.SessionTTL)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// GetDisconnect revokes the caller's token.
func (h *Handler) GetDisconnect(c *gin.Context) {
	token := c.GetHeader("X-Token")
	if token == "" {
		unauthorized(c)
		return
	}
	ctx := c.Request.Context()
	if _, ok := h.Sessions.Resolve(ctx, token); !ok {
		unauthorized(c)
		return
	}
	if err := h.Sessions.Revoke(ctx, token); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
