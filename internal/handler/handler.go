package handler

import (
	"FileHub/internal/service"
	"FileHub/internal/session"
	"FileHub/internal/storage"
	"FileHub/internal/task"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Handler carries the constructed-once service handles every endpoint
// works through; main wires it up at startup.
type Handler struct {
	Sessions   *session.Store
	Users      *service.Users
	Files      *service.Files
	Blobs      storage.Store
	Thumbnails *task.Thumbnails
	SessionTTL time.Duration
}

// respondError maps a service error to its wire status. Anything
// outside the taxonomy is an internal failure: logged, surfaced opaque.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrMissingEmail),
		errors.Is(err, service.ErrMissingPassword),
		errors.Is(err, service.ErrAlreadyExist),
		errors.Is(err, service.ErrMissingName),
		errors.Is(err, service.ErrMissingType),
		errors.Is(err, service.ErrMissingData),
		errors.Is(err, service.ErrParentNotFound),
		errors.Is(err, service.ErrParentNotFolder),
		errors.Is(err, service.ErrFolderNoContent):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		log.Println("internal error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
	}
}

func currentUserID(c *gin.Context) uint64 {
	return c.MustGet("user_id").(uint64)
}
