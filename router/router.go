package router

import (
	"FileHub/internal/handler"
	"FileHub/utils"

	"github.com/gin-gonic/gin"
)

// InitRouter builds API routes.
func InitRouter(h *handler.Handler) *gin.Engine {
	r := gin.Default()

	r.GET("/status", h.GetStatus)
	r.GET("/stats", h.GetStats)

	r.POST("/users", h.PostUsers)
	r.GET("/connect", h.GetConnect)
	r.GET("/disconnect", h.GetDisconnect)

	// Public-or-owner: the handler resolves the token itself.
	r.GET("/files/:id/data", h.GetFileData)

	auth := r.Group("", utils.AuthMiddleware(h.Sessions))
	{
		auth.GET("/users/me", h.GetMe)
		auth.POST("/files", h.PostFiles)
		auth.GET("/files", h.GetFileIndex)
		auth.GET("/files/:id", h.GetFileShow)
		auth.PUT("/files/:id/publish", h.PublishFile)
		auth.PUT("/files/:id/unpublish", h.UnpublishFile)
	}

	return r
}
