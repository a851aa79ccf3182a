package handler

import (
	"FileHub/internal/dto"
	"FileHub/internal/service"
	"FileHub/internal/storage"
	"FileHub/model"
	"FileHub/utils"
	"bytes"
	"encoding/base64"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// PostFiles uploads a folder, file, or image node. Validation follows
// the fixed order name, type, data, parent so a bad request never
// allocates a blob.
func (h *Handler) PostFiles(c *gin.Context) {
	userID := currentUserID(c)
	var req dto.UploadFileRequest
	_ = c.ShouldBindJSON(&req)

	if req.Name == "" {
		respondError(c, service.ErrMissingName)
		return
	}
	switch req.Type {
	case model.TypeFolder, model.TypeFile, model.TypeImage:
	default:
		respondError(c, service.ErrMissingType)
		return
	}
	if req.Data == "" && req.Type != model.TypeFolder {
		respondError(c, service.ErrMissingData)
		return
	}

	parentID := uint64(service.RootParentID)
	if req.ParentID != "" && req.ParentID != "0" {
		parsed, err := strconv.ParseUint(req.ParentID, 10, 64)
		if err != nil {
			respondError(c, service.ErrParentNotFound)
			return
		}
		parentID = parsed
	}
	ctx := c.Request.Context()
	if err := h.Files.CheckParent(ctx, parentID); err != nil {
		respondError(c, err)
		return
	}

	params := service.CreateFileParams{
		OwnerID:  userID,
		Name:     req.Name,
		Type:     req.Type,
		ParentID: parentID,
		IsPublic: req.IsPublic,
	}

	if req.Type != model.TypeFolder {
		raw, err := base64.StdEncoding.DecodeString(req.Data)
		if err != nil {
			respondError(c, service.ErrMissingData)
			return
		}
		localPath, err := h.Blobs.Write(ctx, bytes.NewReader(raw))
		if err != nil {
			respondError(c, err)
			return
		}
		params.LocalPath = localPath
	}

	node, err := h.Files.Create(ctx, params)
	if err != nil {
		respondError(c, err)
		return
	}

	if node.Type == model.TypeImage {
		// Fire and forget: the upload has already succeeded, pipeline
		// failures are logged and retried by the queue, never surfaced.
		if err := h.Thumbnails.Enqueue(ctx, userID, node.ID); err != nil {
			log.Println("enqueue thumbnail job failed:", err)
		}
	}

	c.JSON(http.StatusCreated, service.FormatFile(node))
}

func fileIDParam(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, service.ErrNotFound)
		return 0, false
	}
	return id, true
}

// GetFileShow returns one of the caller's nodes.
func (h *Handler) GetFileShow(c *gin.Context) {
	id, ok := fileIDParam(c)
	if !ok {
		return
	}
	node, err := h.Files.GetOwned(c.Request.Context(), id, currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, service.FormatFile(node))
}

// GetFileIndex lists one page of the caller's children under parentId.
func (h *Handler) GetFileIndex(c *gin.Context) {
	parentID, err := strconv.ParseUint(c.DefaultQuery("parentId", "0"), 10, 64)
	if err != nil {
		c.JSON(http.StatusOK, service.FormatFiles(nil))
		return
	}
	page, err := strconv.Atoi(c.DefaultQuery("page", "0"))
	if err != nil || page < 0 {
		page = 0
	}

	nodes, err := h.Files.ListChildren(c.Request.Context(), currentUserID(c), parentID, page)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, service.FormatFiles(nodes))
}

// PublishFile makes one of the caller's nodes public.
func (h *Handler) PublishFile(c *gin.Context) {
	h.setPublic(c, true)
}

// UnpublishFile makes one of the caller's nodes private again.
func (h *Handler) UnpublishFile(c *gin.Context) {
	h.setPublic(c, false)
}

func (h *Handler) setPublic(c *gin.Context, value bool) {
	id, ok := fileIDParam(c)
	if !ok {
		return
	}
	node, err := h.Files.SetPublic(c.Request.Context(), id, currentUserID(c), value)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, service.FormatFile(node))
}

// GetFileData streams a node's bytes, or a thumbnail variant for the
// supported sizes. No authentication is required when the node is
// public; otherwise only the owner may read, and anyone else sees the
// same 404 as for a missing file.
func (h *Handler) GetFileData(c *gin.Context) {
	id, ok := fileIDParam(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	node, err := h.Files.GetByID(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}

	if !node.IsPublic {
		userID, authed := h.Sessions.Resolve(ctx, c.GetHeader("X-Token"))
		if !authed || userID != node.UserID {
			respondError(c, service.ErrNotFound)
			return
		}
	}

	if node.Type == model.TypeFolder {
		respondError(c, service.ErrFolderNoContent)
		return
	}

	path := node.LocalPath
	// Unsupported size values fall back to the original content.
	switch size := c.Query("size"); size {
	case "500", "250", "100":
		width, _ := strconv.Atoi(size)
		path = storage.VariantPath(node.LocalPath, width)
	}

	rc, err := h.Blobs.Open(ctx, path)
	if errors.Is(err, storage.ErrNotExist) {
		respondError(c, service.ErrNotFound)
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}
	defer rc.Close()

	c.Header("Content-Type", utils.ContentTypeFor(node.Name))
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, rc); err != nil {
		log.Println("stream file data error:", err)
	}
}
