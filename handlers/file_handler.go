package handlers

import (
	"net/http"
	"strings"

	"eduboard/models"
	"eduboard/services"

	"github.com/gin-gonic/gin"
)

type FileHandler struct {
	fileService *services.FileService
}

func NewFileHandler(fileService *services.FileService) *FileHandler {
	return &FileHandler{fileService: fileService}
}

// Upload accepts a multipart form with a "file" part and a "type" field
// (video or pdf), stores the bytes and returns the storage path.
func (h *FileHandler) Upload(c *gin.Context) {
	contentType := models.ContentType(c.PostForm("type"))
	if !contentType.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "type must be video or pdf"})
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	src, err := header.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read file"})
		return
	}
	defer src.Close()

	path, err := h.fileService.SaveFile(src, contentType, header.Filename, header.Header.Get("Content-Type"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"path": path,
		"file": h.fileService.GetFile(path),
	})
}

// Serve streams the stored bytes for a storage path.
func (h *FileHandler) Serve(c *gin.Context) {
	path := strings.TrimPrefix(c.Param("path"), "/")

	diskPath, ok := h.fileService.DiskPath(path)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
		return
	}
	c.File(diskPath)
}

func (h *FileHandler) GetFile(c *gin.Context) {
	path := strings.TrimPrefix(c.Param("path"), "/")

	file := h.fileService.GetFile(path)
	if file == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
		return
	}
	c.JSON(http.StatusOK, file)
}

func (h *FileHandler) Delete(c *gin.Context) {
	path := strings.TrimPrefix(c.Param("path"), "/")

	if !h.fileService.DeleteFile(path) {
		c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "file deleted"})
}
