package handlers

import (
	"net/http"

	"eduboard/models"
	"eduboard/services"

	"github.com/gin-gonic/gin"
)

type ContentHandler struct {
	dataService *services.DataService
}

func NewContentHandler(dataService *services.DataService) *ContentHandler {
	return &ContentHandler{dataService: dataService}
}

func (h *ContentHandler) ListContents(c *gin.Context) {
	class := c.Query("class")
	if class == "" {
		c.JSON(http.StatusOK, h.dataService.Contents())
		return
	}

	level := models.ClassLevel(class)
	if !level.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid class level"})
		return
	}
	c.JSON(http.StatusOK, h.dataService.GetContentsByClass(level))
}

func (h *ContentHandler) CreateContent(c *gin.Context) {
	var req services.CreateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	content, err := h.dataService.AddContent(&req, c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, content)
}

func (h *ContentHandler) DeleteContent(c *gin.Context) {
	// Deletion is unconditional; unknown ids are a no-op.
	h.dataService.DeleteContent(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"message": "content deleted"})
}
