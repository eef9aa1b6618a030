package handlers

import (
	"errors"
	"net/http"

	"eduboard/models"
	"eduboard/services"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	dataService *services.DataService
}

func NewQuizHandler(dataService *services.DataService) *QuizHandler {
	return &QuizHandler{dataService: dataService}
}

type SubmitAttemptRequest struct {
	Answers []models.AttemptAnswer `json:"answers" binding:"required"`
}

func (h *QuizHandler) ListQuizzes(c *gin.Context) {
	class := c.Query("class")
	if class == "" {
		c.JSON(http.StatusOK, h.dataService.Quizzes())
		return
	}

	level := models.ClassLevel(class)
	if !level.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid class level"})
		return
	}
	c.JSON(http.StatusOK, h.dataService.GetQuizzesByClass(level))
}

func (h *QuizHandler) GetQuizByID(c *gin.Context) {
	quiz, err := h.dataService.GetQuizByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "quiz not found"})
		return
	}
	c.JSON(http.StatusOK, quiz)
}

func (h *QuizHandler) CreateQuiz(c *gin.Context) {
	var req services.CreateQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	quiz, err := h.dataService.AddQuiz(&req, c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, quiz)
}

func (h *QuizHandler) DeleteQuiz(c *gin.Context) {
	// Removes the quiz together with every attempt referencing it.
	h.dataService.DeleteQuiz(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"message": "quiz deleted"})
}

// SubmitAttempt grades the submitted answers server-side and records the
// attempt for the signed-in student.
func (h *QuizHandler) SubmitAttempt(c *gin.Context) {
	var req SubmitAttemptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	attempt, err := h.dataService.SubmitAttempt(
		c.Param("id"),
		c.GetString("user_id"),
		c.GetString("user_name"),
		req.Answers,
	)
	if err != nil {
		if errors.Is(err, services.ErrQuizNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "quiz not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, attempt)
}

func (h *QuizHandler) ListAttemptsByQuiz(c *gin.Context) {
	c.JSON(http.StatusOK, h.dataService.GetAttemptsByQuiz(c.Param("id")))
}

func (h *QuizHandler) ListAttemptsByStudent(c *gin.Context) {
	studentID := c.Param("id")

	// Students may only read their own attempts; teachers may read any.
	if c.GetString("role") != string(models.RoleTeacher) && c.GetString("user_id") != studentID {
		c.JSON(http.StatusForbidden, gin.H{"error": "not allowed"})
		return
	}
	c.JSON(http.StatusOK, h.dataService.GetAttemptsByStudent(studentID))
}
