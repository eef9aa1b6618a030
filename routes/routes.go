package routes

import (
	"net/http"

	"eduboard/handlers"
	"eduboard/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	router *gin.Engine,
	authHandler *handlers.AuthHandler,
	contentHandler *handlers.ContentHandler,
	quizHandler *handlers.QuizHandler,
	fileHandler *handlers.FileHandler,
	jwtSecret string,
) {
	api := router.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/login", authHandler.Login)
		}

		// Protected routes
		protected := api.Group("/")
		protected.Use(middleware.AuthMiddleware(jwtSecret))
		{
			protected.POST("/auth/logout", authHandler.Logout)
			protected.GET("/auth/profile", authHandler.GetProfile)

			contents := protected.Group("/contents")
			{
				contents.GET("", contentHandler.ListContents)
				contents.POST("", middleware.RequireTeacher(), contentHandler.CreateContent)
				contents.DELETE("/:id", middleware.RequireTeacher(), contentHandler.DeleteContent)
			}

			quizzes := protected.Group("/quizzes")
			{
				quizzes.GET("", quizHandler.ListQuizzes)
				quizzes.GET("/:id", quizHandler.GetQuizByID)
				quizzes.POST("", middleware.RequireTeacher(), quizHandler.CreateQuiz)
				quizzes.DELETE("/:id", middleware.RequireTeacher(), quizHandler.DeleteQuiz)
				quizzes.POST("/:id/attempts", quizHandler.SubmitAttempt)
				quizzes.GET("/:id/attempts", middleware.RequireTeacher(), quizHandler.ListAttemptsByQuiz)
			}

			protected.GET("/students/:id/attempts", quizHandler.ListAttemptsByStudent)

			files := protected.Group("/files")
			{
				files.POST("", middleware.RequireTeacher(), fileHandler.Upload)
				files.GET("/*path", fileHandler.GetFile)
				files.DELETE("/*path", middleware.RequireTeacher(), fileHandler.Delete)
			}
		}
	}

	// Stored file bytes are served publicly so content URLs stay plain links.
	router.GET("/files/*path", fileHandler.Serve)

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
