package main

import (
	"fmt"
	"log"

	"eduboard/config"
	"eduboard/handlers"
	"eduboard/kvstore"
	"eduboard/routes"
	"eduboard/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env if present
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	// Load configuration
	cfg := config.Load()

	// Initialize the persistence backend
	kv, err := openStore(cfg)
	if err != nil {
		log.Fatal("Failed to open storage backend:", err)
	}

	// Initialize services
	authService := services.NewAuthService(kv, cfg.JWTSecret, cfg.LoginDelay)
	dataService, err := services.NewDataService(kv)
	if err != nil {
		log.Fatal("Failed to load collections:", err)
	}
	fileService, err := services.NewFileService(kv, cfg.UploadDir)
	if err != nil {
		log.Fatal("Failed to prepare upload directories:", err)
	}

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	contentHandler := handlers.NewContentHandler(dataService)
	quizHandler := handlers.NewQuizHandler(dataService)
	fileHandler := handlers.NewFileHandler(fileService)

	// Setup Gin router
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// Setup routes
	routes.SetupRoutes(router, authHandler, contentHandler, quizHandler, fileHandler, cfg.JWTSecret)

	// Start server
	log.Printf("Server starting on port %s (storage backend: %s)", cfg.Port, cfg.StorageBackend)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

func openStore(cfg *config.Config) (kvstore.Store, error) {
	switch cfg.StorageBackend {
	case "memory":
		return kvstore.NewMemoryStore(), nil
	case "file":
		return kvstore.NewFileStore(cfg.DataDir)
	case "redis":
		return kvstore.NewRedisStore(config.InitRedis(cfg), "eduboard:"), nil
	case "postgres":
		db, err := config.InitDB(cfg)
		if err != nil {
			return nil, err
		}
		return kvstore.NewPostgresStore(db)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}
