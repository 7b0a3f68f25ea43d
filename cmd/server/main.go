package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/mfalves/todo-list-api/internal/auth"
	"github.com/mfalves/todo-list-api/internal/config"
	"github.com/mfalves/todo-list-api/internal/constants"
	"github.com/mfalves/todo-list-api/internal/database"
	"github.com/mfalves/todo-list-api/internal/handlers"
	"github.com/mfalves/todo-list-api/internal/middleware"
	"github.com/mfalves/todo-list-api/internal/repository"
	"github.com/mfalves/todo-list-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize Gin router
	r := gin.Default()
	r.MaxMultipartMemory = constants.MaxUploadSize

	// CORS is deployment configuration, not core behavior
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{"GET", "HEAD", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	// Bearer token verifier
	verifier := auth.NewHMACVerifier(cfg.JWTSecret)

	// Initialize AI service
	var aiService services.TaskGenerator
	if cfg.OpenAIAPIKey != "" {
		aiService = services.NewAIService(cfg.OpenAIAPIKey)
	}

	// Initialize services
	taskRepo := repository.NewTaskRepository(database.GetDB())
	taskService := services.NewTaskService(taskRepo, aiService)
	attachmentService := services.NewAttachmentService(cfg.UploadDir)

	// Initialize handlers
	taskHandler := handlers.NewTaskHandler(taskService)
	attachmentHandler := handlers.NewAttachmentHandler(taskService, attachmentService)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "To-Do List API is running",
		})
	})

	// API routes
	api := r.Group("/api/v1")
	{
		tasks := api.Group("/tasks")
		tasks.Use(middleware.RequireAuth(verifier))
		{
			tasks.POST("", taskHandler.CreateTask)
			tasks.GET("", taskHandler.ListTasks)
			tasks.POST("/generate", taskHandler.GenerateTasks)
			tasks.POST("/upload", attachmentHandler.Upload)
			tasks.GET("/:id", taskHandler.GetTask)
			tasks.PATCH("/:id", taskHandler.UpdateTask)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
		}

		download := api.Group("/download")
		download.Use(middleware.RequireAuth(verifier))
		{
			download.GET("/:taskId", attachmentHandler.Download)
		}
	}

	// Start server
	log.Printf("Server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
