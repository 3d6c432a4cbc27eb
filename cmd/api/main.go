package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/jobtrail/jobtrail/internal/config"
	"github.com/jobtrail/jobtrail/internal/database"
	"github.com/jobtrail/jobtrail/internal/document"
	"github.com/jobtrail/jobtrail/internal/handlers"
	"github.com/jobtrail/jobtrail/internal/logger"
	"github.com/jobtrail/jobtrail/internal/services"
)

func main() {
	// 1. Environment & Config
	_ = godotenv.Load()
	cfg := config.Load()
	log := logger.New()

	// 2. Database Connection + Schema
	db, err := database.Connect(cfg.DatabasePath)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}
	store := database.NewEventStore(db)
	if err := store.InitSchema(); err != nil {
		log.WithError(err).Fatal("failed to initialize schema")
	}
	log.WithField("path", cfg.DatabasePath).Info("database ready")

	// 3. Core Services
	llmService, err := services.NewLLMService(cfg)
	if err != nil {
		log.WithError(err).Fatal("failed to create LLM client")
	}
	formatter := document.NewFormatter(cfg.OutputDir, cfg.BackupDir, log)
	jobService := services.NewJobService(store, llmService, formatter, log)
	reportService := services.NewReportService(store, cfg.WordcloudFont, log)

	// 4. Handlers
	jobHandler := handlers.NewJobHandler(jobService)
	reportHandler := handlers.NewReportHandler(reportService)

	// 5. Router & CORS
	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// 6. Routes
	api := r.Group("/api/v1")
	{
		api.GET("/health", handlers.HealthCheck)

		api.GET("/jobs", jobHandler.ListJobs)
		api.POST("/jobs", jobHandler.SubmitJob)
		api.GET("/jobs/:id", jobHandler.GetJob)
		api.DELETE("/jobs/:id", jobHandler.DeleteJob)

		api.GET("/reports/plots", reportHandler.Plots)
	}

	log.WithField("port", cfg.Port).Info("server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("server failed to start")
	}
}
