package main

import (
	"log"

	"github.com/chenghui/supervision-go/internal/api/middleware"
	"github.com/chenghui/supervision-go/internal/api/routes"
	"github.com/chenghui/supervision-go/internal/application"
	"github.com/chenghui/supervision-go/internal/config"
	"github.com/chenghui/supervision-go/internal/config/db"
	"github.com/chenghui/supervision-go/internal/domain/announcement"
	"github.com/chenghui/supervision-go/internal/domain/attendance"
	"github.com/chenghui/supervision-go/internal/domain/project"
	"github.com/chenghui/supervision-go/internal/domain/report"
	"github.com/chenghui/supervision-go/internal/domain/user"
	"github.com/chenghui/supervision-go/internal/repository"
	"github.com/chenghui/supervision-go/internal/store"
	"github.com/chenghui/supervision-go/pkg/genai"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	// Initialize JWT signing key
	middleware.Init()

	// Initialize database connection
	db.Init()

	// Auto migrate database schemas
	if err := db.DB.AutoMigrate(
		&user.User{},
		&project.Project{},
		&report.Report{},
		&announcement.Announcement{},
		&attendance.Record{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	repos := repository.NewRepositories(db.DB)
	reportStore := store.NewReportStore()
	genaiClient := genai.NewClient(config.GenaiAPIKey, config.GenaiModel, config.GenaiTimeout)
	services := application.New(repos, reportStore, genaiClient)

	// Warm the in-memory collection; the API serves the last good snapshot
	if err := services.Report.Refresh(); err != nil {
		log.Printf("Warning: initial report load failed: %v", err)
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware())

	routes.RegisterRoutes(router, services, repos)

	port := ":" + config.ServerPort
	log.Printf("Starting API server on %s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}
