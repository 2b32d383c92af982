package main

import (
	"log"

	"github.com/Sisti-Anjana/TickerTrackerMetlenPuresky-sub001/internal/api/middleware"
	"github.com/Sisti-Anjana/TickerTrackerMetlenPuresky-sub001/internal/api/routes"
	"github.com/Sisti-Anjana/TickerTrackerMetlenPuresky-sub001/internal/application"
	"github.com/Sisti-Anjana/TickerTrackerMetlenPuresky-sub001/internal/config"
	"github.com/Sisti-Anjana/TickerTrackerMetlenPuresky-sub001/internal/config/db"
	"github.com/Sisti-Anjana/TickerTrackerMetlenPuresky-sub001/internal/repository"
	"github.com/Sisti-Anjana/TickerTrackerMetlenPuresky-sub001/pkg/email"
	"github.com/Sisti-Anjana/TickerTrackerMetlenPuresky-sub001/pkg/storage"
	"github.com/gin-gonic/gin"

	_ "github.com/Sisti-Anjana/TickerTrackerMetlenPuresky-sub001/docs"
)

// @title           Ticket Tracker API
// @version         1.0
// @description     Solar plant operations ticket tracking service.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	// Initialize JWT signing key
	middleware.Init()

	// Initialize database connection
	db.Init()

	if err := db.Migrate(db.DB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	if err := db.Seed(db.DB); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	store, err := storage.NewMinioStore()
	if err != nil {
		log.Fatalf("Failed to initialize object store: %v", err)
	}

	mailer := email.NewSMTPSender(email.SMTPConfig{
		Host:        config.SMTPHost,
		Port:        config.SMTPPort,
		Username:    config.SMTPUser,
		Password:    config.SMTPPassword,
		FromAddress: config.SMTPFrom,
		BaseURL:     config.BaseURL,
	})

	repos := repository.NewRepositories(db.DB)
	services := application.New(repos, mailer, store)

	if config.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}
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
