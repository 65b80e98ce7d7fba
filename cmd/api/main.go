package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"spendsmart/internal/config"
	"spendsmart/internal/database"
	"spendsmart/internal/handlers"
	"spendsmart/internal/logger"
	"spendsmart/internal/middleware"
	"spendsmart/internal/services"
	"spendsmart/internal/store"
	"spendsmart/internal/validator"
)

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Register custom request validators
	validator.Register()

	// Initialize store and services
	st := store.New(dbManager.DB())
	analyticsService := services.NewAnalyticsService(st)
	transactionService := services.NewTransactionService(st)
	budgetService := services.NewBudgetService(st)
	peerService := services.NewPeerService(st)
	challengeService := services.NewChallengeService(st)

	// Initialize handlers
	dashboardHandler := handlers.NewDashboardHandler(analyticsService)
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	budgetHandler := handlers.NewBudgetHandler(budgetService)
	peerHandler := handlers.NewPeerHandler(peerService)
	challengeHandler := handlers.NewChallengeHandler(challengeService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group; identity comes from the upstream auth proxy
	v1 := router.Group("/api/v1")
	v1.Use(middleware.Identity())

	v1.GET("/dashboard", dashboardHandler.GetDashboard)

	// Transaction routes
	transactions := v1.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.ListTransactions)

	// Budget routes
	budgets := v1.Group("/budgets")
	budgets.GET("", budgetHandler.GetBudgets)
	budgets.POST("", budgetHandler.CreateBudget)
	budgets.PUT("/:id", budgetHandler.UpdateBudget)
	budgets.DELETE("/:id", budgetHandler.DeleteBudget)

	v1.GET("/alerts", budgetHandler.GetAlerts)
	v1.GET("/peers", peerHandler.GetRanking)

	// Challenge routes
	challenges := v1.Group("/challenges")
	challenges.GET("", challengeHandler.ListChallenges)
	challenges.POST("", challengeHandler.CreateChallenge)

	log.Infof("Starting SpendSmart backend server on port %s", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
