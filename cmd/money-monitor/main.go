package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"money-monitor/internal/config"
	"money-monitor/internal/database"
	"money-monitor/internal/handlers"
	custommiddleware "money-monitor/internal/middleware"
	"money-monitor/internal/repositories"
	"money-monitor/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Load .env for local development; a missing file is fine.
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := config.Load()

	db, err := database.Initialize(cfg)
	if err != nil {
		slog.Error("failed to initialize database", "error", err.Error())
		os.Exit(1)
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("failed to close database", "error", err.Error())
		}
	}()

	// Repositories
	transactionRepo := repositories.NewTransactionRepository(db.DB)
	categoryRepo := repositories.NewCategoryRepository(db.DB)
	startingBalanceRepo := repositories.NewStartingBalanceRepository(db.DB)

	// Services
	metrics := services.NewPrometheusMetrics()
	codec := services.NewShareCodec(metrics)
	store := services.NewStoreService(transactionRepo, categoryRepo, startingBalanceRepo, codec, metrics)
	balance := services.NewBalanceService()
	ledger := services.NewLedgerService()
	report := services.NewReportService(metrics)
	insight := services.NewInsightService(cfg.Insight, metrics)
	generator := services.NewSeedGenerator()

	// Handlers
	baseURL := "http://" + cfg.Server.Host + ":" + cfg.Server.Port
	transactionHandler := handlers.NewTransactionHandler(store, ledger)
	dashboardHandler := handlers.NewDashboardHandler(store, balance)
	categoryHandler := handlers.NewCategoryHandler(store)
	settingsHandler := handlers.NewSettingsHandler(store)
	reportHandler := handlers.NewReportHandler(store, balance, report)
	shareHandler := handlers.NewShareHandler(store, codec, baseURL, cfg.Share.MaxRecords)
	backupHandler := handlers.NewBackupHandler(store)
	insightHandler := handlers.NewInsightHandler(store, insight)
	healthHandler := handlers.NewHealthCheckHandler(db.DB)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = custommiddleware.CustomHTTPErrorHandler

	e.Use(custommiddleware.RequestID())
	e.Use(custommiddleware.PanicRecovery())
	e.Use(custommiddleware.SecurityHeaders())
	e.Use(custommiddleware.RateLimiterWithConfig(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst))

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api")
	api.GET("/transactions", transactionHandler.ListTransactions)
	api.POST("/transactions", transactionHandler.CreateTransaction)
	api.PUT("/transactions/:id", transactionHandler.UpdateTransaction)
	api.DELETE("/transactions/:id", transactionHandler.DeleteTransaction)

	api.GET("/balances", dashboardHandler.GetBalances)
	api.GET("/dashboard", dashboardHandler.GetDashboard)

	api.GET("/categories", categoryHandler.ListCategories)
	api.POST("/categories", categoryHandler.CreateCategory)
	api.DELETE("/categories/:name", categoryHandler.DeleteCategory)

	api.GET("/settings/starting-balance", settingsHandler.GetStartingBalances)
	api.PUT("/settings/starting-balance", settingsHandler.SetStartingBalance)

	api.GET("/report", reportHandler.GetReport)
	api.GET("/report/statement", reportHandler.GetStatement)

	api.GET("/share", shareHandler.MintShare)
	api.POST("/share/enter", shareHandler.EnterSharedView)
	api.POST("/share/exit", shareHandler.ExitSharedView)

	api.GET("/backup", backupHandler.ExportBackup)
	api.POST("/backup", backupHandler.ImportBackup)

	api.GET("/insight", insightHandler.GetInsight)

	if cfg.IsDevelopment() {
		devHandler := handlers.NewDevHandler(store, generator)
		api.POST("/dev/seed", devHandler.SeedDemoData)
	}

	server := &http.Server{
		Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		slog.Info("starting server",
			"addr", server.Addr,
			"environment", cfg.Server.Environment,
			"db_driver", cfg.Database.Driver,
		)
		if err := e.StartServer(server); err != nil && err != http.ErrServerClosed {
			slog.Error("server stopped", "error", err.Error())
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		slog.Error("forced shutdown", "error", err.Error())
	}
}
