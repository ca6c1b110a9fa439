package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"salon-scheduler/config"
	deliveryHttp "salon-scheduler/internal/delivery/http"
	"salon-scheduler/internal/delivery/http/handler"
	"salon-scheduler/internal/delivery/http/middleware"
	"salon-scheduler/internal/infrastructure/cache"
	"salon-scheduler/internal/repository"
	"salon-scheduler/internal/service"
	"salon-scheduler/internal/usecase"
	"salon-scheduler/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize all layers
	server := initializeServer(cfg, redisClient)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, redisClient *redis.Client) *http.Server {
	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize backend client and repositories
	apiClient := repository.NewAPIClient(cfg.Upstream, log)
	employeeRepo := repository.NewEmployeeRepository(apiClient)
	bookingRepo := repository.NewBookingRepository(apiClient)
	catalogRepo := repository.NewCatalogRepository(apiClient)
	clientRepo := repository.NewClientRepository(apiClient)

	// Initialize services
	clientCacheService := service.NewClientCacheService(clientRepo, redisClient, log, cfg.Redis.ClientCacheTTL)

	// Initialize usecases
	scheduleUsecase := usecase.NewScheduleGridUsecase(log, employeeRepo, bookingRepo)
	waitlistUsecase := usecase.NewWaitlistUsecase(log, bookingRepo)
	appointmentUsecase := usecase.NewAppointmentListUsecase(log, bookingRepo)
	wizardUsecase := usecase.NewBookingWizardUsecase(log, catalogRepo, bookingRepo, clientCacheService, scheduleUsecase)

	// Initialize handlers
	scheduleHandler := handler.NewScheduleHandler(scheduleUsecase, customValidator)
	waitlistHandler := handler.NewWaitlistHandler(waitlistUsecase)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	wizardHandler := handler.NewWizardHandler(wizardUsecase, customValidator)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware()
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(scheduleHandler, waitlistHandler, appointmentHandler, wizardHandler, authMiddleware, corsMiddleware)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (redis, etc.)
func (app *App) Close() {
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
