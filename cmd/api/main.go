package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/uptrace/bun"

	_ "github.com/sparkd-app/sparkd/docs" // Swagger docs (generated)
	"github.com/sparkd-app/sparkd/internal/auth"
	"github.com/sparkd-app/sparkd/internal/config"
	"github.com/sparkd-app/sparkd/internal/database"
	httpServer "github.com/sparkd-app/sparkd/internal/http"
	"github.com/sparkd-app/sparkd/internal/logging"
	"github.com/sparkd-app/sparkd/internal/premium"
	"github.com/sparkd-app/sparkd/internal/ratelimit"
	"github.com/sparkd-app/sparkd/internal/scheduler"
	"github.com/sparkd-app/sparkd/internal/swipe"
	"github.com/sparkd-app/sparkd/internal/user"
)

// @title           Sparkd API
// @version         1.0
// @description     REST backend for the Sparkd matching app: accounts, the daily swipe feed, swipe statistics and premium package purchases.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.

func main() {
	if err := run(); err != nil {
		log.Fatalf("Application error: %v", err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := logging.NewLogger(cfg.Server.IsDevelopment())
	logger.Info("starting application",
		"env", cfg.Server.Env,
		"port", cfg.Server.Port,
	)

	db, err := initDB(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	redisClient, err := initRedis(cfg.Redis)
	if err != nil {
		return fmt.Errorf("failed to initialize Redis: %w", err)
	}
	defer redisClient.Close()

	// Repositories
	userRepo := user.NewRepository(db)
	swipeRepo := swipe.NewRepository(db)
	premiumRepo := premium.NewRepository(db)

	// Rate limiter
	rateLimiter := ratelimit.NewLimiter(redisClient)

	// PASETO token service
	pasetoService, err := auth.NewPasetoService(cfg.Auth.PasetoKey)
	if err != nil {
		return fmt.Errorf("failed to initialize PASETO service: %w", err)
	}

	// Services
	authService := auth.NewService(userRepo, pasetoService, logger, cfg.Auth.AccessTokenDuration)
	swipeService := swipe.NewService(userRepo, swipeRepo)
	premiumService := premium.NewService(premiumRepo, userRepo)

	// Handlers
	authHandler := auth.NewHandler(authService, rateLimiter, logger)
	swipeHandler := swipe.NewHandler(swipeService, logger)
	premiumHandler := premium.NewHandler(premiumService, logger)
	authMiddleware := auth.NewMiddleware(pasetoService)

	// Daily swipe-count reset
	resetScheduler := scheduler.New(userRepo, logger)
	if err := resetScheduler.Start(); err != nil {
		return fmt.Errorf("failed to start scheduler: %w", err)
	}
	defer resetScheduler.Stop()

	router := httpServer.NewRouter(cfg, authHandler, swipeHandler, premiumHandler, authMiddleware, logger)

	server := httpServer.NewServer(
		":"+cfg.Server.Port,
		router,
		cfg.Server.ReadTimeout,
		cfg.Server.WriteTimeout,
	)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- server.Start()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Printf("Received signal: %v", sig)

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// initDB initializes the database connection and returns a Bun DB instance
func initDB(cfg config.DatabaseConfig) (*bun.DB, error) {
	sqlDB, err := sql.Open("postgres", cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	return database.NewBunDB(sqlDB), nil
}

// initRedis initializes the Redis connection and returns a Redis client
func initRedis(cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping Redis: %w", err)
	}

	return client, nil
}
