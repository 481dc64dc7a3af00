package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"fintrack/internal/auth"
	"fintrack/internal/cache"
	"fintrack/internal/config"
	"fintrack/internal/database"
	"fintrack/internal/events"
	"fintrack/internal/logger"
	"fintrack/internal/models"
	"fintrack/internal/server"
	"fintrack/internal/services"
	"fintrack/internal/store"
	"fintrack/internal/validator"
)

// @title           Fintrack API
// @version         1.0
// @description     Fintrack records a user's expenses and incomes and summarizes them.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

const shutdownTimeout = 10 * time.Second

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run(ctx context.Context) error {
	log := logger.Get()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	dbManager, err := database.NewManager(cfg)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer dbManager.Close()

	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	var (
		notifiers    services.Notifiers
		summaryCache services.SummaryCacher
		deps         server.Deps
	)

	if cfg.RedisURL != "" {
		rdb, err := cache.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
		defer rdb.Close()

		sc := cache.NewSummaryCache(rdb, cfg.SummaryCacheTTL)
		summaryCache = sc
		notifiers = append(notifiers, sc)
		deps.LoginLimiter = cache.NewLoginLimiter(rdb, cfg.LoginRateLimit)
		log.Info("Redis enabled for summary cache and login rate limiting")
	}

	if cfg.AMQPURL != "" {
		pub, err := events.NewPublisher(cfg.AMQPURL, cfg.AMQPExchange)
		if err != nil {
			return fmt.Errorf("failed to connect to message broker: %w", err)
		}
		defer pub.Close()

		notifiers = append(notifiers, pub)
		log.Infof("Publishing record changes to exchange %s", cfg.AMQPExchange)
	}

	db := dbManager.DB()
	opts := []services.RecordOption{
		services.WithMergePolicy(models.MergePolicy(cfg.MergePolicy)),
		services.WithHiddenForeignRecords(cfg.HideForeignRecords),
		services.WithStoreTimeout(cfg.StoreTimeout),
		services.WithNotifier(notifiers),
	}

	users := services.NewUserService(db)
	tokens := auth.NewTokens(cfg.JWTSecret, cfg.JWTExpirationDur)
	expenses := services.NewExpenseService(store.NewGormStore[models.Expense](db), opts...)
	incomes := services.NewIncomeService(store.NewGormStore[models.Income](db), opts...)

	deps.Users = users
	deps.Tokens = tokens
	deps.Verifier = auth.NewVerifier(tokens, users)
	deps.Expenses = expenses
	deps.Incomes = incomes
	deps.Summary = services.NewSummaryService(expenses, incomes, summaryCache)
	deps.Swagger = !cfg.IsProduction()

	validator.Register()

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           server.NewRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Infof("Starting Fintrack API on port %s", cfg.Port)
		if deps.Swagger {
			log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", cfg.Port)
		}
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
