package app

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/uxmetrics/eval-server/internal/config"
	"github.com/uxmetrics/eval-server/internal/httpapi"
	"github.com/uxmetrics/eval-server/internal/repository"
	"github.com/uxmetrics/eval-server/internal/service"
	"github.com/uxmetrics/eval-server/pkg/cache"
	dbbuilder "github.com/uxmetrics/eval-server/pkg/database"
	"github.com/uxmetrics/eval-server/pkg/httpserver"

	"go.uber.org/zap"
)

type App struct {
	logger *zap.Logger
	dbPool *sql.DB
	cache  *cache.Cache
	server *httpserver.Server
}

func NewApp(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	dbPool, err := dbbuilder.New(
		dbbuilder.WithDriver(cfg.DBDriver),
		dbbuilder.WithDataSource(cfg.DBPath),
	)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}
	logger.Info("Database pool initialized", zap.String("path", cfg.DBPath))

	evaluationRepo := repository.NewEvaluationRepository(dbPool)
	if err := evaluationRepo.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("schema migration failed: %w", err)
	}

	cacheClient, err := cache.New(ctx,
		cache.WithAddress(cfg.RedisAddr),
	)
	if err != nil {
		return nil, fmt.Errorf("cache init failed: %w", err)
	}
	logger.Info("Cache client initialized", zap.String("addr", cfg.RedisAddr))

	evaluationService := service.NewEvaluationService(evaluationRepo, logger)

	handlers := httpapi.NewHandlers(evaluationService, cacheClient, logger, cfg.CacheTTL)

	server, err := httpserver.New(handlers.Router(),
		httpserver.WithPort(cfg.HTTPPort),
		httpserver.WithLogger(logger),
		httpserver.WithLogging(cfg.AppEnv != "production"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP server: %w", err)
	}

	return &App{
		logger: logger,
		dbPool: dbPool,
		cache:  cacheClient,
		server: server,
	}, nil
}

// Run starts the application and blocks until a shutdown signal is received.
func (a *App) Run() error {
	a.logger.Info("application starting", zap.String("addr", a.server.Addr().String()))

	a.server.Start()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	a.logger.Info("application shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		a.logger.Error("server shutdown error", zap.Error(err))
	}

	if err := a.cache.Close(); err != nil {
		a.logger.Error("cache shutdown error", zap.Error(err))
	}
	if err := a.dbPool.Close(); err != nil {
		a.logger.Error("database shutdown error", zap.Error(err))
	}

	select {
	case <-ctx.Done():
		if ctx.Err() == context.DeadlineExceeded {
			a.logger.Warn("shutdown completed but deadline exceeded")
		}
	default:
		a.logger.Info("graceful shutdown completed successfully")
	}

	_ = a.logger.Sync()
	return nil
}
