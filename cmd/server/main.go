package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-gin-stream-events/config"
	"go-gin-stream-events/internal/database"
	"go-gin-stream-events/internal/embed"
	"go-gin-stream-events/internal/handler"
	"go-gin-stream-events/internal/middleware"
	"go-gin-stream-events/internal/observability"
	"go-gin-stream-events/internal/queue"
	"go-gin-stream-events/internal/repository"
	"go-gin-stream-events/internal/service"
	"go-gin-stream-events/internal/session"
	"go-gin-stream-events/internal/storage"
	"go-gin-stream-events/internal/worker"
	"go-gin-stream-events/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	memoryQueueBuffer  = 1024
	memoryQueueRetries = 3
	shutdownTimeout    = 10 * time.Second
)

func main() {
	log := logger.WithComponent("main")
	defer logger.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config", zap.Error(err))
	}
	logger.SetLevel(cfg.LogLevel)
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := observability.InitTracing(ctx, observability.TracingConfig{
		ServiceName: cfg.Tracing.ServiceName,
		Environment: cfg.Env,
		Enabled:     cfg.Tracing.Enabled,
		Exporter:    cfg.Tracing.Exporter,
		Endpoint:    cfg.Tracing.Endpoint,
	})
	if err != nil {
		log.Fatal("Failed to initialize tracing", zap.Error(err))
	}

	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		log.Fatal("Failed to initialize redis", zap.Error(err))
	}
	defer rdb.Close()

	var statusQueue queue.StatusQueue
	switch cfg.Queue.Driver {
	case "redis":
		statusQueue, err = queue.NewRedisStreamStatusQueue(ctx, rdb, cfg.Queue.Consumer, &queue.RedisStreamConfig{
			StreamKey: cfg.Queue.Stream,
			GroupName: cfg.Queue.Group,
		})
		if err != nil {
			log.Fatal("Failed to initialize status queue", zap.Error(err))
		}
	default:
		statusQueue = queue.NewMemoryStatusQueue(memoryQueueBuffer, memoryQueueRetries)
	}

	eventRepo := repository.NewEventRepository(pool)
	accountRepo := repository.NewAccountRepository(pool)
	historyRepo := repository.NewStatusHistoryRepository(pool)

	historyWorker := worker.NewStatusHistoryWorker(historyRepo, statusQueue)
	if err := historyWorker.Start(ctx); err != nil {
		log.Fatal("Failed to start status history worker", zap.Error(err))
	}

	files := storage.NewLocalStorage(cfg.Server.UploadDir, cfg.Server.MediaURL)
	sessions := session.NewManager(rdb, cfg.Auth.JWTSecret, cfg.Auth.SessionTTL)
	normalizer := embed.NewNormalizer(cfg.Server.AllowedHosts)

	eventService := service.NewEventService(eventRepo, historyRepo, statusQueue, files, normalizer)
	accountService := service.NewAccountService(accountRepo, eventRepo, sessions, files)

	authLimit, err := middleware.RateLimiter(cfg.Server.AuthRateLimit)
	if err != nil {
		log.Fatal("Invalid AUTH_RATE_LIMIT", zap.Error(err))
	}

	router := handler.NewRouter(handler.RouterConfig{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		UploadDir:      cfg.Server.UploadDir,
		MediaURL:       cfg.Server.MediaURL,
		AuthLimit:      authLimit,
		Checks: map[string]handler.Checker{
			"postgres": pool.Ping,
			"redis": func(ctx context.Context) error {
				return rdb.Ping(ctx).Err()
			},
		},
	}, eventService, accountService)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("Server started", zap.String("addr", srv.Addr), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server stopped unexpectedly", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Failed to shut down server", zap.Error(err))
	}

	// ctx 取消後 worker 會把手上的訊息處理完
	select {
	case <-historyWorker.Done():
	case <-shutdownCtx.Done():
		log.Warn("Status history worker did not drain in time")
	}

	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Error("Failed to flush traces", zap.Error(err))
	}
}
