package main // Entry point package

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/iliyamo/gig-pack/internal/config"
	"github.com/iliyamo/gig-pack/internal/database"
	"github.com/iliyamo/gig-pack/internal/events"
	"github.com/iliyamo/gig-pack/internal/gigpack"
	"github.com/iliyamo/gig-pack/internal/handler"
	"github.com/iliyamo/gig-pack/internal/logging"
	"github.com/iliyamo/gig-pack/internal/middleware"
	"github.com/iliyamo/gig-pack/internal/repository"
	"github.com/iliyamo/gig-pack/internal/router"
)

// backend is what the server needs from a store implementation.
type backend interface {
	gigpack.Store
	gigpack.ShareStore
	events.ActivityAppender
}

func main() {
	cfg := config.Load()
	logger, err := logging.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("open store", zap.Error(err))
	}
	defer closeStore()

	rdb, err := config.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		logger.Warn("redis unavailable, share rate limit disabled", zap.Error(err))
	}

	agg := gigpack.NewAggregator(store, logger.Named("aggregate"))
	recOpts := []gigpack.ReconcilerOption{gigpack.WithAtomic(cfg.AtomicSave)}
	var publisher *events.Publisher
	if cfg.EventsEnabled {
		publisher = events.NewPublisher(cfg.RabbitMQURL, logger.Named("events"))
		recOpts = append(recOpts, gigpack.WithListener(publisher))
		consumer := events.NewConsumer(cfg.RabbitMQURL, store, logger.Named("activity"))
		go func() {
			if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("activity consumer stopped", zap.Error(err))
			}
		}()
	}
	rec := gigpack.NewReconciler(store, logger.Named("reconcile"), recOpts...)
	proj := gigpack.NewProjector(store, agg, logger.Named("share"), cfg.ActivityLimit)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	router.RegisterRoutes(e)
	router.RegisterOwner(e, &handler.GigHandler{
		Gigs:       store,
		Shares:     store,
		Aggregator: agg,
		Reconciler: rec,
		Projector:  proj,
		Log:        logger,
	}, cfg.JWTSecret, cfg.ManagerRoles...)
	router.RegisterPublic(e, &handler.PublicHandler{Projector: proj, Log: logger},
		middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb, logger),
	)

	addr := ":" + cfg.Port
	logger.Info("listening",
		zap.String("addr", addr),
		zap.String("store", cfg.StoreBackend),
		zap.Bool("atomic_save", cfg.AtomicSave),
		zap.Bool("events", cfg.EventsEnabled))

	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("http server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
	if publisher != nil {
		if err := publisher.Close(shutdownCtx); err != nil {
			logger.Warn("pending gigpack.saved events dropped", zap.Error(err))
		}
	}
	if rdb != nil {
		_ = rdb.Close()
	}
}

// openStore returns the configured backend and a function releasing it.
func openStore(ctx context.Context, cfg config.Config, logger *zap.Logger) (backend, func(), error) {
	if cfg.StoreBackend == config.BackendMemory {
		logger.Warn("using in-memory store, data is lost on restart")
		return repository.NewMemoryStore(), func() {}, nil
	}
	db, err := database.Open(ctx, cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		return nil, nil, err
	}
	if cfg.DBAutoMigrate {
		if err := database.EnsureSchema(ctx, db); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
	}
	return repository.NewStore(db), func() { _ = db.Close() }, nil
}
