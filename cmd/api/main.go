package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/isawsback/isawsback/internal/check"
	"github.com/isawsback/isawsback/internal/config"
	"github.com/isawsback/isawsback/internal/fetch"
	"github.com/isawsback/isawsback/internal/httpapi"
	apimw "github.com/isawsback/isawsback/internal/httpapi/middleware"
	"github.com/isawsback/isawsback/internal/logging"
	"github.com/isawsback/isawsback/internal/notify"
	"github.com/isawsback/isawsback/internal/repo"
	"github.com/isawsback/isawsback/internal/repo/memory"
	"github.com/isawsback/isawsback/internal/repo/postgres"
	rds "github.com/isawsback/isawsback/internal/repo/redis"
	"github.com/isawsback/isawsback/internal/repo/sqlite"
	"github.com/isawsback/isawsback/internal/scheduler"
)

func main() {
	config.LoadDotEnv()
	cfg := config.FromEnv()

	logger, err := logging.NewLogger(cfg.LogDir)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("store_open_error", zap.Error(err))
	}
	defer closeStore()

	notifier := notify.Multi{notify.NewLog(logger)}
	if s := notify.NewSlack(cfg.SlackWebhook); s != nil {
		notifier = append(notifier, s)
	}

	fetcher := fetch.NewMultiFetcher(logger, cfg.HTTPTimeout, cfg.Endpoints)
	checker := check.New(logger, fetcher, store, notifier)
	checker.SeedPrevious(ctx)

	poller := scheduler.NewPoller(logger, checker, cfg.PollInterval, cfg.PollCron)
	go poller.Run(ctx)

	api := httpapi.NewServer(logger, checker)
	router := api.Router(httpapi.RouterConfig{
		Keys: apimw.Keys{
			Public: cfg.PublicAPIKeys,
			Admin:  cfg.AdminAPIKeys,
		},
		AllowedOrigins: cfg.AllowedOrigins,
		PublicRPM:      cfg.PublicRPM,
		PublicBurst:    cfg.PublicBurst,
		AdminRPM:       cfg.AdminRPM,
		AdminBurst:     cfg.AdminBurst,
	})

	srv := &http.Server{Addr: cfg.Addr, Handler: router}
	go func() {
		<-ctx.Done()
		_ = srv.Shutdown(context.Background())
	}()

	logger.Info("api_listen", zap.String("addr", cfg.Addr))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("api_listen_error", zap.Error(err))
	}
}

// openStore picks the persistence backend: postgres when DATABASE_URL is
// set, then redis, then the sqlite file, falling back to in-memory.
func openStore(ctx context.Context, cfg config.Config, logger *zap.Logger) (repo.ResultStore, func(), error) {
	switch {
	case cfg.DatabaseURL != "":
		s, err := postgres.New(ctx, cfg.DatabaseURL, logger)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("store_postgres")
		return s, s.Close, nil
	case cfg.RedisURL != "":
		s, err := rds.New(ctx, cfg.RedisURL, logger)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("store_redis")
		return s, func() { _ = s.Close() }, nil
	case cfg.SQLitePath != "":
		s, err := sqlite.New(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("store_sqlite", zap.String("path", cfg.SQLitePath))
		return s, func() { _ = s.Close() }, nil
	default:
		logger.Info("store_memory")
		return memory.New(), func() {}, nil
	}
}
