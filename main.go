package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"installations_api/internal/config"
	"installations_api/internal/facilities"
	"installations_api/internal/handlers"
	"installations_api/internal/logging"
	"installations_api/internal/notify"
	"installations_api/internal/server"
	"installations_api/internal/storage"
	"installations_api/internal/subscription"
	"installations_api/internal/tasks"
	"installations_api/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// @Title		Montreal recreational facilities API
// @Version	1.0
func main() {
	if err := config.LoadEnv(); err != nil {
		logging.Warn().Err(err).Msg("no .env file loaded")
	}
	cfg := config.Load()
	logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		stop()
		logging.Fatal().Err(err).Msg("server stopped")
	}
}

// run wires every component and serves until ctx is done or the server
// fails. Resources are released before it returns.
func run(ctx context.Context, cfg config.Config) error {
	backend, closeBackend, err := openBackend(cfg.DB)
	if err != nil {
		return errors.Wrapf(err, "open %s storage", cfg.DB.Driver)
	}
	defer closeBackend()

	hubCtx, stopHub := context.WithCancel(ctx)
	defer stopHub()
	hub := ws.NewHub()
	go hub.Run(hubCtx)

	publishers := notify.Multi{hub}
	if cfg.RedisAddr != "" {
		client, err := storage.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return err
		}
		defer client.Close()
		publishers = append(publishers, notify.NewRedisPublisher(client))
	}

	watcher := tasks.NewBoroughWatcher(backend, publishers)
	scheduler, err := tasks.InitScheduler(cfg.WatchCron, watcher)
	if err != nil {
		return errors.Wrapf(err, "watcher schedule %q", cfg.WatchCron)
	}
	defer scheduler.Stop()

	h := handlers.NewHandler(
		facilities.NewService(backend),
		subscription.NewService(backend, publishers),
		backend,
		cfg.UpdateYear,
	)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           server.NewRouter(h, hub),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return serve(ctx, srv)
}

// serve runs srv until ctx is done, then shuts it down. A listener failure
// is returned to the caller instead of exiting the process.
func serve(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", srv.Addr).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return errors.Wrap(err, "http server")
	case <-ctx.Done():
	}

	logging.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return errors.Wrap(srv.Shutdown(shutdownCtx), "http shutdown")
}

// openBackend returns the storage selected by cfg.Driver, migrated and ready.
func openBackend(cfg config.DBConfig) (storage.Backend, func(), error) {
	if cfg.Driver == "memory" {
		logging.Warn().Msg("using in-memory storage, data is lost on exit")
		return storage.NewMemoryStore(), func() {}, nil
	}

	db, err := storage.Open(cfg)
	if err != nil {
		return nil, nil, err
	}
	store := storage.NewStore(db)
	if err := store.Migrate(); err != nil {
		return nil, nil, err
	}
	closeDB := func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}
	return store, closeDB, nil
}
