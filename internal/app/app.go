package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/synphony-backend/internal/adapter/postgres"
	"github.com/heartmarshall/synphony-backend/internal/adapter/postgres/curriculum"
	"github.com/heartmarshall/synphony-backend/internal/adapter/postgres/sample"
	"github.com/heartmarshall/synphony-backend/internal/config"
	"github.com/heartmarshall/synphony-backend/internal/service/readers"
	"github.com/heartmarshall/synphony-backend/internal/synphony"
	"github.com/heartmarshall/synphony-backend/internal/transport/middleware"
	"github.com/heartmarshall/synphony-backend/internal/transport/rest"
	"github.com/heartmarshall/synphony-backend/internal/watch"
	"github.com/heartmarshall/synphony-backend/migrations"
)

// Run starts the application and blocks until ctx is cancelled or a
// component fails. It connects to the database, applies migrations, wires
// the readers service, and serves HTTP. With readers.watch enabled the
// settings directory is watched alongside the server.
func Run(ctx context.Context, cfg *config.Config) error {
	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.MigrateOnStart {
		n, err := postgres.MigratePool(ctx, pool, migrations.FS)
		if err != nil {
			return err
		}
		logger.Info("migrations applied", slog.Int("count", n))
	}

	svc := readers.NewService(logger,
		curriculum.New(pool),
		sample.New(pool),
		postgres.NewTxManager(pool),
		ReadersServiceConfig(cfg.Readers),
	)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	handler := NewRouter(cfg, logger, RouterDeps{
		Health:   rest.NewHealthHandler(pool, svc, Version),
		API:      rest.NewReadersHandler(svc, logger, cfg.Server.MaxBodyBytes),
		Registry: reg,
		Limiter:  limiter,
	})

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if dir := cfg.Readers.SettingsDir; dir != "" {
		w := watch.NewSettingsWatcher(logger, svc, dir, cfg.Readers.WatchDebounce)
		if cfg.Readers.Watch {
			g.Go(func() error { return w.Run(gctx) })
		} else {
			n, err := w.Scan(ctx)
			if err != nil {
				return err
			}
			logger.Info("settings directory imported", slog.String("dir", dir), slog.Int("imported", n))
		}
	}

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("application stopped")
	return nil
}

// ReadersServiceConfig maps the readers config section to service options.
func ReadersServiceConfig(cfg config.ReadersConfig) readers.Config {
	opts := synphony.DefaultOptions()
	opts.MaxAllowedWords = cfg.MaxAllowedWords
	opts.ExtraSentencePunct = cfg.ExtraSentencePunct
	opts.PossibleWords = cfg.PossibleWordsEnabled
	opts.CacheSize = cfg.QueryCacheSize
	opts.MaxSyllables = cfg.MaxSyllables

	return readers.Config{Engine: opts, NormalizeNFC: cfg.NormalizeNFC}
}
