package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/iwvelando/finance-calculator/internal/cache"
	"github.com/iwvelando/finance-calculator/internal/config"
	"github.com/iwvelando/finance-calculator/internal/server"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

const readHeaderTimeout = 10 * time.Second

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the calculator web interface and JSON API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "address",
				Usage: "listen address override (e.g. :8080)",
			},
		},
		Action: runServe,
	}
}

func runServe(c *cli.Context) error {
	conf, logger, err := loadRuntime(c)
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	if addr := c.String("address"); addr != "" {
		conf.Server.Address = addr
	}

	store, err := newCache(c.Context, conf.Cache, logger)
	if err != nil {
		return err
	}
	if closer, ok := store.(io.Closer); ok {
		defer func() {
			_ = closer.Close()
		}()
	}

	var limiter *server.RateLimiter
	if conf.RateLimit.Enabled {
		limiter = server.NewRateLimiter(conf.RateLimit.Requests, conf.RateLimit.WindowDuration())
		defer limiter.Stop()
	}

	srv := &http.Server{
		Addr: conf.Server.Address,
		Handler: server.NewHandler(server.Options{
			Logger:      logger,
			MaxFormSize: conf.Server.FormSizeBytes(),
			Version:     version,
			Cache:       store,
			RateLimiter: limiter,
		}),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting web server",
			zap.String("op", "main.serve"),
			zap.String("address", conf.Server.Address),
			zap.String("cache", conf.Cache.Backend),
			zap.Bool("rateLimit", conf.RateLimit.Enabled),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("web server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down web server", zap.String("op", "main.serve"))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeoutDuration())
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

type pinger interface {
	Ping(ctx context.Context) error
}

// newCache builds the configured cache. An unreachable Redis is logged, not
// fatal: lookups against it fail and every request is computed instead.
func newCache(ctx context.Context, cfg config.CacheConfig, logger *zap.Logger) (cache.Cache, error) {
	store, err := cache.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create cache: %w", err)
	}

	if p, ok := store.(pinger); ok {
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		if err := p.Ping(pingCtx); err != nil {
			logger.Warn("cache backend unreachable",
				zap.String("op", "main.newCache"),
				zap.String("backend", cfg.Backend),
				zap.Error(err),
			)
		}
	}
	return store, nil
}
