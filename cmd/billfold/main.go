package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"billfold/internal/cache"
	"billfold/internal/config"
	"billfold/internal/core"
	apphttp "billfold/internal/http"
	applog "billfold/internal/log"
	"billfold/internal/planner"
)

func main() {
	// Optional .env for local development
	_ = godotenv.Load()

	cfg := config.Load()

	logger := applog.Setup(applog.Config{
		Level:   applog.ParseLevel(cfg.LogLevel),
		NoColor: os.Getenv("NO_COLOR") != "",
	})

	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	views := cache.New[[]core.Bill](cfg.ViewCacheSize, cfg.ViewCacheTTL)
	p := planner.New(time.Now(), views, logger)

	srv := apphttp.NewServer(apphttp.Config{
		Addr:              ":" + cfg.Port,
		RequestsPerMinute: cfg.RequestsPerMinute,
	}, p)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Starting billfold server", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		return views.Janitor(ctx, 10*time.Minute)
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Server error", "error", err)
		os.Exit(1)
	}
	logger.Info("Server stopped gracefully")
}
