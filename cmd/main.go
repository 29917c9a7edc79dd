package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/okian/gully/internal/adapters/http/api"
	session "github.com/okian/gully/internal/app"
	"github.com/okian/gully/internal/config"
	"github.com/okian/gully/pkg/logger"
)

// HTTP server timeout constants.
const (
	readTimeout       = 10 * time.Second
	writeTimeout      = 10 * time.Second
	idleTimeout       = 60 * time.Second
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 30 * time.Second
)

func main() {
	// The custom registry carries only our contest metrics; the default
	// collectors would double-register on scrape.
	prometheus.Unregister(collectors.NewGoCollector())
	prometheus.Unregister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env).
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return
	}

	// Apply configured log level (fallback to info on invalid input).
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info",
			logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	sess := session.New(
		session.WithLogger(log),
		session.WithSeed(cfg.Seed),
		session.WithContestID(cfg.ContestID),
		session.WithIntervals(
			time.Duration(cfg.TrendIntervalMS)*time.Millisecond,
			time.Duration(cfg.RefreshIntervalMS)*time.Millisecond,
			time.Duration(cfg.EventIntervalMS)*time.Millisecond,
			time.Duration(cfg.SweepIntervalMS)*time.Millisecond,
		),
		session.WithSkipProbability(cfg.EventSkipProbability),
		session.WithPopupTTL(time.Duration(cfg.PopupSeconds)*time.Second),
		session.WithBoardSize(cfg.BoardSize),
		session.WithCapacities(cfg.DeltaCapacity, cfg.NotificationCapacity, cfg.TrendCapacity, cfg.UpdatesCapacity, cfg.ShiftCapacity),
		session.WithMultipliers(cfg.CaptainMultiplier, cfg.ViceCaptainMultiplier),
		session.WithLeaderFallback(cfg.LeaderPointsFallback),
	)
	if err := sess.Start(ctx); err != nil {
		os.Stderr.WriteString("failed to start session: " + err.Error() + "\n")
		return
	}
	defer sess.Stop()

	// HTTP mux and routes.
	mux := http.NewServeMux()
	apiServer := api.NewServer(sess, sess, api.WithMaxBoardLimit(cfg.MaxBoardLimit))
	apiServer.Register(ctx, mux)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		log.Info(ctx, "starting HTTP server", logger.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			os.Stderr.WriteString("HTTP server failed: " + err.Error() + "\n")
		}
	}()

	<-ctx.Done()
	log.Info(ctx, "shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "server shutdown failed", logger.Error(err))
	}
	log.Info(ctx, "server stopped")
}
