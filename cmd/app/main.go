package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Deymos01/pr-reviewer-service/internal/assignment"
	"github.com/Deymos01/pr-reviewer-service/internal/auth"
	"github.com/Deymos01/pr-reviewer-service/internal/config"
	"github.com/Deymos01/pr-reviewer-service/internal/httpserver"
	"github.com/Deymos01/pr-reviewer-service/internal/lib/logger/sl"
	"github.com/Deymos01/pr-reviewer-service/internal/repository/memory"
	"github.com/Deymos01/pr-reviewer-service/internal/repository/postgres"
	"github.com/Deymos01/pr-reviewer-service/internal/usecase"
	"github.com/Deymos01/pr-reviewer-service/internal/usecase/pull_request"
	"github.com/Deymos01/pr-reviewer-service/internal/usecase/statistics"
	"github.com/Deymos01/pr-reviewer-service/internal/usecase/team"
	"github.com/Deymos01/pr-reviewer-service/internal/usecase/user"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

// storage is what every use case needs from a backend.
type storage interface {
	team.TeamRepository
	user.Repository
	pull_request.Repository
	pull_request.DirectoryRepository
	statistics.Repository
	Ping(ctx context.Context) error
}

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("starting application", slog.String("env", cfg.Env), slog.String("storage", cfg.Storage))

	b, err := setupStorage(context.Background(), cfg, log)
	if err != nil {
		log.Error("failed to initialize storage", sl.Err(err))
		os.Exit(1)
	}
	defer b.close()

	picker, err := assignment.NewPicker(cfg.ReviewerPicker)
	if err != nil {
		log.Error("invalid reviewer picker", sl.Err(err))
		os.Exit(1)
	}

	verifier, err := auth.NewVerifier(cfg.AdminSecret, cfg.UserSecret)
	if err != nil {
		log.Error("failed to initialize auth", sl.Err(err))
		os.Exit(1)
	}

	router := httpserver.NewRouter(httpserver.Deps{
		Log:        log,
		Verifier:   verifier,
		Teams:      team.New(log, b.trm, b.store),
		Users:      user.New(log, b.store),
		PRs:        pull_request.New(log, b.trm, b.store, b.store, assignment.New(picker)),
		Statistics: statistics.New(log, b.snapshotTrm, b.store),
		Storage:    b.store,
	})

	addr := cfg.HTTPServerConfig.Address()

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: cfg.HTTPServerConfig.Timeout,
		WriteTimeout:      cfg.HTTPServerConfig.Timeout,
		IdleTimeout:       cfg.HTTPServerConfig.IdleTimeout,
	}

	go func() {
		log.Info("starting server", slog.String("address", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed", sl.Err(err))
			os.Exit(1)
		}
	}()

	gracefulShutdown(context.Background(), srv, cfg.HTTPServerConfig.ShutdownTimeout, log)
}

type backend struct {
	store storage
	trm   usecase.TxManager
	// snapshotTrm serves multi-query reads.
	snapshotTrm usecase.TxManager
	close       func()
}

func setupStorage(ctx context.Context, cfg *config.Config, log *slog.Logger) (*backend, error) {
	if cfg.Storage != config.StoragePostgres {
		s := memory.New()
		return &backend{store: s, trm: s, snapshotTrm: s, close: func() {}}, nil
	}

	if cfg.PostgresConfig.AutoMigrate {
		if err := postgres.MigrateUp(cfg.MigrationsPath, cfg.PostgresConfig.DSN()); err != nil {
			return nil, err
		}
		log.Info("migrations applied", slog.String("path", cfg.MigrationsPath))
	}

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	s, err := postgres.New(connectCtx, cfg.PostgresConfig)
	if err != nil {
		return nil, err
	}

	closeFn := func() {
		if err := s.Close(); err != nil {
			log.Error("failed to close storage", sl.Err(err))
		}
	}

	return &backend{store: s, trm: s.TxManager(), snapshotTrm: s.SnapshotTxManager(), close: closeFn}, nil
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	case envLocal:
		fallthrough
	default:
		log = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	return log
}

func gracefulShutdown(ctx context.Context, srv *http.Server, timeout time.Duration, log *slog.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	log.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown failed", sl.Err(err))
		return
	}

	log.Info("server exited gracefully")
}
