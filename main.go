package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/viddeck/viddeck/internal/config"
	"github.com/viddeck/viddeck/internal/handler"
	"github.com/viddeck/viddeck/internal/logging"
	"github.com/viddeck/viddeck/internal/repository/disk"
	"github.com/viddeck/viddeck/internal/repository/memory"
	"github.com/viddeck/viddeck/internal/service"
)

func main() {
	// A .env file is optional; deployed environments set variables directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	users := memory.NewUserStore()
	files, err := disk.NewFileStore(cfg.UploadDir)
	if err != nil {
		slog.Error("failed to prepare upload directory", "error", err)
		os.Exit(1)
	}

	hasher := service.NewPasswordHasher(cfg.BcryptCost)
	tokens := service.NewTokenService(cfg.JWTSecret, service.TokenTTL)
	auth := service.NewAuthService(users, hasher, tokens)
	uploads := service.NewUploadService(files)

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, auth, uploads, users, files.Root(), cfg.Production())

	var root http.Handler = handler.CORS(handler.CORSConfig{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowAll:       !cfg.Production(),
	}, slog.Default(), mux)
	root = handler.RequestLog(slog.Default(), root)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           root,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1MB
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("server starting", "addr", srv.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
