package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/reelstream/reelstream-go/internal/config"
	"github.com/reelstream/reelstream-go/internal/handler"
	"github.com/reelstream/reelstream-go/internal/middleware"
	"github.com/reelstream/reelstream-go/internal/repository"
	"github.com/reelstream/reelstream-go/internal/service"
	"github.com/reelstream/reelstream-go/internal/storage"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := repository.NewDB(cfg.DatabaseDSN)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := repository.EnsureSchema(context.Background(), db); err != nil {
		slog.Error("schema bootstrap failed", "error", err)
		os.Exit(1)
	}

	files, err := storage.NewFileStore(cfg.UploadDir)
	if err != nil {
		slog.Error("upload directory unavailable", "error", err)
		os.Exit(1)
	}

	userRepo := repository.NewUserRepository(db)
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiry)
	authHandler := handler.NewAuthHandler(authService)

	reelRepo := repository.NewReelRepository(db)
	reelService := service.NewReelService(reelRepo, files)
	reelHandler := handler.NewReelHandler(reelService, cfg.MaxUploadBytes)

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Post("/api/register", authHandler.HandleRegister)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(cfg.LoginRateLimit, cfg.RateLimitWindow))
		r.Post("/api/login", authHandler.HandleLogin)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(cfg.UploadRateLimit, cfg.RateLimitWindow))
		r.Use(middleware.JWTAuth(cfg.JWTSecret))
		r.Post("/api/upload", reelHandler.HandleUpload)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuth(cfg.JWTSecret))
		r.Get("/api/me", authHandler.HandleMe)
	})

	r.Get("/api/reels", reelHandler.HandleListReels)

	r.Get("/", handler.HandleIndex)
	r.Handle("/uploads/reels/*", http.StripPrefix("/uploads/reels/", handler.FileServer(http.Dir(files.Dir()))))

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
