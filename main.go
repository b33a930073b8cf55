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

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"bookrent-backend/docs"
	"bookrent-backend/internal/bookstore/books"
	"bookrent-backend/internal/bookstore/favorites"
	"bookrent-backend/internal/bookstore/reminders"
	"bookrent-backend/internal/bookstore/rentals"
	"bookrent-backend/internal/platform/config"
	"bookrent-backend/internal/platform/memdb"
)

// @title       BookRent API
// @version     1.0
// @description Book catalog, rentals, reminders and favorites over an in-memory store.
// @BasePath    /api/v1
func main() {
	// 設定読み込み
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config", "err", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)
	logger.Info("starting", "mode", cfg.Mode, "version", cfg.Version)

	store, err := newStore(cfg, logger)
	if err != nil {
		logger.Error("store", "err", err)
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           newRouter(cfg, store, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("listen", "err", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown", "err", err)
		os.Exit(1)
	}
}

// 開発時はテキスト、本番はJSON
func newLogger(cfg *config.Config) *slog.Logger {
	if cfg.IsDev() {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
}

func newStore(cfg *config.Config, logger *slog.Logger) (*memdb.Store, error) {
	ids, err := memdb.NewIDGen(cfg.Store.IDScheme)
	if err != nil {
		return nil, err
	}
	opts := []memdb.Option{
		memdb.WithIDGen(ids),
		memdb.WithLogger(logger.With("component", "memdb")),
	}
	if !cfg.Store.SimulateLatency {
		opts = append(opts, memdb.WithLatency(memdb.NoLatency))
	}
	if cfg.Store.Seed {
		opts = append(opts, memdb.WithBooks(memdb.SeedBooks()...))
	}
	return memdb.New(opts...), nil
}

func newRouter(cfg *config.Config, store *memdb.Store, logger *slog.Logger) *gin.Engine {
	if cfg.IsDev() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	_ = r.SetTrustedProxies(nil)

	if cfg.IsDev() {
		// CORS（開発中のみ必要）
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.Server.AllowOrigins,
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			ExposeHeaders:    []string{"Content-Length", "Location"},
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowCredentials: true,
		}))

		docs.SwaggerInfo.Version = cfg.Version
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// ヘルス
	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	// /api/v1
	api := r.Group("/api/v1")
	books.RegisterRoutes(api, books.NewService(store, logger.With("component", "books")))
	rentals.RegisterRoutes(api, rentals.NewService(store, logger.With("component", "rentals"), rentals.Policy{
		RequireAvailable: cfg.Rentals.RequireAvailable,
		MarkUnavailable:  cfg.Rentals.MarkUnavailable,
	}))
	reminders.RegisterRoutes(api, reminders.NewService(store, logger.With("component", "reminders")))
	favorites.RegisterRoutes(api, favorites.NewService(store, logger.With("component", "favorites")))

	return r
}
