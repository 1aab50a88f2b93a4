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

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"

	"github.com/fjod/go_storefront/internal/cart"
	"github.com/fjod/go_storefront/internal/catalog"
	"github.com/fjod/go_storefront/internal/config"
	h "github.com/fjod/go_storefront/internal/http"
	"github.com/fjod/go_storefront/internal/session"
	"github.com/fjod/go_storefront/internal/storage"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	// Durable storage: redis when configured, process memory otherwise.
	var kv storage.KeyValue = storage.NewMemoryKV()
	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       0,
		})
		defer redisClient.Close()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Error("redis connection failed", "error", err)
			os.Exit(1)
		}
		kv = storage.NewRedisKV(redisClient)
		logger.Info("connected to redis", "addr", cfg.RedisAddr)
	}

	// Catalog: sqlite when a db path is configured, seeded memory otherwise.
	var cat catalog.Catalog
	if cfg.CatalogDBPath != "" {
		sqliteCatalog, err := catalog.NewSQLiteCatalog(cfg.CatalogDBPath)
		if err != nil {
			logger.Error("failed to open catalog database", "error", err)
			os.Exit(1)
		}
		defer sqliteCatalog.Close()
		if err := sqliteCatalog.RunMigrations(cfg.MigrationsPath); err != nil {
			logger.Error("failed to run catalog migrations", "error", err)
			os.Exit(1)
		}
		cat = sqliteCatalog
		logger.Info("catalog database ready", "path", cfg.CatalogDBPath)
	} else {
		cat = catalog.NewMemoryCatalog(catalog.SeedProducts())
		logger.Info("using seeded in-memory catalog")
	}

	if redisClient != nil {
		cat = catalog.NewCachedCatalog(cat, catalog.NewRedisCache(redisClient), logger)
	}

	verifier, err := session.NewStaticVerifier(cfg.DemoEmail, cfg.DemoPassword)
	if err != nil {
		logger.Error("failed to build credential verifier", "error", err)
		os.Exit(1)
	}

	// One cart store and one session store per active browser session,
	// passed explicitly to the handlers through the session scope.
	manager := h.NewManager(func() *h.Scope {
		return &h.Scope{
			Cart:    cart.NewStore(cat, logger),
			Session: session.NewStore(verifier, kv, logger),
		}
	}, cfg.SessionTTL, logger)
	defer manager.Stop()

	productHandler := h.NewProductHandler(cat, cfg.RequestTimeout)
	cartHandler := h.NewCartHandler(cat, cfg.RequestTimeout)
	authHandler := h.NewAuthHandler(cfg.RequestTimeout)
	reportingHandler := h.NewReportingHandler()

	// Setup router
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	r.Use(middleware.Compress(5))
	r.Use(h.SessionMiddleware(manager))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", productHandler.List)
			r.Get("/{id}", productHandler.Get)
		})
		r.Route("/cart", func(r chi.Router) {
			r.Get("/", cartHandler.GetCart)
			r.Delete("/", cartHandler.ClearCart)
			r.Post("/items", cartHandler.AddItem)
			r.Put("/items/{product_id}", cartHandler.UpdateQuantity)
			r.Delete("/items/{product_id}", cartHandler.RemoveItem)
		})
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/logout", authHandler.Logout)
			r.Get("/session", authHandler.Session)
			r.Delete("/remembered", authHandler.ForgetRemembered)
		})
		r.Group(func(r chi.Router) {
			r.Use(h.RequireAuth)
			r.Get("/orders", reportingHandler.Orders)
			r.Get("/dashboard/sales", reportingHandler.MonthlySales)
		})
	})

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("storefront server starting", "port", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server exited")
}
