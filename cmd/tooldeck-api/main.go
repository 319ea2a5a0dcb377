// Package main is the entry point for the tooldeck-api server. The API is
// consumed by the storefront and the admin dashboard; authentication lives
// at the edge, not here.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/joho/godotenv"

	"github.com/tooldeck/tooldeck-api/internal/config"
	"github.com/tooldeck/tooldeck-api/internal/database"
	"github.com/tooldeck/tooldeck-api/internal/http/handlers"
	"github.com/tooldeck/tooldeck-api/internal/http/mw"
	"github.com/tooldeck/tooldeck-api/internal/logging"
	"github.com/tooldeck/tooldeck-api/internal/repository"
	"github.com/tooldeck/tooldeck-api/internal/service"
	"github.com/tooldeck/tooldeck-api/internal/version"
)

func main() {
	// .env is optional, real deployments set the environment directly.
	_ = godotenv.Load()

	logger := logging.SetDefault()

	v := version.Get()
	logger.Info("starting tooldeck-api",
		"version", v.Version,
		"commit", v.Commit,
		"built", v.Date,
		"go_version", v.GoVersion,
	)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.DatabaseURL)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	if err := database.Migrate(db, logger); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	if schemaVersion, applied, err := database.SchemaVersion(db); err != nil {
		logger.Warn("failed to get schema version", "error", err)
	} else if schemaVersion != "" {
		logger.Info("database schema ready", "schema_version", schemaVersion, "migrations_applied", applied)
	}

	repos := repository.NewRepositories(db)
	services := service.NewServices(cfg, repos, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.SweepEnabled {
		go services.Trash.RunScheduledSweep(ctx, cfg.SweepInterval)
	}

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(mw.Cache(mw.DefaultCacheConfig()))

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link", "X-Request-ID", "Retry-After"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// 1MB request cap, clicks and settings payloads are tiny.
	router.Use(middleware.RequestSize(1 * 1024 * 1024))
	router.Use(httprate.LimitByIP(100, time.Minute))
	router.Use(middleware.Throttle(100))

	humaConfig := huma.DefaultConfig("ToolDeck API", v.Short())
	humaConfig.Info.Description = "Catalog classification and click analytics backend for the ToolDeck storefront."
	humaConfig.Servers = []*huma.Server{
		{URL: cfg.BaseURL, Description: "API Server"},
	}
	api := humachi.New(router, humaConfig)

	// K8s probes get their own API without docs.
	hiddenConfig := huma.DefaultConfig("ToolDeck API", v.Short())
	hiddenConfig.DocsPath = ""
	hiddenConfig.OpenAPIPath = ""
	hiddenConfig.SchemasPath = ""
	hiddenAPI := humachi.New(router, hiddenConfig)

	mw.Get(api, "/api/v1/health", handlers.HealthCheck, mw.WithTags("system"))
	mw.HiddenGet(hiddenAPI, "/healthz", handlers.Livez)
	mw.HiddenGet(hiddenAPI, "/readyz", handlers.NewReadyzHandler(db).Readyz)

	catalogHandler := handlers.NewCatalogHandler(services.Catalog)
	mw.Get(api, "/api/v1/catalog/stats", catalogHandler.GetProductStats,
		mw.WithTags("catalog"), mw.WithSummary("Per-bucket product counts"))
	mw.Get(api, "/api/v1/catalog/types/{productType}/categories", catalogHandler.GetCategoryCounts,
		mw.WithTags("catalog"), mw.WithSummary("Category counts for one product-type view"))
	mw.Get(api, "/api/v1/catalog/categories/stats", catalogHandler.GetCategoryStats,
		mw.WithTags("catalog"), mw.WithSummary("Global category counts"))

	analyticsHandler := handlers.NewAnalyticsHandler(services.Analytics)
	mw.Get(api, "/api/v1/analytics/revenue", analyticsHandler.GetRevenue,
		mw.WithTags("analytics"), mw.WithSummary("Click aggregation for the revenue dashboard"))
	mw.Post(api, "/api/v1/clicks", analyticsHandler.RecordClick,
		mw.WithTags("analytics"), mw.WithSummary("Record a storefront click"))

	settingsHandler := handlers.NewSettingsHandler(repos.Settings)
	mw.Get(api, "/api/v1/settings/{key}", settingsHandler.GetSetting, mw.WithTags("settings"))
	mw.Put(api, "/api/v1/settings/{key}", settingsHandler.PutSetting, mw.WithTags("settings"))

	// The sweep endpoint keeps its legacy JSON envelope, so it bypasses huma.
	trashHandler := handlers.NewTrashHandler(services.Trash, logger)
	router.Post("/api/v1/trash/sweep", trashHandler.Sweep)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
		<-sigChan

		logger.Info("shutting down server")
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown error", "error", err)
		}
	}()

	logger.Info("starting server", "port", cfg.Port, "base_url", cfg.BaseURL)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
