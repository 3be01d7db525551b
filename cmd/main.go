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

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/aegisready/readiness-roadmap/internal/config"
	"github.com/aegisready/readiness-roadmap/internal/handler"
	"github.com/aegisready/readiness-roadmap/internal/health"
	"github.com/aegisready/readiness-roadmap/internal/infra/repository"
	"github.com/aegisready/readiness-roadmap/internal/infra/roadmaprecorder"
	"github.com/aegisready/readiness-roadmap/internal/infra/scoring"
	"github.com/aegisready/readiness-roadmap/internal/observability/logging"
	"github.com/aegisready/readiness-roadmap/internal/observability/metrics"
	"github.com/aegisready/readiness-roadmap/internal/observability/middleware"
	"github.com/aegisready/readiness-roadmap/internal/service/audit"
	"github.com/aegisready/readiness-roadmap/internal/service/effort"
	"github.com/aegisready/readiness-roadmap/internal/service/impact"
	"github.com/aegisready/readiness-roadmap/internal/service/lane"
	"github.com/aegisready/readiness-roadmap/internal/service/org"
	"github.com/aegisready/readiness-roadmap/internal/service/quadrant"
	"github.com/aegisready/readiness-roadmap/internal/service/roadmap"
	"github.com/aegisready/readiness-roadmap/internal/service/techstack"
)

// Version is set via ldflags at build time
var Version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	obs, err := initObservability(ctx)
	if err != nil {
		slog.Error("failed to initialize observability", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := obs.Shutdown(shutdownCtx); err != nil {
			slog.Warn("observability shutdown error", slog.String("error", err.Error()))
		}
	}()

	slog.SetDefault(obs.Logger())

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.String("error", err.Error()))
		return 1
	}

	if err := config.ValidateForRun(cfg); err != nil {
		slog.Error("configuration validation error", slog.String("error", err.Error()))
		return 1
	}

	httpMetrics, err := metrics.NewHTTPMetrics()
	if err != nil {
		slog.Error("failed to initialize HTTP metrics", slog.String("error", err.Error()))
		return 1
	}

	roadmapMetrics, err := metrics.NewRoadmapMetrics()
	if err != nil {
		slog.Error("failed to initialize roadmap metrics", slog.String("error", err.Error()))
		return 1
	}

	// Roadmap result recorder (InfluxDB for local, BigQuery for gcloud)
	resultRecorderCfg := roadmaprecorder.LoadConfig()
	resultRecorder, err := roadmaprecorder.NewRecorder(ctx, resultRecorderCfg)
	if err != nil {
		slog.Error("failed to initialize roadmap result recorder", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		if err := resultRecorder.Close(); err != nil {
			slog.Warn("failed to close roadmap result recorder", slog.String("error", err.Error()))
		}
	}()

	scoringClient := scoring.NewClient(cfg.ScoringBackendURL)

	reminderQueue, cleanup, err := initReminderQueue(ctx, cfg)
	if err != nil {
		slog.Error("failed to initialize reminder queue", slog.String("error", err.Error()))
		return 1
	}
	if cleanup != nil {
		defer func() {
			if err := cleanup(); err != nil {
				slog.Error("reminder queue cleanup error", slog.String("error", err.Error()))
			}
		}()
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	})

	if err := redisotel.InstrumentTracing(redisClient); err != nil {
		slog.Error("failed to instrument redis tracing",
			slog.String("event", "redis.otel.tracing.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	if err := redisotel.InstrumentMetrics(redisClient); err != nil {
		slog.Error("failed to instrument redis metrics",
			slog.String("event", "redis.otel.metrics.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	if err := redisClient.Ping(ctx).Err(); err != nil {
		slog.Error("failed to connect redis",
			slog.String("event", "redis.connect.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Warn("failed to close redis client", slog.String("error", err.Error()))
		}
	}()

	slog.Info("redis connected",
		slog.String("addr", cfg.Redis.Addr),
	)

	snapshotRepo := repository.NewSnapshotRepository(redisClient)
	auditRepo := repository.NewAuditRepository(redisClient)
	techStackRepo := repository.NewTechStackRepository(redisClient)

	roadmapService := roadmap.NewService(
		scoringClient,
		snapshotRepo,
		effort.NewNormalizer(),
		impact.NewNormalizer(),
		lane.NewClassifier(),
		quadrant.NewAssigner(),
		resultRecorder,
		roadmapMetrics,
		cfg.Roadmap.SnapshotTTL,
		cfg.Roadmap.QuadrantDisplayLimit,
	)
	orgService := org.NewService(scoringClient, snapshotRepo, cfg.Roadmap.OrgListTTL)
	auditService := audit.NewService(auditRepo, reminderQueue)
	techStackService := techstack.NewService(techStackRepo)

	roadmapHandler := handler.NewRoadmapHandler(roadmapService)
	orgHandler := handler.NewOrganizationHandler(orgService)
	auditHandler := handler.NewAuditHandler(auditService)
	techStackHandler := handler.NewTechStackHandler(techStackService)

	// Setup router with observability middleware
	r := gin.New()
	r.Use(middleware.Gin(middleware.GinConfig{
		SkipPaths:   []string{"/health", "/health/live", "/health/ready", "/metrics"},
		Module:      logging.Module("readiness-roadmap"),
		TracerName:  "github.com/aegisready/readiness-roadmap/internal/observability/middleware",
		HTTPMetrics: httpMetrics,
	}))
	r.Use(middleware.PanicRecoveryGin())

	// Health check endpoints
	healthChecker := health.NewChecker(redisClient, cfg.ScoringBackendURL, Version)
	r.GET("/health/live", healthChecker.LiveHandler())
	r.GET("/health/ready", healthChecker.ReadyHandler())
	r.GET("/health", healthChecker.StatusHandler())

	// API routes
	v1 := r.Group("/api/v1")
	{
		v1.GET("/organizations", orgHandler.HandleListOrganizations)
		v1.GET("/rubric", orgHandler.HandleGetRubric)
		v1.GET("/organizations/:org_id/score", orgHandler.HandleGetScore)
		v1.GET("/organizations/:org_id/roadmap", roadmapHandler.HandleGetRoadmap)
		v1.POST("/organizations/:org_id/roadmap/refresh", roadmapHandler.HandleRefreshRoadmap)
		v1.GET("/organizations/:org_id/audits", auditHandler.HandleListAuditEvents)
		v1.POST("/organizations/:org_id/audits", auditHandler.HandleCreateAuditEvent)
		v1.GET("/organizations/:org_id/audits/:event_id", auditHandler.HandleGetAuditEvent)
		v1.DELETE("/organizations/:org_id/audits/:event_id", auditHandler.HandleDeleteAuditEvent)
		v1.GET("/organizations/:org_id/techstack", techStackHandler.HandleGetTechStack)
		v1.PUT("/organizations/:org_id/techstack", techStackHandler.HandleReplaceTechStack)
	}

	// Serve HTTP/2 cleartext so Cloud Run and local gRPC-aware proxies can
	// multiplex without TLS.
	h2s := &http2.Server{}
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: h2c.NewHandler(r, h2s),
	}

	// Start server in goroutine
	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Port),
			slog.String("scoring_backend_url", cfg.ScoringBackendURL),
			slog.Duration("snapshot_ttl", cfg.Roadmap.SnapshotTTL),
			slog.Int("quadrant_display_limit", cfg.Roadmap.QuadrantDisplayLimit),
		)
		serverErr <- srv.ListenAndServe()
	}()

	// Wait for shutdown signal or server error
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		slog.Info("shutdown signal received", slog.String("signal", sig.String()))
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("failed to shutdown server", slog.String("error", err.Error()))
			return 1
		}

		slog.Info("server exited properly")
		return 0

	case err := <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return 0
		}
		slog.Error("server exited with error", slog.String("error", err.Error()))
		return 1
	}
}
