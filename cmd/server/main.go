package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.uber.org/zap"

	"github.com/castellanodev/asistente/internal/analytics"
	"github.com/castellanodev/asistente/internal/assistant"
	"github.com/castellanodev/asistente/internal/config"
	"github.com/castellanodev/asistente/internal/handlers"
	"github.com/castellanodev/asistente/internal/logger"
	"github.com/castellanodev/asistente/internal/middleware"
	"github.com/castellanodev/asistente/internal/store"
	"github.com/castellanodev/asistente/internal/telemetry"
	"github.com/castellanodev/asistente/internal/tips"
)

func main() {
	// A missing .env file is fine: configuration falls back to the process
	// environment and defaults.
	_ = godotenv.Load()

	debugFlag := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	debugMode := cfg.ServerDebugMode || *debugFlag

	zapLogger, err := logger.NewProductionLogger(debugMode)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() {
		_ = logger.Sync(zapLogger)
	}()

	zapLogger.Info("starting_server",
		zap.Bool("debug_mode", debugMode),
		zap.String("server_port", cfg.ServerPort),
		zap.String("frontend_url", cfg.FrontendURL),
		zap.String("store_backend", cfg.StoreBackend),
		zap.Bool("otel_enabled", cfg.OTELEnabled),
	)

	// Initialize OpenTelemetry if enabled
	var tracerProvider interface{ Shutdown(context.Context) error }
	if cfg.OTELEnabled {
		if cfg.OTELEndpoint == "" {
			zapLogger.Warn("otel_enabled_but_endpoint_not_configured")
		} else {
			tp, err := telemetry.InitTracer(context.Background(), "asistente", cfg.OTELEndpoint)
			if err != nil {
				zapLogger.Warn("failed_to_initialize_otel_tracer", zap.Error(err))
			} else {
				tracerProvider = tp
				zapLogger.Info("otel_tracer_initialized",
					zap.String("endpoint", cfg.OTELEndpoint),
				)
				defer func() {
					shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
					defer shutdownCancel()
					if err := tracerProvider.Shutdown(shutdownCtx); err != nil {
						zapLogger.Error("failed_to_shutdown_otel_tracer", zap.Error(err))
					}
				}()
			}
		}
	}

	// Open the document store
	st, err := store.Open(store.BackendConfig{
		Type:       store.BackendType(cfg.StoreBackend),
		SQLitePath: cfg.SQLitePath,
		RedisURL:   cfg.RedisURL,
	}, zapLogger)
	if err != nil {
		zapLogger.Fatal("failed_to_open_store", zap.Error(err))
	}
	defer func() {
		if err := st.Close(); err != nil {
			zapLogger.Warn("failed_to_close_store", zap.Error(err))
		}
	}()

	// Tips catalog, optionally overridden from a YAML file
	tipProvider := tips.NewProvider()
	if cfg.TipsFile != "" {
		if err := tipProvider.LoadFile(cfg.TipsFile); err != nil {
			zapLogger.Fatal("failed_to_load_tips_file",
				zap.String("path", cfg.TipsFile),
				zap.Error(err),
			)
		}
		zapLogger.Info("tips_file_loaded", zap.String("path", cfg.TipsFile))
	}

	analyticsService := analytics.NewService(st)
	interpreter := assistant.New(st, analyticsService, tipProvider, zapLogger)

	chatHandler := handlers.NewChatHandler(interpreter, zapLogger)
	collectionsHandler := handlers.NewCollectionsHandler(st, zapLogger)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService, zapLogger)
	healthChecker := handlers.NewHealthChecker(st)

	// Setup router
	r := mux.NewRouter()

	// Middleware order: registered first wraps outermost
	if cfg.OTELEnabled && tracerProvider != nil {
		r.Use(otelmux.Middleware("asistente"))
		zapLogger.Info("otel_middleware_enabled")
	}
	r.Use(middleware.SecurityHeaders(cfg.EnableHSTS))
	r.Use(middleware.CORS(cfg.FrontendURL))
	r.Use(middleware.MaxRequestSize(middleware.DefaultMaxRequestSize))
	r.Use(middleware.ContentType)
	r.Use(middleware.Timeout(time.Duration(cfg.RequestTimeoutSeconds) * time.Second))
	r.Use(middleware.Recover(zapLogger))
	r.Use(middleware.Logging(zapLogger))

	rateLimitMW, err := middleware.RateLimit(cfg.RateLimit)
	if err != nil {
		zapLogger.Fatal("invalid_rate_limit", zap.String("rate", cfg.RateLimit), zap.Error(err))
	}

	// Public routes (no rate limiting for health checks)
	r.HandleFunc("/healthz", healthChecker.HealthCheck).Methods("GET")
	r.HandleFunc("/version", versionInfo).Methods("GET")

	// API v1 routes
	apiRouter := r.PathPrefix("/api/v1").Subrouter()

	chatRouter := apiRouter.PathPrefix("").Subrouter()
	chatRouter.Use(rateLimitMW)
	chatHandler.RegisterRoutes(chatRouter)

	collectionsHandler.RegisterRoutes(apiRouter)
	analyticsHandler.RegisterRoutes(apiRouter)

	// Catch-all OPTIONS handler for CORS preflight requests
	r.Methods("OPTIONS").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	srv := &http.Server{
		Addr:           ":" + cfg.ServerPort,
		Handler:        r,
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   15 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		zapLogger.Info("server_starting",
			zap.String("port", cfg.ServerPort),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("server_failed_to_start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("server_shutting_down")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server_forced_to_shutdown", zap.Error(err))
	}

	zapLogger.Info("server_exited")
}

func versionInfo(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"version":"1.0.0"}`))
}
