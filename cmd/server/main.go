package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"stockmcp/internal/cache"
	"stockmcp/internal/config"
	"stockmcp/internal/finnhub"
	"stockmcp/internal/handlers"
	"stockmcp/internal/mcp"
	"stockmcp/internal/nlp"
)

func main() {
	// A .env file is optional; environment variables win.
	_ = godotenv.Load()

	cfg, err := config.LoadFromEnv()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	logLevel := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("mcp_service_starting",
		"port", cfg.Port,
		"timeout_ms", cfg.TimeoutMS,
		"cache_enabled", cfg.RedisURL != "",
		"nlp_enabled", cfg.OpenAIAPIKey != "",
	)

	// Optional Redis cache for raw Finnhub responses.
	var responseCache *cache.Cache
	if cfg.RedisURL != "" {
		responseCache, err = cache.New(cfg.RedisURL, cfg.RedisPassword, logger)
		if err != nil {
			logger.Error("failed to create cache", "error", err)
			os.Exit(1)
		}
		defer responseCache.Close()
		logger.Info("cache_initialized")
	}

	gatewayOpts := []finnhub.Option{
		finnhub.WithCache(responseCache, cfg.QuoteCacheTTL(), cfg.NewsCacheTTL()),
	}
	if cfg.FinnhubBaseURL != "" {
		gatewayOpts = append(gatewayOpts, finnhub.WithBaseURL(cfg.FinnhubBaseURL))
	}

	gateway, err := finnhub.NewClient(cfg.FinnhubAPIKey, gatewayOpts...)
	if err != nil {
		logger.Error("failed to create finnhub client", "error", err)
		os.Exit(1)
	}

	registry, err := mcp.NewRegistry()
	if err != nil {
		logger.Error("failed to build tool registry", "error", err)
		os.Exit(1)
	}

	executor := mcp.NewToolExecutor(gateway)
	sessions := mcp.NewSessionStore()
	dispatcher := mcp.NewDispatcher(registry, executor, sessions, logger)

	// The completion capability is optional; without it /ask answers with a
	// fixed unavailable response.
	var completer nlp.Completer
	if cfg.OpenAIAPIKey != "" {
		oc, err := nlp.NewOpenAICompleter(cfg.OpenAIAPIKey, cfg.OpenAIModel)
		if err != nil {
			logger.Error("failed to create completer", "error", err)
			os.Exit(1)
		}
		completer = oc
	}
	frontend := nlp.NewFrontEnd(completer, registry, executor, logger)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(handlers.LoggingMiddleware(logger))
	r.Use(handlers.TimeoutMiddleware(cfg.Timeout(), logger))

	r.Get("/health", handlers.HealthCheckHandler(logger))
	r.Post("/mcp", handlers.NewMCPHandler(dispatcher, logger).ServeHTTP)
	r.Post("/ask", handlers.NewAskHandler(frontend, logger).ServeHTTP)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.Timeout() + 5*time.Second,
	}

	go func() {
		logger.Info("mcp_server_listening", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server_error", "error", err)
			os.Exit(1)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan

	logger.Info("shutdown_signal_received", "signal", sig.String())
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server_shutdown_error", "error", err)
	}

	logger.Info("mcp_service_stopped")
}
