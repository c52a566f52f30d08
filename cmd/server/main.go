package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"postforge-backend/internal/config"
	"postforge-backend/internal/handlers"
	"postforge-backend/internal/llm"
	"postforge-backend/internal/logging"
	"postforge-backend/internal/metrics"
	"postforge-backend/internal/router"
	"postforge-backend/internal/services"
	"postforge-backend/internal/session"
	"postforge-backend/internal/websocket"
)

func main() {
	// ──── Step 1: Load Configuration ────
	cfg := config.Load()

	logger := logging.New(cfg.LogLevel, cfg.Environment)
	logger.Info().
		Str("environment", cfg.Environment).
		Str("llm_provider", cfg.LLMProvider).
		Str("llm_model", cfg.LLMModel).
		Msg("starting PostForge backend")

	// ──── Step 2: Initialize Metrics ────
	m := metrics.NewMetrics()

	// ──── Step 3: Initialize LLM Client ────
	apiKey := cfg.OpenAIAPIKey
	if cfg.LLMProvider == "gemini" {
		apiKey = cfg.GeminiAPIKey
	}
	llmClient, err := llm.New(llm.Settings{
		Provider: cfg.LLMProvider,
		APIKey:   apiKey,
		BaseURL:  cfg.LLMBaseURL,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("llm client initialization failed")
	}
	if g, ok := llmClient.(*llm.Gemini); ok {
		defer g.Close()
	}
	logger.Info().Msg("llm client initialized")

	// ──── Step 4: Initialize Session Store ────
	store := session.NewStore(m)

	// ──── Step 5: Start WebSocket Hub ────
	wsHub := websocket.NewHub(store, logger)
	logger.Info().Msg("websocket hub started")

	// ──── Step 6: Initialize Services and Handlers ────
	runBudget := time.Duration(cfg.LLMTimeoutSecs) * time.Second
	generator := services.NewGeneratorService(llmClient, cfg.LLMModel, logger, m, wsHub)
	sessionHandler := handlers.NewSessionHandler(store, generator, wsHub, runBudget)

	// ──── Step 7: Start HTTP Server ────
	r := router.New(sessionHandler, wsHub, cfg.CORSAllowedOrigins)

	// Generation runs synchronously inside POST /generate, so the write
	// timeout must outlast the pipeline's run budget.
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: runBudget + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info().Msg("shutting down")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	logger.Info().
		Str("addr", fmt.Sprintf("http://localhost:%s", cfg.Port)).
		Str("api", fmt.Sprintf("http://localhost:%s/api/v1", cfg.Port)).
		Str("ws", fmt.Sprintf("ws://localhost:%s/api/v1/ws", cfg.Port)).
		Msg("PostForge backend ready")

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		logger.Fatal().Err(err).Msg("server error")
	}
}
