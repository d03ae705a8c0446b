package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/Tekmindlabs/Aivy-Dojo/internal/config"
	"github.com/Tekmindlabs/Aivy-Dojo/internal/llm"
	"github.com/Tekmindlabs/Aivy-Dojo/internal/server"
	"github.com/Tekmindlabs/Aivy-Dojo/internal/store"
	"github.com/Tekmindlabs/Aivy-Dojo/internal/tutor"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the tutoring HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			slog.Info("No .env file found, using environment variables")
		}

		cfg, err := config.Load()
		if err != nil {
			return err
		}

		setupLogging(cfg.LogLevel)

		dbPath := cfg.DBPath
		if dbPath == "" {
			dbPath, err = resolveDBPath(cmd)
			if err != nil {
				return fmt.Errorf("resolve database path: %w", err)
			}
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer func() {
			if closeErr := s.Close(); closeErr != nil {
				slog.Error("failed to close store", "error", closeErr)
			}
		}()

		if err := s.Ping(cmd.Context()); err != nil {
			return fmt.Errorf("database health check: %w", err)
		}
		slog.Info("Database connected", "path", dbPath)

		llmCfg := resolveLLMConfig()
		if err := llmCfg.Validate(); err != nil {
			return err
		}

		provider, err := llm.NewProvider(cmd.Context(), llmCfg, s.EventRepo())
		if err != nil {
			return fmt.Errorf("initialize LLM provider: %w", err)
		}
		slog.Info("LLM provider ready", "provider", llmCfg.Provider, "model", provider.ModelID())

		handler := server.New(server.Deps{
			Chat:           server.NewChatHandler(tutor.NewAgent(provider), s.ProfileRepo(), s.ChatRepo()),
			Health:         server.NewHealthHandler(s),
			Sessions:       s.SessionRepo(),
			AllowedOrigins: cfg.AllowedOrigins,
		})

		srv := &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			slog.Info("Starting server", "port", cfg.Port)
			if serveErr := srv.ListenAndServe(); !errors.Is(serveErr, http.ErrServerClosed) {
				errCh <- serveErr
			}
		}()

		select {
		case err := <-errCh:
			return fmt.Errorf("serve: %w", err)
		case <-ctx.Done():
		}

		slog.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}

		return nil
	},
}

// resolveLLMConfig prefers explicit AIVY_* configuration and falls back
// to probing the standard provider key env vars.
func resolveLLMConfig() llm.Config {
	cfg := llm.ConfigFromEnv()
	if cfg.Validate() == nil {
		return cfg
	}
	if discovered, ok := llm.DiscoverConfig(); ok {
		return discovered
	}
	return cfg
}

func setupLogging(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)
}
