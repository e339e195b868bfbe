package cli

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	predicatologger "github.com/soundprediction/predicato/pkg/logger"
	"github.com/spf13/cobra"

	"github.com/recallgate/graphmem/internal/api/handlers"
	"github.com/recallgate/graphmem/internal/config"
	"github.com/recallgate/graphmem/internal/graph"
	"github.com/recallgate/graphmem/internal/server"
	"github.com/recallgate/graphmem/internal/telemetry"
	"github.com/recallgate/graphmem/internal/tenant"
)

// ServeCmd returns the serve command
func ServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		Long:  "Start the graphmem API server on the specified port",
		RunE:  runServe,
	}

	cmd.Flags().StringP("port", "p", "8080", "Port to listen on")

	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := predicatologger.NewDefaultLogger(level)
	slog.SetDefault(logger)

	if cfg.SentryDSN != "" {
		shutdownTelemetry, err := telemetry.Init(telemetry.Config{
			DSN:              cfg.SentryDSN,
			Environment:      cfg.Environment,
			TracesSampleRate: cfg.SentryTracesRate,
			Debug:            cfg.Debug,
		})
		if err != nil {
			log.Printf("telemetry init failed (continuing without tracing): %v", err)
		} else {
			defer shutdownTelemetry()
		}
	}

	portFlag, _ := cmd.Flags().GetString("port")
	if portFlag != "" && portFlag != "8080" {
		cfg.Port = portFlag
	}

	graphClient, err := graph.Open(ctx, graph.Options{
		BoltURI:       cfg.BoltURI(),
		User:          cfg.Neo4jUser,
		Password:      cfg.Neo4jPassword,
		Database:      cfg.Neo4jDatabase,
		OpenAIAPIKey:  cfg.OpenAIAPIKey,
		LLMModel:      cfg.LLMModel,
		EmbedderModel: cfg.EmbedderModel,
		Logger:        logger,
	})
	if err != nil {
		return fmt.Errorf("failed to open graph engine: %w", err)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := graphClient.Close(closeCtx); err != nil {
			logger.Error("graph engine close failed", "error", err)
		}
	}()
	logger.Info("graph engine ready", "neo4j", cfg.Neo4jEndpoint())

	handler := handlers.New(graphClient, tenant.NewScoper(cfg.TenantPrefix), cfg.Neo4jEndpoint(), logger)

	router := server.NewRouter(server.RouterConfig{
		APIKey:  cfg.APIKey,
		Handler: handler,
		Logger:  logger,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info("starting server", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	logger.Info("server exited")
	return nil
}
