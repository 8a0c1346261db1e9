// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdiddy/arxiv-scout/internal/arxiv"
	"github.com/pdiddy/arxiv-scout/internal/history"
	"github.com/pdiddy/arxiv-scout/internal/logger"
	"github.com/pdiddy/arxiv-scout/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server for the web frontend",
	Long: `Serve starts the JSON HTTP API: POST /search runs the search pipeline,
GET / reports health, and GET /metrics exposes Prometheus metrics. CORS is
configured for the web frontend origin.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "TCP port to listen on (default 8000, or PORT env)")
	serveCmd.Flags().String("env", "dev", "environment: dev or prod (controls log format)")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	if port, _ := cmd.Flags().GetInt("port"); port != 0 {
		cfg.Server.Port = port
	}

	env, _ := cmd.Flags().GetString("env")
	log, err := logger.New(env, cfg.Server.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	var hist *history.Store
	if cfg.History.Enabled {
		hist, err = history.NewStore(cfg.History)
		if err != nil {
			log.Warn("history store unavailable, continuing without it", zap.Error(err))
		} else {
			defer hist.Close()
		}
	}

	client := arxiv.NewClient(cfg.Search, log)
	srv := server.New(client, hist, log)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      srv.Router(cfg.Server.CORSOrigins),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Info("starting arxiv-scout API server",
		zap.String("version", version),
		zap.Int("port", cfg.Server.Port),
		zap.Strings("cors_origins", cfg.Server.CORSOrigins),
	)

	errCh := make(chan error, 1)
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case sig := <-stop:
		log.Info("shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return httpServer.Shutdown(ctx)
}
