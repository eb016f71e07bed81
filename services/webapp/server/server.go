// Copyright (C) 2025 DocuMedic (tactualcoder24@gmail.com)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package server wires the webapp service together and runs it. Both
// the webapp binary and `documedic serve` enter through Run.
package server

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

	"github.com/gin-gonic/gin"

	"github.com/TactualCoder24/final-documedic--sub000/pkg/logging"
	"github.com/TactualCoder24/final-documedic--sub000/services/healthstore"
	"github.com/TactualCoder24/final-documedic--sub000/services/interaction"
	"github.com/TactualCoder24/final-documedic--sub000/services/reminder"
	"github.com/TactualCoder24/final-documedic--sub000/services/webapp/config"
	"github.com/TactualCoder24/final-documedic--sub000/services/webapp/handlers"
	"github.com/TactualCoder24/final-documedic--sub000/services/webapp/routes"
)

// Run starts the webapp service and blocks until SIGINT/SIGTERM, then
// shuts down gracefully. It owns the logger, the store client, the
// reminder schedulers, and the HTTP server.
func Run(cfg config.Config) error {
	logger := logging.New(logging.Config{
		Level:   logging.ParseLevel(cfg.LogLevel),
		LogDir:  cfg.LogDir,
		Service: "webapp",
		JSON:    true,
	})
	defer logger.Close()
	slog.SetDefault(logger.Slog())

	store := healthstore.NewHTTPStore(cfg.StoreURL)

	var ids healthstore.IDGenerator
	if cfg.LegacyTimestampIDs {
		slog.Warn("using legacy timestamp ids, collisions possible under rapid inserts")
		ids = healthstore.TimestampGenerator{}
	}
	gateway := healthstore.NewGateway(store, ids)

	hub := reminder.NewHub()
	schedulers := reminder.NewSet(hub, nil)
	defer schedulers.StopAll()

	var checker interaction.Checker
	if oc, err := interaction.NewOpenAIChecker(); err != nil {
		// The gate fails open on checker errors; an unconfigured checker
		// degrades to commit-without-check rather than blocking startup.
		slog.Warn("interaction checker unavailable, medications will be added without checks", "error", err)
		checker = interaction.CheckerFunc(func(context.Context, []string) (string, error) {
			return "", errors.New("interaction checker not configured")
		})
	} else {
		checker = oc
	}

	deps := handlers.NewDeps(gateway, hub, schedulers, checker)

	router := gin.Default()
	routes.SetupRoutes(router, deps)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("webapp service listening", "port", cfg.Port, "store_url", cfg.StoreURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-quit:
	}
	slog.Info("shutting down webapp service")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("forced shutdown", "error", err)
		return err
	}
	return nil
}
