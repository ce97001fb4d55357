// Copyright (C) 2025 Civicgraph (oss@civicgraph.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/civicgraph/routelens/pkg/ux"
	"github.com/civicgraph/routelens/services/resolve/server"
	"github.com/civicgraph/routelens/services/resolve/telemetry"
)

// runServe handles the serve command.
func runServe(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		ux.Error(err.Error())
		os.Exit(1)
	}

	logger := newLogger(cfg)
	defer logger.Close()

	telemetryCfg := telemetry.DefaultConfig()
	telemetryCfg.TraceExporter = cfg.Telemetry.TraceExporter
	shutdown, err := telemetry.Init(cmd.Context(), telemetryCfg)
	if err != nil {
		ux.Error("failed to initialize telemetry: " + err.Error())
		os.Exit(1)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			logger.Warn("telemetry shutdown failed", "error", err)
		}
	}()

	analyzer := newAnalyzer(cfg, logger)

	reports, err := openStore(cfg, logger)
	if err != nil {
		ux.Error("failed to open the report store: " + err.Error())
		os.Exit(1)
	}
	defer reports.Close()

	handlers := server.NewHandlers(analyzer, reports)
	router := server.NewRouter(handlers, serveDebug || cfg.Server.Debug)

	port := cfg.Server.Port
	if servePort > 0 {
		port = servePort
	}

	// Close the store cleanly on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		logger.Info("shutting down routelens server")
		_ = reports.Close()
		os.Exit(0)
	}()

	addr := fmt.Sprintf(":%d", port)
	ux.Banner(
		"routelens serve",
		fmt.Sprintf("project: %s", cfg.Project.Root),
		fmt.Sprintf("listening on %s", addr),
	)
	logger.Info("starting routelens server", "address", addr)
	if err := router.Run(addr); err != nil {
		logger.Error("failed to start server", "error", err)
		os.Exit(1)
	}
}
