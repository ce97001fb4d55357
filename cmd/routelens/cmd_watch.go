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

	"github.com/spf13/cobra"

	"github.com/civicgraph/routelens/pkg/ux"
	"github.com/civicgraph/routelens/services/resolve/watch"
)

// runWatch handles the watch command: analyze once, then re-analyze on
// every debounced batch of source changes until interrupted.
func runWatch(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		ux.Error(err.Error())
		os.Exit(1)
	}

	logger := newLogger(cfg)
	defer logger.Close()

	analyzer := newAnalyzer(cfg, logger)
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	reanalyze := func(trigger string) {
		reports, err := analyzer.AnalyzeRoutes(ctx, args)
		if err != nil {
			ux.Warning(fmt.Sprintf("%s: %v", trigger, err))
			return
		}
		for _, report := range reports {
			ux.Summary(report.Route, report.Total())
		}
	}

	opts := watch.DefaultOptions()
	opts.SkipDirs = analyzer.Layout().SkipDirs

	watcher, err := watch.New(cfg.Project.Root, func(changes []watch.Change) {
		logger.Debug("source changes detected", "count", len(changes))
		for _, change := range changes {
			ux.Muted(fmt.Sprintf("%s %s", change.Op, change.Path))
		}
		reanalyze("re-analysis failed")
	}, &opts)
	if err != nil {
		ux.Error("failed to create watcher: " + err.Error())
		os.Exit(1)
	}
	defer watcher.Stop()

	if err := watcher.Start(ctx); err != nil {
		ux.Error("failed to start watcher: " + err.Error())
		os.Exit(1)
	}

	ux.Banner(
		"routelens watch",
		fmt.Sprintf("project: %s", cfg.Project.Root),
		fmt.Sprintf("routes: %v", args),
	)
	reanalyze("initial analysis failed")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ux.Info("stopping watch")
}
