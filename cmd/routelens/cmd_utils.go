// Copyright (C) 2025 Civicgraph (oss@civicgraph.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/civicgraph/routelens/cmd/routelens/config"
	"github.com/civicgraph/routelens/pkg/logging"
	"github.com/civicgraph/routelens/services/resolve"
	"github.com/civicgraph/routelens/services/resolve/store"
)

// loadConfig loads the effective configuration, applying the --project
// flag on top of the file.
func loadConfig() (*config.RouteLensConfig, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if projectRoot != "" {
		cfg.Project.Root = projectRoot
	}
	if cfg.Project.Root == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("could not determine the working directory: %w", err)
		}
		cfg.Project.Root = cwd
	}
	return cfg, nil
}

// newLogger builds the CLI logger from config.
func newLogger(cfg *config.RouteLensConfig) *logging.Logger {
	return logging.New(logging.Config{
		Level:   logging.ParseLevel(cfg.Log.Level),
		LogDir:  cfg.Log.Dir,
		Service: "cli",
		JSON:    cfg.Log.JSON,
	})
}

// buildLayout maps the project config onto a resolver layout.
func buildLayout(cfg *config.RouteLensConfig) resolve.Layout {
	layout := resolve.DefaultLayout(cfg.Project.Root)
	layout.AliasPrefix = cfg.Project.AliasPrefix
	layout.SourceRoot = cfg.Project.SourceRoot
	layout.PagesRoot = cfg.Project.PagesRoot
	layout.APIRoot = cfg.Project.APIRoot
	if cfg.Project.PageBase != "" {
		layout.PageBase = cfg.Project.PageBase
	}
	if len(cfg.Project.SkipDirs) > 0 {
		layout.SkipDirs = cfg.Project.SkipDirs
	}
	return layout
}

// newAnalyzer builds an analyzer from config plus the --depth flag.
func newAnalyzer(cfg *config.RouteLensConfig, logger *logging.Logger) *resolve.Analyzer {
	depth := cfg.Analysis.MaxDepth
	if maxDepth > 0 {
		depth = maxDepth
	}
	return resolve.NewAnalyzer(buildLayout(cfg),
		resolve.WithMaxDepth(depth),
		resolve.WithLogger(logger.Slog()),
	)
}

// openStore opens the report store at the configured path.
func openStore(cfg *config.RouteLensConfig, logger *logging.Logger) (*store.Store, error) {
	storeCfg := store.DefaultConfig(expandHome(cfg.Store.Path))
	storeCfg.SyncWrites = cfg.Store.SyncWrites
	storeCfg.Logger = logger.Slog()
	return store.Open(storeCfg)
}

// expandHome expands a leading ~ to the user's home directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
