// Copyright (C) 2025 Civicgraph (oss@civicgraph.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/civicgraph/routelens/pkg/ux"
	"github.com/civicgraph/routelens/services/resolve/store"
)

// runListReports handles reports list.
func runListReports(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		ux.Error(err.Error())
		os.Exit(1)
	}

	logger := newLogger(cfg)
	defer logger.Close()

	s, err := openStore(cfg, logger)
	if err != nil {
		ux.Error("failed to open the report store: " + err.Error())
		os.Exit(1)
	}
	defer s.Close()

	reports, err := s.List(cmd.Context())
	if err != nil {
		ux.Error("failed to list reports: " + err.Error())
		os.Exit(1)
	}

	if len(reports) == 0 {
		ux.Info("no saved reports")
		return
	}
	for _, stored := range reports {
		ux.Info(fmt.Sprintf("%s  %d dependencies  saved %s",
			stored.Report.Route,
			stored.Report.Total(),
			stored.SavedAt.Format("2006-01-02 15:04"),
		))
	}
}

// runShowReport handles reports show.
func runShowReport(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		ux.Error(err.Error())
		os.Exit(1)
	}

	logger := newLogger(cfg)
	defer logger.Close()

	s, err := openStore(cfg, logger)
	if err != nil {
		ux.Error("failed to open the report store: " + err.Error())
		os.Exit(1)
	}
	defer s.Close()

	stored, err := s.Get(cmd.Context(), args[0])
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ux.Warning(err.Error())
		} else {
			ux.Error("failed to load the report: " + err.Error())
		}
		os.Exit(1)
	}

	ux.Muted("saved " + stored.SavedAt.Format("2006-01-02 15:04:05"))
	if err := printReport(stored.Report, jsonOutput); err != nil {
		ux.Error("failed to render the report: " + err.Error())
		os.Exit(1)
	}
}

// runDeleteReport handles reports delete.
func runDeleteReport(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		ux.Error(err.Error())
		os.Exit(1)
	}

	logger := newLogger(cfg)
	defer logger.Close()

	s, err := openStore(cfg, logger)
	if err != nil {
		ux.Error("failed to open the report store: " + err.Error())
		os.Exit(1)
	}
	defer s.Close()

	if err := s.Delete(cmd.Context(), args[0]); err != nil {
		ux.Error("failed to delete the report: " + err.Error())
		os.Exit(1)
	}
	ux.Success("deleted report for " + args[0])
}
