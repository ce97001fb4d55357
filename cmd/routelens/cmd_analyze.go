// Copyright (C) 2025 Civicgraph (oss@civicgraph.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/civicgraph/routelens/cmd/routelens/config"
	"github.com/civicgraph/routelens/pkg/logging"
	"github.com/civicgraph/routelens/pkg/ux"
	"github.com/civicgraph/routelens/services/resolve"
)

// runAnalyze handles the analyze command.
func runAnalyze(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		ux.Error(err.Error())
		os.Exit(1)
	}

	logger := newLogger(cfg)
	defer logger.Close()

	analyzer := newAnalyzer(cfg, logger)

	reports, err := analyzer.AnalyzeRoutes(cmd.Context(), args)
	if err != nil {
		if errors.Is(err, resolve.ErrPageNotFound) {
			ux.Error(err.Error())
			ux.Muted(fmt.Sprintf("looked under %s for a %s file",
				cfg.Project.PagesRoot, analyzer.Layout().PageBase+".tsx"))
		} else {
			ux.Error("analysis failed: " + err.Error())
		}
		os.Exit(1)
	}

	if saveReport {
		if err := saveReports(cmd.Context(), cfg, logger, reports); err != nil {
			ux.Error("failed to save reports: " + err.Error())
			os.Exit(1)
		}
	}

	if err := printReports(reports, jsonOutput); err != nil {
		ux.Error("failed to render reports: " + err.Error())
		os.Exit(1)
	}

	if saveReport && !jsonOutput {
		ux.Success(fmt.Sprintf("saved %d report(s)", len(reports)))
	}
}

func saveReports(ctx context.Context, cfg *config.RouteLensConfig, logger *logging.Logger, reports []*resolve.Report) error {
	s, err := openStore(cfg, logger)
	if err != nil {
		return err
	}
	defer s.Close()

	for _, report := range reports {
		if _, err := s.Put(ctx, report); err != nil {
			return err
		}
	}
	return nil
}
