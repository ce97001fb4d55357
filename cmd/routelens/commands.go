// Copyright (C) 2025 Civicgraph (oss@civicgraph.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"github.com/spf13/cobra"

	"github.com/civicgraph/routelens/pkg/ux"
)

// --- Global Command Variables ---
var (
	cfgFile     string
	projectRoot string
	maxDepth    int
	jsonOutput  bool
	saveReport  bool
	plainOutput bool
	servePort   int
	serveDebug  bool

	rootCmd = &cobra.Command{
		Use:   "routelens",
		Short: "A cli to analyze route dependencies in app-router web projects",
		Long: `Routelens statically resolves the local source files a route
				depends on: components, services, API routes, types, hooks,
				and utils.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if plainOutput {
				ux.SetPlain(true)
			}
		},
	}

	// --- Analysis ---
	analyzeCmd = &cobra.Command{
		Use:   "analyze [route...]",
		Short: "Analyze the dependency graph behind one or more routes",
		Args:  cobra.MinimumNArgs(1),
		Run:   runAnalyze, // Defined in cmd_analyze.go
	}

	watchCmd = &cobra.Command{
		Use:   "watch [route...]",
		Short: "Re-analyze routes whenever project source files change",
		Args:  cobra.MinimumNArgs(1),
		Run:   runWatch, // Defined in cmd_watch.go
	}

	// --- Server ---
	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Serve the analysis API over HTTP",
		Run:   runServe, // Defined in cmd_serve.go
	}

	// --- Reports ---
	reportsCmd = &cobra.Command{
		Use:   "reports",
		Short: "Manage saved dependency reports",
	}
	listReportsCmd = &cobra.Command{
		Use:   "list",
		Short: "List all saved reports",
		Run:   runListReports, // Defined in cmd_reports.go
	}
	showReportCmd = &cobra.Command{
		Use:   "show [route]",
		Short: "Show the saved report for a route",
		Args:  cobra.ExactArgs(1),
		Run:   runShowReport, // Defined in cmd_reports.go
	}
	deleteReportCmd = &cobra.Command{
		Use:   "delete [route]",
		Short: "Delete the saved report for a route",
		Args:  cobra.ExactArgs(1),
		Run:   runDeleteReport, // Defined in cmd_reports.go
	}
)

// init runs when the Go program starts
func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"Config file (default ~/.routelens/routelens.yaml)")
	rootCmd.PersistentFlags().StringVar(&projectRoot, "project", "",
		"Project root directory (default: current directory)")
	rootCmd.PersistentFlags().BoolVar(&plainOutput, "plain", false,
		"Plain, unstyled output for scripting")

	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().IntVar(&maxDepth, "depth", 0,
		"Maximum transitive resolution depth (0 uses the configured value)")
	analyzeCmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit reports as JSON")
	analyzeCmd.Flags().BoolVar(&saveReport, "save", false, "Persist reports to the local store")

	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().IntVar(&maxDepth, "depth", 0,
		"Maximum transitive resolution depth (0 uses the configured value)")

	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Listen port (0 uses the configured value)")
	serveCmd.Flags().BoolVar(&serveDebug, "debug", false, "Enable request logging")

	rootCmd.AddCommand(reportsCmd)
	reportsCmd.AddCommand(listReportsCmd)
	reportsCmd.AddCommand(showReportCmd)
	reportsCmd.AddCommand(deleteReportCmd)
	showReportCmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the report as JSON")
}
