// Copyright (C) 2025 Civicgraph (oss@civicgraph.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/civicgraph/routelens/pkg/ux"
	"github.com/civicgraph/routelens/services/resolve"
)

// printReport renders one report to stdout.
func printReport(report *resolve.Report, asJSON bool) error {
	if asJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(report)
	}

	ux.Title(report.Route)
	ux.Muted("page: " + report.PageFile)
	fmt.Println()

	ux.Section("components", report.Components)
	ux.Section("services", report.Services)
	ux.Section("api routes", report.APIRoutes)
	ux.Section("types", report.Types)
	ux.Section("hooks", report.Hooks)
	ux.Section("utils", report.Utils)
	ux.Section("related routes", report.RelatedRoutes)

	if report.Empty() {
		ux.Info("no local dependencies found")
	}
	ux.Summary(report.Route, report.Total())
	printNextSteps(report)
	return nil
}

// printNextSteps renders the suggested review checklist after a report.
func printNextSteps(report *resolve.Report) {
	fmt.Println()
	ux.Muted("next steps:")
	if len(report.Components)+len(report.Services) > 0 {
		ux.Muted(fmt.Sprintf("  review the %d component/service file(s) above before changing this route",
			len(report.Components)+len(report.Services)))
	}
	if len(report.APIRoutes) > 0 {
		ux.Muted(fmt.Sprintf("  check callers of the %d API route file(s); they may be shared with other pages",
			len(report.APIRoutes)))
	}
	if len(report.RelatedRoutes) > 0 {
		ux.Muted(fmt.Sprintf("  related routes share this page's directory: %v", report.RelatedRoutes))
	}
	if report.Empty() {
		ux.Muted("  this page stands alone; it is safe to edit in isolation")
	}
}

// printReports renders several reports, JSON as one array.
func printReports(reports []*resolve.Report, asJSON bool) error {
	if asJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(reports)
	}
	for i, report := range reports {
		if i > 0 {
			fmt.Println()
		}
		if err := printReport(report, false); err != nil {
			return err
		}
	}
	return nil
}
