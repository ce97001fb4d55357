// Copyright (C) 2025 Civicgraph (oss@civicgraph.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package resolve

import "sort"

// Report is the aggregated dependency report for one route.
//
// Every list is duplicate-free and lexicographically sorted, so re-running
// the analysis on an unchanged filesystem yields a byte-identical report.
// An empty list means "nothing found", which deliberately does not
// distinguish "no further dependencies" from "failed to read a dependency";
// the tool optimizes for best-effort completeness over strict correctness.
type Report struct {
	// Route is the analyzed route string.
	Route string `json:"route"`

	// PageFile is the project-relative path of the route's page file.
	PageFile string `json:"page_file"`

	// Components are UI component files the route transitively imports.
	Components []string `json:"components"`

	// Services are business-logic service files.
	Services []string `json:"services"`

	// APIRoutes are API handler files, both statically imported and
	// convention-matched by URL shape.
	APIRoutes []string `json:"api_routes"`

	// Types are type definition files.
	Types []string `json:"types"`

	// Hooks are hook files.
	Hooks []string `json:"hooks"`

	// Utils are utility and lib files.
	Utils []string `json:"utils"`

	// RelatedRoutes are sibling routes sharing the page file's parent
	// directory. They share navigation context, not import edges.
	RelatedRoutes []string `json:"related_routes"`
}

// Total returns the number of dependency paths across all categories,
// excluding related routes.
func (r *Report) Total() int {
	return len(r.Components) + len(r.Services) + len(r.APIRoutes) +
		len(r.Types) + len(r.Hooks) + len(r.Utils)
}

// Empty reports whether the analysis found nothing beyond the page file.
func (r *Report) Empty() bool {
	return r.Total() == 0 && len(r.RelatedRoutes) == 0
}

// sortedList renders a string set as a sorted, duplicate-free slice.
// Returns an empty (non-nil) slice for empty sets so reports always
// marshal category fields as [] rather than null.
func sortedList(set map[string]struct{}) []string {
	list := make([]string, 0, len(set))
	for item := range set {
		list = append(list, item)
	}
	sort.Strings(list)
	return list
}
