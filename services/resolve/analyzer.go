// Copyright (C) 2025 Civicgraph (oss@civicgraph.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package resolve

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

// DefaultMaxDepth bounds import-graph traversal when no explicit depth is
// configured.
const DefaultMaxDepth = 5

// defaultRouteConcurrency bounds how many routes AnalyzeRoutes expands at
// once.
const defaultRouteConcurrency = 4

// Analyzer produces route dependency reports for one project.
//
// # Thread Safety
//
// Safe for concurrent use. Each analysis builds a fresh resolutionContext
// and the project is only read, never written, so parallel analyses need no
// locking discipline.
type Analyzer struct {
	layout   Layout
	maxDepth int
	logger   *slog.Logger
	tracer   trace.Tracer
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithMaxDepth overrides the traversal depth bound.
func WithMaxDepth(depth int) Option {
	return func(a *Analyzer) {
		if depth > 0 {
			a.maxDepth = depth
		}
	}
}

// WithLogger sets the structured logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(a *Analyzer) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// NewAnalyzer creates an Analyzer for the project described by layout.
func NewAnalyzer(layout Layout, opts ...Option) *Analyzer {
	a := &Analyzer{
		layout:   layout,
		maxDepth: DefaultMaxDepth,
		logger:   slog.Default(),
		tracer:   otel.Tracer("routelens/resolve"),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Layout returns the project layout the analyzer was built with.
func (a *Analyzer) Layout() Layout {
	return a.layout
}

// AnalyzeRoute produces the dependency report for one route.
//
// Description:
//
//	Locates the route's page file, walks its static import graph with a
//	fresh traversal context, then adds the convention-based findings the
//	import graph cannot see: API handler files matched by URL shape and
//	sibling routes adjacent to the page file. All findings are merged,
//	deduplicated, and sorted into one report.
//
// Inputs:
//
//	ctx - Cancellation context. Checked between analysis phases.
//	route - The route string, for example "/marketplace" or "/listing/[id]".
//
// Outputs:
//
//	*Report - The aggregated report. Nil on error.
//	error - ErrPageNotFound when the route has no resolvable page file;
//	this is the only analysis failure. Wrapped ctx.Err() on cancellation.
func (a *Analyzer) AnalyzeRoute(ctx context.Context, route string) (*Report, error) {
	if ctx == nil {
		return nil, ErrNilContext
	}
	if route == "" {
		return nil, ErrEmptyRoute
	}

	ctx, span := a.tracer.Start(ctx, "resolve.analyze_route",
		trace.WithAttributes(attribute.String("route", route)))
	defer span.End()

	pageFile, ok := a.layout.locateRoute(route)
	if !ok {
		a.logger.Warn("no page file for route", slog.String("route", route))
		return nil, fmt.Errorf("route %q: %w", route, ErrPageNotFound)
	}

	rc := newResolutionContext(a.maxDepth)
	found := a.layout.walk(pageFile, 1, rc)

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("analysis of %q cancelled: %w", route, err)
	}

	for _, apiFile := range a.layout.findAPIRoutes(route) {
		found.add(CategoryAPI, apiFile)
	}

	related := make(map[string]struct{})
	for _, sibling := range a.layout.findSiblingRoutes(route, pageFile) {
		related[sibling] = struct{}{}
	}

	report := &Report{
		Route:         route,
		PageFile:      pageFile,
		Components:    sortedList(found[CategoryComponent]),
		Services:      sortedList(found[CategoryService]),
		APIRoutes:     sortedList(found[CategoryAPI]),
		Types:         sortedList(found[CategoryType]),
		Hooks:         sortedList(found[CategoryHook]),
		Utils:         sortedList(found[CategoryUtil]),
		RelatedRoutes: sortedList(related),
	}

	span.SetAttributes(attribute.Int("dependency_count", report.Total()))
	a.logger.Debug("route analyzed",
		slog.String("route", route),
		slog.String("page_file", pageFile),
		slog.Int("files_visited", len(rc.visited)),
		slog.Int("dependencies", report.Total()),
	)
	return report, nil
}

// AnalyzeRoutes analyzes several routes concurrently.
//
// Description:
//
//	Fans whole analyses out over a bounded errgroup. Analyses share no
//	mutable state, so no locking is involved; the first error cancels the
//	remaining work. Results keep the order of the input routes.
//
// Inputs:
//
//	ctx - Cancellation context.
//	routes - Route strings to analyze. Must not be empty.
//
// Outputs:
//
//	[]*Report - One report per input route, in input order.
//	error - The first analysis error, if any.
func (a *Analyzer) AnalyzeRoutes(ctx context.Context, routes []string) ([]*Report, error) {
	if ctx == nil {
		return nil, ErrNilContext
	}
	if len(routes) == 0 {
		return nil, ErrEmptyRoute
	}

	reports := make([]*Report, len(routes))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(defaultRouteConcurrency)

	for i, route := range routes {
		g.Go(func() error {
			report, err := a.AnalyzeRoute(gctx, route)
			if err != nil {
				return err
			}
			reports[i] = report
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}
