// Copyright (C) 2025 Civicgraph (oss@civicgraph.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package resolve discovers the local source files an application route
// transitively depends on.
//
// Given a route string (for example "/marketplace"), the analyzer locates the
// route's page file, walks its static import graph, and produces a categorized
// report of everything the route needs to ship: UI components, business-logic
// services, API endpoints, type definitions, hooks, and utilities. The report
// is what an operator reviews before marking a route "draft" so that nothing
// still shipping silently breaks.
//
// # Best-Effort Semantics
//
// Exactly one condition is fatal: the route has no resolvable page file
// (ErrPageNotFound). Every other miss, whether an unreadable source file, an import
// that resolves to nothing, or a missing directory, degrades silently to an
// empty branch of the result. The consumer is a human deciding what to
// review, not a build system that must fail loudly.
//
// # What This Is Not
//
// This is not a bundler-grade dependency analyzer. It does not execute or
// type-check source, does not resolve barrel re-exports semantically, does
// not distinguish type-only from value imports, and makes no completeness
// guarantee for runtime-computed import expressions.
//
// # Thread Safety
//
// An Analyzer is safe for concurrent use. Each analysis builds its own
// traversal state and the project filesystem is only ever read, so
// independent route analyses never interfere.
package resolve

import "errors"

// Sentinel errors for route analysis.
var (
	// ErrPageNotFound is returned when a route has no resolvable page file.
	// This is the only fatal analysis error; callers should surface it to
	// the operator and abort the invocation.
	ErrPageNotFound = errors.New("no page file found for route")

	// ErrEmptyRoute is returned when the route string is empty.
	ErrEmptyRoute = errors.New("route must not be empty")

	// ErrNilContext is returned when a nil context.Context is passed to an
	// operation that threads cancellation.
	ErrNilContext = errors.New("context must not be nil")
)
