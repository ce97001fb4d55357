// Copyright (C) 2025 Civicgraph (oss@civicgraph.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package server

import (
	"github.com/civicgraph/routelens/services/resolve"
	"github.com/civicgraph/routelens/services/resolve/store"
)

// AnalyzeRequest is the request body for POST /v1/analyze.
type AnalyzeRequest struct {
	// Routes are the route paths to analyze. At least one is required.
	Routes []string `json:"routes"`

	// Save persists each resulting report to the store.
	Save bool `json:"save,omitempty"`
}

// AnalyzeResponse is the response body for POST /v1/analyze.
type AnalyzeResponse struct {
	// Reports holds one report per requested route, in request order.
	Reports []*resolve.Report `json:"reports"`
}

// ListReportsResponse is the response body for GET /v1/reports.
type ListReportsResponse struct {
	// Reports are the stored snapshots, sorted by route.
	Reports []*store.StoredReport `json:"reports"`

	// Count is len(Reports), for convenience.
	Count int `json:"count"`
}

// ErrorResponse is the standard error envelope.
type ErrorResponse struct {
	// Error is the error message.
	Error string `json:"error"`

	// Code is the error code (optional).
	Code string `json:"code,omitempty"`
}

// HealthResponse is the response body for GET /healthz.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}
