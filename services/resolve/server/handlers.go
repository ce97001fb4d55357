// Copyright (C) 2025 Civicgraph (oss@civicgraph.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package server exposes the route analyzer over HTTP.
//
// The API is a thin layer over the resolve and store packages: analyze
// routes on demand, and read back previously saved reports. It exists so
// editor plugins and CI jobs can query the analyzer without shelling out.
package server

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/civicgraph/routelens/services/resolve"
	"github.com/civicgraph/routelens/services/resolve/store"
)

// Handlers contains the HTTP handlers for the analysis API.
//
// Thread Safety: Handlers is safe for concurrent use.
type Handlers struct {
	analyzer *resolve.Analyzer
	reports  *store.Store
}

// NewHandlers creates handlers for the analysis API.
//
// Inputs:
//
//	analyzer - The route analyzer. Must not be nil.
//	reports - The report store. May be nil; report endpoints then return 503.
func NewHandlers(analyzer *resolve.Analyzer, reports *store.Store) *Handlers {
	return &Handlers{
		analyzer: analyzer,
		reports:  reports,
	}
}

// HandleAnalyze handles POST /v1/analyze.
//
// Description:
//
//	Analyzes one or more routes and returns their dependency reports in
//	request order. With save=true, each report is also persisted.
//
// Response:
//
//	200 OK: AnalyzeResponse
//	400 Bad Request: Validation error
//	404 Not Found: A requested route has no page file
//	500 Internal Server Error: Processing error
//
// Thread Safety: This method is safe for concurrent use.
func (h *Handlers) HandleAnalyze(c *gin.Context) {
	requestID := getOrCreateRequestID(c)
	logger := slog.With("request_id", requestID, "handler", "HandleAnalyze")
	start := time.Now()

	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	if len(req.Routes) == 0 {
		logger.Warn("No routes in request")
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "At least one route is required",
			Code:  "EMPTY_ROUTES",
		})
		return
	}

	reports, err := h.analyzer.AnalyzeRoutes(c.Request.Context(), req.Routes)
	if err != nil {
		statusCode := http.StatusInternalServerError
		errCode := "ANALYZE_ERROR"

		if errors.Is(err, resolve.ErrPageNotFound) {
			statusCode = http.StatusNotFound
			errCode = "PAGE_NOT_FOUND"
		} else if errors.Is(err, resolve.ErrEmptyRoute) {
			statusCode = http.StatusBadRequest
			errCode = "EMPTY_ROUTE"
		}

		analysesTotal.WithLabelValues("error").Inc()
		logger.Error("Analysis failed", "error", err)
		c.JSON(statusCode, ErrorResponse{
			Error: err.Error(),
			Code:  errCode,
		})
		return
	}

	if req.Save && h.reports != nil {
		for _, report := range reports {
			if _, err := h.reports.Put(c.Request.Context(), report); err != nil {
				logger.Error("Failed to save report", "route", report.Route, "error", err)
				c.JSON(http.StatusInternalServerError, ErrorResponse{
					Error: err.Error(),
					Code:  "STORE_ERROR",
				})
				return
			}
		}
	}

	analysesTotal.WithLabelValues("ok").Add(float64(len(reports)))
	analysisDuration.Observe(time.Since(start).Seconds())
	for _, report := range reports {
		dependenciesFound.Observe(float64(report.Total()))
	}

	logger.Info("Analysis completed",
		"routes", len(req.Routes),
		"duration_ms", time.Since(start).Milliseconds())

	c.JSON(http.StatusOK, AnalyzeResponse{Reports: reports})
}

// HandleGetReport handles GET /v1/reports/*route.
//
// Response:
//
//	200 OK: store.StoredReport
//	404 Not Found: No stored report for the route
//
// Thread Safety: This method is safe for concurrent use.
func (h *Handlers) HandleGetReport(c *gin.Context) {
	requestID := getOrCreateRequestID(c)
	logger := slog.With("request_id", requestID, "handler", "HandleGetReport")

	if h.reports == nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{
			Error: "Report store is not configured",
			Code:  "STORE_DISABLED",
		})
		return
	}

	route := c.Param("route")
	stored, err := h.reports.Get(c.Request.Context(), route)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: err.Error(),
				Code:  "REPORT_NOT_FOUND",
			})
			return
		}
		logger.Error("Failed to load report", "route", route, "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: err.Error(),
			Code:  "STORE_ERROR",
		})
		return
	}

	c.JSON(http.StatusOK, stored)
}

// HandleListReports handles GET /v1/reports.
//
// Thread Safety: This method is safe for concurrent use.
func (h *Handlers) HandleListReports(c *gin.Context) {
	requestID := getOrCreateRequestID(c)
	logger := slog.With("request_id", requestID, "handler", "HandleListReports")

	if h.reports == nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{
			Error: "Report store is not configured",
			Code:  "STORE_DISABLED",
		})
		return
	}

	reports, err := h.reports.List(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list reports", "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: err.Error(),
			Code:  "STORE_ERROR",
		})
		return
	}

	c.JSON(http.StatusOK, ListReportsResponse{
		Reports: reports,
		Count:   len(reports),
	})
}

// HandleDeleteReport handles DELETE /v1/reports/*route.
//
// Deleting an absent route succeeds with 204.
//
// Thread Safety: This method is safe for concurrent use.
func (h *Handlers) HandleDeleteReport(c *gin.Context) {
	requestID := getOrCreateRequestID(c)
	logger := slog.With("request_id", requestID, "handler", "HandleDeleteReport")

	if h.reports == nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{
			Error: "Report store is not configured",
			Code:  "STORE_DISABLED",
		})
		return
	}

	route := c.Param("route")
	if err := h.reports.Delete(c.Request.Context(), route); err != nil {
		logger.Error("Failed to delete report", "route", route, "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: err.Error(),
			Code:  "STORE_ERROR",
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// HandleHealth handles GET /healthz.
func (h *Handlers) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:  "ok",
		Service: "routelens",
	})
}

// getOrCreateRequestID returns the inbound X-Request-ID or mints one.
func getOrCreateRequestID(c *gin.Context) string {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = uuid.NewString()
	}
	c.Header("X-Request-ID", requestID)
	return requestID
}
