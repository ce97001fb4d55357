// Copyright (C) 2025 Civicgraph (oss@civicgraph.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civicgraph/routelens/services/resolve"
	"github.com/civicgraph/routelens/services/resolve/store"
)

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()

	root := t.TempDir()
	files := map[string]string{
		"src/app/marketplace/page.tsx": `import Listing from "@/components/Listing";`,
		"src/components/Listing.tsx":   "",
	}
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	analyzer := resolve.NewAnalyzer(resolve.DefaultLayout(root))
	reports, err := store.OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = reports.Close() })

	return NewRouter(NewHandlers(analyzer, reports), false)
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandleAnalyze(t *testing.T) {
	router := testRouter(t)

	w := doJSON(t, router, http.MethodPost, "/v1/analyze", AnalyzeRequest{
		Routes: []string{"/marketplace"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	var resp AnalyzeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Reports, 1)
	assert.Equal(t, "/marketplace", resp.Reports[0].Route)
	assert.Equal(t, []string{"src/components/Listing.tsx"}, resp.Reports[0].Components)
}

func TestHandleAnalyzeValidation(t *testing.T) {
	router := testRouter(t)

	w := doJSON(t, router, http.MethodPost, "/v1/analyze", AnalyzeRequest{})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "EMPTY_ROUTES", resp.Code)
}

func TestHandleAnalyzeUnknownRoute(t *testing.T) {
	router := testRouter(t)

	w := doJSON(t, router, http.MethodPost, "/v1/analyze", AnalyzeRequest{
		Routes: []string{"/absent"},
	})
	require.Equal(t, http.StatusNotFound, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "PAGE_NOT_FOUND", resp.Code)
}

func TestReportLifecycle(t *testing.T) {
	router := testRouter(t)

	// Analyze with save, then read it back, then delete it.
	w := doJSON(t, router, http.MethodPost, "/v1/analyze", AnalyzeRequest{
		Routes: []string{"/marketplace"},
		Save:   true,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/v1/reports/marketplace", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var stored store.StoredReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stored))
	assert.Equal(t, "/marketplace", stored.Report.Route)
	assert.NotEmpty(t, stored.ID)

	w = doJSON(t, router, http.MethodGet, "/v1/reports", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list ListReportsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Equal(t, 1, list.Count)

	w = doJSON(t, router, http.MethodDelete, "/v1/reports/marketplace", nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, router, http.MethodGet, "/v1/reports/marketplace", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleGetReportMissing(t *testing.T) {
	router := testRouter(t)

	w := doJSON(t, router, http.MethodGet, "/v1/reports/never-saved", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "REPORT_NOT_FOUND", resp.Code)
}

func TestHandleHealth(t *testing.T) {
	router := testRouter(t)

	w := doJSON(t, router, http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestMetricsEndpoint(t *testing.T) {
	router := testRouter(t)

	w := doJSON(t, router, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "go_goroutines")
}
