// Copyright (C) 2025 Civicgraph (oss@civicgraph.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), configFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, "project:\n  root: /tmp/app\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/app", cfg.Project.Root)
	assert.Equal(t, "@/", cfg.Project.AliasPrefix)
	assert.Equal(t, "src/app", cfg.Project.PagesRoot)
	assert.Equal(t, 5, cfg.Analysis.MaxDepth)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "none", cfg.Telemetry.TraceExporter)
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
project:
  pages_root: app
  api_root: app/api
analysis:
  max_depth: 3
server:
  port: 9090
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "app", cfg.Project.PagesRoot)
	assert.Equal(t, 3, cfg.Analysis.MaxDepth)
	assert.Equal(t, 9090, cfg.Server.Port)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("ROUTELENS_SERVER_PORT", "7070")
	path := writeConfig(t, "analysis:\n  max_depth: 2\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"max_depth too large", "analysis:\n  max_depth: 100\n"},
		{"bad log level", "log:\n  level: loud\n"},
		{"bad exporter", "telemetry:\n  trace_exporter: jaeger\n"},
		{"port out of range", "server:\n  port: 99999\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, Validate(&cfg))
}
