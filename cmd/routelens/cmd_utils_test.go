// Copyright (C) 2025 Civicgraph (oss@civicgraph.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civicgraph/routelens/cmd/routelens/config"
)

func TestBuildLayout(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Project.Root = "/tmp/app"
	cfg.Project.PagesRoot = "app"
	cfg.Project.APIRoot = "app/api"
	cfg.Project.SkipDirs = []string{"node_modules", "dist"}

	layout := buildLayout(&cfg)
	assert.Equal(t, "/tmp/app", layout.Root)
	assert.Equal(t, "app", layout.PagesRoot)
	assert.Equal(t, "app/api", layout.APIRoot)
	assert.Equal(t, []string{"node_modules", "dist"}, layout.SkipDirs)
	assert.Equal(t, "page", layout.PageBase)
}

func TestBuildLayoutKeepsDefaultSkipDirs(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Project.Root = "/tmp/app"
	cfg.Project.SkipDirs = nil

	layout := buildLayout(&cfg)
	assert.Equal(t, []string{"node_modules", ".next"}, layout.SkipDirs)
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".routelens/reports"), expandHome("~/.routelens/reports"))
	assert.Equal(t, "/var/lib/routelens", expandHome("/var/lib/routelens"))
}
