// Copyright (C) 2025 Civicgraph (oss@civicgraph.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package resolve

import (
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Layout captures the fixed directory-layout facts of the analyzed project.
//
// These are configuration constants, not values the analyzer computes: the
// alias prefix the project maps to its source root, and where pages and API
// routes live. All non-Root fields are project-root-relative, slash-separated.
type Layout struct {
	// Root is the absolute path of the project on disk. It is the only
	// field that touches the real filesystem; every path the analyzer
	// reports is relative to it.
	Root string

	// AliasPrefix is the symbolic import prefix remapped to SourceRoot,
	// for example "@/".
	AliasPrefix string

	// SourceRoot is the directory the alias prefix rewrites to, for
	// example "src".
	SourceRoot string

	// PagesRoot is the directory route page files live under, for
	// example "src/app".
	PagesRoot string

	// APIRoot is the directory API route handlers live under, for
	// example "src/app/api".
	APIRoot string

	// PageBase is the page file basename without extension, for
	// example "page".
	PageBase string

	// SkipDirs are directory names the scanner never descends into, on
	// top of dot-prefixed directories. Typically the framework's
	// dependency cache and build output.
	SkipDirs []string
}

// DefaultLayout returns the layout of a stock app-router project.
func DefaultLayout(root string) Layout {
	return Layout{
		Root:        root,
		AliasPrefix: "@/",
		SourceRoot:  "src",
		PagesRoot:   "src/app",
		APIRoot:     "src/app/api",
		PageBase:    "page",
		SkipDirs:    []string{"node_modules", ".next"},
	}
}

// pageExtensions is the page file candidate order: primary then fallback.
var pageExtensions = []string{".tsx", ".ts"}

// moduleSuffixes is the resolver's candidate-suffix order. First existing
// file wins; do not reorder.
var moduleSuffixes = []string{".tsx", ".ts", "/index.tsx", "/index.ts"}

// fileExists reports whether rel names a regular file under the root.
func (l Layout) fileExists(rel string) bool {
	info, err := os.Stat(filepath.Join(l.Root, filepath.FromSlash(rel)))
	return err == nil && info.Mode().IsRegular()
}

// dirExists reports whether rel names a directory under the root.
func (l Layout) dirExists(rel string) bool {
	info, err := os.Stat(filepath.Join(l.Root, filepath.FromSlash(rel)))
	return err == nil && info.IsDir()
}

// readFile reads a project-relative file.
func (l Layout) readFile(rel string) ([]byte, error) {
	return os.ReadFile(filepath.Join(l.Root, filepath.FromSlash(rel)))
}

// cleanRel normalizes a project-relative path to slash-separated form with
// "." and ".." segments collapsed.
func cleanRel(rel string) string {
	return path.Clean(strings.ReplaceAll(rel, "\\", "/"))
}
