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

// locateRoute maps a route string to its expected page file.
//
// The route's segments are joined under the pages root and the page basename
// is appended; "/" maps directly to the root page file. Bracket-wrapped
// dynamic segments ("[id]") pass through as literal directory names; no
// wildcard matching happens here. The primary extension is tried first, then
// the fallback.
func (l Layout) locateRoute(route string) (string, bool) {
	dir := l.PagesRoot
	if route != "/" {
		segments := strings.Split(strings.Trim(route, "/"), "/")
		dir = path.Join(append([]string{l.PagesRoot}, segments...)...)
	}

	for _, ext := range pageExtensions {
		candidate := path.Join(dir, l.PageBase+ext)
		if l.fileExists(candidate) {
			return candidate, true
		}
	}
	return "", false
}

// findAPIRoutes discovers API endpoints that are convention-wired to the
// route by URL shape but never statically imported, a gap the import graph
// alone cannot close.
//
// The route's first and (if present) second path segments are matched
// against first- and second-level directories under the API root; every
// matched directory is listed with the bounded scanner. Absence of a
// matching directory is a normal outcome producing an empty result.
func (l Layout) findAPIRoutes(route string) []string {
	segments := routeSegments(route)
	if len(segments) == 0 {
		return nil
	}

	var dirs []string
	first := path.Join(l.APIRoot, segments[0])
	if l.dirExists(first) {
		dirs = append(dirs, first)
	}
	if len(segments) > 1 {
		second := path.Join(first, segments[1])
		if l.dirExists(second) {
			dirs = append(dirs, second)
		}
	}

	var files []string
	for _, dir := range dirs {
		files = append(files, l.scanDir(dir, []string{".ts", ".tsx"}, 2)...)
	}
	return files
}

// findSiblingRoutes lists routes whose page files live in directories
// immediately under the target page file's directory. Siblings share layout
// and navigation context without sharing import edges, so the import graph
// never surfaces them.
//
// The target route itself is excluded. Missing or unreadable directories
// yield an empty result.
func (l Layout) findSiblingRoutes(route, pageFile string) []string {
	pageDir := path.Dir(pageFile)
	entries, err := os.ReadDir(filepath.Join(l.Root, filepath.FromSlash(pageDir)))
	if err != nil {
		return nil
	}

	var routes []string
	for _, entry := range entries {
		if !entry.IsDir() || l.skipDir(entry.Name()) {
			continue
		}
		childDir := path.Join(pageDir, entry.Name())

		hasPage := false
		for _, ext := range pageExtensions {
			if l.fileExists(path.Join(childDir, l.PageBase+ext)) {
				hasPage = true
				break
			}
		}
		if !hasPage {
			continue
		}

		sibling := l.dirToRoute(childDir)
		if sibling != "" && sibling != route {
			routes = append(routes, sibling)
		}
	}
	return routes
}

// dirToRoute converts a directory under the pages root back to a route
// string. Returns "" for directories outside the pages root.
func (l Layout) dirToRoute(dir string) string {
	if dir == l.PagesRoot {
		return "/"
	}
	prefix := l.PagesRoot + "/"
	if !strings.HasPrefix(dir, prefix) {
		return ""
	}
	return "/" + strings.TrimPrefix(dir, prefix)
}

// routeSegments splits a route string into its non-empty path segments.
func routeSegments(route string) []string {
	trimmed := strings.Trim(route, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}
