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

// scanDir lists files under a project-relative directory whose extension is
// in extensions, recursing at most maxDepth levels below dir.
//
// Dot-prefixed directories and the layout's SkipDirs are never entered.
// Output order is directory listing order; callers sort when determinism
// matters. An unreadable or missing directory yields an empty result, never
// an error.
func (l Layout) scanDir(dir string, extensions []string, maxDepth int) []string {
	if maxDepth < 0 {
		return nil
	}

	entries, err := os.ReadDir(filepath.Join(l.Root, filepath.FromSlash(dir)))
	if err != nil {
		return nil
	}

	var files []string
	for _, entry := range entries {
		name := entry.Name()
		child := path.Join(dir, name)

		if entry.IsDir() {
			if l.skipDir(name) {
				continue
			}
			files = append(files, l.scanDir(child, extensions, maxDepth-1)...)
			continue
		}

		for _, ext := range extensions {
			if strings.HasSuffix(name, ext) {
				files = append(files, child)
				break
			}
		}
	}
	return files
}

// skipDir reports whether the scanner should refuse to descend into a
// directory with this name.
func (l Layout) skipDir(name string) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	for _, skip := range l.SkipDirs {
		if name == skip {
			return true
		}
	}
	return false
}
