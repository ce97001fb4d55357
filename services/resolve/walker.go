// Copyright (C) 2025 Civicgraph (oss@civicgraph.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package resolve

// resolutionContext is the traversal-scoped state of one route analysis.
//
// A fresh context is built at the start of each analysis and discarded at
// the end; it is never reused across analyses. The visited set is shared by
// every recursive call of one traversal, so deduplication is global across
// the whole traversal tree, which handles diamond-shaped import graphs and,
// combined with the depth bound, makes the walk terminate even on cyclic
// graphs. No separate cycle detector exists or is needed.
type resolutionContext struct {
	visited  map[string]struct{}
	maxDepth int
}

func newResolutionContext(maxDepth int) *resolutionContext {
	return &resolutionContext{
		visited:  make(map[string]struct{}),
		maxDepth: maxDepth,
	}
}

// buckets accumulates discovered dependency paths per category.
type buckets map[Category]map[string]struct{}

func (b buckets) add(cat Category, path string) {
	set, ok := b[cat]
	if !ok {
		set = make(map[string]struct{})
		b[cat] = set
	}
	set[path] = struct{}{}
}

func (b buckets) merge(other buckets) {
	for cat, set := range other {
		for path := range set {
			b.add(cat, path)
		}
	}
}

// walk traverses the static import graph depth-first from one file.
//
// Description:
//
//	Terminates immediately with an empty result when the depth bound is
//	exceeded or the file was already visited in this traversal. Otherwise
//	the file is marked visited and read; a read failure also yields an
//	empty result, not an error. Each local import is resolved and
//	categorized, and only component and service dependencies are expanded
//	further; leaf layers (api, types, hooks, utils, other) are recorded
//	but never recursed into.
//
//	The returned buckets are the union of the file's own findings and all
//	recursive children's findings.
//
// Inputs:
//
//	file - Project-relative path of the file to expand.
//	depth - Current traversal depth; the root call passes 1.
//	rc - The traversal's shared context. Must not be nil.
//
// Outputs:
//
//	buckets - Discovered paths per category. Never nil.
func (l Layout) walk(file string, depth int, rc *resolutionContext) buckets {
	found := make(buckets)

	if depth > rc.maxDepth {
		return found
	}
	if _, seen := rc.visited[file]; seen {
		return found
	}
	rc.visited[file] = struct{}{}

	source, err := l.readFile(file)
	if err != nil {
		return found
	}

	for _, spec := range ExtractImports(string(source), l.AliasPrefix) {
		resolved, ok := l.resolveModule(spec, file)
		if !ok {
			continue
		}

		cat := Categorize(resolved)
		found.add(cat, resolved)

		if cat.expandable() {
			found.merge(l.walk(resolved, depth+1, rc))
		}
	}
	return found
}
