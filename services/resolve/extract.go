// Copyright (C) 2025 Civicgraph (oss@civicgraph.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package resolve

import (
	"regexp"
	"strings"
)

// Regexes for static import statements in TypeScript/JavaScript source.
//
// The binding clause may span several lines (`import {\n A,\n B\n} from "x"`),
// so the clause class includes whitespace but excludes quotes and semicolons,
// which keeps a match from bridging across a neighboring statement. The
// specifier itself is always on one line.
var (
	// import Default from "x" / import { A, B } from "x" / import * as ns from "x"
	// Type-only imports (`import type { T } from "x"`) match too; both are
	// dependency edges for our purposes.
	importFromRe = regexp.MustCompile(`import\s+[\w\s{},*$]*?from\s*['"]([^'"]+)['"]`)

	// Side-effect import: import "x"
	importBareRe = regexp.MustCompile(`import\s*['"]([^'"]+)['"]`)
)

// ExtractImports pulls local-module import specifiers out of raw source text.
//
// Description:
//
//	Scans the text for static import statements and returns the specifier of
//	every import that targets a local module: one starting with the given
//	alias prefix, "./", or "../". External package specifiers are excluded
//	here, before resolution; the resolver has no bare-package logic at all.
//
// Inputs:
//
//	source - Raw text of one source file.
//	aliasPrefix - The project alias prefix (for example "@/").
//
// Outputs:
//
//	[]string - Local specifiers in match order, possibly with duplicates.
//	Callers dedupe via the traversal's visited set, not here.
func ExtractImports(source, aliasPrefix string) []string {
	var specifiers []string

	collect := func(matches [][]string) {
		for _, m := range matches {
			if isLocalSpecifier(m[1], aliasPrefix) {
				specifiers = append(specifiers, m[1])
			}
		}
	}

	collect(importFromRe.FindAllStringSubmatch(source, -1))
	collect(importBareRe.FindAllStringSubmatch(source, -1))

	return specifiers
}

// isLocalSpecifier reports whether a specifier names a local module rather
// than an external package.
func isLocalSpecifier(spec, aliasPrefix string) bool {
	if aliasPrefix != "" && strings.HasPrefix(spec, aliasPrefix) {
		return true
	}
	return strings.HasPrefix(spec, "./") || strings.HasPrefix(spec, "../")
}
