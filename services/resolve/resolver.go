// Copyright (C) 2025 Civicgraph (oss@civicgraph.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package resolve

import (
	"path"
	"strings"
)

// resolveModule turns an import specifier plus the file that contains it into
// a concrete project-relative path.
//
// Description:
//
//	Resolution rules, applied in order:
//
//	 1. Alias specifier: rewrite the alias prefix to the source root, then
//	    try the candidate suffixes (.tsx, .ts, /index.tsx, /index.ts).
//	    First existing file wins.
//	 2. If no candidate exists but the rewritten bare path is a directory,
//	    resolve to the directory itself. This "directory module" fallback is
//	    a deliberate low-fidelity bucket; downstream it almost always
//	    categorizes as other.
//	 3. Relative specifier ("./", "../"): resolve against the directory of
//	    the origin file with the same candidate suffixes.
//
//	Specifiers that are neither alias-prefixed nor relative never reach this
//	function (the extractor filters to local specifiers), so there is no
//	bare-package resolution here.
//
// Inputs:
//
//	spec - The raw import specifier.
//	fromFile - Project-relative path of the file containing the import.
//
// Outputs:
//
//	string - The resolved project-relative path.
//	bool - False when no candidate exists. Callers drop the miss silently;
//	unresolved specifiers (stylesheets, unusual alias usage) are common and
//	non-fatal.
func (l Layout) resolveModule(spec, fromFile string) (string, bool) {
	if l.AliasPrefix != "" && strings.HasPrefix(spec, l.AliasPrefix) {
		base := cleanRel(path.Join(l.SourceRoot, strings.TrimPrefix(spec, l.AliasPrefix)))
		if resolved, ok := l.tryCandidates(base); ok {
			return resolved, true
		}
		if l.dirExists(base) {
			return base, true
		}
		return "", false
	}

	if strings.HasPrefix(spec, "./") || strings.HasPrefix(spec, "../") {
		base := cleanRel(path.Join(path.Dir(fromFile), spec))
		return l.tryCandidates(base)
	}

	return "", false
}

// tryCandidates probes the candidate-suffix list against the filesystem and
// returns the first existing file.
func (l Layout) tryCandidates(base string) (string, bool) {
	for _, suffix := range moduleSuffixes {
		candidate := base + suffix
		if l.fileExists(candidate) {
			return cleanRel(candidate), true
		}
	}
	return "", false
}
