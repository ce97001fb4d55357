// Copyright (C) 2025 Civicgraph (oss@civicgraph.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package resolve

import "strings"

// Category classifies a resolved dependency by the layer it belongs to.
//
// Classification is a pure function of the file path alone, so a path is
// assigned the same category no matter where in the traversal it was found.
type Category int

const (
	// CategoryComponent is a UI component (path contains /components/).
	CategoryComponent Category = iota

	// CategoryService is a business-logic service (path contains /services/).
	CategoryService

	// CategoryAPI is an API route handler (path contains /api/).
	CategoryAPI

	// CategoryType is a type definition module (path contains /types/).
	CategoryType

	// CategoryHook is a React-style hook (path contains /hooks/).
	CategoryHook

	// CategoryUtil is a utility module (path contains /utils/ or /lib/).
	CategoryUtil

	// CategoryOther is anything that matches none of the above, including
	// directory-module fallbacks from the resolver.
	CategoryOther
)

// String returns the human-readable name of the category.
func (c Category) String() string {
	switch c {
	case CategoryComponent:
		return "component"
	case CategoryService:
		return "service"
	case CategoryAPI:
		return "api"
	case CategoryType:
		return "type"
	case CategoryHook:
		return "hook"
	case CategoryUtil:
		return "util"
	case CategoryOther:
		return "other"
	default:
		return "unknown"
	}
}

// categoryRules holds the classification substrings in priority order.
// The order is a deliberate disambiguation rule: a path containing both
// /components/ and /utils/ is a component. Do not reorder.
var categoryRules = []struct {
	substrings []string
	category   Category
}{
	{[]string{"/components/"}, CategoryComponent},
	{[]string{"/services/"}, CategoryService},
	{[]string{"/api/"}, CategoryAPI},
	{[]string{"/types/"}, CategoryType},
	{[]string{"/hooks/"}, CategoryHook},
	{[]string{"/utils/", "/lib/"}, CategoryUtil},
}

// Categorize assigns exactly one Category to a resolved path.
//
// The path is slash-normalized and wrapped in separators before matching so
// that a path beginning or ending with a category directory still matches
// (for example "components/Button.tsx" or "src/types").
func Categorize(path string) Category {
	p := "/" + strings.Trim(strings.ReplaceAll(path, "\\", "/"), "/") + "/"
	for _, rule := range categoryRules {
		for _, sub := range rule.substrings {
			if strings.Contains(p, sub) {
				return rule.category
			}
		}
	}
	return CategoryOther
}

// expandable reports whether the walker should recurse into a dependency of
// this category. Only the UI and business-logic layers are worth deep
// traversal; types, hooks, utils, and API handlers are terminal leaves.
func (c Category) expandable() bool {
	return c == CategoryComponent || c == CategoryService
}
