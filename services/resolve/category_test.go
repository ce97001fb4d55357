// Copyright (C) 2025 Civicgraph (oss@civicgraph.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package resolve

import "testing"

func TestCategorize(t *testing.T) {
	tests := []struct {
		name string
		path string
		want Category
	}{
		{"component", "src/components/Listing.tsx", CategoryComponent},
		{"service", "src/services/listingService.ts", CategoryService},
		{"api route", "src/app/api/listings/route.ts", CategoryAPI},
		{"type", "src/types/listing.ts", CategoryType},
		{"hook", "src/hooks/useListing.ts", CategoryHook},
		{"util", "src/utils/format.ts", CategoryUtil},
		{"lib is util", "src/lib/supabase.ts", CategoryUtil},
		{"other", "src/app/marketplace/page.tsx", CategoryOther},
		{"directory module", "src/components", CategoryComponent},
		{"leading category segment", "components/Button.tsx", CategoryComponent},

		// Priority: first matching rule wins, in documented order.
		{"component beats util", "src/components/utils/helpers.ts", CategoryComponent},
		{"util beats nothing under component-less path", "src/utils/components.ts", CategoryUtil},
		{"service beats api", "src/services/api/client.ts", CategoryService},
		{"api beats type", "src/app/api/types/route.ts", CategoryAPI},
		{"type beats hook", "src/types/hooks/form.ts", CategoryType},
		{"hook beats util", "src/hooks/utils/useDebounce.ts", CategoryHook},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Categorize(tt.path); got != tt.want {
				t.Errorf("Categorize(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestCategorizeIsDeterministic(t *testing.T) {
	// Category assignment is a pure function of the path string; two calls
	// must always agree.
	path := "src/components/marketplace/ListingCard.tsx"
	if Categorize(path) != Categorize(path) {
		t.Fatal("Categorize is not deterministic")
	}
}

func TestCategoryString(t *testing.T) {
	tests := []struct {
		category Category
		want     string
	}{
		{CategoryComponent, "component"},
		{CategoryService, "service"},
		{CategoryAPI, "api"},
		{CategoryType, "type"},
		{CategoryHook, "hook"},
		{CategoryUtil, "util"},
		{CategoryOther, "other"},
		{Category(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.category.String(); got != tt.want {
			t.Errorf("Category(%d).String() = %q, want %q", tt.category, got, tt.want)
		}
	}
}

func TestExpandable(t *testing.T) {
	for _, cat := range []Category{CategoryComponent, CategoryService} {
		if !cat.expandable() {
			t.Errorf("%v should be expandable", cat)
		}
	}
	for _, cat := range []Category{CategoryAPI, CategoryType, CategoryHook, CategoryUtil, CategoryOther} {
		if cat.expandable() {
			t.Errorf("%v should not be expandable", cat)
		}
	}
}
