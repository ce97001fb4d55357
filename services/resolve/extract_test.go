// Copyright (C) 2025 Civicgraph (oss@civicgraph.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractImports(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   []string
	}{
		{
			name:   "default import with alias",
			source: `import Listing from "@/components/Listing";`,
			want:   []string{"@/components/Listing"},
		},
		{
			name:   "named imports",
			source: `import { formatDate, parseDate } from "./utils/format";`,
			want:   []string{"./utils/format"},
		},
		{
			name:   "multiline import clause",
			source: "import {\n  ListingCard,\n  ListingGrid,\n} from \"@/components/listing\";\n",
			want:   []string{"@/components/listing"},
		},
		{
			name:   "namespace import",
			source: `import * as listings from "../services/listingService";`,
			want:   []string{"../services/listingService"},
		},
		{
			name:   "side effect import",
			source: `import "./globals.css";`,
			want:   []string{"./globals.css"},
		},
		{
			name:   "type-only import is an edge",
			source: `import type { Listing } from "@/types/listing";`,
			want:   []string{"@/types/listing"},
		},
		{
			name:   "external package excluded",
			source: "import React from \"react\";\nimport { z } from \"zod\";\n",
			want:   nil,
		},
		{
			name: "external and local mixed",
			source: "import React from \"react\";\n" +
				"import Header from \"@/components/Header\";\n" +
				"import \"server-only\";\n",
			want: []string{"@/components/Header"},
		},
		{
			name:   "side effect does not swallow next import",
			source: "import \"./setup\";\nimport { x } from \"./real\";\n",
			want:   []string{"./real", "./setup"},
		},
		{
			name:   "dynamic import not matched",
			source: `const mod = import("./lazy");`,
			want:   nil,
		},
		{
			name:   "single quotes",
			source: `import useListing from '@/hooks/useListing'`,
			want:   []string{"@/hooks/useListing"},
		},
		{
			name:   "duplicates preserved",
			source: "import { a } from \"./shared\";\nimport { b } from \"./shared\";\n",
			want:   []string{"./shared", "./shared"},
		},
		{
			name:   "no imports",
			source: "export const answer = 42;\n",
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractImports(tt.source, "@/")
			assert.ElementsMatch(t, tt.want, got)
		})
	}
}

func TestExtractImportsNoAliasConfigured(t *testing.T) {
	source := "import a from \"@/components/A\";\nimport b from \"./B\";\n"
	got := ExtractImports(source, "")
	assert.Equal(t, []string{"./B"}, got)
}
