// Copyright (C) 2025 Civicgraph (oss@civicgraph.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package resolve

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalkDepthBound(t *testing.T) {
	// A synthetic chain of components each importing the next. With
	// maxDepth = D, no component more than D hops from the root may
	// surface.
	const chainLength = 6
	files := map[string]string{}
	for i := 1; i <= chainLength; i++ {
		content := ""
		if i < chainLength {
			content = fmt.Sprintf("import C%d from \"@/components/C%d\";\n", i+1, i+1)
		}
		files[fmt.Sprintf("src/components/C%d.tsx", i)] = content
	}
	files["src/app/page.tsx"] = `import C1 from "@/components/C1";`
	layout := writeProject(t, files)

	const maxDepth = 3
	rc := newResolutionContext(maxDepth)
	found := layout.walk("src/app/page.tsx", 1, rc)

	components := sortedList(found[CategoryComponent])
	assert.Equal(t, []string{
		"src/components/C1.tsx",
		"src/components/C2.tsx",
		"src/components/C3.tsx",
	}, components, "components beyond %d hops must not surface", maxDepth)
}

func TestWalkCycleSafety(t *testing.T) {
	// Two components importing each other terminate and each appears
	// exactly once.
	layout := writeProject(t, map[string]string{
		"src/app/page.tsx":     `import A from "@/components/A";`,
		"src/components/A.tsx": `import B from "@/components/B";`,
		"src/components/B.tsx": `import A from "@/components/A";`,
	})

	rc := newResolutionContext(10)
	found := layout.walk("src/app/page.tsx", 1, rc)

	assert.Equal(t, []string{
		"src/components/A.tsx",
		"src/components/B.tsx",
	}, sortedList(found[CategoryComponent]))
}

func TestWalkSelectiveRecursion(t *testing.T) {
	// A util that itself imports a component is recorded but never
	// expanded, so the nested component must not appear.
	layout := writeProject(t, map[string]string{
		"src/app/page.tsx":          `import { fmt } from "@/utils/format";`,
		"src/utils/format.ts":       `import Hidden from "@/components/Hidden";`,
		"src/components/Hidden.tsx": "",
	})

	rc := newResolutionContext(10)
	found := layout.walk("src/app/page.tsx", 1, rc)

	assert.Equal(t, []string{"src/utils/format.ts"}, sortedList(found[CategoryUtil]))
	assert.Empty(t, found[CategoryComponent])
}

func TestWalkHookNotExpanded(t *testing.T) {
	layout := writeProject(t, map[string]string{
		"src/app/page.tsx":          `import useThing from "@/hooks/useThing";`,
		"src/hooks/useThing.ts":     `import Nested from "@/components/Nested";`,
		"src/components/Nested.tsx": "",
	})

	rc := newResolutionContext(10)
	found := layout.walk("src/app/page.tsx", 1, rc)

	assert.Equal(t, []string{"src/hooks/useThing.ts"}, sortedList(found[CategoryHook]))
	assert.Empty(t, found[CategoryComponent])
}

func TestWalkDiamondDeduplication(t *testing.T) {
	// Page imports A and B; both import Shared. The shared visited set
	// dedupes across branches: Shared appears once and is expanded once.
	layout := writeProject(t, map[string]string{
		"src/app/page.tsx":          "import A from \"@/components/A\";\nimport B from \"@/components/B\";\n",
		"src/components/A.tsx":      `import Shared from "@/components/Shared";`,
		"src/components/B.tsx":      `import Shared from "@/components/Shared";`,
		"src/components/Shared.tsx": `import { util } from "@/utils/deep";`,
		"src/utils/deep.ts":         "",
	})

	rc := newResolutionContext(10)
	found := layout.walk("src/app/page.tsx", 1, rc)

	assert.Equal(t, []string{
		"src/components/A.tsx",
		"src/components/B.tsx",
		"src/components/Shared.tsx",
	}, sortedList(found[CategoryComponent]))
	assert.Equal(t, []string{"src/utils/deep.ts"}, sortedList(found[CategoryUtil]))
	require.Contains(t, rc.visited, "src/components/Shared.tsx")
}

func TestWalkUnreadableFileYieldsEmpty(t *testing.T) {
	layout := writeProject(t, map[string]string{
		"src/app/page.tsx": `import A from "@/components/A";`,
	})

	rc := newResolutionContext(5)
	found := layout.walk("src/app/missing.tsx", 1, rc)
	assert.Empty(t, found)

	// The page's unresolved import is dropped silently as well.
	rc = newResolutionContext(5)
	found = layout.walk("src/app/page.tsx", 1, rc)
	assert.Empty(t, found[CategoryComponent])
}

func TestWalkServiceChainExpansion(t *testing.T) {
	// Services expand like components: page -> component -> service -> type.
	layout := writeProject(t, map[string]string{
		"src/app/page.tsx":               `import Listing from "@/components/Listing";`,
		"src/components/Listing.tsx":     `import { list } from "@/services/listingService";`,
		"src/services/listingService.ts": `import type { Listing } from "@/types/listing";`,
		"src/types/listing.ts":           "",
	})

	rc := newResolutionContext(10)
	found := layout.walk("src/app/page.tsx", 1, rc)

	assert.Equal(t, []string{"src/components/Listing.tsx"}, sortedList(found[CategoryComponent]))
	assert.Equal(t, []string{"src/services/listingService.ts"}, sortedList(found[CategoryService]))
	assert.Equal(t, []string{"src/types/listing.ts"}, sortedList(found[CategoryType]))
}
