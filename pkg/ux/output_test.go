// Copyright (C) 2025 Civicgraph (oss@civicgraph.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package ux

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	orig := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	fn()
	require.NoError(t, w.Close())

	buf := make([]byte, 64*1024)
	n, _ := r.Read(buf)
	return string(buf[:n])
}

func TestPlainOutput(t *testing.T) {
	SetPlain(true)
	t.Cleanup(func() { SetPlain(true) })

	out := captureStdout(t, func() {
		Success("saved report")
	})
	assert.Equal(t, "OK: saved report\n", out)

	out = captureStdout(t, func() {
		Summary("/marketplace", 4)
	})
	assert.Equal(t, "SUMMARY: route=/marketplace dependencies=4\n", out)
}

func TestSectionPlain(t *testing.T) {
	SetPlain(true)

	out := captureStdout(t, func() {
		Section("components", []string{"src/components/Listing.tsx", "src/components/Card.tsx"})
	})
	assert.Contains(t, out, "components\tsrc/components/Listing.tsx\n")
	assert.Contains(t, out, "components\tsrc/components/Card.tsx\n")
}

func TestSectionSkipsEmpty(t *testing.T) {
	SetPlain(true)

	out := captureStdout(t, func() {
		Section("hooks", nil)
	})
	assert.Empty(t, out)
}

func TestIconRender(t *testing.T) {
	// Unstyled icons pass through as-is.
	assert.Equal(t, "→", string(IconArrow))
	assert.NotEmpty(t, IconSuccess.Render())
}
