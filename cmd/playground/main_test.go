package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertWritesBothOutputs(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "page.html")
	src := []byte(`<p class="x">A</p>`)

	require.NoError(t, convert(target, src))

	jsx, err := os.ReadFile(filepath.Join(dir, "page.jsx"))
	require.NoError(t, err)
	assert.Equal(t, "<p className=\"x\">A</p>\n", string(jsx))

	formatted, err := os.ReadFile(filepath.Join(dir, "page.fmt.html"))
	require.NoError(t, err)
	assert.Contains(t, string(formatted), `class="x"`)
}

func TestConvertEmptyPage(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "page.html")

	require.NoError(t, convert(target, nil))

	jsx, err := os.ReadFile(filepath.Join(dir, "page.jsx"))
	require.NoError(t, err)
	assert.Equal(t, "", string(jsx))
}
