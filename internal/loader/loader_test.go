package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestLoad_SkipsMissingAndUnsupported(t *testing.T) {
	dir := t.TempDir()
	md := writeFile(t, dir, "notes.md", []byte("# Notes\nRecursion."))
	pdf := writeFile(t, dir, "paper.pdf", []byte("%PDF-1.4"))
	csv := writeFile(t, dir, "table.CSV", []byte("a,b\n1,2"))
	missing := filepath.Join(dir, "missing.txt")

	docs, skipped := New(nil).Load([]string{md, pdf, missing, csv, dir})

	require.Len(t, docs, 2)
	assert.Equal(t, "notes.md", docs[0].Name)
	assert.Equal(t, md, docs[0].Path)
	assert.Equal(t, "# Notes\nRecursion.", docs[0].Content)
	assert.Equal(t, "table.CSV", docs[1].Name)
	assert.Equal(t, []string{pdf, missing, dir}, skipped)
}

func TestLoad_DropsInvalidUTF8(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "bad.txt", []byte{'o', 'k', 0xff, 0xfe, ' ', 'f', 'i', 'n', 'e'})

	docs, skipped := New(nil).Load([]string{p})

	require.Len(t, docs, 1)
	assert.Empty(t, skipped)
	assert.Equal(t, "ok fine", docs[0].Content)
}

func TestNew_NormalizesExtensions(t *testing.T) {
	l := New([]string{"TXT", " .Go ", ""})
	assert.True(t, l.Supported("a.txt"))
	assert.True(t, l.Supported("main.GO"))
	assert.False(t, l.Supported("README.md"))
}

func TestSupported_Defaults(t *testing.T) {
	l := New(nil)
	for _, name := range []string{"a.md", "b.txt", "c.csv", "RLM Scaffolding.py", "main.go"} {
		assert.True(t, l.Supported(name), name)
	}
	assert.False(t, l.Supported("archive.zip"))
	assert.False(t, l.Supported("Makefile"))
}
