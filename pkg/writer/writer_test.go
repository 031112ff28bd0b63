package writer

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestWriter(t *testing.T) (*Writer, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	return New(&buf, zap.NewNop()), &buf
}

func TestEnsureDirIsIdempotent(t *testing.T) {
	w, _ := newTestWriter(t)
	dir := filepath.Join(t.TempDir(), "standards")

	require.NoError(t, w.EnsureDir(dir))
	require.NoError(t, w.EnsureDir(dir), "second call must not fail")

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestSaveEntryWritesUnderDir(t *testing.T) {
	w, _ := newTestWriter(t)
	dir := t.TempDir()

	path, err := w.SaveEntry(dir, "coding-standards.md", "content")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "coding-standards.md"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "content", string(data))
}

func TestSaveEntryOverwrites(t *testing.T) {
	w, _ := newTestWriter(t)
	dir := t.TempDir()

	_, err := w.SaveEntry(dir, "seo-standards.md", "old")
	require.NoError(t, err)
	_, err = w.SaveEntry(dir, "seo-standards.md", "new")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "seo-standards.md"))
	require.NoError(t, err)
	assert.Equal(t, "new", string(data), "second write must win")
}

func TestSaveEntryRejectsPathSeparators(t *testing.T) {
	w, _ := newTestWriter(t)
	dir := t.TempDir()

	for _, name := range []string{"../escape.md", "sub/child.md", `win\child.md`} {
		_, err := w.SaveEntry(dir, name, "x")
		assert.Error(t, err, "name %q must be rejected", name)
	}
}

func TestSaveFileFailureSurfacesAsError(t *testing.T) {
	w, _ := newTestWriter(t)
	err := w.SaveFile(filepath.Join(t.TempDir(), "missing", "deep", "file.md"), "x")
	assert.Error(t, err)
}

func TestDisplayEmitsRawMarkdownToNonTerminal(t *testing.T) {
	w, buf := newTestWriter(t)
	require.NoError(t, w.Display("# Title\n\nBody.\n"))
	assert.Equal(t, "# Title\n\nBody.\n", buf.String(),
		"non-terminal output must be the unstyled markdown")
}

func TestDisplayTerminatesWithNewline(t *testing.T) {
	w, buf := newTestWriter(t)
	require.NoError(t, w.Display("no trailing newline"))
	assert.Equal(t, "no trailing newline\n", buf.String())
}
