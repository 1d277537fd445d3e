package emit

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siteforge-dev/siteforge/internal/render"
)

func TestWriteCreatesNestedDirectories(t *testing.T) {
	root := t.TempDir()
	e := New(root)
	err := e.Write(render.Artifact{Path: "src/pages/Home.jsx", Content: "x"})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(root, "src", "pages", "Home.jsx"))
	require.NoError(t, err)
	assert.Equal(t, "x", string(data))
}

func TestWriteOverwritesSilently(t *testing.T) {
	root := t.TempDir()
	e := New(root)
	require.NoError(t, e.Write(render.Artifact{Path: "a.txt", Content: "old"}))
	require.NoError(t, e.Write(render.Artifact{Path: "a.txt", Content: "new"}))

	data, err := os.ReadFile(filepath.Join(root, "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestWriteRejectsEscapingPaths(t *testing.T) {
	e := New(t.TempDir())
	assert.ErrorIs(t, e.Write(render.Artifact{Path: "../evil.txt"}), ErrUnsafePath)
	assert.ErrorIs(t, e.Write(render.Artifact{Path: "/etc/evil.txt"}), ErrUnsafePath)
	assert.ErrorIs(t, e.Write(render.Artifact{Path: "a/../../evil.txt"}), ErrUnsafePath)
	assert.ErrorIs(t, e.Write(render.Artifact{Path: ""}), ErrUnsafePath)
}

func TestWriteAllAggregatesErrorsAndKeepsGoing(t *testing.T) {
	root := t.TempDir()
	e := New(root)
	written, err := e.WriteAll([]render.Artifact{
		{Path: "ok1.txt", Content: "1"},
		{Path: "../bad.txt", Content: "2"},
		{Path: "ok2.txt", Content: "3"},
	})
	assert.Equal(t, 2, written)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsafePath)

	_, statErr := os.Stat(filepath.Join(root, "ok2.txt"))
	assert.NoError(t, statErr)
}
