package pwa

import (
	"encoding/json"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siteforge-dev/siteforge/internal/catalog"
	"github.com/siteforge-dev/siteforge/internal/project"
	"github.com/siteforge-dev/siteforge/internal/util/sets"
)

func testCtx(name, scheme string) *project.Context {
	return &project.Context{
		ProjectName:      "demo-site",
		BusinessName:     name,
		ColorScheme:      scheme,
		SelectedFeatures: sets.New[catalog.FeatureID](),
	}
}

func TestArtifactsIncludeManifestWorkerAndIcons(t *testing.T) {
	artifacts, err := Artifacts(testCtx("Bella's Bistro", "green"))
	require.NoError(t, err)

	paths := make([]string, len(artifacts))
	for i, a := range artifacts {
		paths[i] = a.Path
	}
	assert.Contains(t, paths, "public/manifest.json")
	assert.Contains(t, paths, "public/sw.js")
	assert.Contains(t, paths, "public/icons/icon-192.svg")
	assert.Contains(t, paths, "public/icons/icon-512.svg")
}

func TestManifestCarriesThemeColorAndName(t *testing.T) {
	artifacts, err := Artifacts(testCtx("Bella's Bistro", "green"))
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(artifacts[0].Content), &m))
	assert.Equal(t, "Bella's Bistro", m["name"])
	assert.Equal(t, "#15803d", m["theme_color"])
	assert.Equal(t, "/", m["start_url"])
	assert.LessOrEqual(t, len(m["short_name"].(string)), 12)
}

func TestShortNameTruncatesOnRunes(t *testing.T) {
	// Each rune here is multi-byte; a byte-wise cut at 12 would split one.
	artifacts, err := Artifacts(testCtx("Café Révérence Pâtisserie", "blue"))
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(artifacts[0].Content), &m))
	short := m["short_name"].(string)
	assert.True(t, utf8.ValidString(short))
	assert.Equal(t, "Café Révéren", short)
	assert.Len(t, []rune(short), 12)
}

func TestIconUsesBusinessInitial(t *testing.T) {
	artifacts, err := Artifacts(testCtx("Apex Fitness", "blue"))
	require.NoError(t, err)

	for _, a := range artifacts {
		if strings.HasSuffix(a.Path, ".svg") {
			assert.Contains(t, a.Content, ">A</text>")
		}
	}
}
