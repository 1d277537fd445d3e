package render

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siteforge-dev/siteforge/internal/catalog"
	"github.com/siteforge-dev/siteforge/internal/config"
	"github.com/siteforge-dev/siteforge/internal/content"
	"github.com/siteforge-dev/siteforge/internal/manifest"
	"github.com/siteforge-dev/siteforge/internal/project"
	"github.com/siteforge-dev/siteforge/internal/resolve"
	"github.com/siteforge-dev/siteforge/internal/util/sets"
)

// fakeRenderer lets registry and fallback behavior be tested without any
// real framework package.
type fakeRenderer struct {
	fw      config.Framework
	pageErr error
	wrapped []catalog.PageID
}

func (f *fakeRenderer) Framework() config.Framework { return f.fw }
func (f *fakeRenderer) Options() MarkupOptions      { return MarkupOptions{} }

func (f *fakeRenderer) RenderPage(page catalog.PageID, _ *content.Bundle, _ *project.Context) ([]Artifact, error) {
	if f.pageErr != nil {
		return nil, f.pageErr
	}
	return []Artifact{{Path: "pages/" + string(page), Kind: KindSource}}, nil
}

func (f *fakeRenderer) WrapPage(page catalog.PageID, inner string, _ *project.Context) Artifact {
	f.wrapped = append(f.wrapped, page)
	return Artifact{Path: "pages/" + string(page), Content: inner, Kind: KindSource}
}

func (f *fakeRenderer) Scaffold(_ *resolve.ResolvedPageSet, _ *project.Context) ([]Artifact, error) {
	return nil, nil
}

func (f *fakeRenderer) Manifest(_ *project.Context) manifest.Seed { return manifest.Seed{} }

func testCtx(features ...catalog.FeatureID) *project.Context {
	selected := sets.New[catalog.FeatureID]()
	for _, f := range features {
		selected.Add(f)
	}
	return &project.Context{
		ProjectName:      "demo-site",
		BusinessName:     "Demo",
		Framework:        config.FrameworkReact,
		Industry:         "small-business",
		SelectedFeatures: selected,
		ColorScheme:      "blue",
	}
}

func TestRegistryLookup(t *testing.T) {
	reg := NewRegistry(&fakeRenderer{fw: config.FrameworkReact})
	assert.True(t, reg.Lookup(config.FrameworkReact).IsSome())
	assert.True(t, reg.Lookup(config.FrameworkVue).IsNone())
}

func TestRegistryFirstRegistrationWins(t *testing.T) {
	first := &fakeRenderer{fw: config.FrameworkReact}
	second := &fakeRenderer{fw: config.FrameworkReact}
	reg := NewRegistry(first, second)
	got := reg.Lookup(config.FrameworkReact).Unwrap()
	assert.Same(t, first, got)
}

func TestRegistryFrameworksSorted(t *testing.T) {
	reg := NewRegistry(
		&fakeRenderer{fw: config.FrameworkVue},
		&fakeRenderer{fw: config.FrameworkAngular},
		&fakeRenderer{fw: config.FrameworkReact},
	)
	assert.Equal(t, []config.Framework{
		config.FrameworkAngular, config.FrameworkReact, config.FrameworkVue,
	}, reg.Frameworks())
}

func TestRenderPageWithFallbackPassesThrough(t *testing.T) {
	r := &fakeRenderer{fw: config.FrameworkReact}
	bundle := &content.Bundle{PageID: "home"}
	artifacts, gap, err := RenderPageWithFallback(r, "home", bundle, testCtx())
	require.NoError(t, err)
	assert.False(t, gap)
	require.Len(t, artifacts, 1)
	assert.Empty(t, r.wrapped)
}

func TestRenderPageWithFallbackTakesGenericPath(t *testing.T) {
	r := &fakeRenderer{fw: config.FrameworkReact, pageErr: ErrNoTemplate}
	bundle := &content.Bundle{PageID: "press-kit"}
	artifacts, gap, err := RenderPageWithFallback(r, "press-kit", bundle, testCtx())
	require.NoError(t, err)
	assert.True(t, gap)
	require.Len(t, artifacts, 1)
	assert.Equal(t, []catalog.PageID{"press-kit"}, r.wrapped)
	assert.Contains(t, artifacts[0].Content, "Press Kit")
}

func TestRenderPageWithFallbackPropagatesRealErrors(t *testing.T) {
	boom := errors.New("boom")
	r := &fakeRenderer{fw: config.FrameworkReact, pageErr: boom}
	_, gap, err := RenderPageWithFallback(r, "home", &content.Bundle{PageID: "home"}, testCtx())
	assert.ErrorIs(t, err, boom)
	assert.False(t, gap)
}

func TestPascalCase(t *testing.T) {
	assert.Equal(t, "Home", PascalCase("home"))
	assert.Equal(t, "BlogPost", PascalCase("blog-post"))
}

func TestNavLabel(t *testing.T) {
	assert.Equal(t, "Menu", NavLabel("menu"))
	assert.Equal(t, "Blog Post", NavLabel("blog-post"))
}

func TestPlacedComponentsCrossFeatureGating(t *testing.T) {
	withMap := PlacedComponents("contact", testCtx("contact-form", "location-map"))
	assert.Equal(t, []catalog.ComponentID{"ContactForm", "MapEmbed"}, withMap)

	withoutMap := PlacedComponents("contact", testCtx("contact-form"))
	assert.Equal(t, []catalog.ComponentID{"ContactForm"}, withoutMap)
}

func TestFooterComponents(t *testing.T) {
	assert.Empty(t, FooterComponents(testCtx()))
	assert.Equal(t,
		[]catalog.ComponentID{"NewsletterSignup", "SocialBar"},
		FooterComponents(testCtx("newsletter", "social-links")))
}

func TestBaseCSSAppliesColorScheme(t *testing.T) {
	css := BaseCSS("green")
	assert.NotContains(t, css, "__PRIMARY__")
	assert.NotContains(t, css, "__ACCENT__")
	assert.Contains(t, css, "#15803d")
}

func TestBaseCSSUnknownSchemeFallsBackToBlue(t *testing.T) {
	assert.Equal(t, BaseCSS("blue"), BaseCSS("mauve"))
}

func TestStyleBundleCSSShipsForEveryCatalogBundle(t *testing.T) {
	cat := catalog.Default()
	for _, id := range cat.IDs() {
		spec := cat.Lookup(id).Unwrap()
		for _, bundle := range spec.StyleBundles {
			_, ok := StyleBundleCSS(bundle)
			assert.True(t, ok, "no stylesheet for bundle %s", bundle)
		}
	}
}
