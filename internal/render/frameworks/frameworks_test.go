package frameworks

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siteforge-dev/siteforge/internal/catalog"
	"github.com/siteforge-dev/siteforge/internal/config"
	"github.com/siteforge-dev/siteforge/internal/content"
	"github.com/siteforge-dev/siteforge/internal/project"
	"github.com/siteforge-dev/siteforge/internal/render"
	"github.com/siteforge-dev/siteforge/internal/resolve"
	"github.com/siteforge-dev/siteforge/internal/util/sets"
)

func TestDefaultRegistryCoversEverySupportedFramework(t *testing.T) {
	reg := DefaultRegistry()
	for _, fw := range config.SupportedFrameworks() {
		assert.True(t, reg.Lookup(fw).IsSome(), "no renderer for %s", fw)
	}
	assert.Len(t, reg.Frameworks(), len(config.SupportedFrameworks()))
}

func fullBundle(page catalog.PageID) *content.Bundle {
	return &content.Bundle{PageID: page, Sections: []content.Section{
		{Key: "hero", Content: content.SectionContent{Kind: content.KindHero, Hero: &content.Hero{Title: "Welcome"}}},
		{Key: "services", Content: content.SectionContent{Kind: content.KindList, List: &content.List{
			Title: "Services", Items: []content.ListItem{{Name: "Thing"}},
		}}},
		{Key: "testimonials", Content: content.SectionContent{Kind: content.KindTestimonials, Testimonials: &content.TestimonialSet{
			Title: "Clients", Quotes: []content.Quote{{Author: "A", Text: "Nice"}},
		}}},
		{Key: "contact", Content: content.SectionContent{Kind: content.KindContactInfo, Contact: &content.ContactInfo{Email: "a@b.c"}}},
		{Key: "story", Content: content.SectionContent{Kind: content.KindFreeText, Text: &content.FreeText{Markdown: "Some *story*."}}},
	}}
}

func parityCtx(fw config.Framework) *project.Context {
	return &project.Context{
		ProjectName:      "demo-site",
		BusinessName:     "Demo Co",
		Framework:        fw,
		Industry:         "small-business",
		SelectedFeatures: sets.New[catalog.FeatureID](),
		ColorScheme:      "blue",
	}
}

// Every renderer must emit every bundle section exactly once, in bundle
// order. This is the cross-framework equivalence guarantee.
func TestRenderersEmitEverySectionOnceInOrder(t *testing.T) {
	reg := DefaultRegistry()
	bundle := fullBundle("home")
	keys := bundle.Keys()

	for _, fw := range reg.Frameworks() {
		t.Run(string(fw), func(t *testing.T) {
			r := reg.Lookup(fw).Unwrap()
			artifacts, err := r.RenderPage("home", bundle, parityCtx(fw))
			require.NoError(t, err)
			require.NotEmpty(t, artifacts)

			src := artifacts[0].Content
			last := -1
			for _, key := range keys {
				marker := fmt.Sprintf("data-section=%q", key)
				assert.Equal(t, 1, strings.Count(src, marker), "%s: section %s", fw, key)
				at := strings.Index(src, marker)
				assert.Greater(t, at, last, "%s: section %s out of order", fw, key)
				last = at
			}
		})
	}
}

func TestRenderersFallBackForUnknownPages(t *testing.T) {
	reg := DefaultRegistry()
	bundle := fullBundle("press-kit")

	for _, fw := range reg.Frameworks() {
		t.Run(string(fw), func(t *testing.T) {
			r := reg.Lookup(fw).Unwrap()
			_, err := r.RenderPage("press-kit", bundle, parityCtx(fw))
			assert.ErrorIs(t, err, render.ErrNoTemplate)

			artifacts, gap, err := render.RenderPageWithFallback(r, "press-kit", bundle, parityCtx(fw))
			require.NoError(t, err)
			assert.True(t, gap)
			require.Len(t, artifacts, 1)
			assert.NotEmpty(t, artifacts[0].Content)
		})
	}
}

func TestRenderersScaffoldResolvedSets(t *testing.T) {
	reg := DefaultRegistry()
	set := resolve.Resolve(catalog.Default(), resolve.CorePages(), []catalog.FeatureID{"contact-form", "auth", "shop"})

	for _, fw := range reg.Frameworks() {
		t.Run(string(fw), func(t *testing.T) {
			r := reg.Lookup(fw).Unwrap()
			pctx := parityCtx(fw)
			pctx.SelectedFeatures.Add("contact-form")
			pctx.SelectedFeatures.Add("auth")
			pctx.SelectedFeatures.Add("shop")

			artifacts, err := r.Scaffold(set, pctx)
			require.NoError(t, err)
			assert.NotEmpty(t, artifacts)

			var hasStyle bool
			for _, a := range artifacts {
				assert.False(t, strings.HasPrefix(a.Path, "/"), "absolute artifact path %s", a.Path)
				if a.Kind == render.KindStyle {
					hasStyle = true
				}
			}
			assert.True(t, hasStyle, "%s scaffold emitted no styles", fw)

			seed := r.Manifest(pctx)
			assert.NotEmpty(t, seed.Scripts)
		})
	}
}

// Per-page artifact paths must be distinct across a resolved set so emitted
// files never collide.
func TestRendererPagePathsAreDistinct(t *testing.T) {
	reg := DefaultRegistry()
	set := resolve.Resolve(catalog.Default(), resolve.CorePages(), []catalog.FeatureID{"auth", "shop", "blog"})

	for _, fw := range reg.Frameworks() {
		t.Run(string(fw), func(t *testing.T) {
			r := reg.Lookup(fw).Unwrap()
			seen := map[string]catalog.PageID{}
			for _, page := range set.Pages.Items() {
				artifacts, err := r.RenderPage(page, fullBundle(page), parityCtx(fw))
				require.NoError(t, err, "page %s", page)
				for _, a := range artifacts {
					prev, dup := seen[a.Path]
					assert.False(t, dup, "%s collides with %s at %s", page, prev, a.Path)
					seen[a.Path] = page
				}
			}
		})
	}
}
