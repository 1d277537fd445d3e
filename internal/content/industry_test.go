package content

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siteforge-dev/siteforge/internal/catalog"
	"github.com/siteforge-dev/siteforge/internal/config"
)

func TestIndustryAssetsMatchSupportedIndustries(t *testing.T) {
	p, err := NewIndustryProvider()
	require.NoError(t, err)
	assert.ElementsMatch(t, config.SupportedIndustries(), p.Industries(),
		"embedded industry assets must stay in sync with config.SupportedIndustries")
}

func TestEveryIndustryCoversCorePages(t *testing.T) {
	p, err := NewIndustryProvider()
	require.NoError(t, err)
	for _, industry := range p.Industries() {
		pctx := testContext(industry)
		for _, page := range []string{"home", "about", "services", "contact"} {
			res := p.Resolve(context.Background(), catalog.PageID(page), pctx)
			assert.True(t, res.IsOk(), "industry %s missing defaults for %s", industry, page)
		}
	}
}

func TestUnknownIndustryIsUnavailable(t *testing.T) {
	p, err := NewIndustryProvider()
	require.NoError(t, err)
	res := p.Resolve(context.Background(), "home", testContext("space-mining"))
	require.True(t, res.IsErr())
	assert.ErrorIs(t, res.UnwrapErr(), ErrUnavailable)
}

func TestPersonalizationDoesNotMutateCachedAssets(t *testing.T) {
	p, err := NewIndustryProvider()
	require.NoError(t, err)
	first := p.Resolve(context.Background(), "home", testContext("restaurant")).Unwrap()

	other := testContext("restaurant")
	other.Business.Name = "Another Name"
	_ = p.Resolve(context.Background(), "home", other).Unwrap()

	again := p.Resolve(context.Background(), "home", testContext("restaurant")).Unwrap()
	assert.Equal(t, first.Sections[0].Content.Hero.Title, again.Sections[0].Content.Hero.Title)
	assert.Equal(t, "Bella Vista", again.Sections[0].Content.Hero.Title)
}

func TestSectionVariantValidation(t *testing.T) {
	err := validateDoc("x", industryDoc{Pages: map[string][]sectionDoc{
		"home": {{Key: "broken"}},
	}})
	require.Error(t, err)

	err = validateDoc("x", industryDoc{Pages: map[string][]sectionDoc{
		"home": {{Key: "dup", Hero: &Hero{}, List: &List{}}},
	}})
	require.Error(t, err)
}

func TestBundleSectionLookup(t *testing.T) {
	b := &Bundle{Sections: []Section{
		{Key: "hero", Content: SectionContent{Kind: KindHero, Hero: &Hero{Title: "T"}}},
		{Key: "body", Content: SectionContent{Kind: KindFreeText, Text: &FreeText{Markdown: "m"}}},
	}}
	assert.Equal(t, []string{"hero", "body"}, b.Keys())
	_, ok := b.Section("missing")
	assert.False(t, ok)
	s, ok := b.Section("body")
	require.True(t, ok)
	assert.Equal(t, KindFreeText, s.Content.Kind)
}

func TestTitleFromPageID(t *testing.T) {
	assert.Equal(t, "Menu", TitleFromPageID("menu"))
	assert.Equal(t, "Contact Form", TitleFromPageID("contact-form"))
}
