package content

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siteforge-dev/siteforge/internal/catalog"
	"github.com/siteforge-dev/siteforge/internal/config"
	"github.com/siteforge-dev/siteforge/internal/project"
)

func testContext(industry string) *project.Context {
	return project.NewContext(&config.Config{
		Project:  config.ProjectConfig{Name: "test-site", Framework: config.FrameworkReact},
		Business: config.BusinessConfig{Name: "Bella Vista", Industry: industry, Tagline: "Fresh and local", Phone: "+1 555 777 8888", Email: "book@bellavista.example"},
		Output:   config.OutputConfig{Directory: "./out"},
	})
}

// failingCollaborator always errors, standing in for a dead AI service.
type failingCollaborator struct{}

func (failingCollaborator) GenerateContent(context.Context, string, config.BusinessConfig, catalog.PageID) (*Bundle, error) {
	return nil, errors.New("upstream 503")
}

// stubCollaborator returns a fixed deterministic bundle.
type stubCollaborator struct{}

func (stubCollaborator) GenerateContent(_ context.Context, _ string, _ config.BusinessConfig, page catalog.PageID) (*Bundle, error) {
	return &Bundle{Sections: []Section{{
		Key:     "hero",
		Content: SectionContent{Kind: KindHero, Hero: &Hero{Title: "AI title for " + string(page)}},
	}}}, nil
}

// malformedCollaborator returns bundles that parse but break the section
// contract in a configurable way.
type malformedCollaborator struct {
	sections []Section
}

func (c malformedCollaborator) GenerateContent(context.Context, string, config.BusinessConfig, catalog.PageID) (*Bundle, error) {
	return &Bundle{Sections: c.sections}, nil
}

// hangingCollaborator blocks until its context is canceled.
type hangingCollaborator struct{}

func (hangingCollaborator) GenerateContent(ctx context.Context, _ string, _ config.BusinessConfig, _ catalog.PageID) (*Bundle, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

// panickingCollaborator exercises the panic guard.
type panickingCollaborator struct{}

func (panickingCollaborator) GenerateContent(context.Context, string, config.BusinessConfig, catalog.PageID) (*Bundle, error) {
	panic("collaborator bug")
}

func defaultResolver(t *testing.T, c Collaborator) *Resolver {
	t.Helper()
	r, err := NewDefaultResolver(c, 50*time.Millisecond)
	require.NoError(t, err)
	return r
}

func TestAIContentPreferredWhenAvailable(t *testing.T) {
	r := defaultResolver(t, stubCollaborator{})
	bundle, warnings := r.ResolveContent(context.Background(), "home", testContext("restaurant"))
	require.NotNil(t, bundle)
	assert.Empty(t, warnings)
	require.Len(t, bundle.Sections, 1)
	assert.Equal(t, "AI title for home", bundle.Sections[0].Content.Hero.Title)
	assert.Equal(t, catalog.PageID("home"), bundle.PageID)
}

func TestFallsBackToIndustryDefaultsOnAIFailure(t *testing.T) {
	r := defaultResolver(t, failingCollaborator{})
	bundle, warnings := r.ResolveContent(context.Background(), "home", testContext("restaurant"))
	require.NotNil(t, bundle)
	require.Len(t, warnings, 1)
	assert.Equal(t, "ai", warnings[0].Provider)
	assert.ErrorIs(t, warnings[0].Err, ErrUnavailable)

	hero, ok := bundle.Section("hero")
	require.True(t, ok)
	assert.Equal(t, "Bella Vista", hero.Content.Hero.Title)
	assert.Equal(t, "Fresh and local", hero.Content.Hero.Subtitle)
}

func TestMalformedCollaboratorBundlesAreRejected(t *testing.T) {
	tests := []struct {
		name     string
		sections []Section
	}{
		{
			name:     "section with no variant",
			sections: []Section{{Key: "mystery", Content: SectionContent{}}},
		},
		{
			name: "section with missing key",
			sections: []Section{{
				Content: SectionContent{Kind: KindHero, Hero: &Hero{Title: "T"}},
			}},
		},
		{
			name: "duplicate section keys",
			sections: []Section{
				{Key: "hero", Content: SectionContent{Kind: KindHero, Hero: &Hero{Title: "A"}}},
				{Key: "hero", Content: SectionContent{Kind: KindHero, Hero: &Hero{Title: "B"}}},
			},
		},
		{
			name: "kind naming the wrong variant",
			sections: []Section{{
				Key:     "hero",
				Content: SectionContent{Kind: KindList, Hero: &Hero{Title: "T"}},
			}},
		},
		{
			name:     "no sections at all",
			sections: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := defaultResolver(t, malformedCollaborator{sections: tt.sections})
			bundle, warnings := r.ResolveContent(context.Background(), "home", testContext("restaurant"))
			require.NotNil(t, bundle)
			require.Len(t, warnings, 1)
			assert.Equal(t, "ai", warnings[0].Provider)
			assert.ErrorIs(t, warnings[0].Err, ErrUnavailable)

			// The accepted bundle is the industry default, and every
			// section it carries survives structural validation, so each
			// key renders exactly once downstream.
			require.NoError(t, bundle.Validate())
			hero, ok := bundle.Section("hero")
			require.True(t, ok)
			assert.Equal(t, "Bella Vista", hero.Content.Hero.Title)
		})
	}
}

func TestContactDefaultsOverlaidWithBusinessMetadata(t *testing.T) {
	r := defaultResolver(t, failingCollaborator{})
	bundle, _ := r.ResolveContent(context.Background(), "contact", testContext("restaurant"))
	sec, ok := bundle.Section("contact")
	require.True(t, ok)
	require.Equal(t, KindContactInfo, sec.Content.Kind)
	assert.Equal(t, "+1 555 777 8888", sec.Content.Contact.Phone)
	assert.Equal(t, "book@bellavista.example", sec.Content.Contact.Email)
	// Address was not supplied, so the industry default survives.
	assert.Equal(t, "1 Main Street", sec.Content.Contact.Address)
}

func TestPlaceholderForPageUnknownToIndustry(t *testing.T) {
	r := defaultResolver(t, failingCollaborator{})
	// The restaurant asset has no defaults for a shop page.
	bundle, warnings := r.ResolveContent(context.Background(), "shop", testContext("restaurant"))
	require.NotNil(t, bundle)
	assert.Len(t, warnings, 2)
	hero, ok := bundle.Section("hero")
	require.True(t, ok)
	assert.Equal(t, "Shop", hero.Content.Hero.Title)
}

func TestAITimeoutTriggersFallbackNotAbort(t *testing.T) {
	r := defaultResolver(t, hangingCollaborator{})
	start := time.Now()
	bundle, warnings := r.ResolveContent(context.Background(), "home", testContext("salon"))
	require.NotNil(t, bundle)
	require.NotEmpty(t, warnings)
	assert.ErrorIs(t, warnings[0].Err, ErrUnavailable)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestCollaboratorPanicIsContained(t *testing.T) {
	r := defaultResolver(t, panickingCollaborator{})
	bundle, warnings := r.ResolveContent(context.Background(), "about", testContext("fitness"))
	require.NotNil(t, bundle)
	require.NotEmpty(t, warnings)
	assert.Contains(t, warnings[0].Err.Error(), "panic")
}

func TestFallbackCompletenessForFullPageSet(t *testing.T) {
	// Even with a permanently failing collaborator, every page gets a
	// non-empty bundle.
	r := defaultResolver(t, failingCollaborator{})
	pages := []catalog.PageID{"home", "about", "services", "contact", "gallery", "login", "register", "profile", "shop", "cart", "checkout"}
	for _, page := range pages {
		bundle, _ := r.ResolveContent(context.Background(), page, testContext("portfolio"))
		require.NotNil(t, bundle, "page %s", page)
		assert.NotEmpty(t, bundle.Sections, "page %s has empty bundle", page)
	}
}

func TestResolveDeterministicKeysWithStubbedCollaborator(t *testing.T) {
	r := defaultResolver(t, failingCollaborator{})
	a, _ := r.ResolveContent(context.Background(), "home", testContext("restaurant"))
	b, _ := r.ResolveContent(context.Background(), "home", testContext("restaurant"))
	assert.Equal(t, a.Keys(), b.Keys())
}

func TestNilCollaboratorIsQuietlyUnavailable(t *testing.T) {
	r := defaultResolver(t, nil)
	bundle, warnings := r.ResolveContent(context.Background(), "home", testContext("restaurant"))
	require.NotNil(t, bundle)
	require.Len(t, warnings, 1)
	assert.Equal(t, "ai", warnings[0].Provider)
}
