package react

import (
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

func testCtx(ts bool, features ...catalog.FeatureID) *project.Context {
	selected := sets.New[catalog.FeatureID]()
	for _, f := range features {
		selected.Add(f)
	}
	return &project.Context{
		ProjectName:      "demo-site",
		BusinessName:     "Demo Co",
		Framework:        config.FrameworkReact,
		Industry:         "small-business",
		SelectedFeatures: selected,
		ColorScheme:      "blue",
		TypeScript:       ts,
	}
}

func testBundle(page catalog.PageID) *content.Bundle {
	return &content.Bundle{PageID: page, Sections: []content.Section{
		{Key: "hero", Content: content.SectionContent{Kind: content.KindHero, Hero: &content.Hero{Title: "Hello"}}},
	}}
}

func TestRenderPageEmitsPageComponent(t *testing.T) {
	r := New()
	artifacts, err := r.RenderPage("contact", testBundle("contact"), testCtx(false, "contact-form"))
	require.NoError(t, err)
	require.Len(t, artifacts, 1)

	a := artifacts[0]
	assert.Equal(t, "src/pages/Contact.jsx", a.Path)
	assert.Equal(t, render.KindSource, a.Kind)
	assert.Contains(t, a.Content, "import ContactForm from '../components/ContactForm';")
	assert.Contains(t, a.Content, "export default function Contact()")
	assert.Contains(t, a.Content, `className="page page-contact"`)
	assert.Contains(t, a.Content, `data-section="hero"`)
	assert.Contains(t, a.Content, "<ContactForm />")
}

func TestRenderPageUnknownPageReportsNoTemplate(t *testing.T) {
	r := New()
	_, err := r.RenderPage("press-kit", testBundle("press-kit"), testCtx(false))
	assert.ErrorIs(t, err, render.ErrNoTemplate)
}

func TestRenderPageTypeScriptExtension(t *testing.T) {
	r := New()
	artifacts, err := r.RenderPage("home", testBundle("home"), testCtx(true))
	require.NoError(t, err)
	assert.Equal(t, "src/pages/Home.tsx", artifacts[0].Path)
}

func TestWrapPageAcceptsArbitraryPage(t *testing.T) {
	r := New()
	a := r.WrapPage("press-kit", "      <p>inner</p>", testCtx(false))
	assert.Equal(t, "src/pages/PressKit.jsx", a.Path)
	assert.Contains(t, a.Content, "<p>inner</p>")
	assert.Contains(t, a.Content, "export default function PressKit()")
}

func TestScaffoldWiresRouterAndComponents(t *testing.T) {
	r := New()
	set := resolve.Resolve(catalog.Default(), resolve.CorePages(), []catalog.FeatureID{"contact-form", "gallery"})
	artifacts, err := r.Scaffold(set, testCtx(false, "contact-form", "gallery"))
	require.NoError(t, err)

	byPath := map[string]render.Artifact{}
	for _, a := range artifacts {
		byPath[a.Path] = a
	}

	app := byPath["src/App.jsx"]
	assert.Contains(t, app.Content, `<Route path="/" element={<Home />} />`)
	assert.Contains(t, app.Content, `<Route path="/gallery" element={<Gallery />} />`)

	nav := byPath["src/components/Navbar.jsx"]
	assert.Contains(t, nav.Content, `<NavLink to="/contact">Contact</NavLink>`)

	require.Contains(t, byPath, "src/components/ContactForm.jsx")
	require.Contains(t, byPath, "src/components/GalleryGrid.jsx")
	require.Contains(t, byPath, "src/components/Lightbox.jsx")

	main := byPath["src/main.jsx"]
	assert.Contains(t, main.Content, "import './styles/base.css';")
	assert.Contains(t, main.Content, "import './styles/forms.css';")
	assert.Contains(t, main.Content, "import './styles/gallery.css';")

	base := byPath["src/styles/base.css"]
	assert.False(t, strings.Contains(base.Content, "__PRIMARY__"))
}

func TestScaffoldTypeScriptAddsTSConfig(t *testing.T) {
	r := New()
	set := resolve.Resolve(catalog.Default(), resolve.CorePages(), nil)
	artifacts, err := r.Scaffold(set, testCtx(true))
	require.NoError(t, err)

	var found bool
	for _, a := range artifacts {
		if a.Path == "tsconfig.json" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestManifestSeed(t *testing.T) {
	r := New()
	seed := r.Manifest(testCtx(false))
	names := make([]string, len(seed.Dependencies))
	for i, d := range seed.Dependencies {
		names[i] = d.Name
	}
	assert.Contains(t, names, "react")
	assert.Contains(t, names, "react-router-dom")
	assert.Equal(t, "vite", seed.Scripts["dev"])

	ts := r.Manifest(testCtx(true))
	devNames := make([]string, len(ts.DevDependencies))
	for i, d := range ts.DevDependencies {
		devNames[i] = d.Name
	}
	assert.Contains(t, devNames, "typescript")
}
