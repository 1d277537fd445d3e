// Package svelte renders generated projects as SvelteKit applications.
// Routing is file-based, so pages land under src/routes and no router
// source is generated.
package svelte

import (
	"fmt"
	"strings"

	"github.com/siteforge-dev/siteforge/internal/catalog"
	"github.com/siteforge-dev/siteforge/internal/config"
	"github.com/siteforge-dev/siteforge/internal/content"
	"github.com/siteforge-dev/siteforge/internal/manifest"
	"github.com/siteforge-dev/siteforge/internal/project"
	"github.com/siteforge-dev/siteforge/internal/render"
)

type Renderer struct {
	known map[catalog.PageID]struct{}
}

func New() *Renderer {
	return &Renderer{known: render.KnownPages()}
}

func (*Renderer) Framework() config.Framework { return config.FrameworkSvelte }

func (*Renderer) Options() render.MarkupOptions {
	return render.MarkupOptions{ClassAttr: "class", Indent: "  "}
}

// pagePath maps a page id to its SvelteKit route file. The home page owns
// the root route.
func pagePath(page catalog.PageID) string {
	if page == "home" {
		return "src/routes/+page.svelte"
	}
	return fmt.Sprintf("src/routes/%s/+page.svelte", page)
}

func (r *Renderer) RenderPage(page catalog.PageID, bundle *content.Bundle, pctx *project.Context) ([]render.Artifact, error) {
	if _, ok := r.known[page]; !ok {
		return nil, render.ErrNoTemplate
	}
	inner := render.BodyHTML(bundle, r.Options())
	return []render.Artifact{r.pageArtifact(page, inner, pctx)}, nil
}

func (r *Renderer) WrapPage(page catalog.PageID, inner string, pctx *project.Context) render.Artifact {
	return r.pageArtifact(page, inner, pctx)
}

func (r *Renderer) pageArtifact(page catalog.PageID, inner string, pctx *project.Context) render.Artifact {
	comps := render.PlacedComponents(page, pctx)

	var b strings.Builder
	if len(comps) > 0 {
		b.WriteString("<script>\n")
		for _, c := range comps {
			fmt.Fprintf(&b, "  import %s from '$lib/components/%s.svelte';\n", c, c)
		}
		b.WriteString("</script>\n\n")
	}
	fmt.Fprintf(&b, "<main class=\"page page-%s\">\n", page)
	if inner != "" {
		b.WriteString(inner)
		b.WriteString("\n")
	}
	for _, c := range comps {
		fmt.Fprintf(&b, "  <%s />\n", c)
	}
	b.WriteString("</main>\n")

	return render.Artifact{
		Path:    pagePath(page),
		Content: b.String(),
		Kind:    render.KindSource,
	}
}

func (r *Renderer) Manifest(pctx *project.Context) manifest.Seed {
	seed := manifest.Seed{
		Scripts: map[string]string{
			"dev":     "vite dev",
			"build":   "vite build",
			"preview": "vite preview",
		},
		DevDependencies: []catalog.PackageRef{
			{Name: "@sveltejs/kit", Version: "^2.5.28"},
			{Name: "@sveltejs/adapter-auto", Version: "^3.2.5"},
			{Name: "svelte", Version: "^4.2.19"},
			{Name: "vite", Version: "^5.4.8"},
		},
	}
	if pctx.TypeScript {
		seed.DevDependencies = append(seed.DevDependencies,
			catalog.PackageRef{Name: "typescript", Version: "^5.6.2"},
			catalog.PackageRef{Name: "svelte-check", Version: "^4.0.2"},
		)
	}
	return seed
}
