// Package astro renders generated projects as Astro sites. Routing is
// file-based under src/pages; shared chrome lives in a base layout.
package astro

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

func (*Renderer) Framework() config.Framework { return config.FrameworkAstro }

func (*Renderer) Options() render.MarkupOptions {
	return render.MarkupOptions{ClassAttr: "class", Indent: "    "}
}

func pagePath(page catalog.PageID) string {
	if page == "home" {
		return "src/pages/index.astro"
	}
	return fmt.Sprintf("src/pages/%s.astro", page)
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
	b.WriteString("---\n")
	b.WriteString("import BaseLayout from '../layouts/BaseLayout.astro';\n")
	for _, c := range comps {
		fmt.Fprintf(&b, "import %s from '../components/%s.astro';\n", c, c)
	}
	b.WriteString("---\n\n")
	fmt.Fprintf(&b, "<BaseLayout title=%q>\n", fmt.Sprintf("%s | %s", render.NavLabel(page), pctx.BusinessName))
	fmt.Fprintf(&b, "  <main class=\"page page-%s\">\n", page)
	if inner != "" {
		b.WriteString(inner)
		b.WriteString("\n")
	}
	for _, c := range comps {
		fmt.Fprintf(&b, "    <%s />\n", c)
	}
	b.WriteString("  </main>\n")
	b.WriteString("</BaseLayout>\n")

	return render.Artifact{
		Path:    pagePath(page),
		Content: b.String(),
		Kind:    render.KindSource,
	}
}

func (r *Renderer) Manifest(pctx *project.Context) manifest.Seed {
	seed := manifest.Seed{
		Scripts: map[string]string{
			"dev":     "astro dev",
			"build":   "astro build",
			"preview": "astro preview",
		},
		Dependencies: []catalog.PackageRef{
			{Name: "astro", Version: "^4.15.9"},
		},
	}
	if pctx.TypeScript {
		seed.Scripts["build"] = "astro check && astro build"
		seed.DevDependencies = append(seed.DevDependencies,
			catalog.PackageRef{Name: "typescript", Version: "^5.6.2"},
			catalog.PackageRef{Name: "@astrojs/check", Version: "^0.9.3"},
		)
	}
	return seed
}
