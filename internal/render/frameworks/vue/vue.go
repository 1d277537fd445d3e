// Package vue renders generated projects as Vite-based Vue 3 applications
// using single-file components and vue-router.
package vue

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

func (*Renderer) Framework() config.Framework { return config.FrameworkVue }

func (*Renderer) Options() render.MarkupOptions {
	return render.MarkupOptions{ClassAttr: "class", Indent: "    "}
}

func (r *Renderer) scriptLang(pctx *project.Context) string {
	if pctx.TypeScript {
		return ` lang="ts"`
	}
	return ""
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
	name := render.PageComponentName(page)
	comps := render.PlacedComponents(page, pctx)

	var b strings.Builder
	fmt.Fprintf(&b, "<script setup%s>\n", r.scriptLang(pctx))
	for _, c := range comps {
		fmt.Fprintf(&b, "import %s from '../components/%s.vue';\n", c, c)
	}
	b.WriteString("</script>\n\n")
	b.WriteString("<template>\n")
	fmt.Fprintf(&b, "  <main class=\"page page-%s\">\n", page)
	if inner != "" {
		b.WriteString(inner)
		b.WriteString("\n")
	}
	for _, c := range comps {
		fmt.Fprintf(&b, "    <%s />\n", c)
	}
	b.WriteString("  </main>\n")
	b.WriteString("</template>\n")

	return render.Artifact{
		Path:    fmt.Sprintf("src/pages/%s.vue", name),
		Content: b.String(),
		Kind:    render.KindSource,
	}
}

func (r *Renderer) Manifest(pctx *project.Context) manifest.Seed {
	seed := manifest.Seed{
		Scripts: map[string]string{
			"dev":     "vite",
			"build":   "vite build",
			"preview": "vite preview",
		},
		Dependencies: []catalog.PackageRef{
			{Name: "vue", Version: "^3.5.8"},
			{Name: "vue-router", Version: "^4.4.5"},
		},
		DevDependencies: []catalog.PackageRef{
			{Name: "vite", Version: "^5.4.8"},
			{Name: "@vitejs/plugin-vue", Version: "^5.1.4"},
		},
	}
	if pctx.TypeScript {
		seed.Scripts["build"] = "vue-tsc -b && vite build"
		seed.DevDependencies = append(seed.DevDependencies,
			catalog.PackageRef{Name: "typescript", Version: "^5.6.2"},
			catalog.PackageRef{Name: "vue-tsc", Version: "^2.1.6"},
		)
	}
	return seed
}
