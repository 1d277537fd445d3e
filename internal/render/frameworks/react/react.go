// Package react renders generated projects as Vite-based React applications.
// It is the reference renderer: the other framework packages follow its file
// layout and section handling.
package react

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

func (*Renderer) Framework() config.Framework { return config.FrameworkReact }

func (*Renderer) Options() render.MarkupOptions {
	return render.MarkupOptions{ClassAttr: "className", Indent: "      "}
}

func (r *Renderer) sourceExt(pctx *project.Context) string {
	if pctx.TypeScript {
		return "tsx"
	}
	return "jsx"
}

// RenderPage emits src/pages/<Name>.jsx for pages the renderer knows. The
// page body is the shared section walk plus the feature components placed on
// this page.
func (r *Renderer) RenderPage(page catalog.PageID, bundle *content.Bundle, pctx *project.Context) ([]render.Artifact, error) {
	if _, ok := r.known[page]; !ok {
		return nil, render.ErrNoTemplate
	}
	inner := render.BodyHTML(bundle, r.Options())
	return []render.Artifact{r.pageArtifact(page, inner, pctx)}, nil
}

// WrapPage backs the generic fallback for pages without a bespoke template.
func (r *Renderer) WrapPage(page catalog.PageID, inner string, pctx *project.Context) render.Artifact {
	return r.pageArtifact(page, inner, pctx)
}

func (r *Renderer) pageArtifact(page catalog.PageID, inner string, pctx *project.Context) render.Artifact {
	name := render.PageComponentName(page)
	comps := render.PlacedComponents(page, pctx)

	var b strings.Builder
	for _, c := range comps {
		fmt.Fprintf(&b, "import %s from '../components/%s';\n", c, c)
	}
	if len(comps) > 0 {
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "export default function %s() {\n", name)
	b.WriteString("  return (\n")
	fmt.Fprintf(&b, "    <main className=\"page page-%s\">\n", page)
	if inner != "" {
		b.WriteString(inner)
		b.WriteString("\n")
	}
	for _, c := range comps {
		fmt.Fprintf(&b, "      <%s />\n", c)
	}
	b.WriteString("    </main>\n")
	b.WriteString("  );\n")
	b.WriteString("}\n")

	return render.Artifact{
		Path:    fmt.Sprintf("src/pages/%s.%s", name, r.sourceExt(pctx)),
		Content: b.String(),
		Kind:    render.KindSource,
	}
}

// Manifest seeds package.json with the React toolchain. Feature packages are
// merged on top by the manifest writer.
func (r *Renderer) Manifest(pctx *project.Context) manifest.Seed {
	seed := manifest.Seed{
		Scripts: map[string]string{
			"dev":     "vite",
			"build":   "vite build",
			"preview": "vite preview",
		},
		Dependencies: []catalog.PackageRef{
			{Name: "react", Version: "^18.3.1"},
			{Name: "react-dom", Version: "^18.3.1"},
			{Name: "react-router-dom", Version: "^6.26.2"},
		},
		DevDependencies: []catalog.PackageRef{
			{Name: "vite", Version: "^5.4.8"},
			{Name: "@vitejs/plugin-react", Version: "^4.3.1"},
		},
	}
	if pctx.TypeScript {
		seed.Scripts["build"] = "tsc -b && vite build"
		seed.DevDependencies = append(seed.DevDependencies,
			catalog.PackageRef{Name: "typescript", Version: "^5.6.2"},
			catalog.PackageRef{Name: "@types/react", Version: "^18.3.8"},
			catalog.PackageRef{Name: "@types/react-dom", Version: "^18.3.0"},
		)
	}
	return seed
}
