package astro

import (
	"fmt"
	"strings"

	"github.com/siteforge-dev/siteforge/internal/catalog"
	"github.com/siteforge-dev/siteforge/internal/project"
	"github.com/siteforge-dev/siteforge/internal/render"
	"github.com/siteforge-dev/siteforge/internal/resolve"
)

func (r *Renderer) Scaffold(set *resolve.ResolvedPageSet, pctx *project.Context) ([]render.Artifact, error) {
	pages := set.Pages.Items()

	artifacts := []render.Artifact{
		{Path: "astro.config.mjs", Content: astroConfig, Kind: render.KindConfig},
		{Path: "src/layouts/BaseLayout.astro", Content: r.baseLayout(set, pages, pctx), Kind: render.KindSource},
		{Path: "src/styles/base.css", Content: render.BaseCSS(pctx.ColorScheme), Kind: render.KindStyle},
	}

	for _, id := range set.StyleBundleList() {
		css, ok := render.StyleBundleCSS(id)
		if !ok {
			css = fmt.Sprintf("/* %s: no bundled styles */\n", id)
		}
		artifacts = append(artifacts, render.Artifact{
			Path:    fmt.Sprintf("src/styles/%s.css", id),
			Content: css,
			Kind:    render.KindStyle,
		})
	}

	for _, comp := range set.Components.Items() {
		artifacts = append(artifacts, render.Artifact{
			Path:    fmt.Sprintf("src/components/%s.astro", comp),
			Content: componentSource(comp),
			Kind:    render.KindSource,
		})
	}
	return artifacts, nil
}

func (r *Renderer) baseLayout(set *resolve.ResolvedPageSet, pages []catalog.PageID, pctx *project.Context) string {
	footerComps := render.FooterComponents(pctx)

	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("import '../styles/base.css';\n")
	for _, id := range set.StyleBundleList() {
		fmt.Fprintf(&b, "import '../styles/%s.css';\n", id)
	}
	for _, c := range footerComps {
		fmt.Fprintf(&b, "import %s from '../components/%s.astro';\n", c, c)
	}
	b.WriteString("\nconst { title } = Astro.props;\n")
	b.WriteString("---\n\n")

	b.WriteString(`<!doctype html>
<html lang="en">
  <head>
    <meta charset="UTF-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1.0" />
`)
	fmt.Fprintf(&b, "    <meta name=\"theme-color\" content=%q />\n", render.PrimaryColor(pctx.ColorScheme))
	b.WriteString("    <link rel=\"manifest\" href=\"/manifest.json\" />\n")
	b.WriteString("    <title>{title}</title>\n")
	b.WriteString("  </head>\n  <body>\n")

	b.WriteString("    <nav class=\"navbar\">\n")
	fmt.Fprintf(&b, "      <span class=\"brand\">%s</span>\n", pctx.BusinessName)
	b.WriteString("      <ul class=\"nav-links\">\n")
	for _, p := range pages {
		fmt.Fprintf(&b, "        <li><a href=%q>%s</a></li>\n", project.RoutePath(p), render.NavLabel(p))
	}
	b.WriteString("      </ul>\n    </nav>\n")

	b.WriteString("    <slot />\n")

	b.WriteString("    <footer class=\"site-footer\">\n")
	for _, c := range footerComps {
		fmt.Fprintf(&b, "      <%s />\n", c)
	}
	fmt.Fprintf(&b, "      <p>&copy; {new Date().getFullYear()} %s</p>\n", pctx.BusinessName)
	b.WriteString("    </footer>\n  </body>\n</html>\n")
	return b.String()
}

const astroConfig = `import { defineConfig } from 'astro/config';

export default defineConfig({});
`
