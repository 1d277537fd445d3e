package svelte

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
		{Path: "svelte.config.js", Content: svelteConfig, Kind: render.KindConfig},
		{Path: "vite.config.js", Content: viteConfig, Kind: render.KindConfig},
		{Path: "src/app.html", Content: r.appHTML(pctx), Kind: render.KindConfig},
		{Path: "src/routes/+layout.svelte", Content: r.layout(set, pages, pctx), Kind: render.KindSource},
		{Path: "src/lib/styles/base.css", Content: render.BaseCSS(pctx.ColorScheme), Kind: render.KindStyle},
	}

	for _, id := range set.StyleBundleList() {
		css, ok := render.StyleBundleCSS(id)
		if !ok {
			css = fmt.Sprintf("/* %s: no bundled styles */\n", id)
		}
		artifacts = append(artifacts, render.Artifact{
			Path:    fmt.Sprintf("src/lib/styles/%s.css", id),
			Content: css,
			Kind:    render.KindStyle,
		})
	}

	for _, comp := range set.Components.Items() {
		artifacts = append(artifacts, render.Artifact{
			Path:    fmt.Sprintf("src/lib/components/%s.svelte", comp),
			Content: componentSource(comp),
			Kind:    render.KindSource,
		})
	}
	return artifacts, nil
}

func (r *Renderer) appHTML(pctx *project.Context) string {
	return fmt.Sprintf(`<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1.0" />
    <meta name="theme-color" content=%q />
    <link rel="manifest" href="/manifest.json" />
    %%sveltekit.head%%
  </head>
  <body>
    <div>%%sveltekit.body%%</div>
  </body>
</html>
`, render.PrimaryColor(pctx.ColorScheme))
}

// layout hosts the shared navigation, footer and stylesheet imports around
// every routed page.
func (r *Renderer) layout(set *resolve.ResolvedPageSet, pages []catalog.PageID, pctx *project.Context) string {
	footerComps := render.FooterComponents(pctx)

	var b strings.Builder
	b.WriteString("<script>\n")
	b.WriteString("  import '$lib/styles/base.css';\n")
	for _, id := range set.StyleBundleList() {
		fmt.Fprintf(&b, "  import '$lib/styles/%s.css';\n", id)
	}
	for _, c := range footerComps {
		fmt.Fprintf(&b, "  import %s from '$lib/components/%s.svelte';\n", c, c)
	}
	b.WriteString("</script>\n\n")

	b.WriteString("<nav class=\"navbar\">\n")
	fmt.Fprintf(&b, "  <span class=\"brand\">%s</span>\n", pctx.BusinessName)
	b.WriteString("  <ul class=\"nav-links\">\n")
	for _, p := range pages {
		fmt.Fprintf(&b, "    <li><a href=%q>%s</a></li>\n", project.RoutePath(p), render.NavLabel(p))
	}
	b.WriteString("  </ul>\n</nav>\n\n")

	b.WriteString("<slot />\n\n")

	b.WriteString("<footer class=\"site-footer\">\n")
	for _, c := range footerComps {
		fmt.Fprintf(&b, "  <%s />\n", c)
	}
	fmt.Fprintf(&b, "  <p>&copy; {new Date().getFullYear()} %s</p>\n", pctx.BusinessName)
	b.WriteString("</footer>\n")
	return b.String()
}

const svelteConfig = `import adapter from '@sveltejs/adapter-auto';

/** @type {import('@sveltejs/kit').Config} */
export default {
  kit: {
    adapter: adapter(),
  },
};
`

const viteConfig = `import { sveltekit } from '@sveltejs/kit/vite';
import { defineConfig } from 'vite';

export default defineConfig({
  plugins: [sveltekit()],
});
`
