package vue

import (
	"fmt"
	"strings"

	"github.com/siteforge-dev/siteforge/internal/catalog"
	"github.com/siteforge-dev/siteforge/internal/project"
	"github.com/siteforge-dev/siteforge/internal/render"
	"github.com/siteforge-dev/siteforge/internal/resolve"
)

func (r *Renderer) Scaffold(set *resolve.ResolvedPageSet, pctx *project.Context) ([]render.Artifact, error) {
	entryExt := "js"
	if pctx.TypeScript {
		entryExt = "ts"
	}
	pages := set.Pages.Items()

	artifacts := []render.Artifact{
		{Path: "index.html", Content: r.indexHTML(pctx, entryExt), Kind: render.KindConfig},
		{Path: "vite.config.js", Content: viteConfig, Kind: render.KindConfig},
		{Path: fmt.Sprintf("src/main.%s", entryExt), Content: r.mainEntry(set), Kind: render.KindSource},
		{Path: fmt.Sprintf("src/router.%s", entryExt), Content: r.router(pages), Kind: render.KindSource},
		{Path: "src/App.vue", Content: appShell, Kind: render.KindSource},
		{Path: "src/components/Navbar.vue", Content: r.navbar(pages, pctx), Kind: render.KindSource},
		{Path: "src/components/Footer.vue", Content: r.footer(pctx), Kind: render.KindSource},
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
			Path:    fmt.Sprintf("src/components/%s.vue", comp),
			Content: componentSource(comp),
			Kind:    render.KindSource,
		})
	}
	return artifacts, nil
}

func (r *Renderer) indexHTML(pctx *project.Context, entryExt string) string {
	return fmt.Sprintf(`<!doctype html>
<html lang="en">
  <head>
    <meta charset="UTF-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1.0" />
    <meta name="theme-color" content=%q />
    <link rel="manifest" href="/manifest.json" />
    <title>%s</title>
  </head>
  <body>
    <div id="app"></div>
    <script type="module" src="/src/main.%s"></script>
  </body>
</html>
`, render.PrimaryColor(pctx.ColorScheme), pctx.BusinessName, entryExt)
}

func (r *Renderer) mainEntry(set *resolve.ResolvedPageSet) string {
	var b strings.Builder
	b.WriteString("import { createApp } from 'vue';\n")
	b.WriteString("import App from './App.vue';\n")
	b.WriteString("import router from './router';\n")
	b.WriteString("import './styles/base.css';\n")
	for _, id := range set.StyleBundleList() {
		fmt.Fprintf(&b, "import './styles/%s.css';\n", id)
	}
	b.WriteString("\ncreateApp(App).use(router).mount('#app');\n")
	return b.String()
}

func (r *Renderer) router(pages []catalog.PageID) string {
	var b strings.Builder
	b.WriteString("import { createRouter, createWebHistory } from 'vue-router';\n")
	for _, p := range pages {
		name := render.PageComponentName(p)
		fmt.Fprintf(&b, "import %s from './pages/%s.vue';\n", name, name)
	}
	b.WriteString("\nconst routes = [\n")
	for _, p := range pages {
		fmt.Fprintf(&b, "  { path: %q, component: %s },\n", project.RoutePath(p), render.PageComponentName(p))
	}
	b.WriteString(`];

export default createRouter({
  history: createWebHistory(),
  routes,
});
`)
	return b.String()
}

func (r *Renderer) navbar(pages []catalog.PageID, pctx *project.Context) string {
	var b strings.Builder
	b.WriteString("<template>\n")
	b.WriteString("  <nav class=\"navbar\">\n")
	fmt.Fprintf(&b, "    <span class=\"brand\">%s</span>\n", pctx.BusinessName)
	b.WriteString("    <ul class=\"nav-links\">\n")
	for _, p := range pages {
		fmt.Fprintf(&b, "      <li><RouterLink to=%q>%s</RouterLink></li>\n", project.RoutePath(p), render.NavLabel(p))
	}
	b.WriteString(`    </ul>
  </nav>
</template>
`)
	return b.String()
}

func (r *Renderer) footer(pctx *project.Context) string {
	comps := render.FooterComponents(pctx)
	var b strings.Builder
	b.WriteString("<script setup>\n")
	for _, c := range comps {
		fmt.Fprintf(&b, "import %s from './%s.vue';\n", c, c)
	}
	b.WriteString("</script>\n\n")
	b.WriteString("<template>\n")
	b.WriteString("  <footer class=\"site-footer\">\n")
	for _, c := range comps {
		fmt.Fprintf(&b, "    <%s />\n", c)
	}
	fmt.Fprintf(&b, "    <p>&copy; {{ new Date().getFullYear() }} %s</p>\n", pctx.BusinessName)
	b.WriteString(`  </footer>
</template>
`)
	return b.String()
}

const appShell = `<script setup>
import Navbar from './components/Navbar.vue';
import Footer from './components/Footer.vue';
</script>

<template>
  <Navbar />
  <RouterView />
  <Footer />
</template>
`

const viteConfig = `import { defineConfig } from 'vite';
import vue from '@vitejs/plugin-vue';

export default defineConfig({
  plugins: [vue()],
});
`
