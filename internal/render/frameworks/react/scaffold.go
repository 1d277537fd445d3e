package react

import (
	"fmt"
	"strings"

	"github.com/siteforge-dev/siteforge/internal/catalog"
	"github.com/siteforge-dev/siteforge/internal/project"
	"github.com/siteforge-dev/siteforge/internal/render"
	"github.com/siteforge-dev/siteforge/internal/resolve"
)

// Scaffold emits the application shell: entry point, router, shared layout
// components, feature component stubs, stylesheets and the Vite config.
func (r *Renderer) Scaffold(set *resolve.ResolvedPageSet, pctx *project.Context) ([]render.Artifact, error) {
	ext := r.sourceExt(pctx)
	pages := set.Pages.Items()

	artifacts := []render.Artifact{
		{Path: "index.html", Content: r.indexHTML(pctx), Kind: render.KindConfig},
		{Path: "vite.config.js", Content: viteConfig, Kind: render.KindConfig},
		{Path: fmt.Sprintf("src/main.%s", ext), Content: r.mainEntry(set), Kind: render.KindSource},
		{Path: fmt.Sprintf("src/App.%s", ext), Content: r.appShell(pages), Kind: render.KindSource},
		{Path: fmt.Sprintf("src/components/Navbar.%s", ext), Content: r.navbar(pages, pctx), Kind: render.KindSource},
		{Path: fmt.Sprintf("src/components/Footer.%s", ext), Content: r.footer(pctx), Kind: render.KindSource},
		{Path: "src/styles/base.css", Content: render.BaseCSS(pctx.ColorScheme), Kind: render.KindStyle},
	}
	if pctx.TypeScript {
		artifacts = append(artifacts, render.Artifact{Path: "tsconfig.json", Content: tsConfig, Kind: render.KindConfig})
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
			Path:    fmt.Sprintf("src/components/%s.%s", comp, ext),
			Content: componentSource(comp),
			Kind:    render.KindSource,
		})
	}
	return artifacts, nil
}

func (r *Renderer) indexHTML(pctx *project.Context) string {
	ext := r.sourceExt(pctx)
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
    <div id="root"></div>
    <script type="module" src="/src/main.%s"></script>
  </body>
</html>
`, render.PrimaryColor(pctx.ColorScheme), pctx.BusinessName, ext)
}

func (r *Renderer) mainEntry(set *resolve.ResolvedPageSet) string {
	var b strings.Builder
	b.WriteString("import React from 'react';\n")
	b.WriteString("import ReactDOM from 'react-dom/client';\n")
	b.WriteString("import App from './App';\n")
	b.WriteString("import './styles/base.css';\n")
	for _, id := range set.StyleBundleList() {
		fmt.Fprintf(&b, "import './styles/%s.css';\n", id)
	}
	b.WriteString(`
ReactDOM.createRoot(document.getElementById('root')).render(
  <React.StrictMode>
    <App />
  </React.StrictMode>,
);
`)
	return b.String()
}

func (r *Renderer) appShell(pages []catalog.PageID) string {
	var b strings.Builder
	b.WriteString("import { BrowserRouter, Routes, Route } from 'react-router-dom';\n")
	b.WriteString("import Navbar from './components/Navbar';\n")
	b.WriteString("import Footer from './components/Footer';\n")
	for _, p := range pages {
		name := render.PageComponentName(p)
		fmt.Fprintf(&b, "import %s from './pages/%s';\n", name, name)
	}
	b.WriteString(`
export default function App() {
  return (
    <BrowserRouter>
      <Navbar />
      <Routes>
`)
	for _, p := range pages {
		fmt.Fprintf(&b, "        <Route path=%q element={<%s />} />\n", project.RoutePath(p), render.PageComponentName(p))
	}
	b.WriteString(`      </Routes>
      <Footer />
    </BrowserRouter>
  );
}
`)
	return b.String()
}

func (r *Renderer) navbar(pages []catalog.PageID, pctx *project.Context) string {
	var b strings.Builder
	b.WriteString("import { NavLink } from 'react-router-dom';\n\n")
	b.WriteString("export default function Navbar() {\n")
	b.WriteString("  return (\n")
	b.WriteString("    <nav className=\"navbar\">\n")
	fmt.Fprintf(&b, "      <span className=\"brand\">%s</span>\n", pctx.BusinessName)
	b.WriteString("      <ul className=\"nav-links\">\n")
	for _, p := range pages {
		fmt.Fprintf(&b, "        <li><NavLink to=%q>%s</NavLink></li>\n", project.RoutePath(p), render.NavLabel(p))
	}
	b.WriteString(`      </ul>
    </nav>
  );
}
`)
	return b.String()
}

func (r *Renderer) footer(pctx *project.Context) string {
	comps := render.FooterComponents(pctx)
	var b strings.Builder
	for _, c := range comps {
		fmt.Fprintf(&b, "import %s from './%s';\n", c, c)
	}
	if len(comps) > 0 {
		b.WriteString("\n")
	}
	b.WriteString("export default function Footer() {\n")
	b.WriteString("  return (\n")
	b.WriteString("    <footer className=\"site-footer\">\n")
	for _, c := range comps {
		fmt.Fprintf(&b, "      <%s />\n", c)
	}
	fmt.Fprintf(&b, "      <p>&copy; {new Date().getFullYear()} %s</p>\n", pctx.BusinessName)
	b.WriteString(`    </footer>
  );
}
`)
	return b.String()
}

const viteConfig = `import { defineConfig } from 'vite';
import react from '@vitejs/plugin-react';

export default defineConfig({
  plugins: [react()],
});
`

const tsConfig = `{
  "compilerOptions": {
    "target": "ES2020",
    "lib": ["ES2020", "DOM", "DOM.Iterable"],
    "module": "ESNext",
    "moduleResolution": "bundler",
    "jsx": "react-jsx",
    "strict": true,
    "noEmit": true,
    "skipLibCheck": true
  },
  "include": ["src"]
}
`
