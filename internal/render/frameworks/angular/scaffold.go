package angular

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
		{Path: "angular.json", Content: r.angularJSON(set, pctx), Kind: render.KindConfig},
		{Path: "tsconfig.json", Content: tsConfig, Kind: render.KindConfig},
		{Path: "src/index.html", Content: r.indexHTML(pctx), Kind: render.KindConfig},
		{Path: "src/main.ts", Content: mainEntry, Kind: render.KindSource},
		{Path: "src/app/app.component.ts", Content: r.appComponent(pctx), Kind: render.KindSource},
		{Path: "src/app/app.routes.ts", Content: r.routes(pages), Kind: render.KindSource},
		{Path: "src/app/components/navbar.component.ts", Content: r.navbar(pages, pctx), Kind: render.KindSource},
		{Path: "src/app/components/footer.component.ts", Content: r.footer(pctx), Kind: render.KindSource},
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
			Path:    fmt.Sprintf("src/app/components/%s.component.ts", kebab(comp)),
			Content: componentSource(comp),
			Kind:    render.KindSource,
		})
	}
	return artifacts, nil
}

func (r *Renderer) angularJSON(set *resolve.ResolvedPageSet, pctx *project.Context) string {
	styles := []string{`"src/styles/base.css"`}
	for _, id := range set.StyleBundleList() {
		styles = append(styles, fmt.Sprintf("%q", "src/styles/"+string(id)+".css"))
	}
	return fmt.Sprintf(`{
  "$schema": "./node_modules/@angular/cli/lib/config/schema.json",
  "version": 1,
  "projects": {
    %q: {
      "projectType": "application",
      "root": "",
      "sourceRoot": "src",
      "architect": {
        "build": {
          "builder": "@angular-devkit/build-angular:application",
          "options": {
            "outputPath": "dist",
            "index": "src/index.html",
            "browser": "src/main.ts",
            "tsConfig": "tsconfig.json",
            "assets": ["src/assets"],
            "styles": [%s]
          }
        },
        "serve": {
          "builder": "@angular-devkit/build-angular:dev-server",
          "options": { "buildTarget": "%s:build" }
        }
      }
    }
  }
}
`, pctx.ProjectName, strings.Join(styles, ", "), pctx.ProjectName)
}

func (r *Renderer) indexHTML(pctx *project.Context) string {
	return fmt.Sprintf(`<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1.0" />
    <meta name="theme-color" content=%q />
    <link rel="manifest" href="/manifest.json" />
    <title>%s</title>
  </head>
  <body>
    <app-root></app-root>
  </body>
</html>
`, render.PrimaryColor(pctx.ColorScheme), pctx.BusinessName)
}

const mainEntry = `import { bootstrapApplication } from '@angular/platform-browser';
import { provideRouter } from '@angular/router';
import { AppComponent } from './app/app.component';
import { routes } from './app/app.routes';

bootstrapApplication(AppComponent, {
  providers: [provideRouter(routes)],
}).catch((err) => console.error(err));
`

func (r *Renderer) appComponent(pctx *project.Context) string {
	return `import { Component } from '@angular/core';
import { RouterOutlet } from '@angular/router';
import { NavbarComponent } from './components/navbar.component';
import { FooterComponent } from './components/footer.component';

@Component({
  selector: 'app-root',
  standalone: true,
  imports: [RouterOutlet, NavbarComponent, FooterComponent],
  template: ` + "`" + `
  <app-navbar />
  <router-outlet />
  <app-footer />
  ` + "`" + `,
})
export class AppComponent {}
`
}

func (r *Renderer) routes(pages []catalog.PageID) string {
	var b strings.Builder
	b.WriteString("import { Routes } from '@angular/router';\n")
	for _, p := range pages {
		fmt.Fprintf(&b, "import { %sComponent } from './pages/%s.component';\n", render.PageComponentName(p), p)
	}
	b.WriteString("\nexport const routes: Routes = [\n")
	for _, p := range pages {
		route := strings.TrimPrefix(project.RoutePath(p), "/")
		fmt.Fprintf(&b, "  { path: %q, component: %sComponent },\n", route, render.PageComponentName(p))
	}
	b.WriteString("];\n")
	return b.String()
}

func (r *Renderer) navbar(pages []catalog.PageID, pctx *project.Context) string {
	var b strings.Builder
	b.WriteString(`import { Component } from '@angular/core';
import { RouterLink } from '@angular/router';

@Component({
  selector: 'app-navbar',
  standalone: true,
  imports: [RouterLink],
  template: ` + "`" + `
  <nav class="navbar">
`)
	fmt.Fprintf(&b, "    <span class=\"brand\">%s</span>\n", pctx.BusinessName)
	b.WriteString("    <ul class=\"nav-links\">\n")
	for _, p := range pages {
		fmt.Fprintf(&b, "      <li><a routerLink=%q>%s</a></li>\n", project.RoutePath(p), render.NavLabel(p))
	}
	b.WriteString(`    </ul>
  </nav>
  ` + "`" + `,
})
export class NavbarComponent {}
`)
	return b.String()
}

func (r *Renderer) footer(pctx *project.Context) string {
	comps := render.FooterComponents(pctx)

	var b strings.Builder
	b.WriteString("import { Component } from '@angular/core';\n")
	for _, c := range comps {
		fmt.Fprintf(&b, "import { %sComponent } from './%s.component';\n", c, kebab(c))
	}
	b.WriteString("\n@Component({\n  selector: 'app-footer',\n  standalone: true,\n")
	if len(comps) > 0 {
		refs := make([]string, len(comps))
		for i, c := range comps {
			refs[i] = string(c) + "Component"
		}
		fmt.Fprintf(&b, "  imports: [%s],\n", strings.Join(refs, ", "))
	}
	b.WriteString("  template: `\n  <footer class=\"site-footer\">\n")
	for _, c := range comps {
		fmt.Fprintf(&b, "    <app-%s />\n", kebab(c))
	}
	fmt.Fprintf(&b, "    <p>&copy; {{ year }} %s</p>\n", pctx.BusinessName)
	b.WriteString("  </footer>\n  `,\n})\n")
	b.WriteString("export class FooterComponent {\n  year = new Date().getFullYear();\n}\n")
	return b.String()
}

const tsConfig = `{
  "compilerOptions": {
    "target": "ES2022",
    "module": "ES2022",
    "moduleResolution": "bundler",
    "strict": true,
    "experimentalDecorators": true,
    "useDefineForClassFields": false,
    "lib": ["ES2022", "dom"]
  },
  "angularCompilerOptions": {
    "strictTemplates": true
  },
  "include": ["src/**/*.ts"]
}
`
