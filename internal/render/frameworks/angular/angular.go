// Package angular renders generated projects as standalone-component Angular
// applications. Angular projects are always TypeScript; the project's
// typescript flag is ignored here.
package angular

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

func (*Renderer) Framework() config.Framework { return config.FrameworkAngular }

func (*Renderer) Options() render.MarkupOptions {
	return render.MarkupOptions{ClassAttr: "class", Indent: "    "}
}

// kebab converts a PascalCase component id to its file/selector form:
// "ContactForm" → "contact-form".
func kebab(id catalog.ComponentID) string {
	var b strings.Builder
	for i, r := range string(id) {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r - 'A' + 'a')
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
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

	// The template is a TS template literal; backticks and ${ in content
	// must not terminate or interpolate it.
	inner = strings.ReplaceAll(inner, "`", "\\`")
	inner = strings.ReplaceAll(inner, "${", "\\${")

	var b strings.Builder
	b.WriteString("import { Component } from '@angular/core';\n")
	for _, c := range comps {
		fmt.Fprintf(&b, "import { %sComponent } from '../components/%s.component';\n", c, kebab(c))
	}
	b.WriteString("\n@Component({\n")
	fmt.Fprintf(&b, "  selector: 'app-%s',\n", page)
	b.WriteString("  standalone: true,\n")
	if len(comps) > 0 {
		refs := make([]string, len(comps))
		for i, c := range comps {
			refs[i] = string(c) + "Component"
		}
		fmt.Fprintf(&b, "  imports: [%s],\n", strings.Join(refs, ", "))
	}
	b.WriteString("  template: `\n")
	fmt.Fprintf(&b, "  <main class=\"page page-%s\">\n", page)
	if inner != "" {
		b.WriteString(inner)
		b.WriteString("\n")
	}
	for _, c := range comps {
		fmt.Fprintf(&b, "    <app-%s />\n", kebab(c))
	}
	b.WriteString("  </main>\n")
	b.WriteString("  `,\n})\n")
	fmt.Fprintf(&b, "export class %sComponent {}\n", name)

	return render.Artifact{
		Path:    fmt.Sprintf("src/app/pages/%s.component.ts", page),
		Content: b.String(),
		Kind:    render.KindSource,
	}
}

func (r *Renderer) Manifest(pctx *project.Context) manifest.Seed {
	return manifest.Seed{
		Scripts: map[string]string{
			"start": "ng serve",
			"build": "ng build",
		},
		Dependencies: []catalog.PackageRef{
			{Name: "@angular/common", Version: "^18.2.0"},
			{Name: "@angular/compiler", Version: "^18.2.0"},
			{Name: "@angular/core", Version: "^18.2.0"},
			{Name: "@angular/platform-browser", Version: "^18.2.0"},
			{Name: "@angular/router", Version: "^18.2.0"},
			{Name: "rxjs", Version: "^7.8.1"},
			{Name: "tslib", Version: "^2.7.0"},
			{Name: "zone.js", Version: "~0.14.10"},
		},
		DevDependencies: []catalog.PackageRef{
			{Name: "@angular-devkit/build-angular", Version: "^18.2.0"},
			{Name: "@angular/cli", Version: "^18.2.0"},
			{Name: "@angular/compiler-cli", Version: "^18.2.0"},
			{Name: "typescript", Version: "~5.5.4"},
		},
	}
}
