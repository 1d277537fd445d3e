// Package render defines the framework-agnostic rendering contract and the
// registry of per-framework implementations. A renderer turns a content
// bundle into framework-idiomatic source text; all of them consume the same
// semantic bundle shape, which is what keeps output behaviorally equivalent
// across frameworks.
package render

import (
	"errors"
	"sort"

	"github.com/siteforge-dev/siteforge/internal/catalog"
	"github.com/siteforge-dev/siteforge/internal/config"
	"github.com/siteforge-dev/siteforge/internal/content"
	"github.com/siteforge-dev/siteforge/internal/foundation"
	"github.com/siteforge-dev/siteforge/internal/manifest"
	"github.com/siteforge-dev/siteforge/internal/project"
	"github.com/siteforge-dev/siteforge/internal/resolve"
)

// ArtifactKind classifies an emitted file.
type ArtifactKind string

const (
	KindSource ArtifactKind = "source"
	KindStyle  ArtifactKind = "style"
	KindConfig ArtifactKind = "config"
)

// Artifact is one destination file: a relative slash-separated path plus its
// full content. Artifacts are immutable once created; a later artifact for
// the same path overwrites at emit time (last writer wins).
type Artifact struct {
	Path    string
	Content string
	Kind    ArtifactKind
}

// ErrNoTemplate is returned by RenderPage when a renderer has no bespoke
// template for a page. The caller falls back to the generic page so the
// pipeline never fails solely because a page is exotic.
var ErrNoTemplate = errors.New("no page template for framework")

// Renderer is implemented once per target framework. Implementations differ
// only in syntax: the section order, copy and route conventions are fixed by
// the shared markup walker.
type Renderer interface {
	// Framework names the target this renderer emits for.
	Framework() config.Framework

	// Options returns the markup dialect knobs used by the section walker.
	Options() MarkupOptions

	// RenderPage renders one page into a source artifact (plus, for some
	// frameworks, a co-located style artifact). Returns ErrNoTemplate for
	// pages the framework has no specialization for.
	RenderPage(page catalog.PageID, bundle *content.Bundle, pctx *project.Context) ([]Artifact, error)

	// WrapPage wraps pre-rendered inner markup into a minimal valid page
	// component. It backs the generic fallback and must accept any page id.
	WrapPage(page catalog.PageID, inner string, pctx *project.Context) Artifact

	// Scaffold emits the framework-wide files: entry point, app shell,
	// router wired to the resolved pages, shared components, style bundles
	// and framework config files.
	Scaffold(set *resolve.ResolvedPageSet, pctx *project.Context) ([]Artifact, error)

	// Manifest seeds the dependency manifest with the framework's base
	// packages and scripts; feature dependencies are merged in by the
	// manifest writer.
	Manifest(pctx *project.Context) manifest.Seed
}

// Registry is an explicit lookup table of renderers. It is always passed in,
// never ambient, so tests can register fakes and new frameworks plug in
// without touching resolution or content code.
type Registry struct {
	renderers map[config.Framework]Renderer
}

// NewRegistry builds a registry. Later renderers for the same framework are
// ignored, mirroring first-registration-wins elsewhere in the engine.
func NewRegistry(renderers ...Renderer) *Registry {
	r := &Registry{renderers: make(map[config.Framework]Renderer, len(renderers))}
	for _, re := range renderers {
		if re == nil {
			continue
		}
		if _, exists := r.renderers[re.Framework()]; exists {
			continue
		}
		r.renderers[re.Framework()] = re
	}
	return r
}

// Lookup returns the renderer for a framework, or None when unsupported.
func (r *Registry) Lookup(fw config.Framework) foundation.Option[Renderer] {
	re, ok := r.renderers[fw]
	if !ok {
		return foundation.None[Renderer]()
	}
	return foundation.Some(re)
}

// Frameworks returns the registered frameworks in sorted order.
func (r *Registry) Frameworks() []config.Framework {
	fws := make([]config.Framework, 0, len(r.renderers))
	for fw := range r.renderers {
		fws = append(fws, fw)
	}
	sort.Slice(fws, func(i, j int) bool { return fws[i] < fws[j] })
	return fws
}

// RenderPageWithFallback renders a page, degrading to the generic
// title/subtitle/body page when the renderer lacks a template. The second
// return reports whether the fallback was taken so the orchestrator can
// record a warning.
func RenderPageWithFallback(r Renderer, page catalog.PageID, bundle *content.Bundle, pctx *project.Context) ([]Artifact, bool, error) {
	artifacts, err := r.RenderPage(page, bundle, pctx)
	if err == nil {
		return artifacts, false, nil
	}
	if !errors.Is(err, ErrNoTemplate) {
		return nil, false, err
	}
	inner := GenericBody(bundle, r.Options())
	return []Artifact{r.WrapPage(page, inner, pctx)}, true, nil
}
