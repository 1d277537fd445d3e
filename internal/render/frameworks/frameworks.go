// Package frameworks assembles the built-in renderer registry. It exists as
// a separate package so render itself never imports its implementations.
package frameworks

import (
	"github.com/siteforge-dev/siteforge/internal/render"
	"github.com/siteforge-dev/siteforge/internal/render/frameworks/angular"
	"github.com/siteforge-dev/siteforge/internal/render/frameworks/astro"
	"github.com/siteforge-dev/siteforge/internal/render/frameworks/react"
	"github.com/siteforge-dev/siteforge/internal/render/frameworks/svelte"
	"github.com/siteforge-dev/siteforge/internal/render/frameworks/vue"
)

// DefaultRegistry returns a registry with every built-in renderer.
func DefaultRegistry() *render.Registry {
	return render.NewRegistry(
		react.New(),
		vue.New(),
		angular.New(),
		svelte.New(),
		astro.New(),
	)
}
