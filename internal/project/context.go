// Package project defines the read-only context shared by every stage of a
// generation run.
package project

import (
	"github.com/siteforge-dev/siteforge/internal/catalog"
	"github.com/siteforge-dev/siteforge/internal/config"
	"github.com/siteforge-dev/siteforge/internal/util/sets"
)

// Context is built once per run from the validated configuration and never
// mutated afterwards.
type Context struct {
	ProjectName      string
	BusinessName     string
	Framework        config.Framework
	Industry         string
	SelectedFeatures sets.Set[catalog.FeatureID]
	ColorScheme      string
	TypeScript       bool
	OutputRoot       string
	Business         config.BusinessConfig
}

// NewContext derives the run context from a validated configuration.
func NewContext(cfg *config.Config) *Context {
	selected := sets.New[catalog.FeatureID]()
	for _, f := range cfg.Features {
		selected.Add(catalog.FeatureID(f))
	}
	return &Context{
		ProjectName:      cfg.Project.Name,
		BusinessName:     cfg.Business.Name,
		Framework:        cfg.Project.Framework,
		Industry:         cfg.Business.Industry,
		SelectedFeatures: selected,
		ColorScheme:      cfg.Project.ColorScheme,
		TypeScript:       cfg.Project.TypeScript,
		OutputRoot:       cfg.Output.Directory,
		Business:         cfg.Business,
	}
}

// RoutePath maps a page id to its route. The home page owns the root route;
// every other page routes by id.
func RoutePath(page catalog.PageID) string {
	if page == "home" {
		return "/"
	}
	return "/" + string(page)
}
