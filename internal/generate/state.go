package generate

import (
	"github.com/siteforge-dev/siteforge/internal/catalog"
	"github.com/siteforge-dev/siteforge/internal/content"
	"github.com/siteforge-dev/siteforge/internal/project"
	"github.com/siteforge-dev/siteforge/internal/render"
	"github.com/siteforge-dev/siteforge/internal/resolve"
	"github.com/siteforge-dev/siteforge/internal/workspace"
)

// State carries everything a generation run accumulates as it flows through
// the stage pipeline. Stages communicate exclusively through it.
type State struct {
	Generator *Generator
	Report    *Report
	Project   *project.Context
	Renderer  render.Renderer

	Resolved  *resolve.ResolvedPageSet
	Bundles   map[catalog.PageID]*content.Bundle
	Artifacts []render.Artifact

	Staging *workspace.Staging
}

// AddArtifacts appends rendered artifacts in order.
func (st *State) AddArtifacts(artifacts ...render.Artifact) {
	st.Artifacts = append(st.Artifacts, artifacts...)
}
