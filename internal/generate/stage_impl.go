package generate

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/siteforge-dev/siteforge/internal/catalog"
	"github.com/siteforge-dev/siteforge/internal/emit"
	"github.com/siteforge-dev/siteforge/internal/gitinit"
	"github.com/siteforge-dev/siteforge/internal/logfields"
	"github.com/siteforge-dev/siteforge/internal/manifest"
	"github.com/siteforge-dev/siteforge/internal/pwa"
	"github.com/siteforge-dev/siteforge/internal/render"
	"github.com/siteforge-dev/siteforge/internal/resolve"
	"github.com/siteforge-dev/siteforge/internal/workspace"
)

// renderConcurrency bounds parallel page renders.
const renderConcurrency = 4

func stagePrepareOutput(_ context.Context, st *State) error {
	if st.Project.OutputRoot == "" {
		return NewFatalStageError(StagePrepareOutput, fmt.Errorf("output directory not configured"))
	}
	staging, err := workspace.Begin(st.Project.OutputRoot)
	if err != nil {
		return NewFatalStageError(StagePrepareOutput, err)
	}
	st.Staging = staging
	return nil
}

func stageResolveFeatures(_ context.Context, st *State) error {
	selected := make([]catalog.FeatureID, 0, len(st.Generator.cfg.Features))
	for _, f := range st.Generator.cfg.Features {
		selected = append(selected, catalog.FeatureID(f))
	}

	st.Resolved = resolve.Resolve(st.Generator.catalog, resolve.CorePages(), selected)
	st.Report.Pages = st.Resolved.Pages.Len()
	st.Report.Components = st.Resolved.Components.Len()
	for _, f := range st.Resolved.Implemented {
		st.Report.ImplementedFeatures = append(st.Report.ImplementedFeatures, string(f))
	}
	for _, f := range st.Resolved.Unknown {
		st.Report.UnknownFeatures = append(st.Report.UnknownFeatures, string(f))
		st.Report.AddWarning("unknown feature %q skipped", f)
	}

	slog.Info("features resolved",
		logfields.RunID(st.Report.RunID),
		logfields.Count(st.Resolved.Pages.Len()))
	return nil
}

func stageResolveContent(ctx context.Context, st *State) error {
	names := st.Generator.resolver.ProviderNames()
	for _, page := range st.Resolved.Pages.Items() {
		if err := ctx.Err(); err != nil {
			return NewCanceledStageError(StageResolveContent, err)
		}
		bundle, warnings := st.Generator.resolver.ResolveContent(ctx, page, st.Project)
		st.Bundles[page] = bundle
		for _, w := range warnings {
			st.Report.AddWarning("%s", w.String())
		}
		if idx := len(warnings); idx < len(names) {
			st.Generator.recorder.IncContentProvider(names[idx])
		}
	}
	return nil
}

// stageRenderPages renders every page concurrently but collects artifacts in
// page order, so output and report are deterministic regardless of
// scheduling.
func stageRenderPages(ctx context.Context, st *State) error {
	pages := st.Resolved.Pages.Items()
	results := make([][]render.Artifact, len(pages))

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(renderConcurrency)

	for i, page := range pages {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			t0 := time.Now()
			artifacts, gap, err := render.RenderPageWithFallback(st.Renderer, page, st.Bundles[page], st.Project)
			if err != nil {
				return fmt.Errorf("render page %s: %w", page, err)
			}
			st.Generator.recorder.ObservePageRender(string(st.Project.Framework), time.Since(t0))
			results[i] = artifacts
			if gap {
				mu.Lock()
				st.Report.FallbackPages = append(st.Report.FallbackPages, string(page))
				st.Report.AddWarning("page %q has no %s template; generic page used", page, st.Project.Framework)
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		if ctx.Err() != nil {
			return NewCanceledStageError(StageRenderPages, ctx.Err())
		}
		return NewFatalStageError(StageRenderPages, err)
	}

	for _, artifacts := range results {
		st.AddArtifacts(artifacts...)
	}
	return nil
}

func stageScaffold(_ context.Context, st *State) error {
	artifacts, err := st.Renderer.Scaffold(st.Resolved, st.Project)
	if err != nil {
		return NewFatalStageError(StageScaffold, fmt.Errorf("scaffold %s project: %w", st.Project.Framework, err))
	}
	st.AddArtifacts(artifacts...)
	return nil
}

func stageWriteManifest(_ context.Context, st *State) error {
	seed := st.Renderer.Manifest(st.Project)
	pkg, err := manifest.Build(st.Project.ProjectName, seed, st.Resolved.DependencyList())
	if err != nil {
		return NewFatalStageError(StageWriteManifest, err)
	}
	st.AddArtifacts(render.Artifact{Path: "package.json", Content: pkg, Kind: render.KindConfig})
	return nil
}

func stagePWAAssets(_ context.Context, st *State) error {
	artifacts, err := pwa.Artifacts(st.Project)
	if err != nil {
		// The site is complete without PWA assets; degrade, don't abort.
		return NewWarnStageError(StagePWAAssets, err)
	}
	st.AddArtifacts(artifacts...)
	return nil
}

func stageEmitFiles(_ context.Context, st *State) error {
	emitter := emit.New(st.Staging.Dir())
	written, err := emitter.WriteAll(st.Artifacts)
	st.Report.Files = written
	st.Generator.recorder.IncFilesWritten(written)
	if err != nil {
		if written == 0 {
			return NewFatalStageError(StageEmitFiles, err)
		}
		// Partial output is still usable; record and continue so the run
		// finishes as completed-with-errors.
		st.Report.AddError("emit: %v", err)
	}
	return nil
}

func stageFinalize(_ context.Context, st *State) error {
	if err := st.Staging.Finalize(st.Generator.cfg.Output.Clean); err != nil {
		return NewFatalStageError(StageFinalize, err)
	}
	if st.Generator.cfg.Output.GitInit {
		if err := gitinit.Init(st.Project.OutputRoot, st.Project.ProjectName); err != nil {
			return NewWarnStageError(StageFinalize, fmt.Errorf("git init: %w", err))
		}
	}
	return nil
}
