// Package generate orchestrates a full project generation run: feature
// resolution, content resolution, rendering, manifest and PWA emission, and
// atomic hand-off of the staged output.
package generate

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/siteforge-dev/siteforge/internal/catalog"
	"github.com/siteforge-dev/siteforge/internal/config"
	"github.com/siteforge-dev/siteforge/internal/content"
	"github.com/siteforge-dev/siteforge/internal/events"
	"github.com/siteforge-dev/siteforge/internal/history"
	"github.com/siteforge-dev/siteforge/internal/logfields"
	"github.com/siteforge-dev/siteforge/internal/metrics"
	"github.com/siteforge-dev/siteforge/internal/project"
	"github.com/siteforge-dev/siteforge/internal/render"
	"github.com/siteforge-dev/siteforge/internal/render/frameworks"
)

// Generator runs generation pipelines for one configuration.
type Generator struct {
	cfg      *config.Config
	catalog  *catalog.Catalog
	registry *render.Registry
	resolver *content.Resolver
	recorder metrics.Recorder
	events   events.Publisher
	history  *history.Store
}

// Option customizes a Generator.
type Option func(*Generator)

func WithCatalog(c *catalog.Catalog) Option       { return func(g *Generator) { g.catalog = c } }
func WithRegistry(r *render.Registry) Option      { return func(g *Generator) { g.registry = r } }
func WithResolver(r *content.Resolver) Option     { return func(g *Generator) { g.resolver = r } }
func WithPublisher(p events.Publisher) Option     { return func(g *Generator) { g.events = p } }
func WithHistory(h *history.Store) Option         { return func(g *Generator) { g.history = h } }
func WithRecorder(r metrics.Recorder) Option {
	return func(g *Generator) {
		if r == nil {
			r = metrics.NoopRecorder{}
		}
		g.recorder = r
	}
}

// New constructs a Generator with the default catalog, renderer registry and
// content chain; options override individual collaborators.
func New(cfg *config.Config, opts ...Option) (*Generator, error) {
	// The CLI validates at load time; library callers constructing a
	// Config directly must hit the same fail-fast gate, so an unsupported
	// framework or industry errors here before anything is written.
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	g := &Generator{
		cfg:      cfg,
		catalog:  catalog.Default(),
		registry: frameworks.DefaultRegistry(),
		recorder: metrics.NoopRecorder{},
		events:   events.Noop{},
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.resolver == nil {
		var collaborator content.Collaborator
		if cfg.Content.AIEndpoint != "" {
			collaborator = content.NewHTTPCollaborator(cfg.Content.AIEndpoint)
		}
		resolver, err := content.NewDefaultResolver(collaborator, cfg.Content.AITimeout)
		if err != nil {
			return nil, fmt.Errorf("build content resolver: %w", err)
		}
		g.resolver = resolver
	}
	return g, nil
}

// Generate runs the full pipeline and returns the report. The report is
// non-nil even on failure; the error is the aborting stage error, if any.
func (g *Generator) Generate(ctx context.Context) (*Report, error) {
	pctx := project.NewContext(g.cfg)
	report := NewReport(pctx)

	slog.Info("generation started",
		logfields.RunID(report.RunID),
		logfields.Framework(string(pctx.Framework)),
		logfields.Industry(pctx.Industry),
		logfields.Count(len(g.cfg.Features)))

	st := &State{
		Generator: g,
		Report:    report,
		Project:   pctx,
		Bundles:   make(map[catalog.PageID]*content.Bundle),
	}

	var runErr error
	if re := g.registry.Lookup(pctx.Framework); re.IsSome() {
		st.Renderer = re.Unwrap()
		runErr = RunStages(ctx, st, []StageDef{
			{Name: StagePrepareOutput, Fn: stagePrepareOutput},
			{Name: StageResolveFeatures, Fn: stageResolveFeatures},
			{Name: StageResolveContent, Fn: stageResolveContent},
			{Name: StageRenderPages, Fn: stageRenderPages},
			{Name: StageScaffold, Fn: stageScaffold},
			{Name: StageWriteManifest, Fn: stageWriteManifest},
			{Name: StagePWAAssets, Fn: stagePWAAssets},
			{Name: StageEmitFiles, Fn: stageEmitFiles},
			{Name: StageFinalize, Fn: stageFinalize},
		})
	} else {
		runErr = NewFatalStageError(StagePrepareOutput,
			fmt.Errorf("no renderer registered for framework %q", pctx.Framework))
		report.StageErrorKinds[string(StagePrepareOutput)] = StageErrorFatal
		report.AddError("%s", runErr.Error())
	}

	// A fatal abort leaves the stage directory behind; remove it so failed
	// runs never touch the destination.
	if runErr != nil && st.Staging != nil {
		if abortErr := st.Staging.Abort(); abortErr != nil {
			slog.Warn("stage cleanup failed", logfields.Error(abortErr))
		}
	}

	report.Finish()
	report.DeriveOutcome()
	g.recorder.ObserveGenerationDuration(report.End.Sub(report.Start))
	g.recorder.IncGenerationOutcome(string(report.Outcome))

	if runErr == nil {
		if err := report.Persist(pctx.OutputRoot); err != nil {
			slog.Warn("report persistence failed", logfields.Error(err))
			report.AddWarning("persist report: %v", err)
		}
	}

	g.afterRun(ctx, report)

	slog.Info("generation finished",
		logfields.RunID(report.RunID),
		logfields.Outcome(string(report.Outcome)),
		logfields.Count(report.Files))
	return report, runErr
}

// afterRun publishes the run event and records history. Both are best
// effort: failures are logged, never surfaced.
func (g *Generator) afterRun(ctx context.Context, report *Report) {
	ev := events.GenerationEvent{
		RunID:     report.RunID,
		Project:   report.Project,
		Framework: report.Framework,
		Industry:  report.Industry,
		Outcome:   string(report.Outcome),
		Pages:     report.Pages,
		Files:     report.Files,
		Warnings:  len(report.Warnings),
		Errors:    len(report.Errors),
		Duration:  report.End.Sub(report.Start).Truncate(time.Millisecond).String(),
		Timestamp: report.End,
	}
	if err := g.events.Publish(ctx, ev); err != nil {
		slog.Warn("event publish failed", logfields.RunID(report.RunID), logfields.Error(err))
	}

	if g.history != nil {
		entry := history.Entry{
			RunID:     report.RunID,
			Project:   report.Project,
			Framework: report.Framework,
			Industry:  report.Industry,
			Outcome:   string(report.Outcome),
			Pages:     report.Pages,
			Files:     report.Files,
			Warnings:  len(report.Warnings),
			Errors:    len(report.Errors),
			Duration:  report.End.Sub(report.Start),
		}
		if err := g.history.Record(ctx, entry); err != nil {
			slog.Warn("history record failed", logfields.RunID(report.RunID), logfields.Error(err))
		}
	}
}
