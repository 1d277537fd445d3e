package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"
	prom "github.com/prometheus/client_golang/prometheus"

	"github.com/siteforge-dev/siteforge/internal/catalog"
	"github.com/siteforge-dev/siteforge/internal/config"
	"github.com/siteforge-dev/siteforge/internal/events"
	"github.com/siteforge-dev/siteforge/internal/generate"
	"github.com/siteforge-dev/siteforge/internal/history"
	"github.com/siteforge-dev/siteforge/internal/logfields"
	"github.com/siteforge-dev/siteforge/internal/metrics"
	"github.com/siteforge-dev/siteforge/internal/version"
	"github.com/siteforge-dev/siteforge/internal/watch"
)

var CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"siteforge.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `help:"Print version and exit"`

	Generate struct {
		Output    string `short:"o" help:"Override the configured output directory"`
		Clean     bool   `help:"Remove the output directory before generating"`
		GitInit   bool   `help:"Initialize a git repository in the generated project"`
		HistoryDB string `help:"SQLite file recording run history" default:".siteforge/history.db"`
	} `cmd:"" help:"Generate the website project from the configuration file"`

	Init struct {
		Force bool `help:"Overwrite an existing configuration file"`
	} `cmd:"" help:"Write a starter configuration file"`

	Features struct{} `cmd:"" help:"List the available features and what each one adds"`

	Watch struct {
		Every     time.Duration `help:"Also rebuild on a fixed interval (e.g. 30m)"`
		HistoryDB string        `help:"SQLite file recording run history" default:".siteforge/history.db"`
	} `cmd:"" help:"Regenerate whenever the configuration file changes"`

	History struct {
		DB    string `help:"SQLite history file to read" default:".siteforge/history.db"`
		Limit int    `short:"n" help:"Number of runs to show" default:"10"`
	} `cmd:"" help:"Show recent generation runs"`
}

func main() {
	kctx := kong.Parse(&CLI,
		kong.Name("siteforge"),
		kong.Description("Declarative website project generator"),
		kong.Vars{"version": version.Version})

	logLevel := slog.LevelInfo
	if CLI.Verbose {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var err error
	switch kctx.Command() {
	case "generate":
		err = runGenerate(ctx)
	case "init":
		err = runInit()
	case "features":
		err = runFeatures()
	case "watch":
		err = runWatch(ctx)
	case "history":
		err = runHistory(ctx)
	}
	if err != nil {
		color.Red("error: %v", err)
		os.Exit(1)
	}
}

func runGenerate(ctx context.Context) error {
	cfg, err := config.Load(CLI.Config)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	if CLI.Generate.Output != "" {
		cfg.Output.Directory = CLI.Generate.Output
	}
	if CLI.Generate.Clean {
		cfg.Output.Clean = true
	}
	if CLI.Generate.GitInit {
		cfg.Output.GitInit = true
	}

	opts, cleanup, err := generatorOptions(cfg, CLI.Generate.HistoryDB, nil)
	if err != nil {
		return err
	}
	defer cleanup()

	g, err := generate.New(cfg, opts...)
	if err != nil {
		return err
	}
	report, runErr := g.Generate(ctx)
	printSummary(report, cfg.Output.Directory)
	if runErr != nil {
		return fmt.Errorf("generation %s: %w", report.Outcome, runErr)
	}
	return nil
}

func runInit() error {
	if err := config.Init(CLI.Config, CLI.Init.Force); err != nil {
		return err
	}
	color.Green("wrote %s", CLI.Config)
	fmt.Println("Edit the file, then run: siteforge generate")
	return nil
}

func runFeatures() error {
	c := catalog.Default()
	bold := color.New(color.Bold)
	for _, id := range c.IDs() {
		spec := c.Lookup(id).Unwrap()
		bold.Println(id)
		if len(spec.Pages) > 0 {
			fmt.Printf("  pages:      %v\n", spec.Pages)
		}
		if len(spec.Components) > 0 {
			fmt.Printf("  components: %v\n", spec.Components)
		}
		for _, dep := range spec.Dependencies {
			fmt.Printf("  dependency: %s %s\n", dep.Name, dep.Version)
		}
	}
	return nil
}

func runWatch(ctx context.Context) error {
	// Validate the config up front so a broken file fails fast instead of
	// on the first rebuild.
	cfg, err := config.Load(CLI.Config)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	var recorder metrics.Recorder
	if cfg.Metrics != nil && cfg.Metrics.Listen != "" {
		reg := prom.NewRegistry()
		recorder = metrics.NewPrometheusRecorder(reg)
		srv := &http.Server{
			Addr:              cfg.Metrics.Listen,
			Handler:           metrics.HTTPHandler(reg),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			slog.Info("metrics endpoint listening", slog.String("addr", cfg.Metrics.Listen))
			if serveErr := srv.ListenAndServe(); serveErr != nil && serveErr != http.ErrServerClosed {
				slog.Error("metrics server failed", logfields.Error(serveErr))
			}
		}()
		defer func() {
			shutCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutCtx)
		}()
	}

	rebuild := func(ctx context.Context) error {
		cfg, err := config.Load(CLI.Config)
		if err != nil {
			return fmt.Errorf("load configuration: %w", err)
		}
		opts, cleanup, err := generatorOptions(cfg, CLI.Watch.HistoryDB, recorder)
		if err != nil {
			return err
		}
		defer cleanup()

		g, err := generate.New(cfg, opts...)
		if err != nil {
			return err
		}
		report, runErr := g.Generate(ctx)
		printSummary(report, cfg.Output.Directory)
		return runErr
	}

	var watchOpts []watch.Option
	if CLI.Watch.Every > 0 {
		watchOpts = append(watchOpts, watch.WithInterval(CLI.Watch.Every))
	}
	w, err := watch.New(CLI.Config, rebuild, watchOpts...)
	if err != nil {
		return err
	}
	if err := w.Run(ctx); err != nil && err != context.Canceled {
		return err
	}
	return nil
}

func runHistory(ctx context.Context) error {
	store, err := history.Open(CLI.History.DB)
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	defer func() { _ = store.Close() }()

	entries, err := store.Recent(ctx, CLI.History.Limit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("no recorded runs")
		return nil
	}
	for _, e := range entries {
		fmt.Printf("%s  %-22s %-8s %-10s pages=%-3d files=%-4d %s\n",
			e.CreatedAt.Format("2006-01-02 15:04:05"),
			e.Project, e.Framework, outcomeSprint(e.Outcome), e.Pages, e.Files,
			e.Duration.Truncate(time.Millisecond))
	}
	return nil
}

// generatorOptions wires the optional event publisher and history store from
// config and flags. The returned cleanup closes whatever was opened.
func generatorOptions(cfg *config.Config, historyPath string, recorder metrics.Recorder) ([]generate.Option, func(), error) {
	var opts []generate.Option
	var closers []func()

	if recorder != nil {
		opts = append(opts, generate.WithRecorder(recorder))
	}
	if cfg.Events != nil && cfg.Events.NATSURL != "" {
		pub, err := events.NewNATS(cfg.Events.NATSURL, cfg.Events.Subject)
		if err != nil {
			return nil, nil, fmt.Errorf("connect event publisher: %w", err)
		}
		opts = append(opts, generate.WithPublisher(pub))
		closers = append(closers, pub.Close)
	}
	if historyPath != "" {
		store, err := history.Open(historyPath)
		if err != nil {
			// History is a convenience; a broken DB should not block
			// generation.
			slog.Warn("history disabled", logfields.Error(err))
		} else {
			opts = append(opts, generate.WithHistory(store))
			closers = append(closers, func() { _ = store.Close() })
		}
	}

	cleanup := func() {
		for _, c := range closers {
			c()
		}
	}
	return opts, cleanup, nil
}

func printSummary(report *generate.Report, outputDir string) {
	fmt.Println(report.Summary())
	switch report.Outcome {
	case generate.OutcomeSuccess:
		color.Green("✓ generated %d files into %s", report.Files, outputDir)
	case generate.OutcomeWarning:
		color.Yellow("⚠ generated with %d warning(s)", len(report.Warnings))
		for _, w := range report.Warnings {
			color.Yellow("  - %s", w)
		}
	case generate.OutcomeCompletedWithErrors:
		color.Red("✗ completed with %d error(s)", len(report.Errors))
		for _, e := range report.Errors {
			color.Red("  - %s", e)
		}
	default:
		color.Red("✗ generation %s", report.Outcome)
		for _, e := range report.Errors {
			color.Red("  - %s", e)
		}
	}
}

func outcomeSprint(outcome string) string {
	switch outcome {
	case string(generate.OutcomeSuccess):
		return color.GreenString(outcome)
	case string(generate.OutcomeWarning):
		return color.YellowString(outcome)
	default:
		return color.RedString(outcome)
	}
}
