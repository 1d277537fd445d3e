package generate

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/siteforge-dev/siteforge/internal/metrics"
	"github.com/siteforge-dev/siteforge/internal/project"
	"github.com/siteforge-dev/siteforge/internal/version"
)

// Outcome is the typed enumeration of final run result states.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeWarning Outcome = "warning"
	OutcomeFailed  Outcome = "failed"
	// OutcomeCompletedWithErrors marks runs that produced a usable project
	// but where some artifacts could not be written.
	OutcomeCompletedWithErrors Outcome = "completed_with_errors"
	OutcomeCanceled            Outcome = "canceled"
)

// StageCount tracks per-stage result classifications.
type StageCount struct {
	Success  int `json:"success"`
	Warning  int `json:"warning"`
	Fatal    int `json:"fatal"`
	Canceled int `json:"canceled"`
}

// StageResult classifies a single stage execution.
type StageResult string

const (
	StageResultSuccess  StageResult = "success"
	StageResultWarning  StageResult = "warning"
	StageResultFatal    StageResult = "fatal"
	StageResultCanceled StageResult = "canceled"
)

// Report captures everything observable about one generation run. Warnings
// never fail a run; errors mark it failed or partially complete.
type Report struct {
	SchemaVersion int       `json:"schema_version"`
	RunID         string    `json:"run_id"`
	Project       string    `json:"project"`
	Framework     string    `json:"framework"`
	Industry      string    `json:"industry"`
	Start         time.Time `json:"start"`
	End           time.Time `json:"end"`

	Pages      int `json:"pages"`
	Components int `json:"components"`
	Files      int `json:"files"`

	ImplementedFeatures []string `json:"implemented_features"`
	UnknownFeatures     []string `json:"unknown_features"`
	FallbackPages       []string `json:"fallback_pages"`

	Warnings []string `json:"warnings"`
	Errors   []string `json:"errors"`

	StageDurations  map[string]time.Duration  `json:"stage_durations"`
	StageErrorKinds map[string]StageErrorKind `json:"stage_error_kinds"`
	StageCounts     map[string]StageCount     `json:"stage_counts"`

	Outcome Outcome `json:"outcome"`
	Version string  `json:"siteforge_version"`

	canceled bool
}

// NewReport constructs a report for the run context with a fresh run id.
func NewReport(pctx *project.Context) *Report {
	return &Report{
		SchemaVersion:   1,
		RunID:           uuid.NewString(),
		Project:         pctx.ProjectName,
		Framework:       string(pctx.Framework),
		Industry:        pctx.Industry,
		Start:           time.Now(),
		Warnings:        []string{},
		Errors:          []string{},
		StageDurations:  make(map[string]time.Duration),
		StageErrorKinds: make(map[string]StageErrorKind),
		StageCounts:     make(map[string]StageCount),
		Version:         version.Version,
	}
}

// AddWarning records a non-fatal issue.
func (r *Report) AddWarning(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// AddError records an error. Errors do not abort the pipeline by themselves;
// a fatal StageError does.
func (r *Report) AddError(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// RecordStageResult updates counters and emits metrics.
func (r *Report) RecordStageResult(stage StageName, res StageResult, recorder metrics.Recorder) {
	sc := r.StageCounts[string(stage)]
	switch res {
	case StageResultSuccess:
		sc.Success++
		recorder.IncStageResult(string(stage), metrics.ResultSuccess)
	case StageResultWarning:
		sc.Warning++
		recorder.IncStageResult(string(stage), metrics.ResultWarning)
	case StageResultFatal:
		sc.Fatal++
		recorder.IncStageResult(string(stage), metrics.ResultFatal)
	case StageResultCanceled:
		sc.Canceled++
		r.canceled = true
		recorder.IncStageResult(string(stage), metrics.ResultCanceled)
	}
	r.StageCounts[string(stage)] = sc
}

// Finish sets the end time of the report.
func (r *Report) Finish() { r.End = time.Now() }

// DeriveOutcome sets Outcome from recorded stage kinds, errors and warnings.
func (r *Report) DeriveOutcome() {
	if r.canceled {
		r.Outcome = OutcomeCanceled
		return
	}
	for _, kind := range r.StageErrorKinds {
		if kind == StageErrorFatal {
			r.Outcome = OutcomeFailed
			return
		}
	}
	if len(r.Errors) > 0 {
		r.Outcome = OutcomeCompletedWithErrors
		return
	}
	if len(r.Warnings) > 0 {
		r.Outcome = OutcomeWarning
		return
	}
	r.Outcome = OutcomeSuccess
}

// Summary renders a single-line overview for logs and CLI output.
func (r *Report) Summary() string {
	dur := r.End.Sub(r.Start)
	return fmt.Sprintf("project=%s framework=%s pages=%d components=%d files=%d duration=%s warnings=%d errors=%d outcome=%s",
		r.Project, r.Framework, r.Pages, r.Components, r.Files,
		dur.Truncate(time.Millisecond), len(r.Warnings), len(r.Errors), string(r.Outcome))
}

// Persist writes generation-report.json and generation-report.txt into root
// atomically (write temp, rename).
func (r *Report) Persist(root string) error {
	if r.End.IsZero() {
		r.Finish()
		r.DeriveOutcome()
	}
	if err := os.MkdirAll(root, 0o750); err != nil {
		return fmt.Errorf("ensure root for report: %w", err)
	}

	jb, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report json: %w", err)
	}
	if err := atomicWrite(filepath.Join(root, "generation-report.json"), append(jb, '\n')); err != nil {
		return err
	}
	return atomicWrite(filepath.Join(root, "generation-report.txt"), []byte(r.text()))
}

func atomicWrite(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename report into place: %w", err)
	}
	return nil
}

func (r *Report) text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generation report %s\n", r.RunID)
	fmt.Fprintf(&b, "%s\n\n", r.Summary())

	stages := make([]string, 0, len(r.StageDurations))
	for name := range r.StageDurations {
		stages = append(stages, name)
	}
	sort.Strings(stages)
	for _, name := range stages {
		fmt.Fprintf(&b, "stage %-18s %s\n", name, r.StageDurations[name].Truncate(time.Microsecond))
	}
	if len(r.Warnings) > 0 {
		b.WriteString("\nwarnings:\n")
		for _, w := range r.Warnings {
			fmt.Fprintf(&b, "  - %s\n", w)
		}
	}
	if len(r.Errors) > 0 {
		b.WriteString("\nerrors:\n")
		for _, e := range r.Errors {
			fmt.Fprintf(&b, "  - %s\n", e)
		}
	}
	return b.String()
}
