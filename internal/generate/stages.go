package generate

import (
	"context"
	"fmt"
)

// Stage is a discrete unit of work in a generation run.
type Stage func(ctx context.Context, st *State) error

// StageName is a strongly-typed identifier for a generation stage.
type StageName string

// Canonical stage names.
const (
	StagePrepareOutput   StageName = "prepare_output"
	StageResolveFeatures StageName = "resolve_features"
	StageResolveContent  StageName = "resolve_content"
	StageRenderPages     StageName = "render_pages"
	StageScaffold        StageName = "scaffold"
	StageWriteManifest   StageName = "write_manifest"
	StagePWAAssets       StageName = "pwa_assets"
	StageEmitFiles       StageName = "emit_files"
	StageFinalize        StageName = "finalize"
)

// StageErrorKind classifies the outcome of a stage.
type StageErrorKind string

const (
	StageErrorFatal    StageErrorKind = "fatal"    // Run must abort.
	StageErrorWarning  StageErrorKind = "warning"  // Non-fatal; record and continue.
	StageErrorCanceled StageErrorKind = "canceled" // Context cancellation.
)

// StageError is a structured error carrying category and underlying cause.
type StageError struct {
	Kind  StageErrorKind
	Stage StageName
	Err   error
}

func (e *StageError) Error() string { return fmt.Sprintf("%s stage %s: %v", e.Kind, e.Stage, e.Err) }
func (e *StageError) Unwrap() error { return e.Err }

func NewFatalStageError(stage StageName, err error) *StageError {
	return &StageError{Kind: StageErrorFatal, Stage: stage, Err: err}
}

func NewWarnStageError(stage StageName, err error) *StageError {
	return &StageError{Kind: StageErrorWarning, Stage: stage, Err: err}
}

func NewCanceledStageError(stage StageName, err error) *StageError {
	return &StageError{Kind: StageErrorCanceled, Stage: stage, Err: err}
}

// StageDef pairs a stage name with its executing function.
type StageDef struct {
	Name StageName
	Fn   Stage
}
