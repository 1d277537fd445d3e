package generate

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/siteforge-dev/siteforge/internal/logfields"
)

// stageOutcome is the normalized result of one stage execution.
type stageOutcome struct {
	err    *StageError
	result StageResult
	abort  bool
}

// classifyStageResult converts a raw stage error into a stageOutcome.
func classifyStageResult(stage StageName, err error) stageOutcome {
	if err == nil {
		return stageOutcome{result: StageResultSuccess}
	}
	var se *StageError
	if !errors.As(err, &se) {
		se = NewFatalStageError(stage, err)
	}
	switch se.Kind {
	case StageErrorWarning:
		return stageOutcome{err: se, result: StageResultWarning}
	case StageErrorCanceled:
		return stageOutcome{err: se, result: StageResultCanceled, abort: true}
	default:
		return stageOutcome{err: se, result: StageResultFatal, abort: true}
	}
}

// RunStages executes stages in order, recording timing and stopping on the
// first fatal error or cancellation. Warning-kind errors are recorded and the
// pipeline continues.
func RunStages(ctx context.Context, st *State, stages []StageDef) error {
	recorder := st.Generator.recorder
	for _, def := range stages {
		select {
		case <-ctx.Done():
			se := NewCanceledStageError(def.Name, ctx.Err())
			st.Report.StageErrorKinds[string(def.Name)] = se.Kind
			st.Report.AddError("%s", se.Error())
			st.Report.RecordStageResult(def.Name, StageResultCanceled, recorder)
			return se
		default:
		}

		t0 := time.Now()
		err := def.Fn(ctx, st)
		dur := time.Since(t0)

		st.Report.StageDurations[string(def.Name)] = dur
		recorder.ObserveStageDuration(string(def.Name), dur)

		out := classifyStageResult(def.Name, err)
		if out.err != nil {
			st.Report.StageErrorKinds[string(def.Name)] = out.err.Kind
			if out.err.Kind == StageErrorWarning {
				st.Report.AddWarning("%s", out.err.Error())
			} else {
				st.Report.AddError("%s", out.err.Error())
			}
		}
		st.Report.RecordStageResult(def.Name, out.result, recorder)

		slog.Debug("stage complete",
			logfields.RunID(st.Report.RunID),
			logfields.Stage(string(def.Name)),
			logfields.DurationMS(float64(dur.Milliseconds())),
			logfields.Outcome(string(out.result)))

		if out.abort {
			return out.err
		}
	}
	return nil
}
