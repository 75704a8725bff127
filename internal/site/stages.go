package site

import (
	"context"
	"fmt"
	"time"

	"git.home.luguber.info/inful/docnav/internal/logfields"
	"git.home.luguber.info/inful/docnav/internal/metrics"
)

// StageName identifies a generation stage.
type StageName string

// Canonical stage names, in execution order.
const (
	StageScan      StageName = "scan"
	StageIndex     StageName = "index"
	StageOverrides StageName = "overrides"
	StageRender    StageName = "render"
	StageWrite     StageName = "write"
)

// Stage is one unit of work in a run.
type Stage func(ctx context.Context, rs *runState) error

// StageDef pairs a stage name with its function.
type StageDef struct {
	Name StageName
	Fn   Stage
}

// StageError records which stage failed. It unwraps to the cause, so
// classified errors and context cancellation stay detectable.
type StageError struct {
	Stage    StageName
	Canceled bool
	Err      error
}

func (e *StageError) Error() string {
	if e.Canceled {
		return fmt.Sprintf("stage %s canceled: %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("stage %s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

// Pipeline is a fluent builder for ordered stage definitions.
type Pipeline struct{ Defs []StageDef }

// NewPipeline creates an empty pipeline.
func NewPipeline() *Pipeline { return &Pipeline{Defs: make([]StageDef, 0, 5)} }

// Add appends a stage unconditionally.
func (p *Pipeline) Add(name StageName, fn Stage) *Pipeline {
	p.Defs = append(p.Defs, StageDef{Name: name, Fn: fn})
	return p
}

// runStages executes stages in order, recording timing and stopping on the
// first error. Cancellation is only observed between stages.
func runStages(ctx context.Context, rs *runState, defs []StageDef) error {
	for _, st := range defs {
		if err := ctx.Err(); err != nil {
			rs.recorder.IncStageResult(string(st.Name), metrics.ResultCanceled)
			return &StageError{Stage: st.Name, Canceled: true, Err: err}
		}

		t0 := time.Now()
		err := st.Fn(ctx, rs)
		dur := time.Since(t0)

		rs.report.StageDurations[st.Name] = dur
		rs.recorder.ObserveStageDuration(string(st.Name), dur)

		if err != nil {
			rs.recorder.IncStageResult(string(st.Name), metrics.ResultFailed)
			rs.logger.Error("Stage failed", logfields.Stage(string(st.Name)), logfields.Error(err))
			return &StageError{Stage: st.Name, Err: err}
		}
		rs.recorder.IncStageResult(string(st.Name), metrics.ResultSuccess)
		rs.logger.Debug("Stage complete",
			logfields.Stage(string(st.Name)),
			logfields.DurationMS(float64(dur.Microseconds())/1000))
	}
	return nil
}
