package site

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"git.home.luguber.info/inful/docnav/internal/metrics"
)

// OutputSource tells where an output's content came from.
type OutputSource string

const (
	SourceGenerated OutputSource = "generated"
	SourceOverride  OutputSource = "override"
	SourceSummary   OutputSource = "summary"
)

// Output is one rendered file awaiting write.
type Output struct {
	Path    string
	Content string
	Source  OutputSource
}

// Report summarizes a run.
type Report struct {
	RunID  string
	Start  time.Time
	End    time.Time
	DryRun bool

	Documents        int // content documents indexed
	SyntheticIndexes int // synthesized directory-index entries in the summary
	Directories      int // directory groups, one index output each
	Overrides        int // directory indexes copied from an override file
	Untitled         int // documents titled by path because their frontmatter is unreadable
	Written          int // outputs written
	Unchanged        int // dry run: outputs identical to the existing file

	// Outputs lists output paths in write order.
	Outputs []string
	// Diffs holds dry-run differences against existing files.
	Diffs []FileDiff

	StageDurations map[StageName]time.Duration
	Outcome        metrics.OutcomeLabel
}

func newReport(runID string, dryRun bool) *Report {
	return &Report{
		RunID:          runID,
		Start:          time.Now(),
		DryRun:         dryRun,
		StageDurations: make(map[StageName]time.Duration),
	}
}

func (r *Report) finish(err error) {
	r.End = time.Now()
	var se *StageError
	switch {
	case errors.As(err, &se) && se.Canceled:
		r.Outcome = metrics.OutcomeCanceled
	case err != nil:
		r.Outcome = metrics.OutcomeFailed
	case r.DryRun:
		r.Outcome = metrics.OutcomeDryRun
	default:
		r.Outcome = metrics.OutcomeSuccess
	}
}

// Duration is the wall time of the run.
func (r *Report) Duration() time.Duration {
	return r.End.Sub(r.Start)
}

// Summary renders a one-line human readable description.
func (r *Report) Summary() string {
	return fmt.Sprintf("documents=%d synthetic=%d directories=%d overrides=%d written=%d unchanged=%d outcome=%s duration=%s",
		r.Documents, r.SyntheticIndexes, r.Directories, r.Overrides, r.Written, r.Unchanged, r.Outcome, r.Duration().Round(time.Millisecond))
}

// LogAttrs returns the report as slog attributes.
func (r *Report) LogAttrs() []any {
	return []any{
		slog.Int("documents", r.Documents),
		slog.Int("synthetic", r.SyntheticIndexes),
		slog.Int("directories", r.Directories),
		slog.Int("overrides", r.Overrides),
		slog.Int("untitled", r.Untitled),
		slog.Int("written", r.Written),
		slog.String("outcome", string(r.Outcome)),
		slog.Duration("duration", r.Duration()),
	}
}
