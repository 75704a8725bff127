package site

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	ferrors "git.home.luguber.info/inful/docnav/internal/foundation/errors"
	"git.home.luguber.info/inful/docnav/internal/logfields"
	"git.home.luguber.info/inful/docnav/internal/metrics"
	"git.home.luguber.info/inful/docnav/internal/nav"
	"git.home.luguber.info/inful/docnav/internal/storage"
)

// Source lists the content documents of a run as slash-separated paths
// relative to the store root. *scan.Scanner implements it.
type Source interface {
	Scan() ([]string, error)
}

// Generator produces navigation documents for one content root.
type Generator struct {
	store       storage.Store
	source      Source
	opts        Options
	collation   *nav.Collation
	renderer    *nav.Renderer
	breadcrumbs nav.Breadcrumbs
	recorder    metrics.Recorder
	logger      *slog.Logger
}

// NewGenerator validates opts and parses the index templates.
func NewGenerator(store storage.Store, source Source, opts Options) (*Generator, error) {
	opts.applyDefaults()
	collation := nav.NewCollation(opts.Language)
	renderer, err := nav.NewRenderer(collation, opts.Templates)
	if err != nil {
		return nil, ferrors.TemplateError("load index templates").WithCause(err).Build()
	}
	return &Generator{
		store:       store,
		source:      source,
		opts:        opts,
		collation:   collation,
		renderer:    renderer,
		breadcrumbs: nav.Breadcrumbs{Top: opts.Top, IndexFilename: opts.IndexFilename},
		recorder:    metrics.NoopRecorder{},
		logger:      slog.Default(),
	}, nil
}

// WithRecorder sets the metrics recorder.
func (g *Generator) WithRecorder(r metrics.Recorder) *Generator {
	if r == nil {
		r = metrics.NoopRecorder{}
	}
	g.recorder = r
	return g
}

// WithLogger sets the logger.
func (g *Generator) WithLogger(l *slog.Logger) *Generator {
	if l != nil {
		g.logger = l
	}
	return g
}

// Options returns the effective options.
func (g *Generator) Options() Options { return g.opts }

// Breadcrumbs returns the trail builder used by ProcessPage.
func (g *Generator) Breadcrumbs() nav.Breadcrumbs { return g.breadcrumbs }

// Generate runs every stage. The returned report is non-nil even on error.
func (g *Generator) Generate(ctx context.Context) (*Report, error) {
	runID := uuid.NewString()
	logger := g.logger.With(logfields.RunID(runID))
	rs := &runState{
		Generator: g,
		logger:    logger,
		report:    newReport(runID, g.opts.DryRun),
	}

	pipeline := NewPipeline().
		Add(StageScan, stageScan).
		Add(StageIndex, stageIndex).
		Add(StageOverrides, stageOverrides).
		Add(StageRender, stageRender).
		Add(StageWrite, stageWrite)

	logger.Info("Generation started", slog.Bool("dry_run", g.opts.DryRun))
	err := runStages(ctx, rs, pipeline.Defs)
	rs.report.finish(err)

	g.recorder.ObserveRunDuration(rs.report.Duration())
	g.recorder.IncRunOutcome(rs.report.Outcome)

	if err != nil {
		logger.Error("Generation failed", logfields.Error(err), slog.String("outcome", string(rs.report.Outcome)))
		return rs.report, err
	}
	logger.Info("Generation complete", rs.report.LogAttrs()...)
	return rs.report, nil
}

// ProcessPage is the page hook: it returns content with the breadcrumb
// trail of p inserted. The top document comes back unchanged; a malformed
// p is a validation error.
func (g *Generator) ProcessPage(p, content string) (string, error) {
	out, err := g.breadcrumbs.Apply(p, content)
	if err != nil {
		var pe *nav.PathError
		if errors.As(err, &pe) {
			return "", invalidPath(err, pe)
		}
		return "", err
	}
	return out, nil
}

// Page reads p from the store and returns it with its breadcrumb trail.
func (g *Generator) Page(ctx context.Context, p string) (string, error) {
	doc, err := newDocument(p, "")
	if err != nil {
		return "", err
	}
	data, err := g.store.Read(ctx, doc.Path())
	if err != nil {
		return "", readError(err, doc.Path())
	}
	return g.ProcessPage(doc.Path(), string(data))
}
