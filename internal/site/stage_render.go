package site

import (
	"context"
	"path"

	ferrors "git.home.luguber.info/inful/docnav/internal/foundation/errors"
	"git.home.luguber.info/inful/docnav/internal/logfields"
)

// stageOverrides reads <dir>/<override filename> for every directory group.
// All reads happen before anything is rendered or written.
func stageOverrides(ctx context.Context, rs *runState) error {
	rs.overrides = make(map[string]string)
	for _, dir := range rs.indexes.Directories.Dirs() {
		p := path.Join(dir, rs.opts.OverrideFilename)
		ok, err := rs.store.Exists(ctx, p)
		if err != nil {
			return readError(err, p)
		}
		if !ok {
			continue
		}
		data, err := rs.store.Read(ctx, p)
		if err != nil {
			return readError(err, p)
		}
		rs.overrides[dir] = string(data)
		rs.logger.Debug("Using directory index override", logfields.Dir(dir), logfields.Path(p))
	}
	rs.report.Overrides = len(rs.overrides)
	return nil
}

// stageRender renders every output in memory: one index per directory group
// in sorted directory order, then the summary.
func stageRender(_ context.Context, rs *runState) error {
	dirs := rs.indexes.Directories.Dirs()
	outputs := make([]Output, 0, len(dirs)+1)
	for _, dir := range dirs {
		out := Output{Path: rs.indexes.Directories.IndexPathFor(dir)}
		if content, ok := rs.overrides[dir]; ok {
			out.Content = content
			out.Source = SourceOverride
		} else {
			content, err := rs.renderer.Directory(dir, rs.indexes.Directories.Group(dir))
			if err != nil {
				return ferrors.TemplateError("render directory index").
					WithCause(err).
					WithContext("dir", dir).
					Build()
			}
			out.Content = content
			out.Source = SourceGenerated
		}
		outputs = append(outputs, out)
	}

	summary, err := rs.renderer.Summary(rs.indexes.Alphabetical)
	if err != nil {
		return ferrors.TemplateError("render summary").
			WithCause(err).
			WithContext("path", rs.opts.SummaryFilename).
			Build()
	}
	outputs = append(outputs, Output{Path: rs.opts.SummaryFilename, Content: summary, Source: SourceSummary})

	rs.outputs = outputs
	for _, out := range outputs {
		rs.report.Outputs = append(rs.report.Outputs, out.Path)
	}
	return nil
}

// stageWrite replaces every output in order. The first failure aborts the
// run. In dry-run mode outputs are diffed against existing files instead.
func stageWrite(ctx context.Context, rs *runState) error {
	if rs.opts.DryRun {
		return diffOutputs(ctx, rs)
	}
	for _, out := range rs.outputs {
		if err := rs.store.Write(ctx, out.Path, []byte(out.Content)); err != nil {
			return ferrors.FileSystemError("write navigation document").
				WithCause(err).
				Fatal().
				WithContext("path", out.Path).
				Build()
		}
		rs.report.Written++
		rs.recorder.IncIndexWritten(string(out.Source))
		rs.logger.Debug("Wrote navigation document", logfields.Path(out.Path), logfields.Source(string(out.Source)))
	}
	return nil
}
