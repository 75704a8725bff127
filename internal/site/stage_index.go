package site

import (
	"context"
	"log/slog"

	"git.home.luguber.info/inful/docnav/internal/config"
	ferrors "git.home.luguber.info/inful/docnav/internal/foundation/errors"
	"git.home.luguber.info/inful/docnav/internal/frontmatter"
	"git.home.luguber.info/inful/docnav/internal/logfields"
	"git.home.luguber.info/inful/docnav/internal/markdown"
	"git.home.luguber.info/inful/docnav/internal/nav"
)

func stageScan(_ context.Context, rs *runState) error {
	paths, err := rs.source.Scan()
	if err != nil {
		return scanError(err)
	}
	rs.paths = paths
	rs.logger.Info("Documents discovered", logfields.Count(len(paths)))
	return nil
}

func stageIndex(ctx context.Context, rs *runState) error {
	ix := nav.NewIndexes(rs.opts.IndexFilename)
	for _, p := range rs.paths {
		doc, err := newDocument(p, "")
		if err != nil {
			return err
		}
		title, err := rs.titleFor(ctx, doc)
		if err != nil {
			return err
		}
		if title != "" {
			if doc, err = newDocument(doc.Path(), title); err != nil {
				return err
			}
		}
		ix.Add(doc)
	}

	rs.indexes = ix
	rs.report.Documents = ix.Documents()
	rs.report.SyntheticIndexes = ix.Synthetic()
	rs.report.Directories = ix.Directories.Len()
	rs.recorder.SetDocuments("content", ix.Documents())
	rs.recorder.SetDocuments("synthetic", ix.Synthetic())
	rs.recorder.SetDocuments("directories", ix.Directories.Len())

	rs.logger.Debug("Indexes built",
		logfields.Count(ix.Documents()),
		slog.Int("synthetic", ix.Synthetic()),
		slog.Int("directories", ix.Directories.Len()),
		slog.Int("initials", len(ix.Alphabetical)))
	return nil
}

// titleFor returns the configured title of doc, or "" to fall back to the
// document path.
func (rs *runState) titleFor(ctx context.Context, doc nav.Document) (string, error) {
	if rs.opts.TitleSource == config.TitleFromPath {
		return "", nil
	}
	data, err := rs.store.Read(ctx, doc.Path())
	if err != nil {
		return "", readError(err, doc.Path())
	}

	fm, err := frontmatter.Parse(string(data))
	if err != nil {
		rs.untitled(doc, err)
		return "", nil
	}

	switch rs.opts.TitleSource {
	case config.TitleFromFrontmatter:
		title, ok, err := fm.Title()
		if err != nil {
			rs.untitled(doc, err)
			return "", nil
		}
		if ok {
			return title, nil
		}
	case config.TitleFromHeading:
		if title, ok := markdown.FirstHeading([]byte(fm.Body)); ok {
			return title, nil
		}
	}
	return "", nil
}

// untitled logs a document whose frontmatter cannot be read; it keeps its
// path as title and the run continues.
func (rs *runState) untitled(doc nav.Document, err error) {
	warn := ferrors.ValidationError("unreadable frontmatter").
		WithCause(err).
		Warning().
		WithContext("path", doc.Path()).
		Build()
	rs.report.Untitled++
	rs.logger.Warn("Titling document by path", logfields.Path(doc.Path()), logfields.Error(warn))
}
