package site

import (
	"errors"
	"log/slog"

	ferrors "git.home.luguber.info/inful/docnav/internal/foundation/errors"
	"git.home.luguber.info/inful/docnav/internal/nav"
	"git.home.luguber.info/inful/docnav/internal/scan"
	"git.home.luguber.info/inful/docnav/internal/storage"
)

// runState carries one run's intermediate results between stages.
type runState struct {
	*Generator

	logger *slog.Logger
	report *Report

	paths     []string
	indexes   *nav.Indexes
	overrides map[string]string // directory -> override content
	outputs   []Output
}

// newDocument builds a document, classifying malformed paths as validation
// errors.
func newDocument(p, title string) (nav.Document, error) {
	doc, err := nav.NewDocument(p, title)
	if err != nil {
		var pe *nav.PathError
		if errors.As(err, &pe) {
			return nav.Document{}, invalidPath(err, pe)
		}
		return nav.Document{}, err
	}
	return doc, nil
}

func invalidPath(err error, pe *nav.PathError) error {
	return ferrors.ValidationError("invalid document path").
		WithCause(err).
		WithContext("path", pe.Path).
		Build()
}

func readError(err error, p string) error {
	if errors.Is(err, storage.ErrNotFound) {
		return ferrors.WrapError(err, ferrors.CategoryNotFound, "document not found").
			WithContext("path", p).
			Build()
	}
	return ferrors.FileSystemError("read document").
		WithCause(err).
		WithContext("path", p).
		Build()
}

func scanError(err error) error {
	if errors.Is(err, scan.ErrRootNotFound) {
		return ferrors.WrapError(err, ferrors.CategoryNotFound, "content root not found").Fatal().Build()
	}
	return ferrors.FileSystemError("scan content root").WithCause(err).Build()
}
