package commands

import (
	"errors"

	ferrors "git.home.luguber.info/inful/docnav/internal/foundation/errors"
	"git.home.luguber.info/inful/docnav/internal/nav"
	"git.home.luguber.info/inful/docnav/internal/scan"
)

func newDocument(p string) (nav.Document, error) {
	doc, err := nav.NewDocument(p, "")
	if err != nil {
		return nav.Document{}, invalidPath(err)
	}
	return doc, nil
}

func invalidPath(err error) error {
	var pe *nav.PathError
	if errors.As(err, &pe) {
		return ferrors.ValidationError("invalid document path").
			WithCause(err).
			WithContext("path", pe.Path).
			Build()
	}
	return err
}

func scanFailure(err error, root string) error {
	category := ferrors.CategoryFileSystem
	if errors.Is(err, scan.ErrRootNotFound) {
		category = ferrors.CategoryNotFound
	}
	return ferrors.WrapError(err, category, "scan content root").
		Fatal().
		WithContext("root", root).
		Build()
}
