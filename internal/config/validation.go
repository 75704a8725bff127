package config

import (
	"path"
	"strings"

	"golang.org/x/text/language"

	ferrors "git.home.luguber.info/inful/docnav/internal/foundation/errors"
	"git.home.luguber.info/inful/docnav/internal/foundation/normalization"
)

var titleSources = normalization.New("title source", map[string]TitleSource{
	"path":        TitleFromPath,
	"frontmatter": TitleFromFrontmatter,
	"heading":     TitleFromHeading,
}, TitleFromPath)

// Validate rejects values no run could work with.
func (c *Config) Validate() error {
	filenames := []struct{ field, value string }{
		{"index_filename", c.IndexFilename},
		{"summary_filename", c.SummaryFilename},
		{"override_filename", c.OverrideFilename},
	}
	for _, f := range filenames {
		if err := validateFilename(f.field, f.value); err != nil {
			return err
		}
	}
	if c.OverrideFilename == c.IndexFilename {
		return ferrors.ConfigError("override_filename must differ from index_filename").
			WithContext("value", c.IndexFilename).
			Build()
	}
	top, err := validateTop(c.Top)
	if err != nil {
		return err
	}
	c.Top = top
	if _, err := c.LanguageTag(); err != nil {
		return ferrors.ConfigError("invalid language tag").
			WithCause(err).
			WithContext("value", c.Language).
			Build()
	}
	source, err := titleSources.Parse(string(c.TitleSource))
	if err != nil {
		return ferrors.ConfigError("invalid title_source").
			WithCause(err).
			WithContext("value", string(c.TitleSource)).
			Build()
	}
	c.TitleSource = source
	for _, ext := range c.Extensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			return ferrors.ConfigError("extensions must start with a dot").
				WithContext("value", ext).
				Build()
		}
	}
	return nil
}

func validateFilename(field, name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return ferrors.ConfigError(field+" must be a plain file name").
			WithContext("value", name).
			Build()
	}
	return nil
}

// validateTop returns top cleaned to a slash-separated relative path.
func validateTop(top string) (string, error) {
	cleaned := path.Clean(strings.ReplaceAll(top, `\`, "/"))
	if path.IsAbs(cleaned) || cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", ferrors.ConfigError("top must be a document path relative to root").
			WithContext("value", top).
			Build()
	}
	return cleaned, nil
}

// LanguageTag parses Language as a BCP 47 tag.
func (c *Config) LanguageTag() (language.Tag, error) {
	return language.Parse(c.Language)
}
