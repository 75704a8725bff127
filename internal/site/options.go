package site

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/text/language"

	"git.home.luguber.info/inful/docnav/internal/config"
	ferrors "git.home.luguber.info/inful/docnav/internal/foundation/errors"
	"git.home.luguber.info/inful/docnav/internal/nav"
)

// Options are the explicit inputs of a run.
type Options struct {
	// Top is the top-level document every breadcrumb trail starts from.
	Top string
	// IndexFilename names generated directory indexes.
	IndexFilename string
	// SummaryFilename names the alphabetical summary written at the root.
	SummaryFilename string
	// OverrideFilename names author-provided directory indexes copied verbatim.
	OverrideFilename string
	// TitleSource selects document titles.
	TitleSource config.TitleSource
	// Language drives locale-aware sorting.
	Language language.Tag
	// Templates maps nav template names to replacement template source.
	Templates map[string]string
	// DryRun renders and diffs outputs without writing them.
	DryRun bool
}

func (o *Options) applyDefaults() {
	if o.Top == "" {
		o.Top = "README.md"
	}
	if o.IndexFilename == "" {
		o.IndexFilename = nav.DefaultIndexFilename
	}
	if o.SummaryFilename == "" {
		o.SummaryFilename = "SUMMARY.md"
	}
	if o.OverrideFilename == "" {
		o.OverrideFilename = "index.md"
	}
	if o.TitleSource == "" {
		o.TitleSource = config.TitleFromPath
	}
	if o.Language == language.Und {
		o.Language = language.English
	}
}

// OptionsFromConfig derives run options from cfg, loading template overrides
// from cfg.TemplatesDir when set.
func OptionsFromConfig(cfg *config.Config) (Options, error) {
	tag, err := cfg.LanguageTag()
	if err != nil {
		return Options{}, ferrors.WrapError(err, ferrors.CategoryConfig, "invalid language tag").
			Fatal().
			WithContext("value", cfg.Language).
			Build()
	}
	templates, err := loadTemplateOverrides(cfg.TemplatesDir)
	if err != nil {
		return Options{}, err
	}
	return Options{
		Top:              cfg.Top,
		IndexFilename:    cfg.IndexFilename,
		SummaryFilename:  cfg.SummaryFilename,
		OverrideFilename: cfg.OverrideFilename,
		TitleSource:      cfg.TitleSource,
		Language:         tag,
		Templates:        templates,
	}, nil
}

// loadTemplateOverrides reads the known template names from dir. Missing
// files keep the embedded default.
func loadTemplateOverrides(dir string) (map[string]string, error) {
	if dir == "" {
		return nil, nil
	}
	overrides := make(map[string]string)
	for _, name := range []string{nav.DirectoryTemplate, nav.SummaryTemplate} {
		p := filepath.Join(dir, name)
		// #nosec G304 -- templates directory is operator configuration
		data, err := os.ReadFile(p)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, ferrors.WrapError(err, ferrors.CategoryFileSystem, "read template override").
				WithContext("path", p).
				Build()
		}
		overrides[name] = string(data)
	}
	return overrides, nil
}
