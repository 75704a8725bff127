package commands

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/docnav/internal/config"
	ferrors "git.home.luguber.info/inful/docnav/internal/foundation/errors"
	"git.home.luguber.info/inful/docnav/internal/logfields"
	"git.home.luguber.info/inful/docnav/internal/scan"
	"git.home.luguber.info/inful/docnav/internal/site"
	"git.home.luguber.info/inful/docnav/internal/storage"
)

// Global is shared state passed to every command's Run.
type Global struct {
	Logger  *slog.Logger
	Out     io.Writer
	Context context.Context
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"docnav.yaml"`
	Root    string           `short:"r" help:"Content root (overrides the configured root)"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Generate   GenerateCmd   `cmd:"" help:"Write directory indexes and the alphabetical summary"`
	Discover   DiscoverCmd   `cmd:"" help:"List the documents a run would index"`
	Breadcrumb BreadcrumbCmd `cmd:"" help:"Print the breadcrumb trail of one document"`
	Page       PageCmd       `cmd:"" help:"Print a document with its breadcrumb trail inserted"`
	Init       InitCmd       `cmd:"" help:"Initialize a new configuration file"`
}

// AfterApply runs after flag parsing; sets up a provisional logger until the
// configuration is loaded.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	return nil
}

// loadConfig reads root.Config, falling back to defaults when the file does
// not exist, applies flag overrides and installs the configured logger.
func loadConfig(g *Global, root *CLI) (*config.Config, error) {
	cfg, err := config.Load(root.Config)
	switch {
	case errors.Is(err, config.ErrConfigNotFound):
		cfg = config.Default()
		slog.Debug("No configuration file; using defaults", logfields.Path(root.Config))
	case err != nil:
		if _, ok := ferrors.AsClassified(err); ok {
			return nil, err
		}
		return nil, ferrors.ConfigError("load configuration").
			WithCause(err).
			WithContext("path", root.Config).
			Build()
	}
	if root.Root != "" {
		cfg.Root = root.Root
	}

	logger := cfg.Logging.NewLogger(os.Stderr, root.Verbose)
	slog.SetDefault(logger)
	g.Logger = logger
	return cfg, nil
}

// newScanner builds the document scanner for cfg.
func newScanner(cfg *config.Config) *scan.Scanner {
	return scan.New(scan.Options{
		Root:            cfg.Root,
		Extensions:      cfg.Extensions,
		Ignore:          cfg.Ignore,
		SummaryFilename: cfg.SummaryFilename,
		IndexFilename:   cfg.IndexFilename,
	})
}

// newGenerator wires the store, scanner and options for cfg.
func newGenerator(g *Global, cfg *config.Config) (*site.Generator, error) {
	opts, err := site.OptionsFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	return newGeneratorWithOptions(g, cfg, opts)
}

func newGeneratorWithOptions(g *Global, cfg *config.Config, opts site.Options) (*site.Generator, error) {
	gen, err := site.NewGenerator(storage.NewFSStore(cfg.Root), newScanner(cfg), opts)
	if err != nil {
		return nil, err
	}
	return gen.WithLogger(g.Logger), nil
}

func (g *Global) ctx() context.Context {
	if g.Context == nil {
		return context.Background()
	}
	return g.Context
}

func (g *Global) out() io.Writer {
	if g.Out == nil {
		return os.Stdout
	}
	return g.Out
}
