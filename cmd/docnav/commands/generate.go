package commands

import (
	"fmt"

	prom "github.com/prometheus/client_golang/prometheus"

	ferrors "git.home.luguber.info/inful/docnav/internal/foundation/errors"
	"git.home.luguber.info/inful/docnav/internal/logfields"
	"git.home.luguber.info/inful/docnav/internal/metrics"
	"git.home.luguber.info/inful/docnav/internal/site"
)

// GenerateCmd implements the 'generate' command.
type GenerateCmd struct {
	DryRun bool `short:"n" name:"dry-run" help:"Show what would change without writing"`
}

func (c *GenerateCmd) Run(g *Global, root *CLI) error {
	cfg, err := loadConfig(g, root)
	if err != nil {
		return err
	}
	opts, err := site.OptionsFromConfig(cfg)
	if err != nil {
		return err
	}
	opts.DryRun = c.DryRun

	gen, err := newGeneratorWithOptions(g, cfg, opts)
	if err != nil {
		return err
	}

	var reg *prom.Registry
	if cfg.Metrics.Textfile != "" {
		reg = prom.NewRegistry()
		gen.WithRecorder(metrics.NewPrometheusRecorder(reg))
	}

	report, runErr := gen.Generate(g.ctx())

	if reg != nil {
		if err := metrics.WriteTextfile(cfg.Metrics.Textfile, reg); err != nil {
			g.Logger.Warn("Failed to write metrics textfile", logfields.Path(cfg.Metrics.Textfile), logfields.Error(err))
		}
	}
	if runErr != nil {
		return runErr
	}

	out := g.out()
	if c.DryRun {
		for _, d := range report.Diffs {
			action := "modify"
			if d.Created {
				action = "create"
			}
			if _, err := fmt.Fprintf(out, "--- %s (%s)\n%s", d.Path, action, d.Lines); err != nil {
				return ferrors.InternalError("print diff").WithCause(err).Build()
			}
		}
	}
	_, _ = fmt.Fprintln(out, report.Summary())
	return nil
}
