package commands

import (
	"fmt"
)

// BreadcrumbCmd implements the 'breadcrumb' command.
type BreadcrumbCmd struct {
	Path string `arg:"" help:"Document path relative to the content root"`
}

func (b *BreadcrumbCmd) Run(g *Global, root *CLI) error {
	cfg, err := loadConfig(g, root)
	if err != nil {
		return err
	}
	gen, err := newGenerator(g, cfg)
	if err != nil {
		return err
	}
	trail, ok, err := gen.Breadcrumbs().Trail(b.Path)
	if err != nil {
		return invalidPath(err)
	}
	if ok {
		_, _ = fmt.Fprintln(g.out(), trail)
	}
	return nil
}
