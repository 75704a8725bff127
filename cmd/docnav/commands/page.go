package commands

import (
	"fmt"
)

// PageCmd implements the 'page' command.
type PageCmd struct {
	Path string `arg:"" help:"Document path relative to the content root"`
}

func (p *PageCmd) Run(g *Global, root *CLI) error {
	cfg, err := loadConfig(g, root)
	if err != nil {
		return err
	}
	gen, err := newGenerator(g, cfg)
	if err != nil {
		return err
	}
	content, err := gen.Page(g.ctx(), p.Path)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprint(g.out(), content)
	return nil
}
