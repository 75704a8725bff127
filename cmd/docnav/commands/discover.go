package commands

import (
	"fmt"

	"github.com/fatih/color"

	"git.home.luguber.info/inful/docnav/internal/nav"
)

// DiscoverCmd implements the 'discover' command.
type DiscoverCmd struct {
	NoColor bool `name:"no-color" help:"Disable colored output"`
}

func (d *DiscoverCmd) Run(g *Global, root *CLI) error {
	cfg, err := loadConfig(g, root)
	if err != nil {
		return err
	}
	paths, err := newScanner(cfg).Scan()
	if err != nil {
		return scanFailure(err, cfg.Root)
	}

	dirColor := color.New(color.FgCyan)
	initialColor := color.New(color.FgYellow, color.Bold)
	if d.NoColor {
		dirColor.DisableColor()
		initialColor.DisableColor()
	}

	ix := nav.NewIndexes(cfg.IndexFilename)
	out := g.out()
	for _, p := range paths {
		doc, err := newDocument(p)
		if err != nil {
			return err
		}
		ix.Add(doc)

		dir := ""
		if !doc.IsRoot() {
			dir = dirColor.Sprint(doc.Dirname() + "/")
		}
		_, _ = fmt.Fprintf(out, "%s %s%s\n", initialColor.Sprintf("[%s]", doc.Initial()), dir, doc.Basename())
	}
	_, _ = fmt.Fprintf(out, "%d documents, %d directory indexes\n", ix.Documents(), ix.Directories.Len())
	return nil
}
