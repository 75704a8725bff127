package nav

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"
)

// Template names a renderer can override.
const (
	DirectoryTemplate = "directory.md.tmpl"
	SummaryTemplate   = "summary.md.tmpl"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

// Link is one rendered list entry.
type Link struct {
	Label  string
	Target string
}

// DirectoryView is the data a directory template renders.
type DirectoryView struct {
	Dir      string
	Children []ChildDirectory
	Pages    []Link
}

// InitialGroup is one initial with its entries, in index order.
type InitialGroup struct {
	Initial string
	Entries []Link
}

// SummaryView is the data the summary template renders.
type SummaryView struct {
	Groups []InitialGroup
}

// Renderer turns built indexes into Markdown documents.
type Renderer struct {
	collation *Collation
	directory *template.Template
	summary   *template.Template
}

// NewRenderer parses the embedded templates. overrides maps a template name
// (DirectoryTemplate, SummaryTemplate) to replacement template source.
func NewRenderer(c *Collation, overrides map[string]string) (*Renderer, error) {
	r := &Renderer{collation: c}
	var err error
	if r.directory, err = loadTemplate(DirectoryTemplate, overrides); err != nil {
		return nil, err
	}
	if r.summary, err = loadTemplate(SummaryTemplate, overrides); err != nil {
		return nil, err
	}
	return r, nil
}

func loadTemplate(name string, overrides map[string]string) (*template.Template, error) {
	src, ok := overrides[name]
	if !ok {
		b, err := embeddedTemplates.ReadFile("templates/" + name)
		if err != nil {
			return nil, fmt.Errorf("embedded template %s: %w", name, err)
		}
		src = string(b)
	}
	tpl, err := template.New(name).Option("missingkey=error").Parse(src)
	if err != nil {
		return nil, fmt.Errorf("parse template %s: %w", name, err)
	}
	return tpl, nil
}

// DirectoryView assembles the listing of dir: subdirectories by name, then
// pages in title order linked relative to dir.
func (r *Renderer) DirectoryView(dir string, g *DirectoryGroup) DirectoryView {
	pages := append([]Document(nil), g.Pages...)
	r.collation.SortDocuments(pages)
	view := DirectoryView{Dir: dir, Children: g.SortedChildren()}
	for _, p := range pages {
		view.Pages = append(view.Pages, Link{Label: p.Basename(), Target: "./" + p.Basename()})
	}
	return view
}

// Directory renders the index document for one directory group.
func (r *Renderer) Directory(dir string, g *DirectoryGroup) (string, error) {
	return execute(r.directory, r.DirectoryView(dir, g))
}

// SummaryView assembles the alphabetical listing.
func (r *Renderer) SummaryView(ix AlphabeticalIndex) SummaryView {
	var view SummaryView
	for _, initial := range ix.SortedInitials(r.collation) {
		group := InitialGroup{Initial: initial}
		for _, d := range ix.SortedGroup(r.collation, initial) {
			group.Entries = append(group.Entries, Link{Label: d.Title(), Target: d.Path()})
		}
		view.Groups = append(view.Groups, group)
	}
	return view
}

// Summary renders the global alphabetical index document.
func (r *Renderer) Summary(ix AlphabeticalIndex) (string, error) {
	return execute(r.summary, r.SummaryView(ix))
}

func execute(tpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s: %w", tpl.Name(), err)
	}
	return buf.String(), nil
}
