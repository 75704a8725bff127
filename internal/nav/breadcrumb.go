package nav

import (
	"path"
	"strings"

	"git.home.luguber.info/inful/docnav/internal/frontmatter"
)

const (
	crumbSeparator = " > "
	topLabel       = "Top"
)

// Breadcrumbs builds navigation trails relative to the configured top-level
// document.
type Breadcrumbs struct {
	// Top is the path of the top-level document; it gets no trail and is the
	// target of the leading "Top" crumb.
	Top string
	// IndexFilename marks directory-index documents.
	IndexFilename string
}

func (b Breadcrumbs) top() string {
	return path.Clean(strings.ReplaceAll(b.Top, `\`, "/"))
}

func (b Breadcrumbs) indexFilename() string {
	if b.IndexFilename == "" {
		return DefaultIndexFilename
	}
	return b.IndexFilename
}

// Trail renders the breadcrumb line for the document at p. ok is false for
// the top-level document. A malformed p yields a *PathError.
func (b Breadcrumbs) Trail(p string) (trail string, ok bool, err error) {
	p, err = normalizePath(p)
	if err != nil {
		return "", false, err
	}
	top := b.top()
	if p == top {
		return "", false, nil
	}

	dirs := strings.Split(p, "/")
	leaf := dirs[len(dirs)-1]
	dirs = dirs[:len(dirs)-1]
	if leaf == b.indexFilename() {
		// A directory index is labeled by its directory, unlinked.
		leaf = ""
		if n := len(dirs); n > 0 {
			leaf = dirs[n-1]
			dirs = dirs[:n-1]
		}
	}

	links := []string{link(topLabel, "/"+top)}
	for i, dir := range dirs {
		target := path.Join(path.Join(dirs[:i+1]...), b.indexFilename())
		links = append(links, link(dir, "/"+target))
	}
	if leaf != "" {
		links = append(links, leaf)
	}
	return strings.Join(links, crumbSeparator), true, nil
}

// Apply returns content with the trail for p in front of it, separated by a
// blank line. YAML frontmatter stays first: the trail goes right below it.
// Content of the top-level document is returned unchanged.
func (b Breadcrumbs) Apply(p, content string) (string, error) {
	trail, ok, err := b.Trail(p)
	if err != nil {
		return "", err
	}
	if !ok {
		return content, nil
	}
	doc, err := frontmatter.Parse(content)
	if err != nil || !doc.Present {
		return trail + "\n\n" + content, nil
	}
	doc.Body = trail + "\n\n" + doc.Body
	return doc.String(), nil
}

func link(label, target string) string {
	return "[" + label + "](" + target + ")"
}
