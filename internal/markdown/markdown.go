// Package markdown wraps goldmark for the little Markdown analysis docnav
// needs: document titles and the links generated indexes contain.
package markdown

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Link is an inline link found in a document.
type Link struct {
	Label       string
	Destination string
}

func parse(body []byte) gmast.Node {
	return goldmark.New().Parser().Parse(text.NewReader(body))
}

// FirstHeading returns the text of the first level-one heading in body.
func FirstHeading(body []byte) (string, bool) {
	root := parse(body)
	var title string
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		h, ok := n.(*gmast.Heading)
		if !ok {
			return gmast.WalkContinue, nil
		}
		if h.Level == 1 {
			title = strings.TrimSpace(plainText(h, body))
			if title != "" {
				return gmast.WalkStop, nil
			}
		}
		return gmast.WalkSkipChildren, nil
	})
	return title, title != ""
}

// ExtractLinks lists inline and reference-resolved links in document order.
// Links inside code spans and code blocks are not links and are skipped.
func ExtractLinks(body []byte) []Link {
	root := parse(body)
	var links []Link
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		if l, ok := n.(*gmast.Link); ok {
			links = append(links, Link{
				Label:       plainText(l, body),
				Destination: string(l.Destination),
			})
			return gmast.WalkSkipChildren, nil
		}
		return gmast.WalkContinue, nil
	})
	return links
}

// plainText concatenates the text segments below n.
func plainText(n gmast.Node, source []byte) string {
	var buf bytes.Buffer
	_ = gmast.Walk(n, func(c gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *gmast.Text:
			buf.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				buf.WriteByte(' ')
			}
		case *gmast.String:
			buf.Write(t.Value)
		}
		return gmast.WalkContinue, nil
	})
	return buf.String()
}
