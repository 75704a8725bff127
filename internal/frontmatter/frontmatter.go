// Package frontmatter separates a leading YAML frontmatter block from the
// Markdown body so content can be edited below it and reassembled unchanged.
package frontmatter

import (
	"errors"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrMissingClosingDelimiter indicates the content opened a frontmatter
// block that never closes.
var ErrMissingClosingDelimiter = errors.New("yaml frontmatter start delimiter found but closing delimiter is missing")

const delimiter = "---"

// Document is content split at its frontmatter boundary.
type Document struct {
	// Raw is the YAML between the delimiters, without them.
	Raw string
	// Body is everything after the closing delimiter line.
	Body string
	// Present reports whether the content opened with a frontmatter block.
	Present bool
	// Newline is the line ending the content uses ("\n" or "\r\n").
	Newline string
}

// Parse splits content. Content without a leading delimiter line is all body.
func Parse(content string) (Document, error) {
	nl := detectNewline(content)
	doc := Document{Body: content, Newline: nl}

	open := delimiter + nl
	if !strings.HasPrefix(content, open) {
		return doc, nil
	}
	rest := content[len(open):]

	if strings.HasPrefix(rest, open) {
		doc.Present = true
		doc.Body = rest[len(open):]
		return doc, nil
	}

	closeSeq := nl + delimiter + nl
	idx := strings.Index(rest, closeSeq)
	if idx < 0 {
		// A closing delimiter on the last line without a trailing newline.
		if strings.HasSuffix(rest, nl+delimiter) {
			doc.Present = true
			doc.Raw = rest[:len(rest)-len(delimiter)]
			doc.Body = ""
			return doc, nil
		}
		return Document{}, ErrMissingClosingDelimiter
	}
	doc.Present = true
	doc.Raw = rest[:idx+len(nl)]
	doc.Body = rest[idx+len(closeSeq):]
	return doc, nil
}

// String reassembles the document. Without frontmatter it is the body.
func (d Document) String() string {
	if !d.Present {
		return d.Body
	}
	nl := d.Newline
	if nl == "" {
		nl = "\n"
	}
	var b strings.Builder
	b.Grow(len(d.Raw) + len(d.Body) + 2*(len(delimiter)+len(nl)))
	b.WriteString(delimiter + nl)
	b.WriteString(d.Raw)
	b.WriteString(delimiter + nl)
	b.WriteString(d.Body)
	return b.String()
}

// Fields decodes the frontmatter YAML. An absent or empty block yields an
// empty map.
func (d Document) Fields() (map[string]any, error) {
	fields := map[string]any{}
	if strings.TrimSpace(d.Raw) == "" {
		return fields, nil
	}
	if err := yaml.Unmarshal([]byte(d.Raw), &fields); err != nil {
		return nil, err
	}
	if fields == nil {
		fields = map[string]any{}
	}
	return fields, nil
}

// Title returns the string "title" field, if any. Frontmatter that is not
// valid YAML is an error.
func (d Document) Title() (string, bool, error) {
	fields, err := d.Fields()
	if err != nil {
		return "", false, err
	}
	title, ok := fields["title"].(string)
	title = strings.TrimSpace(title)
	return title, ok && title != "", nil
}

func detectNewline(content string) string {
	i := strings.IndexByte(content, '\n')
	if i > 0 && content[i-1] == '\r' {
		return "\r\n"
	}
	return "\n"
}
