package nav

import (
	"path"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Document is one navigable content unit. It is a value type: copies are
// cheap and nothing mutates a Document after construction.
type Document struct {
	path  string
	title string
}

// NewDocument validates p and returns a Document for it. The path is
// normalized to forward slashes and cleaned; an empty title defaults to the
// normalized path.
func NewDocument(p, title string) (Document, error) {
	clean, err := normalizePath(p)
	if err != nil {
		return Document{}, err
	}
	if title == "" {
		title = clean
	}
	return Document{path: clean, title: title}, nil
}

// MustDocument is NewDocument for literals known to be valid.
func MustDocument(p, title string) Document {
	d, err := NewDocument(p, title)
	if err != nil {
		panic(err)
	}
	return d
}

func normalizePath(p string) (string, error) {
	if strings.TrimSpace(p) == "" {
		return "", &PathError{Path: p, Reason: "empty path"}
	}
	slashed := strings.ReplaceAll(p, `\`, "/")
	if path.IsAbs(slashed) || hasVolumeName(slashed) {
		return "", &PathError{Path: p, Reason: "absolute path"}
	}
	clean := path.Clean(slashed)
	if clean == "." {
		return "", &PathError{Path: p, Reason: "path names the root directory"}
	}
	if clean == ".." || strings.HasPrefix(clean, "../") {
		return "", &PathError{Path: p, Reason: "path escapes the root directory"}
	}
	return clean, nil
}

// hasVolumeName catches Windows drive letters ("C:/docs") that path.IsAbs
// does not recognize.
func hasVolumeName(p string) bool {
	return len(p) >= 2 && p[1] == ':' && unicode.IsLetter(rune(p[0]))
}

func (d Document) Path() string  { return d.path }
func (d Document) Title() string { return d.title }

// Basename is the last element of the path.
func (d Document) Basename() string { return path.Base(d.path) }

// Dirname is the containing directory, "." for documents at the root.
func (d Document) Dirname() string { return path.Dir(d.path) }

// Initial is the upper-cased first character of the title's last element.
// A leading invalid UTF-8 byte yields U+FFFD.
func (d Document) Initial() string {
	r, size := utf8.DecodeRuneInString(path.Base(d.title))
	if size == 0 {
		return ""
	}
	return strings.ToUpper(string(r))
}

// IsRoot reports whether the document sits directly under the root.
func (d Document) IsRoot() bool { return d.Dirname() == "." }

// Equal compares identity; titles are ignored.
func (d Document) Equal(other Document) bool { return d.path == other.path }
