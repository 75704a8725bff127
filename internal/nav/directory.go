package nav

import (
	"maps"
	"path"
	"slices"
	"strings"
)

// DefaultIndexFilename is the reserved name of directory-index documents.
const DefaultIndexFilename = "_index.md"

// Ancestor is one step of a document's walk from the root down to its own
// directory: Child is the element directly below Parent on the way to the
// document.
type Ancestor struct {
	Parent string
	Child  string
}

// ChildDirectory is a subdirectory reference inside a directory group.
type ChildDirectory struct {
	Name      string
	IndexPath string
}

// DirectoryGroup collects what one directory level lists: its own pages and
// its subdirectories.
type DirectoryGroup struct {
	Pages    []Document
	Children map[string]ChildDirectory

	pageAt map[string]int
}

func newDirectoryGroup() *DirectoryGroup {
	return &DirectoryGroup{
		Children: make(map[string]ChildDirectory),
		pageAt:   make(map[string]int),
	}
}

func (g *DirectoryGroup) addPage(doc Document) {
	if i, ok := g.pageAt[doc.Path()]; ok {
		g.Pages[i] = doc
		return
	}
	g.pageAt[doc.Path()] = len(g.Pages)
	g.Pages = append(g.Pages, doc)
}

// SortedChildren returns the subdirectory references ordered by name.
func (g *DirectoryGroup) SortedChildren() []ChildDirectory {
	names := slices.Sorted(maps.Keys(g.Children))
	out := make([]ChildDirectory, 0, len(names))
	for _, n := range names {
		out = append(out, g.Children[n])
	}
	return out
}

// DirectoryIndex groups documents by directory. Only content documents are
// added; synthetic index documents are derived from it, never fed back.
type DirectoryIndex struct {
	indexFilename string
	groups        map[string]*DirectoryGroup
}

// NewDirectoryIndex creates an empty index whose synthetic documents are
// named indexFilename (DefaultIndexFilename when empty).
func NewDirectoryIndex(indexFilename string) *DirectoryIndex {
	if indexFilename == "" {
		indexFilename = DefaultIndexFilename
	}
	return &DirectoryIndex{
		indexFilename: indexFilename,
		groups:        make(map[string]*DirectoryGroup),
	}
}

// Ancestors walks from the root down to doc's directory. For
// "guide/advanced/tips.md" it yields (".", "guide"), ("guide", "advanced")
// and ("guide/advanced", "tips.md"). Root documents yield nothing.
func Ancestors(doc Document) []Ancestor {
	if doc.IsRoot() {
		return nil
	}
	segments := strings.Split(doc.Path(), "/")
	out := make([]Ancestor, 0, len(segments))
	parent := "."
	for _, seg := range segments {
		out = append(out, Ancestor{Parent: parent, Child: seg})
		parent = path.Join(parent, seg)
	}
	return out
}

// Add records doc in its own directory's pages and registers the
// subdirectory link in every directory above it. Root documents are not
// listed in any group. Adding a document twice is a no-op.
func (ix *DirectoryIndex) Add(doc Document) {
	dir := doc.Dirname()
	for _, a := range Ancestors(doc) {
		g := ix.group(a.Parent)
		if a.Parent == dir {
			g.addPage(doc)
			continue
		}
		g.Children[a.Child] = ChildDirectory{
			Name:      a.Child,
			IndexPath: path.Join(a.Parent, a.Child, ix.indexFilename),
		}
	}
}

func (ix *DirectoryIndex) group(dir string) *DirectoryGroup {
	g, ok := ix.groups[dir]
	if !ok {
		g = newDirectoryGroup()
		ix.groups[dir] = g
	}
	return g
}

// SyntheticAncestors returns one index document per directory between doc
// and the root, nearest first, excluding the root itself. Each is titled
// with its directory path.
func (ix *DirectoryIndex) SyntheticAncestors(doc Document) []Document {
	var out []Document
	for dir := doc.Dirname(); dir != "."; dir = path.Dir(dir) {
		out = append(out, Document{
			path:  path.Join(dir, ix.indexFilename),
			title: dir,
		})
	}
	return out
}

// IndexPathFor is where the index document of dir lives.
func (ix *DirectoryIndex) IndexPathFor(dir string) string {
	return path.Join(dir, ix.indexFilename)
}

// Group returns the group for dir, or nil.
func (ix *DirectoryIndex) Group(dir string) *DirectoryGroup { return ix.groups[dir] }

// Dirs lists every directory that has a group, sorted.
func (ix *DirectoryIndex) Dirs() []string {
	return slices.Sorted(maps.Keys(ix.groups))
}

// Len is the number of directory groups.
func (ix *DirectoryIndex) Len() int { return len(ix.groups) }

func sortByPath(docs []Document) {
	slices.SortFunc(docs, func(a, b Document) int { return strings.Compare(a.path, b.path) })
}
