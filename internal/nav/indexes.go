package nav

import "git.home.luguber.info/inful/docnav/internal/util/sets"

// Indexes holds both groupings for one generation run.
type Indexes struct {
	Alphabetical AlphabeticalIndex
	Directories  *DirectoryIndex

	documents sets.Set[string]
	synthetic sets.Set[string]
}

// NewIndexes creates empty indexes for one run.
func NewIndexes(indexFilename string) *Indexes {
	return &Indexes{
		Alphabetical: make(AlphabeticalIndex),
		Directories:  NewDirectoryIndex(indexFilename),
		documents:    sets.New[string](),
		synthetic:    sets.New[string](),
	}
}

// Add feeds a content document into both groupings and files the synthetic
// index document of each of its ancestor directories alphabetically.
func (ix *Indexes) Add(doc Document) {
	ix.documents.Add(doc.Path())
	ix.Alphabetical.Add(doc)
	ix.Directories.Add(doc)
	for _, s := range ix.Directories.SyntheticAncestors(doc) {
		ix.Alphabetical.Add(s)
		ix.synthetic.Add(s.Path())
	}
}

// Documents is the number of distinct content documents added.
func (ix *Indexes) Documents() int { return ix.documents.Len() }

// Synthetic is the number of distinct synthetic index documents.
func (ix *Indexes) Synthetic() int { return ix.synthetic.Len() }

// Build indexes every path, titling each document with its path. The first
// invalid path aborts the build.
func Build(paths []string, indexFilename string) (*Indexes, error) {
	ix := NewIndexes(indexFilename)
	for _, p := range paths {
		doc, err := NewDocument(p, "")
		if err != nil {
			return nil, err
		}
		ix.Add(doc)
	}
	return ix, nil
}
