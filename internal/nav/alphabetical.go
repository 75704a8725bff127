package nav

import (
	"maps"
	"slices"
)

// AlphabeticalIndex maps a title initial to the documents sharing it, keyed
// by document path.
type AlphabeticalIndex map[string]map[string]Document

// Add files doc under its initial. Adding a document whose path is already
// present replaces the earlier entry.
func (ix AlphabeticalIndex) Add(doc Document) {
	initial := doc.Initial()
	group, ok := ix[initial]
	if !ok {
		group = make(map[string]Document)
		ix[initial] = group
	}
	group[doc.Path()] = doc
}

// SortedInitials returns the group keys in index order.
func (ix AlphabeticalIndex) SortedInitials(c *Collation) []string {
	keys := slices.Collect(maps.Keys(ix))
	c.SortInitials(keys)
	return keys
}

// SortedGroup returns the documents filed under initial in title order.
func (ix AlphabeticalIndex) SortedGroup(c *Collation, initial string) []Document {
	docs := slices.Collect(maps.Values(ix[initial]))
	// Map iteration is random; pre-order by path so equal titles still
	// render deterministically after the stable title sort.
	sortByPath(docs)
	c.SortDocuments(docs)
	return docs
}

// Len counts documents across all groups.
func (ix AlphabeticalIndex) Len() int {
	n := 0
	for _, g := range ix {
		n += len(g)
	}
	return n
}
