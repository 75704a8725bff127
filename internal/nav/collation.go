package nav

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Collation orders initials and titles for one language. A collate.Collator
// keeps scratch buffers and is not safe for concurrent use, so one is created
// per sort call.
type Collation struct {
	tag language.Tag
}

// NewCollation returns a Collation for tag. language.Und falls back to the
// root collation order.
func NewCollation(tag language.Tag) *Collation {
	return &Collation{tag: tag}
}

// SortInitials orders initial-group keys: keys that are not purely numeric
// (ASCII digits) come first, then purely numeric keys. Within each class keys follow the
// locale order.
func (c *Collation) SortInitials(keys []string) {
	col := collate.New(c.tag)
	slices.SortFunc(keys, func(a, b string) int {
		an, bn := isNumeric(a), isNumeric(b)
		switch {
		case an && !bn:
			return 1
		case !an && bn:
			return -1
		}
		return col.CompareString(a, b)
	})
}

// SortDocuments sorts docs in place by title, ignoring case. Documents whose
// titles compare equal keep their relative order.
func (c *Collation) SortDocuments(docs []Document) {
	col := collate.New(c.tag, collate.IgnoreCase)
	slices.SortStableFunc(docs, func(a, b Document) int {
		return col.CompareString(strings.ToLower(a.Title()), strings.ToLower(b.Title()))
	})
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
