package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func titles(docs []Document) []string {
	out := make([]string, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.Title())
	}
	return out
}

func TestAlphabeticalIndex_EveryDocumentInExactlyOneGroup(t *testing.T) {
	paths := []string{"intro.md", "guide/setup.md", "guide/advanced/tips.md", "Apple.md", "apricot.md", "9lives.md"}
	ix := make(AlphabeticalIndex)
	for _, p := range paths {
		ix.Add(MustDocument(p, ""))
	}

	for _, p := range paths {
		doc := MustDocument(p, "")
		found := 0
		for initial, group := range ix {
			if _, ok := group[p]; ok {
				found++
				assert.Equal(t, doc.Initial(), initial, p)
			}
		}
		assert.Equal(t, 1, found, p)
	}
	assert.Equal(t, len(paths), ix.Len())
}

func TestAlphabeticalIndex_AddReplacesSamePath(t *testing.T) {
	ix := make(AlphabeticalIndex)
	ix.Add(MustDocument("a.md", "Alpha"))
	ix.Add(MustDocument("a.md", "Again"))

	require.Len(t, ix["A"], 1)
	assert.Equal(t, "Again", ix["A"]["a.md"].Title())
}

func TestSortedInitials_LettersBeforeDigits(t *testing.T) {
	c := NewCollation(language.English)
	ix := make(AlphabeticalIndex)
	for _, p := range []string{"Apple.md", "banana.md", "7th.md", "2nd.md", "zulu.md"} {
		ix.Add(MustDocument(p, ""))
	}

	assert.Equal(t, []string{"A", "B", "Z", "2", "7"}, ix.SortedInitials(c))
}

func TestSortInitials_NumericKeysNeverPrecedeNonNumeric(t *testing.T) {
	c := NewCollation(language.English)
	keys := []string{"3", "_", "B", "10", "a", "1"}
	c.SortInitials(keys)

	seenNumeric := false
	for _, k := range keys {
		if isNumeric(k) {
			seenNumeric = true
			continue
		}
		assert.False(t, seenNumeric, "non-numeric key %q after a numeric key in %v", k, keys)
	}
	assert.Equal(t, []string{"1", "10", "3"}, keys[3:], "numeric keys compare as strings")
}

func TestSortInitials_OnlyASCIIDigitsAreNumeric(t *testing.T) {
	c := NewCollation(language.English)
	keys := []string{"5", "٣", "B"}
	c.SortInitials(keys)

	assert.False(t, isNumeric("٣"))
	assert.Equal(t, "5", keys[2])
}

func TestSummary_InvalidUTF8InitialHasHeading(t *testing.T) {
	r, err := NewRenderer(NewCollation(language.English), nil)
	require.NoError(t, err)
	ix := make(AlphabeticalIndex)
	ix.Add(MustDocument("\xffbad.md", ""))

	got, err := r.Summary(ix)
	require.NoError(t, err)
	assert.Contains(t, got, "### \uFFFD\n")
	assert.NotContains(t, got, "### \n")
}

func TestSummaryScenario_GroupOrder(t *testing.T) {
	c := NewCollation(language.English)
	ix, err := Build([]string{"Apple.md", "banana.md", "7th.md"}, "")
	require.NoError(t, err)

	initials := ix.Alphabetical.SortedInitials(c)
	assert.Equal(t, []string{"A", "B", "7"}, initials)
	for _, initial := range initials {
		assert.Len(t, ix.Alphabetical.SortedGroup(c, initial), 1)
	}
}

func TestSortDocuments_CaseInsensitive(t *testing.T) {
	c := NewCollation(language.English)
	docs := []Document{MustDocument("z.md", "Zebra"), MustDocument("a.md", "apple")}
	c.SortDocuments(docs)

	assert.Equal(t, []string{"apple", "Zebra"}, titles(docs))
}

func TestSortDocuments_Stable(t *testing.T) {
	c := NewCollation(language.English)
	docs := []Document{
		MustDocument("1.md", "beta"),
		MustDocument("2.md", "Alpha"),
		MustDocument("3.md", "BETA"),
		MustDocument("4.md", "alpha"),
	}
	c.SortDocuments(docs)

	var paths []string
	for _, d := range docs {
		paths = append(paths, d.Path())
	}
	assert.Equal(t, []string{"2.md", "4.md", "1.md", "3.md"}, paths)
}

func TestSortedGroup_OrdersByTitle(t *testing.T) {
	c := NewCollation(language.English)
	ix := make(AlphabeticalIndex)
	ix.Add(MustDocument("guide/setup.md", "Setup"))
	ix.Add(MustDocument("sidebar.md", "sidebar"))
	ix.Add(MustDocument("search.md", "Search"))

	assert.Equal(t, []string{"Search", "Setup", "sidebar"}, titles(ix.SortedGroup(c, "S")))
	assert.Empty(t, ix.SortedGroup(c, "Q"))
}
