package nav

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDocument_DerivedProperties(t *testing.T) {
	doc, err := NewDocument("guide/advanced/tips.md", "")
	require.NoError(t, err)

	assert.Equal(t, "guide/advanced/tips.md", doc.Path())
	assert.Equal(t, "guide/advanced/tips.md", doc.Title(), "title defaults to path")
	assert.Equal(t, "tips.md", doc.Basename())
	assert.Equal(t, "guide/advanced", doc.Dirname())
	assert.Equal(t, "T", doc.Initial())
	assert.False(t, doc.IsRoot())
}

func TestNewDocument_RootDocument(t *testing.T) {
	doc := MustDocument("intro.md", "")
	assert.True(t, doc.IsRoot())
	assert.Equal(t, ".", doc.Dirname())
	assert.Equal(t, "I", doc.Initial())
}

func TestNewDocument_InitialUsesTitleBasename(t *testing.T) {
	tests := []struct {
		name  string
		path  string
		title string
		want  string
	}{
		{"lowercase basename", "a/banana.md", "", "B"},
		{"explicit directory title", "guide/advanced/_index.md", "guide/advanced", "A"},
		{"digit", "7th.md", "", "7"},
		{"multibyte", "docs/über.md", "", "Ü"},
		{"custom title", "x.md", "Zebra crossing", "Z"},
		{"invalid utf-8", "\xffbad.md", "", "\uFFFD"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := NewDocument(tt.path, tt.title)
			require.NoError(t, err)
			assert.Equal(t, tt.want, doc.Initial())
		})
	}
}

func TestNewDocument_NormalizesPath(t *testing.T) {
	doc := MustDocument(`guide\setup.md`, "")
	assert.Equal(t, "guide/setup.md", doc.Path())

	doc = MustDocument("./guide//setup.md", "")
	assert.Equal(t, "guide/setup.md", doc.Path())
}

func TestNewDocument_RejectsMalformedPaths(t *testing.T) {
	for _, p := range []string{"", "   ", "/abs/doc.md", "C:/docs/a.md", "../outside.md", "a/../../b.md", ".", "a/.."} {
		t.Run(p, func(t *testing.T) {
			_, err := NewDocument(p, "")
			require.Error(t, err)

			var pathErr *PathError
			require.True(t, errors.As(err, &pathErr))
			assert.Equal(t, p, pathErr.Path)
			assert.ErrorIs(t, err, ErrInvalidPath)
		})
	}
}

func TestMustDocument_PanicsOnInvalidPath(t *testing.T) {
	assert.Panics(t, func() { MustDocument("/abs.md", "") })
}

func TestDocument_EqualComparesPathsOnly(t *testing.T) {
	a := MustDocument("a.md", "First")
	b := MustDocument("a.md", "Second")
	c := MustDocument("b.md", "First")

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}
