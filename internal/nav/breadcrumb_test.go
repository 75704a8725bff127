package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBreadcrumbs_Trail(t *testing.T) {
	b := Breadcrumbs{Top: "intro.md", IndexFilename: "_index.md"}

	tests := []struct {
		name string
		path string
		want string
	}{
		{"root page", "faq.md", "[Top](/intro.md) > faq.md"},
		{"nested page", "guide/setup.md", "[Top](/intro.md) > [guide](/guide/_index.md) > setup.md"},
		{"deep page", "guide/advanced/tips.md", "[Top](/intro.md) > [guide](/guide/_index.md) > [advanced](/guide/advanced/_index.md) > tips.md"},
		{"directory index", "guide/_index.md", "[Top](/intro.md) > guide"},
		{"nested directory index", "guide/advanced/_index.md", "[Top](/intro.md) > [guide](/guide/_index.md) > advanced"},
		{"root directory index", "_index.md", "[Top](/intro.md)"},
		{"current directory segment skipped", "./guide/setup.md", "[Top](/intro.md) > [guide](/guide/_index.md) > setup.md"},
		{"backslashes", `guide\setup.md`, "[Top](/intro.md) > [guide](/guide/_index.md) > setup.md"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := b.Trail(tt.path)
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBreadcrumbs_TrailRejectsMalformedPaths(t *testing.T) {
	b := Breadcrumbs{Top: "intro.md"}

	for _, p := range []string{"", "   ", "../x.md", "guide/../../x.md", "/abs/x.md", "C:/docs/x.md", "."} {
		t.Run(p, func(t *testing.T) {
			trail, ok, err := b.Trail(p)
			var pe *PathError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, p, pe.Path)
			assert.False(t, ok)
			assert.Empty(t, trail)

			_, err = b.Apply(p, "body")
			require.ErrorAs(t, err, &pe)
		})
	}
}

func TestBreadcrumbs_TopHasNoTrail(t *testing.T) {
	b := Breadcrumbs{Top: "intro.md"}
	trail, ok, err := b.Trail("intro.md")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, trail)

	_, ok, err = b.Trail("./intro.md")
	require.NoError(t, err)
	assert.False(t, ok)

	got, err := b.Apply("intro.md", "# Intro\n")
	require.NoError(t, err)
	assert.Equal(t, "# Intro\n", got)
}

func TestBreadcrumbs_TopIsCleaned(t *testing.T) {
	b := Breadcrumbs{Top: "./docs/README.md"}

	got, _, err := b.Trail("faq.md")
	require.NoError(t, err)
	assert.Equal(t, "[Top](/docs/README.md) > faq.md", got)

	_, ok, err := b.Trail("docs/README.md")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBreadcrumbs_DefaultIndexFilename(t *testing.T) {
	b := Breadcrumbs{Top: "README.md"}
	got, _, err := b.Trail("a/_index.md")
	require.NoError(t, err)
	assert.Equal(t, "[Top](/README.md) > a", got)
}

func TestBreadcrumbs_Apply(t *testing.T) {
	b := Breadcrumbs{Top: "intro.md"}

	got, err := b.Apply("guide/setup.md", "# Setup\n")
	require.NoError(t, err)
	assert.Equal(t, "[Top](/intro.md) > [guide](/guide/_index.md) > setup.md\n\n# Setup\n", got)
}

func TestBreadcrumbs_ApplyKeepsFrontmatterFirst(t *testing.T) {
	b := Breadcrumbs{Top: "intro.md"}

	got, err := b.Apply("guide/setup.md", "---\ntitle: Setup\n---\n# Setup\n")
	require.NoError(t, err)
	assert.Equal(t, "---\ntitle: Setup\n---\n[Top](/intro.md) > [guide](/guide/_index.md) > setup.md\n\n# Setup\n", got)
}

func TestBreadcrumbs_ApplyUnterminatedFrontmatterIsPrepended(t *testing.T) {
	b := Breadcrumbs{Top: "intro.md"}

	got, err := b.Apply("faq.md", "---\nbroken\n")
	require.NoError(t, err)
	assert.Equal(t, "[Top](/intro.md) > faq.md\n\n---\nbroken\n", got)
}
