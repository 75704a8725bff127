package markdown

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFirstHeading(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
		ok   bool
	}{
		{"atx heading", "# Getting Started\n\nText\n", "Getting Started", true},
		{"emphasis inside", "# The *quick* guide\n", "The quick guide", true},
		{"skips level two", "## Sub\n\n# Main\n", "Main", true},
		{"setext heading", "Overview\n========\n", "Overview", true},
		{"no heading", "just text\n", "", false},
		{"heading in code block", "```\n# not a heading\n```\n", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FirstHeading([]byte(tt.body))
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestExtractLinks_InlineLink(t *testing.T) {
	links := ExtractLinks([]byte("See [API](api.md) for details."))
	require.Equal(t, []Link{{Label: "API", Destination: "api.md"}}, links)
}

func TestExtractLinks_ListOfLinks(t *testing.T) {
	links := ExtractLinks([]byte("# guide\n- [advanced](guide/advanced/_index.md)\n- [setup.md](./setup.md)\n"))
	require.Equal(t, []Link{
		{Label: "advanced", Destination: "guide/advanced/_index.md"},
		{Label: "setup.md", Destination: "./setup.md"},
	}, links)
}

func TestExtractLinks_ReferenceLink(t *testing.T) {
	links := ExtractLinks([]byte("See [API][ref].\n\n[ref]: api.md\n"))
	require.Equal(t, []Link{{Label: "API", Destination: "api.md"}}, links)
}

func TestExtractLinks_SkipsCode(t *testing.T) {
	src := "Inline code: `[Link](./ignored-inline.md)`\n" +
		"\n" +
		"```\n[Link](./ignored-block.md)\n```\n" +
		"\n" +
		"[Real](./real.md)\n"
	links := ExtractLinks([]byte(src))
	require.Equal(t, []Link{{Label: "Real", Destination: "./real.md"}}, links)
}
