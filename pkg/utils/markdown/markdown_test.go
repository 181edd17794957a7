package markdown

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestNewMarkdown_Empty(t *testing.T) {
	md := NewMarkdown("")
	require.NotNil(t, md)
	require.True(t, md.IsZero())
	require.Equal(t, "", strings.TrimSpace(string(md.Render())))
}

func TestMarkdown_Render_Sanitizes(t *testing.T) {
	md := NewMarkdown("hello <script>alert(1)</script> **world**")

	html := string(md.Render())
	require.NotContains(t, strings.ToLower(html), "<script")
	require.Contains(t, html, "<strong>world</strong>")

	// caching path
	html2 := string(md.Render())
	require.Equal(t, html, html2)
}

func TestMarkdown_Render_LinksOpenInNewTab(t *testing.T) {
	md := NewMarkdown("[LinkedIn](https://www.linkedin.com/in/example)")
	html := string(md.Render())
	require.Contains(t, html, `href="https://www.linkedin.com/in/example"`)
	require.Contains(t, html, "nofollow")
}

func TestMarkdown_PlainText(t *testing.T) {
	md := NewMarkdown("hello **world**")

	text := string(md.PlainText())
	require.Contains(t, text, "hello")
	require.Contains(t, text, "world")
	require.NotContains(t, text, "<strong>")
}

func TestMarkdown_NilIsSafe(t *testing.T) {
	var md *Markdown
	require.True(t, md.IsZero())
	require.Equal(t, "", string(md.Render()))
	require.Equal(t, "", string(md.PlainText()))
}

func TestMarkdown_UnmarshalYAML(t *testing.T) {
	var doc struct {
		Bio Markdown `yaml:"bio"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("bio: \"I work in **Unreal Engine**\"\n"), &doc))
	require.Equal(t, "I work in **Unreal Engine**", doc.Bio.Source)
	require.Contains(t, string(doc.Bio.Render()), "<strong>Unreal Engine</strong>")

	require.Error(t, yaml.Unmarshal([]byte("bio: [1, 2]\n"), &doc))
}

func TestMarkdown_MarshalJSONKeepsSource(t *testing.T) {
	b, err := json.Marshal(NewMarkdown("**hello**"))
	require.NoError(t, err)
	require.Equal(t, `"**hello**"`, string(b))
}

func TestMarkdown_Clone(t *testing.T) {
	var nilMD *Markdown
	require.Nil(t, nilMD.Clone())

	md := NewMarkdown("**bold**")
	rendered := md.Render()
	c := md.Clone()
	require.Equal(t, rendered, c.Render())

	c.Source = "changed"
	require.Equal(t, "**bold**", md.Source)
}
