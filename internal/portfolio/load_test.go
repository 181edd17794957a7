package portfolio

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const minimalContent = `
site:
  title: Test Site
  siteUrl: https://example.com
personal:
  name: Tester
  bio: "Hello **world**"
work:
  - category: Reels
    items:
      - type: video
        url: https://vimeo.com/1
projects:
  - title: "Retargeting & Sequencer"
    category: Unreal Engine
    description: "Uses *Sequencer*"
    tools: [Unreal Engine 5, Control Rig]
    featured: true
  - id: second
    title: Second
    category: Demo Reel
    order: 1
    featured: true
`

func TestLoad_Minimal(t *testing.T) {
	t.Parallel()

	c, err := Load(strings.NewReader(minimalContent))
	require.NoError(t, err)
	require.Equal(t, "Test Site", c.Site().Title)
	require.Equal(t, "<p>Hello <strong>world</strong></p>", string(c.Personal().Bio.Render()))

	p, err := c.Project("retargeting-sequencer")
	require.NoError(t, err)
	require.Equal(t, "Unreal Engine", p.Category)

	featured := c.FeaturedProjects()
	require.Len(t, featured, 2)
	require.Equal(t, "second", featured[0].ID)

	require.Len(t, c.GalleryItems(), 1)
	require.Equal(t, []string{"all", "reels"}, filterIDs(c.Filters()))
}

func TestLoad_RejectsUnknownKeys(t *testing.T) {
	t.Parallel()

	_, err := Load(strings.NewReader(minimalContent + "bogus: true\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "decode content")
}

func TestLoad_RejectsMissingRequiredFields(t *testing.T) {
	t.Parallel()

	_, err := Load(strings.NewReader("personal:\n  name: x\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "validate content")
}

func TestLoad_RejectsEmptyDocument(t *testing.T) {
	t.Parallel()

	_, err := Load(strings.NewReader(""))
	require.Error(t, err)
}

func TestLoad_RejectsDuplicateProjectIDs(t *testing.T) {
	t.Parallel()

	content := minimalContent + `  - id: second
    title: Again
    category: Demo Reel
`
	_, err := Load(strings.NewReader(content))
	require.Error(t, err)
	require.Contains(t, err.Error(), `duplicate project id "second"`)
}

func TestLoad_RejectsDuplicateVideos(t *testing.T) {
	t.Parallel()

	content := `
site:
  title: T
personal:
  name: N
work:
  - category: A
    items:
      - type: video
        url: https://youtu.be/abc
  - category: B
    subcategories:
      - name: Sub
        items:
          - type: video
            url: https://www.youtube.com/embed/abc?si=1
`
	_, err := Load(strings.NewReader(content))
	require.Error(t, err)
	require.Contains(t, err.Error(), "duplicate video youtube.com:abc in B/Sub")
}

func TestLoad_RejectsAmbiguousCategoryIDs(t *testing.T) {
	t.Parallel()

	content := `
site:
  title: T
personal:
  name: N
work:
  - category: Unreal
    items:
      - type: video
        url: https://youtu.be/a
  - category: Unreal_Works
    items:
      - type: video
        url: https://youtu.be/b
`
	_, err := Load(strings.NewReader(content))
	require.Error(t, err)
	require.Contains(t, err.Error(), `category id "unreal_works" is ambiguous with "unreal"`)
}

func TestLoad_RejectsInvalidYear(t *testing.T) {
	t.Parallel()

	content := minimalContent + `  - id: third
    title: Third
    category: Demo Reel
    year: "24"
`
	_, err := Load(strings.NewReader(content))
	require.Error(t, err)
	require.Contains(t, err.Error(), "Year")
}

func TestLoadPath(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "content.yaml")
	require.NoError(t, os.WriteFile(path, []byte(minimalContent), 0o644))

	c, err := LoadPath(path)
	require.NoError(t, err)
	require.Equal(t, "Tester", c.Personal().Name)

	_, err = LoadPath(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestLoadDefault(t *testing.T) {
	t.Parallel()

	c, err := LoadPath("")
	require.NoError(t, err)

	require.Equal(t, "Neelesh Reddy", c.Personal().Name)
	require.Len(t, c.GalleryItems(), 22)

	require.Equal(t, []string{
		"all",
		"demo_reels",
		"unreal_engine_works",
		"unreal_engine_works_cinematic_projects",
		"animations",
		"short_films",
	}, filterIDs(c.Filters()))
	require.Equal(t, 22, c.Filters()[0].Count)

	cinematic := c.Gallery(NewSelection().Select("unreal_engine_works_cinematic_projects", c.Filters()))
	require.Equal(t, []string{"https://youtu.be/ZDcCU7c6P5U", "https://youtu.be/FplOeruFBko"}, itemURLs(cinematic))

	// No video shows twice under "all".
	seen := map[string]bool{}
	for _, item := range c.Gallery(NewSelection()) {
		require.False(t, seen[item.Key], item.Item.URL)
		seen[item.Key] = true
	}

	p, err := c.Project("dark-slope-video-documentation")
	require.NoError(t, err)
	require.Equal(t, "Demo Reel", p.Category)

	require.Equal(t, []string{"Animation", "Demo Reel", "Short Film", "Unreal Engine", "Virtual Production"}, c.ProjectCategories())
}
