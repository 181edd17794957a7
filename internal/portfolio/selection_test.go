package portfolio

import (
	"testing"

	"github.com/stretchr/testify/require"

	"neeleshreddy.com/portfolio/internal/videoid"
)

func itemURLs(items []GalleryItem) []string {
	urls := make([]string, 0, len(items))
	for _, item := range items {
		urls = append(urls, item.Item.URL)
	}
	return urls
}

func TestFlatten_TableOrderURLItemsOnly(t *testing.T) {
	t.Parallel()

	items := Flatten(sampleCategories())
	require.Equal(t, []string{
		"https://vimeo.com/111",
		"https://vimeo.com/222",
		"https://youtu.be/aaa",
		"https://youtu.be/bbb",
		"https://www.youtube.com/embed/ccc?si=x",
	}, itemURLs(items))

	require.Equal(t, "unreal_engine_works", items[2].CategoryID)
	require.Equal(t, "unreal_engine_works_cinematic_projects", items[2].FilterID)
	require.Equal(t, "demo_reels", items[0].FilterID)
	require.Equal(t, videoid.PlatformVimeo, items[0].Platform)
	require.Equal(t, "https://www.youtube.com/embed/aaa", items[2].EmbedURL)
	require.Equal(t, "https://img.youtube.com/vi/aaa/maxresdefault.jpg", items[2].ThumbnailURL)
	require.NotEmpty(t, items[2].PreviewURL)
	require.NotEmpty(t, items[2].Key)
}

func TestFlatten_SameVideoKeptOnce(t *testing.T) {
	t.Parallel()

	items := Flatten([]Category{
		{Name: "A", Items: []WorkItem{{Type: ItemVideo, URL: "https://youtu.be/dup"}}},
		{Name: "B", Items: []WorkItem{
			{Type: ItemVideo, URL: "https://www.youtube.com/watch?v=dup"},
			{Type: ItemVideo, URL: "https://youtu.be/other"},
		}},
	})
	require.Len(t, items, 2)
	require.Equal(t, "a", items[0].CategoryID)
	require.Equal(t, "https://youtu.be/other", items[1].Item.URL)
}

func TestSelect_Transitions(t *testing.T) {
	t.Parallel()

	filters := BuildFilters(sampleCategories())
	s := NewSelection()
	require.Equal(t, SelectAll, s.Kind)
	require.True(t, s.IsActive(FilterAll))

	s = s.Select("unreal_engine_works", filters)
	require.Equal(t, Selection{Kind: SelectCategory, FilterID: "unreal_engine_works"}, s)
	require.True(t, s.IsActive("unreal_engine_works"))
	require.False(t, s.IsActive(FilterAll))

	s = s.Select("unreal_engine_works_cinematic_projects", filters)
	require.Equal(t, SelectSubcategory, s.Kind)
	require.Equal(t, "subcategory", s.Kind.String())

	s = s.Select(FilterAll, filters)
	require.Equal(t, NewSelection(), s)

	s = s.Select("demo_reels", filters).Reset()
	require.Equal(t, NewSelection(), s)
}

func TestSelect_UnknownIDFallsBackToAll(t *testing.T) {
	t.Parallel()

	filters := BuildFilters(sampleCategories())
	s := NewSelection().Select("demo_reels", filters).Select("no_such_filter", filters)
	require.Equal(t, NewSelection(), s)

	// Excluded categories are not selectable either.
	require.Equal(t, NewSelection(), NewSelection().Select("volunteer", filters))
}

func TestVisible_AllShowsEveryItem(t *testing.T) {
	t.Parallel()

	items := Flatten(sampleCategories())
	require.Equal(t, items, NewSelection().Visible(items))
}

func TestVisible_CategoryIncludesSubcategoryItems(t *testing.T) {
	t.Parallel()

	cats := sampleCategories()
	filters := BuildFilters(cats)
	items := Flatten(cats)

	got := NewSelection().Select("unreal_engine_works", filters).Visible(items)
	require.Equal(t, []string{"https://youtu.be/aaa", "https://youtu.be/bbb"}, itemURLs(got))

	got = NewSelection().Select("demo_reels", filters).Visible(items)
	require.Equal(t, []string{"https://vimeo.com/111", "https://vimeo.com/222"}, itemURLs(got))
}

func TestVisible_SubcategoryIsExact(t *testing.T) {
	t.Parallel()

	cats := sampleCategories()
	cats[1].Items = []WorkItem{{Type: ItemVideo, URL: "https://youtu.be/direct"}}
	filters := BuildFilters(cats)
	items := Flatten(cats)

	got := NewSelection().Select("unreal_engine_works_cinematic_projects", filters).Visible(items)
	require.Equal(t, []string{"https://youtu.be/aaa", "https://youtu.be/bbb"}, itemURLs(got))

	got = NewSelection().Select("unreal_engine_works", filters).Visible(items)
	require.Equal(t, []string{"https://youtu.be/direct", "https://youtu.be/aaa", "https://youtu.be/bbb"}, itemURLs(got))
}

func TestVisible_CountsMatchFilters(t *testing.T) {
	t.Parallel()

	cats := sampleCategories()
	filters := BuildFilters(cats)
	items := Flatten(cats)
	for _, f := range filters {
		visible := NewSelection().Select(f.ID, filters).Visible(items)
		require.Len(t, visible, f.Count, f.ID)
	}
}

func TestFilterProjects(t *testing.T) {
	t.Parallel()

	projects := []Project{
		{ID: "a", Category: "Unreal Engine"},
		{ID: "b", Category: "Demo Reel"},
		{ID: "c", Category: "Unreal Engine"},
	}
	require.Len(t, FilterProjects(projects, FilterAll), 3)
	require.Len(t, FilterProjects(projects, "missing"), 3)

	got := FilterProjects(projects, "unreal-engine")
	require.Len(t, got, 2)
	require.Equal(t, "a", got[0].ID)
	require.Equal(t, "c", got[1].ID)
}
