package portfolio

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func sampleCategories() []Category {
	return []Category{
		{
			Name: "Demo_Reels",
			Items: []WorkItem{
				{Type: ItemVideo, URL: "https://vimeo.com/111"},
				{Type: ItemVideo, URL: "https://vimeo.com/222"},
			},
		},
		{
			Name: "Unreal_Engine_Works",
			Subcategories: []Subcategory{
				{Name: "Cinematic_Projects", Items: []WorkItem{
					{Type: ItemVideo, URL: "https://youtu.be/aaa"},
					{Type: ItemVideo, URL: "https://youtu.be/bbb"},
				}},
				{Name: "Technical_Projects", Items: []WorkItem{
					{Type: ItemProject, Title: "Beach Date"},
					{Type: ItemProject, Title: "PCG"},
				}},
			},
		},
		{
			Name: "Volunteer",
			Items: []WorkItem{
				{Type: ItemText, Title: "Festival"},
			},
		},
		{
			Name: "Short_Films",
			Items: []WorkItem{
				{Type: ItemVideo, URL: "https://www.youtube.com/embed/ccc?si=x"},
			},
		},
	}
}

func filterIDs(filters []Filter) []string {
	ids := make([]string, 0, len(filters))
	for _, f := range filters {
		ids = append(ids, f.ID)
	}
	return ids
}

func TestFilterIDsAndLabels(t *testing.T) {
	t.Parallel()

	require.Equal(t, "unreal_engine_works", CategoryFilterID("Unreal_Engine_Works"))
	require.Equal(t, "short_films", CategoryFilterID("Short Films"))
	require.Equal(t, "unreal_engine_works_cinematic_projects", SubcategoryFilterID("Unreal_Engine_Works", "Cinematic_Projects"))
	require.Equal(t, "CINEMATIC PROJECTS", FilterLabel("Cinematic_Projects"))
	require.Equal(t, "DEMO REELS", FilterLabel(" Demo_Reels "))
	require.Equal(t, "demo-reel", ProjectFilterID("Demo Reel"))
}

func TestBuildFilters_OrderAndExclusions(t *testing.T) {
	t.Parallel()

	filters := BuildFilters(sampleCategories())
	require.Equal(t, []string{
		"all",
		"demo_reels",
		"unreal_engine_works",
		"unreal_engine_works_cinematic_projects",
		"short_films",
	}, filterIDs(filters))

	require.Equal(t, "ALL", filters[0].Label)
	require.Equal(t, 5, filters[0].Count)

	cinematic, ok := FindFilter(filters, "unreal_engine_works_cinematic_projects")
	require.True(t, ok)
	require.True(t, cinematic.IsSubcategory())
	require.Equal(t, "unreal_engine_works", cinematic.ParentID)
	require.Equal(t, "CINEMATIC PROJECTS", cinematic.Label)
	require.Equal(t, 2, cinematic.Count)

	parent, ok := FindFilter(filters, "unreal_engine_works")
	require.True(t, ok)
	require.False(t, parent.IsSubcategory())
	require.Equal(t, 2, parent.Count)

	_, ok = FindFilter(filters, "volunteer")
	require.False(t, ok)
	_, ok = FindFilter(filters, "unreal_engine_works_technical_projects")
	require.False(t, ok)
}

func TestBuildFilters_EmptyInputYieldsOnlyAll(t *testing.T) {
	t.Parallel()

	filters := BuildFilters(nil)
	require.Len(t, filters, 1)
	require.Equal(t, Filter{ID: FilterAll, Label: "ALL"}, filters[0])
}

func TestBuildFilters_ParentWithDirectItemsAndEmptySubcategory(t *testing.T) {
	t.Parallel()

	filters := BuildFilters([]Category{{
		Name:  "Animations",
		Items: []WorkItem{{Type: ItemVideo, URL: "https://youtu.be/x"}},
		Subcategories: []Subcategory{
			{Name: "Drafts", Items: []WorkItem{{Type: ItemText, Title: "soon"}}},
		},
	}})
	require.Equal(t, []string{"all", "animations"}, filterIDs(filters))
	require.Equal(t, 1, filters[1].Count)
}

func TestBuildFilters_WhitespaceURLDoesNotQualify(t *testing.T) {
	t.Parallel()

	filters := BuildFilters([]Category{{
		Name:  "Empty",
		Items: []WorkItem{{Type: ItemVideo, URL: "   "}},
	}})
	require.Equal(t, []string{"all"}, filterIDs(filters))
}

func TestProjectFilters(t *testing.T) {
	t.Parallel()

	projects := []Project{
		{ID: "a", Title: "A", Category: "Unreal Engine"},
		{ID: "b", Title: "B", Category: "Demo Reel"},
		{ID: "c", Title: "C", Category: "Unreal Engine"},
	}
	filters := ProjectFilters(projects)
	require.Equal(t, []Filter{
		{ID: "all", Label: "All Projects", Count: 3},
		{ID: "demo-reel", Label: "Demo Reel", Count: 1},
		{ID: "unreal-engine", Label: "Unreal Engine", Count: 2},
	}, filters)
}

func TestBuildFilters_RepeatedVideoEarnsNoChip(t *testing.T) {
	t.Parallel()

	cats := []Category{
		{Name: "Reels", Items: []WorkItem{
			{Type: ItemVideo, URL: "https://youtu.be/same"},
		}},
		{Name: "Unreal", Subcategories: []Subcategory{
			{Name: "Repeats", Items: []WorkItem{
				{Type: ItemVideo, URL: "https://www.youtube.com/watch?v=same"},
			}},
			{Name: "Fresh", Items: []WorkItem{
				{Type: ItemVideo, URL: "https://vimeo.com/42"},
			}},
		}},
		{Name: "Archive", Items: []WorkItem{
			{Type: ItemVideo, URL: "https://youtube.com/shorts/same"},
		}},
	}

	filters := BuildFilters(cats)
	require.Equal(t, []string{"all", "reels", "unreal", "unreal_fresh"}, filterIDs(filters))
	for _, f := range filters {
		require.Positive(t, f.Count, f.ID)
	}
}

func TestBuildFilters_PrefixSiblingDoesNotQualifyEmptyCategory(t *testing.T) {
	t.Parallel()

	cats := []Category{
		{Name: "Unreal", Items: []WorkItem{{Type: ItemText, Title: "Notes"}}},
		{Name: "Unreal_Works", Items: []WorkItem{
			{Type: ItemVideo, URL: "https://vimeo.com/7"},
		}},
	}
	require.Equal(t, []string{"all", "unreal_works"}, filterIDs(BuildFilters(cats)))
}
