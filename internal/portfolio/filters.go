package portfolio

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"neeleshreddy.com/portfolio/pkg/utils/slug"
)

// FilterAll is the id of the leading "show everything" filter.
const FilterAll = "all"

// Filter is a selectable chip above the gallery. ParentID is set for
// subcategory filters. Count is the number of items the filter shows.
type Filter struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	ParentID string `json:"parent_id,omitempty"`
	Count    int    `json:"count"`
}

// IsSubcategory reports whether f narrows a parent category.
func (f Filter) IsSubcategory() bool {
	return f.ParentID != ""
}

var upper = cases.Upper(language.Und)

// CategoryFilterID derives the filter id of a category name
// ("Unreal_Engine_Works" -> "unreal_engine_works").
func CategoryFilterID(name string) string {
	return slug.Key(name, "_")
}

// SubcategoryFilterID derives the filter id of a subcategory, which is always
// prefixed by its parent's id and an underscore.
func SubcategoryFilterID(parent, sub string) string {
	return CategoryFilterID(parent) + "_" + CategoryFilterID(sub)
}

// FilterLabel derives the display label of a category or subcategory name
// ("Cinematic_Projects" -> "CINEMATIC PROJECTS").
func FilterLabel(name string) string {
	return upper.String(strings.ReplaceAll(strings.TrimSpace(name), "_", " "))
}

// BuildFilters derives the filter chips for categories. The "all" filter is
// always first. A category is emitted only when it, or one of its
// subcategories, shows at least one item; a subcategory is emitted (after its
// parent) only when it shows such an item itself. Qualification follows
// Flatten, so a video repeated from an earlier category never earns a chip
// of its own.
func BuildFilters(categories []Category) []Filter {
	items := Flatten(categories)

	filters := []Filter{{ID: FilterAll, Label: "ALL", Count: len(items)}}
	for _, c := range categories {
		parentID := CategoryFilterID(c.Name)
		if !slices.ContainsFunc(items, func(item GalleryItem) bool { return item.CategoryID == parentID }) {
			continue
		}
		filters = append(filters, Filter{
			ID:    parentID,
			Label: FilterLabel(c.Name),
			Count: countMatching(items, parentID, inCategory),
		})
		for _, s := range c.Subcategories {
			id := SubcategoryFilterID(c.Name, s.Name)
			if n := countMatching(items, id, inSubcategory); n > 0 {
				filters = append(filters, Filter{
					ID:       id,
					Label:    FilterLabel(s.Name),
					ParentID: parentID,
					Count:    n,
				})
			}
		}
	}
	return filters
}

// ProjectFilterID derives a projects-page filter id; these use dashes
// ("Demo Reel" -> "demo-reel").
func ProjectFilterID(category string) string {
	return slug.Key(category, "-")
}

// ProjectFilters returns "all" plus one filter per distinct project category
// in sorted order, each with the number of projects it contains.
func ProjectFilters(projects []Project) []Filter {
	filters := []Filter{{ID: FilterAll, Label: "All Projects", Count: len(projects)}}
	for _, c := range projectCategories(projects) {
		n := 0
		for _, p := range projects {
			if p.Category == c {
				n++
			}
		}
		filters = append(filters, Filter{ID: ProjectFilterID(c), Label: c, Count: n})
	}
	return filters
}

func projectCategories(projects []Project) []string {
	var out []string
	for _, p := range projects {
		if !slices.Contains(out, p.Category) {
			out = append(out, p.Category)
		}
	}
	slices.Sort(out)
	return out
}

// FindFilter returns the filter with id, if any.
func FindFilter(filters []Filter, id string) (Filter, bool) {
	i := slices.IndexFunc(filters, func(f Filter) bool { return f.ID == id })
	if i < 0 {
		return Filter{}, false
	}
	return filters[i], true
}
