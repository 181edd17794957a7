package portfolio

import (
	"strings"

	"neeleshreddy.com/portfolio/internal/videoid"
)

// SelectionKind enumerates the states of the gallery filter.
type SelectionKind int

const (
	SelectAll SelectionKind = iota
	SelectCategory
	SelectSubcategory
)

func (k SelectionKind) String() string {
	switch k {
	case SelectCategory:
		return "category"
	case SelectSubcategory:
		return "subcategory"
	default:
		return "all"
	}
}

// Selection is the active gallery filter. The zero value is not valid; use
// NewSelection. Selections are values: transitions return a new Selection.
type Selection struct {
	Kind     SelectionKind
	FilterID string
}

// NewSelection returns the initial "all" state.
func NewSelection() Selection {
	return Selection{Kind: SelectAll, FilterID: FilterAll}
}

// Select transitions to the filter with id. Ids that are not in filters, and
// "all" itself, yield the "all" state.
func (s Selection) Select(id string, filters []Filter) Selection {
	f, ok := FindFilter(filters, strings.TrimSpace(id))
	if !ok || f.ID == FilterAll {
		return NewSelection()
	}
	if f.IsSubcategory() {
		return Selection{Kind: SelectSubcategory, FilterID: f.ID}
	}
	return Selection{Kind: SelectCategory, FilterID: f.ID}
}

// Reset returns to the initial state.
func (s Selection) Reset() Selection {
	return NewSelection()
}

// IsActive reports whether the chip for filterID should render as selected.
func (s Selection) IsActive(filterID string) bool {
	if s.FilterID == "" {
		return filterID == FilterAll
	}
	return s.FilterID == filterID
}

// GalleryItem is a URL-bearing WorkItem flattened out of the category tree,
// together with everything derived from its URL.
type GalleryItem struct {
	Item WorkItem `json:"item"`
	// CategoryID is the filter id of the top-level category.
	CategoryID string `json:"category_id"`
	// FilterID is CategoryID for direct items, and the subcategory filter id
	// for items inside a subcategory.
	FilterID     string           `json:"filter_id"`
	Platform     videoid.Platform `json:"platform"`
	EmbedURL     string           `json:"embed_url"`
	PreviewURL   string           `json:"preview_url"`
	ThumbnailURL string           `json:"thumbnail_url,omitempty"`
	// Key is a stable identifier derived from the video, shared by every link
	// to the same video.
	Key string `json:"key"`
}

func newGalleryItem(item WorkItem, categoryID, filterID string) GalleryItem {
	return GalleryItem{
		Item:         item,
		CategoryID:   categoryID,
		FilterID:     filterID,
		Platform:     videoid.DetectPlatform(item.URL),
		EmbedURL:     videoid.EmbedURL(item.URL),
		PreviewURL:   videoid.PreviewEmbedURL(item.URL),
		ThumbnailURL: videoid.ThumbnailURL(item.URL),
		Key:          videoid.UUIDForURL(item.URL).String(),
	}
}

// Flatten returns every item with a URL across all categories and
// subcategories, in table order. A video that appears more than once is kept
// at its first position only.
func Flatten(categories []Category) []GalleryItem {
	var out []GalleryItem
	seen := make(map[string]struct{})
	add := func(item WorkItem, categoryID, filterID string) {
		if !item.HasURL() {
			return
		}
		key := videoid.VideoKey(item.URL)
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		out = append(out, newGalleryItem(item, categoryID, filterID))
	}

	for _, c := range categories {
		categoryID := CategoryFilterID(c.Name)
		for _, item := range c.Items {
			add(item, categoryID, categoryID)
		}
		for _, s := range c.Subcategories {
			filterID := SubcategoryFilterID(c.Name, s.Name)
			for _, item := range s.Items {
				add(item, categoryID, filterID)
			}
		}
	}
	return out
}

type itemMatcher func(item GalleryItem, filterID string) bool

// inCategory matches items tagged with the category, or whose filter id is
// one of the category's subcategory ids.
func inCategory(item GalleryItem, filterID string) bool {
	return item.CategoryID == filterID || strings.HasPrefix(item.FilterID, filterID+"_")
}

func inSubcategory(item GalleryItem, filterID string) bool {
	return item.FilterID == filterID
}

func countMatching(items []GalleryItem, filterID string, match itemMatcher) int {
	n := 0
	for _, item := range items {
		if match(item, filterID) {
			n++
		}
	}
	return n
}

// Visible returns the subset of items shown in state s.
func (s Selection) Visible(items []GalleryItem) []GalleryItem {
	var match itemMatcher
	switch s.Kind {
	case SelectCategory:
		match = inCategory
	case SelectSubcategory:
		match = inSubcategory
	default:
		return append([]GalleryItem(nil), items...)
	}

	out := make([]GalleryItem, 0, len(items))
	for _, item := range items {
		if match(item, s.FilterID) {
			out = append(out, item)
		}
	}
	return out
}

// FilterProjects returns the projects shown for a projects-page filter id.
// "all" and unknown ids return every project.
func FilterProjects(projects []Project, filterID string) []Project {
	if filterID == FilterAll {
		return append([]Project(nil), projects...)
	}
	f, ok := FindFilter(ProjectFilters(projects), filterID)
	if !ok {
		return append([]Project(nil), projects...)
	}
	var out []Project
	for _, p := range projects {
		if p.Category == f.Label {
			out = append(out, p)
		}
	}
	return out
}
