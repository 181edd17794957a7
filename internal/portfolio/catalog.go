package portfolio

import (
	"errors"
	"slices"
	"strings"

	"neeleshreddy.com/portfolio/pkg/utils/markdown"
)

var ErrProjectNotFound = errors.New("project not found")

// Catalog is the immutable content of the site. It is built once by Load and
// only exposes deep copies, so callers can never mutate shared state.
type Catalog struct {
	site       SiteMetadata
	personal   PersonalInfo
	skills     []Skill
	experience []Experience
	education  []Education
	work       []Category
	projects   []Project

	// Derived once at load.
	gallery        []GalleryItem
	filters        []Filter
	projectFilters []Filter
	projectIndex   map[string]int
}

func newCatalog(doc document) *Catalog {
	c := &Catalog{
		site:         doc.Site,
		personal:     doc.Personal,
		skills:       doc.Skills,
		experience:   doc.Experience,
		education:    doc.Education,
		work:         doc.Work,
		projects:     doc.Projects,
		projectIndex: make(map[string]int, len(doc.Projects)),
	}
	for i, p := range c.projects {
		c.projectIndex[p.ID] = i
		warmMarkdown(p.Description)
	}
	warmMarkdown(c.personal.Bio)
	c.gallery = Flatten(c.work)
	c.filters = BuildFilters(c.work)
	c.projectFilters = ProjectFilters(c.projects)
	return c
}

// warmMarkdown fills the render caches so concurrent readers never write.
func warmMarkdown(m *markdown.Markdown) {
	if m == nil {
		return
	}
	m.Render()
	m.PlainText()
}

func (c *Catalog) Site() SiteMetadata { return c.site }

func (c *Catalog) Personal() PersonalInfo {
	p := c.personal
	p.Bio = p.Bio.Clone()
	return p
}

func (c *Catalog) Skills() []Skill { return slices.Clone(c.skills) }

func (c *Catalog) Experience() []Experience {
	out := slices.Clone(c.experience)
	for i := range out {
		out[i].Responsibilities = slices.Clone(out[i].Responsibilities)
	}
	return out
}

func (c *Catalog) Education() []Education { return slices.Clone(c.education) }

// Categories returns a deep copy of the work gallery tree.
func (c *Catalog) Categories() []Category {
	out := make([]Category, len(c.work))
	for i, cat := range c.work {
		out[i] = Category{
			Name:          cat.Name,
			Items:         cloneItems(cat.Items),
			Subcategories: make([]Subcategory, len(cat.Subcategories)),
		}
		for j, s := range cat.Subcategories {
			out[i].Subcategories[j] = Subcategory{Name: s.Name, Items: cloneItems(s.Items)}
		}
	}
	return out
}

func cloneItems(items []WorkItem) []WorkItem {
	out := slices.Clone(items)
	for i := range out {
		out[i].BehindTheScenes = cloneItems(out[i].BehindTheScenes)
	}
	return out
}

// GalleryItems returns every playable gallery item.
func (c *Catalog) GalleryItems() []GalleryItem { return cloneGallery(c.gallery) }

// Filters returns the gallery filter chips.
func (c *Catalog) Filters() []Filter { return slices.Clone(c.filters) }

// Gallery returns the items visible in selection s.
func (c *Catalog) Gallery(s Selection) []GalleryItem { return cloneGallery(s.Visible(c.gallery)) }

func cloneGallery(items []GalleryItem) []GalleryItem {
	out := slices.Clone(items)
	for i := range out {
		out[i].Item.BehindTheScenes = cloneItems(out[i].Item.BehindTheScenes)
	}
	return out
}

// Projects returns all projects in content order.
func (c *Catalog) Projects() []Project { return cloneProjects(c.projects) }

func cloneProjects(projects []Project) []Project {
	if projects == nil {
		return nil
	}
	out := make([]Project, len(projects))
	for i, p := range projects {
		out[i] = p.clone()
	}
	return out
}

// selectProjects returns copies of the projects matching keep.
func (c *Catalog) selectProjects(keep func(Project) bool) []Project {
	var out []Project
	for _, p := range c.projects {
		if keep(p) {
			out = append(out, p.clone())
		}
	}
	return out
}

// Project returns the project with id.
func (c *Catalog) Project(id string) (Project, error) {
	i, ok := c.projectIndex[id]
	if !ok {
		return Project{}, ErrProjectNotFound
	}
	return c.projects[i].clone(), nil
}

// AdjacentProjects returns the projects before and after id in content order,
// for previous/next navigation. Either may be nil at the ends.
func (c *Catalog) AdjacentProjects(id string) (prev, next *Project) {
	i, ok := c.projectIndex[id]
	if !ok {
		return nil, nil
	}
	if i > 0 {
		p := c.projects[i-1].clone()
		prev = &p
	}
	if i < len(c.projects)-1 {
		n := c.projects[i+1].clone()
		next = &n
	}
	return prev, next
}

// FeaturedProjects returns featured projects ordered by Order; projects
// without an order sort last.
func (c *Catalog) FeaturedProjects() []Project {
	out := c.selectProjects(func(p Project) bool { return p.Featured })
	slices.SortStableFunc(out, func(a, b Project) int {
		return a.sortOrder() - b.sortOrder()
	})
	return out
}

func (c *Catalog) ProjectsByCategory(category string) []Project {
	return c.selectProjects(func(p Project) bool { return p.Category == category })
}

// ProjectCategories returns the distinct project categories, sorted.
func (c *Catalog) ProjectCategories() []string { return projectCategories(c.projects) }

// ProjectFilters returns the projects-page filter chips.
func (c *Catalog) ProjectFilters() []Filter { return slices.Clone(c.projectFilters) }

// FilterProjects returns the projects shown for a projects-page filter id.
func (c *Catalog) FilterProjects(filterID string) []Project {
	return cloneProjects(FilterProjects(c.projects, filterID))
}

// VideoProjects returns projects that have a video.
func (c *Catalog) VideoProjects() []Project {
	return c.selectProjects(func(p Project) bool { return strings.TrimSpace(p.VideoURL) != "" })
}

// SearchProjects matches query case-insensitively against title, description
// source and tools. An empty query matches nothing.
func (c *Catalog) SearchProjects(query string) []Project {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	return c.selectProjects(func(p Project) bool {
		return strings.Contains(strings.ToLower(p.Title), q) ||
			(p.Description != nil && strings.Contains(strings.ToLower(p.Description.Source), q)) ||
			slices.ContainsFunc(p.Tools, func(t string) bool { return strings.Contains(strings.ToLower(t), q) })
	})
}
