package templates

import (
	"html"

	"github.com/a-h/templ"

	"neeleshreddy.com/portfolio/cmd/web/viewtypes"
	"neeleshreddy.com/portfolio/internal/portfolio"
	"neeleshreddy.com/portfolio/pkg/utils/format"
)

// cardBlurbLength caps project descriptions on cards, in runes.
const cardBlurbLength = 160

func projectPath(p portfolio.Project) string {
	return "/projects/" + p.ID
}

func coverImage(p portfolio.Project) string {
	if img := p.CoverImage(); img != "" {
		return img
	}
	return PlaceholderImage
}

// ProjectFilterBar renders the projects-page category links.
func ProjectFilterBar(filters []portfolio.Filter, activeID string) templ.Component {
	return component(func(h *htmlWriter) {
		h.start("nav", templ.Attributes{"id": "project-filters", "class": "filters"})
		for _, f := range filters {
			active := f.ID == activeID
			attrs := templ.Attributes{
				"href":           filterHref("/projects", f.ID),
				"class":          viewtypes.ChipClass(false, active),
				"data-filter-id": f.ID,
			}
			if active {
				attrs["aria-pressed"] = "true"
			}
			h.start("a", attrs)
			h.text(f.Label)
			h.open("span", "count")
			h.number(f.Count)
			h.end("span")
			h.end("a")
		}
		h.end("nav")
	})
}

// ProjectCard renders a project teaser. The hover preview uses the muted
// autoplay variant of the project video when there is one.
func ProjectCard(p portfolio.Project) templ.Component {
	return component(func(h *htmlWriter) {
		attrs := templ.Attributes{"id": "project-" + p.ID, "class": viewtypes.Card}
		if preview := p.PreviewURL(); preview != "" {
			attrs["data-preview-url"] = safeURL(preview)
		}
		h.start("article", attrs)
		h.start("a", templ.Attributes{"href": safeURL(projectPath(p))})
		h.open("div", viewtypes.Media)
		h.start("img", templ.Attributes{"src": safeURL(coverImage(p)), "alt": p.Title, "loading": "lazy"})
		h.end("div")
		h.element("h3", "", p.Title)
		h.end("a")
		h.element("p", "category", p.Category)
		if !p.Description.IsZero() {
			blurb := html.UnescapeString(string(p.Description.PlainText()))
			h.element("p", "", format.Truncate(blurb, cardBlurbLength))
		}
		h.component(ToolList(p.Tools))
		h.end("article")
	})
}

// ToolList renders tool tags, or nothing for an empty list.
func ToolList(tools []string) templ.Component {
	return component(func(h *htmlWriter) {
		if len(tools) == 0 {
			return
		}
		h.open("ul", viewtypes.ToolList)
		for _, t := range tools {
			h.element("li", "", t)
		}
		h.end("ul")
	})
}

// ProjectGrid renders project cards.
func ProjectGrid(projects []portfolio.Project) templ.Component {
	return component(func(h *htmlWriter) {
		h.start("section", templ.Attributes{"id": "project-grid", "class": viewtypes.Grid})
		if len(projects) == 0 {
			h.element("p", viewtypes.Empty, "No projects in this category.")
		}
		for _, p := range projects {
			h.component(ProjectCard(p))
		}
		h.end("section")
	})
}

// ProjectsPage is the projects listing body.
func ProjectsPage(filters []portfolio.Filter, activeID string, projects []portfolio.Project) templ.Component {
	return component(func(h *htmlWriter) {
		h.element("h1", "", "Projects")
		h.component(ProjectFilterBar(filters, activeID))
		h.component(ProjectGrid(projects))
	})
}

// ProjectDetail is the project page body with previous/next navigation.
func ProjectDetail(p portfolio.Project, prev, next *portfolio.Project) templ.Component {
	return component(func(h *htmlWriter) {
		h.start("article", templ.Attributes{"id": "project-" + p.ID, "class": "project-detail"})
		h.element("h1", "", p.Title)
		h.element("p", "category", p.Category)

		if embed := p.EmbedURL(); embed != "" {
			h.open("div", viewtypes.Player)
			h.component(playerFrame(embed, p.Title))
			h.end("div")
		} else {
			h.open("div", viewtypes.Media)
			h.start("img", templ.Attributes{"src": safeURL(coverImage(p)), "alt": p.Title})
			h.end("div")
		}

		if !p.Description.IsZero() {
			h.open("div", "description")
			h.raw(string(p.Description.Render()))
			h.end("div")
		}

		h.start("dl", nil)
		for _, row := range [][2]string{{"Year", p.Year}, {"Client", p.Client}, {"Role", p.Role}} {
			if row[1] == "" {
				continue
			}
			h.element("dt", "", row[0])
			h.element("dd", "", row[1])
		}
		h.end("dl")
		h.component(ToolList(p.Tools))

		if len(p.Images) > 0 {
			h.open("div", "images")
			for _, img := range p.Images {
				h.start("img", templ.Attributes{"src": safeURL(img), "alt": p.Title, "loading": "lazy"})
			}
			h.end("div")
		}

		h.open("nav", "adjacent")
		if prev != nil {
			h.link(templ.Attributes{"rel": "prev", "href": safeURL(projectPath(*prev))}, "← "+prev.Title)
		}
		if next != nil {
			h.link(templ.Attributes{"rel": "next", "href": safeURL(projectPath(*next))}, next.Title+" →")
		}
		h.end("nav")
		h.end("article")
	})
}

// playerFrame renders an embedded video player.
func playerFrame(src, title string) templ.Component {
	return component(func(h *htmlWriter) {
		h.start("iframe", templ.Attributes{
			"src":             safeURL(src),
			"title":           title,
			"allow":           "autoplay; fullscreen; picture-in-picture",
			"allowfullscreen": true,
		})
		h.end("iframe")
	})
}
