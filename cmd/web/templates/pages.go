package templates

import (
	"github.com/a-h/templ"

	"neeleshreddy.com/portfolio/cmd/web/viewtypes"
	"neeleshreddy.com/portfolio/internal/portfolio"
	"neeleshreddy.com/portfolio/internal/videoid"
)

// HomePage shows the hero, the demo reel and the featured projects.
func HomePage(site portfolio.SiteMetadata, personal portfolio.PersonalInfo, featured []portfolio.Project) templ.Component {
	return component(func(h *htmlWriter) {
		h.open("section", "hero")
		h.element("h1", "", personal.Name)
		h.element("p", "title", personal.Title)
		if personal.Subtitle != "" {
			h.element("p", "subtitle", personal.Subtitle)
		}
		h.end("section")

		if reel := videoid.EmbedURL(site.DemoReelURL); reel != "" {
			h.start("section", templ.Attributes{"id": "demo-reel", "class": viewtypes.Player})
			h.component(playerFrame(reel, "Demo reel"))
			h.end("section")
		}

		h.start("section", templ.Attributes{"id": "featured"})
		h.element("h2", "", "Featured work")
		h.component(ProjectGrid(featured))
		h.link(templ.Attributes{"href": "/projects"}, "All projects")
		h.end("section")
	})
}

// AboutPage renders the biography, skills, experience and education.
func AboutPage(personal portfolio.PersonalInfo, skills []portfolio.Skill, experience []portfolio.Experience, education []portfolio.Education) templ.Component {
	return component(func(h *htmlWriter) {
		h.start("section", templ.Attributes{"id": "bio"})
		h.element("h1", "", personal.Name)
		h.element("p", "title", personal.Title)
		h.raw(string(personal.Bio.Render()))
		if personal.LinkedIn != "" {
			h.link(templ.Attributes{"href": safeURL(personal.LinkedIn), "rel": "noopener", "target": "_blank"}, "LinkedIn")
		}
		if personal.Email != "" {
			h.link(templ.Attributes{"href": safeURL("mailto:" + personal.Email)}, personal.Email)
		}
		h.end("section")

		if len(skills) > 0 {
			h.start("section", templ.Attributes{"id": "skills"})
			h.element("h2", "", "Skills")
			for _, s := range skills {
				h.start("article", templ.Attributes{"id": "skill-" + s.ID})
				h.element("h3", "", s.Title)
				h.element("p", "", s.Description)
				h.end("article")
			}
			h.end("section")
		}

		if len(experience) > 0 {
			h.start("section", templ.Attributes{"id": "experience"})
			h.element("h2", "", "Experience")
			for _, e := range experience {
				h.start("article", nil)
				h.element("h3", "", e.Position)
				h.element("p", "company", e.Company)
				h.element("p", "period", e.Period)
				if len(e.Responsibilities) > 0 {
					h.start("ul", nil)
					for _, r := range e.Responsibilities {
						h.element("li", "", r)
					}
					h.end("ul")
				}
				h.end("article")
			}
			h.end("section")
		}

		if len(education) > 0 {
			h.start("section", templ.Attributes{"id": "education"})
			h.element("h2", "", "Education")
			for _, e := range education {
				h.start("article", nil)
				h.element("h3", "", e.Degree)
				h.element("p", "institution", e.Institution)
				if e.Specialization != "" {
					h.element("p", "specialization", e.Specialization)
				}
				h.element("p", "period", e.Period)
				h.end("article")
			}
			h.end("section")
		}
	})
}
