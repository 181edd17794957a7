package templates

import (
	"context"

	"github.com/a-h/templ"

	"neeleshreddy.com/portfolio/cmd/web/ctxkeys"
)

const datastarScript = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0/bundles/datastar.js"

type navLink struct {
	Href  string
	Label string
}

var navLinks = []navLink{
	{Href: "/work", Label: "Work"},
	{Href: "/projects", Label: "Projects"},
	{Href: "/about", Label: "About"},
}

func ctxString(ctx context.Context, key ctxkeys.Key) string {
	s, _ := ctx.Value(key).(string)
	return s
}

// pageTitle joins a page title with the site title set by the server
// middleware.
func pageTitle(ctx context.Context, title string) string {
	site := ctxString(ctx, ctxkeys.SiteTitle)
	switch {
	case site == "":
		return title
	case title == "":
		return site
	default:
		return title + " | " + site
	}
}

// Layout wraps body in the page chrome.
func Layout(title string, body templ.Component) templ.Component {
	return component(func(h *htmlWriter) {
		current := ctxString(h.ctx, ctxkeys.CurrentPath)

		h.raw("<!doctype html>")
		h.start("html", templ.Attributes{"lang": "en"})
		h.start("head", nil)
		h.start("meta", templ.Attributes{"charset": "utf-8"})
		h.start("meta", templ.Attributes{"name": "viewport", "content": "width=device-width, initial-scale=1"})
		h.element("title", "", pageTitle(h.ctx, title))
		h.start("link", templ.Attributes{"rel": "stylesheet", "href": "/static/dist/main.css"})
		h.start("script", templ.Attributes{"type": "module", "src": datastarScript})
		h.end("script")
		h.start("script", templ.Attributes{"defer": true, "src": "/static/dist/main.js"})
		h.end("script")
		h.end("head")
		h.start("body", nil)

		h.open("header", "site")
		h.link(templ.Attributes{"href": "/"}, ctxString(h.ctx, ctxkeys.SiteTitle))
		h.start("nav", nil)
		for _, l := range navLinks {
			attrs := templ.Attributes{"href": safeURL(l.Href)}
			if l.Href == current {
				attrs["aria-current"] = "page"
			}
			h.link(attrs, l.Label)
		}
		h.end("nav")
		h.end("header")

		h.start("main", nil)
		h.component(body)
		h.end("main")
		h.end("body")
		h.end("html")
	})
}

// NotFound is the body of the 404 page.
func NotFound(message string) templ.Component {
	return component(func(h *htmlWriter) {
		h.open("section", "not-found")
		h.element("h1", "", "Not found")
		h.element("p", "", message)
		h.link(templ.Attributes{"href": "/projects"}, "Back to projects")
		h.end("section")
	})
}
