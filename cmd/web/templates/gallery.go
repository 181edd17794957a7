package templates

import (
	"net/url"

	"github.com/a-h/templ"

	"neeleshreddy.com/portfolio/cmd/web/viewtypes"
	"neeleshreddy.com/portfolio/internal/portfolio"
)

// Element ids patched by the gallery SSE endpoint.
const (
	GalleryFiltersID = "gallery-filters"
	GalleryGridID    = "gallery-grid"
)

// GallerySelectURL is the datastar endpoint that applies a filter selection.
const GallerySelectURL = "/api/gallery/select"

// PlaceholderImage is shown when no thumbnail can be derived.
const PlaceholderImage = "/static/images/placeholder.svg"

// SelectFilterExpr returns the datastar expression that selects filter id.
func SelectFilterExpr(id string) string {
	return "$filter = " + jsString(id) + "; @post('" + GallerySelectURL + "')"
}

// filterHref links a page to one of its filters. Category names may carry
// query metacharacters, so the id is escaped.
func filterHref(page, id string) string {
	return safeURL(page + "?filter=" + url.QueryEscape(id))
}

// FilterChips renders the gallery filter bar. Chips are links so the page
// still works without scripts; datastar intercepts the click.
func FilterChips(filters []portfolio.Filter, sel portfolio.Selection) templ.Component {
	return component(func(h *htmlWriter) {
		h.start("nav", templ.Attributes{"id": GalleryFiltersID, "class": "filters"})
		for _, f := range filters {
			active := sel.IsActive(f.ID)
			attrs := templ.Attributes{
				"href":                   filterHref("/work", f.ID),
				"class":                  viewtypes.ChipClass(f.IsSubcategory(), active),
				"data-filter-id":         f.ID,
				"data-on:click__prevent": SelectFilterExpr(f.ID),
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

// GalleryGrid renders the visible gallery items.
func GalleryGrid(items []portfolio.GalleryItem) templ.Component {
	return component(func(h *htmlWriter) {
		h.start("section", templ.Attributes{"id": GalleryGridID, "class": viewtypes.Grid})
		if len(items) == 0 {
			h.element("p", viewtypes.Empty, "Nothing here yet.")
		}
		for _, item := range items {
			h.component(GalleryCard(item))
		}
		h.end("section")
	})
}

// GalleryCard renders one playable item: a thumbnail that swaps to a muted
// preview on hover, and a link to the full player.
func GalleryCard(item portfolio.GalleryItem) templ.Component {
	return component(func(h *htmlWriter) {
		thumb := item.ThumbnailURL
		if thumb == "" {
			thumb = PlaceholderImage
		}
		alt := item.Item.Title
		if alt == "" {
			alt = item.Platform.Label() + " video"
		}

		h.start("article", templ.Attributes{
			"id":               "video-" + item.Key,
			"class":            viewtypes.Card,
			"data-filter-id":   item.FilterID,
			"data-preview-url": safeURL(item.PreviewURL),
		})
		h.start("a", templ.Attributes{
			"href":   safeURL(item.EmbedURL),
			"target": "_blank",
			"rel":    "noopener",
		})
		h.open("div", viewtypes.Media)
		h.start("img", templ.Attributes{"src": safeURL(thumb), "alt": alt, "loading": "lazy"})
		h.end("div")
		h.end("a")

		if item.Item.Title != "" {
			h.element("h3", "", item.Item.Title)
		}
		if item.Item.Description != "" {
			h.element("p", "", item.Item.Description)
		}
		if item.Item.Role != "" {
			h.element("p", "role", item.Item.Role)
		}
		h.end("article")
	})
}

// WorkPage is the gallery page body. The filter signal starts at the current
// selection so the first click posts from a consistent state.
func WorkPage(filters []portfolio.Filter, sel portfolio.Selection, items []portfolio.GalleryItem) templ.Component {
	return component(func(h *htmlWriter) {
		h.start("section", templ.Attributes{
			"id":           "gallery",
			"data-signals": `{"filter": ` + jsString(sel.FilterID) + `}`,
		})
		h.element("h1", "", "Work")
		h.component(FilterChips(filters, sel))
		h.component(GalleryGrid(items))
		h.end("section")
	})
}
