// package gallery_api serves the work gallery filters and items.
package gallery_api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"neeleshreddy.com/portfolio/cmd/web/handlers/common"
	"neeleshreddy.com/portfolio/internal/portfolio"
)

// ItemsResponse is the JSON body of the items endpoint.
type ItemsResponse struct {
	Filter string                  `json:"filter"`
	Kind   string                  `json:"kind"`
	Count  int                     `json:"count"`
	Items  []portfolio.GalleryItem `json:"items"`
}

// HandleFilters returns the gallery filter chips as JSON.
func HandleFilters(catalog *portfolio.Catalog) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, catalog.Filters())
	}
}

// HandleItems returns the items visible for ?filter=. Unknown filters fall
// back to "all"; the response names the filter actually applied.
func HandleItems(catalog *portfolio.Catalog) echo.HandlerFunc {
	return func(c echo.Context) error {
		sel := portfolio.NewSelection().Select(common.FilterParam(c), catalog.Filters())
		items := catalog.Gallery(sel)
		if items == nil {
			items = []portfolio.GalleryItem{}
		}
		return c.JSON(http.StatusOK, ItemsResponse{
			Filter: sel.FilterID,
			Kind:   sel.Kind.String(),
			Count:  len(items),
			Items:  items,
		})
	}
}
