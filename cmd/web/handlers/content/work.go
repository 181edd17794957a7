package content

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"neeleshreddy.com/portfolio/cmd/web/handlers/common"
	"neeleshreddy.com/portfolio/cmd/web/templates"
	"neeleshreddy.com/portfolio/internal/portfolio"
)

// HandleWorkPage renders the gallery for the ?filter= selection. Later
// selections are applied in place through the gallery SSE endpoint.
func HandleWorkPage(catalog *portfolio.Catalog) echo.HandlerFunc {
	return func(c echo.Context) error {
		filters := catalog.Filters()
		sel := portfolio.NewSelection().Select(common.FilterParam(c), filters)
		body := templates.WorkPage(filters, sel, catalog.Gallery(sel))
		return common.RenderPage(c, http.StatusOK, "Work", body)
	}
}
