package gallery_api

import (
	"encoding/json"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/starfederation/datastar-go/datastar"

	"neeleshreddy.com/portfolio/cmd/web/handlers/common"
	"neeleshreddy.com/portfolio/cmd/web/templates"
	"neeleshreddy.com/portfolio/internal/portfolio"
)

// HandleSelect applies the filter named by the "filter" signal and patches
// the filter bar and grid in place. Nothing is persisted; the selection lives
// in the page's signals.
func HandleSelect(catalog *portfolio.Catalog) echo.HandlerFunc {
	return func(c echo.Context) error {
		// ReadSignals must run before NewSSE, which flushes headers and
		// closes the request body.
		type Signals struct {
			Filter string `json:"filter"`
		}
		signals := &Signals{}
		if err := datastar.ReadSignals(c.Request(), signals); err != nil {
			slog.Warn("failed to read gallery signals", "error", err)
			return common.ErrBadRequest("invalid signals")
		}

		filters := catalog.Filters()
		sel := portfolio.NewSelection().Select(signals.Filter, filters)

		common.SetSSEHeaders(c)
		sse := datastar.NewSSE(c.Response().Writer, c.Request())

		if err := sse.PatchElementTempl(templates.FilterChips(filters, sel), datastar.WithSelectorID(templates.GalleryFiltersID)); err != nil {
			slog.Error("failed to patch gallery filters", "error", err)
			return err
		}
		if err := sse.PatchElementTempl(templates.GalleryGrid(catalog.Gallery(sel)), datastar.WithSelectorID(templates.GalleryGridID)); err != nil {
			slog.Error("failed to patch gallery grid", "error", err)
			return err
		}

		// Echo the applied filter so unknown ids snap back to "all".
		applied, _ := json.Marshal(map[string]string{"filter": sel.FilterID})
		_ = sse.PatchSignals(applied)

		slog.Debug("gallery selection", "requested", signals.Filter, "applied", sel.FilterID, "kind", sel.Kind.String())
		return nil
	}
}
