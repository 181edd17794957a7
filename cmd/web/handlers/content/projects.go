package content

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"neeleshreddy.com/portfolio/cmd/web/handlers/common"
	"neeleshreddy.com/portfolio/cmd/web/templates"
	"neeleshreddy.com/portfolio/internal/portfolio"
)

func HandleProjectsPage(catalog *portfolio.Catalog) echo.HandlerFunc {
	return func(c echo.Context) error {
		filters := catalog.ProjectFilters()
		active := common.FilterParam(c)
		if _, ok := portfolio.FindFilter(filters, active); !ok {
			active = portfolio.FilterAll
		}
		body := templates.ProjectsPage(filters, active, catalog.FilterProjects(active))
		return common.RenderPage(c, http.StatusOK, "Projects", body)
	}
}

func HandleProjectPage(catalog *portfolio.Catalog) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := c.Param("id")
		p, err := catalog.Project(id)
		if errors.Is(err, portfolio.ErrProjectNotFound) {
			return common.RenderNotFound(c, "No project named "+id+".")
		}
		if err != nil {
			return common.ErrInternal("failed to load project")
		}
		prev, next := catalog.AdjacentProjects(id)
		return common.RenderPage(c, http.StatusOK, p.Title, templates.ProjectDetail(p, prev, next))
	}
}
