package content

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"neeleshreddy.com/portfolio/cmd/web/handlers/common"
	"neeleshreddy.com/portfolio/cmd/web/templates"
	"neeleshreddy.com/portfolio/internal/portfolio"
)

func HandleHomePage(catalog *portfolio.Catalog) echo.HandlerFunc {
	return func(c echo.Context) error {
		body := templates.HomePage(catalog.Site(), catalog.Personal(), catalog.FeaturedProjects())
		return common.RenderPage(c, http.StatusOK, "", body)
	}
}

func HandleAboutPage(catalog *portfolio.Catalog) echo.HandlerFunc {
	return func(c echo.Context) error {
		body := templates.AboutPage(catalog.Personal(), catalog.Skills(), catalog.Experience(), catalog.Education())
		return common.RenderPage(c, http.StatusOK, "About", body)
	}
}
