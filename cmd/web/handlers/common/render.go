package common

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"neeleshreddy.com/portfolio/cmd/web/templates"
)

// RenderPage renders body inside the site layout with the given status.
func RenderPage(c echo.Context, status int, title string, body templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(status)
	return templates.Layout(title, body).Render(c.Request().Context(), c.Response())
}

// RenderNotFound renders the 404 page.
func RenderNotFound(c echo.Context, message string) error {
	return RenderPage(c, http.StatusNotFound, "Not found", templates.NotFound(message))
}
