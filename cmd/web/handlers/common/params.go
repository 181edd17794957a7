package common

import (
	"strings"

	"github.com/labstack/echo/v4"

	"neeleshreddy.com/portfolio/internal/portfolio"
)

// FilterParam returns the trimmed "filter" query parameter, defaulting to
// the "all" filter.
func FilterParam(c echo.Context) string {
	if f := strings.TrimSpace(c.QueryParam("filter")); f != "" {
		return f
	}
	return portfolio.FilterAll
}

// RequireQueryParam returns a non-blank query parameter or a 400 error.
func RequireQueryParam(c echo.Context, name string) (string, error) {
	v := strings.TrimSpace(c.QueryParam(name))
	if v == "" {
		return "", ErrBadRequest("missing " + name)
	}
	return v, nil
}
