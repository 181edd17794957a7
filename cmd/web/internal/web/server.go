package web

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"neeleshreddy.com/portfolio/cmd/web/ctxkeys"
	"neeleshreddy.com/portfolio/cmd/web/handlers/api/gallery_api"
	"neeleshreddy.com/portfolio/cmd/web/handlers/api/video_api"
	"neeleshreddy.com/portfolio/cmd/web/handlers/common"
	"neeleshreddy.com/portfolio/cmd/web/handlers/content"
	staticpkg "neeleshreddy.com/portfolio/cmd/web/internal/web/utils/static"
	"neeleshreddy.com/portfolio/internal/portfolio"
)

type Webserver struct {
	*echo.Echo
	catalog     *portfolio.Catalog
	staticCache *staticpkg.StaticCache
	siteURL     string
}

// NewWebserver serves catalog. siteURL is the public origin allowed to call
// the JSON API cross-origin; empty allows any origin.
func NewWebserver(catalog *portfolio.Catalog, siteURL string) (*Webserver, error) {
	e := echo.New()

	// Initialize static cache
	staticCache, err := staticpkg.NewStaticCache()
	if err != nil {
		return nil, err
	}

	webserver := &Webserver{
		Echo:        e,
		catalog:     catalog,
		staticCache: staticCache,
		siteURL:     strings.TrimSuffix(siteURL, "/"),
	}

	if err = webserver.setupMiddleware(); err != nil {
		return nil, err
	}

	if err = webserver.registerRoutes(); err != nil {
		return nil, err
	}

	return webserver, nil
}

func (s *Webserver) setupMiddleware() error {
	s.HideBanner = true
	s.HidePort = true
	s.HTTPErrorHandler = s.handleError
	s.Use(middleware.BodyLimit("64K"))
	s.Use(middleware.Recover())
	s.Use(middleware.RequestID())
	s.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Level: 5,
		Skipper: func(c echo.Context) bool {
			// SSE responses must reach the browser unbuffered.
			return c.Path() == "/api/gallery/select"
		},
	}))
	s.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/healthz"
		},
		LogURI:       true,
		LogMethod:    true,
		LogStatus:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  false,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"remote_ip", v.RemoteIP,
				"request_id", v.RequestID,
			}
			if v.Error != nil {
				fields = append(fields, "error", v.Error)
			}
			slog.Info("request", fields...)
			return nil
		},
	}))

	// Make the request path and site title available to templates.
	siteTitle := s.catalog.Site().Title
	s.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := context.WithValue(c.Request().Context(), ctxkeys.CurrentPath, c.Request().URL.Path)
			ctx = context.WithValue(ctx, ctxkeys.SiteTitle, siteTitle)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	})

	return nil
}

// handleError renders the HTML 404 page for page routes and defers to echo's
// JSON errors everywhere else.
func (s *Webserver) handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	var he *echo.HTTPError
	path := c.Request().URL.Path
	if errors.As(err, &he) && he.Code == http.StatusNotFound &&
		!strings.HasPrefix(path, "/api/") && !strings.HasPrefix(path, "/static/") {
		if rerr := common.RenderNotFound(c, "That page does not exist."); rerr != nil {
			slog.Error("failed to render not found page", "error", rerr)
		}
		return
	}
	s.DefaultHTTPErrorHandler(err, c)
}

func (s *Webserver) registerRoutes() error {
	allowOrigin := "*"
	if s.siteURL != "" {
		allowOrigin = s.siteURL
	}

	apiGroup := s.Group("/api")
	apiGroup.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{allowOrigin},
		AllowMethods: []string{http.MethodGet},
		Skipper: func(c echo.Context) bool {
			return c.Request().Method != http.MethodGet && c.Request().Method != http.MethodOptions
		},
	}))
	apiGroup.GET("/gallery/filters", gallery_api.HandleFilters(s.catalog))
	apiGroup.GET("/gallery/items", gallery_api.HandleItems(s.catalog))
	apiGroup.POST("/gallery/select", gallery_api.HandleSelect(s.catalog))
	apiGroup.GET("/videos/resolve", video_api.HandleResolve())

	// Health check
	s.GET("/healthz", func(c echo.Context) error {
		return c.String(200, "ok")
	})

	// Static file serving
	s.GET("/static/*", s.staticCache.ServeStaticFile("/static/"))

	// Content routes
	s.GET("/work", content.HandleWorkPage(s.catalog))
	s.GET("/projects", content.HandleProjectsPage(s.catalog))
	s.GET("/projects/:id", content.HandleProjectPage(s.catalog))
	s.GET("/about", content.HandleAboutPage(s.catalog))
	s.GET("/", content.HandleHomePage(s.catalog))

	return nil
}
