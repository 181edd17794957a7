// package video_api resolves video links into embeddable players.
package video_api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"neeleshreddy.com/portfolio/cmd/web/handlers/common"
	"neeleshreddy.com/portfolio/internal/videoid"
)

// ResolveResponse describes how a video link is embedded.
type ResolveResponse struct {
	URL          string           `json:"url"`
	Platform     videoid.Platform `json:"platform"`
	EmbedURL     string           `json:"embed_url"`
	PreviewURL   string           `json:"preview_url"`
	ThumbnailURL string           `json:"thumbnail_url"`
	Key          string           `json:"key"`
	UUID         string           `json:"uuid"`
}

// Resolve derives the embed, preview and thumbnail URLs for raw. It never
// fails; unrecognised links pass through unchanged.
func Resolve(raw string) ResolveResponse {
	return ResolveResponse{
		URL:          raw,
		Platform:     videoid.DetectPlatform(raw),
		EmbedURL:     videoid.EmbedURL(raw),
		PreviewURL:   videoid.PreviewEmbedURL(raw),
		ThumbnailURL: videoid.ThumbnailURL(raw),
		Key:          videoid.VideoKey(raw),
		UUID:         videoid.UUIDForURL(raw).String(),
	}
}

// HandleResolve answers GET /api/videos/resolve?url=.
func HandleResolve() echo.HandlerFunc {
	return func(c echo.Context) error {
		raw, err := common.RequireQueryParam(c, "url")
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, Resolve(raw))
	}
}
