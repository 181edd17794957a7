// Package static embeds the site's stylesheets, scripts and fallback images.
package static

import "embed"

//go:embed dist images
var FS embed.FS
