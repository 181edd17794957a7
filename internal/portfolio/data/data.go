// Package data embeds the default site content.
package data

import "embed"

// DefaultFile is the path of the default content document inside FS.
const DefaultFile = "portfolio.yaml"

//go:embed portfolio.yaml
var FS embed.FS
