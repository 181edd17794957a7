package viewtypes

import "github.com/a-h/templ"

// ============================================================================
// SHARED CSS CLASS CONSTANTS
// Class strings from static/dist/main.css used across multiple templates.
// ============================================================================

// FilterChip is a gallery or projects filter button.
var FilterChip = "filter"

// FilterChipSub marks a subcategory chip.
var FilterChipSub = "sub"

// FilterChipActive marks the chip of the current selection.
var FilterChipActive = "active"

// Grid is the responsive card grid.
var Grid = "grid"

// Card wraps a single gallery item or project.
var Card = "card"

// Media is the 16:9 box holding a thumbnail or player.
var Media = "media"

// Player is a full-width embedded player.
var Player = "player"

// ToolList is the inline list of tools on project cards and pages.
var ToolList = "tools"

// Empty styles "nothing to show" placeholders.
var Empty = "empty"

// ChipClass returns the chip class for a filter, marking it active when
// selected.
func ChipClass(subcategory, active bool) string {
	return templ.Classes(
		FilterChip,
		templ.KV(FilterChipSub, subcategory),
		templ.KV(FilterChipActive, active),
	).String()
}
