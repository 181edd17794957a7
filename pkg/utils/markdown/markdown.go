package markdown

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/russross/blackfriday/v2"
	"gopkg.in/yaml.v3"
)

// Markdown wraps markdown source text from the content file and renders it
// to sanitized HTML on demand.
type Markdown struct {
	// Source is the markdown source code.
	Source string
	// renderedHTML caches the HTML rendered from Source.
	renderedHTML *template.HTML
	// renderedText caches the plain text rendered from Source.
	renderedText *template.HTML
}

var (
	bfRenderer = blackfriday.NewHTMLRenderer(blackfriday.HTMLRendererParameters{
		Flags: blackfriday.Safelink | blackfriday.NofollowLinks | blackfriday.HrefTargetBlank | blackfriday.Smartypants | blackfriday.SmartypantsDashes | blackfriday.SmartypantsQuotesNBSP,
	})
	bfExtensions = blackfriday.NoIntraEmphasis | blackfriday.Autolink | blackfriday.Strikethrough | blackfriday.SpaceHeadings | blackfriday.NoEmptyLineBeforeBlock
	policy       = bluemonday.UGCPolicy()
)

func NewMarkdown(source string) *Markdown {
	return &Markdown{Source: source}
}

// Render converts the Markdown Source into sanitized HTML.
func (m *Markdown) Render() template.HTML {
	if m == nil {
		return ""
	}
	if m.renderedHTML != nil {
		return *m.renderedHTML
	}

	unsafe := blackfriday.Run([]byte(m.Source),
		blackfriday.WithRenderer(bfRenderer),
		blackfriday.WithExtensions(bfExtensions),
	)
	html := template.HTML(bytes.TrimSpace(policy.SanitizeBytes(unsafe)))
	m.renderedHTML = &html
	return html
}

// PlainText renders the source and strips every tag, for contexts such as
// card blurbs where markup is not wanted.
func (m *Markdown) PlainText() template.HTML {
	if m == nil {
		return ""
	}
	if m.renderedText != nil {
		return *m.renderedText
	}

	unsafe := blackfriday.Run([]byte(m.Source),
		blackfriday.WithRenderer(bfRenderer),
		blackfriday.WithExtensions(bfExtensions),
	)
	h := template.HTML(bytes.TrimSpace(bluemonday.StrictPolicy().SanitizeBytes(unsafe)))
	m.renderedText = &h
	return h
}

// Clone returns an independent copy of m, keeping any rendered output.
func (m *Markdown) Clone() *Markdown {
	if m == nil {
		return nil
	}
	c := *m
	return &c
}

// IsZero reports whether there is no source text.
func (m *Markdown) IsZero() bool {
	return m == nil || m.Source == ""
}

func (m *Markdown) reset(source string) {
	m.Source = source
	m.renderedHTML = nil
	m.renderedText = nil
}

// UnmarshalYAML implements yaml.Unmarshaler so Markdown can be decoded from
// a scalar in the content file.
func (m *Markdown) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("Markdown.UnmarshalYAML: %w", err)
	}
	m.reset(s)
	return nil
}

// MarshalJSON encodes the source text, not the rendered HTML.
func (m Markdown) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Source)
}
