// Package templates holds the site's templ components. They are written
// against the templ runtime directly so the package builds without the templ
// code generator: attributes go through templ.RenderAttributes and class
// lists through templ.Classes, as generated components do.
package templates

import (
	"context"
	"encoding/json"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// htmlWriter writes markup and remembers the first error, so components can
// emit a run of fragments and check once at the end.
type htmlWriter struct {
	ctx context.Context
	w   io.Writer
	err error
}

func newHTMLWriter(ctx context.Context, w io.Writer) *htmlWriter {
	return &htmlWriter{ctx: ctx, w: w}
}

// raw writes trusted markup as-is.
func (h *htmlWriter) raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

// text writes escaped character data.
func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

func (h *htmlWriter) number(n int) {
	h.raw(strconv.Itoa(n))
}

// start writes a start tag. templ escapes string values, writes true
// booleans as bare attributes and drops false ones.
func (h *htmlWriter) start(tag string, attrs templ.Attributes) {
	h.raw("<" + tag)
	if h.err == nil && len(attrs) > 0 {
		h.err = templ.RenderAttributes(h.ctx, h.w, attrs)
	}
	h.raw(">")
}

func (h *htmlWriter) end(tag string) {
	h.raw("</" + tag + ">")
}

// open writes a start tag with only a class attribute, omitted when empty.
func (h *htmlWriter) open(tag, class string) {
	h.start(tag, classAttr(class))
}

// element writes <tag class="...">text</tag>.
func (h *htmlWriter) element(tag, class, text string) {
	h.open(tag, class)
	h.text(text)
	h.end(tag)
}

// link writes an anchor with escaped text.
func (h *htmlWriter) link(attrs templ.Attributes, text string) {
	h.start("a", attrs)
	h.text(text)
	h.end("a")
}

// component renders a nested component into the same stream.
func (h *htmlWriter) component(c templ.Component) {
	if h.err != nil || c == nil {
		return
	}
	h.err = c.Render(h.ctx, h.w)
}

func classAttr(class string) templ.Attributes {
	if class == "" {
		return nil
	}
	return templ.Attributes{"class": class}
}

// safeURL passes u through templ's URL sanitizer, which replaces unsafe
// schemes with a placeholder.
func safeURL(u string) string {
	return string(templ.URL(u))
}

// jsString encodes s as a quoted JavaScript string literal.
func jsString(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

// component adapts a render function to templ.Component.
func component(render func(h *htmlWriter)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(ctx, w)
		render(h)
		return h.err
	})
}
