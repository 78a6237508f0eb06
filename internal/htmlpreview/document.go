// Package htmlpreview renders trees as a static HTML page of absolutely
// positioned boxes, for inspecting layouts in a browser.
package htmlpreview

import (
	"fmt"
	"io"
	"strconv"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	ui "github.com/grindlemire/go-ui"
)

// Document is a ui.Surface that collects draw calls as HTML nodes.
type Document struct {
	Title  string
	Width  float32
	Height float32

	nodes []g.Node
}

var _ ui.Surface = (*Document)(nil)

// New creates an empty document for a viewport of the given size.
func New(title string, width, height float32) *Document {
	return &Document{Title: title, Width: width, Height: height}
}

// Len returns the number of collected draw calls.
func (d *Document) Len() int { return len(d.nodes) }

// FillRect adds a solid rectangle.
func (d *Document) FillRect(r ui.Rect, c ui.Color) {
	d.nodes = append(d.nodes, h.Div(
		h.Class("fill"),
		h.Style(box(r)+"background:"+css(c)+";"),
	))
}

// DrawText adds a text span with its top-left corner at p. The font size
// is the 13px base scaled by scale.
func (d *Document) DrawText(p ui.Point, text []byte, c ui.Color, scale float32) {
	d.nodes = append(d.nodes, h.Span(
		h.Class("text"),
		h.Style(fmt.Sprintf("left:%spx;top:%spx;color:%s;font-size:%spx;",
			num(p.X), num(p.Y), css(c), num(13*scale))),
		g.Text(string(text)),
	))
}

// DrawNumber adds n in decimal.
func (d *Document) DrawNumber(p ui.Point, n uint64, c ui.Color, scale float32) {
	d.DrawText(p, strconv.AppendUint(nil, n, 10), c, scale)
}

// DrawIcon adds a size×size outlined box tagged with the sprite id.
func (d *Document) DrawIcon(p ui.Point, size float32, sprite uint32) {
	d.nodes = append(d.nodes, h.Div(
		h.Class("icon"),
		h.Data("sprite", strconv.FormatUint(uint64(sprite), 10)),
		h.Style(box(ui.NewRect(p.X, p.Y, size, size))),
	))
}

// FillProgress adds a box covering the leading fraction of r.
func (d *Document) FillProgress(r ui.Rect, fraction float32, c ui.Color) {
	fraction = min(max(fraction, 0), 1)
	d.nodes = append(d.nodes, h.Div(
		h.Class("progress"),
		h.Data("fraction", num(fraction)),
		h.Style(box(ui.NewRect(r.X, r.Y, r.Width*fraction, r.Height))+"background:"+css(c)+";"),
	))
}

const stylesheet = `body{margin:0;background:#111;}
.viewport{position:relative;overflow:hidden;font-family:monospace;}
.viewport>*{position:absolute;box-sizing:border-box;white-space:pre;}
.icon{outline:1px dashed #888;}`

// Node returns the full HTML document.
func (d *Document) Node() g.Node {
	return h.Doctype(
		h.HTML(
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.TitleEl(g.Text(d.Title)),
				h.StyleEl(g.Raw(stylesheet)),
			),
			h.Body(
				h.Div(
					h.Class("viewport"),
					h.Style(fmt.Sprintf("width:%spx;height:%spx;", num(d.Width), num(d.Height))),
					g.Group(d.nodes),
				),
			),
		),
	)
}

// Render writes the HTML document to w.
func (d *Document) Render(w io.Writer) error {
	return d.Node().Render(w)
}

func box(r ui.Rect) string {
	return fmt.Sprintf("left:%spx;top:%spx;width:%spx;height:%spx;",
		num(r.X), num(r.Y), num(r.Width), num(r.Height))
}

func num(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}

func css(c ui.Color) string {
	r8, g8, b8, a8 := c.Bytes()
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", r8, g8, b8, strconv.FormatFloat(float64(a8)/255, 'f', 3, 64))
}
