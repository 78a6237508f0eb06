// Package raster draws rendered trees onto an in-memory RGBA image.
package raster

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"strconv"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	ui "github.com/grindlemire/go-ui"
)

// Canvas is a ui.Surface backed by an *image.RGBA.
type Canvas struct {
	img  *image.RGBA
	face font.Face

	// Icons maps sprite ids to images. Sprites without an entry draw as a
	// solid placeholder square.
	Icons map[uint32]image.Image
}

var _ ui.Surface = (*Canvas)(nil)

// New creates a transparent canvas of the given size.
func New(width, height int) *Canvas {
	return &Canvas{
		img:  image.NewRGBA(image.Rect(0, 0, max(width, 0), max(height, 0))),
		face: basicfont.Face7x13,
	}
}

// Image returns the backing image.
func (c *Canvas) Image() *image.RGBA { return c.img }

// EncodePNG writes the canvas as a PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}

// FillRect blends a solid rectangle over the canvas.
func (c *Canvas) FillRect(r ui.Rect, col ui.Color) {
	draw.Draw(c.img, pixelRect(r), image.NewUniform(nrgba(col)), image.Point{}, draw.Over)
}

// DrawText draws text with its top-left corner at p. Scales other than 1
// enlarge the fixed-size glyphs with nearest-neighbour sampling.
func (c *Canvas) DrawText(p ui.Point, text []byte, col ui.Color, scale float32) {
	if len(text) == 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}

	w, h := c.measure(text)
	glyphs := image.NewRGBA(image.Rect(0, 0, w, h))
	d := font.Drawer{
		Dst:  glyphs,
		Src:  image.NewUniform(nrgba(col)),
		Face: c.face,
		Dot:  fixed.P(0, c.face.Metrics().Ascent.Ceil()),
	}
	d.DrawBytes(text)

	x, y := round(p.X), round(p.Y)
	if scale == 1 {
		draw.Draw(c.img, glyphs.Bounds().Add(image.Pt(x, y)), glyphs, image.Point{}, draw.Over)
		return
	}
	dr := image.Rect(x, y, x+round(float32(w)*scale), y+round(float32(h)*scale))
	draw.NearestNeighbor.Scale(c.img, dr, glyphs, glyphs.Bounds(), draw.Over, nil)
}

// DrawNumber draws n in decimal.
func (c *Canvas) DrawNumber(p ui.Point, n uint64, col ui.Color, scale float32) {
	c.DrawText(p, strconv.AppendUint(nil, n, 10), col, scale)
}

// DrawIcon draws a size×size sprite with its top-left corner at p.
func (c *Canvas) DrawIcon(p ui.Point, size float32, sprite uint32) {
	dr := pixelRect(ui.NewRect(p.X, p.Y, size, size))
	if src, ok := c.Icons[sprite]; ok {
		draw.ApproxBiLinear.Scale(c.img, dr, src, src.Bounds(), draw.Over, nil)
		return
	}
	draw.Draw(c.img, dr, image.NewUniform(placeholder(sprite)), image.Point{}, draw.Over)
}

// FillProgress fills the leading fraction of r.
func (c *Canvas) FillProgress(r ui.Rect, fraction float32, col ui.Color) {
	fraction = min(max(fraction, 0), 1)
	c.FillRect(ui.NewRect(r.X, r.Y, r.Width*fraction, r.Height), col)
}

// MeasureText returns the pixel size of text at the given scale.
func (c *Canvas) MeasureText(text []byte, scale float32) (width, height float32) {
	w, h := c.measure(text)
	return float32(w) * scale, float32(h) * scale
}

func (c *Canvas) measure(text []byte) (int, int) {
	w := font.MeasureBytes(c.face, text).Ceil()
	return w, c.face.Metrics().Height.Ceil()
}

// pixelRect snaps r to whole pixels.
func pixelRect(r ui.Rect) image.Rectangle {
	return image.Rect(round(r.X), round(r.Y), round(r.Right()), round(r.Bottom()))
}

func round(v float32) int {
	return int(math.Round(float64(v)))
}

func nrgba(c ui.Color) color.NRGBA {
	r, g, b, a := c.Bytes()
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

// placeholder picks a stable, opaque color for a sprite id.
func placeholder(sprite uint32) color.NRGBA {
	h := sprite * 2654435761
	return color.NRGBA{R: uint8(h >> 24), G: uint8(h >> 16), B: uint8(h >> 8), A: 0xff}
}
