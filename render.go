package ui

import "math"

// Point is a position in surface pixels.
type Point struct {
	X, Y float32
}

// Surface is the drawing backend a host provides to the Renderer.
// Text is passed as raw bytes; glyph shaping belongs to the surface.
type Surface interface {
	FillRect(r Rect, c Color)
	DrawText(p Point, text []byte, c Color, scale float32)
	DrawNumber(p Point, n uint64, c Color, scale float32)
	DrawIcon(p Point, size float32, sprite uint32)
	FillProgress(r Rect, fraction float32, c Color)
}

// Renderer draws a laid-out tree onto a Surface.
type Renderer struct {
	theme *Theme
}

// NewRenderer creates a Renderer. A nil theme uses DefaultTheme.
func NewRenderer(theme *Theme) *Renderer {
	if theme == nil {
		theme = DefaultTheme()
	}
	return &Renderer{theme: theme}
}

// Render draws every visible node of t in pre-order, so children paint over
// their parents. Nodes without a visible layout entry are skipped along with
// their subtrees, as are Conditional subtrees whose condition is false in
// ctx. ctx may be nil.
func (r *Renderer) Render(t *Tree, l *LayoutEngine, ctx *Context, s Surface) {
	if t == nil || l == nil || s == nil {
		return
	}
	res := styleResolver{theme: r.theme, ctx: ctx}
	hidden := make(map[NodeID]bool)

	t.Traverse(t.Root(), func(n *Node) {
		box, ok := l.Get(n.ID)
		if hidden[n.ID] || !ok || !box.Visible || !res.visible(n) {
			for _, c := range n.Children {
				hidden[c] = true
			}
			return
		}
		r.draw(res, n, box, s)
	})
}

// draw emits the primitives for one node.
func (r *Renderer) draw(res styleResolver, n *Node, box LayoutNode, s Surface) {
	origin := Point{X: box.ContentRect.X, Y: box.ContentRect.Y}

	switch n.Kind {
	case KindContainer, KindHBox, KindVBox, KindConditional:
		if bg := res.color(n, "background", Color{}); bg.A > 0 {
			s.FillRect(box.Rect, bg)
		}

	case KindPanel:
		if bg := res.color(n, "background", r.theme.PanelBackground); bg.A > 0 {
			s.FillRect(box.Rect, bg)
		}

	case KindButton:
		s.FillRect(box.Rect, res.color(n, "background", r.theme.ButtonBackground))
		label := res.text(n, "text")
		if label == "" {
			label = res.text(n, "label")
		}
		if label != "" {
			p := Point{X: origin.X + r.theme.ButtonPadding, Y: origin.Y + r.theme.ButtonPadding}
			s.DrawText(p, []byte(label), res.color(n, "color", r.theme.ButtonText), res.scale(n, r.theme.TextScale))
		}

	case KindText:
		if bg := res.color(n, "background", Color{}); bg.A > 0 {
			s.FillRect(box.Rect, bg)
		}
		s.DrawText(origin, []byte(res.text(n, "text")), res.color(n, "color", r.theme.Text), res.scale(n, r.theme.TextScale))

	case KindNumber:
		var value uint64
		if v, ok := n.Attr("value"); ok {
			if f, ok := res.number(v); ok {
				value = toUint(f)
			}
		}
		s.DrawNumber(origin, value, res.color(n, "color", r.theme.Text), res.scale(n, r.theme.TextScale))

	case KindIcon:
		var sprite uint32
		if v, ok := n.Attr("sprite"); ok {
			if f, ok := res.number(v); ok {
				sprite = uint32(min(toUint(f), math.MaxUint32))
			}
		}
		size := r.theme.IconSize
		if v, ok := n.Attr("size"); ok {
			if f, ok := res.number(v); ok && f > 0 {
				size = float32(f)
			}
		}
		s.DrawIcon(origin, size, sprite)

	case KindProgressBar:
		if track := res.color(n, "background", r.theme.ProgressTrack); track.A > 0 {
			s.FillRect(box.Rect, track)
		}
		s.FillProgress(box.ContentRect, r.fraction(res, n), res.color(n, "color", r.theme.ProgressFill))

	default:
		// Kinds outside the known set draw nothing.
	}
}

// fraction computes value/max for a progress bar, clamped to [0, 1]. max
// defaults to 1.
func (r *Renderer) fraction(res styleResolver, n *Node) float32 {
	var value, maxValue float64 = 0, 1
	if v, ok := n.Attr("value"); ok {
		if f, ok := res.number(v); ok {
			value = f
		}
	}
	if v, ok := n.Attr("max"); ok {
		if f, ok := res.number(v); ok && f > 0 {
			maxValue = f
		}
	}
	frac := value / maxValue
	if math.IsNaN(frac) {
		return 0
	}
	return float32(min(max(frac, 0), 1))
}

// toUint truncates f to an unsigned integer; negatives and NaN become 0.
func toUint(f float64) uint64 {
	if !(f > 0) {
		return 0
	}
	if f >= math.MaxUint64 {
		return math.MaxUint64
	}
	return uint64(f)
}
