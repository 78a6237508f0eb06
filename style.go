package ui

import (
	"strconv"
	"strings"

	"github.com/grindlemire/go-ui/internal/layout"
)

// styleResolver turns node attributes into layout styles and drawing values.
// It never fails: unresolvable attributes fall back to defaults.
type styleResolver struct {
	theme *Theme
	ctx   *Context
}

// layoutStyle builds the layout style for n.
func (r styleResolver) layoutStyle(n *Node) layout.Style {
	s := layout.DefaultStyle()
	s.Visible = r.visible(n)

	switch n.Kind {
	case KindHBox:
		s.Container = layout.HBox
	case KindVBox:
		s.Container = layout.VBox
	}

	s.Width = r.dimension(n, "width", layout.Auto())
	s.Height = r.dimension(n, "height", layout.Auto())
	s.MinWidth = r.dimension(n, "min_width", layout.Pixels(0))
	s.MinHeight = r.dimension(n, "min_height", layout.Pixels(0))
	s.MaxWidth = r.dimension(n, "max_width", layout.Auto())
	s.MaxHeight = r.dimension(n, "max_height", layout.Auto())

	if v, ok := n.Attr("position"); ok {
		if str, ok := v.AsString(); ok {
			switch strings.ToLower(str) {
			case "absolute":
				s.Position = layout.Absolute
			case "fixed":
				s.Position = layout.Fixed
			}
		}
	}
	s.X = r.length(n, "x", 0)
	s.Y = r.length(n, "y", 0)

	all := r.length(n, "padding", 0)
	s.Padding = layout.EdgeTRBL(
		r.length(n, "padding_top", all),
		r.length(n, "padding_right", all),
		r.length(n, "padding_bottom", all),
		r.length(n, "padding_left", all),
	)
	s.Gap = r.length(n, "gap", 0)
	return s
}

// visible reports whether n should take part in layout and drawing.
func (r styleResolver) visible(n *Node) bool {
	if v, ok := n.Attr("visible"); ok && !r.truthy(v, true) {
		return false
	}
	if n.Kind == KindConditional && r.ctx != nil {
		if v, ok := n.Attr("if"); ok {
			if expr, ok := v.AsString(); ok {
				return r.ctx.EvaluateCondition(expr)
			}
			return r.truthy(v, true)
		}
	}
	return true
}

// truthy coerces an attribute to a boolean. Bindings resolve through the
// context; without one they yield def.
func (r styleResolver) truthy(v Value, def bool) bool {
	switch v.Kind() {
	case ValueBool:
		b, _ := v.AsBool()
		return b
	case ValueNumber:
		n, _ := v.AsNumber()
		return n != 0
	case ValueString:
		s, _ := v.AsString()
		if b, err := strconv.ParseBool(s); err == nil {
			return b
		}
		return def
	case ValueBinding:
		if r.ctx == nil {
			return def
		}
		path, _ := v.BindingPath()
		cv, ok := r.ctx.Get(path)
		if !ok {
			return def
		}
		return cv.Truthy()
	}
	return def
}

// dimension resolves a size attribute: a number of pixels, "auto", "NN%",
// a theme spacing name or a numeric binding.
func (r styleResolver) dimension(n *Node, key string, def layout.Value) layout.Value {
	v, ok := n.Attr(key)
	if !ok {
		return def
	}
	if s, ok := v.AsString(); ok {
		s = strings.TrimSpace(s)
		switch {
		case strings.EqualFold(s, "auto"):
			return layout.Auto()
		case strings.HasSuffix(s, "%"):
			if p, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 32); err == nil {
				return layout.Percent(float32(p))
			}
			return def
		}
	}
	if px, ok := r.number(v); ok {
		return layout.Pixels(float32(px))
	}
	return def
}

// length resolves a pixel attribute, returning def when it cannot.
func (r styleResolver) length(n *Node, key string, def float32) float32 {
	v, ok := n.Attr(key)
	if !ok {
		return def
	}
	if px, ok := r.number(v); ok {
		return float32(px)
	}
	return def
}

// number resolves a numeric attribute: a number literal, a numeric string,
// a theme spacing name or a numeric binding.
func (r styleResolver) number(v Value) (float64, bool) {
	switch v.Kind() {
	case ValueNumber:
		return v.AsNumber()
	case ValueString:
		s, _ := v.AsString()
		if sp, ok := r.theme.Space(s); ok {
			return float64(sp), true
		}
		if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			return f, true
		}
	case ValueBinding:
		path, _ := v.BindingPath()
		if cv, ok := r.ctx.Get(path); ok {
			return cv.Number()
		}
	}
	return 0, false
}

// color resolves a color attribute: a color literal, a theme color name or
// hex string, or a binding holding either.
func (r styleResolver) color(n *Node, key string, def Color) Color {
	v, ok := n.Attr(key)
	if !ok {
		return def
	}
	switch v.Kind() {
	case ValueColor:
		c, _ := v.AsColor()
		return c
	case ValueString:
		s, _ := v.AsString()
		if c, ok := r.theme.Color(s); ok {
			return c
		}
	case ValueBinding:
		path, _ := v.BindingPath()
		if cv, ok := r.ctx.Get(path); ok {
			if s, ok := cv.Str(); ok {
				if c, ok := r.theme.Color(s); ok {
					return c
				}
			}
		}
	}
	return def
}

// scale resolves a text scale: a number or a theme text scale name.
func (r styleResolver) scale(n *Node, def float32) float32 {
	v, ok := n.Attr("scale")
	if !ok {
		return def
	}
	if s, ok := v.AsString(); ok {
		if sc, ok := r.theme.Scale(s); ok {
			return sc
		}
	}
	if f, ok := r.number(v); ok && f > 0 {
		return float32(f)
	}
	return def
}

// text resolves the display text of an attribute.
func (r styleResolver) text(n *Node, key string) string {
	v, ok := n.Attr(key)
	if !ok {
		return ""
	}
	switch v.Kind() {
	case ValueString:
		s, _ := v.AsString()
		return s
	case ValueBinding:
		path, _ := v.BindingPath()
		if r.ctx == nil {
			return "?" + path
		}
		return r.ctx.ResolveBinding(path)
	case ValueNumber:
		f, _ := v.AsNumber()
		return strconv.FormatFloat(f, 'f', -1, 64)
	case ValueBool:
		b, _ := v.AsBool()
		return strconv.FormatBool(b)
	case ValueColor:
		c, _ := v.AsColor()
		return c.Hex()
	}
	return ""
}
