package layout

// Edges represents values for four sides of a box.
type Edges struct {
	Top, Right, Bottom, Left float32
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n float32) Edges {
	return Edges{Top: n, Right: n, Bottom: n, Left: n}
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l float32) Edges {
	return Edges{Top: t, Right: r, Bottom: b, Left: l}
}

// Horizontal returns the sum of Left and Right.
func (e Edges) Horizontal() float32 {
	return e.Left + e.Right
}

// Vertical returns the sum of Top and Bottom.
func (e Edges) Vertical() float32 {
	return e.Top + e.Bottom
}
