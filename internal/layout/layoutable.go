package layout

// Layout holds the computed position and size after layout calculation.
type Layout struct {
	// Rect is the border box. Use for hit testing and bounds.
	Rect Rect

	// ContentRect is Rect minus padding, the area where children are placed.
	ContentRect Rect

	// Visible is false for nodes whose style hid them; their Rect is zero.
	Visible bool
}

// Layoutable is the interface for anything that can participate in layout calculation.
// The layout engine works entirely with this interface.
type Layoutable interface {
	// LayoutStyle returns the layout style properties for this node.
	LayoutStyle() Style

	// LayoutChildren returns the children to be laid out, in paint order.
	LayoutChildren() []Layoutable

	// SetLayout is called by the layout engine to store computed layout.
	SetLayout(Layout)
}
