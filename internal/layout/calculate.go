package layout

// Calculate performs layout calculation on the tree rooted at root.
// Every visible node reached from the root receives a SetLayout call. A hidden
// node receives a zero, invisible Layout and its children receive none.
//
// viewportWidth and viewportHeight specify the root constraint.
func Calculate(root Layoutable, viewportWidth, viewportHeight float32) {
	if root == nil {
		return
	}
	viewport := NewRect(0, 0, viewportWidth, viewportHeight)
	calculateNode(root, viewport, viewport, viewport)
}

// calculateNode computes the layout for a single node.
// slot is the space the parent's container algorithm offers this node; parent
// is the parent's border box and parentContent its padded content rect.
func calculateNode(node Layoutable, slot, parent, parentContent Rect) {
	style := node.LayoutStyle()

	if !style.Visible {
		node.SetLayout(Layout{})
		return
	}

	// Absolutely positioned nodes ignore the flow slot entirely.
	x, y := slot.X, slot.Y
	if style.Position != Relative {
		x = parent.X + style.X
		y = parent.Y + style.Y
		slot = parentContent
	}

	width := style.Width.Resolve(parentContent.Width, slot.Width)
	width = clamp(width,
		style.MinWidth.Resolve(parentContent.Width, 0),
		resolveMax(style.MaxWidth, parentContent.Width))

	height := style.Height.Resolve(parentContent.Height, slot.Height)
	height = clamp(height,
		style.MinHeight.Resolve(parentContent.Height, 0),
		resolveMax(style.MaxHeight, parentContent.Height))

	borderBox := NewRect(x, y, width, height)
	contentRect := borderBox.Inset(style.Padding)

	node.SetLayout(Layout{
		Rect:        borderBox,
		ContentRect: contentRect,
		Visible:     true,
	})

	children := node.LayoutChildren()
	if len(children) == 0 {
		return
	}

	switch style.Container {
	case HBox:
		layoutHBox(children, borderBox, contentRect, style.Gap)
	case VBox:
		layoutVBox(children, borderBox, contentRect, style.Gap)
	default:
		layoutStacked(children, borderBox, contentRect)
	}
}

// layoutStacked gives every child the full content rect. Later children
// paint over earlier ones.
func layoutStacked(children []Layoutable, borderBox, content Rect) {
	for _, child := range children {
		calculateNode(child, content, borderBox, content)
	}
}

// layoutHBox splits the content width evenly after removing the gaps.
func layoutHBox(children []Layoutable, borderBox, content Rect, gap float32) {
	share := evenShare(content.Width, gap, len(children))
	for i, child := range children {
		slot := Rect{
			X:      content.X + float32(i)*(share+gap),
			Y:      content.Y,
			Width:  share,
			Height: content.Height,
		}
		calculateNode(child, slot, borderBox, content)
	}
}

// layoutVBox splits the content height evenly after removing the gaps.
func layoutVBox(children []Layoutable, borderBox, content Rect, gap float32) {
	share := evenShare(content.Height, gap, len(children))
	for i, child := range children {
		slot := Rect{
			X:      content.X,
			Y:      content.Y + float32(i)*(share+gap),
			Width:  content.Width,
			Height: share,
		}
		calculateNode(child, slot, borderBox, content)
	}
}

// evenShare returns each child's main-axis extent.
func evenShare(extent, gap float32, n int) float32 {
	avail := extent - float32(n-1)*gap
	if avail <= 0 {
		return 0
	}
	return avail / float32(n)
}

// resolveMax resolves a maximum constraint; Auto means no maximum.
func resolveMax(v Value, parent float32) float32 {
	if v.IsAuto() {
		return unbounded
	}
	return v.Resolve(parent, unbounded)
}

// clamp restricts v to the range [minVal, maxVal].
// If minVal > maxVal, minVal wins (matches CSS behavior).
func clamp(v, minVal, maxVal float32) float32 {
	v = min(v, maxVal)
	v = max(v, minVal)
	return max(v, 0)
}
