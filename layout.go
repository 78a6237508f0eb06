package ui

import "github.com/grindlemire/go-ui/internal/layout"

// LayoutNode is the computed geometry of one node.
type LayoutNode struct {
	// Rect is the border box, used for hit testing and backgrounds.
	Rect Rect
	// ContentRect is Rect minus padding.
	ContentRect Rect
	// Visible is false for hidden nodes; their rects are zero.
	Visible bool
}

// LayoutEngine computes node rectangles for a tree and answers hit tests.
// Results are replaced wholesale by each ComputeLayout call.
type LayoutEngine struct {
	theme *Theme
	ctx   *Context
	nodes map[NodeID]LayoutNode
}

// LayoutOption configures a LayoutEngine.
type LayoutOption func(*LayoutEngine)

// WithTheme sets the theme used to resolve named spacing values.
func WithTheme(t *Theme) LayoutOption {
	return func(e *LayoutEngine) { e.theme = t }
}

// WithContext attaches a context so bound visibility and Conditional nodes
// are evaluated during layout.
func WithContext(ctx *Context) LayoutOption {
	return func(e *LayoutEngine) { e.ctx = ctx }
}

// NewLayoutEngine creates a layout engine.
func NewLayoutEngine(opts ...LayoutOption) *LayoutEngine {
	e := &LayoutEngine{
		theme: DefaultTheme(),
		nodes: make(map[NodeID]LayoutNode),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// SetContext replaces the attached context. nil detaches it.
func (e *LayoutEngine) SetContext(ctx *Context) { e.ctx = ctx }

// ComputeLayout lays out t in a viewport of the given size. The root fills
// the viewport.
func (e *LayoutEngine) ComputeLayout(t *Tree, width, height float32) {
	clear(e.nodes)
	if t == nil {
		return
	}
	root := t.Get(t.Root())
	if root == nil {
		return
	}
	layout.Calculate(e.adapt(t, root), width, height)
}

// Get returns the layout of id, if the last pass produced one.
func (e *LayoutEngine) Get(id NodeID) (LayoutNode, bool) {
	n, ok := e.nodes[id]
	return n, ok
}

// Len returns the number of layout entries.
func (e *LayoutEngine) Len() int { return len(e.nodes) }

// HitTest returns the visible node under (x, y). When several overlap, the
// one with the largest NodeID wins; ids grow in source order, so later
// declared nodes usually sit on top, but this is not a paint-order guarantee
// for nested or absolutely positioned nodes.
func (e *LayoutEngine) HitTest(x, y float32) (NodeID, bool) {
	var best NodeID
	found := false
	for id, n := range e.nodes {
		if !n.Visible || !n.Rect.Contains(x, y) {
			continue
		}
		if !found || id > best {
			best, found = id, true
		}
	}
	return best, found
}

func (e *LayoutEngine) adapt(t *Tree, n *Node) layoutAdapter {
	return layoutAdapter{engine: e, tree: t, node: n}
}

// layoutAdapter presents a tree node to the layout solver.
type layoutAdapter struct {
	engine *LayoutEngine
	tree   *Tree
	node   *Node
}

func (a layoutAdapter) LayoutStyle() layout.Style {
	return styleResolver{theme: a.engine.theme, ctx: a.engine.ctx}.layoutStyle(a.node)
}

func (a layoutAdapter) LayoutChildren() []layout.Layoutable {
	children := make([]layout.Layoutable, 0, len(a.node.Children))
	for _, id := range a.node.Children {
		if child := a.tree.Get(id); child != nil {
			children = append(children, a.engine.adapt(a.tree, child))
		}
	}
	return children
}

func (a layoutAdapter) SetLayout(l layout.Layout) {
	a.engine.nodes[a.node.ID] = LayoutNode{
		Rect:        l.Rect,
		ContentRect: l.ContentRect,
		Visible:     l.Visible,
	}
}
