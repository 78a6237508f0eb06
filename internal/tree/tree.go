package tree

import (
	"errors"
	"fmt"
)

// NodeID identifies a node within one tree's arena.
type NodeID uint32

// Errors returned when a tree would be left in an invalid shape.
var (
	ErrNodeNotFound       = errors.New("node not found")
	ErrAlreadyAttached    = errors.New("node already has a parent")
	ErrCycle              = errors.New("link would create a cycle")
	ErrDuplicateElementID = errors.New("duplicate element id")
)

// Node is one element of the UI. Children are referenced by id, in paint order.
type Node struct {
	ID        NodeID
	Kind      Kind
	ElementID string
	Attrs     map[string]Value
	Children  []NodeID

	attached bool // linked under some parent; never a pointer back to it
}

// Attr returns the attribute named key.
func (n *Node) Attr(key string) (Value, bool) {
	v, ok := n.Attrs[key]
	return v, ok
}

// Tree is an arena that exclusively owns every node. Ids index the arena
// directly; nodes are never removed so ids are never reused.
type Tree struct {
	nodes      []*Node
	elementIDs map[string]NodeID
}

// New creates a tree containing only its root container.
func New() *Tree {
	t := &Tree{elementIDs: make(map[string]NodeID)}
	t.CreateNode(KindContainer)
	return t
}

// Root returns the id of the root node.
func (t *Tree) Root() NodeID {
	return 0
}

// Len returns the number of nodes in the arena, including the root.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// CreateNode allocates a detached node of the given kind and returns its id.
func (t *Tree) CreateNode(kind Kind) NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, &Node{
		ID:    id,
		Kind:  kind,
		Attrs: make(map[string]Value),
	})
	return id
}

// Get returns the node with the given id, or nil if there is none.
// Callers treat nil as "this subtree is gone".
func (t *Tree) Get(id NodeID) *Node {
	if int(id) >= len(t.nodes) {
		return nil
	}
	return t.nodes[id]
}

// AddChild appends child to parent's children. A node can be attached once,
// the root can never be attached, and a link that would close a loop is rejected.
func (t *Tree) AddChild(parent, child NodeID) error {
	p := t.Get(parent)
	if p == nil {
		return fmt.Errorf("parent %d: %w", parent, ErrNodeNotFound)
	}
	c := t.Get(child)
	if c == nil {
		return fmt.Errorf("child %d: %w", child, ErrNodeNotFound)
	}
	if child == t.Root() || c.attached {
		return fmt.Errorf("child %d: %w", child, ErrAlreadyAttached)
	}
	if t.contains(child, parent) {
		return fmt.Errorf("adding %d under %d: %w", child, parent, ErrCycle)
	}
	p.Children = append(p.Children, child)
	c.attached = true
	return nil
}

// contains reports whether target is in the subtree rooted at id.
func (t *Tree) contains(id, target NodeID) bool {
	found := false
	t.Traverse(id, func(n *Node) {
		if n.ID == target {
			found = true
		}
	})
	return found
}

// SetElementID names a node. Names are unique across the whole tree.
func (t *Tree) SetElementID(id NodeID, name string) error {
	n := t.Get(id)
	if n == nil {
		return fmt.Errorf("node %d: %w", id, ErrNodeNotFound)
	}
	if owner, ok := t.elementIDs[name]; ok && owner != id {
		return fmt.Errorf("%q: %w", name, ErrDuplicateElementID)
	}
	if n.ElementID != "" {
		delete(t.elementIDs, n.ElementID)
	}
	n.ElementID = name
	t.elementIDs[name] = id
	return nil
}

// SetAttr sets an attribute on a node, replacing any previous value for key.
func (t *Tree) SetAttr(id NodeID, key string, v Value) error {
	n := t.Get(id)
	if n == nil {
		return fmt.Errorf("node %d: %w", id, ErrNodeNotFound)
	}
	n.Attrs[key] = v
	return nil
}

// FindByElementID returns the node carrying the given element id.
func (t *Tree) FindByElementID(name string) (NodeID, bool) {
	id, ok := t.elementIDs[name]
	return id, ok
}

// Traverse walks the subtree rooted at id in pre-order, calling fn once per node.
// Child ids that do not resolve are skipped along with their subtrees.
func (t *Tree) Traverse(id NodeID, fn func(*Node)) {
	n := t.Get(id)
	if n == nil {
		return
	}
	fn(n)
	for _, child := range n.Children {
		t.Traverse(child, fn)
	}
}

// Equal reports whether a and b have the same shape: node for node, the same
// kinds, element ids, attributes, and child order, starting from their roots.
func Equal(a, b *Tree) bool {
	if a == nil || b == nil {
		return a == b
	}
	return equalSubtree(a, a.Root(), b, b.Root())
}

func equalSubtree(a *Tree, ida NodeID, b *Tree, idb NodeID) bool {
	na, nb := a.Get(ida), b.Get(idb)
	if na == nil || nb == nil {
		return na == nb
	}
	if na.Kind != nb.Kind || na.ElementID != nb.ElementID {
		return false
	}
	if len(na.Attrs) != len(nb.Attrs) || len(na.Children) != len(nb.Children) {
		return false
	}
	for k, va := range na.Attrs {
		vb, ok := nb.Attrs[k]
		if !ok || !va.Equal(vb) {
			return false
		}
	}
	for i := range na.Children {
		if !equalSubtree(a, na.Children[i], b, nb.Children[i]) {
			return false
		}
	}
	return true
}
