// tree.go re-exports node tree types from internal/tree.
// Any changes to internal/tree types must be mirrored here.
package ui

import "github.com/grindlemire/go-ui/internal/tree"

// NodeID identifies a node inside a Tree. The root is always 0.
type NodeID = tree.NodeID

// Kind is the component kind of a node.
type Kind = tree.Kind

const (
	KindContainer   = tree.KindContainer
	KindPanel       = tree.KindPanel
	KindButton      = tree.KindButton
	KindText        = tree.KindText
	KindNumber      = tree.KindNumber
	KindIcon        = tree.KindIcon
	KindProgressBar = tree.KindProgressBar
	KindHBox        = tree.KindHBox
	KindVBox        = tree.KindVBox
	KindConditional = tree.KindConditional
)

// Node is one element of a Tree.
type Node = tree.Node

// Tree is an arena of nodes rooted at a container.
type Tree = tree.Tree

// Value is an attribute value.
type Value = tree.Value

// ValueKind identifies which member of a Value is set.
type ValueKind = tree.ValueKind

const (
	ValueString  = tree.ValueString
	ValueNumber  = tree.ValueNumber
	ValueBool    = tree.ValueBool
	ValueColor   = tree.ValueColor
	ValueBinding = tree.ValueBinding
)

// Color is an RGBA color with channels in [0, 1].
type Color = tree.Color

// NewTree returns a tree holding only the root container.
func NewTree() *Tree { return tree.New() }

// RGBA8 builds a Color from 8-bit channels.
func RGBA8(r, g, b, a uint8) Color { return tree.RGBA8(r, g, b, a) }

// ParseColor parses "#RRGGBB" or "#RRGGBBAA".
func ParseColor(s string) (Color, error) { return tree.ParseHex(s) }

// Equal reports whether two trees have the same shape, kinds, element ids
// and attributes.
func Equal(a, b *Tree) bool { return tree.Equal(a, b) }
