// layout_types.go re-exports geometry types from internal/layout.
package ui

import "github.com/grindlemire/go-ui/internal/layout"

// Rect is an axis-aligned rectangle in surface pixels.
type Rect = layout.Rect

// Edges represents spacing on four sides (top, right, bottom, left).
type Edges = layout.Edges

// NewRect creates a Rect.
func NewRect(x, y, width, height float32) Rect { return layout.NewRect(x, y, width, height) }
