package layout

// Container selects how a node places its children.
type Container uint8

const (
	Stacked Container = iota // Every child gets the full content rect
	HBox                     // Even split of the width, left to right
	VBox                     // Even split of the height, top to bottom
)

// Position selects how a node's origin is found.
type Position uint8

const (
	Relative Position = iota // Placed by the parent's container algorithm
	Absolute                 // X/Y from the parent rect's origin
	Fixed                    // Same placement as Absolute
)

// Style contains all layout properties for a node.
type Style struct {
	Visible bool

	// Sizing
	Width     Value
	Height    Value
	MinWidth  Value
	MinHeight Value
	MaxWidth  Value
	MaxHeight Value

	// Placement
	Position Position
	X, Y     float32

	// Container properties
	Container Container
	Gap       float32 // Space between children (HBox/VBox only)
	Padding   Edges
}

// DefaultStyle returns a Style with sensible defaults.
func DefaultStyle() Style {
	return Style{
		Visible:   true,
		Width:     Auto(),
		Height:    Auto(),
		MinWidth:  Pixels(0),
		MinHeight: Pixels(0),
		MaxWidth:  Auto(), // No maximum
		MaxHeight: Auto(), // No maximum
	}
}
