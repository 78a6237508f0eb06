package layout

import "math"

// Unit specifies how a Value is interpreted.
type Unit uint8

const (
	UnitAuto    Unit = iota // Fill the space the parent offers
	UnitPixels              // Absolute pixels
	UnitPercent             // Percentage of the parent's content size
)

// Value represents a dimension that can be pixels, percentage, or auto.
type Value struct {
	Amount float32
	Unit   Unit
}

// Auto returns a Value that fills the space offered by the parent.
func Auto() Value {
	return Value{Unit: UnitAuto}
}

// Pixels returns a Value representing an absolute number of pixels.
func Pixels(n float32) Value {
	return Value{Amount: n, Unit: UnitPixels}
}

// Percent returns a Value representing a percentage of the parent's content size.
// The value is on a 0-100 scale (50.0 = 50%).
func Percent(p float32) Value {
	return Value{Amount: p, Unit: UnitPercent}
}

// Resolve computes the actual value. parent is the parent's content extent
// along the same axis; fallback is returned for UnitAuto.
func (v Value) Resolve(parent, fallback float32) float32 {
	switch v.Unit {
	case UnitPixels:
		return v.Amount
	case UnitPercent:
		return parent * v.Amount / 100
	default:
		return fallback
	}
}

// IsAuto returns true if this value should fill the offered space.
func (v Value) IsAuto() bool {
	return v.Unit == UnitAuto
}

// unbounded is the resolved maximum for an Auto max constraint.
var unbounded = float32(math.Inf(1))
