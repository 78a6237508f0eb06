package tree

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ValueKind identifies which member of the Value union is set.
type ValueKind uint8

const (
	ValueString  ValueKind = iota // "text"
	ValueNumber                   // 16, -2.5
	ValueBool                     // true / false
	ValueColor                    // #RRGGBB or #RRGGBBAA
	ValueBinding                  // @path.to.value
)

var valueKindNames = [...]string{
	ValueString:  "String",
	ValueNumber:  "Number",
	ValueBool:    "Bool",
	ValueColor:   "Color",
	ValueBinding: "Binding",
}

func (k ValueKind) String() string {
	if int(k) < len(valueKindNames) {
		return valueKindNames[k]
	}
	return fmt.Sprintf("ValueKind(%d)", k)
}

// Color is an RGBA color with each channel in the range 0-1.
type Color struct {
	R, G, B, A float32
}

// RGBA8 builds a Color from 8-bit channels.
func RGBA8(r, g, b, a uint8) Color {
	return Color{
		R: float32(r) / 255,
		G: float32(g) / 255,
		B: float32(b) / 255,
		A: float32(a) / 255,
	}
}

// ParseHex parses "#RRGGBB" or "#RRGGBBAA"; the leading '#' is optional.
func ParseHex(s string) (Color, error) {
	digits := strings.TrimPrefix(s, "#")
	if len(digits) != 6 && len(digits) != 8 {
		return Color{}, fmt.Errorf("color %q: want 6 or 8 hex digits", s)
	}
	var ch [4]uint8
	ch[3] = 0xff
	for i := 0; i < len(digits)/2; i++ {
		n, err := strconv.ParseUint(digits[2*i:2*i+2], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("color %q: %q is not hex", s, digits[2*i:2*i+2])
		}
		ch[i] = uint8(n)
	}
	return RGBA8(ch[0], ch[1], ch[2], ch[3]), nil
}

// Bytes returns the color as 8-bit channels, rounding to nearest.
func (c Color) Bytes() (r, g, b, a uint8) {
	return channel8(c.R), channel8(c.G), channel8(c.B), channel8(c.A)
}

// Hex formats the color as #RRGGBB, or #RRGGBBAA when not fully opaque.
func (c Color) Hex() string {
	r, g, b, a := c.Bytes()
	if a == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", r, g, b)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", r, g, b, a)
}

func channel8(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 0xff
	}
	return uint8(math.Round(float64(v) * 255))
}

// Value is an attribute value parsed from source. It is immutable once built;
// use the constructor functions to create one.
type Value struct {
	kind  ValueKind
	str   string // String text or Binding path
	num   float64
	flag  bool
	color Color
}

// String returns a string Value.
func String(s string) Value { return Value{kind: ValueString, str: s} }

// Number returns a numeric Value.
func Number(n float64) Value { return Value{kind: ValueNumber, num: n} }

// Bool returns a boolean Value.
func Bool(b bool) Value { return Value{kind: ValueBool, flag: b} }

// ColorValue returns a color Value.
func ColorValue(c Color) Value { return Value{kind: ValueColor, color: c} }

// Binding returns a Value that defers to the render context path at render time.
func Binding(path string) Value { return Value{kind: ValueBinding, str: path} }

// Kind reports which member of the union is set.
func (v Value) Kind() ValueKind { return v.kind }

// AsString returns the string payload if v is a String.
func (v Value) AsString() (string, bool) {
	return v.str, v.kind == ValueString
}

// AsNumber returns the numeric payload if v is a Number.
func (v Value) AsNumber() (float64, bool) {
	return v.num, v.kind == ValueNumber
}

// AsBool returns the boolean payload if v is a Bool.
func (v Value) AsBool() (bool, bool) {
	return v.flag, v.kind == ValueBool
}

// AsColor returns the color payload if v is a Color.
func (v Value) AsColor() (Color, bool) {
	return v.color, v.kind == ValueColor
}

// BindingPath returns the path if v is a Binding.
func (v Value) BindingPath() (string, bool) {
	return v.str, v.kind == ValueBinding
}

// Equal reports whether two values hold the same kind and payload.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case ValueString, ValueBinding:
		return v.str == other.str
	case ValueNumber:
		return v.num == other.num
	case ValueBool:
		return v.flag == other.flag
	case ValueColor:
		return v.color == other.color
	}
	return false
}

// Source formats the value the way it is written in .ui source.
func (v Value) Source() string {
	switch v.kind {
	case ValueString:
		return quote(v.str)
	case ValueNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case ValueBool:
		return strconv.FormatBool(v.flag)
	case ValueColor:
		return v.color.Hex()
	case ValueBinding:
		return "@" + v.str
	}
	return ""
}

// quote wraps s in double quotes using only the escapes the .ui lexer accepts.
func quote(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\t':
			sb.WriteString(`\t`)
		case '\r':
			sb.WriteString(`\r`)
		case 0:
			sb.WriteString(`\0`)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

// String implements fmt.Stringer for debugging.
func (v Value) String() string {
	return fmt.Sprintf("%s(%s)", v.kind, v.Source())
}
