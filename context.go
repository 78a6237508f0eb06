package ui

import (
	"math"
	"strconv"
	"strings"
)

// floatEpsilon is the tolerance for float equality in conditions and
// binding change detection.
const floatEpsilon = 1e-6

// ContextKind identifies which member of a ContextValue is set.
type ContextKind uint8

const (
	ContextInt ContextKind = iota
	ContextFloat
	ContextString
	ContextBool
)

// ContextValue is a runtime value stored in a Context.
type ContextValue struct {
	kind ContextKind
	i    int64
	f    float64
	s    string
	b    bool
}

// Int returns an integer ContextValue.
func Int(v int64) ContextValue { return ContextValue{kind: ContextInt, i: v} }

// Float returns a float ContextValue.
func Float(v float64) ContextValue { return ContextValue{kind: ContextFloat, f: v} }

// Str returns a string ContextValue.
func Str(v string) ContextValue { return ContextValue{kind: ContextString, s: v} }

// Boolean returns a bool ContextValue.
func Boolean(v bool) ContextValue { return ContextValue{kind: ContextBool, b: v} }

// Kind reports which member is set.
func (v ContextValue) Kind() ContextKind { return v.kind }

// Int returns the integer payload.
func (v ContextValue) Int() (int64, bool) { return v.i, v.kind == ContextInt }

// Float returns the float payload.
func (v ContextValue) Float() (float64, bool) { return v.f, v.kind == ContextFloat }

// Str returns the string payload.
func (v ContextValue) Str() (string, bool) { return v.s, v.kind == ContextString }

// Bool returns the bool payload.
func (v ContextValue) Bool() (bool, bool) { return v.b, v.kind == ContextBool }

// Number returns the value as a float64 for Int and Float values.
func (v ContextValue) Number() (float64, bool) {
	switch v.kind {
	case ContextInt:
		return float64(v.i), true
	case ContextFloat:
		return v.f, true
	}
	return 0, false
}

// Text formats the value for display.
func (v ContextValue) Text() string {
	switch v.kind {
	case ContextInt:
		return strconv.FormatInt(v.i, 10)
	case ContextFloat:
		return strconv.FormatFloat(v.f, 'f', -1, 64)
	case ContextBool:
		return strconv.FormatBool(v.b)
	default:
		return v.s
	}
}

// Truthy coerces the value to a boolean: non-zero numbers, non-empty
// strings and true are truthy.
func (v ContextValue) Truthy() bool {
	switch v.kind {
	case ContextInt:
		return v.i != 0
	case ContextFloat:
		return v.f != 0
	case ContextBool:
		return v.b
	default:
		return v.s != ""
	}
}

// Equal compares two values. Floats compare within floatEpsilon; values of
// different kinds are never equal.
func (v ContextValue) Equal(other ContextValue) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case ContextInt:
		return v.i == other.i
	case ContextFloat:
		return math.Abs(v.f-other.f) < floatEpsilon
	case ContextBool:
		return v.b == other.b
	default:
		return v.s == other.s
	}
}

// Context maps dotted binding paths to runtime values. Paths are opaque
// keys; no hierarchy is implied.
type Context struct {
	values map[string]ContextValue
}

// NewContext creates an empty Context.
func NewContext() *Context {
	return &Context{values: make(map[string]ContextValue)}
}

// Set stores v at path, replacing any previous value.
func (c *Context) Set(path string, v ContextValue) { c.values[path] = v }

// SetInt stores an integer.
func (c *Context) SetInt(path string, v int64) { c.Set(path, Int(v)) }

// SetFloat stores a float.
func (c *Context) SetFloat(path string, v float64) { c.Set(path, Float(v)) }

// SetString stores a string.
func (c *Context) SetString(path string, v string) { c.Set(path, Str(v)) }

// SetBool stores a bool.
func (c *Context) SetBool(path string, v bool) { c.Set(path, Boolean(v)) }

// Delete removes path.
func (c *Context) Delete(path string) { delete(c.values, path) }

// Get returns the value at path.
func (c *Context) Get(path string) (ContextValue, bool) {
	if c == nil {
		return ContextValue{}, false
	}
	v, ok := c.values[path]
	return v, ok
}

// Len returns the number of stored paths.
func (c *Context) Len() int { return len(c.values) }

// ResolveBinding returns the display text for path, or "?" followed by the
// path when it is missing.
func (c *Context) ResolveBinding(path string) string {
	v, ok := c.Get(path)
	if !ok {
		return "?" + path
	}
	return v.Text()
}

// EvaluateCondition evaluates a condition expression.
//
// Two forms are understood: a bare path, true when its value is truthy, and
// "left op right" with op one of == != > < >= <=. The left operand is a path
// (falling back to a literal); the right operand is a literal, then a path,
// then a bare string. Anything else, including an unresolved left path, is
// false.
func (c *Context) EvaluateCondition(expr string) bool {
	fields := strings.Fields(expr)
	switch len(fields) {
	case 1:
		v, ok := c.Get(fields[0])
		return ok && v.Truthy()
	case 3:
		left, ok := c.Get(fields[0])
		if !ok {
			if left, ok = parseLiteral(fields[0]); !ok {
				return false
			}
		}
		right, ok := parseLiteral(fields[2])
		if !ok {
			if right, ok = c.Get(fields[2]); !ok {
				right = Str(fields[2])
			}
		}
		return compare(left, fields[1], right)
	default:
		return false
	}
}

// parseLiteral parses a condition literal: a quoted string, true/false, an
// integer or a float.
func parseLiteral(s string) (ContextValue, bool) {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return Str(s[1 : len(s)-1]), true
	}
	switch s {
	case "true":
		return Boolean(true), true
	case "false":
		return Boolean(false), true
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Int(n), true
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return Float(f), true
	}
	return ContextValue{}, false
}

// compare applies op. Ints and floats compare numerically; strings support
// ordering; bools support only equality. Mismatched kinds are false.
func compare(left ContextValue, op string, right ContextValue) bool {
	if l, ok := left.Number(); ok {
		r, ok := right.Number()
		if !ok {
			return false
		}
		if left.kind == ContextInt && right.kind == ContextInt {
			return ordered(cmpInt(left.i, right.i), op)
		}
		return ordered(cmpFloat(l, r), op)
	}

	switch left.kind {
	case ContextString:
		if right.kind != ContextString {
			return false
		}
		return ordered(strings.Compare(left.s, right.s), op)
	case ContextBool:
		if right.kind != ContextBool {
			return false
		}
		switch op {
		case "==":
			return left.b == right.b
		case "!=":
			return left.b != right.b
		}
	}
	return false
}

// ordered maps a three-way comparison result through op.
func ordered(c int, op string) bool {
	switch op {
	case "==":
		return c == 0
	case "!=":
		return c != 0
	case ">":
		return c > 0
	case "<":
		return c < 0
	case ">=":
		return c >= 0
	case "<=":
		return c <= 0
	}
	return false
}

func cmpInt(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func cmpFloat(a, b float64) int {
	switch {
	case math.Abs(a-b) < floatEpsilon:
		return 0
	case a < b:
		return -1
	}
	return 1
}
