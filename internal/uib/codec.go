package uib

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"maps"
	"math"
	"slices"

	"github.com/grindlemire/go-ui/internal/tree"
)

// Magic starts every .uib file.
const Magic = "UIB1"

const headerSize = len(Magic) + 4

var (
	ErrBadMagic          = errors.New("uib: bad magic")
	ErrTruncatedPayload  = errors.New("uib: truncated payload")
	ErrDecodeFailure     = errors.New("uib: decode failure")
	ErrMalformedTree     = errors.New("uib: malformed tree")
	errUnencodableValue  = errors.New("uib: unencodable value")
	errUnencodableLength = errors.New("uib: payload exceeds 4 GiB")
)

const (
	tagString byte = iota
	tagNumber
	tagBool
	tagColor
	tagBinding
)

// Encode serializes t into a complete .uib file image.
func Encode(t *tree.Tree) ([]byte, error) {
	payload, err := encodePayload(t)
	if err != nil {
		return nil, err
	}
	if uint64(len(payload)) > math.MaxUint32 {
		return nil, errUnencodableLength
	}

	out := make([]byte, 0, headerSize+len(payload))
	out = append(out, Magic...)
	out = binary.LittleEndian.AppendUint32(out, uint32(len(payload)))
	return append(out, payload...), nil
}

// Write encodes t to w.
func Write(w io.Writer, t *tree.Tree) error {
	data, err := Encode(t)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func encodePayload(t *tree.Tree) ([]byte, error) {
	var e encoder
	e.uvarint(uint64(t.Len()))
	for i := 0; i < t.Len(); i++ {
		n := t.Get(tree.NodeID(i))
		e.buf = append(e.buf, byte(n.Kind))
		e.str(n.ElementID)

		e.uvarint(uint64(len(n.Attrs)))
		for _, key := range slices.Sorted(maps.Keys(n.Attrs)) {
			e.str(key)
			if err := e.value(n.Attrs[key]); err != nil {
				return nil, fmt.Errorf("node %d attribute %s: %w", n.ID, key, err)
			}
		}

		e.uvarint(uint64(len(n.Children)))
		for _, c := range n.Children {
			e.uvarint(uint64(c))
		}
	}
	return e.buf, nil
}

type encoder struct {
	buf []byte
}

func (e *encoder) uvarint(v uint64) { e.buf = binary.AppendUvarint(e.buf, v) }

func (e *encoder) str(s string) {
	e.uvarint(uint64(len(s)))
	e.buf = append(e.buf, s...)
}

func (e *encoder) f32(f float32) {
	e.buf = binary.LittleEndian.AppendUint32(e.buf, math.Float32bits(f))
}

func (e *encoder) value(v tree.Value) error {
	switch v.Kind() {
	case tree.ValueString:
		s, _ := v.AsString()
		e.buf = append(e.buf, tagString)
		e.str(s)
	case tree.ValueNumber:
		n, _ := v.AsNumber()
		e.buf = append(e.buf, tagNumber)
		e.buf = binary.LittleEndian.AppendUint64(e.buf, math.Float64bits(n))
	case tree.ValueBool:
		b, _ := v.AsBool()
		e.buf = append(e.buf, tagBool)
		if b {
			e.buf = append(e.buf, 1)
		} else {
			e.buf = append(e.buf, 0)
		}
	case tree.ValueColor:
		c, _ := v.AsColor()
		e.buf = append(e.buf, tagColor)
		e.f32(c.R)
		e.f32(c.G)
		e.f32(c.B)
		e.f32(c.A)
	case tree.ValueBinding:
		path, _ := v.BindingPath()
		e.buf = append(e.buf, tagBinding)
		e.str(path)
	default:
		return errUnencodableValue
	}
	return nil
}

// Read decodes one .uib file image from r.
func Read(r io.Reader) (*tree.Tree, error) {
	var header [headerSize]byte
	n, err := io.ReadFull(r, header[:])
	if n < len(Magic) || string(header[:len(Magic)]) != Magic {
		if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, err
		}
		return nil, ErrBadMagic
	}
	if err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, ErrTruncatedPayload
		}
		return nil, err
	}

	size := binary.LittleEndian.Uint32(header[len(Magic):])
	payload, err := io.ReadAll(io.LimitReader(r, int64(size)))
	if err != nil {
		return nil, err
	}
	if uint32(len(payload)) < size {
		return nil, ErrTruncatedPayload
	}
	return decodePayload(payload)
}

// Decode decodes a complete .uib file image.
func Decode(data []byte) (*tree.Tree, error) {
	return Read(bytes.NewReader(data))
}

func decodePayload(payload []byte) (*tree.Tree, error) {
	d := &decoder{buf: payload}

	count := d.uvarint()
	if d.err != nil {
		return nil, d.err
	}
	if count == 0 {
		return nil, fmt.Errorf("%w: no root node", ErrMalformedTree)
	}
	// Every node takes at least four bytes.
	if count > uint64(len(payload))/4 {
		return nil, fmt.Errorf("%w: node count %d exceeds payload of %d bytes", ErrDecodeFailure, count, len(payload))
	}

	t := tree.New()
	children := make([][]uint64, count)
	for i := uint64(0); i < count; i++ {
		kind := tree.Kind(d.byte())
		if d.err == nil && !kind.Valid() {
			return nil, fmt.Errorf("%w: node %d has unknown kind %d", ErrDecodeFailure, i, kind)
		}

		id := t.Root()
		if i == 0 {
			if d.err == nil && kind != tree.KindContainer {
				return nil, fmt.Errorf("%w: root is %s, want container", ErrMalformedTree, kind)
			}
		} else {
			id = t.CreateNode(kind)
		}

		if name := d.str(); name != "" && d.err == nil {
			if err := t.SetElementID(id, name); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrMalformedTree, err)
			}
		}

		attrs := d.uvarint()
		for j := uint64(0); j < attrs && d.err == nil; j++ {
			key := d.str()
			v := d.value()
			if d.err == nil {
				_ = t.SetAttr(id, key, v)
			}
		}

		nc := d.uvarint()
		if d.err == nil && nc > uint64(d.remaining()) {
			d.fail("child count %d", nc)
		}
		for j := uint64(0); j < nc && d.err == nil; j++ {
			children[i] = append(children[i], d.uvarint())
		}

		if d.err != nil {
			return nil, d.err
		}
	}
	if d.remaining() != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrDecodeFailure, d.remaining())
	}

	for parent, kids := range children {
		for _, c := range kids {
			if c >= count {
				return nil, fmt.Errorf("%w: node %d references missing child %d", ErrMalformedTree, parent, c)
			}
			if err := t.AddChild(tree.NodeID(parent), tree.NodeID(c)); err != nil {
				return nil, fmt.Errorf("%w: link %d -> %d: %v", ErrMalformedTree, parent, c, err)
			}
		}
	}
	return t, nil
}

// decoder reads payload primitives. The first failure sticks; later reads
// return zero values.
type decoder struct {
	buf []byte
	pos int
	err error
}

func (d *decoder) remaining() int { return len(d.buf) - d.pos }

func (d *decoder) fail(format string, args ...any) {
	if d.err == nil {
		d.err = fmt.Errorf("%w: at offset %d: %s", ErrDecodeFailure, d.pos, fmt.Sprintf(format, args...))
	}
}

func (d *decoder) take(n int) []byte {
	if d.err != nil {
		return nil
	}
	if n < 0 || n > d.remaining() {
		d.fail("need %d bytes, have %d", n, d.remaining())
		return nil
	}
	b := d.buf[d.pos : d.pos+n]
	d.pos += n
	return b
}

func (d *decoder) byte() byte {
	b := d.take(1)
	if b == nil {
		return 0
	}
	return b[0]
}

func (d *decoder) uvarint() uint64 {
	if d.err != nil {
		return 0
	}
	v, n := binary.Uvarint(d.buf[d.pos:])
	if n <= 0 {
		d.fail("bad varint")
		return 0
	}
	d.pos += n
	return v
}

func (d *decoder) str() string {
	n := d.uvarint()
	if d.err == nil && n > uint64(d.remaining()) {
		d.fail("string length %d", n)
	}
	return string(d.take(int(n)))
}

func (d *decoder) f32() float32 {
	b := d.take(4)
	if b == nil {
		return 0
	}
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}

func (d *decoder) value() tree.Value {
	switch tag := d.byte(); tag {
	case tagString:
		return tree.String(d.str())
	case tagNumber:
		b := d.take(8)
		if b == nil {
			return tree.Value{}
		}
		return tree.Number(math.Float64frombits(binary.LittleEndian.Uint64(b)))
	case tagBool:
		switch d.byte() {
		case 0:
			return tree.Bool(false)
		case 1:
			return tree.Bool(true)
		}
		d.fail("bad bool")
	case tagColor:
		r, g, b, a := d.f32(), d.f32(), d.f32(), d.f32()
		return tree.ColorValue(tree.Color{R: r, G: g, B: b, A: a})
	case tagBinding:
		path := d.str()
		if path == "" {
			d.fail("empty binding path")
		}
		return tree.Binding(path)
	default:
		d.fail("unknown value tag %d", tag)
	}
	return tree.Value{}
}
