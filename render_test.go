package ui

import (
	"fmt"
	"slices"
	"testing"
)

// recordingSurface logs every draw call as a line of text.
type recordingSurface struct {
	ops []string
}

func (s *recordingSurface) FillRect(r Rect, c Color) {
	s.ops = append(s.ops, fmt.Sprintf("rect %v,%v %vx%v %s", r.X, r.Y, r.Width, r.Height, c.Hex()))
}

func (s *recordingSurface) DrawText(p Point, text []byte, c Color, scale float32) {
	s.ops = append(s.ops, fmt.Sprintf("text %v,%v %q %s x%v", p.X, p.Y, text, c.Hex(), scale))
}

func (s *recordingSurface) DrawNumber(p Point, n uint64, c Color, scale float32) {
	s.ops = append(s.ops, fmt.Sprintf("number %v,%v %d %s x%v", p.X, p.Y, n, c.Hex(), scale))
}

func (s *recordingSurface) DrawIcon(p Point, size float32, sprite uint32) {
	s.ops = append(s.ops, fmt.Sprintf("icon %v,%v %v #%d", p.X, p.Y, size, sprite))
}

func (s *recordingSurface) FillProgress(r Rect, fraction float32, c Color) {
	s.ops = append(s.ops, fmt.Sprintf("progress %v,%v %vx%v %v %s", r.X, r.Y, r.Width, r.Height, fraction, c.Hex()))
}

func testTheme() *Theme {
	th := DefaultTheme()
	th.Colors["gold"] = RGBA8(0xff, 0xd7, 0x00, 0xff)
	th.TextScales["title"] = 2
	th.PanelBackground = Color{}
	th.ButtonPadding = 2
	return th
}

func TestRenderer_Render(t *testing.T) {
	type tc struct {
		src  string
		ctx  func() *Context
		want []string
	}

	tests := map[string]tc{
		"panel background and text": {
			src: `ui { panel background=#102030 padding=4 { text text="Hi" color="gold" scale="title" } }`,
			want: []string{
				"rect 0,0 100x50 #102030",
				`text 4,4 "Hi" #ffd700 x2`,
			},
		},
		"button uses theme defaults": {
			src: `ui { button text="Go" }`,
			want: []string{
				"rect 0,0 100x50 #2c3e50",
				`text 2,2 "Go" #ffffff x1`,
			},
		},
		"bound text and number": {
			src: `ui { vbox { text text=@city.name number value=@city.pop } }`,
			ctx: func() *Context {
				c := NewContext()
				c.SetString("city.name", "Ogdenville")
				c.SetFloat("city.pop", 1234.9)
				return c
			},
			want: []string{
				`text 0,0 "Ogdenville" #ffffff x1`,
				"number 0,25 1234 #ffffff x1",
			},
		},
		"unresolved binding placeholder": {
			src:  `ui { text text=@city.name }`,
			want: []string{`text 0,0 "?city.name" #ffffff x1`},
		},
		"negative number clamps": {
			src:  `ui { number value=-5 }`,
			want: []string{"number 0,0 0 #ffffff x1"},
		},
		"progress fraction": {
			src: `ui { progress value=@happy max=200 background="#00000000" }`,
			ctx: func() *Context {
				c := NewContext()
				c.SetInt("happy", 50)
				return c
			},
			want: []string{"progress 0,0 100x50 0.25 #2ecc71"},
		},
		"progress clamps above max": {
			src: `ui { progress value=3 }`,
			want: []string{
				"rect 0,0 100x50 #333333",
				"progress 0,0 100x50 1 #2ecc71",
			},
		},
		"icon": {
			src:  `ui { icon sprite=7 size=24 }`,
			want: []string{"icon 0,0 24 #7"},
		},
		"hidden subtree is skipped": {
			src:  `ui { panel visible=false { text text="no" } text text="yes" }`,
			want: []string{`text 0,0 "yes" #ffffff x1`},
		},
		"false conditional is skipped": {
			src: `ui { if if="paused" { text text="Paused" } }`,
			ctx: func() *Context {
				c := NewContext()
				c.SetBool("paused", false)
				return c
			},
		},
		"true conditional draws children": {
			src: `ui { if if="paused" { text text="Paused" } }`,
			ctx: func() *Context {
				c := NewContext()
				c.SetBool("paused", true)
				return c
			},
			want: []string{`text 0,0 "Paused" #ffffff x1`},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tr := mustParse(t, tt.src)
			var ctx *Context
			if tt.ctx != nil {
				ctx = tt.ctx()
			}
			l := NewLayoutEngine()
			l.ComputeLayout(tr, 100, 50)

			s := &recordingSurface{}
			NewRenderer(testTheme()).Render(tr, l, ctx, s)
			if !slices.Equal(s.ops, tt.want) {
				t.Errorf("ops:\n%q\nwant:\n%q", s.ops, tt.want)
			}
		})
	}
}

func TestRenderer_NilInputs(t *testing.T) {
	s := &recordingSurface{}
	r := NewRenderer(nil)
	r.Render(nil, NewLayoutEngine(), nil, s)
	r.Render(NewTree(), nil, nil, s)
	if len(s.ops) != 0 {
		t.Errorf("ops = %v, want none", s.ops)
	}
}
