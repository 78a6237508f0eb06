package ui

import (
	"math"
	"testing"
)

const scenarioSource = `ui { panel #p background=#3498db padding=16 { button #b text="Hello" onclick="cmd" } }`

func mustParse(t *testing.T, src string) *Tree {
	t.Helper()
	tr, err := Parse("test.ui", src)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return tr
}

func mustFind(t *testing.T, tr *Tree, name string) NodeID {
	t.Helper()
	id, ok := tr.FindByElementID(name)
	if !ok {
		t.Fatalf("element #%s not found", name)
	}
	return id
}

func mustLayout(t *testing.T, e *LayoutEngine, id NodeID) LayoutNode {
	t.Helper()
	n, ok := e.Get(id)
	if !ok {
		t.Fatalf("no layout for node %d", id)
	}
	return n
}

func TestLayoutEngine_Scenario(t *testing.T) {
	tr := mustParse(t, scenarioSource)
	e := NewLayoutEngine()
	e.ComputeLayout(tr, 800, 600)

	if e.Len() != 3 {
		t.Errorf("Len() = %d, want 3", e.Len())
	}

	panel := mustLayout(t, e, mustFind(t, tr, "p"))
	if want := NewRect(0, 0, 800, 600); panel.Rect != want {
		t.Errorf("panel.Rect = %+v, want %+v", panel.Rect, want)
	}
	if want := NewRect(16, 16, 768, 568); panel.ContentRect != want {
		t.Errorf("panel.ContentRect = %+v, want %+v", panel.ContentRect, want)
	}

	button := mustLayout(t, e, mustFind(t, tr, "b"))
	if !NewRect(16, 16, 768, 568).ContainsRect(button.Rect) {
		t.Errorf("button.Rect = %+v, not within the panel content", button.Rect)
	}
}

func TestLayoutEngine_Attributes(t *testing.T) {
	type tc struct {
		src  string
		opts []LayoutOption
		id   string
		want Rect
	}

	theme := DefaultTheme()
	theme.Spacing["md"] = 8

	tests := map[string]tc{
		"fixed size": {
			src:  `ui { panel #a width=100 height=50 }`,
			id:   "a",
			want: NewRect(0, 0, 100, 50),
		},
		"percent size": {
			src:  `ui { panel #a width="50%" height="25%" }`,
			id:   "a",
			want: NewRect(0, 0, 400, 150),
		},
		"auto keyword": {
			src:  `ui { panel #a width="auto" }`,
			id:   "a",
			want: NewRect(0, 0, 800, 600),
		},
		"max clamps auto": {
			src:  `ui { panel #a max_width=300 }`,
			id:   "a",
			want: NewRect(0, 0, 300, 600),
		},
		"min wins over max": {
			src:  `ui { panel #a width=10 min_width=200 max_width=100 }`,
			id:   "a",
			want: NewRect(0, 0, 200, 600),
		},
		"absolute offset": {
			src:  `ui { panel padding=20 { text #a position="absolute" x=5 y=7 width=10 height=10 } }`,
			id:   "a",
			want: NewRect(5, 7, 10, 10),
		},
		"theme spacing padding": {
			src:  `ui { panel padding="md" { text #a } }`,
			opts: []LayoutOption{WithTheme(theme)},
			id:   "a",
			want: NewRect(8, 8, 784, 584),
		},
		"per-side padding overrides": {
			src:  `ui { panel padding=10 padding_left=0 { text #a } }`,
			id:   "a",
			want: NewRect(0, 10, 790, 580),
		},
		"unparseable size falls back": {
			src:  `ui { panel #a width="wide" height=true }`,
			id:   "a",
			want: NewRect(0, 0, 800, 600),
		},
		"hbox gap": {
			src:  `ui { hbox gap=10 { text #a text="1" text #b text="2" } }`,
			id:   "b",
			want: NewRect(405, 0, 395, 600),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tr := mustParse(t, tt.src)
			e := NewLayoutEngine(tt.opts...)
			e.ComputeLayout(tr, 800, 600)
			got := mustLayout(t, e, mustFind(t, tr, tt.id))
			if got.Rect != tt.want {
				t.Errorf("Rect = %+v, want %+v", got.Rect, tt.want)
			}
		})
	}
}

func TestLayoutEngine_FlowContainment(t *testing.T) {
	type tc struct {
		src        string
		horizontal bool
	}

	tests := map[string]tc{
		"hbox":  {src: `ui { hbox #box padding=3 gap=7 { text text text } }`, horizontal: true},
		"vbox":  {src: `ui { vbox #box padding=3 gap=7 { text text text text } }`},
		"hbox1": {src: `ui { hbox #box gap=7 { text } }`, horizontal: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tr := mustParse(t, tt.src)
			e := NewLayoutEngine()
			e.ComputeLayout(tr, 640, 480)

			box := tr.Get(mustFind(t, tr, "box"))
			parent := mustLayout(t, e, box.ID)
			var total float32
			for _, c := range box.Children {
				r := mustLayout(t, e, c).Rect
				if tt.horizontal {
					total += r.Width
				} else {
					total += r.Height
				}
			}
			total += 7 * float32(len(box.Children)-1)

			want := parent.ContentRect.Height
			if tt.horizontal {
				want = parent.ContentRect.Width
			}
			if math.Abs(float64(total-want)) > 1e-3 {
				t.Errorf("children + gaps = %v, want %v", total, want)
			}
		})
	}
}

func TestLayoutEngine_Visibility(t *testing.T) {
	type tc struct {
		src     string
		ctx     func() *Context
		visible map[string]bool
		missing []string
	}

	tests := map[string]tc{
		"visible false hides subtree": {
			src:     `ui { panel #a visible=false { text #b } }`,
			visible: map[string]bool{"a": false},
			missing: []string{"b"},
		},
		"conditional without context is shown": {
			src:     `ui { if #c if="paused" { text #b } }`,
			visible: map[string]bool{"c": true, "b": true},
		},
		"conditional false with context": {
			src:     `ui { if #c if="paused" { text #b } }`,
			ctx:     func() *Context { c := NewContext(); c.SetBool("paused", false); return c },
			visible: map[string]bool{"c": false},
			missing: []string{"b"},
		},
		"conditional comparison true": {
			src: `ui { if #c if="money >= 100" { text #b } }`,
			ctx: func() *Context { c := NewContext(); c.SetInt("money", 250); return c },
			visible: map[string]bool{
				"c": true,
				"b": true,
			},
		},
		"bound visibility": {
			src:     `ui { panel #a visible=@hud.show }`,
			ctx:     func() *Context { c := NewContext(); c.SetBool("hud.show", false); return c },
			visible: map[string]bool{"a": false},
		},
		"bound visibility without context": {
			src:     `ui { panel #a visible=@hud.show }`,
			visible: map[string]bool{"a": true},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tr := mustParse(t, tt.src)
			var opts []LayoutOption
			if tt.ctx != nil {
				opts = append(opts, WithContext(tt.ctx()))
			}
			e := NewLayoutEngine(opts...)
			e.ComputeLayout(tr, 100, 100)

			for id, want := range tt.visible {
				got := mustLayout(t, e, mustFind(t, tr, id))
				if got.Visible != want {
					t.Errorf("#%s Visible = %v, want %v", id, got.Visible, want)
				}
				if !want && got.Rect != (Rect{}) {
					t.Errorf("#%s hidden but Rect = %+v", id, got.Rect)
				}
			}
			for _, id := range tt.missing {
				if _, ok := e.Get(mustFind(t, tr, id)); ok {
					t.Errorf("#%s has a layout entry under a hidden parent", id)
				}
			}
		})
	}
}

func TestLayoutEngine_Idempotent(t *testing.T) {
	tr := mustParse(t, `ui { vbox padding=5 gap=3 { hbox gap=2 { text text } panel width="33%" } }`)
	e := NewLayoutEngine()

	e.ComputeLayout(tr, 333, 211)
	first := make(map[NodeID]LayoutNode)
	for i := 0; i < tr.Len(); i++ {
		if n, ok := e.Get(NodeID(i)); ok {
			first[NodeID(i)] = n
		}
	}

	e.ComputeLayout(tr, 333, 211)
	if e.Len() != len(first) {
		t.Fatalf("second pass has %d entries, first had %d", e.Len(), len(first))
	}
	for id, want := range first {
		if got, _ := e.Get(id); got != want {
			t.Errorf("node %d: %+v then %+v", id, want, got)
		}
	}
}

func TestLayoutEngine_ReplacesPreviousPass(t *testing.T) {
	e := NewLayoutEngine()
	e.ComputeLayout(mustParse(t, `ui { panel panel panel }`), 10, 10)
	e.ComputeLayout(mustParse(t, `ui { panel }`), 10, 10)
	if e.Len() != 2 {
		t.Errorf("Len() = %d, want 2", e.Len())
	}
	if _, ok := e.Get(3); ok {
		t.Error("stale entry for node 3 survived")
	}
}

func TestLayoutEngine_HitTest(t *testing.T) {
	type tc struct {
		x, y   float32
		want   string
		wantOK bool
	}

	tr := mustParse(t, `ui { hbox #row width=200 height=100 { button #a button #b } panel #hidden visible=false }`)
	e := NewLayoutEngine()
	e.ComputeLayout(tr, 400, 300)

	tests := map[string]tc{
		"left button":        {x: 10, y: 10, want: "a", wantOK: true},
		"right button":       {x: 150, y: 99, want: "b", wantOK: true},
		"right edge is open": {x: 100, y: 50, want: "b", wantOK: true},
		"root only":          {x: 300, y: 200, wantOK: true},
		"outside viewport":   {x: 500, y: 500},
		"negative":           {x: -1, y: 5},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, ok := e.HitTest(tt.x, tt.y)
			if ok != tt.wantOK {
				t.Fatalf("HitTest ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			want := tr.Root()
			if tt.want != "" {
				want = mustFind(t, tr, tt.want)
			}
			if got != want {
				t.Errorf("HitTest = %d, want %d", got, want)
			}
		})
	}
}
