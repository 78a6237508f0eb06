package tree

import (
	"errors"
	"testing"
)

func TestNew_HasRoot(t *testing.T) {
	tr := New()
	if tr.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", tr.Len())
	}
	root := tr.Get(tr.Root())
	if root == nil {
		t.Fatal("root node missing")
	}
	if root.Kind != KindContainer {
		t.Errorf("root.Kind = %v, want %v", root.Kind, KindContainer)
	}
}

func TestTree_CreateNode_MonotonicIDs(t *testing.T) {
	tr := New()
	prev := tr.Root()
	for i := 0; i < 5; i++ {
		id := tr.CreateNode(KindText)
		if id <= prev {
			t.Fatalf("id %d not greater than previous %d", id, prev)
		}
		prev = id
	}
}

func TestTree_AddChild(t *testing.T) {
	type tc struct {
		build   func(tr *Tree) (parent, child NodeID)
		wantErr error
	}

	tests := map[string]tc{
		"valid link": {
			build: func(tr *Tree) (NodeID, NodeID) {
				return tr.Root(), tr.CreateNode(KindPanel)
			},
		},
		"unknown parent": {
			build: func(tr *Tree) (NodeID, NodeID) {
				return 99, tr.CreateNode(KindPanel)
			},
			wantErr: ErrNodeNotFound,
		},
		"unknown child": {
			build: func(tr *Tree) (NodeID, NodeID) {
				return tr.Root(), 42
			},
			wantErr: ErrNodeNotFound,
		},
		"root as child": {
			build: func(tr *Tree) (NodeID, NodeID) {
				return tr.CreateNode(KindPanel), tr.Root()
			},
			wantErr: ErrAlreadyAttached,
		},
		"attached twice": {
			build: func(tr *Tree) (NodeID, NodeID) {
				a := tr.CreateNode(KindPanel)
				b := tr.CreateNode(KindPanel)
				_ = tr.AddChild(tr.Root(), b)
				return a, b
			},
			wantErr: ErrAlreadyAttached,
		},
		"closing a loop": {
			build: func(tr *Tree) (NodeID, NodeID) {
				a := tr.CreateNode(KindPanel)
				b := tr.CreateNode(KindPanel)
				_ = tr.AddChild(a, b)
				return b, a
			},
			wantErr: ErrCycle,
		},
		"self link": {
			build: func(tr *Tree) (NodeID, NodeID) {
				a := tr.CreateNode(KindPanel)
				return a, a
			},
			wantErr: ErrCycle,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tr := New()
			parent, child := tt.build(tr)
			err := tr.AddChild(parent, child)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				p := tr.Get(parent)
				if got := p.Children[len(p.Children)-1]; got != child {
					t.Errorf("last child = %d, want %d", got, child)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestTree_Get_InvalidIDIsNil(t *testing.T) {
	tr := New()
	if n := tr.Get(7); n != nil {
		t.Errorf("Get(7) = %+v, want nil", n)
	}
}

func TestTree_ElementIDs(t *testing.T) {
	tr := New()
	a := tr.CreateNode(KindButton)
	b := tr.CreateNode(KindButton)

	if err := tr.SetElementID(a, "ok"); err != nil {
		t.Fatalf("SetElementID: %v", err)
	}
	if err := tr.SetElementID(b, "ok"); !errors.Is(err, ErrDuplicateElementID) {
		t.Errorf("duplicate SetElementID err = %v, want ErrDuplicateElementID", err)
	}
	if id, ok := tr.FindByElementID("ok"); !ok || id != a {
		t.Errorf("FindByElementID(ok) = %d, %v; want %d, true", id, ok, a)
	}
	if _, ok := tr.FindByElementID("missing"); ok {
		t.Error("FindByElementID(missing) found a node")
	}
}

func TestTree_Traverse_PreOrder(t *testing.T) {
	tr := New()
	a := tr.CreateNode(KindVBox)
	b := tr.CreateNode(KindText)
	c := tr.CreateNode(KindText)
	d := tr.CreateNode(KindButton)
	mustAdd(t, tr, tr.Root(), a)
	mustAdd(t, tr, a, b)
	mustAdd(t, tr, a, c)
	mustAdd(t, tr, tr.Root(), d)

	var got []NodeID
	tr.Traverse(tr.Root(), func(n *Node) {
		got = append(got, n.ID)
	})

	want := []NodeID{tr.Root(), a, b, c, d}
	if len(got) != len(want) {
		t.Fatalf("visited %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("visit[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestTree_Traverse_Subtree(t *testing.T) {
	tr := New()
	a := tr.CreateNode(KindPanel)
	b := tr.CreateNode(KindText)
	mustAdd(t, tr, tr.Root(), a)
	mustAdd(t, tr, a, b)

	count := 0
	tr.Traverse(a, func(*Node) { count++ })
	if count != 2 {
		t.Errorf("visited %d nodes, want 2", count)
	}

	count = 0
	tr.Traverse(1000, func(*Node) { count++ })
	if count != 0 {
		t.Errorf("visited %d nodes from missing id, want 0", count)
	}
}

func TestEqual(t *testing.T) {
	build := func(label string) *Tree {
		tr := New()
		p := tr.CreateNode(KindPanel)
		mustAdd(t, tr, tr.Root(), p)
		_ = tr.SetElementID(p, "p")
		_ = tr.SetAttr(p, "padding", Number(16))
		b := tr.CreateNode(KindButton)
		mustAdd(t, tr, p, b)
		_ = tr.SetAttr(b, "text", String(label))
		return tr
	}

	if !Equal(build("Hello"), build("Hello")) {
		t.Error("identical trees reported unequal")
	}
	if Equal(build("Hello"), build("Bye")) {
		t.Error("trees with different attributes reported equal")
	}
}

func TestKind_LookupAndString(t *testing.T) {
	type tc struct {
		name string
		want Kind
	}

	tests := map[string]tc{
		"panel":            {name: "panel", want: KindPanel},
		"mixed case":       {name: "HBox", want: KindHBox},
		"progress alias":   {name: "progressbar", want: KindProgressBar},
		"conditional":      {name: "if", want: KindConditional},
		"generic":          {name: "container", want: KindContainer},
		"vertical synonym": {name: "column", want: KindVBox},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, ok := LookupKind(tt.name)
			if !ok || got != tt.want {
				t.Fatalf("LookupKind(%q) = %v, %v; want %v", tt.name, got, ok, tt.want)
			}
			back, ok := LookupKind(got.String())
			if !ok || back != got {
				t.Errorf("LookupKind(%q) did not round-trip", got.String())
			}
		})
	}

	if _, ok := LookupKind("window"); ok {
		t.Error("LookupKind(window) should fail")
	}
}

func TestColor_HexRoundTrip(t *testing.T) {
	c := RGBA8(0x34, 0x98, 0xdb, 0xff)
	if got := c.Hex(); got != "#3498db" {
		t.Errorf("Hex() = %q, want #3498db", got)
	}
	c = RGBA8(0x10, 0x20, 0x30, 0x80)
	if got := c.Hex(); got != "#10203080" {
		t.Errorf("Hex() = %q, want #10203080", got)
	}
}

func mustAdd(t *testing.T, tr *Tree, parent, child NodeID) {
	t.Helper()
	if err := tr.AddChild(parent, child); err != nil {
		t.Fatalf("AddChild(%d, %d): %v", parent, child, err)
	}
}
