package uigen

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/grindlemire/go-ui/internal/tree"
)

func TestParser_Scenario(t *testing.T) {
	src := `ui { panel #p background=#3498db padding=16 { button #b text="Hello" onclick="cmd" } }`

	tr, err := Parse("test.ui", src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tr.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", tr.Len())
	}

	pid, ok := tr.FindByElementID("p")
	if !ok {
		t.Fatal("panel #p not found")
	}
	panel := tr.Get(pid)
	if panel.Kind != tree.KindPanel {
		t.Errorf("panel.Kind = %v, want panel", panel.Kind)
	}
	if bg, ok := panel.Attrs["background"].AsColor(); !ok || bg != tree.RGBA8(0x34, 0x98, 0xdb, 0xff) {
		t.Errorf("background = %v, want #3498db", panel.Attrs["background"])
	}
	if pad, ok := panel.Attrs["padding"].AsNumber(); !ok || pad != 16 {
		t.Errorf("padding = %v, want 16", panel.Attrs["padding"])
	}

	root := tr.Get(tr.Root())
	if len(root.Children) != 1 || root.Children[0] != pid {
		t.Errorf("root.Children = %v, want [%d]", root.Children, pid)
	}

	bid, ok := tr.FindByElementID("b")
	if !ok {
		t.Fatal("button #b not found")
	}
	button := tr.Get(bid)
	if len(panel.Children) != 1 || panel.Children[0] != bid {
		t.Errorf("panel.Children = %v, want [%d]", panel.Children, bid)
	}
	if s, _ := button.Attrs["text"].AsString(); s != "Hello" {
		t.Errorf("text = %v, want Hello", button.Attrs["text"])
	}
	if s, _ := button.Attrs["onclick"].AsString(); s != "cmd" {
		t.Errorf("onclick = %v, want cmd", button.Attrs["onclick"])
	}
}

func TestParser_EmptyProgram(t *testing.T) {
	tr, err := Parse("test.ui", "ui {}")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tr.Len() != 1 {
		t.Errorf("Len() = %d, want 1 (root only)", tr.Len())
	}
	if root := tr.Get(tr.Root()); root == nil || root.Kind != tree.KindContainer {
		t.Errorf("root = %+v, want container", root)
	}
}

func TestParser_Values(t *testing.T) {
	type tc struct {
		attr string
		want tree.Value
	}

	tests := map[string]tc{
		"string":   {attr: `label="hi"`, want: tree.String("hi")},
		"integer":  {attr: `size=24`, want: tree.Number(24)},
		"negative": {attr: `x=-3.5`, want: tree.Number(-3.5)},
		"bool":     {attr: `visible=false`, want: tree.Bool(false)},
		"color":    {attr: `color=#ff000080`, want: tree.ColorValue(tree.RGBA8(0xff, 0, 0, 0x80))},
		"binding":  {attr: `value=@resources.wood`, want: tree.Binding("resources.wood")},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tr, err := Parse("test.ui", "ui { text "+tt.attr+" }")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			n := tr.Get(tr.Get(tr.Root()).Children[0])
			if len(n.Attrs) != 1 {
				t.Fatalf("attrs = %v, want exactly one", n.Attrs)
			}
			for _, got := range n.Attrs {
				if !got.Equal(tt.want) {
					t.Errorf("value = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestParser_Nesting(t *testing.T) {
	src := `
ui {
	vbox #menu gap=4 {
		button text="A"
		button text="B"
		hbox {
			icon sprite=3
			number value=@population
		}
	}
	text text="footer"
}`
	tr, err := Parse("test.ui", src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var kinds []tree.Kind
	tr.Traverse(tr.Root(), func(n *tree.Node) {
		kinds = append(kinds, n.Kind)
	})
	want := []tree.Kind{
		tree.KindContainer, tree.KindVBox, tree.KindButton, tree.KindButton,
		tree.KindHBox, tree.KindIcon, tree.KindNumber, tree.KindText,
	}
	if len(kinds) != len(want) {
		t.Fatalf("kinds = %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("kinds[%d] = %v, want %v", i, kinds[i], want[i])
		}
	}

	menu, _ := tr.FindByElementID("menu")
	if got := len(tr.Get(menu).Children); got != 3 {
		t.Errorf("menu has %d children, want 3", got)
	}
}

func TestParser_Errors(t *testing.T) {
	type tc struct {
		input   string
		wantErr error
	}

	tests := map[string]tc{
		"missing ui": {
			input:   "{ panel }",
			wantErr: ErrUnexpectedToken,
		},
		"empty input": {
			input:   "",
			wantErr: ErrUnexpectedEOF,
		},
		"unknown component": {
			input:   "ui { window }",
			wantErr: ErrUnknownComponent,
		},
		"duplicate element id": {
			input:   "ui { panel #a { text #a } }",
			wantErr: ErrDuplicateElementID,
		},
		"unclosed block": {
			input:   "ui { panel {",
			wantErr: ErrUnexpectedEOF,
		},
		"extra closing brace": {
			input:   "ui { } }",
			wantErr: ErrUnexpectedToken,
		},
		"missing value": {
			input:   "ui { text label= }",
			wantErr: ErrUnexpectedToken,
		},
		"value cut off": {
			input:   "ui { text label=",
			wantErr: ErrUnexpectedEOF,
		},
		"nul byte before trailing garbage": {
			input:   "ui { panel #a }\x00 this is not valid }}} @@",
			wantErr: ErrLex,
		},
		"lex error surfaces": {
			input:   `ui { text label="oops }`,
			wantErr: ErrLex,
		},
		"bad color": {
			input:   "ui { panel background=#12 }",
			wantErr: ErrLex,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tr, err := Parse("test.ui", tt.input)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if tr != nil {
				t.Error("tree should be nil on error")
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
			var uerr *Error
			if !errors.As(err, &uerr) {
				t.Fatalf("err %T does not contain *Error", err)
			}
			if uerr.Pos.File != "test.ui" {
				t.Errorf("Pos.File = %q, want test.ui", uerr.Pos.File)
			}
		})
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hud.ui")
	if err := os.WriteFile(path, []byte(`ui { text text=@population }`), 0644); err != nil {
		t.Fatal(err)
	}

	tr, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if tr.Len() != 2 {
		t.Errorf("Len() = %d, want 2", tr.Len())
	}

	_, err = ParseFile(filepath.Join(dir, "missing.ui"))
	if !errors.Is(err, ErrIO) {
		t.Errorf("missing file err = %v, want ErrIO", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file err = %v, want to wrap os.ErrNotExist", err)
	}
}

func TestPrint_RoundTrip(t *testing.T) {
	inputs := map[string]string{
		"scenario": `ui { panel #p background=#3498db padding=16 { button #b text="Hello" onclick="cmd" } }`,
		"empty":    `ui {}`,
		"mixed": `ui {
	vbox gap=2.5 visible=true {
		text text="line\none" color=#10203040
		if if="population > 10" { number value=@population }
		progress value=@happiness max=100 x=-4
	}
}`,
	}

	for name, src := range inputs {
		t.Run(name, func(t *testing.T) {
			first, err := Parse("in.ui", src)
			if err != nil {
				t.Fatalf("parse input: %v", err)
			}
			printed := Print(first)
			second, err := Parse("printed.ui", printed)
			if err != nil {
				t.Fatalf("parse printed output: %v\n%s", err, printed)
			}
			if !tree.Equal(first, second) {
				t.Errorf("printed tree differs from input:\n%s", printed)
			}
			if again := Print(second); again != printed {
				t.Errorf("Print is not stable:\nfirst:\n%s\nsecond:\n%s", printed, again)
			}
		})
	}
}
