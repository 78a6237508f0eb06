package main

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"

	ui "github.com/grindlemire/go-ui"
)

// runDump implements the dump subcommand.
// It prints every node of a .ui or .uib file with its computed rectangle.
func runDump(args []string) error {
	opts, err := parseOptions(args)
	if err != nil {
		return err
	}
	path, err := opts.single()
	if err != nil {
		return err
	}

	s, err := loadScene(opts, path)
	if err != nil {
		return err
	}
	dumpTree(os.Stdout, s.tree, s.layout)
	return nil
}

// dumpTree writes one line per node, indented by depth.
func dumpTree(w io.Writer, t *ui.Tree, l *ui.LayoutEngine) {
	var walk func(id ui.NodeID, depth int)
	walk = func(id ui.NodeID, depth int) {
		n := t.Get(id)
		if n == nil {
			return
		}

		var sb strings.Builder
		sb.WriteString(strings.Repeat("  ", depth))
		fmt.Fprintf(&sb, "%d %s", n.ID, n.Kind)
		if n.ElementID != "" {
			sb.WriteString(" #" + n.ElementID)
		}
		if box, ok := l.Get(id); ok && box.Visible {
			r := box.Rect
			fmt.Fprintf(&sb, " [%g,%g %gx%g]", r.X, r.Y, r.Width, r.Height)
		} else if ok {
			sb.WriteString(" [hidden]")
		}
		for _, key := range slices.Sorted(maps.Keys(n.Attrs)) {
			fmt.Fprintf(&sb, " %s=%s", key, n.Attrs[key].Source())
		}
		fmt.Fprintln(w, sb.String())

		for _, c := range n.Children {
			walk(c, depth+1)
		}
	}
	walk(t.Root(), 0)
}
