package uigen

import (
	"sort"
	"strings"

	"github.com/grindlemire/go-ui/internal/tree"
)

// Print renders t as canonical .ui source: one element per line, tab
// indentation, attributes sorted by key. Parsing the output yields a tree
// equal to t.
func Print(t *tree.Tree) string {
	var sb strings.Builder
	sb.WriteString("ui {\n")
	root := t.Get(t.Root())
	if root != nil {
		for _, child := range root.Children {
			printNode(&sb, t, child, 1)
		}
	}
	sb.WriteString("}\n")
	return sb.String()
}

func printNode(sb *strings.Builder, t *tree.Tree, id tree.NodeID, depth int) {
	n := t.Get(id)
	if n == nil {
		return
	}

	indent := strings.Repeat("\t", depth)
	sb.WriteString(indent)
	sb.WriteString(n.Kind.String())
	if n.ElementID != "" {
		sb.WriteString(" #")
		sb.WriteString(n.ElementID)
	}

	keys := make([]string, 0, len(n.Attrs))
	for k := range n.Attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		sb.WriteByte(' ')
		sb.WriteString(k)
		sb.WriteByte('=')
		sb.WriteString(n.Attrs[k].Source())
	}

	if len(n.Children) == 0 {
		sb.WriteByte('\n')
		return
	}
	sb.WriteString(" {\n")
	for _, child := range n.Children {
		printNode(sb, t, child, depth+1)
	}
	sb.WriteString(indent)
	sb.WriteString("}\n")
}
