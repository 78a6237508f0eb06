package ui

import (
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/grindlemire/go-ui/internal/debug"
)

// Bindings tracks which nodes depend on which context paths and reports the
// nodes whose inputs changed since the previous Update.
type Bindings struct {
	deps  map[string][]NodeID
	order []string // registration order of paths
	last  map[string]ContextValue
}

// NewBindings creates an empty dependency table.
func NewBindings() *Bindings {
	return &Bindings{
		deps: make(map[string][]NodeID),
		last: make(map[string]ContextValue),
	}
}

// Register records that id depends on path. Duplicate pairs are ignored.
func (b *Bindings) Register(path string, id NodeID) {
	ids, seen := b.deps[path]
	if !seen {
		b.order = append(b.order, path)
	}
	for _, existing := range ids {
		if existing == id {
			return
		}
	}
	b.deps[path] = append(ids, id)
}

// CollectBindings walks t and registers every binding it finds: binding
// attribute values, the string value of a "bind" attribute, and the paths
// named by a Conditional's "if" expression. It adds to the existing table;
// call Clear first when reloading a tree.
func (b *Bindings) CollectBindings(t *Tree) {
	t.Traverse(t.Root(), func(n *Node) {
		for _, key := range slices.Sorted(maps.Keys(n.Attrs)) {
			v := n.Attrs[key]
			if path, ok := v.BindingPath(); ok {
				b.Register(path, n.ID)
				continue
			}
			s, ok := v.AsString()
			if !ok {
				continue
			}
			switch {
			case key == "bind":
				b.Register(s, n.ID)
			case key == "if" && n.Kind == KindConditional:
				for _, path := range conditionPaths(s) {
					b.Register(path, n.ID)
				}
			}
		}
	})
}

// Update compares every registered path against the value seen by the
// previous Update and returns the nodes depending on changed paths, each
// once, in registration order. A path that appears for the first time counts
// as changed, and so does a path that disappears after having a value.
func (b *Bindings) Update(ctx *Context) []NodeID {
	var dirty []NodeID
	marked := make(map[NodeID]bool)

	for _, path := range b.order {
		prev, had := b.last[path]
		cur, ok := ctx.Get(path)
		switch {
		case !ok && !had:
			continue
		case !ok:
			delete(b.last, path)
		case had && prev.Equal(cur):
			continue
		default:
			b.last[path] = cur
		}
		for _, id := range b.deps[path] {
			if !marked[id] {
				marked[id] = true
				dirty = append(dirty, id)
			}
		}
	}

	if len(dirty) > 0 {
		debug.Log("bindings: %d dirty nodes", len(dirty))
	}
	return dirty
}

// Dependents returns the nodes registered for path.
func (b *Bindings) Dependents(path string) []NodeID {
	return append([]NodeID(nil), b.deps[path]...)
}

// Paths returns every registered path in registration order.
func (b *Bindings) Paths() []string {
	return append([]string(nil), b.order...)
}

// Clear drops all dependencies and cached values.
func (b *Bindings) Clear() {
	clear(b.deps)
	clear(b.last)
	b.order = b.order[:0]
}

var conditionOperators = strings.NewReplacer(
	"==", " ", "!=", " ", ">=", " ", "<=", " ",
	"&&", " ", "||", " ",
	">", " ", "<", " ", "!", " ", "(", " ", ")", " ",
)

// conditionPaths extracts the binding paths referenced by a condition
// expression. Literals, logical keywords and operators are dropped.
func conditionPaths(expr string) []string {
	var paths []string
	for _, word := range strings.Fields(conditionOperators.Replace(stripQuoted(expr))) {
		switch strings.ToLower(word) {
		case "true", "false", "and", "or", "not":
			continue
		}
		if _, err := strconv.ParseFloat(word, 64); err == nil {
			continue
		}
		paths = append(paths, word)
	}
	return paths
}

// stripQuoted blanks out quoted string literals.
func stripQuoted(expr string) string {
	var sb strings.Builder
	var quote byte
	for i := 0; i < len(expr); i++ {
		ch := expr[i]
		switch {
		case quote != 0:
			if ch == quote {
				quote = 0
			}
		case ch == '"' || ch == '\'':
			quote = ch
			sb.WriteByte(' ')
		default:
			sb.WriteByte(ch)
		}
	}
	return sb.String()
}
