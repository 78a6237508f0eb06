package ui

import (
	"maps"
	"slices"
	"strings"

	"github.com/grindlemire/go-ui/internal/debug"
)

// EventType identifies a kind of input event.
type EventType uint8

const (
	EventClick EventType = iota
	EventHover
	EventMouseMove
	EventKeyPress
	EventScroll
)

var eventTypeNames = [...]string{
	EventClick:     "click",
	EventHover:     "hover",
	EventMouseMove: "mousemove",
	EventKeyPress:  "keypress",
	EventScroll:    "scroll",
}

func (t EventType) String() string {
	if int(t) < len(eventTypeNames) {
		return eventTypeNames[t]
	}
	return "unknown"
}

// handlerAttrs maps handler attribute names to event types.
var handlerAttrs = map[string]EventType{
	"onclick":     EventClick,
	"onhover":     EventHover,
	"onmousemove": EventMouseMove,
	"onkeypress":  EventKeyPress,
	"onscroll":    EventScroll,
}

// Event is one input event delivered by the host.
type Event struct {
	Type EventType
	X, Y float32

	Key   string  // KeyPress
	Delta float32 // Scroll
}

// Handler binds an event type to a command string.
type Handler struct {
	Type    EventType
	Command string
}

// Events holds per-node handlers and the hover state.
type Events struct {
	handlers map[NodeID][]Handler
	hovered  NodeID
	hovering bool
}

// NewEvents creates an empty handler table.
func NewEvents() *Events {
	return &Events{handlers: make(map[NodeID][]Handler)}
}

// Register attaches a handler to id.
func (e *Events) Register(id NodeID, typ EventType, command string) {
	e.handlers[id] = append(e.handlers[id], Handler{Type: typ, Command: command})
}

// CollectHandlers registers every on* attribute in t that holds a string.
func (e *Events) CollectHandlers(t *Tree) {
	t.Traverse(t.Root(), func(n *Node) {
		for _, key := range slices.Sorted(maps.Keys(n.Attrs)) {
			typ, ok := handlerAttrs[strings.ToLower(key)]
			if !ok {
				continue
			}
			if cmd, ok := n.Attrs[key].AsString(); ok {
				e.Register(n.ID, typ, cmd)
			}
		}
	})
}

// Handlers returns the handlers registered for id.
func (e *Events) Handlers(id NodeID) []Handler {
	return append([]Handler(nil), e.handlers[id]...)
}

// Hovered returns the node currently under the pointer, if any.
func (e *Events) Hovered() (NodeID, bool) {
	return e.hovered, e.hovering
}

// Clear drops all handlers and the hover state.
func (e *Events) Clear() {
	clear(e.handlers)
	e.hovered, e.hovering = 0, false
}

// Dispatch routes ev to the node under its position and returns the command
// of the first matching handler. Hover commands fire once, when the pointer
// enters a node. KeyPress and Scroll are not routed, and nothing is routed
// without a layout.
//
// Hit testing sees exactly what l laid out: l must carry the same Context the
// renderer draws with (WithContext or SetContext), otherwise Conditional
// subtrees the renderer hides still receive events.
func (e *Events) Dispatch(ev Event, l *LayoutEngine) (string, bool) {
	switch ev.Type {
	case EventKeyPress, EventScroll:
		return "", false
	}
	if l == nil {
		return "", false
	}

	id, hit := l.HitTest(ev.X, ev.Y)

	if ev.Type == EventHover {
		if !hit {
			e.hovered, e.hovering = 0, false
			return "", false
		}
		if e.hovering && e.hovered == id {
			return "", false
		}
		e.hovered, e.hovering = id, true
	}
	if !hit {
		return "", false
	}

	for _, h := range e.handlers[id] {
		if h.Type == ev.Type {
			debug.Log("events: %s on node %d -> %q", ev.Type, id, h.Command)
			return h.Command, true
		}
	}
	return "", false
}

// Command is a parsed command string of the form "name" or "name:a,b".
type Command struct {
	Name string
	Args []string
}

// ParseCommand splits a command string at the first ':' and the argument
// list at ','. Arguments are trimmed; an empty argument list yields none.
func ParseCommand(s string) Command {
	name, rest, found := strings.Cut(s, ":")
	cmd := Command{Name: strings.TrimSpace(name)}
	if !found || strings.TrimSpace(rest) == "" {
		return cmd
	}
	for _, arg := range strings.Split(rest, ",") {
		cmd.Args = append(cmd.Args, strings.TrimSpace(arg))
	}
	return cmd
}
