package tree

import (
	"fmt"
	"strings"
)

// Kind is the closed set of component kinds a node can have.
type Kind uint8

const (
	KindContainer   Kind = iota // generic container; the root is always one
	KindPanel                   // stacked container with optional background
	KindButton                  // clickable box with a label
	KindText                    // text run
	KindNumber                  // unsigned number
	KindIcon                    // sprite from the host atlas
	KindProgressBar             // filled bar, value/max
	KindHBox                    // even horizontal split
	KindVBox                    // even vertical split
	KindConditional             // children shown while its "if" holds

	kindCount
)

var kindNames = [...]string{
	KindContainer:   "container",
	KindPanel:       "panel",
	KindButton:      "button",
	KindText:        "text",
	KindNumber:      "number",
	KindIcon:        "icon",
	KindProgressBar: "progress",
	KindHBox:        "hbox",
	KindVBox:        "vbox",
	KindConditional: "if",
}

// componentNames maps every accepted source spelling to its kind.
var componentNames = map[string]Kind{
	"container":   KindContainer,
	"panel":       KindPanel,
	"button":      KindButton,
	"text":        KindText,
	"label":       KindText,
	"number":      KindNumber,
	"icon":        KindIcon,
	"progress":    KindProgressBar,
	"progressbar": KindProgressBar,
	"hbox":        KindHBox,
	"row":         KindHBox,
	"vbox":        KindVBox,
	"column":      KindVBox,
	"if":          KindConditional,
	"conditional": KindConditional,
}

// String returns the canonical source name of the kind.
func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Valid reports whether k is one of the defined kinds.
func (k Kind) Valid() bool {
	return k < kindCount
}

// LookupKind resolves a component name from source, case-insensitively.
func LookupKind(name string) (Kind, bool) {
	k, ok := componentNames[strings.ToLower(name)]
	return k, ok
}
