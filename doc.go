// Package ui provides a declarative UI toolkit for game HUDs and tool panels.
//
// Users import this single package for the complete public API: loading .ui
// source or compiled .uib files, computing layout, binding runtime data,
// dispatching input and drawing onto a host-provided Surface.
package ui
