// Package layout implements the box layout solver.
//
// It supports three container algorithms (stacked, even horizontal split, even
// vertical split), padding, gap, min/max constraints, pixel and percentage
// dimensions, and absolute positioning. There is no flex weighting: space along
// a box's main axis is always shared equally.
// Types are re-exported through the root ui package for public consumption.
//
// The main entry point is [Calculate], which takes a [Layoutable] tree and
// computes absolute [Rect] positions for each visible node. Every call
// recomputes the whole tree.
package layout
