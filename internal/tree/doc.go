// Package tree implements the node arena shared by every stage of the toolkit.
//
// A [Tree] owns all of its nodes and addresses them by [NodeID], a monotonically
// increasing integer that is never reused. Nodes hold an ordered list of child ids
// and no parent references, so traversal is strictly top-down and a cycle cannot
// be built through the public API.
//
// Types are re-exported through the root ui package for public consumption.
package tree
