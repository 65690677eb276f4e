// SPDX-License-Identifier: Unlicense OR MIT

// Package layout defines the result tree produced by an overlay
// layout pass and the read view used to traverse it during event
// handling and drawing.
package layout

import (
	"scrim.dev/scrim/f32"
)

// A Node is the computed layout of an overlay: its bounds plus the
// nodes of its children. Bounds are absolute; the layout pass that
// produces a Node bakes the overlay's anchor position in.
type Node struct {
	bounds   f32.Rectangle
	children []Node
}

// NewNode returns a Node with the given bounds and children.
func NewNode(bounds f32.Rectangle, children ...Node) Node {
	return Node{bounds: bounds, children: children}
}

// Bounds returns the node's rectangle.
func (n Node) Bounds() f32.Rectangle {
	return n.bounds
}

// Children returns the layout nodes of the children.
func (n Node) Children() []Node {
	return n.children
}

// Layout is a translated read view over a Node. The zero offset view
// reads the tree exactly as the layout pass produced it; a parent
// that re-anchors a subtree traverses it through an offset view.
type Layout struct {
	offset f32.Point
	node   *Node
}

// New returns the view over node with no translation.
func New(node *Node) Layout {
	return Layout{node: node}
}

// WithOffset returns the view over node translated by offset.
func WithOffset(offset f32.Point, node *Node) Layout {
	return Layout{offset: offset, node: node}
}

// Bounds returns the viewed node's rectangle, translated.
func (l Layout) Bounds() f32.Rectangle {
	return l.node.bounds.Add(l.offset)
}

// Position returns the top left corner of Bounds.
func (l Layout) Position() f32.Point {
	return l.node.bounds.Min.Add(l.offset)
}

// Children returns views over the node's children, carrying the
// same translation.
func (l Layout) Children() []Layout {
	children := make([]Layout, len(l.node.children))
	for i := range l.node.children {
		children[i] = Layout{offset: l.offset, node: &l.node.children[i]}
	}
	return children
}
