// SPDX-License-Identifier: Unlicense OR MIT

/*
Package overlay implements the composition layer for transient
surfaces: menus, tooltips and popups that are positioned atop the
base widget tree, see input events before it, and report user actions
as application defined messages.

An overlay does not persist between frames. Each frame the owning
widget produces a fresh Element, the toolkit runs one
layout/event/draw cycle on it and drops it. Map rewrites the messages
an overlay emits into a parent's message type without the parent
knowing the concrete overlay behind the Element.
*/
package overlay

import (
	"scrim.dev/scrim/f32"
	"scrim.dev/scrim/io/clipboard"
	"scrim.dev/scrim/io/event"
	"scrim.dev/scrim/layout"
)

// Renderer is the drawing backend overlays target. The package never
// inspects it; concrete overlays assert it to the capability
// interfaces they can use.
type Renderer interface{}

// Defaults carries the inherited style values drawing starts from,
// defined by the renderer.
type Defaults interface{}

// Output is the renderer specific product of drawing an overlay.
type Output interface{}

// Overlay is a transient surface parameterized over the message type
// M it emits. Implementations are exclusively owned by the Element
// (or map adapter) wrapping them and need no synchronization; all
// calls happen sequentially on the frame thread.
type Overlay[M any] interface {
	// Layout computes the overlay's layout tree within bounds,
	// anchored at position. It must not mutate observable state.
	Layout(renderer Renderer, bounds f32.Size, position f32.Point) layout.Node

	// OnEvent processes one input event. Emitted messages are
	// appended to messages in emission order; the queue is
	// append-only. clip may be nil. The returned Interaction reports
	// whether the event was consumed.
	OnEvent(e event.Event, lay layout.Layout, cursor f32.Point, messages *[]M, renderer Renderer, clip clipboard.Clipboard) event.Interaction

	// Draw produces the renderer output for the overlay. Drawing is
	// idempotent: it must not mutate the overlay.
	Draw(renderer Renderer, defaults Defaults, lay layout.Layout, cursor f32.Point) Output

	// HashLayout feeds the layout-affecting state of the overlay,
	// including its anchor position, into h. Identical state must
	// feed identical bytes; callers compare digests across frames to
	// skip redundant layout passes.
	HashLayout(h *Hasher, position f32.Point)
}
