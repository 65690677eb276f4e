// SPDX-License-Identifier: Unlicense OR MIT

package overlay

import (
	"scrim.dev/scrim/f32"
	"scrim.dev/scrim/io/clipboard"
	"scrim.dev/scrim/io/event"
	"scrim.dev/scrim/layout"
)

// Element pairs an overlay with the anchor position at which its
// local layout origin sits. It is the handle the toolkit drives:
// Layout, OnEvent, Draw and HashLayout forward to the overlay with
// the element's current position injected as the anchor.
//
// Element has value semantics. Translate and Map return the derived
// element; the original must not be used afterwards since both share
// the owned overlay.
type Element[M any] struct {
	position f32.Point
	overlay  Overlay[M]
}

// New returns an Element holding overlay anchored at position.
func New[M any](position f32.Point, overlay Overlay[M]) Element[M] {
	return Element[M]{position: position, overlay: overlay}
}

// Position returns the element's anchor position.
func (e Element[M]) Position() f32.Point {
	return e.position
}

// Translate returns the element re-anchored by the displacement v.
// The overlay's internal state is untouched.
func (e Element[M]) Translate(v f32.Point) Element[M] {
	e.position = e.position.Add(v)
	return e
}

// Map returns an element that emits f(m) for every message m the
// wrapped overlay emits, anchored at the same position. f must be
// pure and free of side effects; it may be called any number of
// times per frame and must not itself emit messages.
func Map[A, B any](e Element[A], f func(A) B) Element[B] {
	return Element[B]{
		position: e.position,
		overlay:  &mapOverlay[A, B]{content: e.overlay, mapper: f},
	}
}

// Layout computes the overlay's layout tree in the given bounds,
// anchored at the element's position.
func (e Element[M]) Layout(renderer Renderer, bounds f32.Size) layout.Node {
	return e.overlay.Layout(renderer, bounds, e.position)
}

// OnEvent forwards one input event to the overlay.
func (e Element[M]) OnEvent(ev event.Event, lay layout.Layout, cursor f32.Point, messages *[]M, renderer Renderer, clip clipboard.Clipboard) event.Interaction {
	return e.overlay.OnEvent(ev, lay, cursor, messages, renderer, clip)
}

// Draw draws the overlay.
func (e Element[M]) Draw(renderer Renderer, defaults Defaults, lay layout.Layout, cursor f32.Point) Output {
	return e.overlay.Draw(renderer, defaults, lay, cursor)
}

// HashLayout feeds the overlay's layout fingerprint, anchored at the
// element's position, into h.
func (e Element[M]) HashLayout(h *Hasher) {
	e.overlay.HashLayout(h, e.position)
}

// mapOverlay implements Overlay[B] by delegating to an Overlay[A]
// and rewriting its messages through mapper. Layout, drawing and
// hashing pass through untouched; only the message channel is
// intercepted.
type mapOverlay[A, B any] struct {
	content Overlay[A]
	mapper  func(A) B
}

func (m *mapOverlay[A, B]) Layout(renderer Renderer, bounds f32.Size, position f32.Point) layout.Node {
	return m.content.Layout(renderer, bounds, position)
}

func (m *mapOverlay[A, B]) OnEvent(ev event.Event, lay layout.Layout, cursor f32.Point, messages *[]B, renderer Renderer, clip clipboard.Clipboard) event.Interaction {
	// The wrapped overlay appends to an A-typed queue; buffer its
	// messages locally, then drain them through the mapper in
	// emission order.
	var original []A

	interaction := m.content.OnEvent(ev, lay, cursor, &original, renderer, clip)

	for _, msg := range original {
		*messages = append(*messages, m.mapper(msg))
	}

	return interaction
}

func (m *mapOverlay[A, B]) Draw(renderer Renderer, defaults Defaults, lay layout.Layout, cursor f32.Point) Output {
	return m.content.Draw(renderer, defaults, lay, cursor)
}

func (m *mapOverlay[A, B]) HashLayout(h *Hasher, position f32.Point) {
	m.content.HashLayout(h, position)
}
