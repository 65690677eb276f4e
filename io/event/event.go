// SPDX-License-Identifier: Unlicense OR MIT

// Package event contains the types shared by all input event
// packages: the Event marker interface and the Interaction outcome
// returned when an event is offered to an overlay.
package event

// Event is the marker interface for events.
type Event interface {
	ImplementsEvent()
}

// Interaction is the outcome of offering an event to an overlay. An
// ignored event stays available to handlers below the overlay; a
// captured event does not. The cursor values capture the event and
// additionally request a cursor shape.
type Interaction uint8

const (
	// Ignored means the event was not consumed.
	Ignored Interaction = iota
	// CursorText requests a text selection cursor.
	CursorText
	// CursorPointer requests a pointing hand cursor.
	CursorPointer
	// CursorGrab requests an open hand cursor.
	CursorGrab
	// Captured means the event was consumed.
	Captured
)

// Consumed reports whether the event should be withheld from
// handlers below the overlay.
func (i Interaction) Consumed() bool {
	return i != Ignored
}

// Merge returns the dominant of i and i2: Captured wins over cursor
// requests, which win over Ignored. Overlays with several interactive
// children merge the per-child outcomes with it.
func (i Interaction) Merge(i2 Interaction) Interaction {
	if i2 > i {
		return i2
	}
	return i
}

func (i Interaction) String() string {
	switch i {
	case Ignored:
		return "Ignored"
	case CursorText:
		return "CursorText"
	case CursorPointer:
		return "CursorPointer"
	case CursorGrab:
		return "CursorGrab"
	case Captured:
		return "Captured"
	default:
		panic("unreachable")
	}
}
