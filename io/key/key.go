// SPDX-License-Identifier: Unlicense OR MIT

// Package key implements key events.
package key

import (
	"strings"
)

// An Event is generated when a key is pressed or released.
type Event struct {
	// Name of the key.
	Name Name
	// Modifiers is the set of active modifiers when the key was pressed.
	Modifiers Modifiers
	// State is the state of the key when the event was fired.
	State State
}

// An EditEvent requests an edit of text content by an input method.
type EditEvent struct {
	Text string
}

// Name is the identifier of a key. For letter and number keys it is
// the key's upper case character; for special keys it is one of the
// Name constants.
type Name string

const (
	NameUpArrow        Name = "↑"
	NameDownArrow      Name = "↓"
	NameLeftArrow      Name = "←"
	NameRightArrow     Name = "→"
	NameReturn         Name = "⏎"
	NameEscape         Name = "⎋"
	NameTab            Name = "⇥"
	NameSpace          Name = "Space"
	NameDeleteBackward Name = "⌫"
)

// Modifiers is a set of modifier keys.
type Modifiers uint32

const (
	// ModCtrl is the ctrl modifier.
	ModCtrl Modifiers = 1 << iota
	// ModCommand is the command modifier.
	ModCommand
	// ModShift is the shift modifier.
	ModShift
	// ModAlt is the alt modifier.
	ModAlt
	// ModSuper is the "logo" modifier.
	ModSuper
)

// State is the state of a key during an event.
type State uint8

const (
	// Press is the state of a pressed key.
	Press State = iota
	// Release is the state of a key that has been released.
	Release
)

func (Event) ImplementsEvent()     {}
func (EditEvent) ImplementsEvent() {}

// Contain reports whether m contains all modifiers in m2.
func (m Modifiers) Contain(m2 Modifiers) bool {
	return m&m2 == m2
}

func (m Modifiers) String() string {
	var strs []string
	if m.Contain(ModCtrl) {
		strs = append(strs, "ModCtrl")
	}
	if m.Contain(ModCommand) {
		strs = append(strs, "ModCommand")
	}
	if m.Contain(ModShift) {
		strs = append(strs, "ModShift")
	}
	if m.Contain(ModAlt) {
		strs = append(strs, "ModAlt")
	}
	if m.Contain(ModSuper) {
		strs = append(strs, "ModSuper")
	}
	return strings.Join(strs, "|")
}

func (s State) String() string {
	switch s {
	case Press:
		return "Press"
	case Release:
		return "Release"
	default:
		panic("unreachable")
	}
}
