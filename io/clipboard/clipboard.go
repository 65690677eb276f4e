// SPDX-License-Identifier: Unlicense OR MIT

// Package clipboard defines the clipboard capability passed through
// to overlays during event handling.
package clipboard

// Clipboard is read and write access to the system clipboard. The
// capability is optional; overlay event handling accepts a nil
// Clipboard and overlays must tolerate its absence.
type Clipboard interface {
	// Read returns the clipboard text content.
	Read() string
	// Write replaces the clipboard content with text.
	Write(text string)
}

// Buffer is an in-memory Clipboard for tests and headless use.
type Buffer struct {
	text string
}

func (b *Buffer) Read() string {
	return b.text
}

func (b *Buffer) Write(text string) {
	b.text = text
}
