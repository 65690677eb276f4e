// SPDX-License-Identifier: Unlicense OR MIT

// Package widget provides the overlay implementations the toolkit
// ships: dropdown menus and tooltips. Both implement overlay.Overlay
// and are driven through overlay.Element.
package widget

import (
	"image/color"

	"golang.org/x/image/colornames"

	"scrim.dev/scrim/f32"
	"scrim.dev/scrim/io/clipboard"
	"scrim.dev/scrim/io/event"
	"scrim.dev/scrim/io/key"
	"scrim.dev/scrim/io/pointer"
	"scrim.dev/scrim/layout"
	"scrim.dev/scrim/overlay"
)

// Menu is a dropdown overlay. Selecting an item, by pointer press or
// by keyboard, emits the item's message. The message type M is the
// vocabulary of the widget that opened the menu; parents with a
// different vocabulary wrap the element with overlay.Map.
type Menu[M any] struct {
	// Style configures colors and spacing. Changing fields that
	// affect layout invalidates the layout fingerprint.
	Style MenuStyle

	items   []MenuItem[M]
	hovered int
}

// MenuItem is one menu entry.
type MenuItem[M any] struct {
	Label   string
	Message M
}

// MenuStyle configures the appearance of a Menu.
type MenuStyle struct {
	TextSize float32
	// Inset is the padding between an item's text and its bounds.
	Inset float32
	Fg    color.NRGBA
	Bg    color.NRGBA
	// HoverBg fills the hovered item.
	HoverBg color.NRGBA
}

// DefaultMenuStyle returns the style menus are created with.
func DefaultMenuStyle() MenuStyle {
	return MenuStyle{
		TextSize: 16,
		Inset:    4,
		Fg:       color.NRGBA(colornames.Black),
		Bg:       color.NRGBA(colornames.White),
		HoverBg:  color.NRGBA(colornames.Lavender),
	}
}

// NewMenu returns a menu over items.
func NewMenu[M any](items ...MenuItem[M]) *Menu[M] {
	return &Menu[M]{
		Style:   DefaultMenuStyle(),
		items:   items,
		hovered: -1,
	}
}

// Hovered returns the index of the hovered item, or -1.
func (m *Menu[M]) Hovered() int {
	return m.hovered
}

// Layout stacks the items vertically at position, sized to the
// widest label and clamped to bounds. Each child node of the result
// is the corresponding item.
func (m *Menu[M]) Layout(renderer overlay.Renderer, bounds f32.Size, position f32.Point) layout.Node {
	var width, itemH float32
	for _, it := range m.items {
		sz := measureText(renderer, it.Label, m.Style.TextSize)
		if sz.Width > width {
			width = sz.Width
		}
		if sz.Height > itemH {
			itemH = sz.Height
		}
	}
	width += 2 * m.Style.Inset
	itemH += 2 * m.Style.Inset
	if width > bounds.Width {
		width = bounds.Width
	}
	total := itemH * float32(len(m.items))
	if total > bounds.Height {
		total = bounds.Height
	}
	root := f32.Size{Width: width, Height: total}.Rect(position)

	children := make([]layout.Node, len(m.items))
	for i := range m.items {
		item := f32.Size{Width: width, Height: itemH}.Rect(
			f32.Pt(position.X, position.Y+float32(i)*itemH),
		)
		children[i] = layout.NewNode(item.Intersect(root))
	}
	return layout.NewNode(root, children...)
}

// OnEvent tracks hover and emits the selected item's message.
func (m *Menu[M]) OnEvent(e event.Event, lay layout.Layout, cursor f32.Point, messages *[]M, renderer overlay.Renderer, clip clipboard.Clipboard) event.Interaction {
	switch e := e.(type) {
	case pointer.Event:
		switch e.Kind {
		case pointer.Move, pointer.Enter, pointer.Drag:
			m.hovered = m.hit(lay, cursor)
			if m.hovered >= 0 {
				return event.CursorPointer
			}
			return event.Ignored
		case pointer.Leave, pointer.Cancel:
			m.hovered = -1
			return event.Ignored
		case pointer.Press:
			if !e.Buttons.Contain(pointer.ButtonPrimary) {
				return event.Ignored
			}
			if i := m.hit(lay, cursor); i >= 0 {
				m.hovered = i
				*messages = append(*messages, m.items[i].Message)
				return event.Captured
			}
			return event.Ignored
		}
	case key.Event:
		if e.State != key.Press {
			return event.Ignored
		}
		switch e.Name {
		case key.NameDownArrow:
			m.step(+1)
			return event.Captured
		case key.NameUpArrow:
			m.step(-1)
			return event.Captured
		case key.NameReturn:
			if m.hovered >= 0 && m.hovered < len(m.items) {
				*messages = append(*messages, m.items[m.hovered].Message)
				return event.Captured
			}
		}
	}
	return event.Ignored
}

// Draw resolves the menu against its layout and hands it to the
// renderer. A renderer without the MenuRenderer capability gets a
// Placeholder instead; drawing never fails.
func (m *Menu[M]) Draw(renderer overlay.Renderer, defaults overlay.Defaults, lay layout.Layout, cursor f32.Point) overlay.Output {
	r, ok := renderer.(MenuRenderer)
	if !ok {
		return Placeholder{Bounds: lay.Bounds()}
	}
	hovered := m.hit(lay, cursor)
	if hovered < 0 {
		hovered = m.hovered
	}
	children := lay.Children()
	items := make([]MenuItemView, len(m.items))
	for i, it := range m.items {
		items[i] = MenuItemView{Bounds: children[i].Bounds(), Label: it.Label}
	}
	return r.DrawMenu(defaults, MenuView{
		Bounds:  lay.Bounds(),
		Items:   items,
		Hovered: hovered,
		Style:   m.Style,
	})
}

// HashLayout fingerprints the anchor, the spacing style and the
// labels. Hover state does not affect layout and is not hashed.
func (m *Menu[M]) HashLayout(h *overlay.Hasher, position f32.Point) {
	h.WritePoint(position)
	h.WriteFloat32(m.Style.TextSize)
	h.WriteFloat32(m.Style.Inset)
	h.WriteUint32(uint32(len(m.items)))
	for _, it := range m.items {
		h.WriteString(it.Label)
	}
}

// hit returns the index of the item under cursor, or -1.
func (m *Menu[M]) hit(lay layout.Layout, cursor f32.Point) int {
	for i, child := range lay.Children() {
		if child.Bounds().Contains(cursor) {
			return i
		}
	}
	return -1
}

// step moves the keyboard hover by delta, wrapping around.
func (m *Menu[M]) step(delta int) {
	if len(m.items) == 0 {
		return
	}
	if m.hovered < 0 {
		if delta > 0 {
			m.hovered = 0
		} else {
			m.hovered = len(m.items) - 1
		}
		return
	}
	m.hovered = (m.hovered + delta + len(m.items)) % len(m.items)
}
