// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"scrim.dev/scrim/f32"
	"scrim.dev/scrim/overlay"
)

// TextMeasurer is the measuring capability widgets ask of a renderer
// during layout.
type TextMeasurer interface {
	// MeasureText returns the size of text rendered at the given
	// text size.
	MeasureText(text string, size float32) f32.Size
}

// MenuRenderer is the drawing capability a renderer provides for
// menu overlays.
type MenuRenderer interface {
	DrawMenu(defaults overlay.Defaults, view MenuView) overlay.Output
}

// TooltipRenderer is the drawing capability a renderer provides for
// tooltip overlays.
type TooltipRenderer interface {
	DrawTooltip(defaults overlay.Defaults, view TooltipView) overlay.Output
}

// MenuView is one frame of a menu, resolved against its layout, as
// handed to the renderer.
type MenuView struct {
	Bounds f32.Rectangle
	Items  []MenuItemView
	// Hovered is the index into Items of the hovered item, or -1.
	Hovered int
	Style   MenuStyle
}

// MenuItemView is one menu entry with its resolved bounds.
type MenuItemView struct {
	Bounds f32.Rectangle
	Label  string
}

// TooltipView is one frame of a tooltip as handed to the renderer.
type TooltipView struct {
	Bounds f32.Rectangle
	Text   string
	Style  TooltipStyle
}

// Placeholder is the draw output substituted when the renderer lacks
// the capability an overlay needs. Drawing cannot fail mid-frame, so
// renderers are expected to paint it as an empty box.
type Placeholder struct {
	Bounds f32.Rectangle
}

// measureText measures through the renderer if it is a TextMeasurer
// and falls back to a coarse estimate otherwise, so layout always
// produces usable bounds.
func measureText(renderer overlay.Renderer, text string, size float32) f32.Size {
	if m, ok := renderer.(TextMeasurer); ok {
		return m.MeasureText(text, size)
	}
	n := float32(len([]rune(text)))
	return f32.Size{Width: n * size * 0.6, Height: size * 1.4}
}
