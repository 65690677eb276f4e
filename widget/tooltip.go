// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image/color"

	"golang.org/x/image/colornames"

	"scrim.dev/scrim/f32"
	"scrim.dev/scrim/io/clipboard"
	"scrim.dev/scrim/io/event"
	"scrim.dev/scrim/layout"
	"scrim.dev/scrim/overlay"
)

// Tooltip is a text bubble overlay. It is purely informational: it
// ignores every event and never emits a message of its type
// parameter M, so input falls through to whatever is beneath it.
type Tooltip[M any] struct {
	Style TooltipStyle

	text string
}

// TooltipStyle configures the appearance of a Tooltip.
type TooltipStyle struct {
	TextSize float32
	Inset    float32
	Fg       color.NRGBA
	Bg       color.NRGBA
}

// DefaultTooltipStyle returns the style tooltips are created with.
func DefaultTooltipStyle() TooltipStyle {
	return TooltipStyle{
		TextSize: 13,
		Inset:    3,
		Fg:       color.NRGBA(colornames.White),
		Bg:       color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xe6},
	}
}

// NewTooltip returns a tooltip showing text.
func NewTooltip[M any](text string) *Tooltip[M] {
	return &Tooltip[M]{Style: DefaultTooltipStyle(), text: text}
}

// Layout sizes the bubble to its text, clamped to bounds.
func (t *Tooltip[M]) Layout(renderer overlay.Renderer, bounds f32.Size, position f32.Point) layout.Node {
	sz := measureText(renderer, t.text, t.Style.TextSize)
	sz.Width += 2 * t.Style.Inset
	sz.Height += 2 * t.Style.Inset
	if sz.Width > bounds.Width {
		sz.Width = bounds.Width
	}
	if sz.Height > bounds.Height {
		sz.Height = bounds.Height
	}
	return layout.NewNode(sz.Rect(position))
}

// OnEvent ignores every event.
func (t *Tooltip[M]) OnEvent(event.Event, layout.Layout, f32.Point, *[]M, overlay.Renderer, clipboard.Clipboard) event.Interaction {
	return event.Ignored
}

// Draw hands the bubble to the renderer, or substitutes a
// Placeholder when the capability is missing.
func (t *Tooltip[M]) Draw(renderer overlay.Renderer, defaults overlay.Defaults, lay layout.Layout, cursor f32.Point) overlay.Output {
	r, ok := renderer.(TooltipRenderer)
	if !ok {
		return Placeholder{Bounds: lay.Bounds()}
	}
	return r.DrawTooltip(defaults, TooltipView{
		Bounds: lay.Bounds(),
		Text:   t.text,
		Style:  t.Style,
	})
}

// HashLayout fingerprints the anchor, the spacing style and the
// text.
func (t *Tooltip[M]) HashLayout(h *overlay.Hasher, position f32.Point) {
	h.WritePoint(position)
	h.WriteFloat32(t.Style.TextSize)
	h.WriteFloat32(t.Style.Inset)
	h.WriteString(t.text)
}
