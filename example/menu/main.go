// SPDX-License-Identifier: Unlicense OR MIT

// Command menu drives one overlay frame cycle against a terminal
// renderer: it lays out a dropdown menu, feeds it synthetic pointer
// events, draws it with lipgloss styling and prints the messages the
// menu emitted.
package main

import (
	"fmt"
	"log"

	"github.com/charmbracelet/lipgloss"

	"scrim.dev/scrim/f32"
	"scrim.dev/scrim/io/event"
	"scrim.dev/scrim/io/pointer"
	"scrim.dev/scrim/layout"
	"scrim.dev/scrim/overlay"
	"scrim.dev/scrim/widget"
)

// termRenderer renders on a character cell grid: one cell per rune,
// one row per item.
type termRenderer struct {
	item    lipgloss.Style
	hovered lipgloss.Style
	frame   lipgloss.Style
}

func newTermRenderer() *termRenderer {
	return &termRenderer{
		item:    lipgloss.NewStyle().Padding(0, 1),
		hovered: lipgloss.NewStyle().Padding(0, 1).Reverse(true),
		frame:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()),
	}
}

func (r *termRenderer) MeasureText(text string, size float32) f32.Size {
	return f32.Size{Width: float32(len([]rune(text))), Height: 1}
}

func (r *termRenderer) DrawMenu(_ overlay.Defaults, view widget.MenuView) overlay.Output {
	width := int(view.Bounds.Dx())
	rows := make([]string, len(view.Items))
	for i, it := range view.Items {
		style := r.item
		if i == view.Hovered {
			style = r.hovered
		}
		rows[i] = style.Width(width).Render(it.Label)
	}
	return r.frame.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (r *termRenderer) DrawTooltip(_ overlay.Defaults, view widget.TooltipView) overlay.Output {
	return r.frame.Render(view.Text)
}

type appMsg struct {
	picked string
}

func main() {
	log.SetFlags(0)

	renderer := newTermRenderer()
	screen := f32.Size{Width: 80, Height: 24}

	menu := widget.NewMenu(
		widget.MenuItem[string]{Label: "Open", Message: "open"},
		widget.MenuItem[string]{Label: "Save", Message: "save"},
		widget.MenuItem[string]{Label: "Quit", Message: "quit"},
	)
	menu.Style.TextSize = 1
	menu.Style.Inset = 0

	// The application speaks appMsg, the menu speaks selection
	// strings; Map bridges the two.
	e := overlay.Map(overlay.New[string](f32.Pt(4, 2), menu), func(sel string) appMsg {
		return appMsg{picked: sel}
	})

	node := e.Layout(renderer, screen)
	lay := layout.New(&node)

	h := overlay.NewHasher()
	e.HashLayout(h)
	log.Printf("layout %v fingerprint %#x", lay.Bounds(), h.Sum64())

	cursor := f32.Pt(5, 3)
	events := []event.Event{
		pointer.Event{Kind: pointer.Move, Position: cursor},
		pointer.Event{Kind: pointer.Press, Buttons: pointer.ButtonPrimary, Position: cursor},
	}
	var msgs []appMsg
	for _, ev := range events {
		in := e.OnEvent(ev, lay, cursor, &msgs, renderer, nil)
		log.Printf("%T -> %v", ev, in)
	}

	out := e.Draw(renderer, nil, lay, cursor)
	fmt.Println(out)

	for _, m := range msgs {
		log.Printf("picked %q", m.picked)
	}

	// An unchanged menu fingerprints identically, so the next frame
	// can skip the layout pass.
	h2 := overlay.NewHasher()
	e.HashLayout(h2)
	if h2.Sum64() == h.Sum64() {
		log.Print("fingerprint unchanged; relayout skipped")
	}
}
