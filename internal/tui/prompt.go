// internal/tui/prompt.go
package tui

import (
	"github.com/bethropolis/worldedit/internal/theme"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// Prompter asks modal questions on the bottom line of the screen. It reads
// events synchronously through next, so it must run on the goroutine that
// owns the event stream.
type Prompter struct {
	screen tcell.Screen
	theme  *theme.Theme
	next   func() tcell.Event
	// redraw repaints the screen under the prompt after a resize.
	redraw func()
}

// NewPrompter creates a prompter. next returns nil when no more events will come.
func NewPrompter(screen tcell.Screen, th *theme.Theme, next func() tcell.Event, redraw func()) *Prompter {
	return &Prompter{screen: screen, theme: th, next: next, redraw: redraw}
}

// Confirm asks a yes/no question. Anything but y declines.
func (p *Prompter) Confirm(question string) bool {
	text := question + " (y/n)"
	defer p.screen.HideCursor()
	for {
		p.drawLine(text)
		switch ev := p.next().(type) {
		case nil:
			return false
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyRune && (ev.Rune() == 'y' || ev.Rune() == 'Y'):
				return true
			case ev.Key() == tcell.KeyRune && (ev.Rune() == 'n' || ev.Rune() == 'N'),
				ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyEnter, ev.Key() == tcell.KeyCtrlC:
				return false
			}
		case *tcell.EventResize:
			p.resize()
		}
	}
}

// Input reads a line of text, prefilled with def. Escape cancels.
func (p *Prompter) Input(prompt, def string) (string, bool) {
	text := []rune(def)
	defer p.screen.HideCursor()
	for {
		p.drawLine(prompt + ": " + string(text))
		switch ev := p.next().(type) {
		case nil:
			return "", false
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEnter:
				return string(text), true
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return "", false
			case tcell.KeyBackspace, tcell.KeyBackspace2:
				if len(text) > 0 {
					text = text[:len(text)-1]
				}
			case tcell.KeyCtrlU:
				text = text[:0]
			case tcell.KeyRune:
				text = append(text, ev.Rune())
			}
		case *tcell.EventResize:
			p.resize()
		}
	}
}

func (p *Prompter) resize() {
	p.screen.Sync()
	if p.redraw != nil {
		p.redraw()
	}
}

func (p *Prompter) drawLine(text string) {
	width, height := p.screen.Size()
	if width <= 0 || height <= 0 {
		return
	}
	y := height - 1
	style := p.theme.GetStyle("Prompt")
	for x := 0; x < width; x++ {
		p.screen.SetContent(x, y, ' ', nil, style)
	}
	drawText(p.screen, 0, y, width, text, style)
	col := uniseg.StringWidth(text)
	if col >= width {
		col = width - 1
	}
	p.screen.ShowCursor(col, y)
	p.screen.Show()
}
