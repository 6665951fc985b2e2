package widgets

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/framegrace/texelswipe/texelui/core"
)

// Label renders a single line of text, truncated to its width.
type Label struct {
	core.BaseWidget
	Text  string
	Style tcell.Style
}

func NewLabel(x, y, w, h int, text string) *Label {
	l := &Label{Text: text, Style: tcell.StyleDefault}
	l.SetPosition(x, y)
	if w == 0 {
		w = runewidth.StringWidth(text)
	}
	l.Resize(w, h)
	return l
}

func (l *Label) Draw(p *core.Painter) {
	if l.Rect.W <= 0 || l.Rect.H <= 0 {
		return
	}
	p = p.WithClip(l.Rect)
	p.Fill(l.Rect, ' ', l.Style)
	p.DrawText(l.Rect.X, l.Rect.Y, runewidth.Truncate(l.Text, l.Rect.W, "…"), l.Style)
}
