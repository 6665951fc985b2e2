package widgets

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/framegrace/texelswipe/texelui/core"
)

// Card is a bordered text panel that a SwipeRow can stack and slide.
// It satisfies swipe.Surface; Contains and Width work in row-local cells.
type Card struct {
	core.BaseWidget
	Title   string
	Text    string
	Style   tcell.Style
	Charset [6]rune

	visible bool
	offset  float32
}

func NewCard(title, text string, style tcell.Style) *Card {
	return &Card{Title: title, Text: text, Style: style, Charset: SingleLine, visible: true}
}

func (c *Card) Show()               { c.visible = true }
func (c *Card) Hide()               { c.visible = false }
func (c *Card) Visible() bool       { return c.visible }
func (c *Card) Offset() float32     { return c.offset }
func (c *Card) Width() float32      { return float32(c.Rect.W) }
func (c *Card) SetOffset(x float32) { c.offset = x }

// Contains hit-tests the card's closed slot, so a card slid aside still
// answers presses anywhere in its row.
func (c *Card) Contains(x, y float32) bool {
	return c.visible &&
		x >= 0 && x < float32(c.Rect.W) &&
		y >= 0 && y < float32(c.Rect.H)
}

// shift is the horizontal offset rounded to whole cells.
func (c *Card) shift() int {
	return int(math.Round(float64(c.offset)))
}

// Bounds returns the on-screen rect after applying the offset.
func (c *Card) Bounds() core.Rect {
	r := c.Rect
	r.X += c.shift()
	return r
}

func (c *Card) Draw(p *core.Painter) {
	if !c.visible {
		return
	}
	r := c.Bounds()
	p.Fill(r, ' ', c.Style)
	p.DrawBorder(r, c.Style, c.Charset)
	inner := r.W - 2
	if inner <= 0 {
		return
	}
	if c.Title != "" {
		p.DrawText(r.X+1, r.Y, runewidth.Truncate(c.Title, inner, "…"), c.Style.Bold(true))
	}
	if c.Text != "" && r.H > 2 {
		text := runewidth.Truncate(c.Text, inner, "…")
		col := r.X + 1 + (inner-runewidth.StringWidth(text))/2
		p.DrawText(col, r.Y+r.H/2, text, c.Style)
	}
}
