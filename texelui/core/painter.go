package core

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Cell is one character cell of a rendered frame.
type Cell struct {
	Ch    rune
	Style tcell.Style
}

// Rect is an integer rectangle in screen cells.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Intersect returns the overlap of r and o (zero-sized when disjoint).
func (r Rect) Intersect(o Rect) Rect {
	x0, y0 := max(r.X, o.X), max(r.Y, o.Y)
	x1, y1 := min(r.X+r.W, o.X+o.W), min(r.Y+r.H, o.Y+o.H)
	if x1 <= x0 || y1 <= y0 {
		return Rect{X: x0, Y: y0}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Painter writes into a frame buffer, clipped to a rectangle.
type Painter struct {
	buf  [][]Cell
	clip Rect
}

func NewPainter(buf [][]Cell, clip Rect) *Painter {
	return &Painter{buf: buf, clip: clip}
}

// WithClip returns a painter restricted to the overlap of r and the current clip.
func (p *Painter) WithClip(r Rect) *Painter {
	return &Painter{buf: p.buf, clip: p.clip.Intersect(r)}
}

// Clip returns the current clip rectangle.
func (p *Painter) Clip() Rect { return p.clip }

func (p *Painter) SetCell(x, y int, ch rune, style tcell.Style) {
	if !p.clip.Contains(x, y) {
		return
	}
	if y < 0 || y >= len(p.buf) || x < 0 || x >= len(p.buf[y]) {
		return
	}
	p.buf[y][x] = Cell{Ch: ch, Style: style}
}

func (p *Painter) Fill(r Rect, ch rune, style tcell.Style) {
	r = r.Intersect(p.clip)
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			p.SetCell(x, y, ch, style)
		}
	}
}

// DrawText writes s starting at (x, y) and returns the number of cells used.
// Wide runes take two cells; the second is left blank.
func (p *Painter) DrawText(x, y int, s string, style tcell.Style) int {
	col := x
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		p.SetCell(col, y, r, style)
		for i := 1; i < w; i++ {
			p.SetCell(col+i, y, ' ', style)
		}
		col += w
	}
	return col - x
}

// DrawBorder outlines r using charset (h, v, tl, tr, bl, br).
func (p *Painter) DrawBorder(r Rect, style tcell.Style, charset [6]rune) {
	if r.W < 2 || r.H < 2 {
		return
	}
	x1, y1 := r.X+r.W-1, r.Y+r.H-1
	for x := r.X + 1; x < x1; x++ {
		p.SetCell(x, r.Y, charset[0], style)
		p.SetCell(x, y1, charset[0], style)
	}
	for y := r.Y + 1; y < y1; y++ {
		p.SetCell(r.X, y, charset[1], style)
		p.SetCell(x1, y, charset[1], style)
	}
	p.SetCell(r.X, r.Y, charset[2], style)
	p.SetCell(x1, r.Y, charset[3], style)
	p.SetCell(r.X, y1, charset[4], style)
	p.SetCell(x1, y1, charset[5], style)
}
