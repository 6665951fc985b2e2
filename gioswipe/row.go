// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: gioswipe/row.go
// Summary: Gio host for the swipe control.
// Usage: Wrap 1-3 layout.Widget values in Surfaces, build a Row and call
// Layout every frame. The last surface is the draggable foreground.

package gioswipe

import (
	"image"
	"time"

	"gioui.org/f32"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"

	"github.com/framegrace/texelswipe/swipe"
)

// Surface adapts a layout.Widget to swipe.Surface. Its size follows the
// constraints of the enclosing Row.
type Surface struct {
	Widget layout.Widget

	visible bool
	offset  float32
	size    image.Point
}

func NewSurface(w layout.Widget) *Surface {
	return &Surface{Widget: w, visible: true}
}

func (s *Surface) Show()               { s.visible = true }
func (s *Surface) Hide()               { s.visible = false }
func (s *Surface) Visible() bool       { return s.visible }
func (s *Surface) SetOffset(x float32) { s.offset = x }
func (s *Surface) Offset() float32     { return s.offset }
func (s *Surface) Width() float32      { return float32(s.size.X) }

// Contains ignores the offset: the row area stays grabbable once revealed.
func (s *Surface) Contains(x, y float32) bool {
	return s.visible &&
		x >= 0 && x < float32(s.size.X) &&
		y >= 0 && y < float32(s.size.Y)
}

func (s *Surface) layout(gtx layout.Context) {
	if !s.visible || s.Widget == nil {
		return
	}
	defer op.Offset(f32.Pt(s.offset, 0)).Push(gtx.Ops).Pop()
	gtx.Constraints = layout.Exact(s.size)
	s.Widget(gtx)
}

// Row lays out a swipe control. It is driven entirely from Layout.
type Row struct {
	ctl      *swipe.Control
	surfaces []*Surface
	now      time.Time
}

// NewRow builds a row over surfaces, foreground last. Unless opts.Now is
// set, animations run on the frame time passed to Layout.
func NewRow(surfaces []*Surface, opts swipe.Options) (*Row, error) {
	r := &Row{surfaces: surfaces}
	list := make([]swipe.Surface, len(surfaces))
	for i, s := range surfaces {
		if s == nil {
			return nil, swipe.ConfigurationError.New("surface %d is nil", i)
		}
		list[i] = s
	}
	if opts.Now == nil {
		opts.Now = func() time.Time { return r.now }
	}
	ctl, err := swipe.New(list, opts)
	if err != nil {
		return nil, err
	}
	r.ctl = ctl
	return r, nil
}

// Control exposes the underlying gesture control.
func (r *Row) Control() *swipe.Control { return r.ctl }

// SetListener forwards to the control.
func (r *Row) SetListener(l swipe.Listener) { r.ctl.SetListener(l) }

// Layout handles pending pointer events, advances the snap animation and
// draws backgrounds below the offset foreground.
func (r *Row) Layout(gtx layout.Context) layout.Dimensions {
	size := gtx.Constraints.Max
	r.now = gtx.Now
	for _, s := range r.surfaces {
		s.size = size
	}

	r.update(gtx)
	if r.ctl.Animating() && r.ctl.Tick(gtx.Now) {
		op.InvalidateOp{}.Add(gtx.Ops)
	}

	defer clip.Rect(image.Rectangle{Max: size}).Push(gtx.Ops).Pop()
	pointer.InputOp{
		Tag:   r,
		Grab:  r.ctl.State() == swipe.Dragging,
		Types: pointer.Press | pointer.Drag | pointer.Release | pointer.Cancel,
	}.Add(gtx.Ops)

	for _, s := range r.surfaces {
		s.layout(gtx)
	}
	return layout.Dimensions{Size: size}
}

func (r *Row) update(gtx layout.Context) {
	for _, e := range gtx.Events(r) {
		pe, ok := e.(pointer.Event)
		if !ok {
			continue
		}
		x, y := pe.Position.X, pe.Position.Y
		switch pe.Type {
		case pointer.Press:
			if pe.Source == pointer.Mouse && !pe.Buttons.Contain(pointer.ButtonPrimary) {
				r.ctl.Cancel()
				continue
			}
			r.ctl.Down(x, y)
		case pointer.Drag:
			r.ctl.Move(x, y)
		case pointer.Release:
			r.ctl.Up(x, y)
		case pointer.Cancel:
			r.ctl.Cancel()
		}
	}
}
