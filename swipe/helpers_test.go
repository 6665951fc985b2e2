// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package swipe

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type fakeSurface struct {
	name    string
	visible bool
	offset  float32
	width   float32
	height  float32

	shows       int
	hides       int
	everVisible bool
}

func newFakeSurface(name string, width float32) *fakeSurface {
	return &fakeSurface{name: name, width: width, height: 10, visible: true}
}

func (s *fakeSurface) Show() {
	s.shows++
	s.visible = true
	s.everVisible = true
}

func (s *fakeSurface) Hide() {
	s.hides++
	s.visible = false
}

func (s *fakeSurface) Visible() bool       { return s.visible }
func (s *fakeSurface) SetOffset(x float32) { s.offset = x }
func (s *fakeSurface) Offset() float32     { return s.offset }
func (s *fakeSurface) Width() float32      { return s.width }
func (s *fakeSurface) Contains(x, y float32) bool {
	return s.visible && x >= 0 && x < s.width && y >= 0 && y < s.height
}

type recorder struct {
	calls []string
}

func (r *recorder) SwipedToLeft()  { r.calls = append(r.calls, "left") }
func (r *recorder) SwipedToRight() { r.calls = append(r.calls, "right") }

type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock { return &fakeClock{now: time.Unix(1700000000, 0)} }

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) time.Time {
	c.now = c.now.Add(d)
	return c.now
}

type fixture struct {
	t        *testing.T
	ctrl     *Control
	surfaces []*fakeSurface
	clock    *fakeClock
	rec      *recorder
	frames   int
}

// newFixture builds a control over count surfaces of the given width. The
// last surface is the draggable one.
func newFixture(t *testing.T, count int, allowance Allowance, width float32) *fixture {
	t.Helper()
	f := &fixture{t: t, clock: newFakeClock(), rec: &recorder{}}
	var list []Surface
	for i := 0; i < count; i++ {
		s := newFakeSurface(surfaceName(i, count), width)
		f.surfaces = append(f.surfaces, s)
		list = append(list, s)
	}
	ctrl, err := New(list, Options{
		Allowance:      allowance,
		Logger:         zaptest.NewLogger(t),
		Now:            f.clock.Now,
		OnFrameRequest: func() { f.frames++ },
	})
	require.NoError(t, err)
	ctrl.SetListener(f.rec)
	f.ctrl = ctrl
	return f
}

func surfaceName(i, count int) string {
	if i == count-1 {
		return "fg"
	}
	return []string{"bg0", "bg1"}[i]
}

func (f *fixture) fg() *fakeSurface { return f.surfaces[len(f.surfaces)-1] }

func (f *fixture) bg(i int) *fakeSurface { return f.surfaces[i] }

// drag performs down at fromX, moves through xs and releases at the last one.
func (f *fixture) drag(fromX float32, xs ...float32) {
	f.t.Helper()
	require.True(f.t, f.ctrl.Down(fromX, 5))
	last := fromX
	for _, x := range xs {
		f.ctrl.Move(x, 5)
		last = x
	}
	f.ctrl.Up(last, 5)
}

// settle ticks the animation until it finishes.
func (f *fixture) settle() {
	f.t.Helper()
	for i := 0; i < 100 && f.ctrl.Tick(f.clock.Advance(16*time.Millisecond)); i++ {
	}
	require.False(f.t, f.ctrl.Animating(), "animation did not finish")
}
