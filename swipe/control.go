// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: swipe/control.go
// Summary: Swipe control composition root: validation, event routing,
// programmatic swipes and listener dispatch.
// Notes: A Control is not safe for concurrent use. Hosts deliver pointer
// events and frame ticks from a single goroutine.

package swipe

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/framegrace/texelswipe/internal/effects"
)

// Listener is told when the control comes to rest on a revealed side.
type Listener interface {
	SwipedToLeft()
	SwipedToRight()
}

// ListenerFuncs adapts plain functions to Listener. Nil fields are skipped.
type ListenerFuncs struct {
	Left  func()
	Right func()
}

func (l ListenerFuncs) SwipedToLeft() {
	if l.Left != nil {
		l.Left()
	}
}

func (l ListenerFuncs) SwipedToRight() {
	if l.Right != nil {
		l.Right()
	}
}

// Control is a swipe-reveal container over 1-3 surfaces.
type Control struct {
	surfaces stack
	opts     Options
	log      *zap.Logger
	reveal   *revealer
	anim     *Animator
	drag     *dragHelper
	listener Listener
}

// New validates the surface stack and options and returns a ready control
// with all backgrounds hidden. Every returned error is a ConfigurationError.
func New(surfaces []Surface, opts Options) (*Control, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	opts = opts.withDefaults()

	n := len(surfaces)
	switch {
	case n == 0 || n > 3:
		return nil, ConfigurationError.Wrap(fmt.Errorf("%w, current surface count=%d", ErrSurfaceCount, n))
	case n == 2 && opts.Allowance == Both:
		return nil, ConfigurationError.Wrap(ErrAmbiguousDirection)
	}
	for i, s := range surfaces {
		if s == nil {
			return nil, ConfigurationError.New("surface %d is nil", i)
		}
	}

	c := &Control{
		surfaces: append(stack(nil), surfaces...),
		opts:     opts,
		log:      opts.Logger.Named("swipe"),
	}
	c.reveal = newRevealer(c.surfaces, opts.Allowance, opts.MoveThreshold)
	c.anim = NewAnimator(c.surfaces.draggable(), opts.SnapDuration, opts.OnFrameRequest)
	c.anim.easing, _ = effects.Easing(opts.Easing)
	c.drag = &dragHelper{
		surfaces: c.surfaces,
		policy:   opts.Allowance,
		reveal:   c.reveal,
		anim:     c.anim,
		opts:     opts,
		log:      c.log,
		notify:   c.notify,
	}

	c.reveal.onReset()
	c.log.Debug("attached",
		zap.Int("surfaces", n),
		zap.Stringer("allowance", opts.Allowance))
	return c, nil
}

// SetListener installs l, replacing any previous listener. Nil removes it.
func (c *Control) SetListener(l Listener) { c.listener = l }

// DraggableSurface returns the foreground surface.
func (c *Control) DraggableSurface() Surface { return c.surfaces.draggable() }

// Allowance returns the configured direction policy.
func (c *Control) Allowance() Allowance { return c.opts.Allowance }

// State returns the gesture state.
func (c *Control) State() State { return c.drag.state }

// Resting returns the last committed resting position.
func (c *Control) Resting() Resting { return c.drag.resting }

// Offset returns the current foreground offset.
func (c *Control) Offset() float32 { return c.surfaces.draggable().Offset() }

// Animating reports whether a snap is in flight.
func (c *Control) Animating() bool { return c.anim.Active() }

// Tick advances the snap animation. It returns true while more frames are needed.
func (c *Control) Tick(now time.Time) bool { return c.anim.Tick(now) }

// Down starts a drag session if (x, y) lands on the draggable surface.
func (c *Control) Down(x, y float32) bool {
	c.log.Debug("pointer", zap.Stringer("event", Event{Kind: PointerDown, X: x, Y: y}))
	return c.drag.onDown(x, y)
}

// Move feeds a pointer sample to the current session.
func (c *Control) Move(x, y float32) bool {
	c.log.Debug("pointer", zap.Stringer("event", Event{Kind: PointerMove, X: x, Y: y}))
	return c.drag.onMove(x, y)
}

// Up ends the current session and snaps to the decided resting position.
func (c *Control) Up(x, y float32) bool {
	c.log.Debug("pointer", zap.Stringer("event", Event{Kind: PointerUp, X: x, Y: y}))
	return c.drag.onUp(x, y)
}

// Cancel aborts the current session, restoring the last resting position.
func (c *Control) Cancel() bool {
	c.log.Debug("pointer", zap.Stringer("event", Event{Kind: PointerCancel}))
	return c.drag.onCancel()
}

// HandleEvent dispatches ev to Down, Move, Up or Cancel. It reports whether
// the event was consumed.
func (c *Control) HandleEvent(ev Event) bool {
	switch ev.Kind {
	case PointerDown:
		return c.Down(ev.X, ev.Y)
	case PointerMove:
		return c.Move(ev.X, ev.Y)
	case PointerUp:
		return c.Up(ev.X, ev.Y)
	case PointerCancel:
		return c.Cancel()
	}
	return false
}

// Intercepts reports whether ev is part of a horizontal drag the control
// owns, so an enclosing container should stop handling it. It has no side effects.
func (c *Control) Intercepts(ev Event) bool { return c.drag.isDragAction(ev) }

// Reset returns to closed immediately: no session, no animation, offset 0,
// backgrounds hidden.
func (c *Control) Reset() {
	c.drag.onReset()
	c.reveal.onReset()
}

// SwipeToLeft reveals the Left background and notifies the listener.
func (c *Control) SwipeToLeft() { c.swipeTo(Left) }

// SwipeToRight reveals the Right background and notifies the listener.
func (c *Control) SwipeToRight() { c.swipeTo(Right) }

func (c *Control) swipeTo(dir Direction) {
	if !c.opts.Allowance.Allowed(dir) {
		c.log.Debug("programmatic swipe not allowed", zap.Stringer("dir", dir))
		return
	}
	c.drag.abort()
	target := restingFor(dir)
	c.drag.resting = target
	c.drag.pending = Undecided
	c.reveal.show(dir)
	c.anim.AnimateTo(target.Offset(c.surfaces.width()), c.opts.Now(), nil)
	mon.Counter("swipe_programmatic").Inc(1)
	c.notify(dir)
}

func (c *Control) notify(dir Direction) {
	c.log.Debug("swiped", zap.Stringer("dir", dir))
	if c.listener == nil {
		return
	}
	switch dir {
	case Left:
		c.listener.SwipedToLeft()
	case Right:
		c.listener.SwipedToRight()
	}
}
