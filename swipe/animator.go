// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: swipe/animator.go
// Summary: Snap animator moving the draggable surface to a resting offset.
// Usage: AnimateTo starts a tween; the host calls Tick once per frame until it returns false.
// Notes: Restarting or stopping drops the pending completion callback.

package swipe

import (
	"time"

	"github.com/framegrace/texelswipe/internal/effects"
)

// Animator tweens the offset of a single surface, with smoothstep easing
// unless configured otherwise.
type Animator struct {
	surface  Surface
	timeline *effects.Timeline
	duration time.Duration
	easing   effects.EasingFunc
	onStart  func()

	active bool
	onDone func()
}

// NewAnimator returns an animator for surface. onStart, if set, is called
// each time a tween begins so the host can schedule frames.
func NewAnimator(surface Surface, duration time.Duration, onStart func()) *Animator {
	return &Animator{
		surface:  surface,
		timeline: effects.NewTimeline(effects.EaseSmoothstep),
		duration: duration,
		onStart:  onStart,
	}
}

// AnimateTo moves the surface from its current offset to target starting at
// now. Any running tween is stopped first. onDone runs once the surface rests
// at target; when there is nothing to animate it runs before AnimateTo returns.
func (a *Animator) AnimateTo(target float32, now time.Time, onDone func()) {
	a.Stop()

	from := a.surface.Offset()
	a.timeline.Set(a, from)
	a.timeline.AnimateAt(a, target, now, effects.AnimateOptions{Duration: a.duration, Easing: a.easing})

	if a.timeline.DoneAt(a, now) {
		a.surface.SetOffset(target)
		if onDone != nil {
			onDone()
		}
		return
	}

	a.active = true
	a.onDone = onDone
	if a.onStart != nil {
		a.onStart()
	}
}

// Tick applies the tween value at now. It returns true while frames are still needed.
func (a *Animator) Tick(now time.Time) bool {
	if !a.active {
		return false
	}
	a.surface.SetOffset(a.timeline.ValueAt(a, now))
	if !a.timeline.DoneAt(a, now) {
		return true
	}

	a.active = false
	done := a.onDone
	a.onDone = nil
	if done != nil {
		done()
	}
	// done may have started another tween.
	return a.active
}

// Stop abandons the running tween where it is, without calling its callback.
func (a *Animator) Stop() {
	a.active = false
	a.onDone = nil
}

// Active reports whether a tween is in flight.
func (a *Animator) Active() bool { return a.active }

// Target returns the offset of the running tween.
func (a *Animator) Target() (float32, bool) {
	if !a.active {
		return 0, false
	}
	return a.timeline.Target(a)
}
