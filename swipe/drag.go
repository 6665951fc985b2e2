// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: swipe/drag.go
// Summary: Gesture state machine turning pointer samples into drag sessions,
// live reveal updates and a commit or cancel decision on release.

package swipe

import (
	"math"

	"go.uber.org/zap"
)

// State is the gesture state machine state.
type State int

const (
	Idle State = iota
	Deciding
	Dragging
	Releasing
	Cancelled
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Deciding:
		return "deciding"
	case Dragging:
		return "dragging"
	case Releasing:
		return "releasing"
	case Cancelled:
		return "cancelled"
	}
	return "unknown"
}

// commitEpsilon absorbs rounding in fraction*width so that a release exactly
// on the threshold commits.
const commitEpsilon = 1e-6

// session lives from a qualifying touch-down to release or cancel.
type session struct {
	originX, originY float32
	currentX         float32
	base             float32 // foreground offset at touch-down
	offset           float32
	dir              Direction
}

type dragHelper struct {
	surfaces stack
	policy   Allowance
	reveal   *revealer
	anim     *Animator
	opts     Options
	log      *zap.Logger
	notify   func(Direction)
	state    State
	session  *session
	resting  Resting
	// pending is the committed side whose notification has not fired yet.
	pending Direction
}

func (h *dragHelper) transition(to State) {
	if h.state == to {
		return
	}
	h.log.Debug("state", zap.Stringer("from", h.state), zap.Stringer("to", to))
	h.state = to
}

func (h *dragHelper) ignore(ev Event, reason string) bool {
	mon.Counter("swipe_ignored_input").Inc(1)
	h.log.Debug("ignored input", zap.Stringer("event", ev), zap.String("reason", reason))
	return false
}

func (h *dragHelper) onDown(x, y float32) bool {
	ev := Event{Kind: PointerDown, X: x, Y: y}
	fg := h.surfaces.draggable()
	switch {
	case fg == nil:
		return h.ignore(ev, "empty stack")
	case h.session != nil:
		return h.ignore(ev, "pointer already down")
	case !fg.Contains(x, y):
		return h.ignore(ev, "outside draggable surface")
	}

	// The new session owns the offset from here on.
	h.anim.Stop()
	base := fg.Offset()
	h.session = &session{originX: x, originY: y, currentX: x, base: base, offset: base}
	h.transition(Deciding)
	return true
}

// lockFor picks the session direction once the dead zone is crossed.
// Sessions that start away from closed stay on the side they started on.
func (h *dragHelper) lockFor(s *session, dx float32) Direction {
	if d := directionOf(s.base); d != Undecided {
		return d
	}
	return directionOf(dx)
}

func (h *dragHelper) beyondDeadZone(dx float32) bool {
	return float32(math.Abs(float64(dx))) > h.opts.MoveThreshold
}

func (h *dragHelper) onMove(x, y float32) bool {
	s := h.session
	if s == nil {
		return h.ignore(Event{Kind: PointerMove, X: x, Y: y}, "no session")
	}
	s.currentX = x
	dx := x - s.originX

	if h.state == Deciding {
		if !h.beyondDeadZone(dx) {
			return true
		}
		dir := h.lockFor(s, dx)
		if !h.policy.Allowed(dir) {
			// Stay undecided; a later sample may go the allowed way.
			return true
		}
		s.dir = dir
		mon.Counter("swipe_session").Inc(1)
		h.log.Debug("direction locked", zap.Stringer("dir", dir))
		h.transition(Dragging)
	}

	if h.state != Dragging {
		return true
	}
	s.offset = h.clamp(s.dir, s.base+dx)
	h.surfaces.draggable().SetOffset(s.offset)
	origin := s.originX - s.base
	h.reveal.onMove(origin, origin+s.offset)
	return true
}

// clamp keeps offset on the locked side and within one surface width.
func (h *dragHelper) clamp(dir Direction, offset float32) float32 {
	w := h.surfaces.width()
	lo, hi := float32(0), float32(0)
	switch dir {
	case Left:
		lo = -w
	case Right:
		hi = w
	}
	if offset < lo {
		return lo
	}
	if offset > hi {
		return hi
	}
	return offset
}

func (h *dragHelper) onUp(x, y float32) bool {
	s := h.session
	if s == nil {
		return h.ignore(Event{Kind: PointerUp, X: x, Y: y}, "no session")
	}
	dragged := h.state == Dragging
	h.transition(Releasing)
	h.session = nil

	if !dragged {
		// A tap: settle wherever the last commit left us.
		h.settle(h.resting, false)
		h.transition(Idle)
		return true
	}

	target := Closed
	w := float64(h.surfaces.width())
	mon.IntVal("swipe_release_offset").Observe(int64(s.offset))
	if math.Abs(float64(s.offset)) >= h.opts.CommitFraction*w-commitEpsilon && w > 0 {
		target = restingFor(s.dir)
	}
	commit := target != Closed
	if commit {
		mon.Counter("swipe_commit").Inc(1)
	} else {
		mon.Counter("swipe_cancel").Inc(1)
	}
	h.log.Debug("release",
		zap.Float32("offset", s.offset),
		zap.Stringer("target", target),
		zap.Bool("commit", commit))
	h.settle(target, commit)
	h.transition(Idle)
	return true
}

// settle hands the foreground to the animator. Listener dispatch for a commit
// waits for the tween to finish. A commit whose tween is interrupted stays
// pending until the control comes to rest on that side again.
func (h *dragHelper) settle(target Resting, commit bool) {
	h.resting = target
	if commit {
		h.pending = target.Direction()
	} else if target.Direction() != h.pending {
		h.pending = Undecided
	}
	if dir := target.Direction(); dir != Undecided {
		h.reveal.show(dir)
	}
	h.anim.AnimateTo(target.Offset(h.surfaces.width()), h.opts.Now(), func() {
		if target == Closed {
			h.reveal.onReset()
		}
		h.deliver(target)
	})
}

// deliver fires the pending notification once the control rests on its side.
func (h *dragHelper) deliver(at Resting) {
	dir := h.pending
	if dir == Undecided || at.Direction() != dir {
		return
	}
	h.pending = Undecided
	if h.notify != nil {
		h.notify(dir)
	}
}

// onCancel restores the last resting position. Only a commit still pending
// from an interrupted snap is announced.
func (h *dragHelper) onCancel() bool {
	if h.session == nil {
		return h.ignore(Event{Kind: PointerCancel}, "no session")
	}
	h.transition(Cancelled)
	h.session = nil
	h.restore()
	h.transition(Idle)
	return true
}

func (h *dragHelper) restore() {
	h.anim.Stop()
	h.surfaces.draggable().SetOffset(h.resting.Offset(h.surfaces.width()))
	if dir := h.resting.Direction(); dir != Undecided {
		h.reveal.show(dir)
	} else {
		h.reveal.onReset()
	}
	h.deliver(h.resting)
}

// isDragAction reports, without side effects, whether ev continues the
// current session as a horizontal drag.
func (h *dragHelper) isDragAction(ev Event) bool {
	s := h.session
	if s == nil || ev.Kind != PointerMove {
		return false
	}
	if h.state == Dragging {
		return true
	}
	dx := ev.X - s.originX
	return h.beyondDeadZone(dx) && h.policy.Allowed(h.lockFor(s, dx))
}

// abort drops the session without touching the surfaces.
func (h *dragHelper) abort() {
	if h.session != nil {
		h.log.Debug("session aborted")
	}
	h.session = nil
	h.transition(Idle)
}

func (h *dragHelper) onReset() {
	h.anim.Stop()
	h.abort()
	h.resting = Closed
	h.pending = Undecided
	if fg := h.surfaces.draggable(); fg != nil {
		fg.SetOffset(0)
	}
}
