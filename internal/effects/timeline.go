// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/effects/timeline.go
// Summary: Per-key animation timeline with easing, driven by an explicit frame clock.
// Usage: Snap animations sample it on every frame tick with the host's notion of "now".
// Notes: Callers pass the time in; the timeline never reads the wall clock itself.

package effects

import (
	"sync"
	"time"
)

// EasingFunc maps progress [0,1] to eased progress [0,1].
type EasingFunc func(progress float32) float32

var (
	// EaseLinear - No easing, constant speed
	EaseLinear EasingFunc = func(t float32) float32 { return t }

	// EaseSmoothstep - Smooth S-curve (default)
	EaseSmoothstep EasingFunc = func(t float32) float32 {
		return t * t * (3.0 - 2.0*t)
	}

	// EaseOutCubic - Cubic ease-out
	EaseOutCubic EasingFunc = func(t float32) float32 {
		t1 := t - 1.0
		return t1*t1*t1 + 1.0
	}

	// EaseInOut - Quadratic ease-in-out
	EaseInOut EasingFunc = func(t float32) float32 {
		if t < 0.5 {
			return 2 * t * t
		}
		return 1 - 2*(1-t)*(1-t)
	}
)

var easingByName = map[string]EasingFunc{
	"linear":         EaseLinear,
	"smoothstep":     EaseSmoothstep,
	"ease-in-out":    EaseInOut,
	"ease-out-cubic": EaseOutCubic,
}

// Easing looks up an easing curve by its config name. The empty name
// selects smoothstep.
func Easing(name string) (EasingFunc, bool) {
	if name == "" {
		return EaseSmoothstep, true
	}
	f, ok := easingByName[name]
	return f, ok
}

// AnimateOptions configures a single transition.
type AnimateOptions struct {
	Duration time.Duration // 0 = jump to target
	Easing   EasingFunc    // nil = timeline default
}

type keyState struct {
	start     float32
	target    float32
	startTime time.Time
	duration  time.Duration
	easing    EasingFunc
}

// Timeline keeps one transition per key.
type Timeline struct {
	mu            sync.Mutex
	states        map[interface{}]*keyState
	defaultEasing EasingFunc
}

// NewTimeline creates a timeline using easing for transitions that don't
// specify their own. A nil easing selects EaseSmoothstep.
func NewTimeline(easing EasingFunc) *Timeline {
	if easing == nil {
		easing = EaseSmoothstep
	}
	return &Timeline{
		states:        make(map[interface{}]*keyState),
		defaultEasing: easing,
	}
}

// Set pins key at value with no transition in progress.
func (tl *Timeline) Set(key interface{}, value float32) {
	tl.mu.Lock()
	defer tl.mu.Unlock()
	tl.states[key] = &keyState{start: value, target: value}
}

// AnimateAt starts a transition for key from its value at now towards target.
// Returns the value at now. Unknown keys start from target (no transition).
func (tl *Timeline) AnimateAt(key interface{}, target float32, now time.Time, opts AnimateOptions) float32 {
	tl.mu.Lock()
	defer tl.mu.Unlock()

	state := tl.states[key]
	if state == nil {
		tl.states[key] = &keyState{start: target, target: target}
		return target
	}

	current := tl.computeValue(state, now)
	state.start = current
	state.target = target
	state.startTime = now
	state.duration = opts.Duration
	state.easing = opts.Easing

	if opts.Duration <= 0 || current == target {
		state.start = target
		state.duration = 0
		return target
	}
	return current
}

// ValueAt returns the value of key at now, or 0 for unknown keys.
func (tl *Timeline) ValueAt(key interface{}, now time.Time) float32 {
	tl.mu.Lock()
	defer tl.mu.Unlock()
	state := tl.states[key]
	if state == nil {
		return 0
	}
	return tl.computeValue(state, now)
}

// DoneAt reports whether the transition for key has reached its target by now.
func (tl *Timeline) DoneAt(key interface{}, now time.Time) bool {
	tl.mu.Lock()
	defer tl.mu.Unlock()
	state := tl.states[key]
	if state == nil || state.duration <= 0 {
		return true
	}
	return !now.Before(state.startTime.Add(state.duration))
}

// Target returns the value key is heading to.
func (tl *Timeline) Target(key interface{}) (float32, bool) {
	tl.mu.Lock()
	defer tl.mu.Unlock()
	state := tl.states[key]
	if state == nil {
		return 0, false
	}
	return state.target, true
}

// Reset forgets key.
func (tl *Timeline) Reset(key interface{}) {
	tl.mu.Lock()
	defer tl.mu.Unlock()
	delete(tl.states, key)
}

// Must be called with lock held.
func (tl *Timeline) computeValue(state *keyState, now time.Time) float32 {
	if state.duration <= 0 {
		return state.target
	}
	if now.Before(state.startTime) {
		return state.start
	}
	elapsed := now.Sub(state.startTime)
	if elapsed >= state.duration {
		return state.target
	}

	progress := float32(elapsed) / float32(state.duration)
	if progress < 0 {
		progress = 0
	} else if progress > 1 {
		progress = 1
	}

	easing := state.easing
	if easing == nil {
		easing = tl.defaultEasing
	}
	return state.start + (state.target-state.start)*easing(progress)
}
