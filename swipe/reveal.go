// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: swipe/reveal.go
// Summary: Background reveal controller. Keeps at most one background visible,
// matching the sign of the live foreground displacement.

package swipe

type revealer struct {
	surfaces  stack
	policy    Allowance
	threshold float32
	shown     Direction
}

func newRevealer(surfaces stack, policy Allowance, threshold float32) *revealer {
	return &revealer{surfaces: surfaces, policy: policy, threshold: threshold}
}

// onMove recomputes visibility from the displacement currentX - originX.
// Displacements inside the threshold hide both sides.
func (r *revealer) onMove(originX, currentX float32) {
	d := currentX - originX
	switch {
	case d > r.threshold:
		r.show(Right)
	case d < -r.threshold:
		r.show(Left)
	default:
		r.show(Undecided)
	}
}

// show makes the background for d visible and hides the opposite one.
// Undecided hides both. Commands are only sent on change.
func (r *revealer) show(d Direction) {
	if r.shown == d {
		return
	}
	r.shown = d
	r.apply()
}

// onReset hides every background unconditionally.
func (r *revealer) onReset() {
	r.shown = Undecided
	for i := 0; i < len(r.surfaces)-1; i++ {
		r.surfaces[i].Hide()
	}
}

func (r *revealer) apply() {
	count := len(r.surfaces)
	left := r.surfaces.background(r.policy.LeftIndex(count))
	right := r.surfaces.background(r.policy.RightIndex(count))

	// Hide first so a shared index never ends up hidden after a show.
	if left != nil && r.shown != Left {
		left.Hide()
	}
	if right != nil && r.shown != Right {
		right.Hide()
	}
	switch r.shown {
	case Left:
		if left != nil {
			left.Show()
		}
	case Right:
		if right != nil {
			right.Show()
		}
	}
}
