// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: swipe/direction.go
// Summary: Direction policy: which sides may be swiped and which background each side uncovers.
// Notes: Directions are named after the motion of the foreground. A Right swipe
// moves the draggable surface towards +x and rests at +W; a Left swipe rests at -W.

package swipe

import (
	"fmt"
	"strings"
)

// NoIndex marks a side without a background surface.
const NoIndex = -1

// Direction is the horizontal direction a drag session is locked to.
type Direction int

const (
	Undecided Direction = iota
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "undecided"
	}
}

// directionOf returns the side a signed displacement points to.
func directionOf(dx float32) Direction {
	switch {
	case dx < 0:
		return Left
	case dx > 0:
		return Right
	default:
		return Undecided
	}
}

// Allowance says which swipe directions a control accepts.
// The zero value is Both.
type Allowance int

const (
	Both Allowance = iota
	None
	LeftOnly
	RightOnly
)

func (a Allowance) String() string {
	switch a {
	case None:
		return "none"
	case LeftOnly:
		return "left"
	case RightOnly:
		return "right"
	case Both:
		return "both"
	default:
		return fmt.Sprintf("Allowance(%d)", int(a))
	}
}

// ParseAllowance accepts none, left, right and both (case-insensitive).
func ParseAllowance(s string) (Allowance, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none":
		return None, nil
	case "left", "left_only", "leftonly":
		return LeftOnly, nil
	case "right", "right_only", "rightonly":
		return RightOnly, nil
	case "both", "":
		return Both, nil
	}
	return Both, ConfigurationError.New("unknown swipe direction %q", s)
}

// LeftAllowed reports whether Left swipes are accepted.
func (a Allowance) LeftAllowed() bool { return a == Both || a == LeftOnly }

// RightAllowed reports whether Right swipes are accepted.
func (a Allowance) RightAllowed() bool { return a == Both || a == RightOnly }

// Allowed reports whether d is accepted. Undecided never is.
func (a Allowance) Allowed(d Direction) bool {
	switch d {
	case Left:
		return a.LeftAllowed()
	case Right:
		return a.RightAllowed()
	}
	return false
}

// LeftIndex returns the background uncovered by a Left swipe in a stack of
// count surfaces, or NoIndex.
func (a Allowance) LeftIndex(count int) int {
	if !a.LeftAllowed() {
		return NoIndex
	}
	switch count {
	case 2, 3:
		return 0
	}
	return NoIndex
}

// RightIndex returns the background uncovered by a Right swipe in a stack of
// count surfaces, or NoIndex.
func (a Allowance) RightIndex(count int) int {
	if !a.RightAllowed() {
		return NoIndex
	}
	switch count {
	case 2:
		return 0
	case 3:
		return 1
	}
	return NoIndex
}

// Index returns the background index for d.
func (a Allowance) Index(d Direction, count int) int {
	switch d {
	case Left:
		return a.LeftIndex(count)
	case Right:
		return a.RightIndex(count)
	}
	return NoIndex
}

// Resting is a stable foreground position.
type Resting int

const (
	Closed Resting = iota
	RevealedLeft
	RevealedRight
)

func (r Resting) String() string {
	switch r {
	case RevealedLeft:
		return "revealed-left"
	case RevealedRight:
		return "revealed-right"
	default:
		return "closed"
	}
}

// Offset returns the foreground offset of r for a surface of the given width.
func (r Resting) Offset(width float32) float32 {
	switch r {
	case RevealedLeft:
		return -width
	case RevealedRight:
		return width
	}
	return 0
}

// Direction returns the side r is revealed on, Undecided for Closed.
func (r Resting) Direction() Direction {
	switch r {
	case RevealedLeft:
		return Left
	case RevealedRight:
		return Right
	}
	return Undecided
}

func restingFor(d Direction) Resting {
	switch d {
	case Left:
		return RevealedLeft
	case Right:
		return RevealedRight
	}
	return Closed
}
