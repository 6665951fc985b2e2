// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: swipe/surface.go
// Summary: Host-facing contracts: child surfaces and pointer events.

package swipe

import "fmt"

// Surface is a child of the control as seen by the gesture core. Hosts
// implement it on top of their own view primitives.
type Surface interface {
	Show()
	Hide()
	Visible() bool
	// SetOffset moves the surface horizontally relative to its closed position.
	SetOffset(x float32)
	Offset() float32
	Width() float32
	// Contains reports whether a control-local point lands on the surface's
	// closed bounds. The offset is ignored, so a revealed surface can still be
	// grabbed anywhere in the control and dragged back.
	Contains(x, y float32) bool
}

// stack is the ordered surface list. The last entry is the draggable surface.
type stack []Surface

func (s stack) draggable() Surface {
	if len(s) == 0 {
		return nil
	}
	return s[len(s)-1]
}

func (s stack) background(index int) Surface {
	if index < 0 || index >= len(s)-1 {
		return nil
	}
	return s[index]
}

func (s stack) width() float32 {
	if d := s.draggable(); d != nil {
		return d.Width()
	}
	return 0
}

// EventKind identifies a pointer event.
type EventKind int

const (
	PointerDown EventKind = iota
	PointerMove
	PointerUp
	PointerCancel
)

func (k EventKind) String() string {
	switch k {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	case PointerCancel:
		return "cancel"
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event is a single pointer sample in control-local coordinates.
type Event struct {
	Kind EventKind
	X, Y float32
}

func (e Event) String() string {
	return fmt.Sprintf("%s(%.1f,%.1f)", e.Kind, e.X, e.Y)
}
