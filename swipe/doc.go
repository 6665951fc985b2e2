// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package swipe implements the gesture core of a swipe-reveal control: a
// stack of one to three surfaces whose topmost member can be dragged
// horizontally to uncover a background surface underneath.
//
// The package is host agnostic. A host wraps its views as Surface values,
// forwards pointer events (Down, Move, Up, Cancel) and calls Tick on every
// frame while Animating reports true. Terminal and gio hosts live in
// texelui/widgets and gioswipe.
package swipe

import monkit "github.com/spacemonkeygo/monkit/v3"

var mon = monkit.Package()
