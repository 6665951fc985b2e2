// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package swipe

import (
	"errors"

	"github.com/zeebo/errs"
)

// ConfigurationError is the class of every error New can return. A control
// that failed to build must not be used.
var ConfigurationError = errs.Class("swipe configuration")

var (
	// ErrSurfaceCount is returned when the stack does not hold one, two or three surfaces.
	ErrSurfaceCount = errors.New("control must have one, two or three surfaces")
	// ErrAmbiguousDirection is returned for two surfaces with both sides allowed.
	ErrAmbiguousDirection = errors.New("you have to specify swipe direction side explicitly when the control has a single background surface")
	// ErrInvalidOption is returned for out-of-range numeric options.
	ErrInvalidOption = errors.New("invalid option")
)
