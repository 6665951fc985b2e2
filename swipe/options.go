// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: swipe/options.go
// Summary: Construction-time options for a swipe control.

package swipe

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/framegrace/texelswipe/internal/effects"
)

const (
	// DefaultMoveThreshold is the dead zone, in host units, before a drag starts
	// and a background becomes visible.
	DefaultMoveThreshold float32 = 5
	// DefaultCommitFraction is the share of the surface width a release must
	// reach to snap open.
	DefaultCommitFraction = 1.0 / 3.0
	// DefaultSnapDuration is the fixed length of a snap animation.
	DefaultSnapDuration = 250 * time.Millisecond
)

// Options configures a Control. Zero values select the defaults.
type Options struct {
	Allowance Allowance
	// MoveThreshold is the dead zone before a drag starts. Zero selects
	// DefaultMoveThreshold; a host wanting drags to start at once passes a
	// small positive value instead.
	MoveThreshold  float32
	CommitFraction float64
	SnapDuration   time.Duration
	// Easing names the snap curve: "smoothstep" (default), "linear",
	// "ease-in-out" or "ease-out-cubic".
	Easing string

	// Logger receives debug traces of pointer events and state changes.
	Logger *zap.Logger
	// Now is the clock used to start snap animations. Defaults to time.Now.
	Now func() time.Time
	// OnFrameRequest is called whenever an animation starts and the host
	// should begin delivering Tick calls.
	OnFrameRequest func()
}

func (o Options) withDefaults() Options {
	if o.MoveThreshold == 0 {
		o.MoveThreshold = DefaultMoveThreshold
	}
	if o.CommitFraction == 0 {
		o.CommitFraction = DefaultCommitFraction
	}
	if o.SnapDuration == 0 {
		o.SnapDuration = DefaultSnapDuration
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

func (o Options) validate() error {
	switch {
	case o.Allowance < Both || o.Allowance > RightOnly:
		return ConfigurationError.Wrap(fmt.Errorf("%w: allowance %d", ErrInvalidOption, int(o.Allowance)))
	case o.MoveThreshold < 0:
		return ConfigurationError.Wrap(fmt.Errorf("%w: move threshold %v", ErrInvalidOption, o.MoveThreshold))
	case o.CommitFraction < 0 || o.CommitFraction > 1:
		return ConfigurationError.Wrap(fmt.Errorf("%w: commit fraction %v", ErrInvalidOption, o.CommitFraction))
	case o.SnapDuration < 0:
		return ConfigurationError.Wrap(fmt.Errorf("%w: snap duration %v", ErrInvalidOption, o.SnapDuration))
	}
	if _, ok := effects.Easing(o.Easing); !ok {
		return ConfigurationError.Wrap(fmt.Errorf("%w: easing %q", ErrInvalidOption, o.Easing))
	}
	return nil
}

// ValidateOptions reports whether o would be accepted by New.
func ValidateOptions(o Options) error { return o.validate() }
