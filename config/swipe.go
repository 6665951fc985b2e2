// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/swipe.go
// Summary: Maps the "swipe" config section onto swipe.Options.

package config

import (
	"time"

	"github.com/framegrace/texelswipe/swipe"
)

// SwipeSection is the config section holding control defaults.
const SwipeSection = "swipe"

// SwipeOptions builds control options from the "swipe" section of cfg.
// Missing keys keep the control defaults; invalid values are reported as
// swipe.ConfigurationError.
func SwipeOptions(cfg Config) (swipe.Options, error) {
	allowance, err := swipe.ParseAllowance(cfg.GetString(SwipeSection, "allowance", ""))
	if err != nil {
		return swipe.Options{}, err
	}
	opts := swipe.Options{
		Allowance:      allowance,
		MoveThreshold:  float32(cfg.GetFloat(SwipeSection, "move_threshold", float64(swipe.DefaultMoveThreshold))),
		CommitFraction: cfg.GetFloat(SwipeSection, "commit_fraction", swipe.DefaultCommitFraction),
		SnapDuration:   time.Duration(cfg.GetInt(SwipeSection, "snap_duration_ms", int(swipe.DefaultSnapDuration/time.Millisecond))) * time.Millisecond,
		Easing:         cfg.GetString(SwipeSection, "easing", ""),
	}
	if err := swipe.ValidateOptions(opts); err != nil {
		return swipe.Options{}, err
	}
	return opts, nil
}

// RowOptions layers a per-row record over base. Only "allowance" may be
// overridden per row.
func RowOptions(base swipe.Options, rec Section) (swipe.Options, error) {
	raw, ok := rec["allowance"].(string)
	if !ok {
		return base, nil
	}
	allowance, err := swipe.ParseAllowance(raw)
	if err != nil {
		return swipe.Options{}, err
	}
	base.Allowance = allowance
	return base, nil
}
