// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/defaults.go
// Summary: Default values for system and app configuration files.

package config

func applySystemDefaults(cfg Config) {
	if cfg == nil {
		return
	}
	cfg.RegisterDefaults("", Section{
		"defaultApp": "swipe-demo",
	})
	cfg.RegisterDefaults(SwipeSection, Section{
		"allowance":        "both",
		"move_threshold":   5,
		"commit_fraction":  1.0 / 3.0,
		"snap_duration_ms": 250,
		"easing":           "smoothstep",
	})
}

func applyAppDefaults(app string, cfg Config) {
	if cfg == nil {
		return
	}
	switch app {
	case "swipe-demo":
		cfg.RegisterDefaults("demo", Section{
			"title":      "Swipe Demo",
			"row_height": 3,
			"frame_ms":   16,
			"show_help":  true,
		})
	}
}
