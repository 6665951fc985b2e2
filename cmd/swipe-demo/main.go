// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/swipe-demo/main.go
// Summary: Runs the swipe demo in the current terminal.
// Usage: swipe-demo [-config rows.toml [-save]] [-log swipe.log]

package main

import (
	"flag"
	"log"
	"os"
	"time"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/framegrace/texelswipe/apps/swipedemo"
	"github.com/framegrace/texelswipe/config"
	"github.com/framegrace/texelswipe/internal/devshell"
	"github.com/framegrace/texelswipe/texelui/core"
)

func main() {
	configPath := flag.String("config", "", "JSON or TOML file with swipe options and rows (default: user config dir)")
	logPath := flag.String("log", "", "write debug gesture traces to this file")
	save := flag.Bool("save", false, "with -config, store the file as the default configuration")
	flag.Parse()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		log.Fatal("swipe-demo: stdout is not a terminal")
	}

	sys, app := config.System(), config.App("swipe-demo")
	if err := config.Err(); err != nil && *configPath == "" {
		log.Printf("swipe-demo: system config unreadable, using defaults: %v", err)
	}
	if *configPath != "" {
		cfg, err := config.LoadFile(*configPath)
		if err != nil {
			log.Fatalf("swipe-demo: %v", err)
		}
		sys, app = cfg, cfg
		if *save {
			if err := config.Install("swipe-demo", cfg); err != nil {
				log.Fatalf("swipe-demo: %v", err)
			}
		}
	} else if *save {
		log.Fatal("swipe-demo: -save needs -config")
	}

	logger := zap.NewNop()
	if *logPath != "" {
		zc := zap.NewDevelopmentConfig()
		zc.OutputPaths = []string{*logPath}
		zc.ErrorOutputPaths = []string{*logPath}
		built, err := zc.Build()
		if err != nil {
			log.Fatalf("swipe-demo: %v", err)
		}
		logger = built
		defer func() { _ = logger.Sync() }()
	}

	devshell.SetFrameInterval(time.Duration(app.GetInt("demo", "frame_ms", 16)) * time.Millisecond)
	err := devshell.Run(func([]string) (core.App, error) {
		return swipedemo.New(sys, app, logger)
	}, flag.Args())
	if err != nil {
		log.Fatalf("swipe-demo: %v", err)
	}
}
