// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/devshell/runner.go
// Summary: Runs a single core.App inside a local tcell screen.
// Usage: cmd/swipe-demo and tests drive apps through Run or RunApp.
// Notes: Animated apps receive Tick calls on the event loop goroutine,
// paced by the frame interval.

package devshell

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/zeebo/errs"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/framegrace/texelswipe/apps/swipedemo"
	"github.com/framegrace/texelswipe/config"
	"github.com/framegrace/texelswipe/texelui/core"
)

// Error is the class of runner failures.
var Error = errs.Class("devshell")

// Builder constructs a core.App, optionally using CLI args.
type Builder func(args []string) (core.App, error)

var registry = map[string]Builder{
	"swipe-demo": func(args []string) (core.App, error) {
		return swipedemo.New(config.System(), config.App("swipe-demo"), zap.NewNop())
	},
}

var (
	screenFactory = tcell.NewScreen
	frameInterval = 16 * time.Millisecond
)

// SetScreenFactory overrides the screen factory used by Run. Passing nil restores the default.
func SetScreenFactory(factory func() (tcell.Screen, error)) {
	if factory == nil {
		screenFactory = tcell.NewScreen
		return
	}
	screenFactory = factory
}

// SetFrameInterval sets the delay between animation frames. Non-positive
// values restore the default.
func SetFrameInterval(d time.Duration) {
	if d <= 0 {
		d = 16 * time.Millisecond
	}
	frameInterval = d
}

type (
	// runDone is posted when app.Run returns.
	runDone struct{}
	// frameTick is posted when the next animation frame is due.
	frameTick struct{}
)

// Run executes the provided builder inside a local tcell screen.
func Run(builder Builder, args []string) error {
	app, err := builder(args)
	if err != nil {
		return err
	}

	screen, err := screenFactory()
	if err != nil {
		return Error.Wrap(fmt.Errorf("init screen: %w", err))
	}
	if err := screen.Init(); err != nil {
		return Error.Wrap(fmt.Errorf("screen init: %w", err))
	}
	defer screen.Fini()
	screen.Clear()
	screen.EnableMouse()
	defer screen.DisableMouse()

	width, height := screen.Size()
	app.Resize(width, height)
	refreshCh := make(chan bool, 1)
	app.SetRefreshNotifier(refreshCh)

	draw := func() {
		screen.Clear()
		buffer := app.Render()
		for y := 0; y < len(buffer); y++ {
			row := buffer[y]
			for x := 0; x < len(row); x++ {
				cell := row[x]
				screen.SetContent(x, y, cell.Ch, nil, cell.Style)
			}
		}
		screen.Show()
	}

	animated, _ := app.(core.Animated)
	var (
		frame        *time.Timer
		framePending bool
	)
	scheduleFrame := func() {
		if animated == nil || framePending {
			return
		}
		framePending = true
		frame = time.AfterFunc(frameInterval, func() {
			_ = screen.PostEvent(tcell.NewEventInterrupt(frameTick{}))
		})
	}
	defer func() {
		if frame != nil {
			frame.Stop()
		}
	}()

	draw()

	g, ctx := errgroup.WithContext(context.Background())
	loopDone := make(chan struct{})
	g.Go(func() error {
		err := app.Run()
		_ = screen.PostEvent(tcell.NewEventInterrupt(runDone{}))
		return err
	})
	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-loopDone:
				return nil
			case <-refreshCh:
				_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
			}
		}
	})

	loop := func() {
		for {
			ev := screen.PollEvent()
			switch tev := ev.(type) {
			case nil:
				return
			case *tcell.EventInterrupt:
				switch tev.Data().(type) {
				case runDone:
					return
				case frameTick:
					framePending = false
					if animated.Tick(time.Now()) {
						scheduleFrame()
					}
					draw()
				default:
					draw()
					scheduleFrame()
				}
			case *tcell.EventResize:
				w, h := tev.Size()
				app.Resize(w, h)
				draw()
			case *tcell.EventKey:
				if tev.Key() == tcell.KeyCtrlC {
					return
				}
				app.HandleKey(tev)
				draw()
				scheduleFrame()
			case *tcell.EventMouse:
				if mh, ok := app.(core.MouseHandler); ok {
					mh.HandleMouse(tev)
					draw()
					scheduleFrame()
				}
			}
		}
	}
	loop()

	close(loopDone)
	app.Stop()
	return g.Wait()
}

// RunApp finds a registered builder by name and runs it.
func RunApp(name string, args []string) error {
	buildApp, ok := registry[name]
	if !ok {
		return Error.New("unknown app %q", name)
	}
	return Run(buildApp, args)
}
