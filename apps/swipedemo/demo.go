// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/swipedemo/demo.go
// Summary: A list of swipe rows built from configuration.
// Usage: Drag a row sideways with the mouse, or focus it with Tab and use
// h/l, the arrow keys, 0 and Esc.

package swipedemo

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/framegrace/texelswipe/config"
	"github.com/framegrace/texelswipe/swipe"
	"github.com/framegrace/texelswipe/texelui/adapter"
	"github.com/framegrace/texelswipe/texelui/core"
	"github.com/framegrace/texelswipe/texelui/widgets"
)

var (
	baseStyle  = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	frontStyle = tcell.StyleDefault.Background(tcell.ColorNavy).Foreground(tcell.ColorWhite)
	leftStyle  = tcell.StyleDefault.Background(tcell.ColorMaroon).Foreground(tcell.ColorWhite)
	rightStyle = tcell.StyleDefault.Background(tcell.ColorDarkGreen).Foreground(tcell.ColorWhite)
)

// App is the swipe demo application.
type App struct {
	*adapter.UIApp
	Rows   []*widgets.SwipeRow
	Status *widgets.Label
}

// New builds the demo. sys supplies the "swipe" defaults, app the "demo"
// section and the "rows" list; the same config may be passed for both.
func New(sys, app config.Config, log *zap.Logger) (*App, error) {
	if log == nil {
		log = zap.NewNop()
	}
	base, err := config.SwipeOptions(sys)
	if err != nil {
		return nil, err
	}
	base.Logger = log

	records := app.Records("rows")
	if len(records) == 0 {
		records = []config.Section{{"title": "Swipe me", "left": "Left", "right": "Right"}}
	}
	rowHeight := app.GetInt("demo", "row_height", 3)
	if rowHeight < 1 {
		rowHeight = 1
	}

	ui := core.NewUIManager()
	ui.SetBackground(baseStyle)
	d := &App{UIApp: adapter.NewUIApp(app.GetString("demo", "title", "Swipe Demo"), ui)}

	pane := widgets.NewPane(0, 0, 0, 0, baseStyle)
	ui.AddWidget(pane)
	help := ""
	if app.GetBool("demo", "show_help", true) {
		help = "Drag rows sideways. Tab focuses, h/l swipe, 0 closes, Esc cancels."
	}
	title := widgets.NewLabel(2, 0, 0, 1, help)
	title.Style = baseStyle
	ui.AddWidget(title)

	for i, rec := range records {
		row, err := newRow(base, rec, i, rowHeight)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		name := rec.Text("title", fmt.Sprintf("row %d", i))
		row.SetListener(swipe.ListenerFuncs{
			Left:  func() { d.setStatus("swiped left: " + name) },
			Right: func() { d.setStatus("swiped right: " + name) },
		})
		d.Rows = append(d.Rows, row)
		ui.AddWidget(row)
	}

	d.Status = widgets.NewLabel(2, 0, 0, 1, "")
	d.Status.Style = baseStyle
	ui.AddWidget(d.Status)
	if len(d.Rows) > 0 {
		ui.Focus(d.Rows[0])
	}

	d.OnResize(func(w, h int) {
		pane.Resize(w, h)
		title.Resize(w-4, 1)
		for i, row := range d.Rows {
			row.SetPosition(2, 2+i*rowHeight)
			row.Resize(w-4, rowHeight)
		}
		d.Status.SetPosition(2, 3+len(d.Rows)*rowHeight)
		d.Status.Resize(w-4, 1)
	})
	return d, nil
}

func (d *App) setStatus(text string) {
	d.Status.Text = text
	d.UI().Invalidate(d.Status.Rect)
}

// newRow builds cards for one record: optional "left" and "right"
// backgrounds in stack order, then the "title" foreground. Without an
// explicit "allowance" the sides follow the backgrounds present.
func newRow(base swipe.Options, rec config.Section, index, height int) (*widgets.SwipeRow, error) {
	left, right := rec.Text("left", ""), rec.Text("right", "")

	var cards []*widgets.Card
	if left != "" {
		cards = append(cards, widgets.NewCard("", "◀ "+left, leftStyle))
	}
	if right != "" {
		cards = append(cards, widgets.NewCard("", right+" ▶", rightStyle))
	}
	cards = append(cards, widgets.NewCard(rec.Text("title", fmt.Sprintf("row %d", index)), rec.Text("text", ""), frontStyle))

	opts := base
	switch {
	case left != "" && right != "":
		opts.Allowance = swipe.Both
	case left != "":
		opts.Allowance = swipe.LeftOnly
	case right != "":
		opts.Allowance = swipe.RightOnly
	}
	opts, err := config.RowOptions(opts, rec)
	if err != nil {
		return nil, err
	}
	return widgets.NewSwipeRow(0, 0, 0, height, cards, opts)
}
