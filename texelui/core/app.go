package core

import "github.com/gdamore/tcell/v2"

// App is a standalone terminal application driven by a host event loop.
type App interface {
	Run() error
	Stop()
	Resize(cols, rows int)
	Render() [][]Cell
	GetTitle() string
	HandleKey(ev *tcell.EventKey)
	SetRefreshNotifier(refreshChan chan<- bool)
}

// MouseHandler is implemented by apps that accept mouse input.
type MouseHandler interface {
	HandleMouse(ev *tcell.EventMouse)
}
