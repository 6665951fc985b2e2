package core

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
)

// UIManager owns a small widget tree and composes it into a frame buffer.
// Mouse presses capture the widget under the pointer; drags and the final
// release are routed to that widget even when the pointer leaves it.
type UIManager struct {
	mu       sync.Mutex // protects widgets, focus, capture, buffer
	dirtyMu  sync.Mutex // protects dirty list and notifier
	W, H     int
	widgets  []Widget // later entries draw on top
	bgStyle  tcell.Style
	notifier chan<- bool
	focused  Widget
	buf      [][]Cell
	dirty    []Rect
	capture  Widget
}

func NewUIManager() *UIManager {
	return &UIManager{
		bgStyle: tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite),
	}
}

// SetBackground changes the style used to clear the frame.
func (u *UIManager) SetBackground(style tcell.Style) {
	u.mu.Lock()
	u.bgStyle = style
	u.mu.Unlock()
	u.InvalidateAll()
}

func (u *UIManager) SetRefreshNotifier(ch chan<- bool) {
	u.dirtyMu.Lock()
	defer u.dirtyMu.Unlock()
	u.notifier = ch
}

func (u *UIManager) RequestRefresh() {
	u.dirtyMu.Lock()
	defer u.dirtyMu.Unlock()
	u.requestRefreshLocked()
}

func (u *UIManager) Resize(w, h int) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.dirtyMu.Lock()
	defer u.dirtyMu.Unlock()

	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	u.W, u.H = w, h
	u.buf = nil
	u.invalidateAllLocked()
}

func (u *UIManager) AddWidget(w Widget) {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.widgets = append(u.widgets, w)
	u.propagateInvalidator(w)
	u.dirtyMu.Lock()
	u.invalidateAllLocked()
	u.dirtyMu.Unlock()
}

func (u *UIManager) propagateInvalidator(w Widget) {
	if ia, ok := w.(InvalidationAware); ok {
		ia.SetInvalidator(u.Invalidate)
	}
	if cc, ok := w.(ChildContainer); ok {
		cc.VisitChildren(func(child Widget) { u.propagateInvalidator(child) })
	}
}

func (u *UIManager) Focus(w Widget) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.focusLocked(w)
}

// Focused returns the widget holding keyboard focus.
func (u *UIManager) Focused() Widget {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.focused
}

func (u *UIManager) focusLocked(w Widget) {
	if w == nil || !w.Focusable() || u.focused == w {
		return
	}
	if u.focused != nil {
		u.focused.Blur()
	}
	u.focused = w
	u.focused.Focus()
}

func (u *UIManager) HandleKey(ev *tcell.EventKey) bool {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.focused != nil && u.focused.HandleKey(ev) {
		u.dirtyMu.Lock()
		if len(u.dirty) == 0 {
			u.invalidateAllLocked()
		} else {
			u.requestRefreshLocked()
		}
		u.dirtyMu.Unlock()
		return true
	}

	// Tab/Shift-Tab cycle focus among root widgets.
	if ev.Key() == tcell.KeyTab || ev.Key() == tcell.KeyBacktab {
		forward := ev.Key() == tcell.KeyTab && ev.Modifiers()&tcell.ModShift == 0
		if u.cycleFocusLocked(forward) {
			u.dirtyMu.Lock()
			u.invalidateAllLocked()
			u.dirtyMu.Unlock()
			return true
		}
	}
	return false
}

func (u *UIManager) cycleFocusLocked(forward bool) bool {
	n := len(u.widgets)
	if n == 0 {
		return false
	}
	current := -1
	for i, w := range u.widgets {
		if w == u.focused {
			current = i
			break
		}
	}
	for step := 1; step <= n; step++ {
		idx := (current + step) % n
		if !forward {
			idx = (current - step + 2*n) % n
		}
		if w := u.widgets[idx]; w.Focusable() {
			u.focusLocked(w)
			return true
		}
	}
	return false
}

// HandleMouse routes mouse events for click-to-focus and capture drags.
func (u *UIManager) HandleMouse(ev *tcell.EventMouse) bool {
	u.mu.Lock()
	defer u.mu.Unlock()

	x, y := ev.Position()
	buttons := ev.Buttons()
	prevIsDown := u.capture != nil
	nowDown := buttons&tcell.Button1 != 0

	// Start capture on press over a widget
	if !prevIsDown && nowDown {
		if w := u.topmostAtLocked(x, y); w != nil {
			u.focusLocked(w)
			u.capture = w
			if mw, ok := w.(MouseAware); ok {
				_ = mw.HandleMouse(ev)
			}
			u.dirtyMu.Lock()
			u.invalidateAllLocked()
			u.dirtyMu.Unlock()
			return true
		}
		return false
	}

	// While captured, forward all mouse events
	if u.capture != nil {
		if mw, ok := u.capture.(MouseAware); ok {
			_ = mw.HandleMouse(ev)
		}
		// Release on button up
		if !nowDown {
			u.capture = nil
		}
		u.dirtyMu.Lock()
		u.invalidateAllLocked()
		u.dirtyMu.Unlock()
		return true
	}

	// Hover and wheel events go to the widget under the cursor.
	if w := u.topmostAtLocked(x, y); w != nil {
		if mw, ok := w.(MouseAware); ok && mw.HandleMouse(ev) {
			u.dirtyMu.Lock()
			u.requestRefreshLocked()
			u.dirtyMu.Unlock()
			return true
		}
	}
	return false
}

// Capturing reports whether a press is being tracked.
func (u *UIManager) Capturing() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.capture != nil
}

func (u *UIManager) topmostAtLocked(x, y int) Widget {
	for i := len(u.widgets) - 1; i >= 0; i-- {
		if w := deepHit(u.widgets[i], x, y); w != nil {
			return w
		}
	}
	return nil
}

func deepHit(w Widget, x, y int) Widget {
	if cc, ok := w.(ChildContainer); ok {
		var res Widget
		cc.VisitChildren(func(child Widget) {
			if res != nil {
				return
			}
			if dw := deepHit(child, x, y); dw != nil {
				res = dw
			}
		})
		if res != nil {
			return res
		}
	}
	if w.HitTest(x, y) {
		return w
	}
	return nil
}

// Tick advances every Animated widget and reports whether any wants more frames.
func (u *UIManager) Tick(now time.Time) bool {
	u.mu.Lock()
	defer u.mu.Unlock()

	more := false
	var visit func(w Widget)
	visit = func(w Widget) {
		if a, ok := w.(Animated); ok && a.Tick(now) {
			more = true
		}
		if cc, ok := w.(ChildContainer); ok {
			cc.VisitChildren(visit)
		}
	}
	for _, w := range u.widgets {
		visit(w)
	}
	return more
}

// Invalidate marks a region for redraw. Thread-safe.
func (u *UIManager) Invalidate(r Rect) {
	u.dirtyMu.Lock()
	defer u.dirtyMu.Unlock()
	if r.W <= 0 || r.H <= 0 {
		return
	}
	u.dirty = append(u.dirty, r)
	u.requestRefreshLocked()
}

// InvalidateAll marks the whole surface for redraw.
func (u *UIManager) InvalidateAll() {
	u.dirtyMu.Lock()
	defer u.dirtyMu.Unlock()
	u.invalidateAllLocked()
}

// Internal helper - assumes dirtyMu is held
func (u *UIManager) invalidateAllLocked() {
	u.dirty = append(u.dirty, Rect{X: 0, Y: 0, W: u.W, H: u.H})
	u.requestRefreshLocked()
}

// Internal helper - assumes dirtyMu is held
func (u *UIManager) requestRefreshLocked() {
	if u.notifier == nil {
		return
	}
	select {
	case u.notifier <- true:
	default:
	}
}

func (u *UIManager) ensureBufferLocked() {
	if u.buf != nil && len(u.buf) == u.H && (u.H == 0 || len(u.buf[0]) == u.W) {
		return
	}
	u.buf = make([][]Cell, u.H)
	for y := range u.buf {
		row := make([]Cell, u.W)
		for x := range row {
			row[x] = Cell{Ch: ' ', Style: u.bgStyle}
		}
		u.buf[y] = row
	}
}

// Render redraws dirty regions and returns the framebuffer.
func (u *UIManager) Render() [][]Cell {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.ensureBufferLocked()

	u.dirtyMu.Lock()
	dirty := u.dirty
	u.dirty = nil
	u.dirtyMu.Unlock()

	full := Rect{X: 0, Y: 0, W: u.W, H: u.H}
	if len(dirty) == 0 {
		dirty = []Rect{full}
	}
	for _, clip := range mergeRects(dirty) {
		clip = clip.Intersect(full)
		if clip.W <= 0 || clip.H <= 0 {
			continue
		}
		p := NewPainter(u.buf, clip)
		p.Fill(clip, ' ', u.bgStyle)
		for _, w := range u.widgets {
			wx, wy := w.Position()
			ww, wh := w.Size()
			if rectsOverlap(Rect{X: wx, Y: wy, W: ww, H: wh}, clip) {
				w.Draw(p)
			}
		}
	}
	return u.buf
}

func rectsOverlap(a, b Rect) bool {
	if a.W <= 0 || a.H <= 0 || b.W <= 0 || b.H <= 0 {
		return false
	}
	return a.X < b.X+b.W && a.X+a.W > b.X && a.Y < b.Y+b.H && a.Y+a.H > b.Y
}

// mergeRects unions overlapping or edge-adjacent rectangles into a compact set.
func mergeRects(in []Rect) []Rect {
	out := make([]Rect, 0, len(in))
	for _, r := range in {
		if r.W > 0 && r.H > 0 {
			out = append(out, r)
		}
	}
	// Iteratively merge until stable
	changed := true
	for changed {
		changed = false
		for i := 0; i < len(out) && !changed; i++ {
			for j := i + 1; j < len(out) && !changed; j++ {
				if rectsTouchOrOverlap(out[i], out[j]) {
					out[i] = union(out[i], out[j])
					out = append(out[:j], out[j+1:]...)
					changed = true
				}
			}
		}
	}
	return out
}

func rectsTouchOrOverlap(a, b Rect) bool {
	grown := Rect{X: a.X - 1, Y: a.Y - 1, W: a.W + 2, H: a.H + 2}
	return rectsOverlap(grown, b)
}

func union(a, b Rect) Rect {
	x0, y0 := min(a.X, b.X), min(a.Y, b.Y)
	x1, y1 := max(a.X+a.W, b.X+b.W), max(a.Y+a.H, b.Y+b.H)
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}
