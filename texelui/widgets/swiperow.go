package widgets

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelswipe/swipe"
	"github.com/framegrace/texelswipe/texelui/core"
)

// SwipeRow stacks up to three cards in one rect and lets the last card be
// dragged sideways with the mouse to reveal the cards underneath.
//
// Keys: h/Left and l/Right swipe programmatically, 0 closes the row and Esc
// cancels a drag in progress. A second mouse button while dragging also cancels.
type SwipeRow struct {
	core.BaseWidget
	cards   []*Card
	ctl     *swipe.Control
	pressed bool
	inv     func(core.Rect)
}

// NewSwipeRow builds a row over cards, foreground last.
func NewSwipeRow(x, y, w, h int, cards []*Card, opts swipe.Options) (*SwipeRow, error) {
	r := &SwipeRow{cards: cards}
	r.SetFocusable(true)

	surfaces := make([]swipe.Surface, len(cards))
	for i, c := range cards {
		if c == nil {
			return nil, swipe.ConfigurationError.New("card %d is nil", i)
		}
		surfaces[i] = c
	}

	next := opts.OnFrameRequest
	opts.OnFrameRequest = func() {
		r.invalidate()
		if next != nil {
			next()
		}
	}
	r.SetPosition(x, y)
	r.Resize(w, h)

	ctl, err := swipe.New(surfaces, opts)
	if err != nil {
		return nil, err
	}
	r.ctl = ctl
	return r, nil
}

// Control exposes the underlying gesture control.
func (r *SwipeRow) Control() *swipe.Control { return r.ctl }

// SetListener forwards to the control.
func (r *SwipeRow) SetListener(l swipe.Listener) { r.ctl.SetListener(l) }

func (r *SwipeRow) SetPosition(x, y int) {
	r.BaseWidget.SetPosition(x, y)
	for _, c := range r.cards {
		c.SetPosition(x, y)
	}
}

func (r *SwipeRow) Resize(w, h int) {
	r.BaseWidget.Resize(w, h)
	for _, c := range r.cards {
		c.Resize(w, h)
	}
}

func (r *SwipeRow) SetInvalidator(f func(core.Rect)) { r.inv = f }

func (r *SwipeRow) invalidate() {
	if r.inv != nil {
		r.inv(r.Rect)
	}
}

func (r *SwipeRow) Draw(p *core.Painter) {
	p = p.WithClip(r.Rect)
	for _, c := range r.cards {
		c.Draw(p)
	}
}

// Tick implements core.Animated.
func (r *SwipeRow) Tick(now time.Time) bool {
	if !r.ctl.Animating() {
		return false
	}
	more := r.ctl.Tick(now)
	r.invalidate()
	return more
}

func (r *SwipeRow) local(ev *tcell.EventMouse) (float32, float32) {
	x, y := ev.Position()
	return float32(x - r.Rect.X), float32(y - r.Rect.Y)
}

const wheel = tcell.WheelUp | tcell.WheelDown | tcell.WheelLeft | tcell.WheelRight

// HandleMouse turns tcell button transitions into pointer events.
func (r *SwipeRow) HandleMouse(ev *tcell.EventMouse) bool {
	x, y := r.local(ev)
	buttons := ev.Buttons()

	var consumed bool
	switch {
	case r.pressed && buttons&(tcell.Button2|tcell.Button3) != 0:
		r.pressed = false
		consumed = r.ctl.Cancel()
	case buttons&tcell.Button1 != 0 && !r.pressed:
		r.pressed = true
		consumed = r.ctl.Down(x, y)
	case buttons&tcell.Button1 != 0:
		consumed = r.ctl.Move(x, y)
	case r.pressed && buttons&^wheel == tcell.ButtonNone:
		r.pressed = false
		consumed = r.ctl.Up(x, y)
	default:
		return false
	}
	r.invalidate()
	return consumed
}

func (r *SwipeRow) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyLeft:
		r.ctl.SwipeToLeft()
	case tcell.KeyRight:
		r.ctl.SwipeToRight()
	case tcell.KeyEscape:
		r.pressed = false
		if !r.ctl.Cancel() {
			return false
		}
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'h':
			r.ctl.SwipeToLeft()
		case 'l':
			r.ctl.SwipeToRight()
		case '0':
			r.ctl.Reset()
		default:
			return false
		}
	default:
		return false
	}
	r.invalidate()
	return true
}
