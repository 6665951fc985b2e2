package widgets

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/framegrace/texelswipe/swipe"
	"github.com/framegrace/texelswipe/texelui/core"
)

type rowFixture struct {
	row   *SwipeRow
	cards []*Card
	now   time.Time
	left  int
	right int
	dirty []core.Rect
}

func newRowFixture(t *testing.T, allowance swipe.Allowance, titles ...string) *rowFixture {
	t.Helper()
	f := &rowFixture{now: time.Unix(1700000000, 0)}
	for _, title := range titles {
		f.cards = append(f.cards, NewCard(title, "", tcell.StyleDefault))
	}
	row, err := NewSwipeRow(0, 0, 30, 3, f.cards, swipe.Options{
		Allowance: allowance,
		Logger:    zaptest.NewLogger(t),
		Now:       func() time.Time { return f.now },
	})
	require.NoError(t, err)
	row.SetInvalidator(func(r core.Rect) { f.dirty = append(f.dirty, r) })
	row.SetListener(swipe.ListenerFuncs{
		Left:  func() { f.left++ },
		Right: func() { f.right++ },
	})
	f.row = row
	return f
}

func (f *rowFixture) mouse(x, y int, b tcell.ButtonMask) bool {
	return f.row.HandleMouse(tcell.NewEventMouse(x, y, b, 0))
}

func (f *rowFixture) key(k tcell.Key, r rune) bool {
	return f.row.HandleKey(tcell.NewEventKey(k, r, 0))
}

func (f *rowFixture) finishSnap() {
	f.now = f.now.Add(time.Second)
	for f.row.Tick(f.now) {
	}
}

func TestSwipeRowMouseDragCommitsRight(t *testing.T) {
	f := newRowFixture(t, swipe.Both, "left", "right", "front")

	require.True(t, f.mouse(10, 1, tcell.Button1))
	require.True(t, f.mouse(25, 1, tcell.Button1))
	require.Equal(t, float32(15), f.cards[2].Offset())
	require.True(t, f.cards[1].Visible())
	require.False(t, f.cards[0].Visible())

	require.True(t, f.mouse(25, 1, tcell.ButtonNone))
	require.Zero(t, f.right, "listener fires after the snap")
	require.NotEmpty(t, f.dirty, "animation start requests a frame")

	f.finishSnap()
	require.Equal(t, 1, f.right)
	require.Equal(t, float32(30), f.cards[2].Offset())
	require.Equal(t, swipe.RevealedRight, f.row.Control().Resting())
}

func TestSwipeRowShortDragSnapsBack(t *testing.T) {
	f := newRowFixture(t, swipe.Both, "left", "right", "front")

	f.mouse(10, 1, tcell.Button1)
	f.mouse(3, 1, tcell.Button1)
	f.mouse(3, 1, tcell.ButtonNone)
	f.finishSnap()

	require.Zero(t, f.left+f.right)
	require.Zero(t, f.cards[2].Offset())
	require.False(t, f.cards[0].Visible())
}

func TestSwipeRowSecondButtonCancels(t *testing.T) {
	f := newRowFixture(t, swipe.Both, "left", "right", "front")

	f.mouse(10, 1, tcell.Button1)
	f.mouse(20, 1, tcell.Button1)
	require.True(t, f.mouse(20, 1, tcell.Button1|tcell.Button2))
	require.Equal(t, swipe.Idle, f.row.Control().State())
	require.Zero(t, f.cards[2].Offset())
	require.False(t, f.cards[1].Visible())

	// The release that follows has no session to end.
	require.False(t, f.mouse(20, 1, tcell.ButtonNone))
}

func TestSwipeRowEscapeCancelsDrag(t *testing.T) {
	f := newRowFixture(t, swipe.Both, "left", "right", "front")
	require.False(t, f.key(tcell.KeyEscape, 0), "nothing to cancel")

	f.mouse(10, 1, tcell.Button1)
	f.mouse(2, 1, tcell.Button1)
	require.True(t, f.key(tcell.KeyEscape, 0))
	require.Zero(t, f.cards[2].Offset())
}

func TestSwipeRowKeys(t *testing.T) {
	f := newRowFixture(t, swipe.Both, "left", "right", "front")

	require.True(t, f.key(tcell.KeyRune, 'h'))
	require.Equal(t, 1, f.left)
	f.finishSnap()
	require.Equal(t, float32(-30), f.cards[2].Offset())

	require.True(t, f.key(tcell.KeyRight, 0))
	require.Equal(t, 1, f.right)

	require.True(t, f.key(tcell.KeyRune, '0'))
	require.Zero(t, f.cards[2].Offset())
	require.Equal(t, swipe.Closed, f.row.Control().Resting())
	require.False(t, f.row.Control().Animating())

	require.False(t, f.key(tcell.KeyRune, 'x'))
}

func TestSwipeRowRevealedRowDragsBackClosed(t *testing.T) {
	f := newRowFixture(t, swipe.Both, "left", "right", "front")
	f.mouse(2, 1, tcell.Button1)
	f.mouse(20, 1, tcell.Button1)
	f.mouse(20, 1, tcell.ButtonNone)
	f.finishSnap()
	require.Equal(t, float32(30), f.cards[2].Offset())
	require.Equal(t, 1, f.right)

	// The foreground sits beside the row; presses inside the row still grab it.
	for _, x := range []int{0, 10} {
		require.True(t, f.mouse(x, 1, tcell.Button1), "press at %d", x)
		require.Equal(t, swipe.Deciding, f.row.Control().State())
		require.True(t, f.mouse(x, 1, tcell.ButtonNone))
		f.finishSnap()
	}

	require.True(t, f.mouse(29, 1, tcell.Button1))
	require.True(t, f.mouse(15, 1, tcell.Button1))
	require.Equal(t, swipe.Dragging, f.row.Control().State())
	require.Equal(t, float32(16), f.cards[2].Offset())
	f.mouse(0, 1, tcell.Button1)
	require.Equal(t, float32(1), f.cards[2].Offset())
	require.True(t, f.mouse(0, 1, tcell.ButtonNone))
	f.finishSnap()

	require.Equal(t, swipe.Closed, f.row.Control().Resting())
	require.Zero(t, f.cards[2].Offset())
	require.False(t, f.cards[1].Visible())
	require.Equal(t, 1, f.right)
}

func TestSwipeRowPressOutsideRowIgnored(t *testing.T) {
	f := newRowFixture(t, swipe.RightOnly, "under", "front")
	require.False(t, f.mouse(40, 1, tcell.Button1))
	require.False(t, f.mouse(40, 1, tcell.ButtonNone))
	require.False(t, f.mouse(5, 7, tcell.Button1))
	require.Equal(t, swipe.Idle, f.row.Control().State())
}

func TestNewSwipeRowRejectsBadStacks(t *testing.T) {
	_, err := NewSwipeRow(0, 0, 10, 1, nil, swipe.Options{})
	require.True(t, swipe.ConfigurationError.Has(err))

	_, err = NewSwipeRow(0, 0, 10, 1, []*Card{NewCard("a", "", tcell.StyleDefault), nil}, swipe.Options{Allowance: swipe.LeftOnly})
	require.True(t, swipe.ConfigurationError.Has(err))

	_, err = NewSwipeRow(0, 0, 10, 1, []*Card{NewCard("a", "", tcell.StyleDefault), NewCard("b", "", tcell.StyleDefault)}, swipe.Options{})
	require.ErrorIs(t, err, swipe.ErrAmbiguousDirection)
}

func TestSwipeRowRendersRevealedCard(t *testing.T) {
	f := newRowFixture(t, swipe.Both, "left", "right", "front")
	ui := core.NewUIManager()
	ui.Resize(30, 3)
	ui.AddWidget(f.row)

	buf := ui.Render()
	require.Equal(t, 'f', buf[0][1].Ch)

	f.key(tcell.KeyRune, 'l')
	require.True(t, ui.Tick(f.now.Add(50*time.Millisecond)))
	f.finishSnap()
	buf = ui.Render()
	require.Equal(t, 'r', buf[0][1].Ch, "foreground moved off, right card shows through")
}

func TestCardContainsIgnoresOffset(t *testing.T) {
	c := NewCard("x", "", tcell.StyleDefault)
	c.Resize(10, 2)
	require.True(t, c.Contains(0, 0))
	c.SetOffset(4)
	require.True(t, c.Contains(2, 0))
	require.True(t, c.Contains(9.5, 1))
	require.False(t, c.Contains(13.5, 1))
	require.False(t, c.Contains(5, 2))
	require.Equal(t, core.Rect{X: 4, W: 10, H: 2}, c.Bounds())
	c.Hide()
	require.False(t, c.Contains(5, 0))
}
