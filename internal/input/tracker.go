// Package input turns ebiten key events into game actions.
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/wvoliveira/pingpong/internal/game"
)

// KeyMap binds physical keys to actions.
type KeyMap map[ebiten.Key]game.Action

// DefaultKeyMap: player 1 (w/s) e player 2 (setas).
func DefaultKeyMap() KeyMap {
	return KeyMap{
		ebiten.KeyW:         game.LeftUp,
		ebiten.KeyS:         game.LeftDown,
		ebiten.KeyArrowUp:   game.RightUp,
		ebiten.KeyArrowDown: game.RightDown,
	}
}

// Tracker keeps the pressed state of each mapped action. Keys outside the
// map are ignored.
type Tracker struct {
	keys  KeyMap
	state game.Input
	buf   []ebiten.Key
}

func NewTracker(keys KeyMap) *Tracker {
	if keys == nil {
		keys = DefaultKeyMap()
	}
	return &Tracker{keys: keys}
}

// Press records a key-down event. It reports whether the key was tracked.
func (t *Tracker) Press(k ebiten.Key) bool {
	return t.set(k, true)
}

// Release records a key-up event. It reports whether the key was tracked.
func (t *Tracker) Release(k ebiten.Key) bool {
	return t.set(k, false)
}

func (t *Tracker) set(k ebiten.Key, pressed bool) bool {
	a, ok := t.keys[k]
	if !ok {
		return false
	}
	t.state.Set(a, pressed)
	return true
}

// Poll feeds this frame's key-down and key-up events from ebiten into the
// tracker. Must be called from the game's Update.
func (t *Tracker) Poll() {
	t.buf = inpututil.AppendJustPressedKeys(t.buf[:0])
	for _, k := range t.buf {
		t.Press(k)
	}
	t.buf = inpututil.AppendJustReleasedKeys(t.buf[:0])
	for _, k := range t.buf {
		t.Release(k)
	}
}

// Input returns the current pressed state of every action.
func (t *Tracker) Input() game.Input {
	return t.state
}

// Reset releases every action, e.g. when the window loses focus.
func (t *Tracker) Reset() {
	t.state = game.Input{}
}
