package render

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-gravflight/pkg/engine"
)

// DefaultKeyHold is how long a key press counts as held
const DefaultKeyHold = 150 * time.Millisecond

type action int

const (
	actionThrust action = iota
	actionLeft
	actionRight
	actionCount
)

// KeyLatch turns terminal key events into per-tick input. Terminals report
// presses and auto-repeats but never releases, so a press keeps its action
// active for the hold window.
type KeyLatch struct {
	hold  time.Duration
	until [actionCount]time.Time
	quit  bool
}

// NewKeyLatch creates a latch with the given hold window
func NewKeyLatch(hold time.Duration) *KeyLatch {
	if hold <= 0 {
		hold = DefaultKeyHold
	}
	return &KeyLatch{hold: hold}
}

// Handle records a key event received at now. It reports whether the key
// was bound to anything.
func (k *KeyLatch) Handle(ev *tcell.EventKey, now time.Time) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		k.quit = true
		return true
	case tcell.KeyUp:
		k.press(actionThrust, now)
		return true
	case tcell.KeyLeft:
		k.press(actionLeft, now)
		return true
	case tcell.KeyRight:
		k.press(actionRight, now)
		return true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			k.quit = true
		case 'w', 'W':
			k.press(actionThrust, now)
		case 'a', 'A':
			k.press(actionLeft, now)
		case 'd', 'D':
			k.press(actionRight, now)
		default:
			return false
		}
		return true
	}
	return false
}

func (k *KeyLatch) press(a action, now time.Time) {
	k.until[a] = now.Add(k.hold)
}

// Input returns the intents active at now
func (k *KeyLatch) Input(now time.Time) engine.Input {
	return engine.Input{
		Thrust:      now.Before(k.until[actionThrust]),
		RotateLeft:  now.Before(k.until[actionLeft]),
		RotateRight: now.Before(k.until[actionRight]),
		Quit:        k.quit,
	}
}
