package tui

import "time"

// Terminals deliver key presses and auto-repeats but no releases. A key
// counts as held while presses keep arriving: the first press is trusted for
// longer to bridge the OS repeat delay, later repeats only briefly.
const (
	holdInitial = 500 * time.Millisecond
	holdRepeat  = 120 * time.Millisecond
)

// holdTracker derives level state for steering and the jump edge from a
// stream of key presses.
type holdTracker struct {
	initial, repeat time.Duration

	dir      int // -1, 0, +1
	dirUntil time.Time

	jumpUntil time.Time
}

func newHoldTracker() holdTracker {
	return holdTracker{initial: holdInitial, repeat: holdRepeat}
}

// press registers a steering key. Pressing the opposite direction takes
// over immediately.
func (h *holdTracker) press(dir int, now time.Time) {
	if dir == h.dir && now.Before(h.dirUntil) {
		h.dirUntil = now.Add(h.repeat)
		return
	}
	h.dir = dir
	h.dirUntil = now.Add(h.initial)
}

// direction returns the steering direction held at now.
func (h *holdTracker) direction(now time.Time) int {
	if !now.Before(h.dirUntil) {
		h.dir = 0
	}
	return h.dir
}

// pressJump registers a jump key and reports whether it is a fresh press
// rather than an auto-repeat of a held key.
func (h *holdTracker) pressJump(now time.Time) bool {
	fresh := !now.Before(h.jumpUntil)
	if fresh {
		h.jumpUntil = now.Add(h.initial)
	} else {
		h.jumpUntil = now.Add(h.repeat)
	}
	return fresh
}

// release forgets all held keys.
func (h *holdTracker) release() {
	h.dir = 0
	h.dirUntil = time.Time{}
	h.jumpUntil = time.Time{}
}
