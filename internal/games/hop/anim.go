package hop

import "time"

// spriteFrames is the number of walk-cycle frames in the character sprite.
const spriteFrames = 2

// Sprite tracks the character's animation frame. Two independent triggers
// advance the same counter: elapsed time and every jump.
type Sprite struct {
	frame    int
	frames   int
	elapsed  time.Duration
	interval time.Duration
}

func newSprite(frames int, interval time.Duration) Sprite {
	return Sprite{frames: frames, interval: interval}
}

// Frame returns the current frame index.
func (s *Sprite) Frame() int {
	return s.frame
}

// Advance accumulates dt and steps the frame once more than one interval
// has passed since the last timed step.
func (s *Sprite) Advance(dt time.Duration) {
	s.elapsed += dt
	if s.elapsed > s.interval {
		s.next()
		s.elapsed = 0
	}
}

// Bump steps the frame immediately (used on jump).
func (s *Sprite) Bump() {
	s.next()
}

func (s *Sprite) next() {
	if s.frames <= 0 {
		return
	}
	s.frame = (s.frame + 1) % s.frames
}
