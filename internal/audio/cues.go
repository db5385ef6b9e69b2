package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/mattress-hop/internal/games/hop"
)

// Cue identifies a sound effect.
type Cue int

const (
	CueNone Cue = iota
	CueStart
	CueBounce
	CueBedRemove
	CueGameOver
)

// String returns a human-readable name for the cue.
func (c Cue) String() string {
	switch c {
	case CueStart:
		return "start"
	case CueBounce:
		return "bounce"
	case CueBedRemove:
		return "bed_remove"
	case CueGameOver:
		return "game_over"
	default:
		return "none"
	}
}

const ms = time.Millisecond

// cueNotes holds the voices of every cue.
var cueNotes = map[Cue][]note{
	CueStart: {
		{freq: 440, peak: 0.18, attack: 10 * ms, decay: 160 * ms, stop: 160 * ms},
		{freq: 660, offset: 80 * ms, peak: 0.14, attack: 10 * ms, decay: 140 * ms, stop: 200 * ms},
	},
	CueBounce: {
		{freq: 620, peak: 0.14, attack: 2 * ms, decay: 120 * ms, stop: 140 * ms},
	},
	CueBedRemove: {
		{freq: 920, sweepTo: 320, peak: 0.12, attack: 2 * ms, decay: 120 * ms, stop: 140 * ms},
	},
	CueGameOver: {
		{freq: 300, peak: 0.18, attack: 10 * ms, decay: 280 * ms, stop: 320 * ms},
		{freq: 220, offset: 80 * ms, peak: 0.18, attack: 10 * ms, decay: 280 * ms, stop: 320 * ms},
		{freq: 170, offset: 160 * ms, peak: 0.18, attack: 10 * ms, decay: 280 * ms, stop: 320 * ms},
	},
}

// CueFor maps a simulation event to its sound. Events without a sound map
// to CueNone.
func CueFor(kind hop.EventKind) Cue {
	switch kind {
	case hop.EventRoundStart:
		return CueStart
	case hop.EventBounce:
		return CueBounce
	case hop.EventBedRemoved:
		return CueBedRemove
	case hop.EventGameOver:
		return CueGameOver
	default:
		return CueNone
	}
}

// NewCue returns a fresh streamer for c, or nil for CueNone.
func NewCue(c Cue, rate beep.SampleRate) beep.Streamer {
	notes, ok := cueNotes[c]
	if !ok {
		return nil
	}
	return render(notes, rate)
}

// titleMelody is the title screen phrase, repeated until a round starts.
var titleMelody = []struct {
	freq float64
	dur  time.Duration
}{
	{523.25, 600 * ms},
	{659.25, 450 * ms},
	{783.99, 450 * ms},
	{659.25, 600 * ms},
	{523.25, 1000 * ms},
}

// titleLoop streams the title melody forever through a 1200 Hz low-pass.
type titleLoop struct {
	rate beep.SampleRate
	next int
	cur  beep.Streamer
}

// NewTitleLoop returns an endless streamer of the title melody.
func NewTitleLoop(rate beep.SampleRate) beep.Streamer {
	return newLowPass(&titleLoop{rate: rate}, 1200, rate)
}

func (l *titleLoop) Stream(samples [][2]float64) (int, bool) {
	filled := 0
	for filled < len(samples) {
		if l.cur == nil {
			m := titleMelody[l.next]
			l.next = (l.next + 1) % len(titleMelody)
			l.cur = newVoice(note{
				freq:   m.freq,
				peak:   0.06,
				attack: 10 * ms,
				decay:  m.dur,
				stop:   m.dur,
			}, l.rate)
		}
		n, ok := l.cur.Stream(samples[filled:])
		filled += n
		if !ok || n == 0 {
			l.cur = nil
		}
	}
	return filled, true
}

func (l *titleLoop) Err() error { return nil }
