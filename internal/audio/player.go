package audio

import (
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/mattress-hop/internal/config"
	"github.com/vovakirdan/mattress-hop/internal/games/hop"
)

// speakerBuffer is the speaker latency; cues must not lag a 60 FPS frame by
// much more than a few frames.
const speakerBuffer = 50 * time.Millisecond

// Player plays cues for simulation events. It implements hop.EventSink and
// never blocks the caller beyond a short mixer lock.
//
// Until Init succeeds the player still accepts events and mixes them into an
// unplayed mixer; Drain can pull samples from it.
type Player struct {
	mu          sync.Mutex
	logger      *log.Logger
	rate        beep.SampleRate
	volume      float64
	mixer       *beep.Mixer
	title       *beep.Ctrl
	initialized bool
	muted       atomic.Bool
	played      atomic.Int64
}

// NewPlayer creates a player from the audio section of the config. A nil
// logger discards messages.
func NewPlayer(cfg config.HopAudio, logger *log.Logger) *Player {
	rate := beep.SampleRate(cfg.SampleRate)
	if rate <= 0 {
		rate = 44100
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	p := &Player{
		logger: logger,
		rate:   rate,
		volume: cfg.Volume,
		mixer:  &beep.Mixer{},
	}
	// Endless silence keeps the mixer from draining out of the speaker
	// between cues.
	p.mixer.Add(beep.Silence(-1))
	p.muted.Store(!cfg.Enabled)
	return p
}

// Init opens the audio device and starts streaming the mixer.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(speakerBuffer)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	p.logger.Debug("speaker ready", "rate", int(p.rate))
	return nil
}

// Close stops playback and releases the device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}

// Muted reports whether cues are suppressed.
func (p *Player) Muted() bool {
	return p.muted.Load()
}

// SetMuted suppresses or enables cues. Muting also pauses the title loop.
func (p *Player) SetMuted(muted bool) {
	p.muted.Store(muted)
	p.withMixer(func() {
		if p.title != nil {
			p.title.Paused = muted
		}
	})
}

// ToggleMute flips the mute state and returns the new value.
func (p *Player) ToggleMute() bool {
	muted := !p.Muted()
	p.SetMuted(muted)
	return muted
}

// Played returns how many cues were queued since creation.
func (p *Player) Played() int64 {
	return p.played.Load()
}

// PlayTitle starts the title loop unless it is already playing.
func (p *Player) PlayTitle() {
	p.withMixer(func() {
		if p.title != nil {
			return
		}
		p.title = &beep.Ctrl{Streamer: newVolume(NewTitleLoop(p.rate), p.volume), Paused: p.Muted()}
		p.mixer.Add(p.title)
	})
}

// StopTitle ends the title loop.
func (p *Player) StopTitle() {
	p.withMixer(func() {
		if p.title == nil {
			return
		}
		// A nil streamer drains out of the mixer on its next pass.
		p.title.Streamer = nil
		p.title = nil
	})
}

// TitlePlaying reports whether the title loop is running.
func (p *Player) TitlePlaying() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.title != nil
}

// Play queues a single cue.
func (p *Player) Play(c Cue) {
	if p.Muted() {
		return
	}
	s := NewCue(c, p.rate)
	if s == nil {
		return
	}
	p.withMixer(func() {
		p.mixer.Add(newVolume(s, p.volume))
	})
	p.played.Add(1)
}

// HandleEvent implements hop.EventSink.
func (p *Player) HandleEvent(e hop.Event) {
	if e.Kind == hop.EventRoundStart {
		p.StopTitle()
	}
	p.Play(CueFor(e.Kind))
}

// Drain streams n samples from the mixer without a device. It is the
// offline path used when no speaker is available and in tests.
func (p *Player) Drain(n int) [][2]float64 {
	buf := make([][2]float64, n)
	p.withMixer(func() {
		p.mixer.Stream(buf)
	})
	return buf
}

// Active returns the number of sounds currently in the mixer.
func (p *Player) Active() int {
	n := 0
	p.withMixer(func() {
		n = p.mixer.Len() - 1
	})
	return n
}

// withMixer runs fn with exclusive access to the mixer. The speaker lock is
// only taken once the speaker goroutine reads from it.
func (p *Player) withMixer(fn func()) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	fn()
}
