package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/mattress-hop/internal/config"
	"github.com/vovakirdan/mattress-hop/internal/games/hop"
)

const testRate = beep.SampleRate(44100)

// streamAll drains s in small chunks and returns the sample count.
func streamAll(t *testing.T, s beep.Streamer, limit int) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for total < limit {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			if math.Abs(buf[i][0]) > 1 || math.Abs(buf[i][1]) > 1 {
				t.Fatalf("sample %d out of range: %v", total+i, buf[i])
			}
		}
		total += n
		if !ok {
			return total
		}
	}
	return total
}

func TestCueFor(t *testing.T) {
	tests := map[hop.EventKind]Cue{
		hop.EventRoundStart:     CueStart,
		hop.EventBounce:         CueBounce,
		hop.EventLanded:         CueNone,
		hop.EventBedRemoved:     CueBedRemove,
		hop.EventBedReactivated: CueNone,
		hop.EventGameOver:       CueGameOver,
	}
	for kind, want := range tests {
		if got := CueFor(kind); got != want {
			t.Errorf("CueFor(%v) = %v, want %v", kind, got, want)
		}
	}
}

func TestVoiceLength(t *testing.T) {
	v := newVoice(cueNotes[CueBounce][0], testRate)
	got := streamAll(t, v, testRate.N(time.Second))
	if want := testRate.N(140 * time.Millisecond); got != want {
		t.Errorf("bounce length = %d samples, want %d", got, want)
	}
}

func TestCuesTerminate(t *testing.T) {
	for _, c := range []Cue{CueStart, CueBounce, CueBedRemove, CueGameOver} {
		t.Run(c.String(), func(t *testing.T) {
			s := NewCue(c, testRate)
			if s == nil {
				t.Fatal("expected a streamer")
			}
			limit := testRate.N(2 * time.Second)
			if n := streamAll(t, s, limit); n >= limit {
				t.Errorf("cue did not end within 2s")
			}
		})
	}
	if NewCue(CueNone, testRate) != nil {
		t.Error("CueNone should have no streamer")
	}
}

func TestVoiceEnvelope(t *testing.T) {
	n := note{freq: 440, peak: 0.2, attack: 10 * ms, decay: 100 * ms, stop: 120 * ms}
	v := newVoice(n, testRate)

	if g := v.gain(0); g != floorGain {
		t.Errorf("gain(0) = %v, want %v", g, floorGain)
	}
	if g := v.gain(10 * ms); math.Abs(g-0.2) > 1e-12 {
		t.Errorf("gain at end of attack = %v, want 0.2", g)
	}
	if g := v.gain(55 * ms); g >= 0.2 || g <= floorGain {
		t.Errorf("gain mid decay = %v, want between floor and peak", g)
	}
	if g := v.gain(110 * ms); g != 0 {
		t.Errorf("gain after decay = %v, want 0", g)
	}
}

func TestVoiceSweep(t *testing.T) {
	v := newVoice(cueNotes[CueBedRemove][0], testRate)

	if f := v.freq(0); f != 920 {
		t.Errorf("start freq = %v, want 920", f)
	}
	if f := v.freq(60 * ms); f >= 920 || f <= 320 {
		t.Errorf("mid freq = %v, want between 320 and 920", f)
	}
	if f := v.freq(130 * ms); f != 320 {
		t.Errorf("end freq = %v, want 320", f)
	}
}

func TestTitleLoopIsEndless(t *testing.T) {
	s := NewTitleLoop(testRate)
	limit := testRate.N(10 * time.Second)
	if n := streamAll(t, s, limit); n < limit {
		t.Errorf("title loop stopped after %d samples", n)
	}
}

func testPlayer(enabled bool) *Player {
	return NewPlayer(config.HopAudio{Enabled: enabled, Volume: 0.8, SampleRate: 44100}, nil)
}

func TestPlayerQueuesCues(t *testing.T) {
	p := testPlayer(true)

	p.HandleEvent(hop.Event{Kind: hop.EventBounce})
	p.HandleEvent(hop.Event{Kind: hop.EventLanded})

	if p.Played() != 1 {
		t.Errorf("played = %d, want 1", p.Played())
	}
	if p.Active() != 1 {
		t.Errorf("active = %d, want 1", p.Active())
	}

	for i := 0; i < 3; i++ {
		p.Drain(testRate.N(200 * time.Millisecond))
	}
	if p.Active() != 0 {
		t.Errorf("active = %d after draining, want 0", p.Active())
	}
}

func TestPlayerMute(t *testing.T) {
	p := testPlayer(false)
	if !p.Muted() {
		t.Fatal("disabled audio should start muted")
	}

	p.Play(CueBounce)
	if p.Played() != 0 {
		t.Error("muted player should not queue cues")
	}

	if p.ToggleMute() {
		t.Error("toggle should unmute")
	}
	p.Play(CueBounce)
	if p.Played() != 1 {
		t.Errorf("played = %d, want 1", p.Played())
	}
}

func TestTitleStopsOnRoundStart(t *testing.T) {
	p := testPlayer(true)

	p.PlayTitle()
	p.PlayTitle()
	if !p.TitlePlaying() {
		t.Fatal("title should be playing")
	}
	if p.Active() != 1 {
		t.Errorf("active = %d, want a single title loop", p.Active())
	}

	p.SetMuted(true)
	p.SetMuted(false)

	p.HandleEvent(hop.Event{Kind: hop.EventRoundStart})
	if p.TitlePlaying() {
		t.Error("round start should stop the title loop")
	}
	if p.Played() != 1 {
		t.Errorf("played = %d, want the start cue", p.Played())
	}
}

func TestCloseWithoutInit(t *testing.T) {
	p := testPlayer(true)
	p.Close()
	p.Play(CueGameOver)
	if p.Played() != 1 {
		t.Error("player should keep accepting cues without a device")
	}
}
