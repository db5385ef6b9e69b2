// Package audio turns simulation events into short square-wave cues and a
// looping title melody, played through the gopxl/beep speaker.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// floorGain is the near-silent level exponential ramps start from and decay
// to, since an exponential ramp cannot reach 0.
const floorGain = 0.0001

// note is one scheduled square-wave voice of a cue.
type note struct {
	freq    float64       // Start frequency in Hz
	sweepTo float64       // End frequency of an exponential sweep, 0 for none
	offset  time.Duration // Delay from the start of the cue
	peak    float64       // Gain reached at the end of the attack
	attack  time.Duration // Linear ramp from floorGain to peak
	decay   time.Duration // Exponential ramp back to floorGain ends here
	stop    time.Duration // Voice length; silence after decay
}

// voice renders a single note: square oscillator, optional exponential
// frequency sweep over the decay, linear attack then exponential decay.
type voice struct {
	n     note
	rate  beep.SampleRate
	phase float64
	pos   int
	total int
}

func newVoice(n note, rate beep.SampleRate) *voice {
	return &voice{n: n, rate: rate, total: rate.N(n.stop)}
}

func (v *voice) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if v.pos >= v.total {
			return i, i > 0
		}
		t := time.Duration(float64(v.pos) / float64(v.rate) * float64(time.Second))

		val := -1.0
		if v.phase < 0.5 {
			val = 1.0
		}
		val *= v.gain(t)
		samples[i][0] = val
		samples[i][1] = val

		v.phase += v.freq(t) / float64(v.rate)
		v.phase -= math.Floor(v.phase)
		v.pos++
	}
	return len(samples), true
}

func (v *voice) Err() error { return nil }

// freq returns the instantaneous frequency at t.
func (v *voice) freq(t time.Duration) float64 {
	if v.n.sweepTo <= 0 || v.n.decay <= 0 {
		return v.n.freq
	}
	if t >= v.n.decay {
		return v.n.sweepTo
	}
	k := float64(t) / float64(v.n.decay)
	return v.n.freq * math.Pow(v.n.sweepTo/v.n.freq, k)
}

// gain returns the envelope level at t.
func (v *voice) gain(t time.Duration) float64 {
	n := v.n
	switch {
	case t < n.attack:
		k := float64(t) / float64(n.attack)
		return floorGain + (n.peak-floorGain)*k
	case t < n.decay:
		span := n.decay - n.attack
		k := float64(t-n.attack) / float64(span)
		return n.peak * math.Pow(floorGain/n.peak, k)
	default:
		return 0
	}
}

// render schedules every note of a cue and mixes them into one streamer.
func render(notes []note, rate beep.SampleRate) beep.Streamer {
	voices := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		var s beep.Streamer = newVoice(n, rate)
		if n.offset > 0 {
			s = beep.Seq(beep.Silence(rate.N(n.offset)), s)
		}
		voices = append(voices, s)
	}
	return beep.Mix(voices...)
}

// lowPass is a one-pole low-pass filter.
type lowPass struct {
	s     beep.Streamer
	alpha float64
	prev  [2]float64
}

func newLowPass(s beep.Streamer, cutoff float64, rate beep.SampleRate) *lowPass {
	dt := 1 / float64(rate)
	rc := 1 / (2 * math.Pi * cutoff)
	return &lowPass{s: s, alpha: dt / (rc + dt)}
}

func (f *lowPass) Stream(samples [][2]float64) (int, bool) {
	n, ok := f.s.Stream(samples)
	for i := 0; i < n; i++ {
		for ch := 0; ch < 2; ch++ {
			f.prev[ch] += f.alpha * (samples[i][ch] - f.prev[ch])
			samples[i][ch] = f.prev[ch]
		}
	}
	return n, ok
}

func (f *lowPass) Err() error { return f.s.Err() }

// newVolume scales s linearly by vol; 0 silences it.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
