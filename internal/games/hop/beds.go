package hop

import (
	"math"
	"time"

	"github.com/vovakirdan/mattress-hop/internal/config"
)

// Bed is one landing surface. X, Y is the top-left corner; the top edge is
// the surface the character stands on.
type Bed struct {
	ID     BedRef
	X, Y   float64
	W, H   float64
	Active bool
	Alpha  float64 // 1 while active, fades to 0 after deactivation

	faded time.Duration // fade time accumulated since deactivation
}

// BedSet is the fixed-size bed collection of one round. Slots are never
// added or removed, only toggled, so IDs stay valid for the whole round.
type BedSet struct {
	beds []Bed
	rng  Rand
	emit func(Event)

	interval        time.Duration
	fadeDuration    time.Duration
	reactivateEvery int

	timer         time.Duration // time since the last removal
	removals      int
	reactivations int
}

// NewBedSet lays out cfg.Beds.Count beds in a row above the floor.
// emit may be nil.
func NewBedSet(cfg config.HopConfig, rng Rand, emit func(Event)) *BedSet {
	if emit == nil {
		emit = func(Event) {}
	}
	return &BedSet{
		beds:            layoutBeds(cfg),
		rng:             rng,
		emit:            emit,
		interval:        cfg.Timing.RemovalInterval(),
		fadeDuration:    cfg.Timing.Fade(),
		reactivateEvery: cfg.Timing.ReactivateEvery,
	}
}

// layoutBeds spreads the beds evenly across the world width, each centered
// in its slot and resting on the floor.
func layoutBeds(cfg config.HopConfig) []Bed {
	w, b := cfg.World, cfg.Beds

	gap := (w.Width - b.Padding*2) / float64(b.Count)
	bedW := math.Max(b.MinWidth, math.Floor(gap*b.WidthRatio))
	bedH := math.Max(b.MinHeight, math.Floor(bedW*b.HeightRatio))
	bedY := math.Floor(w.Height - w.FloorHeight - bedH)

	beds := make([]Bed, b.Count)
	for i := range beds {
		beds[i] = Bed{
			ID:     BedRef(i),
			X:      b.Padding + float64(i)*gap + (gap-bedW)/2,
			Y:      bedY,
			W:      bedW,
			H:      bedH,
			Active: true,
			Alpha:  1,
		}
	}
	return beds
}

// Len returns the number of bed slots.
func (s *BedSet) Len() int {
	return len(s.beds)
}

// Bed returns the bed with the given ID.
func (s *BedSet) Bed(id BedRef) (Bed, bool) {
	if !id.Valid() || int(id) >= len(s.beds) {
		return Bed{}, false
	}
	return s.beds[id], true
}

// All returns a copy of every bed in ID order.
func (s *BedSet) All() []Bed {
	out := make([]Bed, len(s.beds))
	copy(out, s.beds)
	return out
}

// ActiveCount returns how many beds are currently active.
func (s *BedSet) ActiveCount() int {
	n := 0
	for _, b := range s.beds {
		if b.Active {
			n++
		}
	}
	return n
}

// Removals returns the number of removals performed this round.
func (s *BedSet) Removals() int {
	return s.removals
}

// Reactivations returns the number of beds brought back this round.
func (s *BedSet) Reactivations() int {
	return s.reactivations
}

// Timer returns the time accumulated since the last removal.
func (s *BedSet) Timer() time.Duration {
	return s.timer
}

// Fade advances the fade-out of every inactive, still visible bed.
// Alpha falls linearly from 1 to exactly 0 over the fade duration.
func (s *BedSet) Fade(dt time.Duration) {
	for i := range s.beds {
		b := &s.beds[i]
		if b.Active || b.Alpha <= 0 {
			continue
		}
		b.faded += dt
		b.Alpha = 1 - float64(b.faded)/float64(s.fadeDuration)
		if b.Alpha < 0 {
			b.Alpha = 0
		}
	}
}

// Tick accumulates the removal timer and removes a bed once the interval
// has elapsed. Returns true when a removal was due.
func (s *BedSet) Tick(dt time.Duration) bool {
	s.timer += dt
	if s.timer < s.interval {
		return false
	}
	s.timer = 0
	s.RemoveRandom()
	return true
}

// RemoveRandom deactivates one active bed chosen uniformly at random and
// returns its ID. Every reactivateEvery-th removal also brings back a random
// inactive bed. Returns NoBed when no bed is active.
func (s *BedSet) RemoveRandom() BedRef {
	id := s.pick(true)
	if !id.Valid() {
		return NoBed
	}

	b := &s.beds[id]
	b.Active = false
	b.faded = 0
	s.emit(Event{Kind: EventBedRemoved, BedID: id})

	s.removals++
	if s.removals%s.reactivateEvery == 0 {
		s.ReactivateRandom()
	}
	return id
}

// ReactivateRandom restores one inactive bed chosen uniformly at random.
// Returns NoBed when every bed is already active.
func (s *BedSet) ReactivateRandom() BedRef {
	id := s.pick(false)
	if !id.Valid() {
		return NoBed
	}

	b := &s.beds[id]
	b.Active = true
	b.Alpha = 1
	b.faded = 0
	s.reactivations++
	s.emit(Event{Kind: EventBedReactivated, BedID: id})
	return id
}

// pick chooses uniformly among the beds whose Active flag equals active.
func (s *BedSet) pick(active bool) BedRef {
	candidates := make([]BedRef, 0, len(s.beds))
	for _, b := range s.beds {
		if b.Active == active {
			candidates = append(candidates, b.ID)
		}
	}
	if len(candidates) == 0 {
		return NoBed
	}
	return candidates[s.rng.Intn(len(candidates))]
}
