package hop

import (
	"math"

	"github.com/vovakirdan/mattress-hop/internal/config"
	"github.com/vovakirdan/mattress-hop/internal/core"
)

// Character is the bouncing body. Pos is the center of its bounding box.
type Character struct {
	Pos        core.Vec
	Vel        core.Vec
	W, H       float64
	Grounded   bool
	FeetOffset float64 // Distance from the box bottom up to the feet

	LastBed       BedRef // Bed stood on, or most recently left
	JumpedFromBed BedRef // Bed occupied at the last jump, NoBed after landing
}

// FeetY returns the vertical position of the character's feet.
func (c Character) FeetY() float64 {
	return c.Pos.Y + c.H/2 - c.FeetOffset
}

// World is the complete simulation state of one round.
type World struct {
	cfg  config.HopConfig
	bus  *Bus
	Char Character
	Beds *BedSet

	Score int
}

// newWorld creates the bed row and an unplaced character.
func newWorld(cfg config.HopConfig, rng Rand, bus *Bus) *World {
	w := &World{
		cfg: cfg,
		bus: bus,
		Char: Character{
			W:             cfg.Character.Width,
			H:             cfg.Character.Height,
			LastBed:       NoBed,
			JumpedFromBed: NoBed,
		},
	}
	w.Beds = NewBedSet(cfg, rng, w.publish)
	return w
}

// publish stamps the current score on e and hands it to the bus.
func (w *World) publish(e Event) {
	e.Score = w.Score
	w.bus.Publish(e)
}

// feetOffset derives the feet offset from the character height.
func (w *World) feetOffset() float64 {
	return math.Round(w.Char.H * w.cfg.Character.FeetRatio)
}

// placeOn stands the character centered on b, at rest.
func (w *World) placeOn(b Bed) {
	c := &w.Char
	c.FeetOffset = w.feetOffset()
	c.Pos = core.Vec{
		X: b.X + b.W/2,
		Y: b.Y - (c.H/2 - c.FeetOffset) - w.cfg.Landing.SnapEpsilon,
	}
	c.Vel = core.Vec{}
	c.Grounded = true
	c.LastBed = b.ID
	c.JumpedFromBed = NoBed
}

// fellOut reports whether the character's top edge is below the screen.
func (w *World) fellOut() bool {
	return w.Char.Pos.Y-w.Char.H/2 > w.cfg.World.Height
}

// dropIfUnsupported ungrounds the character when the bed it rests on is no
// longer active. The next tick's integration lets it fall.
func (w *World) dropIfUnsupported() {
	if !w.Char.Grounded {
		return
	}
	if b, ok := w.Beds.Bed(w.Char.LastBed); !ok || !b.Active {
		w.Char.Grounded = false
	}
}
