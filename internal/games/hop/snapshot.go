package hop

import (
	"math"

	"github.com/vovakirdan/mattress-hop/internal/core"
)

// maxTilt bounds the rendering tilt hint in either direction.
const maxTilt = 0.25

// CharacterView is the renderer-facing copy of the character.
type CharacterView struct {
	X, Y     float64 // Center
	W, H     float64
	Vx, Vy   float64
	Grounded bool
	Tilt     float64 // clamp(vy/20, -0.25, 0.25)
	Frame    int     // Sprite frame index
}

// BedView is the renderer-facing copy of a bed.
type BedView struct {
	ID     BedRef
	X, Y   float64
	W, H   float64
	Active bool
	Alpha  float64
}

// Rect returns the character's bounding box.
func (c CharacterView) Rect() core.RectF {
	return core.RectF{X: c.X - c.W/2, Y: c.Y - c.H/2, W: c.W, H: c.H}
}

// Rect returns the bed's bounding rectangle.
func (b BedView) Rect() core.RectF {
	return core.RectF{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

// Visible reports whether the bed is still drawn: active, or fading out.
func (b BedView) Visible() bool {
	return b.Active || b.Alpha > 0
}

// Snapshot captures everything a renderer needs for one frame. It is a value
// copy and stays valid after the round advances.
type Snapshot struct {
	Phase      Phase
	Score      int
	FinalScore int
	GameOver   bool
	Ticks      int

	Character CharacterView
	Beds      []BedView

	WorldW, WorldH float64
	FloorY         float64
	RestartButton  core.RectF // Hit region of the in-screen restart button
}

// Snapshot returns the current render state.
func (r *Round) Snapshot() Snapshot {
	w := r.world
	c := w.Char

	beds := make([]BedView, 0, w.Beds.Len())
	for _, b := range w.Beds.beds {
		beds = append(beds, BedView{
			ID:     b.ID,
			X:      b.X,
			Y:      b.Y,
			W:      b.W,
			H:      b.H,
			Active: b.Active,
			Alpha:  b.Alpha,
		})
	}

	return Snapshot{
		Phase:      r.phase,
		Score:      w.Score,
		FinalScore: r.finalScore,
		GameOver:   r.phase == PhaseGameOver,
		Ticks:      r.ticks,
		Character: CharacterView{
			X:        c.Pos.X,
			Y:        c.Pos.Y,
			W:        c.W,
			H:        c.H,
			Vx:       c.Vel.X,
			Vy:       c.Vel.Y,
			Grounded: c.Grounded,
			Tilt:     core.ClampF(c.Vel.Y/20, -maxTilt, maxTilt),
			Frame:    r.sprite.Frame(),
		},
		Beds:          beds,
		WorldW:        r.cfg.World.Width,
		WorldH:        r.cfg.World.Height,
		FloorY:        r.cfg.World.Height - r.cfg.World.FloorHeight,
		RestartButton: r.restartButton(),
	}
}

// restartButton returns the game-over button region in world units:
// horizontally centered, its top edge 60 units below the middle.
func (r *Round) restartButton() core.RectF {
	ww, wh := r.cfg.World.Width, r.cfg.World.Height
	bw := math.Min(300, math.Floor(ww*0.18))
	bh := math.Min(64, math.Floor(wh*0.08))
	return core.RectF{
		X: ww/2 - bw/2,
		Y: wh/2 + 60,
		W: bw,
		H: bh,
	}
}

// RestartHit restarts the round when (x, y), in world units, falls inside
// the restart button during game over. Returns whether a restart happened.
func (r *Round) RestartHit(x, y float64) bool {
	if r.phase != PhaseGameOver {
		return false
	}
	if !r.restartButton().Contains(x, y) {
		return false
	}
	return r.Restart()
}
