package hop

import "math"

// bedUnder returns the first landable bed (in ID order) whose surface lies in
// the narrow band around the character's feet, or nil.
//
// A bed is landable while active with alpha at or above the landing
// threshold. The horizontal span is padded on both sides; the test is strict
// so a character exactly on the padded edge misses.
func (w *World) bedUnder() *Bed {
	l := w.cfg.Landing
	c := w.Char
	feetY := c.FeetY()

	for i := range w.Beds.beds {
		b := &w.Beds.beds[i]
		if !b.Active || b.Alpha < l.MinAlpha {
			continue
		}
		top := b.Y
		if feetY < top-l.BandAbove || feetY > top+l.BandBelow {
			continue
		}
		if c.Pos.X > b.X-l.EdgePadding && c.Pos.X < b.X+b.W+l.EdgePadding {
			return b
		}
	}
	return nil
}

// jump launches the character when it stands on a bed. The boost multiplier
// applies to every jump. Returns false when airborne.
func (w *World) jump() bool {
	c := &w.Char
	if !c.Grounded {
		return false
	}

	c.JumpedFromBed = NoBed
	if b := w.bedUnder(); b != nil {
		c.JumpedFromBed = b.ID
	}
	c.Vel.Y = w.cfg.Physics.JumpImpulse * w.cfg.Physics.JumpMultiplier
	c.Grounded = false

	w.publish(Event{Kind: EventBounce, BedID: c.JumpedFromBed})
	return true
}

// stepHorizontal applies steering or friction and moves the character,
// wrapping it to the opposite side once it reaches the wrap margin beyond
// either edge.
func (w *World) stepHorizontal(dir int) {
	p := w.cfg.Physics
	c := &w.Char

	if dir != 0 {
		c.Vel.X = float64(dir) * p.MoveSpeed
	} else {
		c.Vel.X *= p.Friction
		if math.Abs(c.Vel.X) < p.StopThreshold {
			c.Vel.X = 0
		}
	}

	c.Pos.X += c.Vel.X

	margin := w.cfg.World.WrapMargin
	switch {
	case c.Pos.X <= -margin:
		c.Pos.X = w.cfg.World.Width + margin
	case c.Pos.X >= w.cfg.World.Width+margin:
		c.Pos.X = -margin
	}
}

// stepVertical integrates gravity while airborne. Velocity is updated
// before position.
func (w *World) stepVertical() {
	c := &w.Char
	if c.Grounded {
		return
	}
	c.Vel.Y += w.cfg.Physics.Gravity
	c.Pos.Y += c.Vel.Y
}

// resolveLanding arrests downward motion on the bed under the feet and
// applies the switch-bed scoring rule. With no bed under the feet the
// character is airborne, even if it was standing a tick ago.
func (w *World) resolveLanding() {
	c := &w.Char
	b := w.bedUnder()
	if b == nil {
		c.Grounded = false
		return
	}

	// Rising through a band (or resting with vy == 0) never collides.
	if c.Vel.Y <= 0 {
		return
	}

	l := w.cfg.Landing
	if c.FeetY() < b.Y-l.SnapTolerance {
		return
	}

	c.FeetOffset = w.feetOffset()
	c.Pos.Y = b.Y - (c.H/2 - c.FeetOffset) - l.SnapEpsilon
	c.Vel.Y = 0
	c.Grounded = true

	points := 0
	if c.JumpedFromBed.Valid() && c.JumpedFromBed != b.ID {
		points = w.cfg.Scoring.SwitchPoints
		w.Score += points
	}
	c.LastBed = b.ID
	c.JumpedFromBed = NoBed

	w.publish(Event{Kind: EventLanded, BedID: b.ID, Points: points})
}
