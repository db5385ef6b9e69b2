package hop

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/mattress-hop/internal/config"
	"github.com/vovakirdan/mattress-hop/internal/core"
)

// Phase is the round controller state.
type Phase int

const (
	PhaseIdle     Phase = iota // Title screen, before the first start
	PhaseRunning               // Simulation advancing
	PhaseGameOver              // Frozen until restart
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Round owns the world state and drives it one frame at a time.
//
// Transitions: Idle -Start-> Running -fall-> GameOver -Restart-> Running.
// Start and Restart perform the same full re-initialization.
type Round struct {
	cfg config.HopConfig
	rt  core.RuntimeConfig
	rng Rand
	bus *Bus

	tickLog *Recorder // events raised by the latest Step or lifecycle command

	world  *World
	phase  Phase
	sprite Sprite

	finalScore int
	ticks      int
	elapsed    time.Duration
}

// New creates a round in the Idle phase, seeded from rt.Seed.
func New(cfg config.HopConfig, rt core.RuntimeConfig, sinks ...EventSink) *Round {
	return NewWithRand(cfg, rt, rand.New(rand.NewSource(rt.Seed)), sinks...)
}

// NewWithRand creates a round using the given random source.
func NewWithRand(cfg config.HopConfig, rt core.RuntimeConfig, rng Rand, sinks ...EventSink) *Round {
	r := &Round{
		cfg: cfg,
		rt:  rt,
		rng: rng,
		bus: NewBus(),
	}
	r.tickLog = &Recorder{}
	r.bus.Subscribe(r.tickLog)
	for _, s := range sinks {
		r.bus.Subscribe(s)
	}
	// Lay out a world for the title screen; Start replaces it.
	r.world = newWorld(cfg, rng, r.bus)
	r.placeCharacter()
	r.sprite = newSprite(spriteFrames, cfg.Timing.FrameInterval())
	return r
}

// ID returns the identifier used in logs and file names.
func (r *Round) ID() string {
	return "hop"
}

// Title returns the display name.
func (r *Round) Title() string {
	return "Mattress Hop"
}

// Subscribe adds an event sink.
func (r *Round) Subscribe(s EventSink) {
	r.bus.Subscribe(s)
}

// Phase returns the current controller state.
func (r *Round) Phase() Phase {
	return r.phase
}

// World exposes the live world state for inspection.
func (r *Round) World() *World {
	return r.world
}

// Ticks returns the number of simulated frames in the current round.
func (r *Round) Ticks() int {
	return r.ticks
}

// Elapsed returns the simulated time of the current round.
func (r *Round) Elapsed() time.Duration {
	return r.elapsed
}

// TickEvents returns the events raised during the latest Step.
func (r *Round) TickEvents() []Event {
	out := make([]Event, len(r.tickLog.Events))
	copy(out, r.tickLog.Events)
	return out
}

// Start leaves the title screen. Only accepted while Idle.
func (r *Round) Start() bool {
	if r.phase != PhaseIdle {
		return false
	}
	r.reset()
	return true
}

// Restart begins a new round after game over. Only accepted in GameOver.
func (r *Round) Restart() bool {
	if r.phase != PhaseGameOver {
		return false
	}
	r.reset()
	return true
}

// reset rebuilds the bed row, places the character and clears the score
// and timers.
func (r *Round) reset() {
	r.world = newWorld(r.cfg, r.rng, r.bus)
	r.placeCharacter()
	r.phase = PhaseRunning
	r.finalScore = 0
	r.ticks = 0
	r.elapsed = 0
	r.bus.Publish(Event{Kind: EventRoundStart, BedID: r.world.Char.LastBed})
}

// placeCharacter stands the character on a random active bed.
func (r *Round) placeCharacter() {
	beds := r.world.Beds
	id := beds.pick(true)
	if !id.Valid() {
		return
	}
	b, _ := beds.Bed(id)
	r.world.placeOn(b)
}

// clampDelta bounds a frame delta to [0, MaxFrameDelta]. A zero maximum
// disables the upper bound.
func (r *Round) clampDelta(dt time.Duration) time.Duration {
	if dt < 0 {
		return 0
	}
	if limit := r.cfg.Timing.MaxFrameDelta(); limit > 0 && dt > limit {
		return limit
	}
	return dt
}

// Step advances the round by one rendered frame that took dt.
//
// While Running the order is fixed: jump edge, horizontal motion, gravity,
// landing, bed fade, bed removal, animation, fall check. Idle and GameOver
// only honor their lifecycle command.
func (r *Round) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	r.tickLog.Reset()

	switch r.phase {
	case PhaseIdle:
		if in.Has(core.ActionStart) || in.Has(core.ActionJump) {
			r.Start()
		}
		return core.StepResult{State: r.State()}
	case PhaseGameOver:
		if in.Has(core.ActionRestart) {
			r.Restart()
		}
		return core.StepResult{State: r.State()}
	}

	dt = r.clampDelta(dt)
	w := r.world

	if in.Has(core.ActionJump) && w.jump() {
		r.sprite.Bump()
	}
	w.stepHorizontal(in.Direction())
	w.stepVertical()
	w.resolveLanding()

	w.Beds.Fade(dt)
	if w.Beds.Tick(dt) {
		w.dropIfUnsupported()
	}
	r.sprite.Advance(dt)

	r.ticks++
	r.elapsed += dt

	if w.fellOut() {
		r.phase = PhaseGameOver
		r.finalScore = w.Score
		w.publish(Event{Kind: EventGameOver, BedID: w.Char.LastBed})
	}

	return core.StepResult{State: r.State()}
}

// State returns the platform-level view of the round.
func (r *Round) State() core.GameState {
	return core.GameState{
		Score:    r.world.Score,
		Running:  r.phase == PhaseRunning,
		GameOver: r.phase == PhaseGameOver,
	}
}

// FinalScore returns the score the last round ended with.
func (r *Round) FinalScore() int {
	return r.finalScore
}
