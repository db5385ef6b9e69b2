// Package config provides YAML/TOML based tuning configuration for the game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid is returned (wrapped) when a configuration value is out of range.
var ErrInvalid = errors.New("config: invalid value")

// HopConfig contains all tuning for Mattress Hop.
type HopConfig struct {
	World     HopWorld     `yaml:"world" toml:"world"`
	Physics   HopPhysics   `yaml:"physics" toml:"physics"`
	Character HopCharacter `yaml:"character" toml:"character"`
	Beds      HopBeds      `yaml:"beds" toml:"beds"`
	Landing   HopLanding   `yaml:"landing" toml:"landing"`
	Timing    HopTiming    `yaml:"timing" toml:"timing"`
	Scoring   HopScoring   `yaml:"scoring" toml:"scoring"`
	Audio     HopAudio     `yaml:"audio" toml:"audio"`
}

// HopWorld defines the playfield in world units.
type HopWorld struct {
	Width       float64 `yaml:"width" toml:"width"`
	Height      float64 `yaml:"height" toml:"height"`
	FloorHeight float64 `yaml:"floor_height" toml:"floor_height"` // Floor band at the bottom
	WrapMargin  float64 `yaml:"wrap_margin" toml:"wrap_margin"`   // Overshoot before screen-wrap
}

// HopPhysics defines per-frame motion constants.
type HopPhysics struct {
	Gravity        float64 `yaml:"gravity" toml:"gravity"`
	JumpImpulse    float64 `yaml:"jump_impulse" toml:"jump_impulse"`
	JumpMultiplier float64 `yaml:"jump_multiplier" toml:"jump_multiplier"`
	MoveSpeed      float64 `yaml:"move_speed" toml:"move_speed"`
	Friction       float64 `yaml:"friction" toml:"friction"`             // vx multiplier without input
	StopThreshold  float64 `yaml:"stop_threshold" toml:"stop_threshold"` // |vx| below this snaps to 0
}

// HopCharacter defines the character body.
type HopCharacter struct {
	Width     float64 `yaml:"width" toml:"width"`
	Height    float64 `yaml:"height" toml:"height"`
	FeetRatio float64 `yaml:"feet_ratio" toml:"feet_ratio"` // Feet offset as a fraction of height
}

// HopBeds defines the bed row layout.
type HopBeds struct {
	Count       int     `yaml:"count" toml:"count"`
	Padding     float64 `yaml:"padding" toml:"padding"`
	WidthRatio  float64 `yaml:"width_ratio" toml:"width_ratio"` // Bed width as a fraction of its slot
	MinWidth    float64 `yaml:"min_width" toml:"min_width"`
	HeightRatio float64 `yaml:"height_ratio" toml:"height_ratio"` // Bed height as a fraction of width
	MinHeight   float64 `yaml:"min_height" toml:"min_height"`
}

// HopLanding defines the landing resolver tolerances.
type HopLanding struct {
	EdgePadding   float64 `yaml:"edge_padding" toml:"edge_padding"`
	BandAbove     float64 `yaml:"band_above" toml:"band_above"`
	BandBelow     float64 `yaml:"band_below" toml:"band_below"`
	SnapTolerance float64 `yaml:"snap_tolerance" toml:"snap_tolerance"`
	SnapEpsilon   float64 `yaml:"snap_epsilon" toml:"snap_epsilon"`
	MinAlpha      float64 `yaml:"min_alpha" toml:"min_alpha"`
}

// HopTiming defines wall-clock accumulated timers, in milliseconds.
type HopTiming struct {
	RemovalIntervalMS int `yaml:"removal_interval_ms" toml:"removal_interval_ms"`
	FadeMS            int `yaml:"fade_ms" toml:"fade_ms"`
	FrameIntervalMS   int `yaml:"frame_interval_ms" toml:"frame_interval_ms"`
	MaxFrameDeltaMS   int `yaml:"max_frame_delta_ms" toml:"max_frame_delta_ms"` // 0 disables clamping
	ReactivateEvery   int `yaml:"reactivate_every" toml:"reactivate_every"`
}

// HopScoring defines points.
type HopScoring struct {
	SwitchPoints int `yaml:"switch_points" toml:"switch_points"`
}

// HopAudio defines the audio cue output.
type HopAudio struct {
	Enabled    bool    `yaml:"enabled" toml:"enabled"`
	Volume     float64 `yaml:"volume" toml:"volume"` // 0.0 - 1.0
	SampleRate int     `yaml:"sample_rate" toml:"sample_rate"`
}

// RemovalInterval returns the bed removal interval.
func (t HopTiming) RemovalInterval() time.Duration {
	return time.Duration(t.RemovalIntervalMS) * time.Millisecond
}

// Fade returns the bed fade-out duration.
func (t HopTiming) Fade() time.Duration {
	return time.Duration(t.FadeMS) * time.Millisecond
}

// FrameInterval returns the sprite animation interval.
func (t HopTiming) FrameInterval() time.Duration {
	return time.Duration(t.FrameIntervalMS) * time.Millisecond
}

// MaxFrameDelta returns the largest delta a single tick may consume.
// Zero means no clamping.
func (t HopTiming) MaxFrameDelta() time.Duration {
	return time.Duration(t.MaxFrameDeltaMS) * time.Millisecond
}

// Validate checks that the configuration can drive a round.
func (c HopConfig) Validate() error {
	positives := []struct {
		name string
		val  float64
	}{
		{"world.width", c.World.Width},
		{"world.height", c.World.Height},
		{"character.width", c.Character.Width},
		{"character.height", c.Character.Height},
		{"beds.count", float64(c.Beds.Count)},
		{"beds.min_width", c.Beds.MinWidth},
		{"beds.min_height", c.Beds.MinHeight},
		{"timing.removal_interval_ms", float64(c.Timing.RemovalIntervalMS)},
		{"timing.fade_ms", float64(c.Timing.FadeMS)},
		{"timing.frame_interval_ms", float64(c.Timing.FrameIntervalMS)},
		{"timing.reactivate_every", float64(c.Timing.ReactivateEvery)},
		{"audio.sample_rate", float64(c.Audio.SampleRate)},
	}
	for _, p := range positives {
		if p.val <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalid, p.name, p.val)
		}
	}

	if c.Timing.MaxFrameDeltaMS < 0 {
		return fmt.Errorf("%w: timing.max_frame_delta_ms must not be negative", ErrInvalid)
	}
	if c.Physics.Friction < 0 || c.Physics.Friction >= 1 {
		return fmt.Errorf("%w: physics.friction must be in [0, 1), got %v", ErrInvalid, c.Physics.Friction)
	}
	if c.Landing.MinAlpha < 0 || c.Landing.MinAlpha > 1 {
		return fmt.Errorf("%w: landing.min_alpha must be in [0, 1], got %v", ErrInvalid, c.Landing.MinAlpha)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("%w: audio.volume must be in [0, 1], got %v", ErrInvalid, c.Audio.Volume)
	}
	if c.Beds.Padding*2 >= c.World.Width {
		return fmt.Errorf("%w: beds.padding leaves no room for beds", ErrInvalid)
	}
	return nil
}
