package config

import (
	_ "embed"
)

//go:embed defaults/hop.yaml
var defaultHopYAML []byte

// DefaultHopConfig returns the built-in tuning. It mirrors defaults/hop.yaml
// and is used when the embedded file cannot be parsed.
func DefaultHopConfig() HopConfig {
	return HopConfig{
		World: HopWorld{
			Width:       1280,
			Height:      720,
			FloorHeight: 48,
			WrapMargin:  80,
		},
		Physics: HopPhysics{
			Gravity:        0.6,
			JumpImpulse:    -12,
			JumpMultiplier: 1.8,
			MoveSpeed:      4,
			Friction:       0.92,
			StopThreshold:  0.05,
		},
		Character: HopCharacter{
			Width:     120,
			Height:    160,
			FeetRatio: 0.18,
		},
		Beds: HopBeds{
			Count:       6,
			Padding:     40,
			WidthRatio:  0.62,
			MinWidth:    100,
			HeightRatio: 0.18,
			MinHeight:   36,
		},
		Landing: HopLanding{
			EdgePadding:   2,
			BandAbove:     6,
			BandBelow:     12,
			SnapTolerance: 2,
			SnapEpsilon:   0.1,
			MinAlpha:      0.2,
		},
		Timing: HopTiming{
			RemovalIntervalMS: 10000,
			FadeMS:            600,
			FrameIntervalMS:   140,
			MaxFrameDeltaMS:   250,
			ReactivateEvery:   2,
		},
		Scoring: HopScoring{
			SwitchPoints: 10,
		},
		Audio: HopAudio{
			Enabled:    true,
			Volume:     0.8,
			SampleRate: 44100,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultHopYAML
}
