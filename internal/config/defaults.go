package config

import (
	_ "embed"
)

//go:embed defaults/riverraid.yaml
var defaultRiverRaidYAML []byte

// DefaultRiverRaidConfig returns the hard-coded rule constants.
// It mirrors defaults/riverraid.yaml and is used if the embedded file cannot be parsed.
func DefaultRiverRaidConfig() RiverRaidConfig {
	return RiverRaidConfig{
		River: RiverConfig{
			InitialHalfWidth: 5,
			TargetHalfWidth:  7,
			MinWidth:         3,
			RetargetSpan:     5,
			RetargetDie:      10,
			RetargetAt:       7,
		},
		Enemies: EnemyConfig{
			SpawnDie: 10,
			SpawnAt:  9,
		},
		Bullet: BulletConfig{
			EnergyDivisor: 4,
			Speed:         2,
			Ceiling:       2,
		},
		Loop: LoopConfig{
			TickMS: 100,
			PollMS: 10,
		},
	}
}

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	return defaultRiverRaidYAML
}
