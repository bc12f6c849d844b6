package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset validates a preset name. The empty string means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard): %w", name, ErrInvalid)
	}
}

// ApplyRiverRaidPreset modifies the config based on a difficulty preset.
// Normal leaves the loaded constants untouched.
func ApplyRiverRaidPreset(cfg *RiverRaidConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		// Longer-range shots
		cfg.Bullet.EnergyDivisor = 3
	case DifficultyHard:
		// One extra face of the die spawns an enemy
		if cfg.Enemies.SpawnAt > 1 {
			cfg.Enemies.SpawnAt--
		}
	}
}
