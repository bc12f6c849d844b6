// Package config provides YAML-based rule constants for river raid and the
// difficulty presets layered on top of them.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid is returned (wrapped) when a configuration fails validation.
var ErrInvalid = errors.New("invalid configuration")

// RiverRaidConfig contains every rule constant of the simulation.
type RiverRaidConfig struct {
	River   RiverConfig  `yaml:"river"`
	Enemies EnemyConfig  `yaml:"enemies"`
	Bullet  BulletConfig `yaml:"bullet"`
	Loop    LoopConfig   `yaml:"loop"`
}

// RiverConfig shapes the procedural river banks.
type RiverConfig struct {
	InitialHalfWidth int `yaml:"initial_half_width"` // Half width of every row at start
	TargetHalfWidth  int `yaml:"target_half_width"`  // Half width of the first targets
	MinWidth         int `yaml:"min_width"`          // Narrowest allowed target span
	RetargetSpan     int `yaml:"retarget_span"`      // New target drawn in [old-span, old+span)
	RetargetDie      int `yaml:"retarget_die"`       // Sides of the retarget roll
	RetargetAt       int `yaml:"retarget_at"`        // Roll >= this picks a new target
}

// EnemyConfig controls enemy spawning.
type EnemyConfig struct {
	SpawnDie int `yaml:"spawn_die"` // Sides of the spawn roll
	SpawnAt  int `yaml:"spawn_at"`  // Roll >= this spawns an enemy
}

// BulletConfig controls the player's shot.
type BulletConfig struct {
	EnergyDivisor int `yaml:"energy_divisor"` // Energy = screen rows / divisor
	Speed         int `yaml:"speed"`          // Rows travelled per tick
	Ceiling       int `yaml:"ceiling"`        // Bullet is removed at row <= ceiling
}

// LoopConfig paces the game loop.
type LoopConfig struct {
	TickMS int `yaml:"tick_ms"` // Sleep between ticks
	PollMS int `yaml:"poll_ms"` // Input poll timeout
}

// Tick returns the pacing interval.
func (l LoopConfig) Tick() time.Duration {
	return time.Duration(l.TickMS) * time.Millisecond
}

// PollTimeout returns how long the loop waits for input each tick.
func (l LoopConfig) PollTimeout() time.Duration {
	return time.Duration(l.PollMS) * time.Millisecond
}

// BulletEnergy returns the energy of a new bullet on a screen with the given rows.
func (c RiverRaidConfig) BulletEnergy(rows int) int {
	e := rows / c.Bullet.EnergyDivisor
	if e < 1 {
		e = 1
	}
	return e
}

// Validate checks that every constant yields a playable, total simulation.
func (c RiverRaidConfig) Validate() error {
	r := c.River
	switch {
	case r.MinWidth < 1:
		return fmt.Errorf("config: river.min_width must be >= 1: %w", ErrInvalid)
	case 2*r.InitialHalfWidth < r.MinWidth:
		return fmt.Errorf("config: river.initial_half_width narrower than min_width: %w", ErrInvalid)
	case 2*r.TargetHalfWidth < r.MinWidth:
		return fmt.Errorf("config: river.target_half_width narrower than min_width: %w", ErrInvalid)
	case r.RetargetSpan < 1:
		return fmt.Errorf("config: river.retarget_span must be >= 1: %w", ErrInvalid)
	case r.RetargetDie < 1 || r.RetargetAt < 0 || r.RetargetAt > r.RetargetDie:
		return fmt.Errorf("config: river.retarget_at must lie within the die: %w", ErrInvalid)
	}

	e := c.Enemies
	if e.SpawnDie < 1 || e.SpawnAt < 0 || e.SpawnAt > e.SpawnDie {
		return fmt.Errorf("config: enemies.spawn_at must lie within the die: %w", ErrInvalid)
	}

	b := c.Bullet
	switch {
	case b.EnergyDivisor < 1:
		return fmt.Errorf("config: bullet.energy_divisor must be >= 1: %w", ErrInvalid)
	case b.Speed < 1:
		return fmt.Errorf("config: bullet.speed must be >= 1: %w", ErrInvalid)
	case b.Ceiling < 0:
		return fmt.Errorf("config: bullet.ceiling must be >= 0: %w", ErrInvalid)
	}

	if c.Loop.TickMS < 1 || c.Loop.PollMS < 0 {
		return fmt.Errorf("config: loop.tick_ms must be >= 1 and loop.poll_ms >= 0: %w", ErrInvalid)
	}
	return nil
}
