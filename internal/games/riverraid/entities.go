package riverraid

// Enemy is a hostile craft drifting down the river.
type Enemy struct {
	Col int
	Row int
}

// Bullet is the player's shot. Energy is its remaining range in ticks.
type Bullet struct {
	Col    int
	Row    int
	Energy int
}

// Entities holds every transient object of a world.
// Removal always builds a retained set so each entity is visited once per pass.
type Entities struct {
	Enemies []Enemy
	Bullets []Bullet
}

// EnemyAt reports whether an enemy occupies the cell.
func (e *Entities) EnemyAt(col, row int) bool {
	for _, en := range e.Enemies {
		if en.Col == col && en.Row == row {
			return true
		}
	}
	return false
}

// Fire launches a bullet unless one is already live.
// Returns false when the shot was ignored.
func (e *Entities) Fire(col, row, energy int) bool {
	if len(e.Bullets) > 0 {
		return false
	}
	e.Bullets = append(e.Bullets, Bullet{Col: col, Row: row, Energy: energy})
	return true
}

// RemoveShotEnemies deletes every enemy in the same column as a bullet and at
// most one row away from it. One bullet may take out several stacked enemies.
// Returns the number of enemies removed.
func (e *Entities) RemoveShotEnemies() int {
	if len(e.Bullets) == 0 {
		return 0
	}

	kept := e.Enemies[:0]
	for _, en := range e.Enemies {
		if !e.shot(en) {
			kept = append(kept, en)
		}
	}
	removed := len(e.Enemies) - len(kept)
	e.Enemies = kept
	return removed
}

func (e *Entities) shot(en Enemy) bool {
	for _, b := range e.Bullets {
		d := en.Row - b.Row
		if en.Col == b.Col && d >= -1 && d <= 1 {
			return true
		}
	}
	return false
}

// Spawn adds an enemy at the top row.
func (e *Entities) Spawn(col int) {
	e.Enemies = append(e.Enemies, Enemy{Col: col, Row: 0})
}

// MoveEnemies moves every enemy one row down and drops those that leave the screen.
func (e *Entities) MoveEnemies(maxRows int) {
	kept := e.Enemies[:0]
	for _, en := range e.Enemies {
		en.Row++
		if en.Row < maxRows {
			kept = append(kept, en)
		}
	}
	e.Enemies = kept
}

// MoveBullets advances every bullet by speed rows and burns one unit of energy.
// A bullet is removed once its energy is spent or it reaches row <= ceiling.
func (e *Entities) MoveBullets(speed, ceiling int) {
	kept := e.Bullets[:0]
	for _, b := range e.Bullets {
		b.Row -= speed
		b.Energy--
		if b.Energy > 0 && b.Row > ceiling {
			kept = append(kept, b)
		}
	}
	e.Bullets = kept
}
