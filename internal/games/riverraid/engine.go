package riverraid

// Step advances the world by one tick. The order is fixed: collisions are
// judged against the rows the player currently sees, before the river scrolls.
//
//  1. bank collision
//  2. enemy/player collision
//  3. enemy/bullet collision
//  4. river scroll and retarget
//  5. enemy spawn
//  6. enemy movement
//  7. bullet movement
//
// A tick always runs to completion; a dead world does not advance further.
func (w *World) Step() {
	if w.Status == StatusDead {
		return
	}
	w.ticks++

	w.checkBank()
	w.checkEnemies()
	w.kills += w.RemoveShotEnemies()

	w.River.Update(w.rng)

	w.maybeSpawn()
	w.MoveEnemies(w.rows)
	w.MoveBullets(w.cfg.Bullet.Speed, w.cfg.Bullet.Ceiling)
}

func (w *World) checkBank() {
	if !w.River.At(w.Player.Y).Contains(w.Player.X) {
		w.kill(CauseBank)
	}
}

func (w *World) checkEnemies() {
	if w.EnemyAt(w.Player.X, w.Player.Y) {
		w.kill(CauseEnemy)
	}
}

func (w *World) kill(c Cause) {
	if w.Status == StatusDead {
		return
	}
	w.Status = StatusDead
	w.Cause = c
}

func (w *World) maybeSpawn() {
	e := w.cfg.Enemies
	if w.rng.Range(0, e.SpawnDie) < e.SpawnAt {
		return
	}
	head := w.River.Head()
	w.Spawn(w.rng.Range(head.Left, head.Right))
}
