package riverraid

import (
	"testing"

	"github.com/vovakirdan/riverraid/internal/config"
	"github.com/vovakirdan/riverraid/internal/core"
)

func TestStepBankCollision(t *testing.T) {
	w := newTestWorld(40, 20)
	w.River.Rows[w.Player.Y] = Span{Left: 25, Right: 35}

	w.Step()

	if w.Status != StatusDead {
		t.Fatalf("Status = %v, expected dead", w.Status)
	}
	if w.Cause != CauseBank {
		t.Errorf("Cause = %v, expected bank", w.Cause)
	}
}

func TestStepBankEdgeIsExclusive(t *testing.T) {
	w := newTestWorld(40, 20)
	w.River.Rows[w.Player.Y] = Span{Left: 10, Right: w.Player.X}

	w.Step()

	if w.Status != StatusDead {
		t.Errorf("player on the right bound should crash, status = %v", w.Status)
	}
}

func TestStepEnemyCollision(t *testing.T) {
	w := newTestWorld(40, 20)
	w.Enemies = []Enemy{{Col: w.Player.X, Row: w.Player.Y}}

	w.Step()

	if w.Status != StatusDead || w.Cause != CauseEnemy {
		t.Errorf("Status = %v, Cause = %v, expected dead by enemy", w.Status, w.Cause)
	}
}

func TestStepBulletHitsEnemy(t *testing.T) {
	w := newTestWorld(40, 20)
	w.Enemies = []Enemy{{Col: 5, Row: 10}}
	w.Bullets = []Bullet{{Col: 5, Row: 11, Energy: 4}}

	w.Step()

	if len(w.Enemies) != 0 {
		t.Errorf("enemies = %+v, expected hit enemy removed", w.Enemies)
	}
	if w.State().Score != 1 {
		t.Errorf("Score = %d, expected 1", w.State().Score)
	}
	if w.Status != StatusAlive {
		t.Errorf("Status = %v, expected alive", w.Status)
	}
}

func TestStepSpawn(t *testing.T) {
	// Head moves from (15, 25) to (14, 26) before the spawn roll
	w := newTestWorld(40, 20, 9, 17)

	w.Step()

	if len(w.Enemies) != 1 {
		t.Fatalf("len(Enemies) = %d, expected 1", len(w.Enemies))
	}
	if w.Enemies[0] != (Enemy{Col: 17, Row: 1}) {
		t.Errorf("enemy = %+v, expected spawned at col 17 and moved to row 1", w.Enemies[0])
	}
}

func TestStepNoSpawnOnLowRoll(t *testing.T) {
	w := newTestWorld(40, 20, 8, 17)

	w.Step()

	if len(w.Enemies) != 0 {
		t.Errorf("enemies = %+v, expected none", w.Enemies)
	}
}

func TestStepBulletLifecycle(t *testing.T) {
	w := newTestWorld(40, 20)
	w.Apply(core.ActionFire)
	energy := w.Bullets[0].Energy
	row := w.Bullets[0].Row

	ticks := 0
	for len(w.Bullets) > 0 {
		w.Step()
		ticks++
		row -= 2
		if len(w.Bullets) > 0 && w.Bullets[0].Row != row {
			t.Fatalf("tick %d: bullet row = %d, expected %d", ticks, w.Bullets[0].Row, row)
		}
	}

	if ticks != energy {
		t.Errorf("bullet removed after %d ticks, expected %d", ticks, energy)
	}
	if w.Status != StatusAlive {
		t.Errorf("Status = %v, expected alive", w.Status)
	}
}

func TestStepCompletesOnDeathTick(t *testing.T) {
	w := newTestWorld(40, 20)
	w.River.Rows[w.Player.Y] = Span{Left: 25, Right: 35}
	w.Bullets = []Bullet{{Col: 20, Row: 10, Energy: 4}}
	w.Enemies = []Enemy{{Col: 30, Row: 3}}

	w.Step()

	if w.Status != StatusDead {
		t.Fatalf("Status = %v, expected dead", w.Status)
	}
	if w.Bullets[0].Row != 8 {
		t.Errorf("bullet row = %d, expected 8", w.Bullets[0].Row)
	}
	if w.Enemies[0].Row != 4 {
		t.Errorf("enemy row = %d, expected 4", w.Enemies[0].Row)
	}
	if w.River.Rows[w.Player.Y] != (Span{Left: 15, Right: 25}) {
		t.Errorf("river did not scroll on death tick: %+v", w.River.Rows[w.Player.Y])
	}
}

func TestStepDeadIsNoop(t *testing.T) {
	w := newTestWorld(40, 20)
	w.Status = StatusDead
	w.Enemies = []Enemy{{Col: 20, Row: 5}}
	before := w.Snapshot()

	w.Step()

	if w.Snapshot() != before {
		t.Errorf("dead world advanced: %+v -> %+v", before, w.Snapshot())
	}
}

func TestDeterminism(t *testing.T) {
	cfg := config.DefaultRiverRaidConfig()
	inputs := []core.Action{
		core.ActionNone, core.ActionLeft, core.ActionFire, core.ActionNone,
		core.ActionRight, core.ActionRight, core.ActionUp, core.ActionFire,
	}

	run := func() Snapshot {
		w := NewWorld(60, 30, cfg, core.NewRand(12345))
		for i := 0; i < 400 && w.Alive(); i++ {
			w.Apply(inputs[i%len(inputs)])
			w.Step()
		}
		return w.Snapshot()
	}

	a, b := run(), run()
	if a != b {
		t.Errorf("runs diverged:\n%+v\n%+v", a, b)
	}
}
