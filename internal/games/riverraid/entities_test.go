package riverraid

import "testing"

func TestFireAtMostOneBullet(t *testing.T) {
	var e Entities

	if !e.Fire(5, 10, 4) {
		t.Fatal("first Fire() = false, expected true")
	}
	if e.Fire(7, 3, 9) {
		t.Error("second Fire() = true, expected false")
	}
	if len(e.Bullets) != 1 {
		t.Fatalf("len(Bullets) = %d, expected 1", len(e.Bullets))
	}
	if e.Bullets[0] != (Bullet{Col: 5, Row: 10, Energy: 4}) {
		t.Errorf("bullet = %+v, expected first shot untouched", e.Bullets[0])
	}
}

func TestRemoveShotEnemies(t *testing.T) {
	tests := []struct {
		name    string
		enemies []Enemy
		bullet  Bullet
		removed int
		left    []Enemy
	}{
		{
			name:    "enemy directly above bullet",
			enemies: []Enemy{{Col: 5, Row: 10}},
			bullet:  Bullet{Col: 5, Row: 11},
			removed: 1,
		},
		{
			name:    "stacked enemies all hit",
			enemies: []Enemy{{Col: 5, Row: 10}, {Col: 5, Row: 11}, {Col: 5, Row: 12}},
			bullet:  Bullet{Col: 5, Row: 11},
			removed: 3,
		},
		{
			name:    "two rows away survives",
			enemies: []Enemy{{Col: 5, Row: 9}, {Col: 5, Row: 13}},
			bullet:  Bullet{Col: 5, Row: 11},
			removed: 0,
			left:    []Enemy{{Col: 5, Row: 9}, {Col: 5, Row: 13}},
		},
		{
			name:    "other column survives",
			enemies: []Enemy{{Col: 6, Row: 11}, {Col: 5, Row: 12}},
			bullet:  Bullet{Col: 5, Row: 11},
			removed: 1,
			left:    []Enemy{{Col: 6, Row: 11}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Entities{Enemies: tt.enemies, Bullets: []Bullet{tt.bullet}}
			if got := e.RemoveShotEnemies(); got != tt.removed {
				t.Errorf("RemoveShotEnemies() = %d, expected %d", got, tt.removed)
			}
			if len(e.Enemies) != len(tt.left) {
				t.Fatalf("enemies left = %+v, expected %+v", e.Enemies, tt.left)
			}
			for i := range tt.left {
				if e.Enemies[i] != tt.left[i] {
					t.Errorf("enemy %d = %+v, expected %+v", i, e.Enemies[i], tt.left[i])
				}
			}
		})
	}
}

func TestRemoveShotEnemiesWithoutBullet(t *testing.T) {
	e := Entities{Enemies: []Enemy{{Col: 1, Row: 1}}}
	if got := e.RemoveShotEnemies(); got != 0 {
		t.Errorf("RemoveShotEnemies() = %d, expected 0", got)
	}
	if len(e.Enemies) != 1 {
		t.Errorf("len(Enemies) = %d, expected 1", len(e.Enemies))
	}
}

func TestMoveEnemiesCulling(t *testing.T) {
	const rows = 20
	e := Entities{Enemies: []Enemy{{Col: 3, Row: rows - 1}, {Col: 4, Row: rows - 2}, {Col: 5, Row: 0}}}

	e.MoveEnemies(rows)

	want := []Enemy{{Col: 4, Row: rows - 1}, {Col: 5, Row: 1}}
	if len(e.Enemies) != len(want) {
		t.Fatalf("enemies = %+v, expected %+v", e.Enemies, want)
	}
	for i := range want {
		if e.Enemies[i] != want[i] {
			t.Errorf("enemy %d = %+v, expected %+v", i, e.Enemies[i], want[i])
		}
	}
}

func TestSpawn(t *testing.T) {
	var e Entities
	e.Spawn(12)
	if len(e.Enemies) != 1 || e.Enemies[0] != (Enemy{Col: 12, Row: 0}) {
		t.Errorf("enemies = %+v, expected one at (12, 0)", e.Enemies)
	}
	if !e.EnemyAt(12, 0) || e.EnemyAt(12, 1) {
		t.Error("EnemyAt mismatch after spawn")
	}
}

func TestMoveBulletsLifecycle(t *testing.T) {
	tests := []struct {
		name      string
		bullet    Bullet
		wantTicks int
	}{
		{"energy runs out", Bullet{Col: 5, Row: 30, Energy: 3}, 3},
		{"ceiling first", Bullet{Col: 5, Row: 6, Energy: 10}, 2},
		{"single tick", Bullet{Col: 5, Row: 20, Energy: 1}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Entities{Bullets: []Bullet{tt.bullet}}
			row := tt.bullet.Row
			ticks := 0
			for len(e.Bullets) > 0 {
				e.MoveBullets(2, 2)
				ticks++
				row -= 2
				if len(e.Bullets) > 0 && e.Bullets[0].Row != row {
					t.Fatalf("tick %d: row = %d, expected %d", ticks, e.Bullets[0].Row, row)
				}
				if ticks > 100 {
					t.Fatal("bullet never removed")
				}
			}
			if ticks != tt.wantTicks {
				t.Errorf("removed after %d ticks, expected %d", ticks, tt.wantTicks)
			}
		})
	}
}
