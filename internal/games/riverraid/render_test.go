package riverraid

import (
	"testing"

	"github.com/vovakirdan/riverraid/internal/core"
)

func renderToScreen(w *World) *core.Screen {
	s := core.NewScreen(w.Cols(), w.Rows())
	s.Apply(Render(w))
	return s
}

func TestRenderStartsWithClear(t *testing.T) {
	frame := Render(newTestWorld(40, 20))
	if len(frame) == 0 || frame[0].Op != core.OpClear {
		t.Fatal("frame should start with a clear")
	}
}

func TestRenderBanks(t *testing.T) {
	w := newTestWorld(40, 20)
	s := renderToScreen(w)

	for y := 0; y < w.Rows(); y++ {
		span := w.River.At(y)
		for x := 0; x < w.Cols(); x++ {
			c := s.GetCell(x, y)
			if x == w.Player.X && y == w.Player.Y {
				continue
			}
			if span.Contains(x) {
				if c.Rune != ' ' {
					t.Fatalf("(%d, %d) = %q, expected water", x, y, c.Rune)
				}
			} else if c.Rune != BankGlyph || c.Color != core.ColorBank {
				t.Fatalf("(%d, %d) = %q, expected bank", x, y, c.Rune)
			}
		}
	}
}

func TestRenderEntities(t *testing.T) {
	w := newTestWorld(40, 20)
	w.Enemies = []Enemy{{Col: 18, Row: 4}}
	w.Bullets = []Bullet{{Col: 21, Row: 12, Energy: 3}}
	s := renderToScreen(w)

	tests := []struct {
		name string
		x, y int
		want rune
	}{
		{"enemy", 18, 4, EnemyGlyph},
		{"bullet body", 21, 12, BulletBodyGlyph},
		{"bullet tip", 21, 11, BulletTipGlyph},
		{"player", w.Player.X, w.Player.Y, PlayerGlyph},
	}
	for _, tt := range tests {
		if got := s.Get(tt.x, tt.y); got != tt.want {
			t.Errorf("%s at (%d, %d) = %q, expected %q", tt.name, tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRenderBulletTipClipped(t *testing.T) {
	w := newTestWorld(40, 20)
	w.Bullets = []Bullet{{Col: 20, Row: 0, Energy: 1}}

	frame := Render(w)
	for _, cmd := range frame {
		if cmd.Y < 0 {
			t.Fatalf("command above the screen: %+v", cmd)
		}
	}
}

func TestRenderPlayerOnTop(t *testing.T) {
	w := newTestWorld(40, 20)
	w.Enemies = []Enemy{{Col: w.Player.X, Row: w.Player.Y}}
	s := renderToScreen(w)

	if got := s.Get(w.Player.X, w.Player.Y); got != PlayerGlyph {
		t.Errorf("cell = %q, expected player drawn last", got)
	}
}

func TestRenderDoesNotMutate(t *testing.T) {
	w := newTestWorld(40, 20, 9, 20)
	w.Apply(core.ActionFire)
	w.Step()
	before := w.Snapshot()
	rows := append([]Span(nil), w.River.Rows...)

	Render(w)

	if w.Snapshot() != before {
		t.Errorf("Render changed world: %+v -> %+v", before, w.Snapshot())
	}
	for i := range rows {
		if w.River.Rows[i] != rows[i] {
			t.Fatalf("Render changed river row %d", i)
		}
	}
}
