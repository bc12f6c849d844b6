package riverraid

import "github.com/vovakirdan/riverraid/internal/core"

// Glyphs used to draw the world.
const (
	BankGlyph       = '█'
	EnemyGlyph      = '◆'
	BulletBodyGlyph = '|'
	BulletTipGlyph  = '^'
	PlayerGlyph     = '▲'
)

// Render returns the full frame for the current world: a clear, both banks of
// every row, enemies, bullets and finally the player on top. It does not
// modify the world.
func Render(w *World) []core.DrawCmd {
	frame := make([]core.DrawCmd, 0, 1+2*len(w.River.Rows)+len(w.Enemies)+2*len(w.Bullets)+1)
	frame = append(frame, core.Clear())

	for y, span := range w.River.Rows {
		frame = append(frame,
			core.Fill(0, y, span.Left, BankGlyph, core.ColorBank),
			core.Fill(span.Right, y, w.cols-span.Right, BankGlyph, core.ColorBank),
		)
	}

	for _, en := range w.Enemies {
		frame = append(frame, core.Glyph(en.Col, en.Row, EnemyGlyph, core.ColorEnemy))
	}

	for _, b := range w.Bullets {
		frame = append(frame, core.Glyph(b.Col, b.Row, BulletBodyGlyph, core.ColorBullet))
		if b.Row > 0 {
			frame = append(frame, core.Glyph(b.Col, b.Row-1, BulletTipGlyph, core.ColorBullet))
		}
	}

	frame = append(frame, core.Glyph(w.Player.X, w.Player.Y, PlayerGlyph, core.ColorPlayer))
	return frame
}
