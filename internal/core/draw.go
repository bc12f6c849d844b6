package core

import "strings"

// DrawOp is the kind of a draw command.
type DrawOp int

const (
	OpClear DrawOp = iota // Blank the whole surface
	OpText                // Paint Text starting at (X, Y)
)

// DrawCmd is one paint instruction. A frame is a []DrawCmd that starts with a
// Clear and is flushed by the backend as a unit.
type DrawCmd struct {
	Op    DrawOp
	X, Y  int
	Text  string
	Color Color
}

// Clear returns a full-clear command.
func Clear() DrawCmd {
	return DrawCmd{Op: OpClear}
}

// Text returns a command painting s at (x, y).
func Text(x, y int, s string, c Color) DrawCmd {
	return DrawCmd{Op: OpText, X: x, Y: y, Text: s, Color: c}
}

// Glyph returns a command painting a single rune at (x, y).
func Glyph(x, y int, r rune, c Color) DrawCmd {
	return Text(x, y, string(r), c)
}

// Fill returns a command painting n copies of r starting at (x, y).
// n <= 0 yields an empty text command.
func Fill(x, y, n int, r rune, c Color) DrawCmd {
	if n < 0 {
		n = 0
	}
	return Text(x, y, strings.Repeat(string(r), n), c)
}
