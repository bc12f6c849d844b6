// Package core provides the terminal-independent building blocks shared by the
// game and the platform layers: screen buffer, draw commands, actions and
// randomness. It has no dependency on any terminal library so game logic stays
// pure and testable.
package core

// Point is a cell position. X is the column, Y the row (0 at the top).
type Point struct {
	X, Y int
}

// Add returns p translated by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// StepToward moves val one unit toward target. It never overshoots.
func StepToward(val, target int) int {
	switch {
	case val < target:
		return val + 1
	case val > target:
		return val - 1
	default:
		return val
	}
}
