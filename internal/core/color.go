package core

// Color is the foreground colour of a screen cell.
// The platform layer maps each value to a terminal style.
type Color uint8

// Palette for river raid elements.
const (
	ColorDefault Color = iota
	ColorBank
	ColorWater
	ColorEnemy
	ColorBullet
	ColorPlayer
	ColorBanner
	ColorHint
)

// String returns the palette name, used in logs and test failures.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorBank:
		return "bank"
	case ColorWater:
		return "water"
	case ColorEnemy:
		return "enemy"
	case ColorBullet:
		return "bullet"
	case ColorPlayer:
		return "player"
	case ColorBanner:
		return "banner"
	case ColorHint:
		return "hint"
	default:
		return "unknown"
	}
}
