package riverraid

import (
	"github.com/vovakirdan/riverraid/internal/config"
	"github.com/vovakirdan/riverraid/internal/core"
)

// Span is the passable part of one screen row: columns [Left, Right).
type Span struct {
	Left  int
	Right int
}

// Width returns the number of passable columns.
func (s Span) Width() int {
	return s.Right - s.Left
}

// Contains reports whether col lies inside the channel.
func (s Span) Contains(col int) bool {
	return col >= s.Left && col < s.Right
}

// River is the scrolling tunnel. Rows[0] is the newest row at the top of the
// screen; every tick the rows shift down and row 0 drifts one column per side
// toward the current targets.
type River struct {
	Rows        []Span
	TargetLeft  int
	TargetRight int

	maxCols int
	cfg     config.RiverConfig
}

// NewRiver lays out a straight river centred on the screen.
// Half widths wider than the screen are clipped to it.
func NewRiver(cols, rows int, cfg config.RiverConfig) *River {
	mid := cols / 2
	r := &River{
		Rows:        make([]Span, rows),
		TargetLeft:  max(mid-cfg.TargetHalfWidth, 1),
		TargetRight: min(mid+cfg.TargetHalfWidth, cols-1),
		maxCols:     cols,
		cfg:         cfg,
	}
	r.EnforceMinimumWidth()

	start := Span{Left: max(mid-cfg.InitialHalfWidth, 0), Right: min(mid+cfg.InitialHalfWidth, cols)}
	for i := range r.Rows {
		r.Rows[i] = start
	}
	return r
}

// Head returns row 0.
func (r *River) Head() Span {
	return r.Rows[0]
}

// At returns the span of a screen row.
func (r *River) At(row int) Span {
	return r.Rows[row]
}

// Update runs one tick of bank motion: scroll, drift, retarget, widen.
func (r *River) Update(rng core.Rand) {
	r.Scroll()
	r.AdvanceRow0()
	r.MaybeRetarget(rng)
	r.EnforceMinimumWidth()
}

// Scroll shifts every row down by one. The bottom row is discarded and row 0
// keeps its old value until AdvanceRow0 recomputes it.
func (r *River) Scroll() {
	// Bottom-up so no row is overwritten before it is copied
	for i := len(r.Rows) - 1; i > 0; i-- {
		r.Rows[i] = r.Rows[i-1]
	}
}

// AdvanceRow0 moves each bound of row 0 one column toward its target.
func (r *River) AdvanceRow0() {
	head := &r.Rows[0]
	head.Left = core.StepToward(head.Left, r.TargetLeft)
	head.Right = core.StepToward(head.Right, r.TargetRight)
}

// MaybeRetarget picks a new target for each bound that has reached its current one.
// The left target never drops below 1 and the right target never exceeds cols-1.
func (r *River) MaybeRetarget(rng core.Rand) {
	span := r.cfg.RetargetSpan

	if r.Rows[0].Left == r.TargetLeft && r.roll(rng) {
		low := max(r.TargetLeft-span, 0)
		r.TargetLeft = rng.Range(low, r.TargetLeft+span)
		if r.TargetLeft < 1 {
			r.TargetLeft = 1
		}
	}

	if r.Rows[0].Right == r.TargetRight && r.roll(rng) {
		r.TargetRight = rng.Range(r.TargetRight-span, r.TargetRight+span)
		if r.TargetRight > r.maxCols-1 {
			r.TargetRight = r.maxCols - 1
		}
	}
}

// EnforceMinimumWidth widens the target span when it falls below the minimum.
// Targets keep Right-Left >= min, 1 <= Left and Right <= cols-1, which in turn
// keeps every rendered row at least min columns wide.
func (r *River) EnforceMinimumWidth() {
	minWidth := r.cfg.MinWidth

	if r.TargetRight-r.TargetLeft < minWidth {
		r.TargetRight = max(r.TargetRight+minWidth, r.TargetLeft+minWidth)
	}
	if r.TargetRight > r.maxCols-1 {
		r.TargetRight = r.maxCols - 1
		if r.TargetRight-r.TargetLeft < minWidth {
			r.TargetLeft = r.TargetRight - minWidth
		}
	}
}

func (r *River) roll(rng core.Rand) bool {
	return rng.Range(0, r.cfg.RetargetDie) >= r.cfg.RetargetAt
}
