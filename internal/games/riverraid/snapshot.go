package riverraid

// Snapshot captures the observable world state for determinism tests and logs.
type Snapshot struct {
	Tick        int
	Status      Status
	Cause       Cause
	PlayerX     int
	PlayerY     int
	Head        Span
	TargetLeft  int
	TargetRight int
	Enemies     int
	Bullets     int
	Kills       int
}

// Snapshot returns the current world snapshot.
func (w *World) Snapshot() Snapshot {
	return Snapshot{
		Tick:        w.ticks,
		Status:      w.Status,
		Cause:       w.Cause,
		PlayerX:     w.Player.X,
		PlayerY:     w.Player.Y,
		Head:        w.River.Head(),
		TargetLeft:  w.River.TargetLeft,
		TargetRight: w.River.TargetRight,
		Enemies:     len(w.Enemies),
		Bullets:     len(w.Bullets),
		Kills:       w.kills,
	}
}
