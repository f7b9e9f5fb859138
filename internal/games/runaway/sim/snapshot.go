package sim

// Snapshot is a read-only copy of everything a renderer needs.
// Entity X values are world positions; subtract Scroll for view space.
type Snapshot struct {
	State  State
	Paused bool
	Fatal  FatalReason

	Player     Player
	Invincible bool
	Stunned    bool

	Pools
	Scroll float64
	Speed  float64

	Score int
	Best  int
	Lives int
	Now   float64

	ViewW, ViewH  float64
	GroundY       float64
	CountdownLeft float64
	HomeIn        float64
}

// Distance returns how far the run has scrolled.
func (s Snapshot) Distance() float64 {
	return s.Scroll
}

// Snapshot copies the session state. Hazards include the pursuer, if any,
// tagged HazardPursuer.
func (s *Session) Snapshot() Snapshot {
	view := readViewport(s.viewport)
	pools := s.world.Pools.Clone()
	if s.pursuer != nil {
		pools.Hazards = append(pools.Hazards, s.pursuer.asHazard(s.world.Scroll))
	}
	return Snapshot{
		State:         s.state,
		Paused:        s.paused,
		Fatal:         s.fatal,
		Player:        s.player,
		Invincible:    s.player.Invincible.Active(s.now),
		Stunned:       s.player.Stunned.Active(s.now),
		Pools:         pools,
		Scroll:        s.world.Scroll,
		Speed:         s.world.Speed,
		Score:         s.Score(),
		Best:          max(s.best, s.Score()),
		Lives:         s.lives,
		Now:           s.now,
		ViewW:         view.W,
		ViewH:         view.H,
		GroundY:       view.GroundY,
		CountdownLeft: s.countdown.Remaining(),
		HomeIn:        s.autoHome.Remaining(),
	}
}
