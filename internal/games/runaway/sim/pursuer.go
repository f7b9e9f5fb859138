package sim

import (
	"math"

	"github.com/vovakirdan/runaway/internal/config"
	"github.com/vovakirdan/runaway/internal/core"
)

// Pursuer chases the player along the ground with exponential smoothing.
// It lives in view space, like the player.
type Pursuer struct {
	X, Y float64
	W, H float64
	cfg  config.RunawayPursuer
}

// newPursuer places the pursuer at its resting gap behind the player.
func newPursuer(cfg config.RunawayPursuer, p Player, groundY float64) *Pursuer {
	pu := &Pursuer{W: cfg.Width, H: cfg.Height, cfg: cfg}
	pu.X = pu.target(p, false)
	pu.Y = groundY - pu.H
	return pu
}

// target returns the x the pursuer is pulled toward.
func (pu *Pursuer) target(p Player, stunned bool) float64 {
	gap := pu.cfg.GapFactor * p.W
	if stunned {
		gap = pu.cfg.StunnedGapFactor * p.W
	}
	return p.X - gap - pu.W
}

// Track moves the pursuer toward its target. The damping is per reference
// frame, so f frames of smoothing compound to 1-(1-damping)^f.
func (pu *Pursuer) Track(p Player, stunned bool, groundY, f float64) {
	alpha := 1 - math.Pow(1-pu.cfg.Damping, f)
	pu.X += (pu.target(p, stunned) - pu.X) * alpha
	pu.Y = groundY - pu.H
}

// Box returns the pursuer in view space.
func (pu *Pursuer) Box() core.Box {
	return core.NewBox(pu.X, pu.Y, pu.W, pu.H)
}

// asHazard converts the pursuer into a world-space hazard for snapshots.
func (pu *Pursuer) asHazard(scroll float64) Hazard {
	return Hazard{Kind: HazardPursuer, X: pu.X + scroll, Y: pu.Y, W: pu.W, H: pu.H}
}
