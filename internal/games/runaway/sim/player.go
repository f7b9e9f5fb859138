package sim

import (
	"github.com/vovakirdan/runaway/internal/config"
	"github.com/vovakirdan/runaway/internal/core"
)

// Player is the controllable character. X is fixed in view space;
// the world scrolls underneath it.
type Player struct {
	X, Y      float64
	W, H      float64
	VY        float64 // pixels per reference frame, positive is down
	Grounded  bool
	JumpsLeft int

	// Sunk is set once the player's bottom drops below the ground line
	// over a pit. A sunk player keeps falling even if it drifts past the
	// pit edge, and clears only by rising back above the ground line.
	Sunk bool

	Invincible Deadline
	Stunned    Deadline
	footstep   Deadline
}

// newPlayer creates a player standing on the ground.
func newPlayer(cfg config.RunawayPlayer, groundY float64) Player {
	return Player{
		X:         cfg.X,
		Y:         groundY - cfg.Height,
		W:         cfg.Width,
		H:         cfg.Height,
		Grounded:  true,
		JumpsLeft: maxJumps(cfg),
	}
}

// maxJumps returns the jump budget restored on landing.
func maxJumps(cfg config.RunawayPlayer) int {
	if !cfg.DoubleJump {
		return 1
	}
	return cfg.MaxJumps
}

// Box returns the player's collision box in view space.
func (p Player) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.W, p.H)
}

// Bottom returns the y of the player's feet.
func (p Player) Bottom() float64 {
	return p.Y + p.H
}

// CenterX returns the horizontal center used for pit support.
func (p Player) CenterX() float64 {
	return p.X + p.W/2
}

// Jump applies the jump impulse if a jump is available.
// It reports whether the jump happened and whether it was an airborne one.
func (p *Player) Jump(impulse float64, now float64) (jumped, double bool) {
	if p.Stunned.Active(now) || p.JumpsLeft <= 0 {
		return false, false
	}
	double = !p.Grounded
	p.VY = impulse
	p.Grounded = false
	p.JumpsLeft--
	return true, double
}

// Integrate applies gravity and moves the player by f reference frames.
// Support is re-established by land or settle afterwards.
func (p *Player) Integrate(phys config.RunawayPhysics, f float64) {
	p.VY += phys.Gravity * f
	if p.VY > phys.MaxFallSpeed {
		p.VY = phys.MaxFallSpeed
	}
	p.Y += p.VY * f
	p.Grounded = false
}

// land places the player on a surface at y = top.
func (p *Player) land(top float64, jumps int) {
	p.Y = top - p.H
	p.VY = 0
	p.Grounded = true
	p.Sunk = false
	p.JumpsLeft = jumps
}

// settle resolves the ground plane after integration and reports whether
// the player fell out of the bottom of the viewport.
func (p *Player) settle(overPit bool, groundY, viewH float64, jumps int) bool {
	if overPit || p.Sunk {
		p.Grounded = false
		switch {
		case p.Bottom() > groundY && overPit:
			p.Sunk = true
		case p.Bottom() <= groundY:
			p.Sunk = false
		}
		return p.Bottom() >= viewH
	}
	if p.Bottom() >= groundY {
		p.land(groundY, jumps)
	}
	return false
}

// stepFootstep reports whether a footstep is due, rate limited to one per interval.
func (p *Player) stepFootstep(now, intervalMs float64) bool {
	if !p.Grounded || p.footstep.Active(now) {
		return false
	}
	p.footstep.Extend(now, intervalMs)
	return true
}
