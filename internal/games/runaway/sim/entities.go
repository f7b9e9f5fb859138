package sim

import (
	"slices"

	"github.com/vovakirdan/runaway/internal/core"
)

// All entity X coordinates are absolute world positions.
// Subtracting the world scroll maps them into view space, where the player lives.

// Platform is a one-way floating platform, walkable only from above.
type Platform struct {
	X, Y float64
	W, H float64
}

// Box returns the platform in view space.
func (p Platform) Box(scroll float64) core.Box {
	return core.NewBox(p.X-scroll, p.Y, p.W, p.H)
}

// Pit is a gap in the ground plane.
type Pit struct {
	X, W float64
}

// Covers reports whether the view-space x lies inside the pit.
func (p Pit) Covers(x, scroll float64) bool {
	left := p.X - scroll
	return x >= left && x < left+p.W
}

// CollectibleKind tags what a pickup grants.
type CollectibleKind int

const (
	KindCoin CollectibleKind = iota
	KindHeart
)

// String returns the name of the kind.
func (k CollectibleKind) String() string {
	switch k {
	case KindCoin:
		return "coin"
	case KindHeart:
		return "heart"
	default:
		return "unknown"
	}
}

// Collectible is a circular pickup centered on (X, Y).
type Collectible struct {
	Kind CollectibleKind
	X, Y float64
	R    float64
}

// Touches reports whether the pickup overlaps the view-space box.
func (c Collectible) Touches(box core.Box, scroll float64) bool {
	return box.CircleIntersects(c.X-scroll, c.Y, c.R)
}

// HazardKind distinguishes scrolling hazards from the pursuer.
type HazardKind int

const (
	HazardAmbient HazardKind = iota
	HazardPursuer
)

// Hazard is a damaging rectangle. Ambient hazards close in at the world
// speed plus their own extra speed VX.
type Hazard struct {
	Kind HazardKind
	X, Y float64
	W, H float64
	VX   float64
}

// Box returns the hazard in view space.
func (h Hazard) Box(scroll float64) core.Box {
	return core.NewBox(h.X-scroll, h.Y, h.W, h.H)
}

// Pools holds the world entities, one ordered slice per kind.
type Pools struct {
	Platforms    []Platform
	Pits         []Pit
	Collectibles []Collectible
	Hazards      []Hazard
}

// Reset empties every pool, keeping capacity.
func (p *Pools) Reset() {
	p.Platforms = p.Platforms[:0]
	p.Pits = p.Pits[:0]
	p.Collectibles = p.Collectibles[:0]
	p.Hazards = p.Hazards[:0]
}

// Clone returns a deep copy of the pools.
func (p Pools) Clone() Pools {
	return Pools{
		Platforms:    slices.Clone(p.Platforms),
		Pits:         slices.Clone(p.Pits),
		Collectibles: slices.Clone(p.Collectibles),
		Hazards:      slices.Clone(p.Hazards),
	}
}

// Len returns the total number of entities.
func (p Pools) Len() int {
	return len(p.Platforms) + len(p.Pits) + len(p.Collectibles) + len(p.Hazards)
}

// evict drops every entity whose right edge is left of the world x limit.
func (p *Pools) evict(limit float64) {
	p.Platforms = slices.DeleteFunc(p.Platforms, func(e Platform) bool { return e.X+e.W < limit })
	p.Pits = slices.DeleteFunc(p.Pits, func(e Pit) bool { return e.X+e.W < limit })
	p.Collectibles = slices.DeleteFunc(p.Collectibles, func(e Collectible) bool { return e.X+e.R < limit })
	p.Hazards = slices.DeleteFunc(p.Hazards, func(e Hazard) bool { return e.X+e.W < limit })
}
