package sim

import (
	"math"

	"github.com/vovakirdan/runaway/internal/config"
	"github.com/vovakirdan/runaway/internal/core"
)

// World owns the entity pools, the scroll position and the spawn timers.
type World struct {
	Pools

	Scroll  float64 // distance covered, in pixels
	Speed   float64 // pixels per reference frame
	Level   float64 // current difficulty level
	Skipped int     // spawn ticks dropped because of generation conflicts

	cfg        *config.RunawayConfig
	difficulty *config.DifficultyManager
	rng        RNG
	elapsed    float64
	lastPitEnd float64
	groundY    float64
	anchored   bool

	pitTimer      Countdown
	platformTimer Countdown
	coinTimer     Countdown
	heartTimer    Countdown
	hazardTimer   Countdown
}

// NewWorld creates an empty world. Call Reset before advancing it.
func NewWorld(cfg *config.RunawayConfig, diff *config.DifficultyManager, rng RNG) *World {
	return &World{cfg: cfg, difficulty: diff, rng: rng}
}

// Reset clears the pools, restores the start speed and re-seeds every spawn timer.
func (w *World) Reset() {
	w.Pools.Reset()
	w.Scroll = 0
	w.elapsed = 0
	w.Skipped = 0
	w.anchored = false
	w.lastPitEnd = math.Inf(-1)
	w.Level = w.difficulty.Level(0, 0)
	w.Speed = w.difficulty.StartSpeed(w.cfg.World.SpeedStart, w.cfg.World.SpeedMax)

	g, p, h := w.cfg.Generation, w.cfg.Pickups, w.cfg.Hazards
	w.rearm(&w.pitTimer, g.Pits.Enabled, g.Pits.Spawn)
	w.rearm(&w.platformTimer, g.Platforms.Enabled, g.Platforms.Spawn)
	w.rearm(&w.coinTimer, p.Coins.Enabled, p.Coins.Spawn)
	w.rearm(&w.heartTimer, p.Hearts.Enabled, p.Hearts.Spawn)
	w.rearm(&w.hazardTimer, h.Enabled, h.Spawn)
}

// rearm restarts a spawn timer with a jittered, difficulty-scaled interval.
func (w *World) rearm(c *Countdown, enabled bool, t config.SpawnTimer) {
	if !enabled {
		c.Stop()
		return
	}
	c.Arm(jittered(w.rng, t, w.difficulty.Interval(t.IntervalMs, w.Level)))
}

// Advance scrolls the world by dtMs (f reference frames), moves ambient
// hazards, fires due spawn timers and evicts entities left of the view.
func (w *World) Advance(dtMs, f float64, view metrics) {
	w.elapsed += dtMs
	w.Level = w.difficulty.Level(w.Scroll, w.elapsed)

	accel := w.difficulty.Acceleration(w.cfg.World.Acceleration, w.Level)
	w.Speed = math.Min(w.cfg.World.SpeedMax, w.Speed+accel*f)
	w.Scroll += w.Speed * f

	for i := range w.Hazards {
		w.Hazards[i].X -= w.Hazards[i].VX * f
	}

	spawnX := w.Scroll + view.W + w.cfg.World.SpawnMargin
	g, p, h := w.cfg.Generation, w.cfg.Pickups, w.cfg.Hazards

	if w.pitTimer.Advance(dtMs) {
		w.spawnPit(spawnX)
		w.rearm(&w.pitTimer, g.Pits.Enabled, g.Pits.Spawn)
	}
	if w.platformTimer.Advance(dtMs) {
		w.spawnPlatform(spawnX, view.GroundY)
		w.rearm(&w.platformTimer, g.Platforms.Enabled, g.Platforms.Spawn)
	}
	if w.coinTimer.Advance(dtMs) {
		w.spawnCoins(spawnX, view.GroundY)
		w.rearm(&w.coinTimer, p.Coins.Enabled, p.Coins.Spawn)
	}
	if w.heartTimer.Advance(dtMs) {
		w.spawnHeart(spawnX, view.GroundY)
		w.rearm(&w.heartTimer, p.Hearts.Enabled, p.Hearts.Spawn)
	}
	if w.hazardTimer.Advance(dtMs) {
		w.spawnHazard(spawnX, view.GroundY)
		w.rearm(&w.hazardTimer, h.Enabled, h.Spawn)
	}

	w.evict(w.Scroll - w.cfg.World.EvictionMargin)
}

// Reanchor moves every platform, collectible and ambient hazard with the
// ground line, keeping their elevation when the viewport height changes.
// It returns the vertical shift applied.
func (w *World) Reanchor(groundY float64) float64 {
	if !w.anchored {
		w.groundY, w.anchored = groundY, true
		return 0
	}
	shift := groundY - w.groundY
	if shift == 0 {
		return 0
	}
	for i := range w.Platforms {
		w.Platforms[i].Y += shift
	}
	for i := range w.Collectibles {
		w.Collectibles[i].Y += shift
	}
	for i := range w.Hazards {
		w.Hazards[i].Y += shift
	}
	w.groundY = groundY
	return shift
}

// spawnPit proposes a pit at x. Proposals inside the safe stretch, too close
// to the previous pit, or overlapping a platform are dropped.
func (w *World) spawnPit(x float64) {
	rules := w.cfg.Generation.Pits
	width := between(w.rng, rules.MinWidth, rules.MaxWidth)

	if x < w.cfg.Generation.SafeDistance {
		return
	}
	if x-w.lastPitEnd < w.cfg.Generation.MinPitSpacing || w.platformOverlaps(x, width) {
		w.Skipped++
		return
	}

	w.Pits = append(w.Pits, Pit{X: x, W: width})
	w.lastPitEnd = x + width
}

// spawnPlatform proposes a floating platform at x, dropped if it would
// overlap a pit or another platform.
func (w *World) spawnPlatform(x, groundY float64) {
	rules := w.cfg.Generation.Platforms
	width := between(w.rng, rules.MinWidth, rules.MaxWidth)
	elevation := between(w.rng, rules.MinElevation, rules.MaxElevation)

	if w.pitOverlaps(x, width) || w.platformOverlaps(x, width) {
		w.Skipped++
		return
	}

	w.Platforms = append(w.Platforms, Platform{
		X: x,
		Y: groundY - elevation - rules.Height,
		W: width,
		H: rules.Height,
	})
}

// spawnCoins lays a row of coins along a sine arc.
func (w *World) spawnCoins(x, groundY float64) {
	rules := w.cfg.Pickups.Coins
	n := intBetween(w.rng, rules.RowMin, rules.RowMax)
	base := groundY - between(w.rng, rules.MinElevation, rules.MaxElevation)

	for i := 0; i < n; i++ {
		phase := 0.0
		if n > 1 {
			phase = float64(i) / float64(n-1) * math.Pi
		}
		w.Collectibles = append(w.Collectibles, Collectible{
			Kind: KindCoin,
			X:    x + rules.Radius + float64(i)*rules.Spacing,
			Y:    base - rules.Wave*math.Sin(phase),
			R:    rules.Radius,
		})
	}
}

// spawnHeart places a single extra-life pickup.
func (w *World) spawnHeart(x, groundY float64) {
	rules := w.cfg.Pickups.Hearts
	w.Collectibles = append(w.Collectibles, Collectible{
		Kind: KindHeart,
		X:    x + rules.Radius,
		Y:    groundY - between(w.rng, rules.MinElevation, rules.MaxElevation),
		R:    rules.Radius,
	})
}

// spawnHazard places an ambient hazard on the ground line.
func (w *World) spawnHazard(x, groundY float64) {
	rules := w.cfg.Hazards
	vx := between(w.rng, rules.ExtraSpeedMin, rules.ExtraSpeedMax)
	if x < w.cfg.Generation.SafeDistance {
		return
	}
	w.Hazards = append(w.Hazards, Hazard{
		Kind: HazardAmbient,
		X:    x,
		Y:    groundY - rules.Height,
		W:    rules.Width,
		H:    rules.Height,
		VX:   vx,
	})
}

func (w *World) pitOverlaps(x, width float64) bool {
	for _, p := range w.Pits {
		if core.SpansOverlap(x, width, p.X, p.W) {
			return true
		}
	}
	return false
}

func (w *World) platformOverlaps(x, width float64) bool {
	for _, p := range w.Platforms {
		if core.SpansOverlap(x, width, p.X, p.W) {
			return true
		}
	}
	return false
}

// PitAt reports whether the view-space x has no ground under it.
func (w *World) PitAt(x float64) bool {
	for _, p := range w.Pits {
		if p.Covers(x, w.Scroll) {
			return true
		}
	}
	return false
}
