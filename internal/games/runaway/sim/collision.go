package sim

import "github.com/vovakirdan/runaway/internal/core"

// landOnPlatform resolves one-way platforms. The player lands only when its
// feet were at or above the platform top before this step, are now below it
// by no more than the larger of band and this step's fall, it is not moving
// up, and the x ranges overlap.
func landOnPlatform(p *Player, prevBottom float64, platforms []Platform, scroll, band float64, jumps int) bool {
	if p.VY < 0 {
		return false
	}
	box := p.Box()
	reach := max(band, p.Bottom()-prevBottom)
	for _, pl := range platforms {
		pb := pl.Box(scroll)
		if !box.OverlapsX(pb) {
			continue
		}
		top := pb.Y
		if prevBottom <= top && p.Bottom() >= top && p.Bottom() <= top+reach {
			p.land(top, jumps)
			return true
		}
	}
	return false
}

// collectPickups removes every collectible touching the box and returns them.
func collectPickups(box core.Box, pools *Pools, scroll float64) []Collectible {
	var hits []Collectible
	kept := pools.Collectibles[:0]
	for _, c := range pools.Collectibles {
		if c.Touches(box, scroll) {
			hits = append(hits, c)
			continue
		}
		kept = append(kept, c)
	}
	pools.Collectibles = kept
	return hits
}

// hazardContact reports whether any hazard overlaps the player, with both
// boxes shrunk by the given fraction.
func hazardContact(player core.Box, hazards []Hazard, scroll, shrink float64) bool {
	pb := player.Shrink(shrink)
	for _, h := range hazards {
		if pb.Intersects(h.Box(scroll).Shrink(shrink)) {
			return true
		}
	}
	return false
}
