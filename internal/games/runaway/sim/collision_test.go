package sim

import (
	"testing"

	"github.com/vovakirdan/runaway/internal/core"
)

func TestLandOnPlatformIsOneWay(t *testing.T) {
	platform := Platform{X: 100, Y: 400, W: 100, H: 12} // top at 400, scroll 0

	tests := []struct {
		name       string
		prevBottom float64
		bottom     float64
		vy         float64
		x          float64
		lands      bool
	}{
		{"falling onto the top", 398, 404, 6, 120, true},
		{"resting on the top", 400, 400.5, 0.5, 120, true},
		{"exactly at the band edge", 399, 415, 16, 120, true},
		{"rising through from below", 410, 404, -3, 120, false},
		{"apex inside the platform", 405, 406, 0.5, 120, false},
		{"fast fall past the band", 399, 416, 17, 120, true},
		{"long step from well above", 380, 430, 14, 120, true},
		{"still above the top", 390, 399, 9, 120, false},
		{"beside the platform", 398, 404, 6, 260, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := Player{X: tc.x, W: 40, H: 48, Y: tc.bottom - 48, VY: tc.vy}
			got := landOnPlatform(&p, tc.prevBottom, []Platform{platform}, 0, 15, 2)
			if got != tc.lands {
				t.Fatalf("landOnPlatform() = %v, expected %v", got, tc.lands)
			}
			if got {
				if p.Bottom() != 400 || p.VY != 0 || !p.Grounded || p.JumpsLeft != 2 {
					t.Errorf("landing should snap onto the top and reset jumps, got %+v", p)
				}
			}
		})
	}
}

func TestCollectPickupsRemovesHits(t *testing.T) {
	pools := Pools{Collectibles: []Collectible{
		{Kind: KindCoin, X: 110, Y: 110, R: 8},  // inside
		{Kind: KindCoin, X: 300, Y: 110, R: 8},  // far right
		{Kind: KindHeart, X: 145, Y: 100, R: 9}, // overlapping the right edge
	}}
	box := core.NewBox(100, 100, 40, 48)

	hits := collectPickups(box, &pools, 0)
	if len(hits) != 2 {
		t.Fatalf("expected 2 pickups, got %d", len(hits))
	}
	if len(pools.Collectibles) != 1 || pools.Collectibles[0].X != 300 {
		t.Errorf("only the untouched coin should remain, got %+v", pools.Collectibles)
	}

	if again := collectPickups(box, &pools, 0); len(again) != 0 {
		t.Errorf("pickups must be consumed once, got %d more", len(again))
	}
}

func TestHazardContactShrink(t *testing.T) {
	player := core.NewBox(100, 100, 40, 40)
	// Overlaps by 4px horizontally; shrinking both boxes by 15% separates them.
	grazing := []Hazard{{X: 136, Y: 100, W: 40, H: 40}}

	if !hazardContact(player, grazing, 0, 0) {
		t.Error("unshrunk boxes should touch")
	}
	if hazardContact(player, grazing, 0, 0.15) {
		t.Error("shrunk boxes should miss a grazing hazard")
	}

	headOn := []Hazard{{X: 110, Y: 100, W: 40, H: 40}}
	if !hazardContact(player, headOn, 0, 0.15) {
		t.Error("shrunk boxes should still catch a solid hit")
	}
}
