package system

import (
	"testing"

	"github.com/milk9111/ageofpanda/world"
)

func twoMaps() *world.GameState {
	first := world.NewMap(1, "first", 30, 14, 16)
	second := world.NewMap(2, "second", 30, 14, 16)
	second.StartX = 8
	return newTestState(first, second)
}

func TestTransitionToNextMap(t *testing.T) {
	g := twoMaps()
	g.Player.X = g.Tuning.UpperBound
	g.Player.VX = 1.5

	if err := clampBounds(g); err != nil {
		t.Fatal(err)
	}
	if g.CurrentMap != 1 || g.Player.X != 8 || g.Player.VX != 0 {
		t.Fatalf("map=%d x=%v vx=%v", g.CurrentMap, g.Player.X, g.Player.VX)
	}
}

func TestTransitionThroughPipeline(t *testing.T) {
	g := twoMaps()
	g.Player.X = 224
	g.Player.VX = 2
	s := DefaultScheduler()

	for i := 0; i < 2; i++ {
		if err := s.Update(g, nil); err != nil {
			t.Fatal(err)
		}
	}
	if g.CurrentMap != 1 {
		t.Fatalf("expected the second map, still on %d", g.CurrentMap)
	}
	if g.Player.X != 8 {
		t.Fatalf("x=%v, want the second map's start", g.Player.X)
	}
}

func TestBounds(t *testing.T) {
	cases := []struct {
		name          string
		transition    float64
		x, y          float64
		wantX, wantY  float64
		wantAirborne  bool
		wantVXCleared bool
	}{
		{"lower_bound", 0, -3, 205, 0, 205, false, true},
		{"inside", 0, 100, 205, 100, 205, false, false},
		{"last_map_clamps", 0, 300, 205, 225, 205, false, true},
		{"custom_transition", 400, 300, 205, 300, 205, false, false},
		{"ceiling", 0, 100, 40, 100, 205, true, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g := newTestState()
			g.Maps[0].TransitionX = c.transition
			g.Player.X, g.Player.Y, g.Player.VX = c.x, c.y, 1

			if err := clampBounds(g); err != nil {
				t.Fatal(err)
			}
			p := g.Player
			if p.X != c.wantX || p.Y != c.wantY {
				t.Fatalf("(%v, %v), want (%v, %v)", p.X, p.Y, c.wantX, c.wantY)
			}
			if (p.State == world.InAir) != c.wantAirborne {
				t.Fatalf("state=%s", p.State)
			}
			if (p.VX == 0) != c.wantVXCleared {
				t.Fatalf("vx=%v", p.VX)
			}
			if g.CurrentMap != 0 {
				t.Fatalf("single map must not advance")
			}
		})
	}
}
