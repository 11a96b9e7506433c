package system

import (
	"errors"
	"testing"

	"github.com/milk9111/ageofpanda/world"
)

// kickScene puts a two-box column at x 200..216 with a neighbor to its right,
// and the player just right of the column facing left.
func kickScene() (*world.GameState, *world.Obstacle, *world.Obstacle, *world.Obstacle) {
	m := world.NewMap(1, "kick", 30, 14, 16)
	target := addObstacle(m, 200, 184, 216, 200, 2)
	above := addObstacle(m, 200, 168, 216, 184, 2)
	beside := addObstacle(m, 216, 184, 232, 200, 2)
	m.RebuildGraph(2)

	g := newTestState(m)
	g.Player.X = 190
	g.Player.Y = 210
	g.Player.Direction = world.Left
	return g, target, above, beside
}

func TestKickWearsDownThenDestroys(t *testing.T) {
	g, target, above, beside := kickScene()
	m, _ := g.Map()
	q := &SoundQueue{}

	for _, want := range []uint8{1, 0} {
		if err := Kick(g, q); err != nil {
			t.Fatal(err)
		}
		if target.Durability != want || !target.Active {
			t.Fatalf("durability=%d active=%v, want %d and active", target.Durability, target.Active, want)
		}
		if got := soundIDs(q); !sameSounds(got, []SoundID{SoundKickBox}) {
			t.Fatalf("impact sounds = %v", got)
		}
		if above.Falling {
			t.Fatalf("nothing falls before the box breaks")
		}
	}

	if err := Kick(g, q); err != nil {
		t.Fatal(err)
	}
	if target.Active {
		t.Fatalf("box kicked at zero durability must be deactivated")
	}
	if _, ok := m.Obstacle(target.ID); ok {
		t.Fatalf("destroyed box still in the active collection")
	}
	if got := soundIDs(q); !sameSounds(got, []SoundID{SoundKickBox, SoundExplosion}) {
		t.Fatalf("destruction sounds = %v", got)
	}
	if !above.Falling || above.VelocityY != 0 {
		t.Fatalf("box stacked above should start falling: %+v", above)
	}
	if beside.Falling {
		t.Fatalf("box outside the removed span must not fall")
	}
	for _, o := range m.Obstacles {
		if o.References(target.ID) {
			t.Fatalf("obstacle %d still references the destroyed box", o.ID)
		}
	}
	if !g.Player.IsKicking || g.Player.KickFrame != 0 {
		t.Fatalf("kick animation not started")
	}
}

func TestKickWhiff(t *testing.T) {
	g, target, _, _ := kickScene()
	g.Player.X = 100
	q := &SoundQueue{}

	if err := Kick(g, q); err != nil {
		t.Fatal(err)
	}
	if got := soundIDs(q); !sameSounds(got, []SoundID{SoundKick}) {
		t.Fatalf("whiff sounds = %v", got)
	}
	if target.Durability != 2 || !g.Player.IsKicking {
		t.Fatalf("a whiff only animates the player")
	}
}

func TestDestroyUnknownObstacle(t *testing.T) {
	m := world.NewMap(1, "unknown", 30, 14, 16)
	err := destroyObstacle(m, 7, world.DefaultTuning(), nil)
	if !errors.Is(err, world.ErrUnknownObstacle) {
		t.Fatalf("expected ErrUnknownObstacle, got %v", err)
	}
}

func TestCascadeOnlyMarksContainedSpans(t *testing.T) {
	m := world.NewMap(1, "cascade", 30, 14, 16)
	wide := addObstacle(m, 100, 176, 148, 192, 0)
	inside := addObstacle(m, 116, 160, 132, 176, 2)
	edge := addObstacle(m, 100, 160, 116, 176, 2)
	overhang := addObstacle(m, 140, 160, 156, 176, 2)
	m.RebuildGraph(2)

	if err := destroyObstacle(m, wide.ID, world.DefaultTuning(), nil); err != nil {
		t.Fatal(err)
	}
	if !inside.Falling || !edge.Falling {
		t.Fatalf("contained spans must fall: inside=%v edge=%v", inside.Falling, edge.Falling)
	}
	if overhang.Falling {
		t.Fatalf("span sticking out of the removed box must not fall")
	}
}

func TestFallingObstacleLandsOnce(t *testing.T) {
	g, target, above, _ := kickScene()
	m, _ := g.Map()
	startBottom := above.YBottom
	if err := destroyObstacle(m, target.ID, g.Tuning, nil); err != nil {
		t.Fatal(err)
	}
	q := &SoundQueue{}

	lastV := above.VelocityY
	stops := 0
	for i := 0; i < 40; i++ {
		wasFalling := above.Falling
		if err := applyGravity(g, q); err != nil {
			t.Fatal(err)
		}
		if above.VelocityY < lastV {
			t.Fatalf("tick %d: velocity went down %v -> %v", i, lastV, above.VelocityY)
		}
		lastV = above.VelocityY
		if wasFalling && !above.Falling {
			stops++
		}
	}
	if stops != 1 {
		t.Fatalf("expected falling to stop exactly once, got %d", stops)
	}
	if above.VelocityY < g.Tuning.ObstacleLandVelocity {
		t.Fatalf("landed below the landing velocity: %v", above.VelocityY)
	}
	if got := above.YBottom - startBottom; got != 16.5 {
		t.Fatalf("fell %v units, want 16.5", got)
	}
	downs := 0
	for _, id := range soundIDs(q) {
		if id == SoundDown {
			downs++
		}
	}
	if downs != 1 {
		t.Fatalf("expected one landing sound, got %d", downs)
	}
}

func TestLandingReconnectsStack(t *testing.T) {
	m := world.NewMap(1, "stack", 30, 14, 16)
	bottom := addObstacle(m, 200, 184, 216, 200, 0)
	middle := addObstacle(m, 200, 168, 216, 184, 2)
	top := addObstacle(m, 200, 152, 216, 168, 2)
	floor := addObstacle(m, 200, 200, 216, 216, 2)
	m.RebuildGraph(2)
	g := newTestState(m)

	if err := destroyObstacle(m, bottom.ID, g.Tuning, nil); err != nil {
		t.Fatal(err)
	}
	floor.Falling = false
	for i := 0; i < 20; i++ {
		if err := applyGravity(g, nil); err != nil {
			t.Fatal(err)
		}
	}
	if middle.Falling || top.Falling {
		t.Fatalf("stack should have settled")
	}
	if middle.Over != top.ID || top.Under != middle.ID || !top.IsTop {
		t.Fatalf("stack not reconnected: middle=%+v top=%+v", middle, top)
	}
	if middle.Under != floor.ID || floor.Over != middle.ID {
		t.Fatalf("settled stack should rest on the floor box: middle=%+v floor=%+v", middle, floor)
	}
	for i := 1; i < len(m.Obstacles); i++ {
		if m.Obstacles[i-1].YBottom > m.Obstacles[i].YBottom {
			t.Fatalf("collection not sorted by YBottom after landing")
		}
	}
}
