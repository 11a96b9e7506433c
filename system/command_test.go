package system

import (
	"errors"
	"math"
	"testing"

	"github.com/milk9111/ageofpanda/world"
)

func TestJumpFromGround(t *testing.T) {
	g := newTestState()
	g.Player = world.NewPlayer(1, 176, g.Tuning)
	q := &SoundQueue{}

	if err := ApplyCommands(g, []Command{CommandJump}, q); err != nil {
		t.Fatal(err)
	}
	p := g.Player
	if p.VY != g.Tuning.JumpVelocity || p.OnGround || !p.IsJumping || p.Health != 3 {
		t.Fatalf("jump not applied: %+v", p)
	}
	if got := soundIDs(q); !sameSounds(got, []SoundID{SoundJump}) {
		t.Fatalf("sounds = %v", got)
	}

	if err := ApplyCommands(g, []Command{CommandJump}, q); err != nil {
		t.Fatal(err)
	}
	if q.Len() != 0 {
		t.Fatalf("a second jump mid-air must do nothing")
	}
}

func TestCommandsApplyInFixedOrder(t *testing.T) {
	g := newTestState()
	if err := ApplyCommands(g, []Command{CommandKick, CommandMoveLeft, CommandMoveRight, CommandJump}, nil); err != nil {
		t.Fatal(err)
	}
	if g.Player.Direction != world.Left {
		t.Fatalf("MoveLeft runs after MoveRight, direction=%s", g.Player.Direction)
	}
	if g.Player.LastCommand != CommandKick.String() {
		t.Fatalf("Kick runs last, got %q", g.Player.LastCommand)
	}
	if !g.Player.IsJumping {
		t.Fatalf("jump was not applied")
	}
}

func TestApplyCommandsRejectsUnknown(t *testing.T) {
	g := newTestState()
	if err := ApplyCommands(g, []Command{Command(9)}, nil); !errors.Is(err, ErrUnknownCommand) {
		t.Fatalf("expected ErrUnknownCommand, got %v", err)
	}
}

func TestVelocityNeverExceedsCap(t *testing.T) {
	g := newTestState()
	for i := 0; i < 500; i++ {
		if err := ApplyCommands(g, []Command{CommandMoveRight}, nil); err != nil {
			t.Fatal(err)
		}
		if math.Abs(g.Player.VX) > g.Tuning.MaxVelocity {
			t.Fatalf("tick %d: vx=%v", i, g.Player.VX)
		}
	}
}

func TestVelocityDecaysToZero(t *testing.T) {
	g := newTestState()
	g.Player.VX = g.Tuning.MaxVelocity
	for i := 0; i < 100; i++ {
		if err := ApplyCommands(g, nil, nil); err != nil {
			t.Fatal(err)
		}
		if g.Player.VX == 0 {
			return
		}
	}
	t.Fatalf("vx still %v after 100 idle ticks", g.Player.VX)
}

func TestWalkCycle(t *testing.T) {
	cases := []struct {
		name      string
		cmd       Command
		ticks     int
		wantFrame int
	}{
		{"right_first_step", CommandMoveRight, 3, 1},
		{"right_partial", CommandMoveRight, 5, 1},
		{"right_wraps", CommandMoveRight, 12, world.RightWalkFirst},
		{"left_first_step", CommandMoveLeft, 3, 5},
		{"left_last", CommandMoveLeft, 9, world.LeftWalkLast},
		{"left_wraps", CommandMoveLeft, 12, world.LeftWalkFirst},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g := newTestState()
			for i := 0; i < c.ticks; i++ {
				if err := c.cmd.Apply(g, nil); err != nil {
					t.Fatal(err)
				}
			}
			if got := g.Player.WalkFrame(); got != c.wantFrame {
				t.Fatalf("frame=%d, want %d", got, c.wantFrame)
			}
		})
	}
}

func TestFootstepsCycleWhenArmed(t *testing.T) {
	g := newTestState()
	q := &SoundQueue{}

	MoveRight(g, q)
	if q.Len() != 0 {
		t.Fatalf("no footstep until the cadence arms one")
	}
	var got []SoundID
	for i := 0; i < 5; i++ {
		g.FootstepActive = true
		MoveRight(g, q)
		MoveRight(g, q)
		got = append(got, soundIDs(q)...)
	}
	want := []SoundID{SoundWalk1, SoundWalk2, SoundWalk3, SoundWalk4, SoundWalk1}
	if !sameSounds(got, want) {
		t.Fatalf("footsteps = %v, want %v", got, want)
	}
}

func TestParseCommand(t *testing.T) {
	for c := CommandMoveLeft; c < commandCount; c++ {
		got, err := ParseCommand(" " + c.String() + " ")
		if err != nil || got != c {
			t.Fatalf("ParseCommand(%q) = %v, %v", c.String(), got, err)
		}
	}
	if _, err := ParseCommand("dash"); !errors.Is(err, ErrUnknownCommand) {
		t.Fatalf("expected ErrUnknownCommand, got %v", err)
	}
}

func TestAccelerate(t *testing.T) {
	tun := world.DefaultTuning()
	cases := []struct {
		name    string
		vx      float64
		blocked bool
		want    float64
	}{
		{"from_rest", 0, false, 0.1 * 0.98},
		{"over_cap", 1.95, false, 2},
		{"blocked", 1.5, true, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := world.Player{VX: c.vx, ObstacleDetected: c.blocked}
			Accelerate(&p, tun)
			if math.Abs(p.VX-c.want) > 1e-9 {
				t.Fatalf("vx=%v, want %v", p.VX, c.want)
			}
		})
	}

	p := world.Player{VX: 0.105}
	Decelerate(&p, tun)
	if p.VX != 0 {
		t.Fatalf("expected snap to zero, got %v", p.VX)
	}
}
