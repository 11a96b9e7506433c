package world

import (
	"fmt"
	"time"
)

// GameState owns everything the frame pipeline reads and writes.
type GameState struct {
	Player     Player
	Maps       []*Map
	CurrentMap int

	HeartFrames      CycleTimer
	GroundFrames     CycleTimer
	LighthouseFrames CycleTimer
	MountainsFrames  CycleTimer
	TrapFrames       CycleTimer
	FootstepCadence  CycleTimer

	// Elapsed is simulated time: one FrameDuration per tick.
	Elapsed time.Duration
	Tick    uint64

	DesignatedX float64
	DamageTaken bool

	FootstepActive bool
	FootstepIndex  int

	// GameOverTicks counts down the game-over overlay after a reset.
	GameOverTicks int

	Tuning Tuning
}

// NewGameState places a fresh player at the first map's start position. A
// zero StartY means the ground line.
func NewGameState(maps []*Map, t Tuning) *GameState {
	g := &GameState{
		Maps:             maps,
		Tuning:           t,
		HeartFrames:      NewCycleTimer(t.HeartPeriod, 2),
		GroundFrames:     NewCycleTimer(t.BackgroundPeriod, 2),
		LighthouseFrames: NewCycleTimer(t.BackgroundPeriod, 2),
		MountainsFrames:  NewCycleTimer(t.BackgroundPeriod, 2),
		TrapFrames:       NewCycleTimer(t.TrapPeriod, 2),
		FootstepCadence:  NewCycleTimer(t.FootstepPeriod, 1),
	}
	x, y := 0.0, t.Ground
	if len(maps) > 0 && maps[0] != nil {
		x = maps[0].StartX
		if maps[0].StartY != 0 {
			y = maps[0].StartY
		}
	}
	g.Player = NewPlayer(x, y, t)
	return g
}

// Map returns the map the player is currently on.
func (g *GameState) Map() (*Map, error) {
	if g.CurrentMap < 0 || g.CurrentMap >= len(g.Maps) || g.Maps[g.CurrentMap] == nil {
		return nil, fmt.Errorf("%w: %d of %d", ErrNoMap, g.CurrentMap, len(g.Maps))
	}
	return g.Maps[g.CurrentMap], nil
}

// HasNextMap reports whether a level transition has somewhere to go.
func (g *GameState) HasNextMap() bool {
	return g.CurrentMap+1 < len(g.Maps)
}

// ResetPlayer replaces the player with a fresh one at (0, Ground) and clears
// the damage-recovery state.
func (g *GameState) ResetPlayer() {
	g.Player = NewPlayer(0, g.Tuning.Ground, g.Tuning)
	g.DamageTaken = false
	g.DesignatedX = 0
}

// GameOverFrame returns the overlay frame to draw, or -1 when the overlay is
// not showing.
func (g *GameState) GameOverFrame() int {
	t := g.Tuning
	if g.GameOverTicks <= 0 || t.GameOverFrames <= 0 || t.GameOverFrameTicks <= 0 {
		return -1
	}
	shown := t.GameOverFrames*t.GameOverFrameTicks - g.GameOverTicks
	return min(max(shown, 0)/t.GameOverFrameTicks, t.GameOverFrames-1)
}

// SetTuning swaps the constants in place, e.g. after a hot reload.
func (g *GameState) SetTuning(t Tuning) {
	g.Tuning = t
	g.HeartFrames.Period = t.HeartPeriod
	g.GroundFrames.Period = t.BackgroundPeriod
	g.LighthouseFrames.Period = t.BackgroundPeriod
	g.MountainsFrames.Period = t.BackgroundPeriod
	g.TrapFrames.Period = t.TrapPeriod
	g.FootstepCadence.Period = t.FootstepPeriod
}
