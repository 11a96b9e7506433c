package system

import (
	"fmt"

	"github.com/milk9111/ageofpanda/world"
)

// Stage is one step of the frame pipeline. Every stage reads and writes the
// game state and may emit sounds; stages never call each other.
type Stage uint8

const (
	StageSpawn Stage = iota
	StageCollisionDetection
	StageGravity
	StageSupport
	StageTrapDamage
	StageBounds
	StageGameOver
	StagePosition
	StageAnimation

	stageCount
)

var stageNames = [stageCount]string{
	"spawn",
	"collision_detection",
	"gravity",
	"support",
	"trap_damage",
	"bounds",
	"game_over",
	"position",
	"animation",
}

func (s Stage) String() string {
	if s >= stageCount {
		return fmt.Sprintf("stage(%d)", uint8(s))
	}
	return stageNames[s]
}

// Run executes the stage once against g.
func (s Stage) Run(g *world.GameState, sink SoundSink) error {
	switch s {
	case StageSpawn:
		return fireSpawns(g)
	case StageCollisionDetection:
		return detectCollisions(g)
	case StageGravity:
		return applyGravity(g, sink)
	case StageSupport:
		return resolveSupport(g, sink)
	case StageTrapDamage:
		return applyTrapDamage(g, sink)
	case StageBounds:
		return clampBounds(g)
	case StageGameOver:
		return checkGameOver(g, sink)
	case StagePosition:
		integratePosition(g)
		return nil
	case StageAnimation:
		advanceAnimation(g)
		return nil
	default:
		return fmt.Errorf("%w: %d", ErrUnknownStage, uint8(s))
	}
}
