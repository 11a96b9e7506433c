package system

import (
	"errors"
	"fmt"

	"github.com/milk9111/ageofpanda/world"
)

var (
	ErrUnknownStage   = errors.New("system: unknown stage")
	ErrUnknownCommand = errors.New("system: unknown command")
	ErrNilState       = errors.New("system: nil game state")
)

// Scheduler runs an ordered list of stages once per tick.
type Scheduler struct {
	stages []Stage
}

func NewScheduler(stages ...Stage) *Scheduler {
	copied := append([]Stage(nil), stages...)
	return &Scheduler{stages: copied}
}

// DefaultScheduler returns the pipeline in the order the simulation depends
// on: later stages read what earlier ones wrote during the same tick.
func DefaultScheduler() *Scheduler {
	return NewScheduler(
		StageSpawn,
		StageCollisionDetection,
		StageGravity,
		StageSupport,
		StageTrapDamage,
		StageBounds,
		StageGameOver,
		StagePosition,
		StageAnimation,
	)
}

// Add appends a stage to the end of the pipeline.
func (s *Scheduler) Add(stage Stage) error {
	if stage >= stageCount {
		return fmt.Errorf("%w: %d", ErrUnknownStage, uint8(stage))
	}
	s.stages = append(s.stages, stage)
	return nil
}

// Update runs every stage once. The first failing stage aborts the tick.
func (s *Scheduler) Update(g *world.GameState, sink SoundSink) error {
	if g == nil {
		return ErrNilState
	}
	for _, stage := range s.stages {
		if err := stage.Run(g, sink); err != nil {
			return fmt.Errorf("system: stage %s: %w", stage, err)
		}
	}
	return nil
}

// Tick applies this tick's commands and then runs the pipeline.
func (s *Scheduler) Tick(g *world.GameState, cmds []Command, sink SoundSink) error {
	if err := ApplyCommands(g, cmds, sink); err != nil {
		return err
	}
	return s.Update(g, sink)
}

func (s *Scheduler) Stages() []Stage {
	stages := make([]Stage, 0, len(s.stages))
	return append(stages, s.stages...)
}
