package system

import (
	"fmt"
	"strings"

	"github.com/milk9111/ageofpanda/world"
)

// Command is one abstract input held during a tick.
type Command uint8

const (
	CommandMoveLeft Command = iota
	CommandMoveRight
	CommandJump
	CommandKick

	commandCount
)

var commandNames = [commandCount]string{
	"move_left",
	"move_right",
	"jump",
	"kick",
}

// commandOrder is the order held commands are applied in each tick.
var commandOrder = [...]Command{CommandJump, CommandMoveRight, CommandMoveLeft, CommandKick}

func (c Command) String() string {
	if c >= commandCount {
		return fmt.Sprintf("command(%d)", uint8(c))
	}
	return commandNames[c]
}

// ParseCommand maps a command name such as "move_left" to its value.
func ParseCommand(name string) (Command, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range commandNames {
		if n == name {
			return Command(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCommand, name)
}

// Apply runs the entry point for c.
func (c Command) Apply(g *world.GameState, sink SoundSink) error {
	switch c {
	case CommandMoveLeft:
		MoveLeft(g, sink)
	case CommandMoveRight:
		MoveRight(g, sink)
	case CommandJump:
		Jump(g, sink)
	case CommandKick:
		return Kick(g, sink)
	default:
		return fmt.Errorf("%w: %d", ErrUnknownCommand, uint8(c))
	}
	return nil
}

// ApplyCommands applies every held command once, in a fixed order regardless
// of how cmds is ordered. Without a movement command the player decelerates.
func ApplyCommands(g *world.GameState, cmds []Command, sink SoundSink) error {
	if g == nil {
		return ErrNilState
	}
	var held [commandCount]bool
	for _, c := range cmds {
		if c >= commandCount {
			return fmt.Errorf("%w: %d", ErrUnknownCommand, uint8(c))
		}
		held[c] = true
	}

	for _, c := range commandOrder {
		if !held[c] {
			continue
		}
		if err := c.Apply(g, sink); err != nil {
			return fmt.Errorf("system: command %s: %w", c, err)
		}
	}

	if !held[CommandMoveLeft] && !held[CommandMoveRight] {
		Decelerate(&g.Player, g.Tuning)
	}
	return nil
}

// Jump launches the player when standing on the ground or an obstacle.
func Jump(g *world.GameState, sink SoundSink) {
	p := &g.Player
	if p.IsJumping || !p.Supported() {
		return
	}
	p.VY = g.Tuning.JumpVelocity
	p.SetSupport(world.InAir)
	p.IsJumping = true
	p.LastCommand = CommandJump.String()
	emit(sink, SoundJump)
}

func MoveRight(g *world.GameState, sink SoundSink) {
	p := &g.Player
	Accelerate(p, g.Tuning)
	p.LastCommand = CommandMoveRight.String()
	p.Direction = world.Right

	p.RightFrameCount++
	if p.RightFrameCount >= g.Tuning.WalkFrameTicks {
		p.RightFrameCount = 0
		if p.RightIncrement >= world.RightWalkLast || p.RightIncrement < world.RightWalkFirst {
			p.RightIncrement = world.RightWalkFirst
		} else {
			p.RightIncrement++
		}
	}
	footstep(g, sink)
}

func MoveLeft(g *world.GameState, sink SoundSink) {
	p := &g.Player
	Accelerate(p, g.Tuning)
	p.LastCommand = CommandMoveLeft.String()
	p.Direction = world.Left

	p.LeftFrameCount++
	if p.LeftFrameCount >= g.Tuning.WalkFrameTicks {
		p.LeftFrameCount = 0
		if p.LeftIncrement >= world.LeftWalkLast || p.LeftIncrement < world.LeftWalkFirst {
			p.LeftIncrement = world.LeftWalkFirst
		} else {
			p.LeftIncrement++
		}
	}
	footstep(g, sink)
}

// footstep plays the next walk sound once the cadence timer has armed it.
func footstep(g *world.GameState, sink SoundSink) {
	if !g.FootstepActive {
		return
	}
	g.FootstepActive = false
	g.FootstepIndex %= 4
	emit(sink, SoundWalk1+SoundID(g.FootstepIndex))
	g.FootstepIndex = (g.FootstepIndex + 1) % 4
}
