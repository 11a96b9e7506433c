package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/ageofpanda/system"
)

// Input samples the keyboard and the first gamepad once per tick.
type Input struct {
	MoveX int
	Jump  bool
	Kick  bool
	Quit  bool
	// Debug toggles the overlay on the frame F3 is pressed.
	Debug bool

	commands []system.Command
}

func NewInput() *Input {
	return &Input{}
}

func (i *Input) Update() {
	moveX := 0
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft) {
		moveX--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight) {
		moveX++
	}

	// Holding jump keeps jumping on landing, like the keyboard repeat did.
	jump := ebiten.IsKeyPressed(ebiten.KeySpace) || ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp)
	kick := inpututil.IsKeyJustPressed(ebiten.KeyX)

	if ids := ebiten.AppendGamepadIDs(nil); len(ids) > 0 {
		gid := ids[0]
		leftX := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if leftX < -0.3 {
			moveX = -1
		} else if leftX > 0.3 {
			moveX = 1
		}
		jump = jump || ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonRightBottom)
		kick = kick || inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonRightLeft)
	}

	i.MoveX = moveX
	i.Jump = jump
	i.Kick = kick
	i.Quit = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	i.Debug = inpututil.IsKeyJustPressed(ebiten.KeyF3)
}

// Commands returns this tick's held commands. The slice is reused between
// calls.
func (i *Input) Commands() []system.Command {
	return i.appendCommands(i.commands[:0])
}

func (i *Input) appendCommands(cmds []system.Command) []system.Command {
	if i.Jump {
		cmds = append(cmds, system.CommandJump)
	}
	switch {
	case i.MoveX < 0:
		cmds = append(cmds, system.CommandMoveLeft)
	case i.MoveX > 0:
		cmds = append(cmds, system.CommandMoveRight)
	}
	if i.Kick {
		cmds = append(cmds, system.CommandKick)
	}
	i.commands = cmds
	return cmds
}
