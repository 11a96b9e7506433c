package system

import (
	"math"

	"github.com/milk9111/ageofpanda/world"
)

// Accelerate adds one step of horizontal speed. Speed is dropped to zero
// when an obstacle blocks the way, and never exceeds MaxVelocity.
func Accelerate(p *world.Player, t world.Tuning) {
	p.VX += t.Acceleration
	if p.ObstacleDetected {
		p.VX = 0
		return
	}
	if p.VX > t.MaxVelocity {
		p.VX = t.MaxVelocity
		return
	}
	p.VX *= t.AccelDamping
	if p.VX > t.MaxVelocity {
		p.VX = t.MaxVelocity
	}
}

// Decelerate decays horizontal speed and snaps it to zero below StopEpsilon.
func Decelerate(p *world.Player, t world.Tuning) {
	p.VX *= t.DecelFactor
	if math.Abs(p.VX) < t.StopEpsilon {
		p.VX = 0
	}
}

// integratePosition moves the player by its velocity. VX is a speed; the
// facing direction gives it a sign.
func integratePosition(g *world.GameState) {
	p := &g.Player
	if p.Direction == world.Left {
		p.X -= p.VX
	} else {
		p.X += p.VX
	}
	p.Y += p.VY
}
