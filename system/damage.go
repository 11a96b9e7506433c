package system

import (
	"github.com/milk9111/ageofpanda/common"
	"github.com/milk9111/ageofpanda/world"
)

// applyTrapDamage walks a knocked-back player toward DesignatedX, or checks
// for a new trap hit.
func applyTrapDamage(g *world.GameState, sink SoundSink) error {
	m, err := g.Map()
	if err != nil {
		return err
	}
	t := g.Tuning
	p := &g.Player

	if g.DamageTaken {
		x, arrived := common.Approach(p.X, g.DesignatedX, t.KnockbackStep)
		p.X = x
		p.Invincible = !arrived
		if arrived {
			g.DamageTaken = false
		}
		return nil
	}

	hit, trap := CheckPlayerTrap(m.Traps, p, t)
	if !hit {
		return nil
	}
	p.Health--
	p.VX = 0
	p.Invincible = true
	g.DamageTaken = true
	// A target past the lower bound could never be reached once the bounds
	// stage clamps x.
	g.DesignatedX = max(trap.XLeft-t.KnockbackDistance, t.LowerBound)
	emit(sink, SoundFallHeavy)

	if p.Health <= 0 {
		p.Health = 0
		p.GameOver = true
	}
	return nil
}
