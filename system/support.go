package system

import (
	"github.com/milk9111/ageofpanda/common"
	"github.com/milk9111/ageofpanda/world"
)

// applyGravity pulls an unsupported player down and advances every falling
// obstacle. An obstacle that has reached ObstacleLandVelocity stops falling
// instead of moving; any landing re-sorts the collection and rebuilds the
// graph.
func applyGravity(g *world.GameState, sink SoundSink) error {
	m, err := g.Map()
	if err != nil {
		return err
	}
	t := g.Tuning
	p := &g.Player
	if !p.Supported() {
		p.VY += t.Gravity
	}

	landed := false
	step := t.Gravity * t.ObstacleFallFactor
	for _, o := range m.Obstacles {
		if !o.Active || !o.Falling {
			continue
		}
		if o.VelocityY >= t.ObstacleLandVelocity {
			o.Falling = false
			landed = true
			continue
		}
		o.YTop += step
		o.YBottom += step
		o.VelocityY += step
	}

	if landed {
		emit(sink, SoundDown)
		m.SortObstacles()
		m.RebuildGraph(t.AdjacencyTolerance)
	}
	return nil
}

// resolveSupport decides whether the player stands on an obstacle, on the
// ground or is airborne.
func resolveSupport(g *world.GameState, sink SoundSink) error {
	m, err := g.Map()
	if err != nil {
		return err
	}
	t := g.Tuning
	p := &g.Player

	if p.IsJumping {
		p.Y += p.VY
	}
	p.AlmostGround = common.Within(p.Y, t.AlmostGroundMin, t.AlmostGroundMax)

	for _, o := range m.Obstacles {
		if !o.Active {
			continue
		}
		if !(p.X+t.SupportBandRight > o.XLeft && p.X+t.SupportBandLeft < o.XRight) {
			continue
		}
		if common.Within(p.Y, o.YTop, o.YBottom) && o.IsTop {
			// Already standing here: hold without re-snapping.
			if p.State != world.OnObstacle {
				p.Y = o.YBottom - t.StandOffset
				p.VY = 0
				p.IsJumping = false
				p.SetSupport(world.OnObstacle)
			}
			return nil
		}
		if p.Y < o.YTop {
			p.SetSupport(world.InAir)
			p.AboveObstacle = true
			p.IsJumping = true
			return nil
		}
	}

	if p.Y >= t.Ground {
		p.Y = t.Ground
		p.VY = 0
		p.IsJumping = false
		if p.State == world.InAir {
			emit(sink, SoundFallMild)
		}
		p.SetSupport(world.OnGround)
		return nil
	}

	p.SetSupport(world.InAir)
	p.AboveObstacle = false
	p.IsJumping = true
	return nil
}
