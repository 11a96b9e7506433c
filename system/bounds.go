package system

import "github.com/milk9111/ageofpanda/world"

func transitionX(m *world.Map, t world.Tuning) float64 {
	if m.TransitionX > 0 {
		return m.TransitionX
	}
	return t.UpperBound
}

// clampBounds keeps the player inside the map and moves play to the next map
// when the transition x is reached. On the last map the player is held at
// the transition x instead.
func clampBounds(g *world.GameState) error {
	m, err := g.Map()
	if err != nil {
		return err
	}
	t := g.Tuning
	p := &g.Player

	if p.Y <= t.Ceiling {
		p.Y = t.Ground
		p.SetSupport(world.InAir)
	}

	edge := transitionX(m, t)
	switch {
	case p.X < t.LowerBound:
		p.X = t.LowerBound
		p.VX = 0
	case p.X >= edge:
		p.VX = 0
		if !g.HasNextMap() {
			p.X = edge
			return nil
		}
		g.CurrentMap++
		next, err := g.Map()
		if err != nil {
			return err
		}
		p.X = next.StartX
		g.DamageTaken = false
		p.Invincible = false
	}
	return nil
}

// checkGameOver resets a defeated player and starts the game-over overlay.
func checkGameOver(g *world.GameState, sink SoundSink) error {
	if !g.Player.GameOver {
		return nil
	}
	emit(sink, SoundExplosion)
	g.GameOverTicks = g.Tuning.GameOverFrames * g.Tuning.GameOverFrameTicks
	g.ResetPlayer()
	return nil
}
