package system

import "github.com/milk9111/ageofpanda/world"

// advanceAnimation moves the simulated clock forward one frame and steps
// every interval-driven animation.
func advanceAnimation(g *world.GameState) {
	t := g.Tuning
	g.Tick++
	g.Elapsed += t.FrameDuration
	now := g.Elapsed

	for _, c := range []*world.CycleTimer{
		&g.HeartFrames,
		&g.GroundFrames,
		&g.LighthouseFrames,
		&g.MountainsFrames,
		&g.TrapFrames,
	} {
		c.Advance(now)
	}
	if g.FootstepCadence.Advance(now) {
		g.FootstepActive = true
	}

	p := &g.Player
	if p.IsKicking {
		p.KickFrameTimer++
		if p.KickFrameTimer >= t.KickFrameTicks {
			p.KickFrame++
			p.KickFrameTimer = 0
			if p.KickFrame >= t.KickFrames {
				p.IsKicking = false
				p.KickFrame = 0
			}
		}
	}

	if g.GameOverTicks > 0 {
		g.GameOverTicks--
	}
}
