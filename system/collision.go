package system

import (
	"github.com/milk9111/ageofpanda/common"
	"github.com/milk9111/ageofpanda/world"
)

// leadingEdge is the x the player probes with: slightly left of centre when
// facing left, further right when facing right.
func leadingEdge(p *world.Player, t world.Tuning, facingLeft bool) float64 {
	if facingLeft {
		return p.X + t.SpriteWidth(p.LeftIncrement)/2.5
	}
	return p.X + t.SpriteWidth(p.RightIncrement)/1.5
}

// CheckPlayerObstacle returns the first active obstacle, in collection
// order, that the player's leading edge is inside and that is within kick
// reach vertically.
func CheckPlayerObstacle(obstacles []*world.Obstacle, p *world.Player, t world.Tuning, facingLeft bool) (bool, world.ObstacleID) {
	x := leadingEdge(p, t, facingLeft)
	for _, o := range obstacles {
		if o == nil || !o.Active {
			continue
		}
		if !common.StrictlyInside(x, o.XLeft, o.XRight) {
			continue
		}
		if common.Within(p.Y, o.YTop+t.KickReachTop, o.YBottom+t.KickReachBottom) {
			return true, o.ID
		}
	}
	return false, 0
}

// PlayerBody is the box traps are tested against.
func PlayerBody(p *world.Player, t world.Tuning) (xLeft, yTop, xRight, yBottom float64) {
	w := t.SpriteWidth(p.WalkFrame())
	return p.X + w/2.5, p.Y + t.FootOffset - t.PlayerHeight, p.X + w/1.5, p.Y + t.FootOffset
}

// CheckPlayerTrap returns the first active trap the player's body touches.
// An invincible player touches nothing.
func CheckPlayerTrap(traps []*world.Trap, p *world.Player, t world.Tuning) (bool, *world.Trap) {
	if p.Invincible {
		return false, nil
	}
	body := common.Box(PlayerBody(p, t))
	for _, trap := range traps {
		if trap == nil || !trap.Active {
			continue
		}
		if common.Overlaps(body, common.Shrink(trap.Box(), t.TrapMargin)) {
			return true, trap
		}
	}
	return false, nil
}

func detectCollisions(g *world.GameState) error {
	m, err := g.Map()
	if err != nil {
		return err
	}
	p := &g.Player
	hit, _ := CheckPlayerObstacle(m.Obstacles, p, g.Tuning, p.Direction == world.Left)
	p.ObstacleDetected = hit
	if hit {
		p.VX = 0
	}
	return nil
}
