package system

import (
	"fmt"

	"github.com/milk9111/ageofpanda/common"
	"github.com/milk9111/ageofpanda/world"
)

// Kick starts the kick animation and damages the obstacle in front of the
// player. An obstacle kicked at zero durability is destroyed and everything
// stacked in its column starts to fall.
func Kick(g *world.GameState, sink SoundSink) error {
	m, err := g.Map()
	if err != nil {
		return err
	}
	p := &g.Player
	p.IsKicking = true
	p.KickFrame = 0
	p.KickFrameTimer = 0
	p.LastCommand = CommandKick.String()

	hit, id := CheckPlayerObstacle(m.Obstacles, p, g.Tuning, p.Direction == world.Left)
	if !hit {
		emit(sink, SoundKick)
		return nil
	}
	o, ok := m.Obstacle(id)
	if !ok {
		return fmt.Errorf("kick: %w: %d", world.ErrUnknownObstacle, id)
	}

	emit(sink, SoundKickBox)
	if o.Durability > 0 {
		o.Durability--
		return nil
	}
	return destroyObstacle(m, id, g.Tuning, sink)
}

// destroyObstacle removes id and starts the cascade. Removal, cascade
// marking and the graph rebuild all complete before it returns.
func destroyObstacle(m *world.Map, id world.ObstacleID, t world.Tuning, sink SoundSink) error {
	removed, err := m.RemoveObstacle(id)
	if err != nil {
		return fmt.Errorf("destroy: %w", err)
	}
	emit(sink, SoundExplosion)

	for _, o := range m.Obstacles {
		if !o.Active {
			continue
		}
		if common.SpanContains(removed.XLeft, removed.XRight, o.XLeft, o.XRight) {
			o.Falling = true
			o.VelocityY = 0
		}
	}
	m.RebuildGraph(t.AdjacencyTolerance)
	return nil
}
