package system

import (
	"fmt"

	"github.com/milk9111/ageofpanda/world"
)

// fireSpawns places every unfired spawn whose trigger x the player has
// reached. Each trigger fires at most once.
func fireSpawns(g *world.GameState) error {
	m, err := g.Map()
	if err != nil {
		return err
	}
	t := g.Tuning
	tile := m.TileSize
	if tile <= 0 {
		tile = t.TileSize
	}

	rebuild := false
	for i := range m.Spawns {
		s := &m.Spawns[i]
		if s.Fired || g.Player.X < s.AtX {
			continue
		}
		s.Fired = true
		switch s.Kind {
		case world.SpawnTrap:
			m.AddTrap(world.NewTileTrap(s.X, s.Y, tile))
		default:
			if err := m.AddObstacle(world.NewTileObstacle(s.X, s.Y, tile, t.ObstacleDurability)); err != nil {
				return fmt.Errorf("spawn %s at (%.0f, %.0f): %w", s.Kind, s.X, s.Y, err)
			}
			rebuild = true
		}
	}
	if rebuild {
		m.RebuildGraph(t.AdjacencyTolerance)
	}
	return nil
}
